package validation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/dangerclosesec/thinknest/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type listQuery struct {
	Page  int    `json:"page" validate:"min=1"`
	Limit int    `json:"limit" validate:"min=1,max=100"`
	Role  string `json:"role" validate:"omitempty,oneof=chair co-chair member advisor"`
}

type upsertInput struct {
	Slug     string                  `json:"slug" validate:"required,min=3,max=160,slug"`
	Category domain.Optional[string] `json:"category" validate:"omitempty,max=5"`
	CoverURL domain.Optional[string] `json:"coverUrl" validate:"omitempty,url"`
}

func TestStruct(t *testing.T) {
	v := validation.New()

	t.Run("valid query", func(t *testing.T) {
		assert.NoError(t, v.Struct(listQuery{Page: 1, Limit: 12}))
	})

	t.Run("out of range limit and unknown role", func(t *testing.T) {
		err := v.Struct(listQuery{Page: 0, Limit: 101, Role: "judge"})
		require.Error(t, err)

		var verr *validation.Error
		require.True(t, errors.As(err, &verr))
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.ElementsMatch(t, []string{
			"page must be at least 1",
			"limit must be at most 100",
			"role must be one of [chair co-chair member advisor]",
		}, verr.Details)
	})
}

func TestOptionalRules(t *testing.T) {
	v := validation.New()

	var in upsertInput
	require.NoError(t, json.Unmarshal([]byte(`{"slug":"hello-world","category":null}`), &in))
	assert.NoError(t, v.Struct(in), "null and absent optionals are skipped")

	require.NoError(t, json.Unmarshal([]byte(`{"slug":"hello-world","category":"too-long","coverUrl":"nope"}`), &in))
	err := v.Struct(in)
	require.Error(t, err)

	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.ElementsMatch(t, []string{
		"category must be at most 5 characters",
		"coverUrl must be a valid URL",
	}, verr.Details)
}

func TestSlugRule(t *testing.T) {
	v := validation.New()
	assert.NoError(t, v.Struct(upsertInput{Slug: "ai-week-2024"}))
	assert.Error(t, v.Struct(upsertInput{Slug: "AI Week"}))
	assert.Error(t, v.Struct(upsertInput{Slug: "-dash"}))
}

type requiredText struct {
	Title domain.Optional[string] `json:"title" validate:"omitnil,min=3"`
}

func TestOmitNilOptional(t *testing.T) {
	v := validation.New()

	assert.NoError(t, v.Struct(requiredText{}))
	assert.NoError(t, v.Struct(requiredText{Title: domain.Null[string]()}))
	assert.NoError(t, v.Struct(requiredText{Title: domain.Some("Launch")}))

	err := v.Struct(requiredText{Title: domain.Some("")})
	var verr *validation.Error
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"title must be at least 3 characters"}, verr.Details)
}
