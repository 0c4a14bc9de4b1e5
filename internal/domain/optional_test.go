package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/dangerclosesec/thinknest/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Category domain.Optional[string] `json:"category"`
	Year     domain.Optional[int]    `json:"year"`
}

func TestOptionalUnmarshal(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
		assert.False(t, p.Category.Set)
		assert.False(t, p.Year.Set)
	})

	t.Run("explicit null", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"category":null}`), &p))
		assert.True(t, p.Category.Set)
		assert.True(t, p.Category.Null)
		assert.False(t, p.Category.Valid())
	})

	t.Run("value", func(t *testing.T) {
		var p payload
		require.NoError(t, json.Unmarshal([]byte(`{"category":"ops","year":2024}`), &p))
		assert.True(t, p.Category.Valid())
		assert.Equal(t, "ops", p.Category.Value)
		assert.Equal(t, 2024, p.Year.Value)
	})

	t.Run("wrong type", func(t *testing.T) {
		var p payload
		assert.Error(t, json.Unmarshal([]byte(`{"year":"soon"}`), &p))
	})
}

func TestOptionalApply(t *testing.T) {
	existing := "finance"
	dst := &existing

	domain.Optional[string]{}.Apply(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "finance", *dst)

	domain.Some("ops").Apply(&dst)
	require.NotNil(t, dst)
	assert.Equal(t, "ops", *dst)

	domain.Null[string]().Apply(&dst)
	assert.Nil(t, dst)

	title := "Old"
	domain.Null[string]().ApplyValue(&title)
	assert.Equal(t, "Old", title)
	domain.Some("New").ApplyValue(&title)
	assert.Equal(t, "New", title)
}
