// internal/repository/contact.go
package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/dangerclosesec/thinknest/internal/model"
	"gorm.io/gorm"
)

type ContactRepositoryIface interface {
	Create(ctx context.Context, msg *model.ContactMessage) error
	FindSince(ctx context.Context, since time.Time) ([]model.ContactMessage, error)
}

type ContactRepository struct {
	db *gorm.DB
}

func NewContactRepository(db *gorm.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

func (r *ContactRepository) Create(ctx context.Context, msg *model.ContactMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to create contact message: %w", err)
	}
	return nil
}

// FindSince returns messages received at or after since, oldest first. A zero since returns everything.
func (r *ContactRepository) FindSince(ctx context.Context, since time.Time) ([]model.ContactMessage, error) {
	query := r.db.WithContext(ctx).Order("created_at ASC")
	if !since.IsZero() {
		query = query.Where("created_at >= ?", since)
	}

	var msgs []model.ContactMessage
	if err := query.Find(&msgs).Error; err != nil {
		return nil, fmt.Errorf("failed to find contact messages: %w", err)
	}
	return msgs, nil
}
