package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/kunalsharma05/garagehub/models"
)

// FeedbackRepository stores customer feedback. Append-only.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	FindAll(ctx context.Context) ([]models.Feedback, error)
}

type gormFeedbackRepository struct {
	db *gorm.DB
}

func NewGormFeedbackRepository(db *gorm.DB) FeedbackRepository {
	return &gormFeedbackRepository{db: db}
}

func (r *gormFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	return r.db.WithContext(ctx).Create(feedback).Error
}

func (r *gormFeedbackRepository) FindAll(ctx context.Context) ([]models.Feedback, error) {
	var feedback []models.Feedback
	if err := r.db.WithContext(ctx).Order("created_at desc").Find(&feedback).Error; err != nil {
		return nil, err
	}
	return feedback, nil
}
