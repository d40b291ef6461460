package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"versenotes/internal/model"
)

type HighlightRepository struct {
	db *gorm.DB
}

func NewHighlightRepository(db *gorm.DB) *HighlightRepository {
	return &HighlightRepository{db: db}
}

func (r *HighlightRepository) Create(ctx context.Context, highlight *model.Highlight) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(highlight).Error; err != nil {
		return fmt.Errorf("create highlight failed: %w", err)
	}
	return nil
}

func (r *HighlightRepository) ListByUserID(ctx context.Context, userID uint) ([]model.Highlight, error) {
	highlights := make([]model.Highlight, 0)
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&highlights).Error
	if err != nil {
		return nil, fmt.Errorf("list highlights failed: %w", err)
	}
	return highlights, nil
}

// DeleteByID removes the highlight regardless of owner and reports how many
// rows matched.
func (r *HighlightRepository) DeleteByID(ctx context.Context, id uint) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Highlight{}, id)
	if res.Error != nil {
		return 0, fmt.Errorf("delete highlight failed: %w", res.Error)
	}
	return res.RowsAffected, nil
}
