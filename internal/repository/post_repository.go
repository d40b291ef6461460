package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"versenotes/internal/model"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

func (r *PostRepository) Create(ctx context.Context, post *model.Post) error {
	if err := r.db.WithContext(ctx).Omit("User").Create(post).Error; err != nil {
		return fmt.Errorf("create post failed: %w", err)
	}
	return nil
}

// ListWithAuthor returns every post with its owner's email, newest first.
func (r *PostRepository) ListWithAuthor(ctx context.Context) ([]model.PostWithAuthor, error) {
	posts := make([]model.PostWithAuthor, 0)
	err := r.db.WithContext(ctx).
		Table("posts").
		Select("posts.id, posts.content, users.email, posts.created_at").
		Joins("JOIN users ON users.id = posts.user_id").
		Order("posts.created_at DESC, posts.id DESC").
		Scan(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("list posts failed: %w", err)
	}
	return posts, nil
}
