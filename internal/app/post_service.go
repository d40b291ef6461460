package app

import (
	"context"

	"versenotes/internal/logging"
	"versenotes/internal/model"
	"versenotes/internal/platform/database"
)

type PostStore interface {
	Create(ctx context.Context, post *model.Post) error
	ListWithAuthor(ctx context.Context) ([]model.PostWithAuthor, error)
}

type PostService struct {
	posts  PostStore
	events EventPublisher
}

type CreatePostInput struct {
	UserID  uint
	Content string
}

func NewPostService(posts PostStore, events EventPublisher) *PostService {
	if events == nil {
		events = NopPublisher{}
	}
	return &PostService{posts: posts, events: events}
}

func (s *PostService) Create(ctx context.Context, input CreatePostInput) (*model.Post, error) {
	if input.Content == "" || input.UserID == 0 {
		return nil, validationError(MsgPostFieldsRequired)
	}

	post := &model.Post{
		UserID:  input.UserID,
		Content: input.Content,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		if database.IsForeignKeyViolation(err) {
			logging.Warn().Uint("user_id", input.UserID).Msg("post references unknown user")
		}
		return nil, storageError(MsgCreatePostFailed, err)
	}

	publish(ctx, s.events, model.NewEvent(model.EventPostCreated, map[string]any{
		"post_id": post.ID,
		"user_id": post.UserID,
	}))
	return post, nil
}

func (s *PostService) List(ctx context.Context) ([]model.PostWithAuthor, error) {
	posts, err := s.posts.ListWithAuthor(ctx)
	if err != nil {
		return nil, storageError(MsgListPostsFailed, err)
	}
	return posts, nil
}
