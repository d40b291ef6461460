package app

import (
	"context"

	"versenotes/internal/logging"
	"versenotes/internal/model"
)

type HighlightStore interface {
	Create(ctx context.Context, highlight *model.Highlight) error
	ListByUserID(ctx context.Context, userID uint) ([]model.Highlight, error)
	DeleteByID(ctx context.Context, id uint) (int64, error)
}

type HighlightService struct {
	highlights HighlightStore
	policy     AccessPolicy
	events     EventPublisher
}

type CreateHighlightInput struct {
	UserID   uint
	VerseRef string
	Word     string
	Note     string
}

func NewHighlightService(highlights HighlightStore, policy AccessPolicy, events EventPublisher) *HighlightService {
	if policy == nil {
		policy = OpenAccess{}
	}
	if events == nil {
		events = NopPublisher{}
	}
	return &HighlightService{
		highlights: highlights,
		policy:     policy,
		events:     events,
	}
}

func (s *HighlightService) Create(ctx context.Context, input CreateHighlightInput) (*model.Highlight, error) {
	if input.UserID == 0 || input.VerseRef == "" || input.Word == "" || input.Note == "" {
		return nil, validationError(MsgHighlightFieldsNeeded)
	}

	highlight := &model.Highlight{
		UserID:   input.UserID,
		VerseRef: input.VerseRef,
		Word:     input.Word,
		Note:     input.Note,
	}
	if err := s.highlights.Create(ctx, highlight); err != nil {
		return nil, storageError(MsgSaveHighlightFailed, err)
	}

	publish(ctx, s.events, model.NewEvent(model.EventHighlightCreated, map[string]any{
		"highlight_id": highlight.ID,
		"user_id":      highlight.UserID,
	}))
	return highlight, nil
}

// ListByUser returns an empty slice for a user that does not exist.
func (s *HighlightService) ListByUser(ctx context.Context, userID uint) ([]model.Highlight, error) {
	if err := s.policy.CanListHighlights(ctx, userID); err != nil {
		return nil, &Error{Kind: ErrAuth, Message: MsgAccessDenied, Err: err}
	}

	highlights, err := s.highlights.ListByUserID(ctx, userID)
	if err != nil {
		return nil, storageError(MsgListHighlightsFailed, err)
	}
	return highlights, nil
}

// Delete removes the highlight unconditionally. The bool reports whether a
// row existed; a missing id is not an error.
func (s *HighlightService) Delete(ctx context.Context, highlightID uint) (bool, error) {
	if err := s.policy.CanDeleteHighlight(ctx, highlightID); err != nil {
		return false, &Error{Kind: ErrAuth, Message: MsgAccessDenied, Err: err}
	}

	n, err := s.highlights.DeleteByID(ctx, highlightID)
	if err != nil {
		return false, storageError(MsgDeleteHighlightFailed, err)
	}
	if n == 0 {
		logging.Debug().Uint("highlight_id", highlightID).Msg("delete matched no highlight")
		return false, nil
	}

	publish(ctx, s.events, model.NewEvent(model.EventHighlightDeleted, map[string]any{
		"highlight_id": highlightID,
	}))
	return true, nil
}
