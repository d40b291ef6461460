package app

import "context"

// AccessPolicy is consulted before a caller reads or removes highlights.
// Callers are anonymous today, so implementations can only decide on the
// target resource.
type AccessPolicy interface {
	CanListHighlights(ctx context.Context, userID uint) error
	CanDeleteHighlight(ctx context.Context, highlightID uint) error
}

// OpenAccess allows everything: any caller may list any user's highlights and
// delete any highlight by id.
type OpenAccess struct{}

func (OpenAccess) CanListHighlights(context.Context, uint) error { return nil }

func (OpenAccess) CanDeleteHighlight(context.Context, uint) error { return nil }
