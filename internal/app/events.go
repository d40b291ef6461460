package app

import (
	"context"

	"versenotes/internal/logging"
	"versenotes/internal/model"
)

type EventPublisher interface {
	Publish(ctx context.Context, evt model.Event) error
}

// NopPublisher drops every event. It is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, model.Event) error { return nil }

// publish never fails the caller: the write it describes already committed.
func publish(ctx context.Context, p EventPublisher, evt model.Event) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, evt); err != nil {
		logging.Warn().Err(err).Str("event", evt.Type).Msg("publish event failed")
	}
}
