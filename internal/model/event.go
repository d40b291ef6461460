package model

import "time"

const (
	EventUserRegistered   = "user.registered"
	EventPostCreated      = "post.created"
	EventHighlightCreated = "highlight.created"
	EventHighlightDeleted = "highlight.deleted"
)

type Event struct {
	Type       string         `json:"type"`
	OccurredAt time.Time      `json:"occurred_at"`
	Data       map[string]any `json:"data"`
}

func NewEvent(eventType string, data map[string]any) Event {
	return Event{
		Type:       eventType,
		OccurredAt: time.Now().UTC(),
		Data:       data,
	}
}
