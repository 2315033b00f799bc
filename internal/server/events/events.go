// Package events publishes domain events to RabbitMQ. Publishing is best
// effort: callers log failures and carry on.
package events

import (
	"context"
	"time"
)

// Routing keys of the events the server emits.
const (
	UserRegistered    = "user.registered"
	ListCreated       = "list.created"
	ListMemberJoined  = "list.member_joined"
	ListMemberRemoved = "list.member_removed"
)

// Envelope is the JSON body of every published message.
type Envelope struct {
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// Publisher sends one event under routingKey.
type Publisher interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

// Nop drops every event. Used when no broker is configured.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }

// UserRegisteredPayload is sent after a successful registration.
type UserRegisteredPayload struct {
	UserID   string `json:"user_id"`
	UserName string `json:"username"`
	Email    string `json:"email"`
}

// MemberPayload describes a membership change.
type MemberPayload struct {
	ListID string  `json:"list_id"`
	UserID string  `json:"user_id"`
	RoleID *string `json:"role_id,omitempty"`
	By     string  `json:"by,omitempty"`
}

// ListPayload is sent when a list is created.
type ListPayload struct {
	ListID    string `json:"list_id"`
	Title     string `json:"title"`
	CreatedBy string `json:"created_by"`
}
