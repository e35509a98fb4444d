// Package queue defines message payloads exchanged over the message
// broker and the background consumer that turns them into an audit log.
package queue

// AuditQueueName is the durable queue all domain events are published to.
const AuditQueueName = "hbnb.audit"

// UserRegisteredEvent is published after a user account is created. It
// carries enough for downstream consumers to log or notify without
// querying the primary store. No password material ever leaves the core.
type UserRegisteredEvent struct {
	Event        string `json:"event"` // always "user.registered"
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	IsAdmin      bool   `json:"is_admin"`
	RegisteredAt string `json:"registered_at"`
}

// ReviewCreatedEvent is published after a review is accepted.
type ReviewCreatedEvent struct {
	Event      string `json:"event"` // always "review.created"
	ReviewID   string `json:"review_id"`
	PlaceID    string `json:"place_id"`
	PlaceTitle string `json:"place_title"`
	UserID     string `json:"user_id"`
	Rating     int    `json:"rating"`
	CreatedAt  string `json:"created_at"`
}
