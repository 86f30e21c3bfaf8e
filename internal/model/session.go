package model

import (
	"time"

	"github.com/google/uuid"
)

// Session is the server-side record behind a logged-in browser. The
// browser only ever holds a signed token naming the session id; expiry is
// enforced by the store TTL and the token expiry together.
type Session struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
