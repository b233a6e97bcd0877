package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session binds a cookie-carried token to a verified email. Created on OTP
// verification, revoked on logout.
type Session struct {
	Base
	Token     uuid.UUID  `db:"token"`
	Email     string     `db:"email"`
	ExpiresAt time.Time  `db:"expires_at"`
	RevokedAt *time.Time `db:"revoked_at"`
}
