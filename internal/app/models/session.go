package models

import (
	"time"

	"github.com/YaYiino/inkspace-tattoo-marketplace-sub001/internal/pkg/constvars"
)

// Session is the resolved identity the engine consumes. Identity management
// itself is external; session data arrives as JSON in redis keyed by the
// session id a JWT carries.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    string    `json:"user_id"`
	Role      string    `json:"role"`
	StudioID  string    `json:"studio_id,omitempty"`
	ArtistID  string    `json:"artist_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (s *Session) IsStudioOwner() bool {
	return s.Role == constvars.RoleStudioOwner
}

func (s *Session) IsArtist() bool {
	return s.Role == constvars.RoleArtist
}

func (s *Session) IsNotStudioOwner() bool {
	return !s.IsStudioOwner()
}

func (s *Session) IsNotArtist() bool {
	return !s.IsArtist()
}
