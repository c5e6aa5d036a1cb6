package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Subscription is a tenant-owned webhook registration. It is created and
// updated by the subscription CRUD layer; the delivery pipeline consumes
// it read-only. The signing secret is write-once: rotation issues a new
// secret value under the same subscription id.
type Subscription struct {
	ID         uuid.UUID  `json:"id"`
	TenantID   uuid.UUID  `json:"tenant_id"`
	TargetURL  string     `json:"target_url"`
	SecretEnc  string     `json:"-"` // AES-256-GCM encrypted at rest
	EventTypes []string   `json:"event_types"`
	Active     bool       `json:"active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Matches reports whether the subscription is subscribed to eventType.
func (s *Subscription) Matches(eventType string) bool {
	for _, t := range s.EventTypes {
		if t == eventType {
			return true
		}
	}
	return false
}

// MaskSecret returns the only representation of a signing secret ever
// shown after creation: the first 8 characters followed by asterisks.
func MaskSecret(secret string) string {
	const visible = 8
	if len(secret) <= visible {
		return strings.Repeat("*", len(secret))
	}
	return secret[:visible] + strings.Repeat("*", len(secret)-visible)
}
