package entity

import "time"

// Participant is one member of the duty rotation. Position is a 1-based rank
// that stays contiguous 1..N across removals; at most one participant has
// OnDuty set at any time.
type Participant struct {
	ID          int64
	ChatUserID  string
	DisplayName string
	Position    int
	OnDuty      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ChatMember is one entry of an external channel-membership snapshot.
type ChatMember struct {
	ID          string
	DisplayName string
	IsBot       bool
}
