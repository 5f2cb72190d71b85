package models

import "time"

// SessionStatus tracks a game's lifecycle. Transitions are monotonic:
// lobby -> active -> completed, never backwards.
type SessionStatus string

const (
	SessionLobby     SessionStatus = "lobby"
	SessionActive    SessionStatus = "active"
	SessionCompleted SessionStatus = "completed"
)

// RoundStatus tracks a bag's auction lifecycle.
type RoundStatus string

const (
	RoundActive RoundStatus = "active"
	RoundSold   RoundStatus = "sold"
	RoundUnsold RoundStatus = "unsold"
)

// ItemStatus tracks whether an item has been assigned to a sold round.
type ItemStatus string

const (
	ItemPending ItemStatus = "pending"
	ItemSold    ItemStatus = "sold"
)

// AnonMode controls how much of an item players see before the reveal.
type AnonMode string

const (
	AnonVisible AnonMode = "visible"
	AnonHidden  AnonMode = "hidden"
	AnonPartial AnonMode = "partial"
)

// Session represents one complete game instance, identified by a short join code
type Session struct {
	SessionID       string        `json:"session_id" gorm:"primaryKey;column:session_id"`
	Code            string        `json:"code" gorm:"uniqueIndex"`
	AdminName       string        `json:"admin_name"`
	AdminToken      string        `json:"-" gorm:"index"`
	StartingBalance int           `json:"starting_balance"`
	Status          SessionStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// Participant represents a player (or the admin playing) in a session
type Participant struct {
	ParticipantID string    `json:"participant_id" gorm:"primaryKey;column:participant_id"`
	SessionID     string    `json:"session_id" gorm:"index;uniqueIndex:idx_session_name"`
	Name          string    `json:"name" gorm:"uniqueIndex:idx_session_name"`
	Token         string    `json:"-" gorm:"uniqueIndex"`
	Balance       int       `json:"balance"`
	IsAdmin       bool      `json:"is_admin"`
	JoinedAt      time.Time `json:"joined_at"`
}

// Item represents an auctionable item, revealed only after a bag is sold
type Item struct {
	ItemID      string     `json:"item_id" gorm:"primaryKey;column:item_id"`
	SessionID   string     `json:"session_id" gorm:"index"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	StartingBid int        `json:"starting_bid"`
	AnonMode    AnonMode   `json:"anon_mode"`
	AnonHint    string     `json:"anon_hint"`
	Status      ItemStatus `json:"status"`
	SortOrder   int        `json:"sort_order"`
	SoldTo      string     `json:"sold_to,omitempty"`
	SoldPrice   int        `json:"sold_price,omitempty"`
}

// Round represents one bag up for auction. What is actually inside the bag
// (the item) is linked only after the round resolves, so the bidding war and
// the reveal stay independent events.
type Round struct {
	RoundID   string      `json:"round_id" gorm:"primaryKey;column:round_id"`
	SessionID string      `json:"session_id" gorm:"index"`
	Number    int         `json:"number"`
	Status    RoundStatus `json:"status"`
	ItemID    string      `json:"item_id,omitempty"`
	SoldTo    string      `json:"sold_to,omitempty"`
	SoldPrice int         `json:"sold_price,omitempty"`
	CreatedAt time.Time   `json:"created_at"`
}

// Bid is an append-only record of one accepted bid on a round
type Bid struct {
	BidID         string    `json:"bid_id" gorm:"primaryKey;column:bid_id"`
	RoundID       string    `json:"round_id" gorm:"index"`
	ParticipantID string    `json:"participant_id"`
	Amount        int       `json:"amount"`
	CreatedAt     time.Time `json:"created_at"`
}
