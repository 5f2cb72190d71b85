package helpers

// Request/Response DTOs
type CreateSessionRequest struct {
	AdminName       string `json:"admin_name" binding:"required,max=30"`
	StartingBalance int    `json:"starting_balance" binding:"omitempty,min=100,max=10000000"`
}

type CreateSessionResponse struct {
	SessionID        string `json:"session_id"`
	Code             string `json:"code"`
	AdminToken       string `json:"admin_token"`
	ParticipantToken string `json:"participant_token"`
	StartingBalance  int    `json:"starting_balance"`
}

type JoinSessionRequest struct {
	Name string `json:"name" binding:"required,max=30"`
}

type JoinSessionResponse struct {
	ParticipantID string `json:"participant_id"`
	Name          string `json:"name"`
	Balance       int    `json:"balance"`
	Token         string `json:"token"`
}

type AddItemRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"omitempty,max=500"`
	StartingBid int    `json:"starting_bid" binding:"omitempty,min=1"`
	AnonMode    string `json:"anon_mode" binding:"omitempty,oneof=visible hidden partial"`
	AnonHint    string `json:"anon_hint" binding:"omitempty,max=50"`
}

type PlaceBidRequest struct {
	RoundID string `json:"round_id" binding:"required"`
	Amount  int    `json:"amount" binding:"required,gt=0"`
}

type BidResponse struct {
	BidID         string `json:"bid_id"`
	RoundID       string `json:"round_id"`
	ParticipantID string `json:"participant_id"`
	Amount        int    `json:"amount"`
	NewBalance    int    `json:"new_balance"`
	CreatedAt     string `json:"created_at"`
}

type AssignItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}
