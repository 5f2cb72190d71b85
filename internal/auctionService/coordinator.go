package auction

import (
	"errors"
	"fmt"
	"time"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	"github.com/brandonecarr/bidwars/internal/ledger"
	model "github.com/brandonecarr/bidwars/internal/models"
	"github.com/brandonecarr/bidwars/internal/repository"
	"github.com/brandonecarr/bidwars/utils"
)

// Coordinator orchestrates bid submission end-to-end: authenticate, validate,
// move money, record the bid. Each bid commits the bidder's full amount; a
// bidder who is later outbid gets the full amount back, so a bid's cost never
// depends on the bidder's earlier bids on the same bag.
type Coordinator struct {
	repo   repository.AuctionDB
	ledger *ledger.Ledger
	locks  *RoundLocks
}

// NewCoordinator creates a new Coordinator instance
func NewCoordinator(repo repository.AuctionDB, led *ledger.Ledger, locks *RoundLocks) *Coordinator {
	return &Coordinator{
		repo:   repo,
		ledger: led,
		locks:  locks,
	}
}

// PlaceBid validates and records a participant's bid on a round, returning
// the accepted bid and the bidder's new balance. The whole protocol runs
// under the round's lock, so two simultaneous bids on the same round are
// serialized and the loser is validated against the winner's amount.
func (c *Coordinator) PlaceBid(token, roundID string, amount int) (model.Bid, int, error) {
	if token == "" {
		return model.Bid{}, 0, fmt.Errorf("auction: %w - missing participant token", auctionerrors.ErrUnauthorized)
	}
	if roundID == "" || amount <= 0 {
		return model.Bid{}, 0, fmt.Errorf("auction: %w - missing round id or non-positive amount", auctionerrors.ErrInvalidInput)
	}

	bidder, err := c.repo.GetParticipantByToken(token)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("auction: %w - unknown participant token", auctionerrors.ErrUnauthorized)
	}

	unlock := c.locks.Lock(roundID)
	defer unlock()

	// Everything below reads current persisted state; the round lock keeps
	// it consistent until the bid is recorded.
	round, err := c.repo.GetRound(roundID, bidder.SessionID)
	if err != nil {
		return model.Bid{}, bidder.Balance, fmt.Errorf("auction: %w - no such round in this game", auctionerrors.ErrRoundNotActive)
	}

	var highest *model.Bid
	if hb, err := c.repo.GetHighestBid(roundID); err == nil {
		highest = &hb
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return model.Bid{}, bidder.Balance, fmt.Errorf("auction: failed to read highest bid: %w", err)
	}

	bidder, err = c.repo.GetParticipant(bidder.ParticipantID)
	if err != nil {
		return model.Bid{}, 0, fmt.Errorf("auction: failed to re-read bidder: %w", err)
	}

	if err := ValidateBid(round, highest, bidder.ParticipantID, bidder.Balance, amount); err != nil {
		return model.Bid{}, bidder.Balance, err
	}

	newBalance, err := c.ledger.Debit(bidder.ParticipantID, amount)
	if err != nil {
		return model.Bid{}, bidder.Balance, err
	}

	// Full refund-on-outbid: the previous leader gets their entire commitment back.
	if highest != nil && highest.ParticipantID != bidder.ParticipantID {
		if _, err := c.ledger.Credit(highest.ParticipantID, highest.Amount); err != nil {
			c.compensate(bidder.ParticipantID, amount)
			return model.Bid{}, bidder.Balance, fmt.Errorf("auction: %w - failed to refund previous bidder", auctionerrors.ErrPersistenceFailure)
		}
	}

	bid := model.Bid{
		BidID:         utils.GenerateID(),
		RoundID:       roundID,
		ParticipantID: bidder.ParticipantID,
		Amount:        amount,
		CreatedAt:     time.Now().UTC(),
	}

	if err := c.repo.InsertBid(bid); err != nil {
		c.compensate(bidder.ParticipantID, amount)
		return model.Bid{}, bidder.Balance, fmt.Errorf("auction: %w - failed to record bid", auctionerrors.ErrPersistenceFailure)
	}

	return bid, newBalance, nil
}

// compensate credits back a debit after a later step failed. Best effort: a
// failure here is logged loudly, never swallowed into the returned error.
func (c *Coordinator) compensate(participantID string, amount int) {
	if _, err := c.ledger.Credit(participantID, amount); err != nil {
		utils.Error("bid compensation failed, balance needs manual repair", map[string]any{
			"participant_id": participantID,
			"amount":         amount,
			"error":          err.Error(),
		})
	}
}

// ListBids returns all bids for a round, oldest first. Bid lists are pulled
// by clients, not pushed.
func (c *Coordinator) ListBids(token, roundID string) ([]model.Bid, error) {
	participant, err := c.repo.GetParticipantByToken(token)
	if err != nil {
		return nil, fmt.Errorf("auction: %w - unknown participant token", auctionerrors.ErrUnauthorized)
	}

	if _, err := c.repo.GetRound(roundID, participant.SessionID); err != nil {
		return nil, fmt.Errorf("auction: failed to find round %s: %w", roundID, err)
	}

	bids, err := c.repo.ListBids(roundID)
	if err != nil {
		return nil, fmt.Errorf("auction: failed to list bids for round %s: %w", roundID, err)
	}
	return bids, nil
}
