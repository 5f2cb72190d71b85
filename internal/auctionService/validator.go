package auction

import (
	"fmt"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	model "github.com/brandonecarr/bidwars/internal/models"
)

// MinimumBid returns the lowest acceptable next bid for a round: one unit
// above the current highest bid, or 1 when the bag has no bids yet.
func MinimumBid(highest *model.Bid) int {
	if highest != nil {
		return highest.Amount + 1
	}
	return 1
}

// ValidateBid decides whether a proposed bid is acceptable. It is a pure
// decision function: it runs before any ledger or round mutation, so every
// rejection is side-effect-free. Error messages carry the computed minimum
// so the UI never has to re-derive the rules.
func ValidateBid(round model.Round, highest *model.Bid, bidderID string, balance, amount int) error {
	if round.Status != model.RoundActive {
		return fmt.Errorf("auction: %w", auctionerrors.ErrRoundNotActive)
	}

	minimum := MinimumBid(highest)
	if amount < minimum {
		return fmt.Errorf("auction: %w - bid must be at least %d", auctionerrors.ErrBidTooLow, minimum)
	}

	if highest != nil && highest.ParticipantID == bidderID {
		return fmt.Errorf("auction: %w", auctionerrors.ErrAlreadyHighestBidder)
	}

	if amount > balance {
		return fmt.Errorf("auction: %w - balance is %d, bid is %d", auctionerrors.ErrInsufficientFunds, balance, amount)
	}

	return nil
}
