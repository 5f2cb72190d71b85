package ledger

import (
	"fmt"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	"github.com/brandonecarr/bidwars/internal/repository"
)

// Ledger owns participant balances. Every operation re-reads the persisted
// balance before mutating it, so a stale in-memory copy can never cause a
// lost update when bids from different participants race.
type Ledger struct {
	repo repository.AuctionDB
}

// NewLedger creates a new Ledger instance
func NewLedger(repo repository.AuctionDB) *Ledger {
	return &Ledger{repo: repo}
}

// Debit removes amount from a participant's balance and returns the new
// balance. Fails with ErrInsufficientFunds when amount exceeds the current
// persisted balance; the balance is untouched on any failure.
func (l *Ledger) Debit(participantID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("ledger: %w - non-positive debit amount", auctionerrors.ErrInvalidInput)
	}

	p, err := l.repo.GetParticipant(participantID)
	if err != nil {
		return 0, fmt.Errorf("ledger: failed to read balance of %s: %w", participantID, err)
	}

	if amount > p.Balance {
		return p.Balance, fmt.Errorf("ledger: %w - balance is %d, need %d", auctionerrors.ErrInsufficientFunds, p.Balance, amount)
	}

	newBalance := p.Balance - amount
	if err := l.repo.UpdateBalance(participantID, newBalance); err != nil {
		return p.Balance, fmt.Errorf("ledger: failed to debit %s: %w", participantID, err)
	}
	return newBalance, nil
}

// Credit adds amount to a participant's balance unconditionally and returns
// the new balance. Used for outbid and skip refunds.
func (l *Ledger) Credit(participantID string, amount int) (int, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("ledger: %w - non-positive credit amount", auctionerrors.ErrInvalidInput)
	}

	p, err := l.repo.GetParticipant(participantID)
	if err != nil {
		return 0, fmt.Errorf("ledger: failed to read balance of %s: %w", participantID, err)
	}

	newBalance := p.Balance + amount
	if err := l.repo.UpdateBalance(participantID, newBalance); err != nil {
		return p.Balance, fmt.Errorf("ledger: failed to credit %s: %w", participantID, err)
	}
	return newBalance, nil
}
