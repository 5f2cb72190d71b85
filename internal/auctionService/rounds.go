package auction

import (
	"errors"
	"fmt"
	"time"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	"github.com/brandonecarr/bidwars/internal/events"
	"github.com/brandonecarr/bidwars/internal/ledger"
	model "github.com/brandonecarr/bidwars/internal/models"
	"github.com/brandonecarr/bidwars/internal/repository"
	"github.com/brandonecarr/bidwars/utils"
)

// StateMachine owns the round lifecycle: starting bags, resolving them as
// sold or unsold, revealing items, and ending the session. All operations
// are admin-authenticated with the session's admin token.
type StateMachine struct {
	repo      repository.AuctionDB
	ledger    *ledger.Ledger
	publisher events.Publisher
	locks     *RoundLocks
}

// NewStateMachine creates a new StateMachine instance
func NewStateMachine(repo repository.AuctionDB, led *ledger.Ledger, pub events.Publisher, locks *RoundLocks) *StateMachine {
	return &StateMachine{
		repo:      repo,
		ledger:    led,
		publisher: pub,
		locks:     locks,
	}
}

// verifyAdmin resolves a session by code and checks the admin token
func (s *StateMachine) verifyAdmin(code, adminToken string) (model.Session, error) {
	if adminToken == "" {
		return model.Session{}, fmt.Errorf("auction: %w - missing admin token", auctionerrors.ErrUnauthorized)
	}

	sess, err := s.repo.GetSessionByCode(utils.NormalizeSessionCode(code))
	if err != nil {
		return model.Session{}, fmt.Errorf("auction: failed to find session %s: %w", code, err)
	}
	if sess.AdminToken != adminToken {
		return model.Session{}, fmt.Errorf("auction: %w - not the admin of this game", auctionerrors.ErrUnauthorized)
	}
	return sess, nil
}

// StartRound opens the next bag for bidding. At most one round per session
// may be active; starting the first round moves a lobby session to active.
func (s *StateMachine) StartRound(code, adminToken string) (model.Round, error) {
	sess, err := s.verifyAdmin(code, adminToken)
	if err != nil {
		return model.Round{}, err
	}

	// The active-round check and the create must not interleave with another
	// StartRound or EndSession, so both run under the session's lock.
	unlock := s.locks.Lock(sess.SessionID)
	defer unlock()

	sess, err = s.repo.GetSessionByCode(sess.Code)
	if err != nil {
		return model.Round{}, fmt.Errorf("auction: failed to re-read session %s: %w", code, err)
	}
	if sess.Status == model.SessionCompleted {
		return model.Round{}, fmt.Errorf("auction: %w", auctionerrors.ErrSessionCompleted)
	}

	if _, err := s.repo.GetActiveRound(sess.SessionID); err == nil {
		return model.Round{}, fmt.Errorf("auction: %w", auctionerrors.ErrRoundAlreadyActive)
	} else if !errors.Is(err, auctionerrors.ErrNotFound) {
		return model.Round{}, fmt.Errorf("auction: failed to check active round: %w", err)
	}

	last, err := s.repo.GetLastRoundNumber(sess.SessionID)
	if err != nil {
		return model.Round{}, fmt.Errorf("auction: failed to read last round number: %w", err)
	}

	if sess.Status == model.SessionLobby {
		if err := s.repo.UpdateSessionStatus(sess.SessionID, model.SessionActive); err != nil {
			return model.Round{}, fmt.Errorf("auction: %w - failed to activate session", auctionerrors.ErrPersistenceFailure)
		}
	}

	round := model.Round{
		RoundID:   utils.GenerateID(),
		SessionID: sess.SessionID,
		Number:    last + 1,
		Status:    model.RoundActive,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateRound(round); err != nil {
		return model.Round{}, fmt.Errorf("auction: %w - failed to create round", auctionerrors.ErrPersistenceFailure)
	}

	s.publisher.Publish(sess.Code, events.EventRoundStarted, map[string]any{
		"round_id": round.RoundID,
		"number":   round.Number,
	})
	return round, nil
}

// ResolveSold closes an active round. With a highest bid the round goes sold,
// recording winner and price; the winner was already debited at bid time and
// every other bidder was already refunded when outbid, so no balance moves
// here. With no bids the round goes unsold.
func (s *StateMachine) ResolveSold(code, adminToken, roundID string) (model.Round, error) {
	sess, err := s.verifyAdmin(code, adminToken)
	if err != nil {
		return model.Round{}, err
	}

	unlock := s.locks.Lock(roundID)
	defer unlock()

	round, err := s.repo.GetRound(roundID, sess.SessionID)
	if err != nil {
		return model.Round{}, fmt.Errorf("auction: failed to find round %s: %w", roundID, err)
	}
	if round.Status != model.RoundActive {
		return model.Round{}, fmt.Errorf("auction: %w", auctionerrors.ErrRoundNotActive)
	}

	highest, err := s.repo.GetHighestBid(roundID)
	if errors.Is(err, auctionerrors.ErrNoBids) {
		return s.markUnsold(sess, round, "unsold")
	}
	if err != nil {
		return model.Round{}, fmt.Errorf("auction: failed to read highest bid: %w", err)
	}

	round.Status = model.RoundSold
	round.SoldTo = highest.ParticipantID
	round.SoldPrice = highest.Amount
	if err := s.repo.UpdateRound(round); err != nil {
		return model.Round{}, fmt.Errorf("auction: %w - failed to resolve round", auctionerrors.ErrPersistenceFailure)
	}

	payload := map[string]any{
		"round_id":    round.RoundID,
		"winner_id":   highest.ParticipantID,
		"final_price": highest.Amount,
	}
	if winner, err := s.repo.GetParticipant(highest.ParticipantID); err == nil {
		payload["winner_name"] = winner.Name
	}
	s.publisher.Publish(sess.Code, events.EventRoundSold, payload)
	return round, nil
}

// ResolveSkip abandons an active round: the current highest bidder gets a
// full refund (everyone else already got theirs when outbid) and the round
// goes unsold.
func (s *StateMachine) ResolveSkip(code, adminToken, roundID string) (model.Round, error) {
	sess, err := s.verifyAdmin(code, adminToken)
	if err != nil {
		return model.Round{}, err
	}

	unlock := s.locks.Lock(roundID)
	defer unlock()

	round, err := s.repo.GetRound(roundID, sess.SessionID)
	if err != nil {
		return model.Round{}, fmt.Errorf("auction: failed to find round %s: %w", roundID, err)
	}
	if round.Status != model.RoundActive {
		return model.Round{}, fmt.Errorf("auction: %w", auctionerrors.ErrRoundNotActive)
	}

	return s.skipLocked(sess, round)
}

// skipLocked refunds the leading bidder and marks the round unsold.
// Caller holds the round lock.
func (s *StateMachine) skipLocked(sess model.Session, round model.Round) (model.Round, error) {
	highest, err := s.repo.GetHighestBid(round.RoundID)
	if err == nil {
		if _, err := s.ledger.Credit(highest.ParticipantID, highest.Amount); err != nil {
			return model.Round{}, fmt.Errorf("auction: %w - failed to refund highest bidder", auctionerrors.ErrPersistenceFailure)
		}
	} else if !errors.Is(err, auctionerrors.ErrNoBids) {
		return model.Round{}, fmt.Errorf("auction: failed to read highest bid: %w", err)
	}

	return s.markUnsold(sess, round, "skipped")
}

func (s *StateMachine) markUnsold(sess model.Session, round model.Round, result string) (model.Round, error) {
	round.Status = model.RoundUnsold
	if err := s.repo.UpdateRound(round); err != nil {
		return model.Round{}, fmt.Errorf("auction: %w - failed to resolve round", auctionerrors.ErrPersistenceFailure)
	}

	s.publisher.Publish(sess.Code, events.EventRoundSkipped, map[string]any{
		"round_id": round.RoundID,
		"result":   result,
	})
	return round, nil
}

// AssignItem links a sold round to the item that was actually in the bag,
// copying the round's winner and price onto the item. The reveal is a
// separate event from the financial resolution, so it can happen whenever
// the admin is ready for the drama.
func (s *StateMachine) AssignItem(code, adminToken, roundID, itemID string) (model.Item, error) {
	sess, err := s.verifyAdmin(code, adminToken)
	if err != nil {
		return model.Item{}, err
	}

	unlock := s.locks.Lock(roundID)
	defer unlock()

	round, err := s.repo.GetRound(roundID, sess.SessionID)
	if err != nil {
		return model.Item{}, fmt.Errorf("auction: failed to find round %s: %w", roundID, err)
	}
	if round.Status != model.RoundSold {
		return model.Item{}, fmt.Errorf("auction: %w - round is not sold", auctionerrors.ErrInvalidInput)
	}
	if round.ItemID != "" {
		return model.Item{}, fmt.Errorf("auction: %w - round already has its item", auctionerrors.ErrInvalidInput)
	}

	item, err := s.repo.GetItem(itemID, sess.SessionID)
	if err != nil {
		return model.Item{}, fmt.Errorf("auction: failed to find item %s: %w", itemID, err)
	}
	if item.Status != model.ItemPending {
		return model.Item{}, fmt.Errorf("auction: %w - item was already revealed", auctionerrors.ErrInvalidInput)
	}

	round.ItemID = item.ItemID
	if err := s.repo.UpdateRound(round); err != nil {
		return model.Item{}, fmt.Errorf("auction: %w - failed to link item", auctionerrors.ErrPersistenceFailure)
	}

	item.Status = model.ItemSold
	item.SoldTo = round.SoldTo
	item.SoldPrice = round.SoldPrice
	if err := s.repo.UpdateItem(item); err != nil {
		return model.Item{}, fmt.Errorf("auction: %w - failed to mark item sold", auctionerrors.ErrPersistenceFailure)
	}

	s.publisher.Publish(sess.Code, events.EventItemAssigned, map[string]any{
		"round_id":   round.RoundID,
		"item_id":    item.ItemID,
		"item_name":  item.Name,
		"winner_id":  item.SoldTo,
		"sold_price": item.SoldPrice,
	})
	return item, nil
}

// EndSession moves the session to completed. A still-active round is skipped
// first, refunding its leading bidder, so ending the game never strands
// anyone's money in an unresolved bag.
func (s *StateMachine) EndSession(code, adminToken string) error {
	sess, err := s.verifyAdmin(code, adminToken)
	if err != nil {
		return err
	}

	unlock := s.locks.Lock(sess.SessionID)
	defer unlock()

	sess, err = s.repo.GetSessionByCode(sess.Code)
	if err != nil {
		return fmt.Errorf("auction: failed to re-read session %s: %w", code, err)
	}
	if sess.Status == model.SessionCompleted {
		return fmt.Errorf("auction: %w", auctionerrors.ErrSessionCompleted)
	}

	if round, err := s.repo.GetActiveRound(sess.SessionID); err == nil {
		unlockRound := s.locks.Lock(round.RoundID)
		// Re-read under the round lock: a resolution that won the race has
		// already settled the money, and a sold round must stay sold.
		round, rerr := s.repo.GetRound(round.RoundID, sess.SessionID)
		var skipErr error
		if rerr == nil && round.Status == model.RoundActive {
			_, skipErr = s.skipLocked(sess, round)
		}
		unlockRound()
		if rerr != nil {
			return fmt.Errorf("auction: failed to re-read active round: %w", rerr)
		}
		if skipErr != nil {
			return skipErr
		}
	} else if !errors.Is(err, auctionerrors.ErrNotFound) {
		return fmt.Errorf("auction: failed to check active round: %w", err)
	}

	if err := s.repo.UpdateSessionStatus(sess.SessionID, model.SessionCompleted); err != nil {
		return fmt.Errorf("auction: %w - failed to complete session", auctionerrors.ErrPersistenceFailure)
	}

	s.publisher.Publish(sess.Code, events.EventSessionEnded, map[string]any{})
	return nil
}
