package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	model "github.com/brandonecarr/bidwars/internal/models"
	"github.com/brandonecarr/bidwars/internal/repository"
	"github.com/brandonecarr/bidwars/utils"
)

const (
	minStartingBalance     = 100
	maxStartingBalance     = 10_000_000
	defaultStartingBalance = 1000

	maxNameLen     = 30
	maxItemNameLen = 100
	maxDescLen     = 500
	maxHintLen     = 50

	codeAttempts = 5
)

// Service owns session setup: creating games, joining them, adding items,
// and assembling the pull-based state view for clients.
type Service struct {
	repo repository.AuctionDB
}

// NewService creates a new session Service instance
func NewService(repo repository.AuctionDB) *Service {
	return &Service{repo: repo}
}

// CreateSessionInput carries the admin's setup choices
type CreateSessionInput struct {
	AdminName       string
	StartingBalance int
}

// AddItemInput carries a new auction item
type AddItemInput struct {
	Name        string
	Description string
	StartingBid int
	AnonMode    model.AnonMode
	AnonHint    string
}

// State is the full pull-based view of a game for clients
type State struct {
	Session      model.Session       `json:"session"`
	Participants []model.Participant `json:"participants"`
	Items        []model.Item        `json:"items"`
	ActiveRound  *model.Round        `json:"active_round,omitempty"`
	Bids         []model.Bid         `json:"bids,omitempty"`
}

// Create sets up a new game: a session with a fresh join code and the admin
// seeded as its first participant.
func (s *Service) Create(in CreateSessionInput) (model.Session, model.Participant, error) {
	if in.AdminName == "" || len(in.AdminName) > maxNameLen {
		return model.Session{}, model.Participant{}, fmt.Errorf("session: %w - admin name must be 1-%d characters", auctionerrors.ErrInvalidInput, maxNameLen)
	}
	if in.StartingBalance == 0 {
		in.StartingBalance = defaultStartingBalance
	}
	if in.StartingBalance < minStartingBalance || in.StartingBalance > maxStartingBalance {
		return model.Session{}, model.Participant{}, fmt.Errorf("session: %w - starting balance must be between %d and %d", auctionerrors.ErrInvalidInput, minStartingBalance, maxStartingBalance)
	}

	sess := model.Session{
		SessionID:       utils.GenerateID(),
		AdminName:       in.AdminName,
		AdminToken:      utils.GenerateToken(),
		StartingBalance: in.StartingBalance,
		Status:          model.SessionLobby,
		CreatedAt:       time.Now().UTC(),
	}

	// Retry on join-code collision; five misses on a 32^5 space means the
	// store is in trouble anyway.
	var err error
	for i := 0; i < codeAttempts; i++ {
		sess.Code = utils.GenerateSessionCode()
		if err = s.repo.CreateSession(sess); err == nil {
			break
		}
	}
	if err != nil {
		return model.Session{}, model.Participant{}, fmt.Errorf("session: failed to create session: %w", err)
	}

	admin := model.Participant{
		ParticipantID: utils.GenerateID(),
		SessionID:     sess.SessionID,
		Name:          in.AdminName,
		Token:         utils.GenerateToken(),
		Balance:       sess.StartingBalance,
		IsAdmin:       true,
		JoinedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateParticipant(admin); err != nil {
		return model.Session{}, model.Participant{}, fmt.Errorf("session: failed to create admin participant: %w", err)
	}

	return sess, admin, nil
}

// Join adds a new participant to an open game. Duplicate names are rejected
// by the store's uniqueness constraint, not a check-then-insert.
func (s *Service) Join(code, name string) (model.Participant, error) {
	if name == "" || len(name) > maxNameLen {
		return model.Participant{}, fmt.Errorf("session: %w - name must be 1-%d characters", auctionerrors.ErrInvalidInput, maxNameLen)
	}

	sess, err := s.repo.GetSessionByCode(utils.NormalizeSessionCode(code))
	if err != nil {
		return model.Participant{}, fmt.Errorf("session: failed to find game %s: %w", code, err)
	}
	if sess.Status == model.SessionCompleted {
		return model.Participant{}, fmt.Errorf("session: %w", auctionerrors.ErrSessionCompleted)
	}

	participant := model.Participant{
		ParticipantID: utils.GenerateID(),
		SessionID:     sess.SessionID,
		Name:          name,
		Token:         utils.GenerateToken(),
		Balance:       sess.StartingBalance,
		IsAdmin:       false,
		JoinedAt:      time.Now().UTC(),
	}
	if err := s.repo.CreateParticipant(participant); err != nil {
		if errors.Is(err, auctionerrors.ErrNameTaken) {
			return model.Participant{}, fmt.Errorf("session: %w", auctionerrors.ErrNameTaken)
		}
		return model.Participant{}, fmt.Errorf("session: failed to join game: %w", err)
	}

	return participant, nil
}

// Me resolves a bearer token to its participant
func (s *Service) Me(token string) (model.Participant, error) {
	if token == "" {
		return model.Participant{}, fmt.Errorf("session: %w - missing participant token", auctionerrors.ErrUnauthorized)
	}
	p, err := s.repo.GetParticipantByToken(token)
	if err != nil {
		return model.Participant{}, fmt.Errorf("session: %w - unknown participant token", auctionerrors.ErrUnauthorized)
	}
	return p, nil
}

// State assembles the full game view: session, participants, items, and the
// active round with its bids if one is open.
func (s *Service) State(code string) (State, error) {
	sess, err := s.repo.GetSessionByCode(utils.NormalizeSessionCode(code))
	if err != nil {
		return State{}, fmt.Errorf("session: failed to find game %s: %w", code, err)
	}

	participants, err := s.repo.ListParticipants(sess.SessionID)
	if err != nil {
		return State{}, fmt.Errorf("session: failed to list participants: %w", err)
	}
	items, err := s.repo.ListItems(sess.SessionID)
	if err != nil {
		return State{}, fmt.Errorf("session: failed to list items: %w", err)
	}

	state := State{
		Session:      sess,
		Participants: participants,
		Items:        items,
	}

	round, err := s.repo.GetActiveRound(sess.SessionID)
	if errors.Is(err, auctionerrors.ErrNotFound) {
		return state, nil
	}
	if err != nil {
		return State{}, fmt.Errorf("session: failed to read active round: %w", err)
	}

	state.ActiveRound = &round
	bids, err := s.repo.ListBids(round.RoundID)
	if err != nil {
		return State{}, fmt.Errorf("session: failed to list bids: %w", err)
	}
	state.Bids = bids

	return state, nil
}

// AddItem registers a new auction item, admin only. Items are appended to
// the end of the reveal order.
func (s *Service) AddItem(code, adminToken string, in AddItemInput) (model.Item, error) {
	if adminToken == "" {
		return model.Item{}, fmt.Errorf("session: %w - missing admin token", auctionerrors.ErrUnauthorized)
	}
	sess, err := s.repo.GetSessionByCode(utils.NormalizeSessionCode(code))
	if err != nil {
		return model.Item{}, fmt.Errorf("session: failed to find game %s: %w", code, err)
	}
	if sess.AdminToken != adminToken {
		return model.Item{}, fmt.Errorf("session: %w - not the admin of this game", auctionerrors.ErrUnauthorized)
	}

	if in.Name == "" || len(in.Name) > maxItemNameLen {
		return model.Item{}, fmt.Errorf("session: %w - item name must be 1-%d characters", auctionerrors.ErrInvalidInput, maxItemNameLen)
	}
	if len(in.Description) > maxDescLen || len(in.AnonHint) > maxHintLen {
		return model.Item{}, fmt.Errorf("session: %w - description or hint too long", auctionerrors.ErrInvalidInput)
	}
	if in.StartingBid == 0 {
		in.StartingBid = 1
	}
	if in.StartingBid < 1 {
		return model.Item{}, fmt.Errorf("session: %w - starting bid must be at least 1", auctionerrors.ErrInvalidInput)
	}
	switch in.AnonMode {
	case "":
		in.AnonMode = model.AnonVisible
	case model.AnonVisible, model.AnonHidden, model.AnonPartial:
	default:
		return model.Item{}, fmt.Errorf("session: %w - unknown anon mode %q", auctionerrors.ErrInvalidInput, in.AnonMode)
	}

	existing, err := s.repo.ListItems(sess.SessionID)
	if err != nil {
		return model.Item{}, fmt.Errorf("session: failed to list items: %w", err)
	}

	item := model.Item{
		ItemID:      utils.GenerateID(),
		SessionID:   sess.SessionID,
		Name:        in.Name,
		Description: in.Description,
		StartingBid: in.StartingBid,
		AnonMode:    in.AnonMode,
		AnonHint:    in.AnonHint,
		Status:      model.ItemPending,
		SortOrder:   len(existing),
	}
	if err := s.repo.CreateItem(item); err != nil {
		return model.Item{}, fmt.Errorf("session: failed to add item: %w", err)
	}

	return item, nil
}

// ListItems returns a game's items in reveal order
func (s *Service) ListItems(code string) ([]model.Item, error) {
	sess, err := s.repo.GetSessionByCode(utils.NormalizeSessionCode(code))
	if err != nil {
		return nil, fmt.Errorf("session: failed to find game %s: %w", code, err)
	}
	items, err := s.repo.ListItems(sess.SessionID)
	if err != nil {
		return nil, fmt.Errorf("session: failed to list items: %w", err)
	}
	return items, nil
}
