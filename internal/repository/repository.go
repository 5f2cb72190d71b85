package repository

import (
	"fmt"
	"sort"
	"sync"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	model "github.com/brandonecarr/bidwars/internal/models"
)

// AuctionDB defines the storage interface for the auction game. Every method
// is an atomic single-row read or update; callers needing a wider exclusive
// scope (the bid protocol) hold their own per-round lock around calls.
type AuctionDB interface {
	CreateSession(s model.Session) error
	GetSessionByCode(code string) (model.Session, error)
	UpdateSessionStatus(sessionID string, status model.SessionStatus) error

	CreateParticipant(p model.Participant) error
	GetParticipantByToken(token string) (model.Participant, error)
	GetParticipant(participantID string) (model.Participant, error)
	ListParticipants(sessionID string) ([]model.Participant, error)
	UpdateBalance(participantID string, newBalance int) error

	CreateItem(item model.Item) error
	GetItem(itemID, sessionID string) (model.Item, error)
	ListItems(sessionID string) ([]model.Item, error)
	UpdateItem(item model.Item) error

	CreateRound(r model.Round) error
	GetRound(roundID, sessionID string) (model.Round, error)
	GetActiveRound(sessionID string) (model.Round, error)
	GetLastRoundNumber(sessionID string) (int, error)
	UpdateRound(r model.Round) error

	InsertBid(b model.Bid) error
	GetHighestBid(roundID string) (model.Bid, error)
	ListBids(roundID string) ([]model.Bid, error)
}

// MemoryRepo is a concurrency-safe in-memory implementation of AuctionDB
type MemoryRepo struct {
	mu           sync.RWMutex
	sessions     map[string]model.Session     // key: sessionID
	codes        map[string]string            // key: join code -> sessionID
	participants map[string]model.Participant // key: participantID
	tokens       map[string]string            // key: token -> participantID
	items        map[string]model.Item        // key: itemID
	rounds       map[string]model.Round       // key: roundID
	bids         map[string][]model.Bid       // key: roundID -> list of bids
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		sessions:     make(map[string]model.Session),
		codes:        make(map[string]string),
		participants: make(map[string]model.Participant),
		tokens:       make(map[string]string),
		items:        make(map[string]model.Item),
		rounds:       make(map[string]model.Round),
		bids:         make(map[string][]model.Bid),
	}
}

// CreateSession stores a new session, rejecting duplicate join codes
func (r *MemoryRepo) CreateSession(s model.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if s.SessionID == "" || s.Code == "" {
		return fmt.Errorf("create session: %w - missing id or code", auctionerrors.ErrInvalidInput)
	}
	if _, ok := r.codes[s.Code]; ok {
		return fmt.Errorf("create session with code %s: %w", s.Code, auctionerrors.ErrPersistenceFailure)
	}

	r.sessions[s.SessionID] = s
	r.codes[s.Code] = s.SessionID
	return nil
}

// GetSessionByCode returns the session with the given join code
func (r *MemoryRepo) GetSessionByCode(code string) (model.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.codes[code]
	if !ok {
		return model.Session{}, fmt.Errorf("get session %s: %w", code, auctionerrors.ErrNotFound)
	}
	return r.sessions[id], nil
}

// UpdateSessionStatus advances a session's lifecycle status
func (r *MemoryRepo) UpdateSessionStatus(sessionID string, status model.SessionStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.sessions[sessionID]
	if !ok {
		return fmt.Errorf("update session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	s.Status = status
	r.sessions[sessionID] = s
	return nil
}

// CreateParticipant stores a new participant. Name uniqueness within the
// session is enforced here, under the store's write lock, so two players
// joining with the same name at once cannot both succeed.
func (r *MemoryRepo) CreateParticipant(p model.Participant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[p.SessionID]; !ok {
		return fmt.Errorf("create participant in session %s: %w", p.SessionID, auctionerrors.ErrNotFound)
	}
	for _, existing := range r.participants {
		if existing.SessionID == p.SessionID && existing.Name == p.Name {
			return fmt.Errorf("create participant %s: %w", p.Name, auctionerrors.ErrNameTaken)
		}
	}

	r.participants[p.ParticipantID] = p
	r.tokens[p.Token] = p.ParticipantID
	return nil
}

// GetParticipantByToken resolves an opaque bearer token to a participant
func (r *MemoryRepo) GetParticipantByToken(token string) (model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.tokens[token]
	if !ok {
		return model.Participant{}, fmt.Errorf("get participant by token: %w", auctionerrors.ErrNotFound)
	}
	return r.participants[id], nil
}

// GetParticipant returns a participant by id
func (r *MemoryRepo) GetParticipant(participantID string) (model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.participants[participantID]
	if !ok {
		return model.Participant{}, fmt.Errorf("get participant %s: %w", participantID, auctionerrors.ErrNotFound)
	}
	return p, nil
}

// ListParticipants returns all participants of a session, earliest joiner first
func (r *MemoryRepo) ListParticipants(sessionID string) ([]model.Participant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("list participants of %s: %w", sessionID, auctionerrors.ErrNotFound)
	}

	var out []model.Participant
	for _, p := range r.participants {
		if p.SessionID == sessionID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].JoinedAt.Before(out[j].JoinedAt) })
	return out, nil
}

// UpdateBalance overwrites a participant's stored balance
func (r *MemoryRepo) UpdateBalance(participantID string, newBalance int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.participants[participantID]
	if !ok {
		return fmt.Errorf("update balance of %s: %w", participantID, auctionerrors.ErrNotFound)
	}
	p.Balance = newBalance
	r.participants[participantID] = p
	return nil
}

// CreateItem stores a new item
func (r *MemoryRepo) CreateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[item.SessionID]; !ok {
		return fmt.Errorf("create item in session %s: %w", item.SessionID, auctionerrors.ErrNotFound)
	}
	r.items[item.ItemID] = item
	return nil
}

// GetItem returns an item by id, scoped to a session
func (r *MemoryRepo) GetItem(itemID, sessionID string) (model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok || item.SessionID != sessionID {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrNotFound)
	}
	return item, nil
}

// ListItems returns a session's items in sort order
func (r *MemoryRepo) ListItems(sessionID string) ([]model.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.sessions[sessionID]; !ok {
		return nil, fmt.Errorf("list items of %s: %w", sessionID, auctionerrors.ErrNotFound)
	}

	var out []model.Item
	for _, item := range r.items {
		if item.SessionID == sessionID {
			out = append(out, item)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	return out, nil
}

// UpdateItem overwrites a stored item
func (r *MemoryRepo) UpdateItem(item model.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[item.ItemID]; !ok {
		return fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrNotFound)
	}
	r.items[item.ItemID] = item
	return nil
}

// CreateRound stores a new round
func (r *MemoryRepo) CreateRound(round model.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sessions[round.SessionID]; !ok {
		return fmt.Errorf("create round in session %s: %w", round.SessionID, auctionerrors.ErrNotFound)
	}
	r.rounds[round.RoundID] = round
	return nil
}

// GetRound returns a round by id, scoped to a session
func (r *MemoryRepo) GetRound(roundID, sessionID string) (model.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	round, ok := r.rounds[roundID]
	if !ok || round.SessionID != sessionID {
		return model.Round{}, fmt.Errorf("get round %s: %w", roundID, auctionerrors.ErrNotFound)
	}
	return round, nil
}

// GetActiveRound returns the session's single active round, if any
func (r *MemoryRepo) GetActiveRound(sessionID string) (model.Round, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, round := range r.rounds {
		if round.SessionID == sessionID && round.Status == model.RoundActive {
			return round, nil
		}
	}
	return model.Round{}, fmt.Errorf("get active round of %s: %w", sessionID, auctionerrors.ErrNotFound)
}

// GetLastRoundNumber returns the highest round number used in a session, 0 if none
func (r *MemoryRepo) GetLastRoundNumber(sessionID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	last := 0
	for _, round := range r.rounds {
		if round.SessionID == sessionID && round.Number > last {
			last = round.Number
		}
	}
	return last, nil
}

// UpdateRound overwrites a stored round
func (r *MemoryRepo) UpdateRound(round model.Round) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rounds[round.RoundID]; !ok {
		return fmt.Errorf("update round %s: %w", round.RoundID, auctionerrors.ErrNotFound)
	}
	r.rounds[round.RoundID] = round
	return nil
}

// InsertBid appends a bid to its round's bid list
func (r *MemoryRepo) InsertBid(b model.Bid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rounds[b.RoundID]; !ok {
		return fmt.Errorf("insert bid for round %s: %w", b.RoundID, auctionerrors.ErrNotFound)
	}
	r.bids[b.RoundID] = append(r.bids[b.RoundID], b)
	return nil
}

// GetHighestBid returns the round's top bid, ties broken by earliest timestamp
func (r *MemoryRepo) GetHighestBid(roundID string) (model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	bids, ok := r.bids[roundID]
	if !ok || len(bids) == 0 {
		return model.Bid{}, fmt.Errorf("get highest bid for round %s: %w", roundID, auctionerrors.ErrNoBids)
	}

	highest := bids[0]
	for _, b := range bids[1:] {
		if b.Amount > highest.Amount || (b.Amount == highest.Amount && b.CreatedAt.Before(highest.CreatedAt)) {
			highest = b
		}
	}
	return highest, nil
}

// ListBids returns all bids for a round in insertion order
func (r *MemoryRepo) ListBids(roundID string) ([]model.Bid, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.rounds[roundID]; !ok {
		return nil, fmt.Errorf("list bids for round %s: %w", roundID, auctionerrors.ErrNotFound)
	}
	return append([]model.Bid(nil), r.bids[roundID]...), nil
}
