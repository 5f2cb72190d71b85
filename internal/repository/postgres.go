package repository

import (
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	glogger "gorm.io/gorm/logger"

	"github.com/brandonecarr/bidwars/internal/auctionerrors"
	model "github.com/brandonecarr/bidwars/internal/models"
)

// PostgresRepo is a gorm-backed implementation of AuctionDB. Participant name
// uniqueness is enforced by the composite unique index on (session_id, name),
// so two concurrent joins with the same name cannot both commit.
type PostgresRepo struct {
	db *gorm.DB
}

// NewPostgresRepo connects to Postgres and migrates the schema
func NewPostgresRepo(dsn string) (*PostgresRepo, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         glogger.Default.LogMode(glogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("repository: failed to connect to postgres: %w", err)
	}

	if err := db.AutoMigrate(
		&model.Session{},
		&model.Participant{},
		&model.Item{},
		&model.Round{},
		&model.Bid{},
	); err != nil {
		return nil, fmt.Errorf("repository: failed to migrate schema: %w", err)
	}

	return &PostgresRepo{db: db}, nil
}

// CreateSession stores a new session, rejecting duplicate join codes
func (r *PostgresRepo) CreateSession(s model.Session) error {
	if err := r.db.Create(&s).Error; err != nil {
		return fmt.Errorf("create session with code %s: %w", s.Code, auctionerrors.ErrPersistenceFailure)
	}
	return nil
}

// GetSessionByCode returns the session with the given join code
func (r *PostgresRepo) GetSessionByCode(code string) (model.Session, error) {
	var s model.Session
	err := r.db.Where("code = ?", code).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Session{}, fmt.Errorf("get session %s: %w", code, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Session{}, fmt.Errorf("get session %s: %w", code, err)
	}
	return s, nil
}

// UpdateSessionStatus advances a session's lifecycle status
func (r *PostgresRepo) UpdateSessionStatus(sessionID string, status model.SessionStatus) error {
	res := r.db.Model(&model.Session{}).Where("session_id = ?", sessionID).Update("status", status)
	if res.Error != nil {
		return fmt.Errorf("update session %s: %w", sessionID, auctionerrors.ErrPersistenceFailure)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update session %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	return nil
}

// CreateParticipant stores a new participant; the unique index surfaces
// duplicate names as ErrNameTaken
func (r *PostgresRepo) CreateParticipant(p model.Participant) error {
	err := r.db.Create(&p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("create participant %s: %w", p.Name, auctionerrors.ErrNameTaken)
	}
	if err != nil {
		return fmt.Errorf("create participant %s: %w", p.Name, auctionerrors.ErrPersistenceFailure)
	}
	return nil
}

// GetParticipantByToken resolves an opaque bearer token to a participant
func (r *PostgresRepo) GetParticipantByToken(token string) (model.Participant, error) {
	var p model.Participant
	err := r.db.Where("token = ?", token).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Participant{}, fmt.Errorf("get participant by token: %w", auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Participant{}, fmt.Errorf("get participant by token: %w", err)
	}
	return p, nil
}

// GetParticipant returns a participant by id
func (r *PostgresRepo) GetParticipant(participantID string) (model.Participant, error) {
	var p model.Participant
	err := r.db.Where("participant_id = ?", participantID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Participant{}, fmt.Errorf("get participant %s: %w", participantID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Participant{}, fmt.Errorf("get participant %s: %w", participantID, err)
	}
	return p, nil
}

// ListParticipants returns all participants of a session, earliest joiner first
func (r *PostgresRepo) ListParticipants(sessionID string) ([]model.Participant, error) {
	var out []model.Participant
	err := r.db.Where("session_id = ?", sessionID).Order("joined_at asc").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list participants of %s: %w", sessionID, err)
	}
	return out, nil
}

// UpdateBalance overwrites a participant's stored balance
func (r *PostgresRepo) UpdateBalance(participantID string, newBalance int) error {
	res := r.db.Model(&model.Participant{}).Where("participant_id = ?", participantID).Update("balance", newBalance)
	if res.Error != nil {
		return fmt.Errorf("update balance of %s: %w", participantID, auctionerrors.ErrPersistenceFailure)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update balance of %s: %w", participantID, auctionerrors.ErrNotFound)
	}
	return nil
}

// CreateItem stores a new item
func (r *PostgresRepo) CreateItem(item model.Item) error {
	if err := r.db.Create(&item).Error; err != nil {
		return fmt.Errorf("create item %s: %w", item.Name, auctionerrors.ErrPersistenceFailure)
	}
	return nil
}

// GetItem returns an item by id, scoped to a session
func (r *PostgresRepo) GetItem(itemID, sessionID string) (model.Item, error) {
	var item model.Item
	err := r.db.Where("item_id = ? AND session_id = ?", itemID, sessionID).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Item{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

// ListItems returns a session's items in sort order
func (r *PostgresRepo) ListItems(sessionID string) ([]model.Item, error) {
	var out []model.Item
	err := r.db.Where("session_id = ?", sessionID).Order("sort_order asc").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list items of %s: %w", sessionID, err)
	}
	return out, nil
}

// UpdateItem overwrites a stored item
func (r *PostgresRepo) UpdateItem(item model.Item) error {
	res := r.db.Model(&model.Item{}).Where("item_id = ?", item.ItemID).Select("*").Updates(item)
	if res.Error != nil {
		return fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrPersistenceFailure)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update item %s: %w", item.ItemID, auctionerrors.ErrNotFound)
	}
	return nil
}

// CreateRound stores a new round
func (r *PostgresRepo) CreateRound(round model.Round) error {
	if err := r.db.Create(&round).Error; err != nil {
		return fmt.Errorf("create round %d: %w", round.Number, auctionerrors.ErrPersistenceFailure)
	}
	return nil
}

// GetRound returns a round by id, scoped to a session
func (r *PostgresRepo) GetRound(roundID, sessionID string) (model.Round, error) {
	var round model.Round
	err := r.db.Where("round_id = ? AND session_id = ?", roundID, sessionID).First(&round).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Round{}, fmt.Errorf("get round %s: %w", roundID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Round{}, fmt.Errorf("get round %s: %w", roundID, err)
	}
	return round, nil
}

// GetActiveRound returns the session's single active round, if any
func (r *PostgresRepo) GetActiveRound(sessionID string) (model.Round, error) {
	var round model.Round
	err := r.db.Where("session_id = ? AND status = ?", sessionID, model.RoundActive).First(&round).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Round{}, fmt.Errorf("get active round of %s: %w", sessionID, auctionerrors.ErrNotFound)
	}
	if err != nil {
		return model.Round{}, fmt.Errorf("get active round of %s: %w", sessionID, err)
	}
	return round, nil
}

// GetLastRoundNumber returns the highest round number used in a session, 0 if none
func (r *PostgresRepo) GetLastRoundNumber(sessionID string) (int, error) {
	var last int
	err := r.db.Model(&model.Round{}).
		Where("session_id = ?", sessionID).
		Select("COALESCE(MAX(number), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, fmt.Errorf("get last round number of %s: %w", sessionID, err)
	}
	return last, nil
}

// UpdateRound overwrites a stored round
func (r *PostgresRepo) UpdateRound(round model.Round) error {
	res := r.db.Model(&model.Round{}).Where("round_id = ?", round.RoundID).Select("*").Updates(round)
	if res.Error != nil {
		return fmt.Errorf("update round %s: %w", round.RoundID, auctionerrors.ErrPersistenceFailure)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("update round %s: %w", round.RoundID, auctionerrors.ErrNotFound)
	}
	return nil
}

// InsertBid appends a bid record
func (r *PostgresRepo) InsertBid(b model.Bid) error {
	if err := r.db.Create(&b).Error; err != nil {
		return fmt.Errorf("insert bid for round %s: %w", b.RoundID, auctionerrors.ErrPersistenceFailure)
	}
	return nil
}

// GetHighestBid returns the round's top bid, ties broken by earliest timestamp
func (r *PostgresRepo) GetHighestBid(roundID string) (model.Bid, error) {
	var b model.Bid
	err := r.db.Where("round_id = ?", roundID).Order("amount desc, created_at asc").First(&b).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Bid{}, fmt.Errorf("get highest bid for round %s: %w", roundID, auctionerrors.ErrNoBids)
	}
	if err != nil {
		return model.Bid{}, fmt.Errorf("get highest bid for round %s: %w", roundID, err)
	}
	return b, nil
}

// ListBids returns all bids for a round, oldest first
func (r *PostgresRepo) ListBids(roundID string) ([]model.Bid, error) {
	var out []model.Bid
	err := r.db.Where("round_id = ?", roundID).Order("created_at asc").Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list bids for round %s: %w", roundID, err)
	}
	return out, nil
}
