package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/matchpairs/memory-backend/game"
	"github.com/matchpairs/memory-backend/models"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameService orchestrates deck creation, token issuance and score
// recording. It is stateless per request: all durable state lives in the
// store, and the codec/TTL are fixed at construction.
type GameService struct {
	db    *gorm.DB
	codec *TokenCodec
	ttl   time.Duration
}

// Game is the process-wide service instance, set up once in main.
var Game *GameService

func InitGameService(db *gorm.DB, secret []byte, ttl time.Duration) {
	Game = NewGameService(db, secret, ttl)
	Leaderboard = NewLeaderboardService(db)
}

func NewGameService(db *gorm.DB, secret []byte, ttl time.Duration) *GameService {
	return &GameService{db: db, codec: NewTokenCodec(secret), ttl: ttl}
}

type StartGameResult struct {
	GameID     string
	TotalCards int
	DeckToken  string
	ExpiresAt  time.Time
}

// StartGame generates a shuffled deck, upserts the player by device id
// (recording the caller's IP), and persists the new game with its signed
// token in a single insert. The token must be presented unmodified on every
// later call for this game.
func (s *GameService) StartGame(deviceID string, numPairs int, ip string) (*StartGameResult, error) {
	deck := game.GenerateDeck(numPairs)

	// Concurrent first-starts for the same device race on the unique
	// device_id index; the loser updates the winner's row instead of
	// erroring.
	player := models.Player{DeviceID: deviceID, LastIP: ip}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"last_ip", "updated_at"}),
	}).Create(&player).Error
	if err != nil {
		return nil, fmt.Errorf("upsert player: %w", err)
	}

	gameID := uuid.NewString()
	expiresAt := time.Now().Add(s.ttl)
	deckToken := s.codec.Sign(gameID, expiresAt)

	deckJSON, err := json.Marshal(deck)
	if err != nil {
		return nil, fmt.Errorf("encode deck: %w", err)
	}

	record := models.Game{
		ID:        gameID,
		DeckJSON:  datatypes.JSON(deckJSON),
		DeckToken: deckToken,
		ExpiresAt: expiresAt,
	}
	if err := s.db.Create(&record).Error; err != nil {
		return nil, fmt.Errorf("create game: %w", err)
	}

	return &StartGameResult{
		GameID:     gameID,
		TotalCards: len(deck),
		DeckToken:  deckToken,
		ExpiresAt:  expiresAt,
	}, nil
}

// RevealCard returns the deck value at position for a game the token was
// issued for. It never mutates anything, so repeated calls for the same
// position return the same value.
func (s *GameService) RevealCard(gameID string, position int, token string) (int, error) {
	deck, err := s.loadDeck(gameID, token)
	if err != nil {
		return 0, err
	}
	if position < 0 || position >= len(deck) {
		return 0, ErrInvalidPosition
	}
	return deck[position], nil
}

// SubmitScore verifies the token against the game and appends a score row
// for the device's player, creating the player if needed. Nothing checks the
// score against the reveals made or binds the game to the submitting device;
// each submission appends a new row, so client retries produce duplicates.
func (s *GameService) SubmitScore(deviceID, gameID string, score int64, token string) error {
	if _, err := s.loadDeck(gameID, token); err != nil {
		return err
	}

	// Unlike StartGame this path does not record the caller's IP.
	player := models.Player{DeviceID: deviceID}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "device_id"}},
		DoNothing: true,
	}).Create(&player).Error
	if err != nil {
		return fmt.Errorf("upsert player: %w", err)
	}
	if player.ID == 0 {
		if err := s.db.Where("device_id = ?", deviceID).First(&player).Error; err != nil {
			return fmt.Errorf("load player: %w", err)
		}
	}

	row := models.Score{PlayerID: player.ID, Score: score}
	if err := s.db.Create(&row).Error; err != nil {
		return fmt.Errorf("create score: %w", err)
	}
	return nil
}

// loadDeck runs the shared trust chain: verify the token signature and
// expiry, match its embedded game id against the requested one, then load
// the stored game and re-check its expiry against the row. The row check is
// redundant with the token today (same TTL) but kept as defense in depth.
func (s *GameService) loadDeck(gameID, token string) (game.Deck, error) {
	claim, err := s.codec.Verify(token)
	if err != nil {
		return nil, err
	}
	if claim.Gid != gameID {
		return nil, ErrTokenGameMismatch
	}

	var record models.Game
	if err := s.db.Where("id = ?", gameID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("load game: %w", err)
	}
	if time.Now().After(record.ExpiresAt) {
		return nil, ErrGameExpired
	}

	var deck game.Deck
	if err := json.Unmarshal(record.DeckJSON, &deck); err != nil {
		return nil, fmt.Errorf("decode deck: %w", err)
	}
	return deck, nil
}
