package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/matchpairs/memory-backend/config"
	"github.com/matchpairs/memory-backend/game"
	"github.com/matchpairs/memory-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func newTestGameService(t *testing.T) *GameService {
	t.Helper()
	return NewGameService(newTestDB(t), []byte("test-secret"), 10*time.Minute)
}

func TestStartGame_IssuesDeckAndToken(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)
	require.Equal(t, 4, result.TotalCards)
	require.NotEmpty(t, result.GameID)
	require.WithinDuration(t, time.Now().Add(10*time.Minute), result.ExpiresAt, 5*time.Second)

	// The token decodes to the returned game id.
	claim, err := svc.codec.Verify(result.DeckToken)
	require.NoError(t, err)
	require.Equal(t, result.GameID, claim.Gid)

	// The full deck is a permutation of {0,0,1,1}.
	counts := make(map[int]int)
	for pos := 0; pos < result.TotalCards; pos++ {
		v, err := svc.RevealCard(result.GameID, pos, result.DeckToken)
		require.NoError(t, err)
		counts[v]++
	}
	require.Equal(t, map[int]int{0: 2, 1: 2}, counts)
}

func TestStartGame_DefaultPairs(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 0, "1.2.3.4")
	require.NoError(t, err)
	require.Equal(t, 2*game.DefaultPairs, result.TotalCards)
}

func TestStartGame_UpsertsPlayerIP(t *testing.T) {
	svc := newTestGameService(t)

	_, err := svc.StartGame("d1", 2, "1.1.1.1")
	require.NoError(t, err)
	_, err = svc.StartGame("d1", 2, "2.2.2.2")
	require.NoError(t, err)

	var players []models.Player
	require.NoError(t, svc.db.Find(&players).Error)
	require.Len(t, players, 1)
	require.Equal(t, "d1", players[0].DeviceID)
	require.Equal(t, "2.2.2.2", players[0].LastIP)
}

func TestRevealCard_Idempotent(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 4, "1.2.3.4")
	require.NoError(t, err)

	first, err := svc.RevealCard(result.GameID, 3, result.DeckToken)
	require.NoError(t, err)
	second, err := svc.RevealCard(result.GameID, 3, result.DeckToken)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestRevealCard_TokenGameMismatch(t *testing.T) {
	svc := newTestGameService(t)

	a, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)
	b, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)

	// Valid token for game A presented against game B.
	_, err = svc.RevealCard(b.GameID, 0, a.DeckToken)
	require.ErrorIs(t, err, ErrTokenGameMismatch)
}

func TestRevealCard_InvalidPosition(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)

	_, err = svc.RevealCard(result.GameID, 4, result.DeckToken)
	require.ErrorIs(t, err, ErrInvalidPosition)
	_, err = svc.RevealCard(result.GameID, -1, result.DeckToken)
	require.ErrorIs(t, err, ErrInvalidPosition)
}

func TestRevealCard_UnknownGame(t *testing.T) {
	svc := newTestGameService(t)

	token := svc.codec.Sign("ghost", time.Now().Add(time.Minute))
	_, err := svc.RevealCard("ghost", 0, token)
	require.ErrorIs(t, err, ErrGameNotFound)
}

func TestRevealCard_GameExpired(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)

	// Age the stored row past its expiry; the token itself is still valid,
	// so this exercises the store-side check.
	err = svc.db.Model(&models.Game{}).
		Where("id = ?", result.GameID).
		Update("expires_at", time.Now().Add(-time.Minute)).Error
	require.NoError(t, err)

	_, err = svc.RevealCard(result.GameID, 0, result.DeckToken)
	require.ErrorIs(t, err, ErrGameExpired)
}

func TestSubmitScore_AppendsRows(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)

	// Two submissions for the same game both land; nothing deduplicates.
	require.NoError(t, svc.SubmitScore("d1", result.GameID, 40, result.DeckToken))
	require.NoError(t, svc.SubmitScore("d1", result.GameID, 60, result.DeckToken))

	var scores []models.Score
	require.NoError(t, svc.db.Order("id").Find(&scores).Error)
	require.Len(t, scores, 2)
	require.Equal(t, int64(40), scores[0].Score)
	require.Equal(t, int64(60), scores[1].Score)
}

func TestSubmitScore_CreatesPlayerWithoutIP(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)

	// A device that never called StartGame can still submit.
	require.NoError(t, svc.SubmitScore("d2", result.GameID, 10, result.DeckToken))

	var player models.Player
	require.NoError(t, svc.db.Where("device_id = ?", "d2").First(&player).Error)
	require.Empty(t, player.LastIP)
}

func TestSubmitScore_BadToken(t *testing.T) {
	svc := newTestGameService(t)

	result, err := svc.StartGame("d1", 2, "1.2.3.4")
	require.NoError(t, err)

	err = svc.SubmitScore("d1", result.GameID, 10, "garbage")
	require.ErrorIs(t, err, ErrMalformedToken)

	other := NewTokenCodec([]byte("other-secret")).Sign(result.GameID, time.Now().Add(time.Minute))
	err = svc.SubmitScore("d1", result.GameID, 10, other)
	require.ErrorIs(t, err, ErrBadSignature)
}
