package store

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSeedData(t *testing.T) {
	s := newTestStore(t)

	user, ok := s.GetUserByEmail("player1@example.com")
	require.True(t, ok)
	assert.Equal(t, "SnakeMaster", user.Username)
	assert.Equal(t, "password123", user.Password)
	assert.Equal(t, 1500, user.HighScore)
	assert.NotEmpty(t, user.ID)

	entries := s.Leaderboard("")
	require.Len(t, entries, 2)
	assert.Equal(t, "SnakeMaster", entries[0].Username)
	assert.Equal(t, 1500, entries[0].Score)
	assert.Equal(t, "VenomStrike", entries[1].Username)

	players := s.LivePlayers()
	require.Len(t, players, 2)
	assert.Equal(t, "live1", players[0].ID)
	assert.Equal(t, "live2", players[1].ID)
}

func TestGetUserByEmail_Unknown(t *testing.T) {
	s := newTestStore(t)

	_, ok := s.GetUserByEmail("nobody@example.com")
	assert.False(t, ok)
}

func TestCreateUser(t *testing.T) {
	s := newTestStore(t)

	user := s.CreateUser("a@x.com", "p", "A")
	require.NotNil(t, user)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "A", user.Username)
	assert.Equal(t, 0, user.HighScore)
	assert.False(t, user.CreatedAt.IsZero())

	found, ok := s.GetUserByEmail("a@x.com")
	require.True(t, ok)
	assert.Same(t, user, found)
}

func TestLeaderboard_SortAndFilter(t *testing.T) {
	s := newTestStore(t)

	s.AddEntry(domain.NewLeaderboardEntry("A", 2000, domain.ModeWalls))
	s.AddEntry(domain.NewLeaderboardEntry("B", 100, domain.ModePassthrough))

	all := s.Leaderboard("")
	require.Len(t, all, 4)
	assert.Equal(t, []int{2000, 1500, 1200, 100}, scores(all))

	walls := s.Leaderboard(domain.ModeWalls)
	require.Len(t, walls, 2)
	for _, e := range walls {
		assert.Equal(t, domain.ModeWalls, e.Mode)
	}

	// Unknown mode strings filter everything out rather than erroring
	assert.Empty(t, s.Leaderboard(domain.Mode("bogus")))
}

func TestLeaderboard_StableTies(t *testing.T) {
	s := newTestStore(t)

	first := domain.NewLeaderboardEntry("First", 7777, domain.ModeWalls)
	second := domain.NewLeaderboardEntry("Second", 7777, domain.ModeWalls)
	s.AddEntry(first)
	s.AddEntry(second)

	entries := s.Leaderboard("")
	require.Len(t, entries, 4)
	// Tied scores keep insertion order
	assert.Equal(t, first.ID, entries[0].ID)
	assert.Equal(t, second.ID, entries[1].ID)
}

func TestAddEntry_RaisesHighScore(t *testing.T) {
	s := newTestStore(t)
	user := s.CreateUser("a@x.com", "p", "A")

	s.AddEntry(domain.NewLeaderboardEntry("A", 9000, domain.ModeWalls))
	assert.Equal(t, 9000, user.HighScore)

	// A lower score leaves the high score untouched
	s.AddEntry(domain.NewLeaderboardEntry("A", 50, domain.ModePassthrough))
	assert.Equal(t, 9000, user.HighScore)

	// An equal score is not strictly higher, so no update either
	s.AddEntry(domain.NewLeaderboardEntry("A", 9000, domain.ModeWalls))
	assert.Equal(t, 9000, user.HighScore)
}

func TestAddEntry_ConflatesSharedUsernames(t *testing.T) {
	s := newTestStore(t)

	// Usernames are not unique: every account with the submitted name moves
	one := s.CreateUser("one@x.com", "p", "Twin")
	two := s.CreateUser("two@x.com", "p", "Twin")
	other := s.CreateUser("other@x.com", "p", "Solo")

	s.AddEntry(domain.NewLeaderboardEntry("Twin", 4242, domain.ModeWalls))

	assert.Equal(t, 4242, one.HighScore)
	assert.Equal(t, 4242, two.HighScore)
	assert.Equal(t, 0, other.HighScore)
}

func TestLivePlayer_Lookup(t *testing.T) {
	s := newTestStore(t)

	player, ok := s.LivePlayer("live1")
	require.True(t, ok)
	assert.Equal(t, "GhostPlayer", player.Username)
	assert.Equal(t, 300, player.Score)
	assert.Equal(t, domain.ModePassthrough, player.Mode)
	assert.Equal(t, []domain.Position{{X: 5, Y: 5}, {X: 4, Y: 5}}, player.Snake)
	assert.Equal(t, domain.Position{X: 10, Y: 10}, player.Food)
	assert.Equal(t, domain.StatusPlaying, player.Status)

	_, ok = s.LivePlayer("nope")
	assert.False(t, ok)
}

func scores(entries []domain.LeaderboardEntry) []int {
	out := make([]int, len(entries))
	for i, e := range entries {
		out[i] = e.Score
	}
	return out
}
