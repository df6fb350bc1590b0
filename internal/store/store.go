package store

import (
	"log/slog"
	"sort"
	"sync"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

// Store owns all mutable state for the process: users keyed by email, the
// append-only leaderboard log and the fixed live-player snapshots. A single
// RWMutex guards the check-then-write paths; contention is negligible for
// the intended single-process use.
type Store struct {
	mu          sync.RWMutex
	users       map[string]*domain.User
	leaderboard []domain.LeaderboardEntry
	livePlayers []domain.LivePlayer
	logger      *slog.Logger
}

// New creates a store pre-populated with the seed fixtures
func New(logger *slog.Logger) *Store {
	s := &Store{
		users:  make(map[string]*domain.User),
		logger: logger,
	}
	s.seed()
	return s
}

// GetUserByEmail returns the user registered under the given email, or
// false when no user matches.
func (s *Store) GetUserByEmail(email string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[email]
	return user, ok
}

// CreateUser constructs and inserts a new user. Duplicate-email checking is
// the caller's responsibility; an existing entry under the same email is
// overwritten.
func (s *Store) CreateUser(email, password, username string) *domain.User {
	user := domain.NewUser(email, password, username)

	s.mu.Lock()
	s.users[email] = user
	s.mu.Unlock()

	s.logger.Info("user created", "email", email, "username", username)
	return user
}

// Leaderboard returns all entries sorted by score descending, optionally
// filtered to a single mode. The sort is stable so ties keep insertion
// order. An empty mode means no filter; an unknown mode yields no entries.
func (s *Store) Leaderboard(mode domain.Mode) []domain.LeaderboardEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]domain.LeaderboardEntry, 0, len(s.leaderboard))
	for _, e := range s.leaderboard {
		if mode != "" && e.Mode != mode {
			continue
		}
		entries = append(entries, e)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Score > entries[j].Score
	})
	return entries
}

// AddEntry appends an entry to the leaderboard log, then raises the high
// score of every user whose username matches the entry. Usernames are not
// unique, so accounts sharing a name are conflated on purpose; scores only
// ever move up.
func (s *Store) AddEntry(entry domain.LeaderboardEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.leaderboard = append(s.leaderboard, entry)
	for _, user := range s.users {
		if user.Username == entry.Username && entry.Score > user.HighScore {
			user.HighScore = entry.Score
		}
	}
}

// LivePlayers returns the seeded snapshots verbatim
func (s *Store) LivePlayers() []domain.LivePlayer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.livePlayers
}

// LivePlayer returns the snapshot with the given id, or false if absent
func (s *Store) LivePlayer(id string) (domain.LivePlayer, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.livePlayers {
		if p.ID == id {
			return p, true
		}
	}
	return domain.LivePlayer{}, false
}
