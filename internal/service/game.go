package service

import (
	"log/slog"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
	"github.com/rfnaufal/snake-spectacle/internal/store"
)

// Broadcaster pushes leaderboard activity to connected spectators.
// Implemented by *websocket.Hub.
type Broadcaster interface {
	BroadcastScore(entry domain.LeaderboardEntry)
}

// GameService provides business logic for auth, leaderboard and live-player
// operations on top of the in-memory store.
type GameService struct {
	store  *store.Store
	hub    Broadcaster
	logger *slog.Logger
}

// NewGameService creates a new game service
func NewGameService(store *store.Store, logger *slog.Logger) *GameService {
	return &GameService{
		store:  store,
		logger: logger,
	}
}

// SetHub wires the spectator hub used for score broadcasts
func (s *GameService) SetHub(hub Broadcaster) {
	s.hub = hub
}

// Signup registers a new user. The duplicate-email check happens here, not
// in the store, so Signup is the single gate on email uniqueness.
func (s *GameService) Signup(creds domain.Credentials) (*domain.User, error) {
	if _, exists := s.store.GetUserByEmail(creds.Email); exists {
		return nil, domain.ErrEmailTaken
	}
	if creds.Username == "" {
		return nil, domain.ErrUsernameRequired
	}
	return s.store.CreateUser(creds.Email, creds.Password, creds.Username), nil
}

// Login checks the given credentials against the store. Passwords are
// compared in plaintext; this is a mock backend with no hashing.
func (s *GameService) Login(creds domain.Credentials) (*domain.User, error) {
	user, ok := s.store.GetUserByEmail(creds.Email)
	if !ok || user.Password != creds.Password {
		return nil, domain.ErrBadCredentials
	}
	return user, nil
}

// Leaderboard returns entries sorted by score descending, optionally
// filtered by mode.
func (s *GameService) Leaderboard(mode domain.Mode) []domain.LeaderboardEntry {
	return s.store.Leaderboard(mode)
}

// SubmitScore records a score for the given user and notifies spectators.
// The entry carries the submitting user's username, which is also how high
// scores get raised, so accounts sharing a username move together.
func (s *GameService) SubmitScore(user *domain.User, submission domain.ScoreSubmission) (domain.LeaderboardEntry, error) {
	if user == nil {
		return domain.LeaderboardEntry{}, domain.ErrLoginRequired
	}
	if !submission.Mode.Valid() {
		return domain.LeaderboardEntry{}, domain.ErrInvalidMode
	}

	entry := domain.NewLeaderboardEntry(user.Username, submission.Score, submission.Mode)
	s.store.AddEntry(entry)

	s.logger.Info("score submitted",
		"username", entry.Username,
		"score", entry.Score,
		"mode", entry.Mode,
	)

	if s.hub != nil {
		s.hub.BroadcastScore(entry)
	}

	return entry, nil
}

// LivePlayers returns all seeded live-player snapshots
func (s *GameService) LivePlayers() []domain.LivePlayer {
	return s.store.LivePlayers()
}

// LivePlayer returns a single snapshot by id
func (s *GameService) LivePlayer(id string) (domain.LivePlayer, error) {
	player, ok := s.store.LivePlayer(id)
	if !ok {
		return domain.LivePlayer{}, domain.ErrPlayerNotFound
	}
	return player, nil
}
