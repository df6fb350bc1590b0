package store

import (
	"time"

	"github.com/google/uuid"

	"github.com/rfnaufal/snake-spectacle/internal/domain"
)

// seed populates the store with the fixed sample data: one registered user,
// two leaderboard entries and two live-player snapshots. Called once from
// New; state resets on every process restart.
func (s *Store) seed() {
	user := s.CreateUser("player1@example.com", "password123", "SnakeMaster")
	user.HighScore = 1500

	s.leaderboard = append(s.leaderboard,
		domain.LeaderboardEntry{
			ID:       uuid.NewString(),
			Username: "SnakeMaster",
			Score:    1500,
			Mode:     domain.ModeWalls,
			Date:     domain.NewDate(2024, time.December, 1),
		},
		domain.LeaderboardEntry{
			ID:       uuid.NewString(),
			Username: "VenomStrike",
			Score:    1200,
			Mode:     domain.ModePassthrough,
			Date:     domain.NewDate(2024, time.December, 2),
		},
	)

	s.livePlayers = []domain.LivePlayer{
		{
			ID:       "live1",
			Username: "GhostPlayer",
			Score:    300,
			Mode:     domain.ModePassthrough,
			Snake:    []domain.Position{{X: 5, Y: 5}, {X: 4, Y: 5}},
			Food:     domain.Position{X: 10, Y: 10},
			Status:   domain.StatusPlaying,
		},
		{
			ID:       "live2",
			Username: "ArcadeHero",
			Score:    450,
			Mode:     domain.ModeWalls,
			Snake:    []domain.Position{{X: 10, Y: 10}, {X: 9, Y: 10}},
			Food:     domain.Position{X: 15, Y: 15},
			Status:   domain.StatusPlaying,
		},
	}
}
