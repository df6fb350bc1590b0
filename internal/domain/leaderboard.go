package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Date is a calendar day serialized as YYYY-MM-DD
type Date struct {
	time.Time
}

// NewDate returns the given calendar day
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Today returns the current calendar day
func Today() Date {
	now := time.Now()
	return NewDate(now.Year(), now.Month(), now.Day())
}

// MarshalJSON encodes the date as "2006-01-02"
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.Format("2006-01-02"))), nil
}

// UnmarshalJSON decodes a "2006-01-02" date
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return fmt.Errorf("parsing date: %w", err)
	}
	d.Time = t
	return nil
}

// LeaderboardEntry represents a single submitted score. Entries are
// append-only facts: once recorded they are never mutated or removed.
type LeaderboardEntry struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Score    int    `json:"score"`
	Mode     Mode   `json:"mode"`
	Date     Date   `json:"date"`
}

// NewLeaderboardEntry constructs an entry dated today with a generated id
func NewLeaderboardEntry(username string, score int, mode Mode) LeaderboardEntry {
	return LeaderboardEntry{
		ID:       uuid.NewString(),
		Username: username,
		Score:    score,
		Mode:     mode,
		Date:     Today(),
	}
}

// ScoreSubmission represents a request to record a score
type ScoreSubmission struct {
	Score int  `json:"score"`
	Mode  Mode `json:"mode"`
}
