package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModeValid(t *testing.T) {
	assert.True(t, ModePassthrough.Valid())
	assert.True(t, ModeWalls.Valid())
	assert.False(t, Mode("").Valid())
	assert.False(t, Mode("WALLS").Valid())
	assert.False(t, Mode("classic").Valid())
}

func TestIsBusinessError(t *testing.T) {
	for _, err := range []error{
		ErrEmailTaken, ErrUsernameRequired, ErrBadCredentials,
		ErrNotAuthenticated, ErrLoginRequired, ErrPlayerNotFound,
	} {
		assert.True(t, IsBusinessError(err), err.Error())
	}
	assert.False(t, IsBusinessError(ErrInvalidMode))
	assert.False(t, IsBusinessError(ErrInvalidRequest))
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2024, time.December, 1)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-01"`, string(data))

	var parsed Date
	require.NoError(t, json.Unmarshal(data, &parsed))
	assert.True(t, parsed.Equal(d.Time))

	assert.Error(t, json.Unmarshal([]byte(`"12/01/2024"`), &parsed))
}

func TestNewLeaderboardEntry(t *testing.T) {
	entry := NewLeaderboardEntry("SnakeMaster", 1500, ModeWalls)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "SnakeMaster", entry.Username)
	assert.Equal(t, 1500, entry.Score)
	assert.Equal(t, ModeWalls, entry.Mode)
	assert.Equal(t, Today().Format("2006-01-02"), entry.Date.Format("2006-01-02"))
}

func TestUserJSON_HidesPassword(t *testing.T) {
	user := NewUser("a@x.com", "hunter2", "A")

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hunter2")
	assert.Contains(t, string(data), `"highScore":0`)
	assert.Contains(t, string(data), `"email":"a@x.com"`)
}
