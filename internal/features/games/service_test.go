package games

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"group-manager-bot/internal/config"
)

const (
	adminID    = int64(9)
	strangerID = int64(42)
)

func newTestService() *Service {
	cfg := &config.Config{AdminIDs: []int64{adminID}, GroupID: -100500}
	return NewService(NewRegistry(), cfg)
}

func TestGameLifecycle(t *testing.T) {
	s := newTestService()

	created := s.CreateFromMessage(adminID, 10, "alice\nbob\n100 Full")
	require.True(t, created)
	assert.Equal(t, 1, s.ActiveCount())

	resolved, ok := s.ResolveFromEdit(adminID, 10, "alice\n@bob ✅\n100 Full")
	require.True(t, ok)
	assert.Equal(t, "bob", resolved.Winner)
	assert.Equal(t, 100, resolved.Amount)
	assert.Equal(t, []string{"alice", "bob"}, resolved.Players)
	assert.Equal(t, 0, s.ActiveCount())

	// Вторая правка того же сообщения — ключа уже нет, события нет
	_, ok = s.ResolveFromEdit(adminID, 10, "alice\n@bob ✅\n100 Full")
	assert.False(t, ok)
}

func TestCreateIgnoresNonAdmin(t *testing.T) {
	s := newTestService()

	created := s.CreateFromMessage(strangerID, 10, "alice\nbob\n100 Full")
	assert.False(t, created)
	assert.Equal(t, 0, s.ActiveCount())
}

func TestResolveIgnoresNonAdmin(t *testing.T) {
	s := newTestService()
	require.True(t, s.CreateFromMessage(adminID, 10, "alice\nbob\n100 Full"))

	_, ok := s.ResolveFromEdit(strangerID, 10, "@alice ✅")
	assert.False(t, ok)
	// Игра осталась активной
	assert.Equal(t, 1, s.ActiveCount())
}

func TestResolveUnknownMessage(t *testing.T) {
	s := newTestService()

	_, ok := s.ResolveFromEdit(adminID, 99, "@alice ✅")
	assert.False(t, ok)
}

func TestResolveWithoutWinnerKeepsGame(t *testing.T) {
	s := newTestService()
	require.True(t, s.CreateFromMessage(adminID, 10, "alice\nbob\n100 Full"))

	// Правка без галочки — не разрешение игры
	_, ok := s.ResolveFromEdit(adminID, 10, "alice\nbob\n150 Full")
	assert.False(t, ok)
	assert.Equal(t, 1, s.ActiveCount())
}

func TestCreateOverwritesSameMessage(t *testing.T) {
	s := newTestService()
	require.True(t, s.CreateFromMessage(adminID, 10, "alice\n100 Full"))
	require.True(t, s.CreateFromMessage(adminID, 10, "carol\n500 Full"))
	assert.Equal(t, 1, s.ActiveCount())

	resolved, ok := s.ResolveFromEdit(adminID, 10, "✅ carol")
	require.True(t, ok)
	assert.Equal(t, 500, resolved.Amount)
	assert.Equal(t, []string{"carol"}, resolved.Players)
}
