package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"group-manager-bot/internal/common"
)

func TestAdminGuardCheck(t *testing.T) {
	guard := NewAdminGuard([]int64{100, 200}, -1001234)

	// Админ в нужной группе
	assert.NoError(t, guard.Check(100, -1001234))
	assert.NoError(t, guard.Check(200, -1001234))

	// Не-админ — отказ в правах независимо от чата
	assert.ErrorIs(t, guard.Check(300, -1001234), common.ErrNotAdmin)
	assert.ErrorIs(t, guard.Check(300, -999), common.ErrNotAdmin)

	// Админ не в той группе
	assert.ErrorIs(t, guard.Check(100, -999), common.ErrWrongChat)

	// Личный чат с ботом тоже не проходит
	assert.ErrorIs(t, guard.Check(100, 100), common.ErrWrongChat)
}

func TestAdminGuardIsAdmin(t *testing.T) {
	guard := NewAdminGuard([]int64{100}, -1001234)

	assert.True(t, guard.IsAdmin(100))
	assert.False(t, guard.IsAdmin(200))
}

func TestAdminGuardEmptyList(t *testing.T) {
	guard := NewAdminGuard(nil, -1001234)

	assert.ErrorIs(t, guard.Check(100, -1001234), common.ErrNotAdmin)
}
