package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInt64CSV(t *testing.T) {
	ids, err := parseInt64CSV("123, 456,789")
	require.NoError(t, err)
	assert.Equal(t, []int64{123, 456, 789}, ids)

	_, err = parseInt64CSV("123,abc")
	assert.Error(t, err)

	ids, err = parseInt64CSV("")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestIsAdmin(t *testing.T) {
	cfg := &Config{AdminIDs: []int64{1, 9}}
	assert.True(t, cfg.IsAdmin(9))
	assert.False(t, cfg.IsAdmin(2))
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		GroupID:                 -100123,
		AdminIDs:                []int64{1},
		BotMaxInflight:          64,
		BotUpdateTimeoutSeconds: 60,
		DBMaxConns:              25,
		DBMinConns:              5,
		BalanceListLimit:        20,
		BalanceHistoryLimit:     10,
	}
	require.NoError(t, cfg.Validate())

	cfg.GroupID = 0
	assert.Error(t, cfg.Validate())
}
