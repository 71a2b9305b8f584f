package balance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddBalance(t *testing.T) {
	username, amount, ok := parseAddBalance("/addbalance @john123 100")
	require.True(t, ok)
	assert.Equal(t, "john123", username)
	assert.Equal(t, 100.0, amount)

	// Без @ и с дробной суммой
	username, amount, ok = parseAddBalance("/addbalance john123 99.50")
	require.True(t, ok)
	assert.Equal(t, "john123", username)
	assert.Equal(t, 99.5, amount)

	// Регистр команды не важен
	_, _, ok = parseAddBalance("/AddBalance @john123 100")
	assert.True(t, ok)

	// Нет суммы
	_, _, ok = parseAddBalance("/addbalance @john123")
	assert.False(t, ok)

	// Отрицательная сумма не совпадает с шаблоном
	_, _, ok = parseAddBalance("/addbalance @john123 -5")
	assert.False(t, ok)

	_, _, ok = parseAddBalance("/addbalance")
	assert.False(t, ok)
}

func TestParseUsernameArg(t *testing.T) {
	username, ok := parseUsernameArg(balanceRe, "/balance @john123")
	require.True(t, ok)
	assert.Equal(t, "john123", username)

	username, ok = parseUsernameArg(balanceRe, "/balance john123")
	require.True(t, ok)
	assert.Equal(t, "john123", username)

	_, ok = parseUsernameArg(balanceRe, "/balance")
	assert.False(t, ok)

	username, ok = parseUsernameArg(transactionsRe, "/transactions @carol")
	require.True(t, ok)
	assert.Equal(t, "carol", username)
}
