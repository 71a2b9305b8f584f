package bot

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandName(t *testing.T) {
	assert.Equal(t, "addbalance", commandName("/addbalance @john123 100"))
	assert.Equal(t, "balance", commandName("/balance @john123"))
	assert.Equal(t, "stats", commandName("/stats"))
	assert.Equal(t, "stats", commandName("/stats@group_manager_bot"))
	assert.Equal(t, "addbalance", commandName("/AddBalance @john123 100"))
	assert.Equal(t, "", commandName("   "))
	assert.Equal(t, "", commandName(""))
}
