package games

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryPutPop(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, 0, r.Count())

	r.Put(1, &Game{Amount: 100, Status: StatusActive})
	assert.Equal(t, 1, r.Count())

	g, ok := r.Pop(1)
	require.True(t, ok)
	assert.Equal(t, 100, g.Amount)
	assert.Equal(t, 0, r.Count())

	// Повторный Pop того же ключа — промах
	_, ok = r.Pop(1)
	assert.False(t, ok)
}

func TestRegistryLastWriteWins(t *testing.T) {
	r := NewRegistry()
	r.Put(7, &Game{Amount: 100})
	r.Put(7, &Game{Amount: 500})

	g, ok := r.Pop(7)
	require.True(t, ok)
	assert.Equal(t, 500, g.Amount)
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			r.Put(id, &Game{Amount: id + 1})
			r.Pop(id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, r.Count())
}
