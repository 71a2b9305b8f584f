package middleware

import (
	"sync"
	"time"
)

// RateLimiter ограничивает частоту сообщений на пользователя
// скользящим окном: не больше limit сообщений за window.
type RateLimiter struct {
	mu     sync.Mutex
	seen   map[int64][]time.Time
	limit  int
	window time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
}

// NewRateLimiter создаёт лимитер и запускает фоновую очистку.
func NewRateLimiter(limit int, window time.Duration) *RateLimiter {
	rl := &RateLimiter{
		seen:   make(map[int64][]time.Time),
		limit:  limit,
		window: window,
		stopCh: make(chan struct{}),
	}
	go rl.cleanupLoop()
	return rl
}

// Allow сообщает, можно ли обработать очередное сообщение пользователя.
func (rl *RateLimiter) Allow(userID int64) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	recent := rl.prune(rl.seen[userID], now)

	if len(recent) >= rl.limit {
		rl.seen[userID] = recent
		return false
	}

	rl.seen[userID] = append(recent, now)
	return true
}

// Close останавливает фоновую очистку. Вызывается на shutdown.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stopCh) })
}

// prune отбрасывает отметки старше окна. Вызывать под mu.
func (rl *RateLimiter) prune(times []time.Time, now time.Time) []time.Time {
	cutoff := now.Add(-rl.window)
	i := 0
	for i < len(times) && !times[i].After(cutoff) {
		i++
	}
	return times[i:]
}

// cleanupLoop периодически выкидывает пользователей без свежих отметок,
// иначе карта растёт бесконечно.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stopCh:
			return
		case <-ticker.C:
			rl.mu.Lock()
			now := time.Now()
			for userID, times := range rl.seen {
				recent := rl.prune(times, now)
				if len(recent) == 0 {
					delete(rl.seen, userID)
				} else {
					rl.seen[userID] = recent
				}
			}
			rl.mu.Unlock()
		}
	}
}
