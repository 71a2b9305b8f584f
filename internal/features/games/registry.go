// Package games — registry.go хранит активные игры в памяти.
// Реестр сам владеет своей синхронизацией: никакого общего глобального
// состояния, к которому обращаются обработчики напрямую.
package games

import "sync"

// Registry — потокобезопасное отображение message_id → активная игра.
// Игры живут только в памяти: рестарт процесса теряет все активные игры,
// это принятое ограничение, а не баг.
type Registry struct {
	mu    sync.Mutex
	games map[int]*Game
}

// NewRegistry создаёт пустой реестр игр.
func NewRegistry() *Registry {
	return &Registry{games: make(map[int]*Game)}
}

// Put записывает игру по ключу messageID.
// Существующая запись молча перезаписывается (last-write-wins).
func (r *Registry) Put(messageID int, g *Game) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.games[messageID] = g
}

// Pop удаляет и возвращает игру по ключу messageID.
// Возвращает (nil, false), если записи нет — повторный Pop того же ключа
// срабатывает максимум один раз.
func (r *Registry) Pop(messageID int) (*Game, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	g, ok := r.games[messageID]
	if !ok {
		return nil, false
	}
	delete(r.games, messageID)
	return g, true
}

// Count возвращает число активных игр (для /stats).
func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.games)
}
