// Package games — service.go содержит бизнес-логику жизненного цикла игр.
// Оба пути пассивные: не-админы, не распознанный текст и неизвестные ключи
// молча игнорируются — не каждое сообщение админа относится к играм.
package games

import (
	log "github.com/sirupsen/logrus"

	"group-manager-bot/internal/config"
)

// Service управляет созданием и разрешением игр.
type Service struct {
	registry *Registry
	cfg      *config.Config
}

// NewService создаёт сервис игр.
func NewService(registry *Registry, cfg *config.Config) *Service {
	return &Service{registry: registry, cfg: cfg}
}

// CreateFromMessage пытается создать игру из сообщения админа.
// Для не-админов и неподходящего текста — тихий no-op.
// Запись по занятому ключу перезаписывается без слияния и без ошибки.
func (s *Service) CreateFromMessage(senderID int64, messageID int, text string) bool {
	if !s.cfg.IsAdmin(senderID) {
		return false
	}

	g, ok := ExtractGame(text)
	if !ok {
		return false
	}
	g.MessageID = messageID
	s.registry.Put(messageID, g)

	log.WithFields(log.Fields{
		"message_id": messageID,
		"players":    g.Players,
		"amount":     g.Amount,
	}).Info("Игра создана")

	return true
}

// ResolveFromEdit пытается разрешить игру по правке сообщения админа.
// Событие Resolved возвращается ровно один раз: запись удаляется из реестра,
// повторная правка того же сообщения ничего не даст.
func (s *Service) ResolveFromEdit(senderID int64, messageID int, text string) (*Resolved, bool) {
	if !s.cfg.IsAdmin(senderID) {
		return nil, false
	}

	winner, ok := ExtractWinner(text)
	if !ok {
		return nil, false
	}

	g, ok := s.registry.Pop(messageID)
	if !ok {
		return nil, false
	}
	g.Status = StatusCompleted

	log.WithFields(log.Fields{
		"message_id": messageID,
		"winner":     winner,
		"amount":     g.Amount,
	}).Info("Победитель найден")

	return &Resolved{Winner: winner, Amount: g.Amount, Players: g.Players}, true
}

// ActiveCount возвращает число активных игр.
func (s *Service) ActiveCount() int {
	return s.registry.Count()
}
