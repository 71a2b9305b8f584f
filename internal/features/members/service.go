// Package members — service.go содержит бизнес-логику учёта участников.
package members

import (
	"context"

	log "github.com/sirupsen/logrus"
)

// Service управляет учётом участников группы.
type Service struct {
	repo *Repository
}

// NewService создаёт сервис участников.
func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// EnsureMember гарантирует актуальную запись пользователя в базе.
// Вызывается на каждое сообщение в группе и на событие вступления:
// так username в базе не отстаёт от реального.
func (s *Service) EnsureMember(ctx context.Context, userID int64, username, firstName, lastName string) error {
	err := s.repo.Upsert(ctx, &Member{
		UserID:    userID,
		Username:  username,
		FirstName: firstName,
		LastName:  lastName,
	})
	if err != nil {
		return err
	}

	log.WithFields(log.Fields{
		"user_id":  userID,
		"username": username,
	}).Debug("Участник учтён")
	return nil
}

// GetByUsername возвращает участника по @username (без @), без учёта регистра.
func (s *Service) GetByUsername(ctx context.Context, username string) (*Member, error) {
	return s.repo.GetByUsername(ctx, username)
}

// IsMember проверяет, известен ли пользователь боту.
func (s *Service) IsMember(ctx context.Context, userID int64) (bool, error) {
	return s.repo.Exists(ctx, userID)
}
