// Package balance — service.go содержит бизнес-логику леджера.
// Сервис работает со стором через узкий интерфейс: в проде это Repository
// поверх PostgreSQL, в тестах — стор в памяти.
package balance

import (
	"context"
	"sort"

	log "github.com/sirupsen/logrus"

	"group-manager-bot/internal/common"
)

// Store — операции хранения леджера.
type Store interface {
	GetBalance(ctx context.Context, userID int64) (float64, error)
	AddBalance(ctx context.Context, userID int64, username string, amount float64, adminID int64) (float64, error)
	GetUserInfo(ctx context.Context, userID int64) (*UserAccount, error)
	GetByUsername(ctx context.Context, username string) (*UserAccount, error)
	GetTransactionHistory(ctx context.Context, userID int64, limit int) ([]*Transaction, error)
	ListWithBalance(ctx context.Context) ([]*UserAccount, error)
}

// Service управляет леджером.
type Service struct {
	store Store
}

// NewService создаёт сервис леджера.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// GetBalance возвращает текущий баланс. Неизвестный пользователь — 0.
func (s *Service) GetBalance(ctx context.Context, userID int64) (float64, error) {
	return s.store.GetBalance(ctx, userID)
}

// AddBalance начисляет сумму на счёт и пишет транзакцию в журнал.
// Сумма валидируется командным слоем, но стор защищаем и здесь:
// неположительная сумма — отказ, а не порча леджера.
func (s *Service) AddBalance(ctx context.Context, userID int64, username string, amount float64, adminID int64) (float64, error) {
	if amount <= 0 {
		return 0, common.ErrInvalidAmount
	}

	newBalance, err := s.store.AddBalance(ctx, userID, username, amount, adminID)
	if err != nil {
		// Ошибку хранилища нельзя глотать: операция не прошла
		log.WithError(err).WithFields(log.Fields{
			"user_id":  userID,
			"amount":   amount,
			"admin_id": adminID,
		}).Error("Начисление не выполнено")
		return 0, err
	}

	log.WithFields(log.Fields{
		"user_id":     userID,
		"username":    username,
		"amount":      amount,
		"new_balance": newBalance,
		"admin_id":    adminID,
	}).Info("Баланс начислен")

	return newBalance, nil
}

// GetUserInfo возвращает счёт пользователя.
func (s *Service) GetUserInfo(ctx context.Context, userID int64) (*UserAccount, error) {
	return s.store.GetUserInfo(ctx, userID)
}

// GetByUsername возвращает счёт по нику (без @), без учёта регистра.
func (s *Service) GetByUsername(ctx context.Context, username string) (*UserAccount, error) {
	return s.store.GetByUsername(ctx, username)
}

// GetTransactionHistory возвращает последние limit транзакций, свежие первыми.
func (s *Service) GetTransactionHistory(ctx context.Context, userID int64, limit int) ([]*Transaction, error) {
	return s.store.GetTransactionHistory(ctx, userID, limit)
}

// ListWithBalance возвращает счета с положительным балансом,
// отсортированные по убыванию баланса.
func (s *Service) ListWithBalance(ctx context.Context) ([]*UserAccount, error) {
	accounts, err := s.store.ListWithBalance(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(accounts, func(i, j int) bool {
		return accounts[i].Balance > accounts[j].Balance
	})
	return accounts, nil
}
