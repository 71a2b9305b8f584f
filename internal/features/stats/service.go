// Package stats — service.go собирает сводный отчёт о состоянии бота.
package stats

import (
	"context"
	"fmt"
	"time"

	"group-manager-bot/internal/common"
)

// Counter — источник агрегатов по леджеру.
type Counter interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersWithBalance(ctx context.Context) (int64, error)
	TotalBalance(ctx context.Context) (float64, error)
	CountTransactions(ctx context.Context) (int64, error)
}

// GameCounter — источник числа активных игр.
type GameCounter interface {
	ActiveCount() int
}

// Report — снимок статистики на момент запроса.
type Report struct {
	TotalUsers        int64
	UsersWithBalance  int64
	TotalBalance      float64
	TotalTransactions int64
	ActiveGames       int
	GeneratedAt       time.Time
}

// Service собирает статистику из леджера и реестра игр.
type Service struct {
	counter Counter
	games   GameCounter
}

// NewService создаёт сервис статистики.
func NewService(counter Counter, games GameCounter) *Service {
	return &Service{counter: counter, games: games}
}

// BuildReport собирает снимок статистики.
func (s *Service) BuildReport(ctx context.Context) (*Report, error) {
	totalUsers, err := s.counter.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	withBalance, err := s.counter.CountUsersWithBalance(ctx)
	if err != nil {
		return nil, err
	}
	totalBalance, err := s.counter.TotalBalance(ctx)
	if err != nil {
		return nil, err
	}
	totalTxs, err := s.counter.CountTransactions(ctx)
	if err != nil {
		return nil, err
	}

	return &Report{
		TotalUsers:        totalUsers,
		UsersWithBalance:  withBalance,
		TotalBalance:      totalBalance,
		TotalTransactions: totalTxs,
		ActiveGames:       s.games.ActiveCount(),
		GeneratedAt:       time.Now(),
	}, nil
}

// FormatReport форматирует отчёт в текст для отправки в чат.
func FormatReport(r *Report) string {
	return fmt.Sprintf(
		"📊 **Bot Statistics**\n\n"+
			"👥 **Users:**\n"+
			"• Total Users: %s\n"+
			"• Users with Balance: %s\n\n"+
			"💰 **Financial:**\n"+
			"• Total Balance: %s\n"+
			"• Total Transactions: %s\n\n"+
			"🎮 **Games:**\n"+
			"• Active Games: %d\n\n"+
			"📅 **Last Updated:** %s",
		common.FormatCount(r.TotalUsers),
		common.FormatCount(r.UsersWithBalance),
		common.FormatCurrency(r.TotalBalance),
		common.FormatCount(r.TotalTransactions),
		r.ActiveGames,
		common.FormatDateTime(r.GeneratedAt),
	)
}
