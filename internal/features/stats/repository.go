// Package stats — агрегатные запросы для отчёта /stats.
package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository считает агрегаты по таблицам users и transactions.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий статистики.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// CountUsers возвращает общее число счетов.
func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта пользователей: %w", err)
	}
	return n, nil
}

// CountUsersWithBalance возвращает число счетов с положительным балансом.
func (r *Repository) CountUsersWithBalance(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users WHERE balance > 0`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта счетов с балансом: %w", err)
	}
	return n, nil
}

// TotalBalance возвращает сумму всех балансов. Пустая таблица — 0.
func (r *Repository) TotalBalance(ctx context.Context) (float64, error) {
	var total float64
	err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(balance), 0) FROM users`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта суммарного баланса: %w", err)
	}
	return total, nil
}

// CountTransactions возвращает число записей в журнале транзакций.
func (r *Repository) CountTransactions(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM transactions`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("ошибка подсчёта транзакций: %w", err)
	}
	return n, nil
}
