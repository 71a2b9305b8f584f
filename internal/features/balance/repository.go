// Package balance — repository.go выполняет все операции с таблицами users и transactions.
// Денежные операции выполняются в транзакциях БД для целостности данных.
package balance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"group-manager-bot/internal/common"
)

// Repository предоставляет методы для работы со счетами и журналом транзакций.
type Repository struct {
	db *pgxpool.Pool
}

// NewRepository создаёт репозиторий леджера.
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// GetBalance возвращает текущий баланс пользователя.
// Неизвестный пользователь — это 0, а не ошибка.
func (r *Repository) GetBalance(ctx context.Context, userID int64) (float64, error) {
	query := `SELECT balance FROM users WHERE user_id = $1`
	var bal float64
	err := r.db.QueryRow(ctx, query, userID).Scan(&bal)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("ошибка получения баланса: %w", err)
	}
	return bal, nil
}

// AddBalance начисляет сумму на счёт пользователя и пишет транзакцию в журнал.
// Обе записи выполняются в одной транзакции БД: либо обе зафиксируются,
// либо ни одной. UPDATE по строке счёта заодно сериализует конкурентные
// начисления одному и тому же пользователю на уровне БД.
// Возвращает новый баланс.
func (r *Repository) AddBalance(ctx context.Context, userID int64, username string, amount float64, adminID int64) (float64, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("ошибка начала транзакции: %w", err)
	}
	defer tx.Rollback(ctx)

	// Обновляем счёт атомарно: balance читается и увеличивается одним
	// запросом, поэтому read-modify-write гонки здесь нет
	var newBalance float64
	err = tx.QueryRow(ctx, `
		INSERT INTO users (user_id, username, balance, last_updated)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (user_id) DO UPDATE
		SET username = EXCLUDED.username,
		    balance = users.balance + EXCLUDED.balance,
		    last_updated = NOW()
		RETURNING balance
	`, userID, username, amount).Scan(&newBalance)
	if err != nil {
		return 0, fmt.Errorf("ошибка начисления: %w", err)
	}

	// Пишем транзакцию в журнал
	_, err = tx.Exec(ctx, `
		INSERT INTO transactions
			(user_id, username, amount, transaction_type, admin_id, previous_balance, new_balance)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, userID, username, amount, TxTypeAddBalance, adminID, newBalance-amount, newBalance)
	if err != nil {
		return 0, fmt.Errorf("ошибка записи транзакции: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("ошибка фиксации транзакции: %w", err)
	}
	return newBalance, nil
}

// GetUserInfo возвращает счёт пользователя.
// Если счёта нет — common.ErrUserNotFound.
func (r *Repository) GetUserInfo(ctx context.Context, userID int64) (*UserAccount, error) {
	query := `
		SELECT id, user_id, username, balance, last_updated
		FROM users WHERE user_id = $1
	`
	var a UserAccount
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&a.ID, &a.UserID, &a.Username, &a.Balance, &a.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения счёта (user_id=%d): %w", userID, err)
	}
	return &a, nil
}

// GetByUsername ищет счёт по нику без учёта регистра.
// Если счёта нет — common.ErrUserNotFound.
func (r *Repository) GetByUsername(ctx context.Context, username string) (*UserAccount, error) {
	query := `
		SELECT id, user_id, username, balance, last_updated
		FROM users WHERE LOWER(username) = LOWER($1)
	`
	var a UserAccount
	err := r.db.QueryRow(ctx, query, username).Scan(
		&a.ID, &a.UserID, &a.Username, &a.Balance, &a.LastUpdated,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.ErrUserNotFound
		}
		return nil, fmt.Errorf("ошибка чтения счёта (username=%s): %w", username, err)
	}
	return &a, nil
}

// GetTransactionHistory возвращает последние транзакции пользователя,
// самые свежие первыми.
func (r *Repository) GetTransactionHistory(ctx context.Context, userID int64, limit int) ([]*Transaction, error) {
	query := `
		SELECT id, user_id, username, amount, transaction_type, admin_id,
		       previous_balance, new_balance, created_at
		FROM transactions
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения транзакций: %w", err)
	}
	defer rows.Close()

	var txs []*Transaction
	for rows.Next() {
		var t Transaction
		err := rows.Scan(
			&t.ID, &t.UserID, &t.Username, &t.Amount, &t.TransactionType,
			&t.AdminID, &t.PreviousBalance, &t.NewBalance, &t.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("ошибка сканирования транзакции: %w", err)
		}
		txs = append(txs, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}
	return txs, nil
}

// ListWithBalance возвращает все счета с положительным балансом.
// Порядок сортировки — забота вызывающего.
func (r *Repository) ListWithBalance(ctx context.Context) ([]*UserAccount, error) {
	query := `
		SELECT id, user_id, username, balance, last_updated
		FROM users WHERE balance > 0
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса счетов: %w", err)
	}
	defer rows.Close()

	var out []*UserAccount
	for rows.Next() {
		var a UserAccount
		if err := rows.Scan(&a.ID, &a.UserID, &a.Username, &a.Balance, &a.LastUpdated); err != nil {
			return nil, fmt.Errorf("ошибка сканирования счёта: %w", err)
		}
		out = append(out, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ошибка чтения строк: %w", err)
	}
	return out, nil
}
