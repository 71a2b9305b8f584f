// Package balance реализует админский леджер виртуальной валюты:
// журнал транзакций только на добавление и производный текущий баланс.
// models.go описывает структуры таблиц users и transactions.
package balance

import "time"

// UserAccount — счёт пользователя.
// Balance — производное значение: всегда равен сумме всех транзакций
// пользователя с начала времён; обновляется в одной транзакции БД
// вместе со вставкой Transaction.
type UserAccount struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`      // Telegram user ID (уникальный ключ)
	Username    string    `db:"username"`     // Последний известный ник (может устаревать)
	Balance     float64   `db:"balance"`      // Текущий баланс
	LastUpdated time.Time `db:"last_updated"` // Время последней операции
}

// Transaction — одна операция леджера. Неизменяема после создания:
// журнал только пополняется, записи не редактируются и не удаляются.
type Transaction struct {
	ID              int64     `db:"id"`
	UserID          int64     `db:"user_id"`
	Username        string    `db:"username"` // Денормализованный ник на момент операции
	Amount          float64   `db:"amount"`   // Знаковая дельта
	TransactionType string    `db:"transaction_type"`
	AdminID         int64     `db:"admin_id"`         // Кто выполнил операцию
	PreviousBalance float64   `db:"previous_balance"` // Баланс до операции
	NewBalance      float64   `db:"new_balance"`      // Баланс после: previous + amount
	CreatedAt       time.Time `db:"created_at"`
}

// Типы транзакций
const (
	TxTypeAddBalance = "add_balance" // Начисление админом через /addbalance
)
