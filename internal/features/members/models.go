// Package members ведёт учёт участников группы, которых бот видел.
// Нужен для разрешения упоминаний @username в стабильный Telegram user ID:
// Bot API не умеет искать пользователя по нику, поэтому запоминаем всех сами.
// models.go описывает структуру таблицы members.
package members

import "time"

// Member — участник группы, замеченный ботом.
// Запись создаётся при первом сообщении или при вступлении в группу.
type Member struct {
	ID        int64     `db:"id"`         // Автоинкрементный ID записи в БД
	UserID    int64     `db:"user_id"`    // Telegram user ID (уникальный)
	Username  string    `db:"username"`   // @username (может быть пустым и может устаревать)
	FirstName string    `db:"first_name"` // Имя пользователя
	LastName  string    `db:"last_name"`  // Фамилия (может быть пустой)
	JoinedAt  time.Time `db:"joined_at"` // Когда замечен впервые
	UpdatedAt time.Time `db:"updated_at"`
}
