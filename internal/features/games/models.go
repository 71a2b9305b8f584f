// Package games реализует жизненный цикл «игр», которые админы ведут
// обычными сообщениями в группе: список игроков + сумма создают игру,
// правка сообщения с ✅ рядом с ником объявляет победителя.
// models.go описывает структуры записей игр.
package games

import "time"

// Status — состояние игры.
type Status string

const (
	StatusActive    Status = "active"    // Игра идёт, хранится в реестре
	StatusCompleted Status = "completed" // Победитель объявлен
	StatusCancelled Status = "cancelled" // Отменена (зарезервировано)
)

// Game — запись активной игры, извлечённая из сообщения админа.
// После создания не изменяется; из реестра удаляется при объявлении победителя.
type Game struct {
	MessageID int       // ID сообщения в группе (ключ реестра)
	Players   []string  // Ники игроков в порядке строк сообщения
	Amount    int       // Сумма игры (положительная)
	CreatedAt time.Time // Время извлечения
	Status    Status
}

// Resolved — событие «победитель найден».
// Отдаётся вызывающему для объявления в группе.
type Resolved struct {
	Winner  string
	Amount  int
	Players []string
}
