// Package common — errors.go определяет пользовательские ошибки,
// которые используются во всех модулях бота.
// Эти ошибки позволяют обработчикам различать типы проблем
// и отправлять пользователю понятные сообщения.
package common

import "errors"

// Ошибки валидации команд
var (
	// ErrInvalidFormat — текст команды не соответствует ожидаемому формату
	ErrInvalidFormat = errors.New("некорректный формат команды")
	// ErrInvalidAmount — некорректная сумма (ноль или отрицательная)
	ErrInvalidAmount = errors.New("сумма должна быть положительной")
	// ErrUsernameTooShort — username короче 3 символов
	ErrUsernameTooShort = errors.New("username слишком короткий (минимум 3 символа)")
	// ErrUserNotFound — пользователь не найден в базе
	ErrUserNotFound = errors.New("пользователь не найден")
	// ErrUnresolvedMention — упоминание не удалось сопоставить с user_id
	ErrUnresolvedMention = errors.New("не удалось определить user_id по упоминанию")
)

// Ошибки авторизации
var (
	// ErrNotAdmin — отправитель не входит в список администраторов
	ErrNotAdmin = errors.New("отправитель не является администратором")
	// ErrWrongChat — команда пришла не из отслеживаемой группы
	ErrWrongChat = errors.New("команда разрешена только в отслеживаемой группе")
)
