// Package middleware содержит сквозные обработчики: guard админ-команд,
// логирование входящих сообщений, rate-limiting и восстановление после паники.
package middleware

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// LogMessage логирует входящее сообщение: кто, откуда и начало текста.
func LogMessage(message *tgbotapi.Message) {
	if message == nil || message.From == nil || message.Chat == nil {
		return
	}

	// Обрезаем по рунам, чтобы не порвать многобайтовый символ
	preview := []rune(message.Text)
	if len(preview) > 50 {
		preview = preview[:50]
	}

	log.WithFields(log.Fields{
		"user_id":  message.From.ID,
		"chat_id":  message.Chat.ID,
		"username": message.From.UserName,
		"text":     string(preview),
	}).Debug("Входящее сообщение")
}
