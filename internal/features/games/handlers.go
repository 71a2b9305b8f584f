// Package games — handlers.go связывает жизненный цикл игр с Telegram.
// Обычное сообщение админа в группе → попытка создать игру;
// правка сообщения → попытка объявить победителя.
package games

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Handler обрабатывает события игр.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
	groupID int64
}

// NewHandler создаёт обработчик игр.
func NewHandler(service *Service, bot *tgbotapi.BotAPI, groupID int64) *Handler {
	return &Handler{service: service, bot: bot, groupID: groupID}
}

// HandleGroupMessage обрабатывает обычное текстовое сообщение в группе.
// Команды (начинаются с "/") к играм не относятся.
func (h *Handler) HandleGroupMessage(msg *tgbotapi.Message) {
	if msg.From == nil || strings.HasPrefix(msg.Text, "/") {
		return
	}
	h.service.CreateFromMessage(msg.From.ID, msg.MessageID, msg.Text)
}

// HandleEditedMessage обрабатывает правку сообщения в группе.
// Если правка объявила победителя — анонсирует его в группу.
func (h *Handler) HandleEditedMessage(msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	resolved, ok := h.service.ResolveFromEdit(msg.From.ID, msg.MessageID, msg.Text)
	if !ok {
		return
	}

	text := fmt.Sprintf("🎉 Winner Found: @%s\n💰 Prize: %d", resolved.Winner, resolved.Amount)
	reply := tgbotapi.NewMessage(h.groupID, text)
	if _, err := h.bot.Send(reply); err != nil {
		log.WithError(err).Error("Ошибка отправки объявления победителя")
	}
}
