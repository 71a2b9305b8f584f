package stats

import (
	"context"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// Handler обрабатывает команду /stats.
type Handler struct {
	service *Service
	bot     *tgbotapi.BotAPI
}

// NewHandler создаёт обработчик статистики.
func NewHandler(service *Service, bot *tgbotapi.BotAPI) *Handler {
	return &Handler{service: service, bot: bot}
}

// HandleStats собирает отчёт и отправляет его в чат.
func (h *Handler) HandleStats(ctx context.Context, chatID int64) {
	report, err := h.service.BuildReport(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка сбора статистики")
		h.send(chatID, "❌ An error occurred while fetching statistics.")
		return
	}
	h.send(chatID, FormatReport(report))
}

func (h *Handler) send(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
	}
}
