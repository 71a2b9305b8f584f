// Package bot содержит главный цикл бота: polling, маршрутизацию
// апдейтов и отправку служебных сообщений в группу.
package bot

import (
	"context"
	"errors"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"group-manager-bot/internal/bot/filters"
	"group-manager-bot/internal/bot/middleware"
	"group-manager-bot/internal/common"
	"group-manager-bot/internal/config"
	"group-manager-bot/internal/features/balance"
	"group-manager-bot/internal/features/games"
	"group-manager-bot/internal/features/members"
	"group-manager-bot/internal/features/stats"
)

// Тексты ответов фиксированные — операторы привыкли к ним, не менять.
const (
	accessDeniedText = "❌ **Access Denied!**\n" +
		"You are not authorized to use this command.\n" +
		"Only authorized admins can use bot commands."

	wrongGroupText = "❌ **Wrong Group!**\n" +
		"This command can only be used in the authorized group."

	startPrivateText = "👋 **Welcome to Group Manager Bot!**\n\n" +
		"This bot is designed to work in groups for:\n" +
		"• 💰 Balance management\n" +
		"• 🎮 Game management\n" +
		"• 👥 Group administration\n\n" +
		"Add me to your group and make me an admin to get started!\n\n" +
		"Use /help in the group to see available commands."

	startGroupText = "👋 **Group Manager Bot is active!**\n\n" +
		"Use /help to see available commands.\n" +
		"Only authorized admins can use bot commands."

	startupText = "🤖 **Group Manager Bot Started!**\n\n" +
		"✅ Database connection established\n" +
		"✅ All handlers registered\n" +
		"✅ Ready to manage your group!\n\n" +
		"Use /help to see available commands."

	helpText = `
🤖 **Group Manager Bot Commands**

**💰 Balance Management:**
• ` + "`/addbalance @username amount`" + ` - Add balance to user
• ` + "`/balance @username`" + ` - Check user balance  
• ` + "`/listbalances`" + ` - Show all users with balance

**🎮 Game Management:**
• Original game functionality still works
• Post player list with amount for game creation
• Edit message with ✅ next to winner name

**👥 Group Commands:**
• ` + "`/help`" + ` - Show this help message
• ` + "`/stats`" + ` - Show bot statistics

**⚡ Quick Examples:**
• ` + "`/addbalance @john123 500`" + `
• ` + "`/balance @john123`" + `

**📋 Note:** Only authorized admins can use these commands.
`
)

// Bot — главная структура бота, объединяющая все компоненты.
type Bot struct {
	api *tgbotapi.BotAPI
	cfg *config.Config

	chatFilter  *filters.ChatFilter
	guard       *middleware.AdminGuard
	rateLimiter *middleware.RateLimiter

	memberService  *members.Service
	balanceHandler *balance.Handler
	gamesHandler   *games.Handler
	statsHandler   *stats.Handler

	// ограничитель параллелизма обработки апдейтов
	inflight chan struct{}
}

// New создаёт новый экземпляр бота со всеми зависимостями.
func New(
	api *tgbotapi.BotAPI,
	cfg *config.Config,
	memberService *members.Service,
	balanceHandler *balance.Handler,
	gamesHandler *games.Handler,
	statsHandler *stats.Handler,
	guard *middleware.AdminGuard,
	chatFilter *filters.ChatFilter,
) *Bot {
	maxInFlight := cfg.BotMaxInflight
	if maxInFlight <= 0 {
		maxInFlight = 64
	}

	return &Bot{
		api:            api,
		cfg:            cfg,
		chatFilter:     chatFilter,
		guard:          guard,
		rateLimiter:    middleware.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
		memberService:  memberService,
		balanceHandler: balanceHandler,
		gamesHandler:   gamesHandler,
		statsHandler:   statsHandler,
		inflight:       make(chan struct{}, maxInFlight),
	}
}

// Start запускает polling обновлений от Telegram.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.BotUpdateTimeoutSeconds

	updates := b.api.GetUpdatesChan(u)

	log.WithFields(log.Fields{
		"max_inflight": b.cfg.BotMaxInflight,
		"timeout_sec":  b.cfg.BotUpdateTimeoutSeconds,
	}).Info("Бот запущен и ожидает сообщения...")

	for {
		select {
		case <-ctx.Done():
			log.Info("Бот останавливается (ctx done)...")
			b.api.StopReceivingUpdates()
			b.rateLimiter.Close()
			return

		case update, ok := <-updates:
			if !ok {
				log.Info("Канал updates закрыт, бот остановлен")
				return
			}

			// лимит параллелизма
			b.inflight <- struct{}{}
			go func(upd tgbotapi.Update) {
				defer func() { <-b.inflight }()
				b.handleUpdate(ctx, upd)
			}(update)
		}
	}
}

// SendStartupMessage отправляет в группу сообщение о запуске.
func (b *Bot) SendStartupMessage() {
	b.sendMessage(b.cfg.GroupID, startupText)
}

// handleUpdate обрабатывает одно обновление от Telegram.
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	defer middleware.RecoverFromPanic()

	// Правка сообщения в группе — возможное объявление победителя
	if update.EditedMessage != nil {
		edited := update.EditedMessage
		if b.chatFilter.IsGroup(edited) && edited.Text != "" {
			middleware.LogMessage(edited)
			b.gamesHandler.HandleEditedMessage(edited)
		}
		return
	}

	if update.Message == nil {
		return
	}
	message := update.Message

	// Событие вступления новых участников
	if message.NewChatMembers != nil {
		if b.chatFilter.IsGroup(message) {
			b.handleNewMembers(ctx, message.NewChatMembers)
		}
		return
	}

	if message.Text == "" || !b.chatFilter.Allow(message) {
		return
	}

	middleware.LogMessage(message)

	userID := message.From.ID

	if !b.rateLimiter.Allow(userID) {
		log.WithField("user_id", userID).Debug("rate limited")
		return
	}

	// Каждое сообщение в группе обновляет запись участника: так упоминания
	// @username в командах леджера разрешаются в стабильный user_id
	if b.chatFilter.IsGroup(message) {
		if err := b.memberService.EnsureMember(ctx, userID,
			message.From.UserName, message.From.FirstName, message.From.LastName,
		); err != nil {
			log.WithError(err).WithField("user_id", userID).Warn("EnsureMember failed")
		}
	}

	if strings.HasPrefix(message.Text, "/") {
		b.routeCommand(ctx, message)
		return
	}

	// Не команда в группе — возможное объявление игры
	if b.chatFilter.IsGroup(message) {
		b.gamesHandler.HandleGroupMessage(message)
	}
}

// routeCommand маршрутизирует команду к нужному обработчику.
// /start доступен всем; остальные команды проходят через guard.
func (b *Bot) routeCommand(ctx context.Context, message *tgbotapi.Message) {
	cmd := commandName(message.Text)
	chatID := message.Chat.ID
	userID := message.From.ID

	log.WithFields(log.Fields{
		"cmd":     cmd,
		"user_id": userID,
		"chat_id": chatID,
	}).Debug("routing command")

	switch cmd {
	case "start":
		if message.Chat.IsPrivate() {
			b.sendMessage(chatID, startPrivateText)
		} else {
			b.sendMessage(chatID, startGroupText)
		}
		return

	case "addbalance", "balance", "listbalances", "transactions", "help", "stats":
		// админские команды, ниже

	default:
		// неизвестные команды игнорируем молча
		return
	}

	if err := b.guard.Check(userID, chatID); err != nil {
		switch {
		case errors.Is(err, common.ErrNotAdmin):
			b.sendMessage(chatID, accessDeniedText)
		case errors.Is(err, common.ErrWrongChat):
			b.sendMessage(chatID, wrongGroupText)
		}
		return
	}

	switch cmd {
	case "addbalance":
		b.balanceHandler.HandleAddBalance(ctx, message)
	case "balance":
		b.balanceHandler.HandleBalance(ctx, message)
	case "listbalances":
		b.balanceHandler.HandleListBalances(ctx, chatID)
	case "transactions":
		b.balanceHandler.HandleTransactions(ctx, message)
	case "help":
		b.sendMessage(chatID, helpText)
	case "stats":
		b.statsHandler.HandleStats(ctx, chatID)
	}
}

// handleNewMembers учитывает вступивших участников.
func (b *Bot) handleNewMembers(ctx context.Context, newMembers []tgbotapi.User) {
	for _, user := range newMembers {
		if user.IsBot {
			continue
		}
		if err := b.memberService.EnsureMember(ctx, user.ID, user.UserName, user.FirstName, user.LastName); err != nil {
			log.WithError(err).WithField("user_id", user.ID).Warn("EnsureMember failed")
			continue
		}
		log.WithField("user", user.UserName).Info("Новый участник учтён")
	}
}

// commandName извлекает имя команды из текста: "/cmd@bot args" → "cmd".
func commandName(text string) string {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return ""
	}
	cmd := strings.TrimPrefix(fields[0], "/")
	if i := strings.Index(cmd, "@"); i >= 0 {
		cmd = cmd[:i]
	}
	return strings.ToLower(cmd)
}

// sendMessage — утилита для отправки сообщений.
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.WithError(err).WithField("chat_id", chatID).Error("Ошибка отправки сообщения")
	}
}
