// Package balance — handlers.go обрабатывает команды леджера:
// /addbalance, /balance, /listbalances, /transactions.
// Тексты ответов фиксированные — операторы привыкли к ним, не менять.
package balance

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"group-manager-bot/internal/common"
	"group-manager-bot/internal/config"
	"group-manager-bot/internal/features/members"
)

var (
	addBalanceRe   = regexp.MustCompile(`(?i)/addbalance\s+@?(\w+)\s+(\d+(?:\.\d+)?)`)
	balanceRe      = regexp.MustCompile(`(?i)/balance\s+@?(\w+)`)
	transactionsRe = regexp.MustCompile(`(?i)/transactions\s+@?(\w+)`)
)

// Handler обрабатывает команды леджера.
type Handler struct {
	service       *Service
	memberService *members.Service
	bot           *tgbotapi.BotAPI
	cfg           *config.Config
}

// NewHandler создаёт обработчик команд леджера.
func NewHandler(service *Service, memberService *members.Service, bot *tgbotapi.BotAPI, cfg *config.Config) *Handler {
	return &Handler{
		service:       service,
		memberService: memberService,
		bot:           bot,
		cfg:           cfg,
	}
}

// HandleAddBalance обрабатывает /addbalance @username amount.
func (h *Handler) HandleAddBalance(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	username, amount, ok := parseAddBalance(msg.Text)
	if !ok {
		h.sendMessage(chatID, "❌ Invalid format!\nUse: `/addbalance @username amount`\nExample: `/addbalance @john123 100`")
		return
	}

	if amount <= 0 {
		h.sendMessage(chatID, "❌ Amount must be greater than 0!")
		return
	}

	if len(username) < 3 {
		h.sendMessage(chatID, "❌ Username must be at least 3 characters long!")
		return
	}

	// Разрешаем упоминание в стабильный user_id. Если не получилось —
	// леджер не трогаем: псевдо-ID из хеша ника давал бы коллизии.
	userID, canonical, err := h.resolveTarget(ctx, msg, username)
	if err != nil {
		if errors.Is(err, common.ErrUnresolvedMention) {
			h.sendMessage(chatID, fmt.Sprintf(
				"❌ **Unknown User!**\n@%s has not been seen in this group yet.\nAsk them to send a message in the group first, then retry.",
				username))
			return
		}
		log.WithError(err).Error("Ошибка разрешения упоминания")
		h.sendMessage(chatID, "❌ An error occurred while processing the command.")
		return
	}

	newBalance, err := h.service.AddBalance(ctx, userID, canonical, amount, msg.From.ID)
	if err != nil {
		if errors.Is(err, common.ErrInvalidAmount) {
			h.sendMessage(chatID, "❌ Amount must be greater than 0!")
			return
		}
		h.sendMessage(chatID, "❌ **Failed to add balance!**\nPlease try again or contact support.")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf(
		"✅ **Balance Added Successfully!**\n\n"+
			"👤 **User:** @%s\n"+
			"💰 **Amount Added:** %s\n"+
			"💵 **New Balance:** %s\n"+
			"🔧 **Added by:** @%s",
		canonical,
		common.FormatCurrency(amount),
		common.FormatCurrency(newBalance),
		msg.From.UserName,
	))
}

// HandleBalance обрабатывает /balance @username.
func (h *Handler) HandleBalance(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	username, ok := parseUsernameArg(balanceRe, msg.Text)
	if !ok {
		h.sendMessage(chatID, "❌ Invalid format!\nUse: `/balance @username`\nExample: `/balance @john123`")
		return
	}

	account, err := h.service.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			h.sendMessage(chatID, fmt.Sprintf("❌ User @%s not found in database!", username))
			return
		}
		log.WithError(err).Error("Ошибка получения баланса")
		h.sendMessage(chatID, "❌ An error occurred while checking balance.")
		return
	}

	h.sendMessage(chatID, fmt.Sprintf(
		"💰 **Balance Information**\n\n"+
			"👤 **User:** @%s\n"+
			"💵 **Current Balance:** %s\n"+
			"📅 **Last Updated:** %s",
		account.Username,
		common.FormatCurrency(account.Balance),
		common.FormatDateTime(account.LastUpdated),
	))
}

// HandleListBalances обрабатывает /listbalances — топ счетов по убыванию.
func (h *Handler) HandleListBalances(ctx context.Context, chatID int64) {
	accounts, err := h.service.ListWithBalance(ctx)
	if err != nil {
		log.WithError(err).Error("Ошибка получения списка балансов")
		h.sendMessage(chatID, "❌ An error occurred while fetching balances.")
		return
	}

	if len(accounts) == 0 {
		h.sendMessage(chatID, "📊 No users with balance found in database!")
		return
	}

	limit := h.cfg.BalanceListLimit

	var sb strings.Builder
	sb.WriteString("💰 **All User Balances:**\n\n")
	for i, a := range accounts {
		if i >= limit {
			break
		}
		sb.WriteString(fmt.Sprintf("%d. @%s: %s\n", i+1, a.Username, common.FormatCurrency(a.Balance)))
	}
	if len(accounts) > limit {
		sb.WriteString(fmt.Sprintf("\n... and %d more users", len(accounts)-limit))
	}

	h.sendMessage(chatID, sb.String())
}

// HandleTransactions обрабатывает /transactions @username — история операций.
func (h *Handler) HandleTransactions(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID

	username, ok := parseUsernameArg(transactionsRe, msg.Text)
	if !ok {
		h.sendMessage(chatID, "❌ Invalid format!\nUse: `/transactions @username`\nExample: `/transactions @john123`")
		return
	}

	account, err := h.service.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			h.sendMessage(chatID, fmt.Sprintf("❌ User @%s not found in database!", username))
			return
		}
		log.WithError(err).Error("Ошибка поиска счёта")
		h.sendMessage(chatID, "❌ An error occurred while fetching transactions.")
		return
	}

	txs, err := h.service.GetTransactionHistory(ctx, account.UserID, h.cfg.BalanceHistoryLimit)
	if err != nil {
		log.WithError(err).Error("Ошибка получения истории транзакций")
		h.sendMessage(chatID, "❌ An error occurred while fetching transactions.")
		return
	}

	if len(txs) == 0 {
		h.sendMessage(chatID, fmt.Sprintf("📋 No transactions found for @%s!", username))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("📋 **Transaction History for @%s:**\n\n", account.Username))
	for i, t := range txs {
		sign := "+"
		if t.Amount < 0 {
			sign = ""
		}
		sb.WriteString(fmt.Sprintf("%d. %s | %s%s | Balance: %s\n",
			i+1,
			common.FormatDateTime(t.CreatedAt),
			sign,
			common.FormatCurrency(t.Amount),
			common.FormatCurrency(t.NewBalance),
		))
	}

	h.sendMessage(chatID, sb.String())
}

// resolveTarget сопоставляет упоминание со стабильным Telegram user ID.
// Порядок: text_mention из сущностей сообщения → таблица members.
// Неразрешимое упоминание — common.ErrUnresolvedMention, без мутации леджера.
func (h *Handler) resolveTarget(ctx context.Context, msg *tgbotapi.Message, username string) (int64, string, error) {
	if msg.Entities != nil {
		for _, e := range msg.Entities {
			if e.Type == "text_mention" && e.User != nil && strings.EqualFold(e.User.UserName, username) {
				name := e.User.UserName
				if name == "" {
					name = e.User.FirstName
				}
				return e.User.ID, name, nil
			}
		}
	}

	m, err := h.memberService.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrUserNotFound) {
			return 0, "", common.ErrUnresolvedMention
		}
		return 0, "", err
	}

	name := m.Username
	if name == "" {
		name = m.FirstName
	}
	return m.UserID, name, nil
}

// parseAddBalance разбирает текст /addbalance @username amount.
func parseAddBalance(text string) (string, float64, bool) {
	m := addBalanceRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", 0, false
	}
	amount, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return "", 0, false
	}
	return m[1], amount, true
}

// parseUsernameArg извлекает username из команды вида /cmd @username.
func parseUsernameArg(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return "", false
	}
	return m[1], true
}

// sendMessage — вспомогательный метод для отправки текстовых ответов.
func (h *Handler) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := h.bot.Send(msg); err != nil {
		log.WithError(err).Error("Ошибка отправки сообщения")
	}
}
