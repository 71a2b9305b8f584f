// Package filters отсеивает сообщения, которые бот не должен обрабатывать.
package filters

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"
)

// ChatFilter пропускает сообщения из управляемой группы и из личек.
// Сообщения из любых других чатов (чужие группы, каналы) игнорируются молча.
type ChatFilter struct {
	groupID int64
}

// NewChatFilter создаёт фильтр для управляемой группы.
func NewChatFilter(groupID int64) *ChatFilter {
	return &ChatFilter{groupID: groupID}
}

// Allow решает, обрабатывать ли сообщение.
func (f *ChatFilter) Allow(message *tgbotapi.Message) bool {
	if message == nil || message.Chat == nil {
		log.WithField("component", "ChatFilter").Warn("nil message/chat")
		return false
	}
	if message.From == nil {
		// сервисные сообщения и посты каналов
		log.WithFields(log.Fields{
			"component": "ChatFilter",
			"chat_id":   message.Chat.ID,
			"chat_type": message.Chat.Type,
		}).Debug("nil message.From, пропускаем")
		return false
	}
	if f.groupID == 0 {
		log.WithField("component", "ChatFilter").Error("groupID is 0 (config bug)")
		return false
	}

	if message.Chat.ID == f.groupID {
		return true
	}
	if message.Chat.IsPrivate() {
		return true
	}

	log.WithFields(log.Fields{
		"component": "ChatFilter",
		"chat_id":   message.Chat.ID,
		"chat_type": message.Chat.Type,
	}).Debug("deny: не управляемая группа и не личка")
	return false
}

// IsGroup сообщает, что сообщение пришло из управляемой группы.
func (f *ChatFilter) IsGroup(message *tgbotapi.Message) bool {
	return message != nil && message.Chat != nil && message.Chat.ID == f.groupID
}
