package middleware

import (
	"group-manager-bot/internal/common"
)

// AdminGuard проверяет, что команда пришла от админа и из нужной группы.
// Проверка админа идёт первой: не-админу отвечаем отказом в правах,
// даже если он пишет не в той группе.
type AdminGuard struct {
	adminIDs map[int64]struct{}
	groupID  int64
}

// NewAdminGuard создаёт guard для списка админов и отслеживаемой группы.
func NewAdminGuard(adminIDs []int64, groupID int64) *AdminGuard {
	ids := make(map[int64]struct{}, len(adminIDs))
	for _, id := range adminIDs {
		ids[id] = struct{}{}
	}
	return &AdminGuard{adminIDs: ids, groupID: groupID}
}

// Check возвращает nil, если userID — админ и chatID — отслеживаемая группа.
// Иначе common.ErrNotAdmin либо common.ErrWrongChat.
func (g *AdminGuard) Check(userID, chatID int64) error {
	if _, ok := g.adminIDs[userID]; !ok {
		return common.ErrNotAdmin
	}
	if chatID != g.groupID {
		return common.ErrWrongChat
	}
	return nil
}

// IsAdmin сообщает, входит ли пользователь в список админов.
func (g *AdminGuard) IsAdmin(userID int64) bool {
	_, ok := g.adminIDs[userID]
	return ok
}
