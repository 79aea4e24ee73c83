package model

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTypeTeamInvite — уведомление о приглашении в команду.
const NotificationTypeTeamInvite = "TEAM_INVITE"

// Notification описывает уведомление пользователя. TeamID и Token вынесены
// в отдельные поля как корреляционный ключ: по паре (user_id, token)
// уведомление можно точно найти и удалить после принятия приглашения.
type Notification struct {
	ID        uuid.UUID      `json:"id"`
	UserID    uuid.UUID      `json:"user_id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	TeamID    *uuid.UUID     `json:"team_id,omitempty"`
	Token     *string        `json:"token,omitempty"`
	Payload   map[string]any `json:"payload,omitempty"`
	IsRead    bool           `json:"is_read"`
	CreatedAt time.Time      `json:"created_at"`
}
