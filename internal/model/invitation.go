package model

import (
	"time"

	"github.com/google/uuid"
)

// InvitationStatus — статус приглашения. Переход возможен только из PENDING
// в один из терминальных статусов, обратных переходов нет.
type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationRejected InvitationStatus = "rejected"
	InvitationExpired  InvitationStatus = "expired"
)

// Invitation описывает приглашение в команду.
// InviteeID заполнен для адресного приглашения; для открытой ссылки
// он остаётся пустым до момента принятия.
type Invitation struct {
	ID        uuid.UUID        `json:"id"`
	TeamID    uuid.UUID        `json:"team_id"`
	InviterID uuid.UUID        `json:"inviter_id"`
	InviteeID *uuid.UUID       `json:"invitee_id,omitempty"`
	Token     string           `json:"token"`
	Status    InvitationStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	ExpiresAt time.Time        `json:"expires_at"`
}
