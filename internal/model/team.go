package model

import (
	"time"

	"github.com/google/uuid"
)

// Team описывает команду: название, тег (3-5 символов, хранится в верхнем регистре),
// описание и идентификатор капитана. Капитан всегда является участником команды.
type Team struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Tag         string    `json:"tag"`
	Description *string   `json:"description,omitempty"`
	CaptainID   uuid.UUID `json:"captain_id"`
	CreatedAt   time.Time `json:"created_at"`

	Members []Membership `json:"members,omitempty"`
}

// Membership описывает членство пользователя в команде.
// Пара (team_id, user_id) уникальна.
type Membership struct {
	ID       uuid.UUID `json:"id"`
	TeamID   uuid.UUID `json:"team_id"`
	UserID   uuid.UUID `json:"user_id"`
	JoinedAt time.Time `json:"joined_at"`
}

// TeamUpdate содержит частичное обновление команды: nil-поля не трогаются.
type TeamUpdate struct {
	Name        *string `json:"name,omitempty"`
	Tag         *string `json:"tag,omitempty"`
	Description *string `json:"description,omitempty"`
}
