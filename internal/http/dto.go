// Package http реализует HTTP-обработчики и DTO поверх доменных сервисов.
package http

import (
	"time"

	"team-roster-service/internal/model"
)

type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type createTeamRequest struct {
	Name        string  `json:"name"`
	Tag         string  `json:"tag"`
	Description *string `json:"description,omitempty"`
}

type teamResponse struct {
	Team model.Team `json:"team"`
}

type teamsResponse struct {
	Teams []model.Team `json:"teams"`
}

type nominateRequest struct {
	UserID string `json:"user_id"`
}

// issueLinkResponse отдаёт только токен и срок: фронтенд сам
// собирает ссылку вида https://…/invite/{token}.
type issueLinkResponse struct {
	LinkToken string    `json:"link_token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type invitationResponse struct {
	Invitation model.Invitation `json:"invitation"`
}

type membershipResponse struct {
	Membership model.Membership `json:"membership"`
}

type notificationsResponse struct {
	Notifications []model.Notification `json:"notifications"`
}
