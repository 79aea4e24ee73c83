package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"team-roster-service/internal/model"
	"team-roster-service/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
)

// TeamService описывает операции над командами, нужные HTTP-слою.
type TeamService interface {
	CreateTeam(ctx context.Context, name, tag string, description *string, captainID uuid.UUID) (model.Team, error)
	UpdateTeam(ctx context.Context, teamID, callerID uuid.UUID, upd model.TeamUpdate) (model.Team, error)
	DeleteTeam(ctx context.Context, teamID, callerID uuid.UUID) error
	RemoveMember(ctx context.Context, teamID, targetID, callerID uuid.UUID) error
	Leave(ctx context.Context, teamID, userID uuid.UUID) error
	ListUserTeams(ctx context.Context, userID uuid.UUID) ([]model.Team, error)
}

// InvitationService описывает операции с приглашениями, нужные HTTP-слою.
type InvitationService interface {
	IssueLink(ctx context.Context, teamID, inviterID uuid.UUID) (model.Invitation, error)
	IssueNomination(ctx context.Context, teamID, inviterID, inviteeID uuid.UUID) (model.Invitation, error)
	Accept(ctx context.Context, token string, userID uuid.UUID) (model.Membership, error)
	Reject(ctx context.Context, token string, userID uuid.UUID) error
}

// NotificationService описывает пользовательскую поверхность уведомлений.
type NotificationService interface {
	ListForUser(ctx context.Context, userID uuid.UUID) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}

type Handler struct {
	Teams         TeamService
	Invitations   InvitationService
	Notifications NotificationService
	Log           *slog.Logger
}

func NewHandler(teams TeamService, invitations InvitationService, notifications NotificationService, log *slog.Logger) *Handler {
	return &Handler{
		Teams:         teams,
		Invitations:   invitations,
		Notifications: notifications,
		Log:           log,
	}
}

func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-Id"},
	}))

	r.Get("/health", h.handleHealth)

	r.Route("/teams", func(r chi.Router) {
		r.Post("/", h.handleTeamCreate)
		r.Get("/my", h.handleMyTeams)
		r.Patch("/{teamID}", h.handleTeamUpdate)
		r.Delete("/{teamID}", h.handleTeamDelete)
		r.Delete("/{teamID}/members/{userID}", h.handleRemoveMember)
		r.Delete("/{teamID}/leave", h.handleLeave)
	})

	r.Route("/invitations", func(r chi.Router) {
		r.Post("/teams/{teamID}/link", h.handleIssueLink)
		r.Post("/teams/{teamID}/nominate", h.handleIssueNomination)
		r.Post("/{token}/accept", h.handleAccept)
		r.Post("/{token}/reject", h.handleReject)
	})

	r.Route("/notifications", func(r chi.Router) {
		r.Get("/", h.handleNotificationsList)
		r.Patch("/{notificationID}/read", h.handleNotificationRead)
	})

	return r
}

// callerID извлекает идентификатор пользователя, проставленный доверенным
// слоем аутентификации. Сервис сам аутентификацию не выполняет.
func callerID(r *http.Request) (uuid.UUID, error) {
	raw := r.Header.Get("X-User-Id")
	if raw == "" {
		return uuid.Nil, service.ErrBadRequest("X-User-Id header is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, service.ErrBadRequest("X-User-Id must be a valid UUID")
	}
	return id, nil
}

// pathID извлекает UUID из параметра пути.
func pathID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, service.ErrBadRequest(name + " must be a valid UUID")
	}
	return id, nil
}

func (h *Handler) writeError(w http.ResponseWriter, handlerName string, err error) {
	appErr, ok := err.(*service.AppError)
	if !ok {
		appErr = &service.AppError{
			Code:    "INTERNAL",
			Message: "internal error",
			Status:  http.StatusInternalServerError,
			Err:     err,
		}
	}

	h.Log.Error("handler error",
		slog.String("handler", handlerName),
		slog.String("code", appErr.Code),
		slog.String("message", appErr.Message),
		slog.Any("err", appErr.Err),
	)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(appErr.Status)

	resp := errorResponse{}
	resp.Error.Code = appErr.Code
	resp.Error.Message = appErr.Message
	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
