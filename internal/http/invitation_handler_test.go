package http_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "team-roster-service/internal/http"
	"team-roster-service/internal/http/mocks"
	"team-roster-service/internal/model"
	"team-roster-service/internal/service"
)

func TestHandler_Accept(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	userID := uuid.New()
	teamID := uuid.New()

	tests := []struct {
		name           string
		token          string
		userHeader     string
		mockBehavior   func(is *mocks.InvitationService)
		expectedStatus int
	}{
		{
			name:       "Success",
			token:      "tok-1",
			userHeader: userID.String(),
			mockBehavior: func(is *mocks.InvitationService) {
				is.On("Accept", mock.Anything, "tok-1", userID).
					Return(model.Membership{ID: uuid.New(), TeamID: teamID, UserID: userID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:       "Conflict: team is full",
			token:      "tok-1",
			userHeader: userID.String(),
			mockBehavior: func(is *mocks.InvitationService) {
				is.On("Accept", mock.Anything, "tok-1", userID).
					Return(model.Membership{}, service.ErrDomain("TEAM_FULL", "team roster is full"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:       "Not found: invalid token",
			token:      "tok-1",
			userHeader: userID.String(),
			mockBehavior: func(is *mocks.InvitationService) {
				is.On("Accept", mock.Anything, "tok-1", userID).
					Return(model.Membership{}, service.ErrDomain("INVALID_TOKEN", "invitation is invalid or already used"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:       "Gone: expired invitation",
			token:      "tok-1",
			userHeader: userID.String(),
			mockBehavior: func(is *mocks.InvitationService) {
				is.On("Accept", mock.Anything, "tok-1", userID).
					Return(model.Membership{}, service.ErrDomain("INVITATION_EXPIRED", "invitation has expired"))
			},
			expectedStatus: http.StatusGone,
		},
		{
			name:           "Bad request: missing X-User-Id",
			token:          "tok-1",
			userHeader:     "",
			mockBehavior:   func(is *mocks.InvitationService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamSvc := new(mocks.TeamService)
			invSvc := new(mocks.InvitationService)
			notifSvc := new(mocks.NotificationService)
			tt.mockBehavior(invSvc)

			h := httpapi.NewHandler(teamSvc, invSvc, notifSvc, logger)

			req := httptest.NewRequest("POST", "/invitations/"+tt.token+"/accept", nil)
			if tt.userHeader != "" {
				req.Header.Set("X-User-Id", tt.userHeader)
			}
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			invSvc.AssertExpectations(t)
		})
	}
}

func TestHandler_IssueNomination(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	captainID := uuid.New()
	teamID := uuid.New()
	inviteeID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(is *mocks.InvitationService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"user_id": "` + inviteeID.String() + `"}`,
			mockBehavior: func(is *mocks.InvitationService) {
				is.On("IssueNomination", mock.Anything, teamID, captainID, inviteeID).
					Return(model.Invitation{
						ID:        uuid.New(),
						TeamID:    teamID,
						InviterID: captainID,
						InviteeID: &inviteeID,
						Token:     "tok-2",
						Status:    model.InvitationPending,
					}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Bad request: invalid JSON",
			body:           `{"user_id": "broken`,
			mockBehavior:   func(is *mocks.InvitationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad request: user_id is not a UUID",
			body:           `{"user_id": "faker"}`,
			mockBehavior:   func(is *mocks.InvitationService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Forbidden: not captain",
			body: `{"user_id": "` + inviteeID.String() + `"}`,
			mockBehavior: func(is *mocks.InvitationService) {
				is.On("IssueNomination", mock.Anything, teamID, captainID, inviteeID).
					Return(model.Invitation{}, service.ErrForbidden("NOT_CAPTAIN", "only the captain can manage invitations"))
			},
			expectedStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamSvc := new(mocks.TeamService)
			invSvc := new(mocks.InvitationService)
			notifSvc := new(mocks.NotificationService)
			tt.mockBehavior(invSvc)

			h := httpapi.NewHandler(teamSvc, invSvc, notifSvc, logger)

			req := httptest.NewRequest("POST", "/invitations/teams/"+teamID.String()+"/nominate", bytes.NewBufferString(tt.body))
			req.Header.Set("X-User-Id", captainID.String())
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			invSvc.AssertExpectations(t)
		})
	}
}
