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

func TestHandler_TeamCreate(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	captainID := uuid.New()

	tests := []struct {
		name           string
		body           string
		mockBehavior   func(ts *mocks.TeamService)
		expectedStatus int
	}{
		{
			name: "Success",
			body: `{"name": "Alpha", "tag": "ALP"}`,
			mockBehavior: func(ts *mocks.TeamService) {
				ts.On("CreateTeam", mock.Anything, "Alpha", "ALP", (*string)(nil), captainID).
					Return(model.Team{ID: uuid.New(), Name: "Alpha", Tag: "ALP", CaptainID: captainID}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Bad request: invalid JSON",
			body:           `{"name": "broken`,
			mockBehavior:   func(ts *mocks.TeamService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad request: name too short",
			body:           `{"name": "Al", "tag": "ALP"}`,
			mockBehavior:   func(ts *mocks.TeamService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Bad request: tag too long",
			body:           `{"name": "Alpha", "tag": "ALPHA6"}`,
			mockBehavior:   func(ts *mocks.TeamService) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Conflict: tag already taken",
			body: `{"name": "Alpha", "tag": "ALP"}`,
			mockBehavior: func(ts *mocks.TeamService) {
				ts.On("CreateTeam", mock.Anything, "Alpha", "ALP", (*string)(nil), captainID).
					Return(model.Team{}, service.ErrDomain("TAG_TAKEN", "team tag is already in use"))
			},
			expectedStatus: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamSvc := new(mocks.TeamService)
			invSvc := new(mocks.InvitationService)
			notifSvc := new(mocks.NotificationService)
			tt.mockBehavior(teamSvc)

			h := httpapi.NewHandler(teamSvc, invSvc, notifSvc, logger)

			req := httptest.NewRequest("POST", "/teams/", bytes.NewBufferString(tt.body))
			req.Header.Set("X-User-Id", captainID.String())
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			teamSvc.AssertExpectations(t)
		})
	}
}

func TestHandler_Leave(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	userID := uuid.New()
	teamID := uuid.New()

	tests := []struct {
		name           string
		mockBehavior   func(ts *mocks.TeamService)
		expectedStatus int
	}{
		{
			name: "Success",
			mockBehavior: func(ts *mocks.TeamService) {
				ts.On("Leave", mock.Anything, teamID, userID).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
		{
			name: "Bad request: captain must transfer or disband",
			mockBehavior: func(ts *mocks.TeamService) {
				ts.On("Leave", mock.Anything, teamID, userID).
					Return(service.ErrDomain("CAPTAIN_MUST_TRANSFER_OR_DISBAND", "the captain cannot leave"))
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teamSvc := new(mocks.TeamService)
			invSvc := new(mocks.InvitationService)
			notifSvc := new(mocks.NotificationService)
			tt.mockBehavior(teamSvc)

			h := httpapi.NewHandler(teamSvc, invSvc, notifSvc, logger)

			req := httptest.NewRequest("DELETE", "/teams/"+teamID.String()+"/leave", nil)
			req.Header.Set("X-User-Id", userID.String())
			w := httptest.NewRecorder()

			h.Router().ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			teamSvc.AssertExpectations(t)
		})
	}
}
