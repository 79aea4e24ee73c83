package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"team-roster-service/internal/model"
	"team-roster-service/internal/repository"
	"team-roster-service/internal/service"
	"team-roster-service/internal/service/mocks"
)

var testPolicy = service.InvitationPolicy{
	RosterCapacity: 6,
	LinkTTL:        24 * time.Hour,
	NominationTTL:  48 * time.Hour,
}

func newInvitationService(
	ir *mocks.InvitationRepository,
	tr *mocks.TeamRepository,
	mr *mocks.MembershipRepository,
	nr *mocks.NotificationRepository,
	tm *mocks.TransactionManager,
) *service.InvitationService {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return service.NewInvitationService(ir, tr, mr, nr, tm, testPolicy, log)
}

// txPassthrough заставляет мок транзакции просто выполнить переданную функцию.
func txPassthrough(tm *mocks.TransactionManager) {
	tm.On("RunInTransaction", mock.Anything, mock.Anything).
		Return(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

func TestInvitationService_Accept(t *testing.T) {
	teamID := uuid.New()
	userID := uuid.New()
	otherID := uuid.New()
	invID := uuid.New()
	token := "tok-123"

	pendingLink := model.Invitation{
		ID:        invID,
		TeamID:    teamID,
		Token:     token,
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	tests := []struct {
		name       string
		setupMocks func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager)
		wantCode   string
	}{
		{
			name: "Success: open link admits the first comer",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				ir.On("GetPendingByToken", mock.Anything, token).Return(pendingLink, nil)
				mr.On("Admit", mock.Anything, teamID, userID, 6).
					Return(model.Membership{ID: uuid.New(), TeamID: teamID, UserID: userID}, nil)
				ir.On("MarkAccepted", mock.Anything, invID, userID).Return(nil)
				nr.On("DeleteByCorrelation", mock.Anything, userID, token).Return(nil)
			},
		},
		{
			name: "Invalid token: no pending invitation",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				ir.On("GetPendingByToken", mock.Anything, token).
					Return(model.Invitation{}, repository.ErrInvitationNotFound)
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name: "Expired: past expires_at wins over stored status",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				expired := pendingLink
				expired.ExpiresAt = time.Now().UTC().Add(-time.Second)
				ir.On("GetPendingByToken", mock.Anything, token).Return(expired, nil)
			},
			wantCode: "INVITATION_EXPIRED",
		},
		{
			name: "Not your invitation: nomination bound to another user",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				bound := pendingLink
				bound.InviteeID = &otherID
				ir.On("GetPendingByToken", mock.Anything, token).Return(bound, nil)
			},
			wantCode: "NOT_YOUR_INVITATION",
		},
		{
			name: "Team full: capacity check fails inside the transaction",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				ir.On("GetPendingByToken", mock.Anything, token).Return(pendingLink, nil)
				mr.On("Admit", mock.Anything, teamID, userID, 6).
					Return(model.Membership{}, repository.ErrTeamFull)
			},
			wantCode: "TEAM_FULL",
		},
		{
			name: "Already member",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				ir.On("GetPendingByToken", mock.Anything, token).Return(pendingLink, nil)
				mr.On("Admit", mock.Anything, teamID, userID, 6).
					Return(model.Membership{}, repository.ErrMembershipExists)
			},
			wantCode: "ALREADY_MEMBER",
		},
		{
			name: "Lost race: conditional transition failed, whole operation rolls back",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				ir.On("GetPendingByToken", mock.Anything, token).Return(pendingLink, nil)
				mr.On("Admit", mock.Anything, teamID, userID, 6).
					Return(model.Membership{ID: uuid.New(), TeamID: teamID, UserID: userID}, nil)
				// Другой запрос уже потребил токен
				ir.On("MarkAccepted", mock.Anything, invID, userID).
					Return(repository.ErrInvitationConsumed)
			},
			wantCode: "INVALID_TOKEN",
		},
		{
			name: "Notification cleanup failure does not surface",
			setupMocks: func(ir *mocks.InvitationRepository, mr *mocks.MembershipRepository, nr *mocks.NotificationRepository, tm *mocks.TransactionManager) {
				txPassthrough(tm)
				ir.On("GetPendingByToken", mock.Anything, token).Return(pendingLink, nil)
				mr.On("Admit", mock.Anything, teamID, userID, 6).
					Return(model.Membership{ID: uuid.New(), TeamID: teamID, UserID: userID}, nil)
				ir.On("MarkAccepted", mock.Anything, invID, userID).Return(nil)
				nr.On("DeleteByCorrelation", mock.Anything, userID, token).
					Return(errors.New("relay is down"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ir := new(mocks.InvitationRepository)
			tr := new(mocks.TeamRepository)
			mr := new(mocks.MembershipRepository)
			nr := new(mocks.NotificationRepository)
			tm := new(mocks.TransactionManager)
			tt.setupMocks(ir, mr, nr, tm)

			svc := newInvitationService(ir, tr, mr, nr, tm)
			membership, err := svc.Accept(context.Background(), token, userID)

			if tt.wantCode != "" {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, appCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, teamID, membership.TeamID)
				assert.Equal(t, userID, membership.UserID)
			}
			ir.AssertExpectations(t)
			mr.AssertExpectations(t)
			nr.AssertExpectations(t)
		})
	}
}

func TestInvitationService_IssueLink(t *testing.T) {
	teamID := uuid.New()
	captainID := uuid.New()
	strangerID := uuid.New()
	team := model.Team{ID: teamID, Name: "Alpha", CaptainID: captainID}

	t.Run("Success: token is issued with link TTL", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		tr.On("GetTeam", mock.Anything, teamID).Return(team, nil)
		ir.On("Create", mock.Anything, mock.MatchedBy(func(inv model.Invitation) bool {
			return inv.TeamID == teamID &&
				inv.InviterID == captainID &&
				inv.InviteeID == nil &&
				inv.Token != "" &&
				time.Until(inv.ExpiresAt) > 23*time.Hour
		})).Return(func(ctx context.Context, inv model.Invitation) model.Invitation {
			inv.Status = model.InvitationPending
			return inv
		}, nil)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		inv, err := svc.IssueLink(context.Background(), teamID, captainID)

		assert.NoError(t, err)
		assert.NotEmpty(t, inv.Token)
		assert.Nil(t, inv.InviteeID)
		ir.AssertExpectations(t)
	})

	t.Run("Forbidden: only captain can issue links", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		tr.On("GetTeam", mock.Anything, teamID).Return(team, nil)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		_, err := svc.IssueLink(context.Background(), teamID, strangerID)

		assert.Error(t, err)
		assert.Equal(t, "NOT_CAPTAIN", appCode(err))
		ir.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInvitationService_IssueNomination(t *testing.T) {
	teamID := uuid.New()
	captainID := uuid.New()
	inviteeID := uuid.New()
	team := model.Team{ID: teamID, Name: "Alpha", CaptainID: captainID}

	t.Run("Success: invitation and notification in one transaction", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		tr.On("GetTeam", mock.Anything, teamID).Return(team, nil)
		mr.On("IsMember", mock.Anything, teamID, inviteeID).Return(false, nil)
		txPassthrough(tm)
		ir.On("Create", mock.Anything, mock.MatchedBy(func(inv model.Invitation) bool {
			return inv.InviteeID != nil && *inv.InviteeID == inviteeID &&
				time.Until(inv.ExpiresAt) > 47*time.Hour
		})).Return(func(ctx context.Context, inv model.Invitation) model.Invitation {
			inv.Status = model.InvitationPending
			return inv
		}, nil)
		nr.On("Create", mock.Anything, mock.MatchedBy(func(n model.Notification) bool {
			return n.UserID == inviteeID &&
				n.Type == model.NotificationTypeTeamInvite &&
				n.Token != nil && n.TeamID != nil && *n.TeamID == teamID
		})).Return(nil)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		inv, err := svc.IssueNomination(context.Background(), teamID, captainID, inviteeID)

		assert.NoError(t, err)
		assert.Equal(t, inviteeID, *inv.InviteeID)
		ir.AssertExpectations(t)
		nr.AssertExpectations(t)
	})

	t.Run("Conflict: invitee is already a member", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		tr.On("GetTeam", mock.Anything, teamID).Return(team, nil)
		mr.On("IsMember", mock.Anything, teamID, inviteeID).Return(true, nil)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		_, err := svc.IssueNomination(context.Background(), teamID, captainID, inviteeID)

		assert.Error(t, err)
		assert.Equal(t, "ALREADY_MEMBER", appCode(err))
		ir.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestInvitationService_Reject(t *testing.T) {
	teamID := uuid.New()
	inviteeID := uuid.New()
	otherID := uuid.New()
	invID := uuid.New()
	token := "tok-456"

	nomination := model.Invitation{
		ID:        invID,
		TeamID:    teamID,
		InviteeID: &inviteeID,
		Token:     token,
		Status:    model.InvitationPending,
		ExpiresAt: time.Now().UTC().Add(time.Hour),
	}

	t.Run("Success: invitee rejects the nomination", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		ir.On("GetPendingByToken", mock.Anything, token).Return(nomination, nil)
		ir.On("MarkRejected", mock.Anything, invID).Return(nil)
		nr.On("DeleteByCorrelation", mock.Anything, inviteeID, token).Return(nil)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		assert.NoError(t, svc.Reject(context.Background(), token, inviteeID))
		ir.AssertExpectations(t)
	})

	t.Run("Forbidden: someone else's nomination", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		ir.On("GetPendingByToken", mock.Anything, token).Return(nomination, nil)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		err := svc.Reject(context.Background(), token, otherID)

		assert.Error(t, err)
		assert.Equal(t, "NOT_YOUR_INVITATION", appCode(err))
		ir.AssertNotCalled(t, "MarkRejected", mock.Anything, mock.Anything)
	})

	t.Run("Invalid token: already consumed", func(t *testing.T) {
		ir := new(mocks.InvitationRepository)
		tr := new(mocks.TeamRepository)
		mr := new(mocks.MembershipRepository)
		nr := new(mocks.NotificationRepository)
		tm := new(mocks.TransactionManager)

		ir.On("GetPendingByToken", mock.Anything, token).Return(nomination, nil)
		ir.On("MarkRejected", mock.Anything, invID).Return(repository.ErrInvitationConsumed)

		svc := newInvitationService(ir, tr, mr, nr, tm)
		err := svc.Reject(context.Background(), token, inviteeID)

		assert.Error(t, err)
		assert.Equal(t, "INVALID_TOKEN", appCode(err))
	})
}
