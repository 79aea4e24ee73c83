package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"team-roster-service/internal/model"
	"team-roster-service/internal/repository"

	"github.com/google/uuid"
)

// TransactionManager описывает интерфейс для управления транзакциями (чтобы можно было мокать).
type TransactionManager interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// InvitationRepository описывает контракт репозитория приглашений для бизнес-слоя.
type InvitationRepository interface {
	Create(ctx context.Context, inv model.Invitation) (model.Invitation, error)
	GetPendingByToken(ctx context.Context, token string) (model.Invitation, error)
	MarkAccepted(ctx context.Context, invitationID, userID uuid.UUID) error
	MarkRejected(ctx context.Context, invitationID uuid.UUID) error
}

// NotificationRepository описывает контракт приёмника уведомлений.
// Уведомления — побочный эффект: их недоставка или неудалённость
// не влияет на исход основной операции.
type NotificationRepository interface {
	Create(ctx context.Context, n model.Notification) error
	DeleteByCorrelation(ctx context.Context, userID uuid.UUID, token string) error
	ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}

// InvitationPolicy задаёт политику приглашений: ёмкость ростера
// и сроки жизни токенов двух видов.
type InvitationPolicy struct {
	RosterCapacity int
	LinkTTL        time.Duration
	NominationTTL  time.Duration
}

// InvitationService выпускает приглашения и координирует их принятие:
// проверка токена, запись членства с контролем ёмкости и однократное
// потребление токена выполняются как одна транзакция.
type InvitationService struct {
	invRepo    InvitationRepository
	teamRepo   TeamRepository
	memberRepo MembershipRepository
	notifRepo  NotificationRepository
	txManager  TransactionManager
	policy     InvitationPolicy
	log        *slog.Logger

	// now вынесено в поле, чтобы тесты могли управлять временем
	now func() time.Time
}

// NewInvitationService создаёт новый сервис приглашений.
func NewInvitationService(
	invRepo InvitationRepository,
	teamRepo TeamRepository,
	memberRepo MembershipRepository,
	notifRepo NotificationRepository,
	txManager TransactionManager,
	policy InvitationPolicy,
	log *slog.Logger,
) *InvitationService {
	return &InvitationService{
		invRepo:    invRepo,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		notifRepo:  notifRepo,
		txManager:  txManager,
		policy:     policy,
		log:        log,
		now:        time.Now,
	}
}

// IssueLink выпускает открытую ссылку-приглашение: токен не привязан
// к конкретному пользователю, его потребит первый успевший.
func (s *InvitationService) IssueLink(ctx context.Context, teamID, inviterID uuid.UUID) (model.Invitation, error) {
	if _, err := s.requireCaptain(ctx, teamID, inviterID); err != nil {
		return model.Invitation{}, err
	}

	token, err := newInviteToken()
	if err != nil {
		return model.Invitation{}, ErrInternal("failed to generate token", err)
	}

	inv := model.Invitation{
		ID:        uuid.New(),
		TeamID:    teamID,
		InviterID: inviterID,
		Token:     token,
		ExpiresAt: s.now().UTC().Add(s.policy.LinkTTL),
	}

	created, err := s.invRepo.Create(ctx, inv)
	if err != nil {
		return model.Invitation{}, ErrInternal("failed to create invitation", err)
	}
	return created, nil
}

// IssueNomination выпускает адресное приглашение: токен привязан к invitee,
// и только он сможет его принять. Приглашение и уведомление записываются
// в одной транзакции. Проверка членства здесь — ранний отказ: авторитетная
// проверка всё равно произойдёт при принятии, состав команды может измениться.
func (s *InvitationService) IssueNomination(ctx context.Context, teamID, inviterID, inviteeID uuid.UUID) (model.Invitation, error) {
	team, err := s.requireCaptain(ctx, teamID, inviterID)
	if err != nil {
		return model.Invitation{}, err
	}

	member, err := s.memberRepo.IsMember(ctx, teamID, inviteeID)
	if err != nil {
		return model.Invitation{}, ErrInternal("failed to check membership", err)
	}
	if member {
		return model.Invitation{}, ErrDomain("ALREADY_MEMBER", "user is already a member of this team")
	}

	token, err := newInviteToken()
	if err != nil {
		return model.Invitation{}, ErrInternal("failed to generate token", err)
	}

	inv := model.Invitation{
		ID:        uuid.New(),
		TeamID:    teamID,
		InviterID: inviterID,
		InviteeID: &inviteeID,
		Token:     token,
		ExpiresAt: s.now().UTC().Add(s.policy.NominationTTL),
	}

	var created model.Invitation
	err = s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		var errTx error
		created, errTx = s.invRepo.Create(ctx, inv)
		if errTx != nil {
			return errTx
		}

		return s.notifRepo.Create(ctx, model.Notification{
			ID:      uuid.New(),
			UserID:  inviteeID,
			Type:    model.NotificationTypeTeamInvite,
			Title:   "Team Invitation",
			Message: fmt.Sprintf("You have been invited to join team %s", team.Name),
			TeamID:  &teamID,
			Token:   &token,
			Payload: map[string]any{"team_id": teamID.String(), "token": token},
		})
	})
	if err != nil {
		return model.Invitation{}, ErrInternal("failed to create invitation", err)
	}
	return created, nil
}

// Accept принимает приглашение по токену. Шаги выполняются в одной транзакции:
//  1. поиск pending-приглашения по токену;
//  2. ленивая проверка срока: истёкший токен отклоняется независимо
//     от хранимого статуса, фоновой чистки нет;
//  3. проверка привязки: чужое адресное приглашение принять нельзя;
//  4. запись членства с контролем ёмкости (под блокировкой строки команды);
//  5. условный переход pending -> accepted; если другой запрос успел первым,
//     переход не срабатывает и вся транзакция откатывается, включая членство.
//
// Уведомление-приглашение удаляется после коммита по ключу (user_id, token);
// неудача здесь только логируется и на результат не влияет.
func (s *InvitationService) Accept(ctx context.Context, token string, userID uuid.UUID) (model.Membership, error) {
	var membership model.Membership

	err := s.txManager.RunInTransaction(ctx, func(ctx context.Context) error {
		inv, errTx := s.invRepo.GetPendingByToken(ctx, token)
		if errTx != nil {
			return errTx
		}

		if !inv.ExpiresAt.After(s.now().UTC()) {
			return ErrDomain("INVITATION_EXPIRED", "invitation has expired")
		}
		if inv.InviteeID != nil && *inv.InviteeID != userID {
			return ErrForbidden("NOT_YOUR_INVITATION", "this invitation is addressed to another user")
		}

		membership, errTx = s.memberRepo.Admit(ctx, inv.TeamID, userID, s.policy.RosterCapacity)
		if errTx != nil {
			return errTx
		}

		return s.invRepo.MarkAccepted(ctx, inv.ID, userID)
	})
	if err != nil {
		return model.Membership{}, s.mapAcceptError(err)
	}

	// Best-effort: чистим уведомление уже вне транзакции
	if err := s.notifRepo.DeleteByCorrelation(ctx, userID, token); err != nil {
		s.log.Warn("failed to delete invite notification",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
	}

	return membership, nil
}

// Reject отклоняет приглашение. Адресное приглашение может отклонить только
// его адресат; открытую ссылку отзывает капитан команды. Переход
// pending -> rejected такой же условный и однократный, как и принятие.
func (s *InvitationService) Reject(ctx context.Context, token string, userID uuid.UUID) error {
	inv, err := s.invRepo.GetPendingByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrInvitationNotFound) {
			return ErrDomain("INVALID_TOKEN", "invitation is invalid or already used")
		}
		return ErrInternal("failed to get invitation", err)
	}

	if inv.InviteeID != nil {
		if *inv.InviteeID != userID {
			return ErrForbidden("NOT_YOUR_INVITATION", "this invitation is addressed to another user")
		}
	} else {
		if _, err := s.requireCaptain(ctx, inv.TeamID, userID); err != nil {
			return err
		}
	}

	if err := s.invRepo.MarkRejected(ctx, inv.ID); err != nil {
		if errors.Is(err, repository.ErrInvitationConsumed) {
			return ErrDomain("INVALID_TOKEN", "invitation is invalid or already used")
		}
		return ErrInternal("failed to reject invitation", err)
	}

	if err := s.notifRepo.DeleteByCorrelation(ctx, userID, token); err != nil {
		s.log.Warn("failed to delete invite notification",
			slog.String("user_id", userID.String()),
			slog.Any("err", err),
		)
	}
	return nil
}

// mapAcceptError переводит ошибки шагов принятия в прикладные.
// Проигрыш условного перехода неотличим для клиента от несуществующего токена.
func (s *InvitationService) mapAcceptError(err error) error {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	switch {
	case errors.Is(err, repository.ErrInvitationNotFound),
		errors.Is(err, repository.ErrInvitationConsumed):
		return ErrDomain("INVALID_TOKEN", "invitation is invalid or already used")
	case errors.Is(err, repository.ErrTeamNotFound):
		return ErrNotFound("team not found")
	case errors.Is(err, repository.ErrMembershipExists):
		return ErrDomain("ALREADY_MEMBER", "you are already a member of this team")
	case errors.Is(err, repository.ErrTeamFull):
		return ErrDomain("TEAM_FULL", "team roster is full")
	}
	return ErrInternal("failed to accept invitation", err)
}

// requireCaptain загружает команду и проверяет, что caller — её капитан.
// Заявлению клиента "я капитан" не верим, сверяемся с БД.
func (s *InvitationService) requireCaptain(ctx context.Context, teamID, callerID uuid.UUID) (model.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, ErrInternal("failed to get team", err)
	}
	if team.CaptainID != callerID {
		return model.Team{}, ErrForbidden("NOT_CAPTAIN", "only the captain can manage invitations")
	}
	return team, nil
}
