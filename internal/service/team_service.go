// Package service содержит бизнес-логику управления командами,
// приглашениями и членством в ростере.
package service

import (
	"context"
	"errors"
	"strings"

	"team-roster-service/internal/model"
	"team-roster-service/internal/repository"

	"github.com/google/uuid"
)

// TeamRepository описывает контракт репозитория команд для бизнес-слоя.
type TeamRepository interface {
	CreateTeamWithCaptain(ctx context.Context, t model.Team) (model.Team, error)
	GetTeam(ctx context.Context, teamID uuid.UUID) (model.Team, error)
	UpdateTeam(ctx context.Context, teamID uuid.UUID, upd model.TeamUpdate) (model.Team, error)
	DeleteTeam(ctx context.Context, teamID uuid.UUID) error
	ListUserTeams(ctx context.Context, userID uuid.UUID) ([]model.Team, error)
}

// MembershipRepository описывает контракт ростера для бизнес-слоя.
type MembershipRepository interface {
	IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error)
	Admit(ctx context.Context, teamID, userID uuid.UUID, capacity int) (model.Membership, error)
	Remove(ctx context.Context, teamID, userID uuid.UUID) error
}

// TeamService содержит бизнес-логику по командам: создание, редактирование,
// роспуск, исключение участников и выход из команды.
type TeamService struct {
	teamRepo   TeamRepository
	memberRepo MembershipRepository
}

// NewTeamService создаёт новый сервис для операций над командами.
func NewTeamService(teamRepo TeamRepository, memberRepo MembershipRepository) *TeamService {
	return &TeamService{
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
	}
}

// CreateTeam создаёт команду и сразу делает создателя капитаном и участником.
// Тег нормализуется в верхний регистр, поэтому его уникальность
// не зависит от регистра; имя сравнивается как есть.
func (s *TeamService) CreateTeam(ctx context.Context, name, tag string, description *string, captainID uuid.UUID) (model.Team, error) {
	if name == "" || tag == "" {
		return model.Team{}, ErrBadRequest("name and tag are required")
	}

	team := model.Team{
		ID:          uuid.New(),
		Name:        name,
		Tag:         strings.ToUpper(tag),
		Description: description,
		CaptainID:   captainID,
	}

	created, err := s.teamRepo.CreateTeamWithCaptain(ctx, team)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNameTaken):
			return model.Team{}, ErrDomain("NAME_TAKEN", "team name is already in use")
		case errors.Is(err, repository.ErrTagTaken):
			return model.Team{}, ErrDomain("TAG_TAKEN", "team tag is already in use")
		}
		return model.Team{}, ErrInternal("failed to create team", err)
	}
	return created, nil
}

// UpdateTeam применяет частичное обновление команды. Редактировать команду
// может только её капитан; проверка идёт по данным из БД, а не по заявлению клиента.
func (s *TeamService) UpdateTeam(ctx context.Context, teamID, callerID uuid.UUID, upd model.TeamUpdate) (model.Team, error) {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return model.Team{}, err
	}
	if team.CaptainID != callerID {
		return model.Team{}, ErrForbidden("NOT_CAPTAIN", "only the captain can edit the team")
	}

	if upd.Tag != nil {
		normalized := strings.ToUpper(*upd.Tag)
		upd.Tag = &normalized
	}

	updated, err := s.teamRepo.UpdateTeam(ctx, teamID, upd)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrTeamNotFound):
			return model.Team{}, ErrNotFound("team not found")
		case errors.Is(err, repository.ErrNameTaken):
			return model.Team{}, ErrDomain("NAME_TAKEN", "team name is already in use")
		case errors.Is(err, repository.ErrTagTaken):
			return model.Team{}, ErrDomain("TAG_TAKEN", "team tag is already in use")
		}
		return model.Team{}, ErrInternal("failed to update team", err)
	}
	return updated, nil
}

// DeleteTeam распускает команду. Вместе с ней каскадно удаляются все членства,
// включая членство капитана — это единственный способ его снять.
func (s *TeamService) DeleteTeam(ctx context.Context, teamID, callerID uuid.UUID) error {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CaptainID != callerID {
		return ErrForbidden("NOT_CAPTAIN", "only the captain can delete the team")
	}

	if err := s.teamRepo.DeleteTeam(ctx, teamID); err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return ErrNotFound("team not found")
		}
		return ErrInternal("failed to delete team", err)
	}
	return nil
}

// RemoveMember исключает участника из команды по решению капитана.
// Капитан не может исключить сам себя: ему доступен только роспуск команды.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, targetID, callerID uuid.UUID) error {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CaptainID != callerID {
		return ErrForbidden("NOT_CAPTAIN", "only the captain can remove members")
	}
	if targetID == team.CaptainID {
		return ErrDomain("CAPTAIN_CANNOT_BE_REMOVED", "the captain cannot be removed, disband the team instead")
	}

	if err := s.memberRepo.Remove(ctx, teamID, targetID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return ErrDomain("NOT_A_MEMBER", "user is not a member of this team")
		}
		return ErrInternal("failed to remove member", err)
	}
	return nil
}

// Leave — добровольный выход участника из команды.
// Капитан выйти не может: сначала нужно передать капитанство или распустить команду.
func (s *TeamService) Leave(ctx context.Context, teamID, userID uuid.UUID) error {
	team, err := s.getTeam(ctx, teamID)
	if err != nil {
		return err
	}
	if team.CaptainID == userID {
		return ErrDomain("CAPTAIN_MUST_TRANSFER_OR_DISBAND", "the captain cannot leave, name a new captain or disband the team")
	}

	if err := s.memberRepo.Remove(ctx, teamID, userID); err != nil {
		if errors.Is(err, repository.ErrMembershipNotFound) {
			return ErrDomain("NOT_A_MEMBER", "you are not a member of this team")
		}
		return ErrInternal("failed to leave team", err)
	}
	return nil
}

// ListUserTeams возвращает команды пользователя вместе с их участниками.
func (s *TeamService) ListUserTeams(ctx context.Context, userID uuid.UUID) ([]model.Team, error) {
	teams, err := s.teamRepo.ListUserTeams(ctx, userID)
	if err != nil {
		return nil, ErrInternal("failed to list teams", err)
	}
	return teams, nil
}

func (s *TeamService) getTeam(ctx context.Context, teamID uuid.UUID) (model.Team, error) {
	team, err := s.teamRepo.GetTeam(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrTeamNotFound) {
			return model.Team{}, ErrNotFound("team not found")
		}
		return model.Team{}, ErrInternal("failed to get team", err)
	}
	return team, nil
}
