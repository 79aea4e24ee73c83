package repository

import (
	"context"
	"errors"
	"fmt"

	"team-roster-service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// InvitationRepo реализует хранилище приглашений.
// Токен уникален; статус меняется только условными переходами из pending.
type InvitationRepo struct {
	db *Postgres
}

// NewInvitationRepo создаёт новый экземпляр InvitationRepo.
func NewInvitationRepo(db *Postgres) *InvitationRepo {
	return &InvitationRepo{db: db}
}

// Create сохраняет новое приглашение в статусе pending.
// Выполняется через executor из контекста: при адресном приглашении
// запись идёт в одной транзакции с уведомлением.
func (r *InvitationRepo) Create(ctx context.Context, inv model.Invitation) (model.Invitation, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
INSERT INTO team_invitations (id, team_id, inviter_id, invitee_id, token, status, expires_at)
VALUES ($1, $2, $3, $4, $5, 'pending', $6)
RETURNING id, team_id, inviter_id, invitee_id, token, status, created_at, expires_at
`, inv.ID, inv.TeamID, inv.InviterID, inv.InviteeID, inv.Token, inv.ExpiresAt)

	var created model.Invitation
	if err := row.Scan(&created.ID, &created.TeamID, &created.InviterID, &created.InviteeID,
		&created.Token, &created.Status, &created.CreatedAt, &created.ExpiresAt); err != nil {
		return model.Invitation{}, fmt.Errorf("insert invitation: %w", err)
	}
	return created, nil
}

// GetPendingByToken возвращает pending-приглашение по токену.
// Статусы не переключает: проверка срока и переход — задача координатора.
func (r *InvitationRepo) GetPendingByToken(ctx context.Context, token string) (model.Invitation, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
SELECT id, team_id, inviter_id, invitee_id, token, status, created_at, expires_at
FROM team_invitations
WHERE token = $1 AND status = 'pending'
`, token)

	var inv model.Invitation
	if err := row.Scan(&inv.ID, &inv.TeamID, &inv.InviterID, &inv.InviteeID,
		&inv.Token, &inv.Status, &inv.CreatedAt, &inv.ExpiresAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Invitation{}, ErrInvitationNotFound
		}
		return model.Invitation{}, fmt.Errorf("get invitation: %w", err)
	}
	return inv, nil
}

// MarkAccepted выполняет условный переход pending -> accepted и привязывает
// invitee, если приглашение было открытой ссылкой. Переход срабатывает только
// если статус всё ещё pending: это и делает потребление токена строго однократным.
// Проигравший конкурентный запрос получает ErrInvitationConsumed.
func (r *InvitationRepo) MarkAccepted(ctx context.Context, invitationID, userID uuid.UUID) error {
	return r.transition(ctx, invitationID, model.InvitationAccepted, &userID)
}

// MarkRejected выполняет условный переход pending -> rejected.
func (r *InvitationRepo) MarkRejected(ctx context.Context, invitationID uuid.UUID) error {
	return r.transition(ctx, invitationID, model.InvitationRejected, nil)
}

// transition — единственная точка смены статуса приглашения.
// Условие status = 'pending' входит в сам UPDATE, а не проверяется отдельным чтением.
func (r *InvitationRepo) transition(ctx context.Context, invitationID uuid.UUID, to model.InvitationStatus, invitee *uuid.UUID) error {
	q := r.db.GetQueryExecutor(ctx)

	cmdTag, err := q.Exec(ctx, `
UPDATE team_invitations
SET status     = $2,
    invitee_id = COALESCE(invitee_id, $3)
WHERE id = $1 AND status = 'pending'
`, invitationID, string(to), invitee)
	if err != nil {
		return fmt.Errorf("update invitation status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrInvitationConsumed
	}
	return nil
}
