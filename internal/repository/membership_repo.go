package repository

import (
	"context"
	"errors"
	"fmt"

	"team-roster-service/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// MembershipRepo реализует ростер команды — множество пар (team_id, user_id),
// ограниченное ёмкостью. Это самая критичная к гонкам часть хранилища:
// проверка ёмкости и вставка членства обязаны быть атомарными.
type MembershipRepo struct {
	db *Postgres
}

// NewMembershipRepo создаёт новый экземпляр MembershipRepo.
func NewMembershipRepo(db *Postgres) *MembershipRepo {
	return &MembershipRepo{db: db}
}

// Count возвращает текущий размер ростера команды.
func (r *MembershipRepo) Count(ctx context.Context, teamID uuid.UUID) (int, error) {
	q := r.db.GetQueryExecutor(ctx)

	var n int
	err := q.QueryRow(ctx, `SELECT COUNT(*) FROM team_members WHERE team_id = $1`, teamID).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count members: %w", err)
	}
	return n, nil
}

// IsMember проверяет, состоит ли пользователь в команде.
func (r *MembershipRepo) IsMember(ctx context.Context, teamID, userID uuid.UUID) (bool, error) {
	q := r.db.GetQueryExecutor(ctx)

	var exists bool
	err := q.QueryRow(ctx, `
SELECT EXISTS (
    SELECT 1 FROM team_members WHERE team_id = $1 AND user_id = $2
)
`, teamID, userID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", err)
	}
	return exists, nil
}

// Admit добавляет пользователя в ростер с проверкой ёмкости.
// Последовательность "проверить членство — посчитать — вставить" выполняется
// под блокировкой строки команды (SELECT ... FOR UPDATE), поэтому конкурентные
// Admit по одной команде сериализуются, а по разным — идут параллельно.
// Уникальный индекс (team_id, user_id) остаётся второй линией защиты.
// Вызывается внутри транзакции координатора через executor из контекста.
func (r *MembershipRepo) Admit(ctx context.Context, teamID, userID uuid.UUID, capacity int) (model.Membership, error) {
	q := r.db.GetQueryExecutor(ctx)

	// Блокируем строку команды на время проверки и вставки
	var lockedID uuid.UUID
	err := q.QueryRow(ctx, `SELECT id FROM teams WHERE id = $1 FOR UPDATE`, teamID).Scan(&lockedID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Membership{}, ErrTeamNotFound
		}
		return model.Membership{}, fmt.Errorf("lock team: %w", err)
	}

	member, err := r.IsMember(ctx, teamID, userID)
	if err != nil {
		return model.Membership{}, err
	}
	if member {
		return model.Membership{}, ErrMembershipExists
	}

	n, err := r.Count(ctx, teamID)
	if err != nil {
		return model.Membership{}, err
	}
	if n >= capacity {
		return model.Membership{}, ErrTeamFull
	}

	row := q.QueryRow(ctx, `
INSERT INTO team_members (id, team_id, user_id)
VALUES ($1, $2, $3)
RETURNING id, team_id, user_id, joined_at
`, uuid.New(), teamID, userID)

	var m model.Membership
	if err := row.Scan(&m.ID, &m.TeamID, &m.UserID, &m.JoinedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return model.Membership{}, ErrMembershipExists
		}
		return model.Membership{}, fmt.Errorf("insert membership: %w", err)
	}
	return m, nil
}

// Remove удаляет членство пользователя в команде.
// Если членства нет, возвращает ErrMembershipNotFound.
// Проверки прав (капитан, неприкосновенность капитана) — на сервисном слое.
func (r *MembershipRepo) Remove(ctx context.Context, teamID, userID uuid.UUID) error {
	q := r.db.GetQueryExecutor(ctx)

	cmdTag, err := q.Exec(ctx, `
DELETE FROM team_members
WHERE team_id = $1 AND user_id = $2
`, teamID, userID)
	if err != nil {
		return fmt.Errorf("delete membership: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrMembershipNotFound
	}
	return nil
}
