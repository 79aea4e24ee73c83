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

// TeamRepo реализует репозиторий команд на базе PostgreSQL.
type TeamRepo struct {
	db *Postgres
}

// NewTeamRepo создаёт новый экземпляр TeamRepo c переданным подключением к PostgreSQL.
func NewTeamRepo(db *Postgres) *TeamRepo {
	return &TeamRepo{db: db}
}

// mapUniqueViolation переводит нарушение уникальных ограничений таблицы teams
// в доменные ошибки по имени ограничения.
func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}
	switch pgErr.ConstraintName {
	case "teams_name_key":
		return ErrNameTaken
	case "teams_tag_key":
		return ErrTagTaken
	}
	return nil
}

// CreateTeamWithCaptain создаёт команду и членство капитана в одной транзакции.
// Частично созданная команда (без членства капитана) снаружи не наблюдаема.
func (r *TeamRepo) CreateTeamWithCaptain(ctx context.Context, t model.Team) (model.Team, error) {
	tx, err := r.db.Pool.Begin(ctx)
	if err != nil {
		return model.Team{}, fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			_ = tx.Commit(ctx)
		}
	}()

	row := tx.QueryRow(ctx, `
INSERT INTO teams (id, name, tag, description, captain_id)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, name, tag, description, captain_id, created_at
`, t.ID, t.Name, t.Tag, t.Description, t.CaptainID)

	var created model.Team
	if err = row.Scan(&created.ID, &created.Name, &created.Tag, &created.Description, &created.CaptainID, &created.CreatedAt); err != nil {
		if mapped := mapUniqueViolation(err); mapped != nil {
			return model.Team{}, mapped
		}
		return model.Team{}, fmt.Errorf("insert team: %w", err)
	}

	var m model.Membership
	row = tx.QueryRow(ctx, `
INSERT INTO team_members (id, team_id, user_id)
VALUES ($1, $2, $3)
RETURNING id, team_id, user_id, joined_at
`, uuid.New(), created.ID, t.CaptainID)
	if err = row.Scan(&m.ID, &m.TeamID, &m.UserID, &m.JoinedAt); err != nil {
		return model.Team{}, fmt.Errorf("insert captain membership: %w", err)
	}

	created.Members = []model.Membership{m}
	return created, nil
}

// GetTeam возвращает команду по идентификатору. Если команда не найдена,
// возвращает ErrTeamNotFound. Выполняется через executor из контекста,
// чтобы внутри транзакции видеть её изменения.
func (r *TeamRepo) GetTeam(ctx context.Context, teamID uuid.UUID) (model.Team, error) {
	q := r.db.GetQueryExecutor(ctx)

	row := q.QueryRow(ctx, `
SELECT id, name, tag, description, captain_id, created_at
FROM teams
WHERE id = $1
`, teamID)

	var t model.Team
	if err := row.Scan(&t.ID, &t.Name, &t.Tag, &t.Description, &t.CaptainID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		return model.Team{}, fmt.Errorf("get team: %w", err)
	}
	return t, nil
}

// UpdateTeam применяет частичное обновление: nil-поля остаются нетронутыми.
// Конфликты уникальности транслируются в ErrNameTaken / ErrTagTaken.
func (r *TeamRepo) UpdateTeam(ctx context.Context, teamID uuid.UUID, upd model.TeamUpdate) (model.Team, error) {
	row := r.db.Pool.QueryRow(ctx, `
UPDATE teams
SET name        = COALESCE($2, name),
    tag         = COALESCE($3, tag),
    description = COALESCE($4, description)
WHERE id = $1
RETURNING id, name, tag, description, captain_id, created_at
`, teamID, upd.Name, upd.Tag, upd.Description)

	var t model.Team
	if err := row.Scan(&t.ID, &t.Name, &t.Tag, &t.Description, &t.CaptainID, &t.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Team{}, ErrTeamNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != nil {
			return model.Team{}, mapped
		}
		return model.Team{}, fmt.Errorf("update team: %w", err)
	}
	return t, nil
}

// DeleteTeam удаляет команду. Членства и приглашения удаляются каскадно
// по внешним ключам. Если команда не найдена, возвращает ErrTeamNotFound.
func (r *TeamRepo) DeleteTeam(ctx context.Context, teamID uuid.UUID) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `DELETE FROM teams WHERE id = $1`, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrTeamNotFound
	}
	return nil
}

// ListUserTeams возвращает команды, в которых состоит пользователь,
// вместе со списками их участников.
func (r *TeamRepo) ListUserTeams(ctx context.Context, userID uuid.UUID) ([]model.Team, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT t.id, t.name, t.tag, t.description, t.captain_id, t.created_at,
       m.id, m.team_id, m.user_id, m.joined_at
FROM teams t
JOIN team_members mine ON mine.team_id = t.id AND mine.user_id = $1
JOIN team_members m ON m.team_id = t.id
ORDER BY t.created_at, m.joined_at
`, userID)
	if err != nil {
		return nil, fmt.Errorf("query user teams: %w", err)
	}
	defer rows.Close()

	teams := make([]model.Team, 0)
	index := make(map[uuid.UUID]int)

	for rows.Next() {
		var t model.Team
		var m model.Membership
		if err := rows.Scan(&t.ID, &t.Name, &t.Tag, &t.Description, &t.CaptainID, &t.CreatedAt,
			&m.ID, &m.TeamID, &m.UserID, &m.JoinedAt); err != nil {
			return nil, fmt.Errorf("scan team row: %w", err)
		}

		i, ok := index[t.ID]
		if !ok {
			t.Members = make([]model.Membership, 0, 1)
			teams = append(teams, t)
			i = len(teams) - 1
			index[t.ID] = i
		}
		teams[i].Members = append(teams[i].Members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}

	return teams, nil
}
