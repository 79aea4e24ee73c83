package repository

import (
	"context"
	"fmt"

	"team-roster-service/internal/model"

	"github.com/google/uuid"
)

// NotificationRepo реализует приёмник уведомлений. Ядро сервиса только создаёт
// уведомления и удаляет их по корреляционному ключу (user_id, token);
// чтение и отметка о прочтении — отдельная пользовательская поверхность.
type NotificationRepo struct {
	db *Postgres
}

// NewNotificationRepo создаёт новый экземпляр NotificationRepo.
func NewNotificationRepo(db *Postgres) *NotificationRepo {
	return &NotificationRepo{db: db}
}

// Create сохраняет уведомление. Выполняется через executor из контекста,
// чтобы уведомление о приглашении записывалось атомарно с самим приглашением.
func (r *NotificationRepo) Create(ctx context.Context, n model.Notification) error {
	q := r.db.GetQueryExecutor(ctx)

	_, err := q.Exec(ctx, `
INSERT INTO notifications (id, user_id, type, title, message, team_id, token, payload)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`, n.ID, n.UserID, n.Type, n.Title, n.Message, n.TeamID, n.Token, n.Payload)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}

// DeleteByCorrelation удаляет уведомления по точному ключу (user_id, token).
// Вызывается best-effort после принятия приглашения; ноль удалённых строк —
// не ошибка (уведомления могло не быть вовсе, например для открытой ссылки).
func (r *NotificationRepo) DeleteByCorrelation(ctx context.Context, userID uuid.UUID, token string) error {
	_, err := r.db.Pool.Exec(ctx, `
DELETE FROM notifications
WHERE user_id = $1 AND token = $2
`, userID, token)
	if err != nil {
		return fmt.Errorf("delete notifications: %w", err)
	}
	return nil
}

// ListForUser возвращает последние уведомления пользователя, не более limit.
func (r *NotificationRepo) ListForUser(ctx context.Context, userID uuid.UUID, limit int) ([]model.Notification, error) {
	rows, err := r.db.Pool.Query(ctx, `
SELECT id, user_id, type, title, message, team_id, token, payload, is_read, created_at
FROM notifications
WHERE user_id = $1
ORDER BY created_at DESC
LIMIT $2
`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	res := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Type, &n.Title, &n.Message,
			&n.TeamID, &n.Token, &n.Payload, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		res = append(res, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows error: %w", err)
	}
	return res, nil
}

// MarkRead помечает уведомление пользователя прочитанным.
// Чужое или отсутствующее уведомление — ErrNotificationNotFound.
func (r *NotificationRepo) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	cmdTag, err := r.db.Pool.Exec(ctx, `
UPDATE notifications
SET is_read = TRUE
WHERE id = $1 AND user_id = $2
`, notificationID, userID)
	if err != nil {
		return fmt.Errorf("update notification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return ErrNotificationNotFound
	}
	return nil
}
