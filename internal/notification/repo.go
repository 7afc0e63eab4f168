package notification

import (
	"context"
	"database/sql"
	"time"

	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Repository struct {
	db     *sql.DB
	logger *zap.SugaredLogger
	now    func() time.Time
}

func NewRepository(db *sql.DB, logger *zap.SugaredLogger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (r *Repository) Save(ctx context.Context, n *Notification) error {
	if n.ID == "" {
		n.ID = uuid.New().String()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = r.now().UTC()
	}

	// kafka доставляет at-least-once, поэтому (kind, subject_id) уникальны
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications
			(id, recipient_id, recipient_email, kind, message, resource_id, resource_type, subject_id, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, FALSE, $9)
		ON CONFLICT (kind, subject_id) DO NOTHING
	`,
		n.ID, nullable(n.RecipientID), nullable(n.RecipientEmail), n.Kind, n.Message,
		n.ResourceID, n.ResourceType, n.SubjectID, n.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Failed to save notification", zap.Error(err), zap.String("kind", n.Kind))
		return myErr.ErrDBInternal
	}

	return nil
}

func (r *Repository) ListFor(ctx context.Context, actor resource.Actor, unreadOnly bool) ([]Notification, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, COALESCE(recipient_id, ''), COALESCE(recipient_email, ''), kind, message,
			resource_id, resource_type, subject_id, read, created_at
		FROM notifications
		WHERE (recipient_id = $1 OR recipient_email = $2) AND (NOT $3 OR read = FALSE)
		ORDER BY created_at DESC
	`, actor.UserID, actor.Email, unreadOnly)
	if err != nil {
		r.logger.Error("Failed to list notifications", zap.Error(err), zap.String("userID", actor.UserID))
		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	list := make([]Notification, 0)
	for rows.Next() {
		var n Notification
		if err := rows.Scan(
			&n.ID, &n.RecipientID, &n.RecipientEmail, &n.Kind, &n.Message,
			&n.ResourceID, &n.ResourceType, &n.SubjectID, &n.Read, &n.CreatedAt,
		); err != nil {
			r.logger.Error("Failed to scan notification", zap.Error(err))
			return nil, myErr.ErrDBInternal
		}
		list = append(list, n)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Rows error while listing notifications", zap.Error(err))
		return nil, myErr.ErrDBInternal
	}

	return list, nil
}

func (r *Repository) MarkRead(ctx context.Context, actor resource.Actor, notificationID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND (recipient_id = $2 OR recipient_email = $3)
	`, notificationID, actor.UserID, actor.Email)
	if err != nil {
		r.logger.Error("Failed to mark notification read", zap.Error(err), zap.String("id", notificationID))
		return myErr.ErrDBInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return myErr.ErrDBInternal
	}
	if affected == 0 {
		return myErr.ErrNotFound
	}

	return nil
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
