package share

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const selectColumns = `id, resource_id, resource_type, owner_id, shared_with_email, permission_level, status, created_at, updated_at`

type ShareDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
	Now    func() time.Time
}

func NewShareDBRepository(db *sql.DB, logger *zap.SugaredLogger) *ShareDBRepository {
	return &ShareDBRepository{
		DB:     db,
		Logger: logger,
		Now:    time.Now,
	}
}

// Create - уникальность (resource_id, resource_type, shared_with_email) держит
// индекс в базе, конфликт возвращается как ErrAlreadyShared
func (sr *ShareDBRepository) Create(ctx context.Context, s *Share) (*Share, error) {
	now := sr.Now().UTC()
	s.ID = uuid.New().String()
	s.Status = StatusPending
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO shares (id, resource_id, resource_type, owner_id, shared_with_email, permission_level, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (resource_id, resource_type, shared_with_email) DO NOTHING
		RETURNING id
	`

	var id string
	err := sr.DB.QueryRowContext(
		ctx,
		query,
		s.ID,
		s.ResourceID,
		s.ResourceType,
		s.OwnerID,
		s.SharedWithEmail,
		s.PermissionLevel,
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			sr.Logger.Infof("Resource %s already shared with %s", s.ResourceID, s.SharedWithEmail)

			return nil, myErr.ErrAlreadyShared
		}
		sr.Logger.Error(
			"Failed save share to DB",
			zap.Error(err),
			zap.String("resourceID", s.ResourceID),
		)

		return nil, myErr.ErrDBInternal
	}

	sr.Logger.Info(fmt.Sprintf("Share %s created successfully", s.ID))

	return s, nil
}

func (sr *ShareDBRepository) GetByID(ctx context.Context, shareID string) (*Share, error) {
	query := `SELECT ` + selectColumns + ` FROM shares WHERE id = $1`

	s, err := scanShare(sr.DB.QueryRowContext(ctx, query, shareID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFoundShare
		}
		sr.Logger.Warnf("Error while load share %s: %v", shareID, err)

		return nil, myErr.ErrDBInternal
	}

	return s, nil
}

func (sr *ShareDBRepository) ListByResource(ctx context.Context, ref resource.Ref) ([]Share, error) {
	query := `SELECT ` + selectColumns + ` FROM shares WHERE resource_id = $1 AND resource_type = $2 ORDER BY created_at DESC`

	return sr.list(ctx, query, ref.ID, ref.Type)
}

func (sr *ShareDBRepository) ListByEmail(ctx context.Context, email string) ([]Share, error) {
	query := `SELECT ` + selectColumns + ` FROM shares WHERE shared_with_email = $1 ORDER BY created_at DESC`

	return sr.list(ctx, query, email)
}

// Accept - меняет статус только у pending записи получателя. Если ничего не
// обновилось, отдельно проверяем, существует ли запись вообще
func (sr *ShareDBRepository) Accept(ctx context.Context, shareID, email string) (*Share, error) {
	query := `
		UPDATE shares SET status = $1, updated_at = $2
		WHERE id = $3 AND shared_with_email = $4 AND status = $5
		RETURNING ` + selectColumns

	s, err := scanShare(sr.DB.QueryRowContext(ctx, query, StatusAccepted, sr.Now().UTC(), shareID, email, StatusPending))
	if err == nil {
		return s, nil
	}

	if !errors.Is(err, sql.ErrNoRows) {
		sr.Logger.Error("Failed to accept share", zap.Error(err), zap.String("shareID", shareID))

		return nil, myErr.ErrDBInternal
	}

	var status Status
	err = sr.DB.QueryRowContext(
		ctx,
		`SELECT status FROM shares WHERE id = $1 AND shared_with_email = $2`,
		shareID,
		email,
	).Scan(&status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFoundShare
		}
		sr.Logger.Error("Failed to load share status", zap.Error(err), zap.String("shareID", shareID))

		return nil, myErr.ErrDBInternal
	}

	sr.Logger.Infof("Share %s is %s, accept rejected", shareID, status)

	return nil, myErr.ErrInvalidTransition
}

func (sr *ShareDBRepository) Delete(ctx context.Context, shareID string) error {
	result, err := sr.DB.ExecContext(ctx, `DELETE FROM shares WHERE id = $1`, shareID)
	if err != nil {
		sr.Logger.Error("Failed to delete share", zap.Error(err), zap.String("shareID", shareID))

		return myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		sr.Logger.Error("Failed to get rows affected while deleting share", zap.Error(err))

		return myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		return myErr.ErrNotFoundShare
	}

	sr.Logger.Info(fmt.Sprintf("Share %s deleted successfully", shareID))

	return nil
}

func (sr *ShareDBRepository) FindAccepted(ctx context.Context, ref resource.Ref, email string) (*Share, error) {
	query := `SELECT ` + selectColumns + ` FROM shares
		WHERE resource_id = $1 AND resource_type = $2 AND shared_with_email = $3 AND status = $4`

	s, err := scanShare(sr.DB.QueryRowContext(ctx, query, ref.ID, ref.Type, email, StatusAccepted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFoundShare
		}
		sr.Logger.Error("Failed to look up accepted share", zap.Error(err), zap.String("resourceID", ref.ID))

		return nil, myErr.ErrDBInternal
	}

	return s, nil
}

func (sr *ShareDBRepository) list(ctx context.Context, query string, args ...interface{}) ([]Share, error) {
	rows, err := sr.DB.QueryContext(ctx, query, args...)
	if err != nil {
		sr.Logger.Error("Failed to get shares from DB", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	shares := make([]Share, 0)
	for rows.Next() {
		s, err := scanShare(rows)
		if err != nil {
			sr.Logger.Error("Failed to scan share row", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		shares = append(shares, *s)
	}

	if err := rows.Err(); err != nil {
		sr.Logger.Error("Error occurred while iterating over share rows", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	return shares, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanShare(row rowScanner) (*Share, error) {
	var s Share
	err := row.Scan(
		&s.ID,
		&s.ResourceID,
		&s.ResourceType,
		&s.OwnerID,
		&s.SharedWithEmail,
		&s.PermissionLevel,
		&s.Status,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
