package composition

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
	"golang.org/x/sync/errgroup"
)

type CompositionDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
	Now    func() time.Time
}

func NewCompositionDBRepository(db *sql.DB, logger *zap.SugaredLogger) *CompositionDBRepository {
	return &CompositionDBRepository{
		DB:     db,
		Logger: logger,
		Now:    time.Now,
	}
}

func (cr *CompositionDBRepository) Create(ctx context.Context, c *Composition) (*Composition, error) {
	now := cr.Now().UTC()
	c.ID = uuid.New().String()
	c.CreatedAt = now
	c.UpdatedAt = now

	query := `
		INSERT INTO compositions (id, user_id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := cr.DB.ExecContext(ctx, query, c.ID, c.OwnerID, c.Title, c.Description, c.CreatedAt, c.UpdatedAt)
	if err != nil {
		cr.Logger.Error("Failed save composition to DB", zap.Error(err), zap.String("compositionID", c.ID))

		return nil, myErr.ErrDBInternal
	}

	cr.Logger.Info(fmt.Sprintf("Composition %s created successfully", c.ID))

	return c, nil
}

// GetByID - заметки и записи грузятся параллельно после самой композиции
func (cr *CompositionDBRepository) GetByID(ctx context.Context, id, ownerID string) (*Composition, error) {
	query := `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM compositions
		WHERE id = $1 AND user_id = $2
	`

	var c Composition
	err := cr.DB.QueryRowContext(ctx, query, id, ownerID).Scan(
		&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		cr.Logger.Warnf("Error while load composition %s: %v", id, err)

		return nil, myErr.ErrDBInternal
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		notes, err := cr.notes(gctx, id)
		c.Notes = notes
		return err
	})
	g.Go(func() error {
		recordings, err := cr.recordings(gctx, id)
		c.Recordings = recordings
		return err
	})
	if err := g.Wait(); err != nil {
		cr.Logger.Error("Failed to load composition members", zap.Error(err), zap.String("compositionID", id))

		return nil, myErr.ErrDBInternal
	}

	return &c, nil
}

func (cr *CompositionDBRepository) ListByOwner(ctx context.Context, ownerID string) ([]Composition, error) {
	query := `
		SELECT id, user_id, title, description, created_at, updated_at
		FROM compositions
		WHERE user_id = $1
		ORDER BY updated_at DESC
	`

	rows, err := cr.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		cr.Logger.Error("Failed to get compositions from DB", zap.Error(err), zap.String("userID", ownerID))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	compositions := make([]Composition, 0)
	for rows.Next() {
		var c Composition
		if err := rows.Scan(&c.ID, &c.OwnerID, &c.Title, &c.Description, &c.CreatedAt, &c.UpdatedAt); err != nil {
			cr.Logger.Error("Failed to scan composition row", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		compositions = append(compositions, c)
	}

	if err := rows.Err(); err != nil {
		cr.Logger.Error("Error occurred while iterating over composition rows", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	return compositions, nil
}

func (cr *CompositionDBRepository) Update(ctx context.Context, c *Composition) (*Composition, error) {
	c.UpdatedAt = cr.Now().UTC()

	query := `
		UPDATE compositions
		SET title = $1, description = $2, updated_at = $3
		WHERE id = $4 AND user_id = $5
	`
	result, err := cr.DB.ExecContext(ctx, query, c.Title, c.Description, c.UpdatedAt, c.ID, c.OwnerID)
	if err != nil {
		cr.Logger.Error("Failed to update composition", zap.Error(err), zap.String("compositionID", c.ID))

		return nil, myErr.ErrDBInternal
	}

	if err := expectOneRow(result); err != nil {
		return nil, err
	}

	return cr.GetByID(ctx, c.ID, c.OwnerID)
}

// Delete - строки связей удаляются каскадом по внешнему ключу
func (cr *CompositionDBRepository) Delete(ctx context.Context, id, ownerID string) error {
	result, err := cr.DB.ExecContext(ctx, `DELETE FROM compositions WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		cr.Logger.Error("Failed to delete composition", zap.Error(err), zap.String("compositionID", id))

		return myErr.ErrDBInternal
	}

	if err := expectOneRow(result); err != nil {
		return err
	}

	cr.Logger.Info(fmt.Sprintf("Composition %s deleted successfully", id))

	return nil
}

func (cr *CompositionDBRepository) AddMember(ctx context.Context, id, ownerID string, ref resource.Ref) error {
	if err := cr.ensureOwned(ctx, id, ownerID, ref); err != nil {
		return err
	}

	query := fmt.Sprintf( // nolint:gosec
		`INSERT INTO %s (composition_id, %s, created_at) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
		joinTable(ref.Type), ref.Type.Column(),
	)
	if _, err := cr.DB.ExecContext(ctx, query, id, ref.ID, cr.Now().UTC()); err != nil {
		cr.Logger.Error("Failed to add composition member", zap.Error(err), zap.String("compositionID", id))

		return myErr.ErrDBInternal
	}

	return nil
}

func (cr *CompositionDBRepository) RemoveMember(ctx context.Context, id, ownerID string, ref resource.Ref) error {
	if err := cr.ensureOwned(ctx, id, ownerID, ref); err != nil {
		return err
	}

	query := fmt.Sprintf( // nolint:gosec
		`DELETE FROM %s WHERE composition_id = $1 AND %s = $2`,
		joinTable(ref.Type), ref.Type.Column(),
	)
	if _, err := cr.DB.ExecContext(ctx, query, id, ref.ID); err != nil {
		cr.Logger.Error("Failed to remove composition member", zap.Error(err), zap.String("compositionID", id))

		return myErr.ErrDBInternal
	}

	return nil
}

// ensureOwned - и композиция, и ресурс должны принадлежать вызывающему
func (cr *CompositionDBRepository) ensureOwned(ctx context.Context, id, ownerID string, ref resource.Ref) error {
	if _, err := resource.ParseType(string(ref.Type)); err != nil {
		return err
	}

	query := `
		SELECT
			EXISTS (SELECT 1 FROM compositions WHERE id = $1 AND user_id = $3),
			EXISTS (SELECT 1 FROM ` + ref.Type.Table() + ` WHERE id = $2 AND user_id = $3)
	` // nolint:gosec

	var compositionOwned, resourceOwned bool
	if err := cr.DB.QueryRowContext(ctx, query, id, ref.ID, ownerID).Scan(&compositionOwned, &resourceOwned); err != nil {
		cr.Logger.Error("Failed to check composition ownership", zap.Error(err), zap.String("compositionID", id))

		return myErr.ErrDBInternal
	}

	if !compositionOwned || !resourceOwned {
		return myErr.ErrNotFound
	}

	return nil
}

func (cr *CompositionDBRepository) notes(ctx context.Context, id string) ([]resource.Note, error) {
	query := `
		SELECT n.id, n.user_id, n.title, n.content, n.recording_id, n.date, n.created_at, n.updated_at
		FROM notes n
		JOIN composition_notes cn ON cn.note_id = n.id
		WHERE cn.composition_id = $1
		ORDER BY cn.created_at
	`

	rows, err := cr.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]resource.Note, 0)
	for rows.Next() {
		var (
			n           resource.Note
			recordingID sql.NullString
		)
		if err := rows.Scan(&n.ID, &n.OwnerID, &n.Title, &n.Content, &recordingID, &n.Date, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, err
		}
		if recordingID.Valid {
			n.RecordingID = &recordingID.String
		}
		notes = append(notes, n)
	}

	return notes, rows.Err()
}

func (cr *CompositionDBRepository) recordings(ctx context.Context, id string) ([]resource.Recording, error) {
	query := `
		SELECT r.id, r.user_id, r.title, r.audio_url, r.duration_seconds, r.date, r.created_at, r.updated_at
		FROM recordings r
		JOIN composition_recordings cr ON cr.recording_id = r.id
		WHERE cr.composition_id = $1
		ORDER BY cr.created_at
	`

	rows, err := cr.DB.QueryContext(ctx, query, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recordings := make([]resource.Recording, 0)
	for rows.Next() {
		var r resource.Recording
		if err := rows.Scan(&r.ID, &r.OwnerID, &r.Title, &r.AudioURL, &r.DurationSeconds, &r.Date, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, err
		}
		recordings = append(recordings, r)
	}

	return recordings, rows.Err()
}

func joinTable(t resource.Type) string {
	if t == resource.TypeNote {
		return "composition_notes"
	}
	return "composition_recordings"
}

func expectOneRow(result sql.Result) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return myErr.ErrDBInternal
	}
	if rowsAffected != 1 {
		return myErr.ErrNotFound
	}
	return nil
}
