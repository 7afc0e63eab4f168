package resource

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResourceDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
	Now    func() time.Time
}

func NewResourceDBRepository(db *sql.DB, logger *zap.SugaredLogger) *ResourceDBRepository {
	return &ResourceDBRepository{
		DB:     db,
		Logger: logger,
		Now:    time.Now,
	}
}

// OwnerOf - возвращает ID владельца заметки или записи
func (rr *ResourceDBRepository) OwnerOf(ctx context.Context, ref Ref) (string, error) {
	if _, err := ParseType(string(ref.Type)); err != nil {
		return "", err
	}

	query := "SELECT user_id FROM " + ref.Type.Table() + " WHERE id = $1" // nolint:gosec

	var ownerID string
	err := rr.DB.QueryRowContext(ctx, query, ref.ID).Scan(&ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", myErr.ErrNotFound
		}
		rr.Logger.Error("Failed to get resource owner", zap.Error(err), zap.String("resourceID", ref.ID))

		return "", myErr.ErrDBInternal
	}

	return ownerID, nil
}

func (rr *ResourceDBRepository) Title(ctx context.Context, ref Ref) (string, error) {
	if _, err := ParseType(string(ref.Type)); err != nil {
		return "", err
	}

	query := "SELECT title FROM " + ref.Type.Table() + " WHERE id = $1" // nolint:gosec

	var title string
	err := rr.DB.QueryRowContext(ctx, query, ref.ID).Scan(&title)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", myErr.ErrNotFound
		}
		rr.Logger.Error("Failed to get resource title", zap.Error(err), zap.String("resourceID", ref.ID))

		return "", myErr.ErrDBInternal
	}

	return title, nil
}

func (rr *ResourceDBRepository) CreateNote(ctx context.Context, n *Note) (*Note, error) {
	now := rr.Now().UTC()
	n.ID = uuid.New().String()
	n.CreatedAt = now
	n.UpdatedAt = now
	if n.Date.IsZero() {
		n.Date = now
	}

	query := `
		INSERT INTO notes (id, user_id, title, content, recording_id, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := rr.DB.ExecContext(ctx, query,
		n.ID, n.OwnerID, n.Title, n.Content, n.RecordingID, n.Date, n.CreatedAt, n.UpdatedAt,
	)
	if err != nil {
		rr.Logger.Error("Failed save note to DB", zap.Error(err), zap.String("noteID", n.ID))

		return nil, myErr.ErrDBInternal
	}

	rr.Logger.Info(fmt.Sprintf("Note %s created successfully", n.ID))

	return n, nil
}

func (rr *ResourceDBRepository) GetNote(ctx context.Context, id string) (*Note, error) {
	query := `
		SELECT id, user_id, title, content, recording_id, date, created_at, updated_at
		FROM notes
		WHERE id = $1
	`

	n, err := scanNote(rr.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		rr.Logger.Warnf("Error while load note %s: %v", id, err)

		return nil, myErr.ErrDBInternal
	}

	return n, nil
}

func (rr *ResourceDBRepository) ListNotes(ctx context.Context, ownerID string) ([]Note, error) {
	query := `
		SELECT id, user_id, title, content, recording_id, date, created_at, updated_at
		FROM notes
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := rr.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		rr.Logger.Error("Failed to get notes from DB", zap.Error(err), zap.String("userID", ownerID))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	notes := make([]Note, 0)
	for rows.Next() {
		n, err := scanNote(rows)
		if err != nil {
			rr.Logger.Error("Failed to scan note row", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		notes = append(notes, *n)
	}

	if err := rows.Err(); err != nil {
		rr.Logger.Error("Error occurred while iterating over note rows", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	return notes, nil
}

// UpdateNote - обновляет заголовок, текст и привязку к записи, только для владельца
func (rr *ResourceDBRepository) UpdateNote(ctx context.Context, n *Note) (*Note, error) {
	n.UpdatedAt = rr.Now().UTC()

	query := `
		UPDATE notes
		SET title = $1, content = $2, recording_id = $3, updated_at = $4
		WHERE id = $5 AND user_id = $6
	`
	result, err := rr.DB.ExecContext(ctx, query, n.Title, n.Content, n.RecordingID, n.UpdatedAt, n.ID, n.OwnerID)
	if err != nil {
		rr.Logger.Error("Failed to update note", zap.Error(err), zap.String("noteID", n.ID))

		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		rr.Logger.Error("Failed to get rows affected while updating note", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		return nil, myErr.ErrNotFound
	}

	return rr.GetNote(ctx, n.ID)
}

func (rr *ResourceDBRepository) DeleteNote(ctx context.Context, id, ownerID string) error {
	return rr.deleteOwned(ctx, TypeNote, id, ownerID)
}

func (rr *ResourceDBRepository) CreateRecording(ctx context.Context, r *Recording) (*Recording, error) {
	now := rr.Now().UTC()
	r.ID = uuid.New().String()
	r.CreatedAt = now
	r.UpdatedAt = now
	if r.Date.IsZero() {
		r.Date = now
	}

	query := `
		INSERT INTO recordings (id, user_id, title, audio_url, duration_seconds, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := rr.DB.ExecContext(ctx, query,
		r.ID, r.OwnerID, r.Title, r.AudioURL, r.DurationSeconds, r.Date, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		rr.Logger.Error("Failed save recording to DB", zap.Error(err), zap.String("recordingID", r.ID))

		return nil, myErr.ErrDBInternal
	}

	rr.Logger.Info(fmt.Sprintf("Recording %s created successfully", r.ID))

	return r, nil
}

func (rr *ResourceDBRepository) GetRecording(ctx context.Context, id string) (*Recording, error) {
	query := `
		SELECT id, user_id, title, audio_url, duration_seconds, date, created_at, updated_at
		FROM recordings
		WHERE id = $1
	`

	r, err := scanRecording(rr.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		rr.Logger.Warnf("Error while load recording %s: %v", id, err)

		return nil, myErr.ErrDBInternal
	}

	return r, nil
}

func (rr *ResourceDBRepository) ListRecordings(ctx context.Context, ownerID string) ([]Recording, error) {
	query := `
		SELECT id, user_id, title, audio_url, duration_seconds, date, created_at, updated_at
		FROM recordings
		WHERE user_id = $1
		ORDER BY date DESC
	`

	rows, err := rr.DB.QueryContext(ctx, query, ownerID)
	if err != nil {
		rr.Logger.Error("Failed to get recordings from DB", zap.Error(err), zap.String("userID", ownerID))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	recordings := make([]Recording, 0)
	for rows.Next() {
		r, err := scanRecording(rows)
		if err != nil {
			rr.Logger.Error("Failed to scan recording row", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		recordings = append(recordings, *r)
	}

	if err := rows.Err(); err != nil {
		rr.Logger.Error("Error occurred while iterating over recording rows", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	return recordings, nil
}

func (rr *ResourceDBRepository) DeleteRecording(ctx context.Context, id, ownerID string) error {
	return rr.deleteOwned(ctx, TypeRecording, id, ownerID)
}

func (rr *ResourceDBRepository) deleteOwned(ctx context.Context, t Type, id, ownerID string) error {
	query := "DELETE FROM " + t.Table() + " WHERE id = $1 AND user_id = $2" // nolint:gosec

	result, err := rr.DB.ExecContext(ctx, query, id, ownerID)
	if err != nil {
		rr.Logger.Error("Failed to delete resource", zap.Error(err), zap.String("resourceID", id))

		return myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		rr.Logger.Error("Failed to get rows affected while deleting resource", zap.Error(err))

		return myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		return myErr.ErrNotFound
	}

	rr.Logger.Info(fmt.Sprintf("%s %s deleted successfully", t, id))

	return nil
}

func (rr *ResourceDBRepository) Stats(ctx context.Context, ownerID string) (Stats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM notes WHERE user_id = $1),
			(SELECT COUNT(*) FROM recordings WHERE user_id = $1)
	`

	var st Stats
	err := rr.DB.QueryRowContext(ctx, query, ownerID).Scan(&st.Notes, &st.Recordings)
	if err != nil {
		rr.Logger.Error("Failed to count resources", zap.Error(err), zap.String("userID", ownerID))

		return Stats{}, myErr.ErrDBInternal
	}

	return st, nil
}

// RecentActivity - берет по limit последних записей и заметок и сливает их по created_at,
// в ответе не больше limit элементов
func (rr *ResourceDBRepository) RecentActivity(ctx context.Context, ownerID string, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}

	query := `
		(SELECT id, 'recording', title, created_at FROM recordings WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2)
		UNION ALL
		(SELECT id, 'note', title, created_at FROM notes WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2)
		ORDER BY 4 DESC
		LIMIT $2
	`

	rows, err := rr.DB.QueryContext(ctx, query, ownerID, limit)
	if err != nil {
		rr.Logger.Error("Failed to get recent activity", zap.Error(err), zap.String("userID", ownerID))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	activity := make([]Activity, 0, limit)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Title, &a.CreatedAt); err != nil {
			rr.Logger.Error("Failed to scan activity row", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		activity = append(activity, a)
	}

	if err := rows.Err(); err != nil {
		rr.Logger.Error("Error occurred while iterating over activity rows", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	return activity, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanNote(row rowScanner) (*Note, error) {
	var (
		n           Note
		recordingID sql.NullString
	)
	err := row.Scan(
		&n.ID, &n.OwnerID, &n.Title, &n.Content, &recordingID,
		&n.Date, &n.CreatedAt, &n.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if recordingID.Valid {
		n.RecordingID = &recordingID.String
	}

	return &n, nil
}

func scanRecording(row rowScanner) (*Recording, error) {
	var r Recording
	err := row.Scan(
		&r.ID, &r.OwnerID, &r.Title, &r.AudioURL, &r.DurationSeconds,
		&r.Date, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &r, nil
}
