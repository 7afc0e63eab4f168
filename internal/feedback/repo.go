package feedback

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

const selectColumns = `id, note_id, recording_id, user_id, comment, parent_id, timestamp_seconds, liked_by, is_resolved, created_at`

type FeedbackDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
	Now    func() time.Time
}

func NewFeedbackDBRepository(db *sql.DB, logger *zap.SugaredLogger) *FeedbackDBRepository {
	return &FeedbackDBRepository{
		DB:     db,
		Logger: logger,
		Now:    time.Now,
	}
}

// Create - сохраняет комментарий с пустым списком лайков
func (fr *FeedbackDBRepository) Create(ctx context.Context, f *Feedback) (*Feedback, error) {
	f.ID = uuid.New().String()
	f.CreatedAt = fr.Now().UTC()
	f.LikedBy = []string{}
	f.Likes = 0
	f.IsResolved = false

	var noteID, recordingID sql.NullString
	if f.ResourceType == resource.TypeNote {
		noteID = sql.NullString{String: f.ResourceID, Valid: true}
	} else {
		recordingID = sql.NullString{String: f.ResourceID, Valid: true}
	}

	query := `
		INSERT INTO feedback (id, note_id, recording_id, user_id, comment, parent_id, timestamp_seconds, likes, liked_by, is_resolved, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := fr.DB.ExecContext(
		ctx,
		query,
		f.ID,
		noteID,
		recordingID,
		f.AuthorID,
		f.Comment,
		f.ParentID,
		f.TimestampSeconds,
		f.Likes,
		pq.Array(f.LikedBy),
		f.IsResolved,
		f.CreatedAt,
	)
	if err != nil {
		fr.Logger.Error(
			"Failed save feedback to DB",
			zap.Error(err),
			zap.String("feedbackID", f.ID),
		)

		return nil, myErr.ErrDBInternal
	}

	fr.Logger.Info(fmt.Sprintf("Feedback with feedbackID %s created successfully", f.ID))

	return f, nil
}

func (fr *FeedbackDBRepository) GetByID(ctx context.Context, feedbackID string) (*Feedback, error) {
	query := `SELECT ` + selectColumns + ` FROM feedback WHERE id = $1`

	f, err := scanFeedback(fr.DB.QueryRowContext(ctx, query, feedbackID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFoundFeedback
		}
		fr.Logger.Warnf("Error while load feedback info: %v", err)

		return nil, myErr.ErrDBInternal
	}

	return f, nil
}

func (fr *FeedbackDBRepository) ListByResource(ctx context.Context, ref resource.Ref) ([]Feedback, error) {
	query := `SELECT ` + selectColumns + ` FROM feedback WHERE ` + ref.Type.Column() + ` = $1 ORDER BY created_at DESC` // nolint:gosec

	rows, err := fr.DB.QueryContext(ctx, query, ref.ID)
	if err != nil {
		fr.Logger.Error(
			"Failed to get feedback from DB",
			zap.Error(err),
			zap.String("resourceID", ref.ID),
		)

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	feedbacks := make([]Feedback, 0)
	for rows.Next() {
		f, err := scanFeedback(rows)
		if err != nil {
			fr.Logger.Error("Failed to scan feedback row from DB", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		feedbacks = append(feedbacks, *f)
	}

	if err := rows.Err(); err != nil {
		fr.Logger.Error(
			"Error occurred while iterating over feedback rows from DB",
			zap.Error(err),
			zap.String("resourceID", ref.ID),
		)

		return nil, myErr.ErrDBInternal
	}

	return feedbacks, nil
}

func (fr *FeedbackDBRepository) UpdateComment(ctx context.Context, feedbackID string, comment string) (*Feedback, error) {
	query := `UPDATE feedback SET comment = $1, indexed = FALSE, index_version = index_version + 1 WHERE id = $2`

	result, err := fr.DB.ExecContext(ctx, query, comment, feedbackID)
	if err != nil {
		fr.Logger.Error(
			"Failed to update feedback",
			zap.Error(err),
			zap.String("feedbackID", feedbackID),
		)

		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		fr.Logger.Error(
			"Failed to get rows affected while updating feedback",
			zap.Error(err),
			zap.String("feedbackID", feedbackID),
		)

		return nil, myErr.ErrDBInternal
	}

	if rowsAffected != 1 {
		fr.Logger.Info(fmt.Sprintf("No feedback with feedbackID %s found to update", feedbackID))

		return nil, myErr.ErrNotFoundFeedback
	}

	return fr.GetByID(ctx, feedbackID)
}

// ToggleLike - читает liked_by под блокировкой строки и записывает новый набор,
// так что параллельные лайки разных пользователей не затирают друг друга
func (fr *FeedbackDBRepository) ToggleLike(ctx context.Context, feedbackID string, userID string) (*Feedback, error) {
	tx, err := fr.DB.BeginTx(ctx, nil)
	if err != nil {
		fr.Logger.Error("Failed to begin like transaction", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}
	defer tx.Rollback() // nolint:errcheck

	query := `SELECT ` + selectColumns + ` FROM feedback WHERE id = $1 FOR UPDATE`

	f, err := scanFeedback(tx.QueryRowContext(ctx, query, feedbackID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFoundFeedback
		}
		fr.Logger.Error("Failed to lock feedback row", zap.Error(err), zap.String("feedbackID", feedbackID))

		return nil, myErr.ErrDBInternal
	}

	f.ToggleLike(userID)

	_, err = tx.ExecContext(
		ctx,
		`UPDATE feedback SET likes = $1, liked_by = $2 WHERE id = $3`,
		f.Likes,
		pq.Array(f.LikedBy),
		feedbackID,
	)
	if err != nil {
		fr.Logger.Error("Failed to write likes", zap.Error(err), zap.String("feedbackID", feedbackID))

		return nil, myErr.ErrDBInternal
	}

	if err := tx.Commit(); err != nil {
		fr.Logger.Error("Failed to commit like transaction", zap.Error(err), zap.String("feedbackID", feedbackID))

		return nil, myErr.ErrDBInternal
	}

	return f, nil
}

func (fr *FeedbackDBRepository) ToggleResolved(ctx context.Context, feedbackID string) (*Feedback, error) {
	query := `UPDATE feedback SET is_resolved = NOT is_resolved, indexed = FALSE, index_version = index_version + 1 WHERE id = $1 RETURNING ` + selectColumns

	f, err := scanFeedback(fr.DB.QueryRowContext(ctx, query, feedbackID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFoundFeedback
		}
		fr.Logger.Error("Failed to toggle resolved flag", zap.Error(err), zap.String("feedbackID", feedbackID))

		return nil, myErr.ErrDBInternal
	}

	return f, nil
}

// Delete - удаляет комментарий и все ответы на него одним запросом
func (fr *FeedbackDBRepository) Delete(ctx context.Context, feedbackID string) (int64, error) {
	query := `DELETE FROM feedback WHERE id = $1 OR parent_id = $1`

	result, err := fr.DB.ExecContext(ctx, query, feedbackID)
	if err != nil {
		fr.Logger.Error(
			"Failed to delete feedback",
			zap.Error(err),
			zap.String("feedbackID", feedbackID),
		)

		return 0, myErr.ErrDBInternal
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		fr.Logger.Error(
			"Failed to get rows affected while deleting feedback",
			zap.Error(err),
			zap.String("feedbackID", feedbackID),
		)

		return 0, myErr.ErrDBInternal
	}

	if rowsAffected == 0 {
		fr.Logger.Info(fmt.Sprintf("No feedback with feedbackID %s found to delete", feedbackID))

		return 0, myErr.ErrNotFoundFeedback
	}

	fr.Logger.Info(fmt.Sprintf("Feedback %s deleted with %d replies", feedbackID, rowsAffected-1))

	return rowsAffected, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanFeedback(row rowScanner) (*Feedback, error) {
	var (
		f           Feedback
		noteID      sql.NullString
		recordingID sql.NullString
		parentID    sql.NullString
		timestamp   sql.NullFloat64
		likedBy     []string
	)

	err := row.Scan(
		&f.ID,
		&noteID,
		&recordingID,
		&f.AuthorID,
		&f.Comment,
		&parentID,
		&timestamp,
		pq.Array(&likedBy),
		&f.IsResolved,
		&f.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if noteID.Valid {
		f.ResourceID, f.ResourceType = noteID.String, resource.TypeNote
	} else {
		f.ResourceID, f.ResourceType = recordingID.String, resource.TypeRecording
	}
	if parentID.Valid {
		f.ParentID = &parentID.String
	}
	if timestamp.Valid {
		f.TimestampSeconds = &timestamp.Float64
	}

	// likes is derived, the stored column only serves ORDER BY
	if likedBy == nil {
		likedBy = []string{}
	}
	f.LikedBy = likedBy
	f.Likes = len(likedBy)

	return &f, nil
}

func (fr *FeedbackDBRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	rows, err := fr.DB.QueryContext(ctx, `SELECT id FROM feedback WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		fr.Logger.Error("Failed to check feedback ids", zap.Error(err), zap.Int("count", len(ids)))

		return nil, myErr.ErrDBInternal
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			fr.Logger.Error("Failed to scan feedback id", zap.Error(err))

			return nil, myErr.ErrDBInternal
		}
		existing[id] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		fr.Logger.Error("Rows error while checking feedback ids", zap.Error(err))

		return nil, myErr.ErrDBInternal
	}

	return existing, nil
}
