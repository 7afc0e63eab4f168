package etl

import (
	"context"
	"database/sql"

	"melodia/internal/feedback"
	"melodia/internal/resource"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Row - комментарий вместе с владельцем ресурса, к которому он оставлен.
// IndexVersion - значение feedback.index_version на момент чтения
type Row struct {
	Feedback     feedback.Feedback
	OwnerID      string
	IndexVersion int64
}

type PostgresExtractor struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
}

func NewPostgresExtractor(db *sql.DB, logger *zap.SugaredLogger) *PostgresExtractor {
	return &PostgresExtractor{
		DB:     db,
		Logger: logger,
	}
}

// ExtractNew - достает новые и измененные комментарии для поиска
// Возвращает комментарии, которые еще не добавлены в полнотекстовый поиск, и error
func (e *PostgresExtractor) ExtractNew(ctx context.Context) ([]Row, error) {
	query :=
		`
		SELECT f.id, f.note_id, f.recording_id, f.user_id, f.comment, f.parent_id,
			f.timestamp_seconds, f.liked_by, f.is_resolved, f.created_at,
			COALESCE(n.user_id, r.user_id, ''), f.index_version
		FROM feedback f
		LEFT JOIN notes n ON n.id = f.note_id
		LEFT JOIN recordings r ON r.id = f.recording_id
		WHERE f.indexed = FALSE
		`

	rows, err := e.DB.QueryContext(ctx, query)
	if err != nil {
		e.Logger.Error("Failed to executing query", zap.Error(err))

		return nil, err
	}
	defer rows.Close()

	var result []Row

	for rows.Next() {
		var (
			row         Row
			noteID      sql.NullString
			recordingID sql.NullString
			parentID    sql.NullString
			ts          sql.NullFloat64
		)
		f := &row.Feedback
		err := rows.Scan(
			&f.ID, &noteID, &recordingID, &f.AuthorID, &f.Comment, &parentID,
			&ts, pq.Array(&f.LikedBy), &f.IsResolved, &f.CreatedAt,
			&row.OwnerID, &row.IndexVersion,
		)
		if err != nil {
			e.Logger.Error("Failed to scan rows", zap.Error(err))

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
		if ts.Valid {
			f.TimestampSeconds = &ts.Float64
		}
		f.Likes = len(f.LikedBy)

		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		e.Logger.Error("Error during rows iteration", zap.Error(err))
		return nil, err
	}

	return result, nil
}
