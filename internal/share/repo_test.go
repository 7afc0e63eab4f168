package share

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

var (
	testNow   = time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	shareCols = []string{"id", "resource_id", "resource_type", "owner_id", "shared_with_email", "permission_level", "status", "created_at", "updated_at"}
)

func setupTestRepo(t *testing.T) (*ShareDBRepository, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}

	repo := NewShareDBRepository(db, zaptest.NewLogger(t).Sugar())
	repo.Now = func() time.Time { return testNow }

	return repo, mock, func() { db.Close() }
}

func TestShareDBRepository_Create(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	newShare := func() *Share {
		return &Share{
			ResourceID:      "note-1",
			ResourceType:    resource.TypeNote,
			OwnerID:         "owner",
			SharedWithEmail: "a@b.com",
			PermissionLevel: PermissionView,
		}
	}

	tests := []struct {
		name     string
		mockFunc func()
		wantErr  error
	}{
		{
			name: "success starts pending",
			mockFunc: func() {
				mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (resource_id, resource_type, shared_with_email) DO NOTHING")).
					WithArgs(sqlmock.AnyArg(), "note-1", "note", "owner", "a@b.com", "view", "pending", testNow, testNow).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("s1"))
			},
		},
		{
			name: "duplicate maps to already shared",
			mockFunc: func() {
				mock.ExpectQuery("INSERT INTO shares").
					WillReturnRows(sqlmock.NewRows([]string{"id"}))
			},
			wantErr: myErr.ErrAlreadyShared,
		},
		{
			name: "db error",
			mockFunc: func() {
				mock.ExpectQuery("INSERT INTO shares").
					WillReturnError(errors.New("db error"))
			},
			wantErr: myErr.ErrDBInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockFunc()

			got, err := repo.Create(context.Background(), newShare())
			assert.Equal(t, tt.wantErr, err)
			if tt.wantErr == nil {
				require.NotNil(t, got)
				assert.Equal(t, StatusPending, got.Status)
				assert.NotEmpty(t, got.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestShareDBRepository_Accept(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	update := regexp.QuoteMeta("UPDATE shares SET status = $1, updated_at = $2")
	status := regexp.QuoteMeta("SELECT status FROM shares WHERE id = $1 AND shared_with_email = $2")

	t.Run("pending becomes accepted", func(t *testing.T) {
		mock.ExpectQuery(update).
			WithArgs("accepted", testNow, "s1", "a@b.com", "pending").
			WillReturnRows(sqlmock.NewRows(shareCols).
				AddRow("s1", "note-1", "note", "owner", "a@b.com", "view", "accepted", testNow, testNow))

		got, err := repo.Accept(context.Background(), "s1", "a@b.com")
		require.NoError(t, err)
		assert.Equal(t, StatusAccepted, got.Status)
		assert.Equal(t, resource.TypeNote, got.ResourceType)
		assert.Equal(t, PermissionView, got.PermissionLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("already accepted", func(t *testing.T) {
		mock.ExpectQuery(update).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(status).
			WithArgs("s1", "a@b.com").
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("accepted"))

		_, err := repo.Accept(context.Background(), "s1", "a@b.com")
		assert.Equal(t, myErr.ErrInvalidTransition, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not the recipient or missing", func(t *testing.T) {
		mock.ExpectQuery(update).WillReturnError(sql.ErrNoRows)
		mock.ExpectQuery(status).
			WithArgs("s1", "c@d.com").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Accept(context.Background(), "s1", "c@d.com")
		assert.Equal(t, myErr.ErrNotFoundShare, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(update).WillReturnError(errors.New("conn reset"))

		_, err := repo.Accept(context.Background(), "s1", "a@b.com")
		assert.Equal(t, myErr.ErrDBInternal, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShareDBRepository_Lists(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	t.Run("by resource", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shares WHERE resource_id = $1 AND resource_type = $2")).
			WithArgs("rec-1", "recording").
			WillReturnRows(sqlmock.NewRows(shareCols).
				AddRow("s2", "rec-1", "recording", "owner", "x@y.com", "edit", "pending", testNow, testNow).
				AddRow("s1", "rec-1", "recording", "owner", "a@b.com", "view", "accepted", testNow, testNow))

		got, err := repo.ListByResource(context.Background(), resource.Ref{ID: "rec-1", Type: resource.TypeRecording})
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, PermissionEdit, got[0].PermissionLevel)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("by email", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shares WHERE shared_with_email = $1")).
			WithArgs("a@b.com").
			WillReturnRows(sqlmock.NewRows(shareCols))

		got, err := repo.ListByEmail(context.Background(), "a@b.com")
		require.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM shares WHERE shared_with_email = $1")).
			WillReturnError(errors.New("db down"))

		_, err := repo.ListByEmail(context.Background(), "a@b.com")
		assert.Equal(t, myErr.ErrDBInternal, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestShareDBRepository_FindAccepted(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	query := regexp.QuoteMeta("AND shared_with_email = $3 AND status = $4")
	ref := resource.Ref{ID: "note-1", Type: resource.TypeNote}

	mock.ExpectQuery(query).
		WithArgs("note-1", "note", "a@b.com", "accepted").
		WillReturnRows(sqlmock.NewRows(shareCols).
			AddRow("s1", "note-1", "note", "owner", "a@b.com", "edit", "accepted", testNow, testNow))

	got, err := repo.FindAccepted(context.Background(), ref, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, PermissionEdit, got.PermissionLevel)

	mock.ExpectQuery(query).
		WithArgs("note-1", "note", "c@d.com", "accepted").
		WillReturnError(sql.ErrNoRows)

	_, err = repo.FindAccepted(context.Background(), ref, "c@d.com")
	assert.Equal(t, myErr.ErrNotFoundShare, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShareDBRepository_Delete(t *testing.T) {
	repo, mock, teardown := setupTestRepo(t)
	defer teardown()

	query := regexp.QuoteMeta("DELETE FROM shares WHERE id = $1")

	mock.ExpectExec(query).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 1))
	assert.NoError(t, repo.Delete(context.Background(), "s1"))

	mock.ExpectExec(query).WithArgs("s1").WillReturnResult(sqlmock.NewResult(0, 0))
	assert.Equal(t, myErr.ErrNotFoundShare, repo.Delete(context.Background(), "s1"))

	mock.ExpectExec(query).WithArgs("s1").WillReturnError(errors.New("db error"))
	assert.Equal(t, myErr.ErrDBInternal, repo.Delete(context.Background(), "s1"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
