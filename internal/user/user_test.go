package user

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	myErr "melodia/internal/types/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"golang.org/x/crypto/bcrypt"
)

var registered = time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC)

func TestUserDBRepository_CreateUser(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewUserDBRepository(db, zaptest.NewLogger(t).Sugar())
	repo.Now = func() time.Time { return registered }

	u := CreateUser{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "John@Example.com",
		Password:  "securepass123",
	}

	t.Run("successfully_create_user", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), "John", "Doe", "john@example.com", sqlmock.AnyArg(), registered).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("new-id"))

		created, err := repo.CreateUser(context.Background(), u)
		require.NoError(t, err)
		require.NotNil(t, created)
		require.Equal(t, "john@example.com", created.Email)
		require.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte(u.Password)))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("user_already_exists", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO users`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.CreateUser(context.Background(), u)
		require.ErrorIs(t, err, myErr.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("bad_email", func(t *testing.T) {
		_, err := repo.CreateUser(context.Background(), CreateUser{Email: "nope", Password: "123456"})
		require.ErrorIs(t, err, myErr.ErrBadEmail)
	})
}

func TestUserDBRepository_CheckUser(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserDBRepository(db, zaptest.NewLogger(t).Sugar())

	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("correct_password"), bcrypt.DefaultCost) // nolint:errcheck
	cols := []string{"id", "first_name", "last_name", "email", "password_hash", "created_at"}

	tests := []struct {
		name        string
		email       string
		password    string
		mockQuery   func()
		expectUser  bool
		expectError error
	}{
		{
			name:     "valid credentials",
			email:    "valid@example.com",
			password: "correct_password",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT id,.*FROM users WHERE email = \$1`).
					WithArgs("valid@example.com").
					WillReturnRows(sqlmock.NewRows(cols).AddRow(
						"123", "John", "Doe", "valid@example.com", string(hashedPassword), registered,
					))
			},
			expectUser: true,
		},
		{
			name:     "user not found",
			email:    "notfound@example.com",
			password: "whatever",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT id,.*FROM users WHERE email = \$1`).
					WithArgs("notfound@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			expectError: myErr.ErrNotFound,
		},
		{
			name:     "wrong password",
			email:    "valid@example.com",
			password: "wrong_password",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT id,.*FROM users WHERE email = \$1`).
					WithArgs("valid@example.com").
					WillReturnRows(sqlmock.NewRows(cols).AddRow(
						"123", "John", "Doe", "valid@example.com", string(hashedPassword), registered,
					))
			},
			expectError: myErr.ErrBadPassword,
		},
		{
			name:     "db error",
			email:    "error@example.com",
			password: "irrelevant",
			mockQuery: func() {
				mock.ExpectQuery(`SELECT id,.*FROM users WHERE email = \$1`).
					WithArgs("error@example.com").
					WillReturnError(errors.New("db failure"))
			},
			expectError: myErr.ErrDBInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockQuery()
			user, err := repository.CheckUser(context.Background(), tt.email, tt.password)

			if tt.expectUser {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				assert.Equal(t, tt.email, user.Email)
			} else {
				assert.Nil(t, user)
				assert.ErrorIs(t, err, tt.expectError)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUserDBRepository_Info(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserDBRepository(db, zaptest.NewLogger(t).Sugar())
	cols := []string{"id", "first_name", "last_name", "email", "created_at"}

	mock.ExpectQuery(`SELECT id, first_name, last_name, email, created_at FROM users WHERE id = \$1`).
		WithArgs("123").
		WillReturnRows(sqlmock.NewRows(cols).AddRow("123", "John", "Doe", "john@example.com", registered))

	got, err := repository.Info(context.Background(), "123")
	require.NoError(t, err)
	assert.Equal(t, &User{ID: "123", FirstName: "John", LastName: "Doe", Email: "john@example.com", CreatedAt: registered}, got)

	mock.ExpectQuery(`FROM users WHERE id = \$1`).
		WithArgs("999").
		WillReturnError(sql.ErrNoRows)

	got, err = repository.Info(context.Background(), "999")
	assert.Nil(t, got)
	assert.Equal(t, myErr.ErrNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserDBRepository_ChangeProfile(t *testing.T) {
	t.Parallel()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repository := NewUserDBRepository(db, zaptest.NewLogger(t).Sugar())
	cols := []string{"id", "first_name", "last_name", "email", "created_at"}

	tests := []struct {
		name           string
		update         ChangeUser
		mockQuery      func()
		expectedResult *User
		expectError    error
	}{
		{
			name:   "update both names",
			update: ChangeUser{FirstName: "Alice", LastName: "Liddell"},
			mockQuery: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET first_name = $1, last_name = $2 WHERE id = $3`)).
					WithArgs("Alice", "Liddell", "123").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectQuery(`FROM users WHERE id = \$1`).
					WithArgs("123").
					WillReturnRows(sqlmock.NewRows(cols).AddRow("123", "Alice", "Liddell", "a@example.com", registered))
			},
			expectedResult: &User{ID: "123", FirstName: "Alice", LastName: "Liddell", Email: "a@example.com", CreatedAt: registered},
		},
		{
			name:   "no update fields",
			update: ChangeUser{},
			mockQuery: func() {
				mock.ExpectQuery(`FROM users WHERE id = \$1`).
					WithArgs("123").
					WillReturnRows(sqlmock.NewRows(cols).AddRow("123", "John", "Doe", "john@example.com", registered))
			},
			expectedResult: &User{ID: "123", FirstName: "John", LastName: "Doe", Email: "john@example.com", CreatedAt: registered},
		},
		{
			name:   "db error on update",
			update: ChangeUser{FirstName: "Alice"},
			mockQuery: func() {
				mock.ExpectExec(regexp.QuoteMeta(`UPDATE users SET first_name = $1 WHERE id = $2`)).
					WithArgs("Alice", "123").
					WillReturnError(errors.New("db failure"))
			},
			expectError: myErr.ErrDBInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			tt.mockQuery()

			result, err := repository.ChangeProfile(context.Background(), "123", tt.update)
			assert.Equal(t, tt.expectedResult, result)
			assert.Equal(t, tt.expectError, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestCreateUser_Validate(t *testing.T) {
	assert.NoError(t, CreateUser{Email: "a@b.com", Password: "123456"}.Validate())
	assert.Equal(t, myErr.ErrValidation, CreateUser{Email: "a@b.com", Password: "123"}.Validate())
	assert.Equal(t, myErr.ErrBadEmail, CreateUser{Email: "a@", Password: "123456"}.Validate())
}
