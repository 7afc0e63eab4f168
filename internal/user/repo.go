package user

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

type UserDBRepository struct {
	DB     *sql.DB
	Logger *zap.SugaredLogger
	Now    func() time.Time
}

func NewUserDBRepository(db *sql.DB, l *zap.SugaredLogger) *UserDBRepository {
	return &UserDBRepository{
		DB:     db,
		Logger: l,
		Now:    time.Now,
	}
}

func (ur *UserDBRepository) CreateUser(ctx context.Context, cu CreateUser) (*User, error) {
	email, err := NormalizeEmail(cu.Email)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cu.Password), bcrypt.DefaultCost)
	if err != nil {
		ur.Logger.Errorf("Не удалось захешировать пароль: %v", err)
		return nil, myErr.ErrDBInternal
	}

	u := &User{
		ID:           uuid.New().String(),
		FirstName:    strings.TrimSpace(cu.FirstName),
		LastName:     strings.TrimSpace(cu.LastName),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    ur.Now().UTC(),
	}

	query := `
	INSERT INTO users (id, first_name, last_name, email, password_hash, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (email) DO NOTHING
	RETURNING id
	`
	var id string
	err = ur.DB.QueryRowContext(ctx, query,
		u.ID, u.FirstName, u.LastName, u.Email, u.PasswordHash, u.CreatedAt,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrAlreadyExists
		}
		ur.Logger.Warnf("Ошибка при создании пользователя: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return u, nil
}

func (ur *UserDBRepository) CheckUser(ctx context.Context, email, password string) (*User, error) {
	query := `
	SELECT id, first_name, last_name, email, password_hash, created_at
	FROM users
	WHERE email = $1
	`
	u := &User{}
	err := ur.DB.QueryRowContext(ctx, query, strings.ToLower(strings.TrimSpace(email))).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Ошибка при проверке пользователя: %v", err)
		return nil, myErr.ErrDBInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, myErr.ErrBadPassword
	}

	return u, nil
}

func (ur *UserDBRepository) Info(ctx context.Context, userID string) (*User, error) {
	query := `
	SELECT id, first_name, last_name, email, created_at
	FROM users
	WHERE id = $1
	`
	u := &User{}
	err := ur.DB.QueryRowContext(ctx, query, userID).
		Scan(&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, myErr.ErrNotFound
		}
		ur.Logger.Warnf("Ошибка при получения информации о пользователе: %v", err)
		return nil, myErr.ErrDBInternal
	}

	return u, nil
}

func (ur *UserDBRepository) ChangeProfile(ctx context.Context, userID string, updateUser ChangeUser) (*User, error) {
	fields := []string{}
	args := []interface{}{}
	argID := 1

	// Динамически добавляем поля в обновление
	if updateUser.FirstName != "" {
		fields = append(fields, "first_name = $"+strconv.Itoa(argID))
		args = append(args, updateUser.FirstName)
		argID++
	}
	if updateUser.LastName != "" {
		fields = append(fields, "last_name = $"+strconv.Itoa(argID))
		args = append(args, updateUser.LastName)
		argID++
	}

	if len(fields) == 0 {
		return ur.Info(ctx, userID)
	}

	query := "UPDATE users SET " + strings.Join(fields, ", ") + " WHERE id = $" + strconv.Itoa(argID) // nolint:gosec
	args = append(args, userID)

	res, err := ur.DB.ExecContext(ctx, query, args...)
	if err != nil {
		ur.Logger.Warnf("Ошибка при обновлении профиля: %v", err)
		return nil, myErr.ErrDBInternal
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		ur.Logger.Warnf("Не удалось получить количество обновлённых строк: %v", err)
		return nil, myErr.ErrDBInternal
	}

	if rowsAffected == 0 {
		return nil, myErr.ErrNotFound
	}

	return ur.Info(ctx, userID)
}
