package user

import (
	"context"
	"net/mail"
	"strings"
	"time"

	myErr "melodia/internal/types/errors"
)

const minPasswordLength = 6

// User структура пользователя
type User struct {
	ID           string    `json:"user_id"` // uuid
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateUser структура для регистрации
type CreateUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// ChangeUser структура пользователя с полями для изменения
type ChangeUser struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

func (u CreateUser) Validate() error {
	if len(u.Password) < minPasswordLength {
		return myErr.ErrValidation
	}
	if _, err := NormalizeEmail(u.Email); err != nil {
		return err
	}
	return nil
}

// NormalizeEmail trims and lower-cases an address after checking it parses
// as a bare address.
func NormalizeEmail(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", myErr.ErrBadEmail
	}

	return strings.ToLower(addr.Address), nil
}

// UserRepo интерфейс удовлетворяющий методам сущности пользователя
//
//go:generate mockgen -source=user.go -destination=../mocks/mock_user_repo.go -package=mocks
type UserRepo interface {
	// CheckUser - проверяет пользователя по почте и паролю
	CheckUser(ctx context.Context, email, password string) (*User, error)
	// CreateUser создает пользователя
	CreateUser(ctx context.Context, u CreateUser) (*User, error)
	// Info возвращает информацию о пользователе
	Info(ctx context.Context, userID string) (*User, error)
	// ChangeProfile меняет поля пользователя с userID по updateUser
	ChangeProfile(ctx context.Context, userID string, updateUser ChangeUser) (*User, error)
}
