package share

import (
	"context"
	"time"

	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"
)

type Permission string

const (
	PermissionView Permission = "view"
	PermissionEdit Permission = "edit"
)

func ParsePermission(s string) (Permission, error) {
	switch Permission(s) {
	case PermissionView, PermissionEdit:
		return Permission(s), nil
	}

	return "", myErr.ErrBadPermission
}

// Satisfies reports whether a share granting p is enough for required.
// edit implies view.
func (p Permission) Satisfies(required Permission) bool {
	if required == PermissionView {
		return p == PermissionView || p == PermissionEdit
	}
	return p == PermissionEdit
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
)

// Share - доступ к заметке или записи, выданный владельцем по email
type Share struct {
	ID              string        `json:"id"`
	ResourceID      string        `json:"resource_id"`
	ResourceType    resource.Type `json:"resource_type"`
	OwnerID         string        `json:"owner_id"`
	SharedWithEmail string        `json:"shared_with_email"`
	PermissionLevel Permission    `json:"permission_level"`
	Status          Status        `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (s *Share) Ref() resource.Ref {
	return resource.Ref{ID: s.ResourceID, Type: s.ResourceType}
}

// CreateShare - тело запроса на выдачу доступа
type CreateShare struct {
	ResourceID      string `json:"resource_id"`
	ResourceType    string `json:"resource_type"`
	Email           string `json:"email"`
	PermissionLevel string `json:"permission_level"`
}

// Received - входящий доступ вместе с названием ресурса
type Received struct {
	Share
	ResourceTitle string `json:"resource_title"`
}

// ShareRepo интерфейс хранилища доступов
//
//go:generate mockgen -source=share.go -destination=../mocks/mock_share_repo.go -package=mocks
type ShareRepo interface {
	// Create - сохраняет доступ, ErrAlreadyShared если для ресурса и email он уже есть
	Create(ctx context.Context, s *Share) (*Share, error)

	GetByID(ctx context.Context, shareID string) (*Share, error)

	// ListByResource - все доступы ресурса, для владельца
	ListByResource(ctx context.Context, ref resource.Ref) ([]Share, error)

	// ListByEmail - все доступы, выданные на email
	ListByEmail(ctx context.Context, email string) ([]Share, error)

	// Accept - переводит pending в accepted, только для получателя
	Accept(ctx context.Context, shareID, email string) (*Share, error)

	Delete(ctx context.Context, shareID string) error

	// FindAccepted - принятый доступ email к ресурсу
	FindAccepted(ctx context.Context, ref resource.Ref, email string) (*Share, error)
}
