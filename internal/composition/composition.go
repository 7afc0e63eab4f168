package composition

import (
	"context"
	"strings"
	"time"

	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"
)

// Composition - именованная группа заметок и записей одного владельца
type Composition struct {
	ID          string               `json:"id"`
	OwnerID     string               `json:"owner_id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	Notes       []resource.Note      `json:"notes,omitempty"`
	Recordings  []resource.Recording `json:"recordings,omitempty"`
}

// CreateComposition - тело запроса на создание и изменение
type CreateComposition struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

func (c CreateComposition) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return myErr.ErrValidation
	}
	return nil
}

// Member - ссылка на заметку или запись внутри композиции
type Member struct {
	ResourceID   string `json:"resource_id"`
	ResourceType string `json:"resource_type"`
}

// CompositionRepo интерфейс репозитория композиций
//
//go:generate mockgen -source=composition.go -destination=../mocks/mock_composition_repo.go -package=mocks
type CompositionRepo interface {
	Create(ctx context.Context, c *Composition) (*Composition, error)

	// GetByID - композиция владельца вместе с заметками и записями
	GetByID(ctx context.Context, id, ownerID string) (*Composition, error)

	ListByOwner(ctx context.Context, ownerID string) ([]Composition, error)
	Update(ctx context.Context, c *Composition) (*Composition, error)
	Delete(ctx context.Context, id, ownerID string) error

	// AddMember - идемпотентно добавляет ресурс владельца в композицию
	AddMember(ctx context.Context, id, ownerID string, ref resource.Ref) error

	// RemoveMember - идемпотентно убирает ресурс из композиции
	RemoveMember(ctx context.Context, id, ownerID string, ref resource.Ref) error
}
