package resource

import (
	"context"
	"strings"
	"time"

	myErr "melodia/internal/types/errors"
)

// Type - kind of resource feedback and shares attach to
type Type string

const (
	TypeNote      Type = "note"
	TypeRecording Type = "recording"
)

func ParseType(s string) (Type, error) {
	switch Type(s) {
	case TypeNote, TypeRecording:
		return Type(s), nil
	}

	return "", myErr.ErrBadResourceType
}

// Table returns the table holding resources of this type.
func (t Type) Table() string {
	if t == TypeNote {
		return "notes"
	}
	return "recordings"
}

// Column returns the feedback column referencing this resource type.
func (t Type) Column() string {
	if t == TypeNote {
		return "note_id"
	}
	return "recording_id"
}

// Ref identifies exactly one note or recording
type Ref struct {
	ID   string `json:"resource_id"`
	Type Type   `json:"resource_type"`
}

// Actor - the authenticated caller
type Actor struct {
	UserID string
	Email  string
}

// Note - текстовая заметка музыканта
type Note struct {
	ID          string    `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	RecordingID *string   `json:"recording_id,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// Recording - метаданные загруженной аудиозаписи
type Recording struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Title           string    `json:"title"`
	AudioURL        string    `json:"audio_url"`
	DurationSeconds float64   `json:"duration_seconds"`
	Date            time.Time `json:"date"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Stats - сколько заметок и записей у пользователя
type Stats struct {
	Notes      int `json:"notes"`
	Recordings int `json:"recordings"`
}

// DefaultActivityLimit - длина ленты на главной
const DefaultActivityLimit = 5

// Activity - элемент ленты последних действий: новая заметка или запись
type Activity struct {
	ID        string    `json:"id"`
	Type      Type      `json:"resource_type"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate проверяет поля, которые пользователь обязан заполнить
func (n *Note) Validate() error {
	if strings.TrimSpace(n.Title) == "" {
		return myErr.ErrValidation
	}
	return nil
}

func (r *Recording) Validate() error {
	if strings.TrimSpace(r.Title) == "" || strings.TrimSpace(r.AudioURL) == "" {
		return myErr.ErrValidation
	}
	if r.DurationSeconds < 0 {
		return myErr.ErrValidation
	}
	return nil
}

// OwnerResolver - answers who owns a resource
type OwnerResolver interface {
	OwnerOf(ctx context.Context, ref Ref) (string, error)
}

// ResourceRepo интерфейс репозитория заметок и записей
//
//go:generate mockgen -source=resource.go -destination=../mocks/mock_resource_repo.go -package=mocks
type ResourceRepo interface {
	OwnerResolver

	// Title - заголовок ресурса, используется в списках доступа
	Title(ctx context.Context, ref Ref) (string, error)

	CreateNote(ctx context.Context, n *Note) (*Note, error)
	GetNote(ctx context.Context, id string) (*Note, error)
	ListNotes(ctx context.Context, ownerID string) ([]Note, error)
	UpdateNote(ctx context.Context, n *Note) (*Note, error)
	DeleteNote(ctx context.Context, id, ownerID string) error

	CreateRecording(ctx context.Context, r *Recording) (*Recording, error)
	GetRecording(ctx context.Context, id string) (*Recording, error)
	ListRecordings(ctx context.Context, ownerID string) ([]Recording, error)
	DeleteRecording(ctx context.Context, id, ownerID string) error

	Stats(ctx context.Context, ownerID string) (Stats, error)
	// RecentActivity - последние заметки и записи владельца, новые первыми
	RecentActivity(ctx context.Context, ownerID string, limit int) ([]Activity, error)
}
