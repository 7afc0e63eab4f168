package feedback

import (
	"context"
	"strings"
	"time"

	"melodia/internal/resource"
)

// Feedback - комментарий к заметке или записи, опционально ответ на другой комментарий
type Feedback struct {
	ID               string        `json:"id"`
	ResourceID       string        `json:"resource_id"`
	ResourceType     resource.Type `json:"resource_type"`
	AuthorID         string        `json:"author_id"`
	Comment          string        `json:"comment"`
	ParentID         *string       `json:"parent_id,omitempty"`
	TimestampSeconds *float64      `json:"timestamp_seconds,omitempty"`
	Likes            int           `json:"likes"`
	LikedBy          []string      `json:"liked_by"`
	IsResolved       bool          `json:"is_resolved"`
	CreatedAt        time.Time     `json:"created_at"`
}

// CreateFeedback - тело запроса на создание комментария
type CreateFeedback struct {
	Comment          string   `json:"comment"`
	TimestampSeconds *float64 `json:"timestamp_seconds,omitempty"`
	ParentID         *string  `json:"parent_id,omitempty"`
}

// UpdateFeedback - тело запроса на редактирование комментария
type UpdateFeedback struct {
	Comment string `json:"comment"`
}

func (f *Feedback) Ref() resource.Ref {
	return resource.Ref{ID: f.ResourceID, Type: f.ResourceType}
}

func (f *Feedback) IsReply() bool {
	return f.ParentID != nil && *f.ParentID != ""
}

func (f *Feedback) LikedByUser(userID string) bool {
	for _, id := range f.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// ToggleLike adds userID to LikedBy or removes it when already present and
// reports whether the user likes the feedback afterwards. Duplicates left by
// older writers are collapsed, Likes always equals len(LikedBy).
func (f *Feedback) ToggleLike(userID string) bool {
	next := make([]string, 0, len(f.LikedBy)+1)
	seen := make(map[string]struct{}, len(f.LikedBy))
	present := false

	for _, id := range f.LikedBy {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		if id == userID {
			present = true
			continue
		}
		next = append(next, id)
	}

	if !present {
		next = append(next, userID)
	}

	f.LikedBy = next
	f.Likes = len(next)

	return !present
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// FeedbackRepo интерфейс хранилища комментариев
//
//go:generate mockgen -source=feedback.go -destination=../mocks/mock_feedback_repo.go -package=mocks
type FeedbackRepo interface {
	// Create - сохраняет новый комментарий, проставляет ID и CreatedAt
	Create(ctx context.Context, f *Feedback) (*Feedback, error)

	// GetByID - получает комментарий по ID
	GetByID(ctx context.Context, feedbackID string) (*Feedback, error)

	// ListByResource - все комментарии ресурса, новые первыми
	ListByResource(ctx context.Context, ref resource.Ref) ([]Feedback, error)

	// UpdateComment - заменяет текст комментария
	UpdateComment(ctx context.Context, feedbackID string, comment string) (*Feedback, error)

	// ToggleLike - атомарно ставит или снимает лайк пользователя
	ToggleLike(ctx context.Context, feedbackID string, userID string) (*Feedback, error)

	// ToggleResolved - атомарно переключает флаг is_resolved
	ToggleResolved(ctx context.Context, feedbackID string) (*Feedback, error)

	// Delete - удаляет комментарий вместе с ответами на него
	// Возвращает количество удаленных записей
	Delete(ctx context.Context, feedbackID string) (int64, error)

	// ExistingIDs - какие из ids еще есть в хранилище, нужен поиску,
	// чтобы не отдавать удаленные комментарии из индекса
	ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error)
}
