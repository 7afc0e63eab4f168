package elastic

import "time"

// FeedbackDoc - структура документа для хранения в ES.
// OwnerID - владелец ресурса, по нему поиск ограничивается своими ресурсами.
// IndexVersion в индекс не пишется, по нему загрузчик отмечает строку проиндексированной
type FeedbackDoc struct {
	ID               string    `json:"id"`
	ResourceID       string    `json:"resource_id"`
	ResourceType     string    `json:"resource_type"`
	OwnerID          string    `json:"owner_id"`
	AuthorID         string    `json:"author_id"`
	Comment          string    `json:"comment"`
	TimestampSeconds *float64  `json:"timestamp_seconds,omitempty"`
	IsReply          bool      `json:"is_reply"`
	IsResolved       bool      `json:"is_resolved"`
	CreatedAt        time.Time `json:"created_at"`
	IndexVersion     int64     `json:"-"`
}
