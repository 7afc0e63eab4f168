package notification

import (
	"context"
	"time"

	"melodia/internal/kafka"
	"melodia/internal/resource"
)

// Notification - уведомление одному получателю. Получатель задан id
// или почтой, если приглашенный еще не зарегистрирован
type Notification struct {
	ID             string    `json:"id"`
	RecipientID    string    `json:"recipient_id,omitempty"`
	RecipientEmail string    `json:"recipient_email,omitempty"`
	Kind           string    `json:"kind"`
	Message        string    `json:"message"`
	ResourceID     string    `json:"resource_id"`
	ResourceType   string    `json:"resource_type"`
	SubjectID      string    `json:"subject_id"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NotificationRepo - интерфейс хранилища уведомлений.
//
//go:generate mockgen -source=notification.go -destination=../mocks/mock_notification.go -package=mocks
type NotificationRepo interface {
	// Save - сохраняет уведомление. Повторная доставка того же события ничего не меняет
	Save(ctx context.Context, n *Notification) error
	// ListFor - уведомления пользователя (по id и по почте), новые первыми
	ListFor(ctx context.Context, actor resource.Actor, unreadOnly bool) ([]Notification, error)
	// MarkRead - отмечает прочитанным уведомление пользователя
	MarkRead(ctx context.Context, actor resource.Actor, notificationID string) error
}

// NotificationService - интерфейс сервиса уведомлений.
type NotificationService interface {
	ProcessEvent(ctx context.Context, event kafka.Event) error
	List(ctx context.Context, actor resource.Actor, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, actor resource.Actor, notificationID string) error
}
