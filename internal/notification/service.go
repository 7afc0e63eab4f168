package notification

import (
	"context"
	"fmt"

	"melodia/internal/kafka"
	"melodia/internal/metrics"
	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"

	"go.uber.org/zap"
)

type Service struct {
	repo   NotificationRepo
	logger *zap.SugaredLogger
}

func NewService(repo NotificationRepo, logger *zap.SugaredLogger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) ProcessEvent(ctx context.Context, event kafka.Event) error {
	if event.RecipientID == "" && event.RecipientEmail == "" {
		return nil // Игнорируем события без получателя
	}
	if event.RecipientID != "" && event.RecipientID == event.ActorID {
		return nil // о своих действиях не уведомляем
	}

	message, ok := messageFor(event)
	if !ok {
		s.logger.Debugf("Skip event of unknown type %q", event.Type)
		return nil
	}

	n := &Notification{
		RecipientID:    event.RecipientID,
		RecipientEmail: event.RecipientEmail,
		Kind:           string(event.Type),
		Message:        message,
		ResourceID:     event.ResourceID,
		ResourceType:   event.ResourceType,
		SubjectID:      event.SubjectID,
		CreatedAt:      event.Timestamp,
	}
	if err := s.repo.Save(ctx, n); err != nil {
		return err
	}

	metrics.NotificationsStored.WithLabelValues(n.Kind).Inc()

	return nil
}

func (s *Service) List(ctx context.Context, actor resource.Actor, unreadOnly bool) ([]Notification, error) {
	return s.repo.ListFor(ctx, actor, unreadOnly)
}

func (s *Service) MarkRead(ctx context.Context, actor resource.Actor, notificationID string) error {
	if notificationID == "" {
		return myErr.ErrBadID
	}
	return s.repo.MarkRead(ctx, actor, notificationID)
}

func messageFor(event kafka.Event) (string, bool) {
	switch event.Type {
	case kafka.ShareCreated:
		return fmt.Sprintf("A %s was shared with you with %s access", event.ResourceType, event.Excerpt), true
	case kafka.ShareAccepted:
		return fmt.Sprintf("%s accepted your invitation to a %s", event.Excerpt, event.ResourceType), true
	case kafka.ShareRevoked:
		return fmt.Sprintf("Sharing of a %s was removed", event.ResourceType), true
	case kafka.FeedbackAdded:
		return fmt.Sprintf("New feedback on your %s: %q", event.ResourceType, event.Excerpt), true
	case kafka.FeedbackReplied:
		return fmt.Sprintf("New reply to your feedback: %q", event.Excerpt), true
	}

	return "", false
}
