package share

import (
	"context"
	"errors"
	"time"

	"melodia/internal/kafka"
	"melodia/internal/metrics"
	"melodia/internal/resource"
	myErr "melodia/internal/types/errors"
	"melodia/internal/user"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"
)

const (
	untitled         = "Untitled"
	titleLookupLimit = 8
)

// ResourceLookup - то, что реестру доступов нужно знать о ресурсах
type ResourceLookup interface {
	resource.OwnerResolver
	Title(ctx context.Context, ref resource.Ref) (string, error)
}

// AccessChecker - проверка прав на ресурс
type AccessChecker interface {
	CheckAccess(ctx context.Context, ref resource.Ref, actor resource.Actor, required Permission) error
}

// ShareManager - операции реестра доступов для HTTP слоя
//
//go:generate mockgen -source=service.go -destination=../mocks/mock_share_manager.go -package=mocks
type ShareManager interface {
	AccessChecker
	Create(ctx context.Context, actor resource.Actor, req CreateShare) (*Share, error)
	Accept(ctx context.Context, actor resource.Actor, shareID string) (*Share, error)
	Delete(ctx context.Context, actor resource.Actor, shareID string) error
	ListByResource(ctx context.Context, actor resource.Actor, ref resource.Ref) ([]Share, error)
	ListForRecipient(ctx context.Context, actor resource.Actor, status Status, typ resource.Type) ([]Received, error)
}

type Service struct {
	Repo      ShareRepo
	Resources ResourceLookup
	Events    kafka.EventProducer
	Logger    *zap.SugaredLogger
}

func NewService(repo ShareRepo, resources ResourceLookup, events kafka.EventProducer, logger *zap.SugaredLogger) *Service {
	return &Service{
		Repo:      repo,
		Resources: resources,
		Events:    events,
		Logger:    logger,
	}
}

// Create - выдать доступ может только владелец ресурса
func (s *Service) Create(ctx context.Context, actor resource.Actor, req CreateShare) (*Share, error) {
	rt, err := resource.ParseType(req.ResourceType)
	if err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(req.ResourceID); err != nil {
		return nil, myErr.ErrBadID
	}

	email, err := user.NormalizeEmail(req.Email)
	if err != nil {
		return nil, err
	}

	perm, err := ParsePermission(req.PermissionLevel)
	if err != nil {
		return nil, err
	}

	ref := resource.Ref{ID: req.ResourceID, Type: rt}
	if err := s.requireOwner(ctx, ref, actor); err != nil {
		return nil, err
	}

	if email == normalized(actor.Email) {
		return nil, myErr.ErrShareWithSelf
	}

	created, err := s.Repo.Create(ctx, &Share{
		ResourceID:      ref.ID,
		ResourceType:    ref.Type,
		OwnerID:         actor.UserID,
		SharedWithEmail: email,
		PermissionLevel: perm,
	})
	if err != nil {
		return nil, err
	}

	metrics.SharesTransitions.WithLabelValues("created").Inc()
	s.publish(ctx, kafka.Event{
		Type:           kafka.ShareCreated,
		ActorID:        actor.UserID,
		RecipientEmail: created.SharedWithEmail,
		ResourceID:     created.ResourceID,
		ResourceType:   string(created.ResourceType),
		SubjectID:      created.ID,
		Excerpt:        string(created.PermissionLevel),
	})

	return created, nil
}

// Accept - pending -> accepted, только получатель
func (s *Service) Accept(ctx context.Context, actor resource.Actor, shareID string) (*Share, error) {
	if shareID == "" {
		return nil, myErr.ErrBadID
	}

	accepted, err := s.Repo.Accept(ctx, shareID, normalized(actor.Email))
	if err != nil {
		return nil, err
	}

	metrics.SharesTransitions.WithLabelValues("accepted").Inc()
	s.publish(ctx, kafka.Event{
		Type:         kafka.ShareAccepted,
		ActorID:      actor.UserID,
		RecipientID:  accepted.OwnerID,
		ResourceID:   accepted.ResourceID,
		ResourceType: string(accepted.ResourceType),
		SubjectID:    accepted.ID,
		Excerpt:      accepted.SharedWithEmail,
	})

	return accepted, nil
}

// Delete - владелец отзывает доступ или получатель отклоняет его.
// Запись удаляется, уведомление получает другая сторона
func (s *Service) Delete(ctx context.Context, actor resource.Actor, shareID string) error {
	if shareID == "" {
		return myErr.ErrBadID
	}

	sh, err := s.Repo.GetByID(ctx, shareID)
	if err != nil {
		return err
	}

	isOwner := sh.OwnerID == actor.UserID
	isRecipient := sh.SharedWithEmail == normalized(actor.Email)
	if !isOwner && !isRecipient {
		// чужой доступ не светим
		return myErr.ErrNotFoundShare
	}

	if err := s.Repo.Delete(ctx, shareID); err != nil {
		return err
	}

	metrics.SharesTransitions.WithLabelValues("deleted").Inc()

	event := kafka.Event{
		Type:         kafka.ShareRevoked,
		ActorID:      actor.UserID,
		ResourceID:   sh.ResourceID,
		ResourceType: string(sh.ResourceType),
		SubjectID:    sh.ID,
		Excerpt:      string(sh.Status),
	}
	if isOwner {
		event.RecipientEmail = sh.SharedWithEmail
	} else {
		event.RecipientID = sh.OwnerID
	}
	s.publish(ctx, event)

	return nil
}

// ListByResource - доступы ресурса видит только владелец
func (s *Service) ListByResource(ctx context.Context, actor resource.Actor, ref resource.Ref) ([]Share, error) {
	if _, err := resource.ParseType(string(ref.Type)); err != nil {
		return nil, err
	}
	if err := s.requireOwner(ctx, ref, actor); err != nil {
		return nil, err
	}

	return s.Repo.ListByResource(ctx, ref)
}

// ListForRecipient - входящие доступы вызывающего с названиями ресурсов.
// Пустые status и typ означают без фильтра
func (s *Service) ListForRecipient(ctx context.Context, actor resource.Actor, status Status, typ resource.Type) ([]Received, error) {
	shares, err := s.Repo.ListByEmail(ctx, normalized(actor.Email))
	if err != nil {
		return nil, err
	}

	filtered := shares[:0]
	for _, sh := range shares {
		if status != "" && sh.Status != status {
			continue
		}
		if typ != "" && sh.ResourceType != typ {
			continue
		}
		filtered = append(filtered, sh)
	}

	received := make([]Received, len(filtered))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithMaxGoroutines(titleLookupLimit)
	for i := range filtered {
		i := i
		p.Go(func(ctx context.Context) error {
			title, err := s.Resources.Title(ctx, filtered[i].Ref())
			if err != nil {
				if !errors.Is(err, myErr.ErrNotFound) {
					return err
				}
				title = untitled
			}
			received[i] = Received{Share: filtered[i], ResourceTitle: title}

			return nil
		})
	}

	if err := p.Wait(); err != nil {
		s.Logger.Error("Failed to resolve shared resource titles", zap.Error(err))

		return nil, err
	}

	return received, nil
}

// CheckAccess - владелец имеет доступ всегда, иначе нужен принятый доступ
// с достаточным уровнем. pending ничего не дает
func (s *Service) CheckAccess(ctx context.Context, ref resource.Ref, actor resource.Actor, required Permission) error {
	owner, err := s.Resources.OwnerOf(ctx, ref)
	if err != nil {
		return err
	}
	if owner == actor.UserID {
		return nil
	}

	if actor.Email == "" {
		return myErr.ErrForbidden
	}

	sh, err := s.Repo.FindAccepted(ctx, ref, normalized(actor.Email))
	if err != nil {
		if errors.Is(err, myErr.ErrNotFoundShare) {
			return myErr.ErrForbidden
		}
		return err
	}

	if !sh.PermissionLevel.Satisfies(required) {
		return myErr.ErrForbidden
	}

	return nil
}

func (s *Service) requireOwner(ctx context.Context, ref resource.Ref, actor resource.Actor) error {
	owner, err := s.Resources.OwnerOf(ctx, ref)
	if err != nil {
		return err
	}
	if owner != actor.UserID {
		return myErr.ErrForbidden
	}

	return nil
}

func (s *Service) publish(ctx context.Context, event kafka.Event) {
	if s.Events == nil {
		return
	}

	event.Timestamp = time.Now().UTC()
	if err := s.Events.SendEvent(ctx, event); err != nil {
		metrics.EventsPublishFailed.WithLabelValues(string(event.Type)).Inc()
		s.Logger.Warnf("Failed to publish %s for share %s: %v", event.Type, event.SubjectID, err)
	}
}

func normalized(email string) string {
	if n, err := user.NormalizeEmail(email); err == nil {
		return n
	}
	return email
}
