package feedback

import (
	"context"
	"errors"
	"strconv"
	"time"
	"unicode/utf8"

	"melodia/internal/kafka"
	"melodia/internal/metrics"
	"melodia/internal/resource"
	"melodia/internal/share"
	myErr "melodia/internal/types/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	maxCommentLength = 2000
	excerptLength    = 120
)

// FeedbackManager - операции над комментариями, которые нужны HTTP слою
//
//go:generate mockgen -source=service.go -destination=../mocks/mock_feedback_manager.go -package=mocks
type FeedbackManager interface {
	Add(ctx context.Context, actor resource.Actor, ref resource.Ref, req CreateFeedback) (*Feedback, error)
	Edit(ctx context.Context, actor resource.Actor, feedbackID string, comment string) (*Feedback, error)
	ToggleLike(ctx context.Context, actor resource.Actor, feedbackID string) (*Feedback, error)
	ToggleResolved(ctx context.Context, actor resource.Actor, feedbackID string) (*Feedback, error)
	Remove(ctx context.Context, actor resource.Actor, feedbackID string) error
	List(ctx context.Context, actor resource.Actor, ref resource.Ref) ([]Feedback, error)
	View(ctx context.Context, actor resource.Actor, ref resource.Ref, opts ViewOptions) ([]Thread, error)
}

type Service struct {
	Repo   FeedbackRepo
	Access share.AccessChecker
	Owners resource.OwnerResolver
	Guard  Guard
	Events kafka.EventProducer
	Logger *zap.SugaredLogger
}

func NewService(
	repo FeedbackRepo,
	access share.AccessChecker,
	owners resource.OwnerResolver,
	guard Guard,
	events kafka.EventProducer,
	logger *zap.SugaredLogger,
) *Service {
	return &Service{
		Repo:   repo,
		Access: access,
		Owners: owners,
		Guard:  guard,
		Events: events,
		Logger: logger,
	}
}

func validateComment(comment string) error {
	if blank(comment) {
		return myErr.ErrValidation
	}
	if utf8.RuneCountInString(comment) > maxCommentLength {
		return myErr.ErrCommentIsTooLong
	}
	return nil
}

// Add - новый комментарий или ответ. Для заметок таймкод отбрасывается,
// родитель ответа должен быть комментарием верхнего уровня того же ресурса
func (s *Service) Add(ctx context.Context, actor resource.Actor, ref resource.Ref, req CreateFeedback) (*Feedback, error) {
	if _, err := resource.ParseType(string(ref.Type)); err != nil {
		return nil, err
	}
	if _, err := uuid.Parse(ref.ID); err != nil {
		return nil, myErr.ErrBadID
	}
	hasParent := req.ParentID != nil && *req.ParentID != ""
	if hasParent {
		if _, err := uuid.Parse(*req.ParentID); err != nil {
			return nil, myErr.ErrInvalidParent
		}
	}
	if err := validateComment(req.Comment); err != nil {
		return nil, err
	}

	ts := req.TimestampSeconds
	if ref.Type == resource.TypeNote {
		ts = nil
	}
	if ts != nil && *ts < 0 {
		return nil, myErr.ErrValidation
	}

	if err := s.Access.CheckAccess(ctx, ref, actor, share.PermissionView); err != nil {
		return nil, err
	}

	var parent *Feedback
	if hasParent {
		p, err := s.Repo.GetByID(ctx, *req.ParentID)
		if err != nil {
			if errors.Is(err, myErr.ErrNotFoundFeedback) {
				return nil, myErr.ErrInvalidParent
			}
			return nil, err
		}
		if p.IsReply() || p.Ref() != ref {
			return nil, myErr.ErrInvalidParent
		}
		parent = p
	}

	f := &Feedback{
		ResourceID:       ref.ID,
		ResourceType:     ref.Type,
		AuthorID:         actor.UserID,
		Comment:          req.Comment,
		TimestampSeconds: ts,
	}
	if parent != nil {
		f.ParentID = &parent.ID
	}

	created, err := s.Repo.Create(ctx, f)
	if err != nil {
		return nil, err
	}

	metrics.FeedbackCreated.WithLabelValues(string(ref.Type), strconv.FormatBool(parent != nil)).Inc()
	s.notifyCreated(ctx, created, parent)

	return created, nil
}

// Edit - менять текст может только автор, пока у него есть доступ к ресурсу
func (s *Service) Edit(ctx context.Context, actor resource.Actor, feedbackID string, comment string) (*Feedback, error) {
	if err := validateComment(comment); err != nil {
		return nil, err
	}

	f, err := s.loadVisible(ctx, actor, feedbackID)
	if err != nil {
		return nil, err
	}
	if f.AuthorID != actor.UserID {
		return nil, myErr.ErrForbidden
	}

	return s.Repo.UpdateComment(ctx, feedbackID, comment)
}

// ToggleLike - пока первый toggle пользователя не завершился, второй
// отклоняется с ErrToggleInFlight. Ответ содержит актуальную запись
func (s *Service) ToggleLike(ctx context.Context, actor resource.Actor, feedbackID string) (*Feedback, error) {
	f, err := s.loadVisible(ctx, actor, feedbackID)
	if err != nil {
		return nil, err
	}

	release, err := s.Guard.Acquire(ctx, f.ID, actor.UserID)
	if err != nil {
		if errors.Is(err, myErr.ErrToggleInFlight) {
			metrics.LikesToggled.WithLabelValues("in_flight").Inc()
		}
		return nil, err
	}
	defer release()

	updated, err := s.Repo.ToggleLike(ctx, f.ID, actor.UserID)
	if err != nil {
		return nil, err
	}

	outcome := "unlike"
	if updated.LikedByUser(actor.UserID) {
		outcome = "like"
	}
	metrics.LikesToggled.WithLabelValues(outcome).Inc()

	return updated, nil
}

// ToggleResolved - отметить "ок" может любой, кто видит ресурс
func (s *Service) ToggleResolved(ctx context.Context, actor resource.Actor, feedbackID string) (*Feedback, error) {
	f, err := s.loadVisible(ctx, actor, feedbackID)
	if err != nil {
		return nil, err
	}

	return s.Repo.ToggleResolved(ctx, f.ID)
}

// Remove - удалить может автор или владелец ресурса, ответы удаляются вместе с родителем
func (s *Service) Remove(ctx context.Context, actor resource.Actor, feedbackID string) error {
	if feedbackID == "" {
		return myErr.ErrMissingFeedbackID
	}

	f, err := s.Repo.GetByID(ctx, feedbackID)
	if err != nil {
		return err
	}

	if f.AuthorID != actor.UserID {
		owner, err := s.Owners.OwnerOf(ctx, f.Ref())
		if err != nil {
			return err
		}
		if owner != actor.UserID {
			return myErr.ErrForbidden
		}
	}

	n, err := s.Repo.Delete(ctx, f.ID)
	if err != nil {
		return err
	}

	metrics.FeedbackDeleted.Add(float64(n))

	return nil
}

// List - комментарии ресурса в порядке хранения, новые первыми
func (s *Service) List(ctx context.Context, actor resource.Actor, ref resource.Ref) ([]Feedback, error) {
	if _, err := resource.ParseType(string(ref.Type)); err != nil {
		return nil, err
	}
	if err := s.Access.CheckAccess(ctx, ref, actor, share.PermissionView); err != nil {
		return nil, err
	}

	return s.Repo.ListByResource(ctx, ref)
}

func (s *Service) View(ctx context.Context, actor resource.Actor, ref resource.Ref, opts ViewOptions) ([]Thread, error) {
	items, err := s.List(ctx, actor, ref)
	if err != nil {
		return nil, err
	}

	return BuildView(items, opts), nil
}

func (s *Service) loadVisible(ctx context.Context, actor resource.Actor, feedbackID string) (*Feedback, error) {
	if feedbackID == "" {
		return nil, myErr.ErrMissingFeedbackID
	}

	f, err := s.Repo.GetByID(ctx, feedbackID)
	if err != nil {
		return nil, err
	}

	if err := s.Access.CheckAccess(ctx, f.Ref(), actor, share.PermissionView); err != nil {
		return nil, err
	}

	return f, nil
}

func (s *Service) notifyCreated(ctx context.Context, f *Feedback, parent *Feedback) {
	event := kafka.Event{
		Type:         kafka.FeedbackAdded,
		ActorID:      f.AuthorID,
		ResourceID:   f.ResourceID,
		ResourceType: string(f.ResourceType),
		SubjectID:    f.ID,
		Excerpt:      excerpt(f.Comment),
	}

	if parent != nil {
		event.Type = kafka.FeedbackReplied
		event.RecipientID = parent.AuthorID
	} else {
		owner, err := s.Owners.OwnerOf(ctx, f.Ref())
		if err != nil {
			s.Logger.Warnf("Skip feedback notification, owner of %s unknown: %v", f.ResourceID, err)
			return
		}
		event.RecipientID = owner
	}

	if event.RecipientID == f.AuthorID {
		return
	}

	s.publish(ctx, event)
}

func (s *Service) publish(ctx context.Context, event kafka.Event) {
	if s.Events == nil {
		return
	}

	event.Timestamp = time.Now().UTC()
	if err := s.Events.SendEvent(ctx, event); err != nil {
		metrics.EventsPublishFailed.WithLabelValues(string(event.Type)).Inc()
		s.Logger.Warnf("Failed to publish %s for feedback %s: %v", event.Type, event.SubjectID, err)
	}
}

func excerpt(comment string) string {
	if utf8.RuneCountInString(comment) <= excerptLength {
		return comment
	}
	r := []rune(comment)
	return string(r[:excerptLength]) + "..."
}
