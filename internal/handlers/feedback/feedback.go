package feedback

import (
	"context"
	"net/http"

	"melodia/internal/annotation"
	"melodia/internal/feedback"
	"melodia/internal/handlers"
	"melodia/internal/resource"

	"go.uber.org/zap"
)

type FeedbackHandler struct {
	Logger    *zap.SugaredLogger
	Manager   feedback.FeedbackManager
	Resources resource.ResourceRepo
}

func NewFeedbackHandler(l *zap.SugaredLogger, m feedback.FeedbackManager, rr resource.ResourceRepo) *FeedbackHandler {
	return &FeedbackHandler{
		Logger:    l,
		Manager:   m,
		Resources: rr,
	}
}

// View - GET /api/{kind}/{id}/feedback?sort=&dir=&filter=
func (h *FeedbackHandler) View(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	ref, err := handlers.RefFromVars(r)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	q := r.URL.Query()
	opts, err := feedback.ParseViewOptions(q.Get("sort"), q.Get("dir"), q.Get("filter"))
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	threads, err := h.Manager.View(r.Context(), actor, ref, opts)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if threads == nil {
		threads = []feedback.Thread{}
	}

	handlers.WriteJSON(w, http.StatusOK, threads, h.Logger)
}

// Add - POST /api/{kind}/{id}/feedback
func (h *FeedbackHandler) Add(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	ref, err := handlers.RefFromVars(r)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	var req feedback.CreateFeedback
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	f, err := h.Manager.Add(r.Context(), actor, ref, req)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, f, h.Logger)
	h.Logger.Infof("feedback %s added to %s %s", f.ID, ref.Type, ref.ID)
}

func (h *FeedbackHandler) Edit(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	var req feedback.UpdateFeedback
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	f, err := h.Manager.Edit(r.Context(), actor, id, req.Comment)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, f, h.Logger)
}

func (h *FeedbackHandler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Manager.ToggleLike)
}

func (h *FeedbackHandler) ToggleResolved(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, h.Manager.ToggleResolved)
}

type toggleFunc func(ctx context.Context, actor resource.Actor, feedbackID string) (*feedback.Feedback, error)

func (h *FeedbackHandler) toggle(w http.ResponseWriter, r *http.Request, fn toggleFunc) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	f, err := fn(r.Context(), actor, id)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, f, h.Logger)
}

// Delete удаляет комментарий вместе с ответами
func (h *FeedbackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	if err := h.Manager.Remove(r.Context(), actor, id); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("feedback %s deleted by %s", id, actor.UserID)
}

// Markers - GET /api/recordings/{id}/markers, точки комментариев на шкале записи
func (h *FeedbackHandler) Markers(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	ref := resource.Ref{ID: id, Type: resource.TypeRecording}

	// List проверяет доступ, поэтому идет первым
	items, err := h.Manager.List(r.Context(), actor, ref)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	rec, err := h.Resources.GetRecording(r.Context(), id)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, annotation.Markers(items, rec.DurationSeconds), h.Logger)
}
