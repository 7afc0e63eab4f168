package resource

import (
	"context"
	"net/http"

	"melodia/internal/handlers"
	"melodia/internal/resource"
	"melodia/internal/share"

	"go.uber.org/zap"
)

// ResourceHandler - заметки и записи. Свои ресурсы меняет и удаляет только
// владелец, чужие читаются и правятся по принятому доступу
type ResourceHandler struct {
	Logger *zap.SugaredLogger
	Repo   resource.ResourceRepo
	Access share.AccessChecker
}

func NewResourceHandler(l *zap.SugaredLogger, repo resource.ResourceRepo, access share.AccessChecker) *ResourceHandler {
	return &ResourceHandler{
		Logger: l,
		Repo:   repo,
		Access: access,
	}
}

func (h *ResourceHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	var n resource.Note
	if err := handlers.DecodeJSON(r, &n); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if err := n.Validate(); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	n.OwnerID = actor.UserID

	created, err := h.Repo.CreateNote(r.Context(), &n)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created, h.Logger)
}

func (h *ResourceHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	notes, err := h.Repo.ListNotes(r.Context(), actor.UserID)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if notes == nil {
		notes = []resource.Note{}
	}

	handlers.WriteJSON(w, http.StatusOK, notes, h.Logger)
}

func (h *ResourceHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	ref := resource.Ref{ID: id, Type: resource.TypeNote}
	if err := h.Access.CheckAccess(r.Context(), ref, actor, share.PermissionView); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	n, err := h.Repo.GetNote(r.Context(), id)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, n, h.Logger)
}

// UpdateNote - владелец или получатель доступа с уровнем edit
func (h *ResourceHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	var n resource.Note
	if err := handlers.DecodeJSON(r, &n); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if err := n.Validate(); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	ref := resource.Ref{ID: id, Type: resource.TypeNote}
	if err := h.Access.CheckAccess(r.Context(), ref, actor, share.PermissionEdit); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	owner, err := h.Repo.OwnerOf(r.Context(), ref)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	n.ID = id
	n.OwnerID = owner

	updated, err := h.Repo.UpdateNote(r.Context(), &n)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, updated, h.Logger)
	h.Logger.Infof("note %s updated by %s", id, actor.UserID)
}

func (h *ResourceHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	h.deleteOwned(w, r, h.Repo.DeleteNote)
}

func (h *ResourceHandler) CreateRecording(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	var rec resource.Recording
	if err := handlers.DecodeJSON(r, &rec); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if err := rec.Validate(); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	rec.OwnerID = actor.UserID

	created, err := h.Repo.CreateRecording(r.Context(), &rec)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, created, h.Logger)
}

func (h *ResourceHandler) ListRecordings(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	recs, err := h.Repo.ListRecordings(r.Context(), actor.UserID)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if recs == nil {
		recs = []resource.Recording{}
	}

	handlers.WriteJSON(w, http.StatusOK, recs, h.Logger)
}

func (h *ResourceHandler) GetRecording(w http.ResponseWriter, r *http.Request) {
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
	if err := h.Access.CheckAccess(r.Context(), ref, actor, share.PermissionView); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	rec, err := h.Repo.GetRecording(r.Context(), id)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, rec, h.Logger)
}

func (h *ResourceHandler) DeleteRecording(w http.ResponseWriter, r *http.Request) {
	h.deleteOwned(w, r, h.Repo.DeleteRecording)
}

// deleteOwned - удаление ресурса, чужой ресурс для репозитория не существует
func (h *ResourceHandler) deleteOwned(w http.ResponseWriter, r *http.Request, del func(ctx context.Context, id, ownerID string) error) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	if err := del(r.Context(), id, actor.UserID); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
	h.Logger.Infof("resource %s deleted by %s", id, actor.UserID)
}

// dashboardResponse - сводка для главной страницы
type dashboardResponse struct {
	resource.Stats
	RecentActivity []resource.Activity `json:"recent_activity"`
}

// Dashboard - количество своих заметок и записей и лента последних действий
func (h *ResourceHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	stats, err := h.Repo.Stats(r.Context(), actor.UserID)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	activity, err := h.Repo.RecentActivity(r.Context(), actor.UserID, resource.DefaultActivityLimit)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if activity == nil {
		activity = []resource.Activity{}
	}

	handlers.WriteJSON(w, http.StatusOK, dashboardResponse{Stats: stats, RecentActivity: activity}, h.Logger)
}
