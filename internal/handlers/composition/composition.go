package composition

import (
	"context"
	"net/http"
	"strings"

	"melodia/internal/composition"
	"melodia/internal/handlers"
	"melodia/internal/resource"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// CompositionHandler - композиции видит и меняет только владелец
type CompositionHandler struct {
	Logger *zap.SugaredLogger
	Repo   composition.CompositionRepo
}

func NewCompositionHandler(l *zap.SugaredLogger, repo composition.CompositionRepo) *CompositionHandler {
	return &CompositionHandler{
		Logger: l,
		Repo:   repo,
	}
}

func (h *CompositionHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	var form composition.CreateComposition
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if err := form.Validate(); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	c, err := h.Repo.Create(r.Context(), &composition.Composition{
		OwnerID:     actor.UserID,
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, c, h.Logger)
}

func (h *CompositionHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	list, err := h.Repo.ListByOwner(r.Context(), actor.UserID)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if list == nil {
		list = []composition.Composition{}
	}

	handlers.WriteJSON(w, http.StatusOK, list, h.Logger)
}

func (h *CompositionHandler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	c, err := h.Repo.GetByID(r.Context(), id, actor.UserID)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, c, h.Logger)
}

func (h *CompositionHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	var form composition.CreateComposition
	if err := handlers.DecodeJSON(r, &form); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}
	if err := form.Validate(); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	c, err := h.Repo.Update(r.Context(), &composition.Composition{
		ID:          id,
		OwnerID:     actor.UserID,
		Title:       form.Title,
		Description: form.Description,
	})
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, c, h.Logger)
}

func (h *CompositionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	if err := h.Repo.Delete(r.Context(), id, actor.UserID); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddMember - PUT /api/compositions/{id}/{kind}/{resource_id}
func (h *CompositionHandler) AddMember(w http.ResponseWriter, r *http.Request) {
	h.member(w, r, h.Repo.AddMember)
}

// RemoveMember - DELETE /api/compositions/{id}/{kind}/{resource_id}
func (h *CompositionHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	h.member(w, r, h.Repo.RemoveMember)
}

type memberFunc func(ctx context.Context, id, ownerID string, ref resource.Ref) error

func (h *CompositionHandler) member(w http.ResponseWriter, r *http.Request, fn memberFunc) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	id, err := handlers.PathID(r, "id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	typ, err := resource.ParseType(strings.TrimSuffix(mux.Vars(r)["kind"], "s"))
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	resourceID, err := handlers.PathID(r, "resource_id")
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	if err := fn(r.Context(), id, actor.UserID, resource.Ref{ID: resourceID, Type: typ}); err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
