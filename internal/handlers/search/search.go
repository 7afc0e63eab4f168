package search

import (
	"net/http"
	"strconv"
	"strings"

	elastic "melodia/internal/elastic_search"
	"melodia/internal/feedback"
	"melodia/internal/handlers"
	esDoc "melodia/internal/types/elastic"
	myErr "melodia/internal/types/errors"

	"go.uber.org/zap"
)

const maxSearchSize = 100

type SearchHandler struct {
	Logger   *zap.SugaredLogger
	Searcher elastic.Searcher
	Feedback feedback.FeedbackRepo
}

func NewSearchHandler(l *zap.SugaredLogger, s elastic.Searcher, fr feedback.FeedbackRepo) *SearchHandler {
	return &SearchHandler{
		Logger:   l,
		Searcher: s,
		Feedback: fr,
	}
}

// Search handles GET /api/feedback/search?q={query}&size={n}
// Ищет только по комментариям к своим заметкам и записям
func (h *SearchHandler) Search(w http.ResponseWriter, r *http.Request) {
	actor, ok := handlers.RequireActor(w, r, h.Logger)
	if !ok {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		myErr.SendErrorTo(w, myErr.ErrValidation, http.StatusBadRequest, h.Logger)
		return
	}

	size := 0
	if raw := r.URL.Query().Get("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			myErr.SendErrorTo(w, myErr.ErrValidation, http.StatusBadRequest, h.Logger)
			return
		}
		size = min(n, maxSearchSize)
	}

	docs, err := h.Searcher.SearchFeedback(r.Context(), actor.UserID, q, size)
	if err != nil {
		myErr.SendErrorTo(w, err, http.StatusInternalServerError, h.Logger)
		return
	}

	docs, err = h.dropDeleted(r, docs)
	if err != nil {
		handlers.SendError(w, err, h.Logger)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, docs, h.Logger)
	h.Logger.Infof("searched feedback with query: %s, %d hits", q, len(docs))
}

// dropDeleted - индекс обновляется ETL с задержкой, удаленные комментарии
// могут еще находиться в нем
func (h *SearchHandler) dropDeleted(r *http.Request, docs []esDoc.FeedbackDoc) ([]esDoc.FeedbackDoc, error) {
	out := make([]esDoc.FeedbackDoc, 0, len(docs))
	if len(docs) == 0 {
		return out, nil
	}

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}

	existing, err := h.Feedback.ExistingIDs(r.Context(), ids)
	if err != nil {
		return nil, err
	}

	for _, d := range docs {
		if _, ok := existing[d.ID]; ok {
			out = append(out, d)
		}
	}

	return out, nil
}
