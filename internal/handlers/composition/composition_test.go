package composition

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"melodia/internal/composition"
	"melodia/internal/middleware"
	"melodia/internal/mocks"
	"melodia/internal/resource"
	"melodia/internal/session"
	myErr "melodia/internal/types/errors"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const (
	compID = "c3b2a190-8f7e-4d6c-9b5a-4e3d2c1b0a99"
	recID  = "7e6d5c4b-3a29-4180-9f8e-7d6c5b4a3921"
)

func setup(t *testing.T) (*CompositionHandler, *mocks.MockCompositionRepo) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockCompositionRepo(ctrl)
	return NewCompositionHandler(zap.NewNop().Sugar(), repo), repo
}

func authed(method, target, body string, vars map[string]string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}
	return req.WithContext(middleware.ContextWithSession(req.Context(), &session.Session{UserID: "u1", Email: "ann@example.com"}))
}

func TestCompositionHandler_Create(t *testing.T) {
	h, repo := setup(t)
	repo.EXPECT().Create(gomock.Any(), &composition.Composition{OwnerID: "u1", Title: "EP"}).
		Return(&composition.Composition{ID: compID, OwnerID: "u1", Title: "EP"}, nil)

	rr := httptest.NewRecorder()
	h.Create(rr, authed(http.MethodPost, "/api/compositions", `{"title":"EP"}`, nil))
	assert.Equal(t, http.StatusCreated, rr.Code)

	rr = httptest.NewRecorder()
	h.Create(rr, authed(http.MethodPost, "/api/compositions", `{"title":""}`, nil))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCompositionHandler_GetAndList(t *testing.T) {
	h, repo := setup(t)
	repo.EXPECT().GetByID(gomock.Any(), compID, "u1").Return(nil, myErr.ErrNotFound)
	repo.EXPECT().ListByOwner(gomock.Any(), "u1").Return(nil, nil)

	rr := httptest.NewRecorder()
	h.Get(rr, authed(http.MethodGet, "/api/compositions/"+compID, "", map[string]string{"id": compID}))
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = httptest.NewRecorder()
	h.List(rr, authed(http.MethodGet, "/api/compositions", "", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestCompositionHandler_Update(t *testing.T) {
	h, repo := setup(t)
	repo.EXPECT().Update(gomock.Any(), &composition.Composition{ID: compID, OwnerID: "u1", Title: "LP", Description: "full"}).
		Return(&composition.Composition{ID: compID, Title: "LP"}, nil)

	rr := httptest.NewRecorder()
	h.Update(rr, authed(http.MethodPut, "/api/compositions/"+compID, `{"title":"LP","description":"full"}`, map[string]string{"id": compID}))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestCompositionHandler_Delete(t *testing.T) {
	h, repo := setup(t)
	repo.EXPECT().Delete(gomock.Any(), compID, "u1").Return(nil)

	rr := httptest.NewRecorder()
	h.Delete(rr, authed(http.MethodDelete, "/api/compositions/"+compID, "", map[string]string{"id": compID}))
	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestCompositionHandler_Members(t *testing.T) {
	vars := map[string]string{"id": compID, "kind": "recordings", "resource_id": recID}
	ref := resource.Ref{ID: recID, Type: resource.TypeRecording}

	t.Run("add", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().AddMember(gomock.Any(), compID, "u1", ref).Return(nil)

		rr := httptest.NewRecorder()
		h.AddMember(rr, authed(http.MethodPut, "/x", "", vars))
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})

	t.Run("remove foreign resource", func(t *testing.T) {
		h, repo := setup(t)
		repo.EXPECT().RemoveMember(gomock.Any(), compID, "u1", ref).Return(myErr.ErrNotFound)

		rr := httptest.NewRecorder()
		h.RemoveMember(rr, authed(http.MethodDelete, "/x", "", vars))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("bad kind", func(t *testing.T) {
		h, _ := setup(t)

		rr := httptest.NewRecorder()
		h.AddMember(rr, authed(http.MethodPut, "/x", "", map[string]string{"id": compID, "kind": "videos", "resource_id": recID}))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
