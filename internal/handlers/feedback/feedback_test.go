package feedback

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"melodia/internal/annotation"
	"melodia/internal/feedback"
	"melodia/internal/middleware"
	"melodia/internal/mocks"
	"melodia/internal/resource"
	"melodia/internal/session"
	myErr "melodia/internal/types/errors"

	"github.com/golang/mock/gomock"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const (
	resID = "6f1c7f0e-8a59-4d8a-9a0e-0d5f2a3b4c11"
	fbID  = "2b7e8c44-1d2f-4e6a-bb0c-91d3c5a7e222"
)

var actor = resource.Actor{UserID: "u1", Email: "ann@example.com"}

func setup(t *testing.T) (*FeedbackHandler, *mocks.MockFeedbackManager, *mocks.MockResourceRepo) {
	ctrl := gomock.NewController(t)
	m := mocks.NewMockFeedbackManager(ctrl)
	rr := mocks.NewMockResourceRepo(ctrl)
	return NewFeedbackHandler(zap.NewNop().Sugar(), m, rr), m, rr
}

func request(method, target, body string, vars map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	req = mux.SetURLVars(req, vars)
	ctx := middleware.ContextWithSession(req.Context(), &session.Session{ID: "s1", UserID: actor.UserID, Email: actor.Email})
	return req.WithContext(ctx)
}

func TestFeedbackHandler_View(t *testing.T) {
	vars := map[string]string{"kind": "recordings", "id": resID}
	ref := resource.Ref{ID: resID, Type: resource.TypeRecording}

	t.Run("options passed through", func(t *testing.T) {
		h, m, _ := setup(t)
		want := feedback.ViewOptions{SortBy: feedback.SortByLikes, Direction: feedback.Asc, Filter: feedback.FilterUnresolved}
		m.EXPECT().View(gomock.Any(), actor, ref, want).
			Return([]feedback.Thread{{Feedback: feedback.Feedback{ID: fbID}}}, nil)

		rr := httptest.NewRecorder()
		h.View(rr, request(http.MethodGet, "/api/recordings/"+resID+"/feedback?sort=likes&dir=asc&filter=unresolved", "", vars))

		require.Equal(t, http.StatusOK, rr.Code)
		var got []feedback.Thread
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Len(t, got, 1)
		assert.Equal(t, fbID, got[0].ID)
	})

	t.Run("empty list is an array", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().View(gomock.Any(), actor, ref, feedback.DefaultViewOptions()).Return(nil, nil)

		rr := httptest.NewRecorder()
		h.View(rr, request(http.MethodGet, "/x", "", vars))

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "[]\n", rr.Body.String())
	})

	t.Run("bad sort", func(t *testing.T) {
		h, _, _ := setup(t)

		rr := httptest.NewRecorder()
		h.View(rr, request(http.MethodGet, "/x?sort=rating", "", vars))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("bad kind", func(t *testing.T) {
		h, _, _ := setup(t)

		rr := httptest.NewRecorder()
		h.View(rr, request(http.MethodGet, "/x", "", map[string]string{"kind": "videos", "id": resID}))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().View(gomock.Any(), actor, ref, gomock.Any()).Return(nil, myErr.ErrForbidden)

		rr := httptest.NewRecorder()
		h.View(rr, request(http.MethodGet, "/x", "", vars))

		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("no session", func(t *testing.T) {
		h, _, _ := setup(t)

		rr := httptest.NewRecorder()
		h.View(rr, mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/x", nil), vars))

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestFeedbackHandler_Add(t *testing.T) {
	vars := map[string]string{"kind": "notes", "id": resID}
	ref := resource.Ref{ID: resID, Type: resource.TypeNote}

	tests := []struct {
		name   string
		body   string
		mock   func(m *mocks.MockFeedbackManager)
		status int
	}{
		{
			name: "created",
			body: `{"comment":"nice bridge"}`,
			mock: func(m *mocks.MockFeedbackManager) {
				m.EXPECT().Add(gomock.Any(), actor, ref, feedback.CreateFeedback{Comment: "nice bridge"}).
					Return(&feedback.Feedback{ID: fbID, Comment: "nice bridge"}, nil)
			},
			status: http.StatusCreated,
		},
		{
			name:   "invalid json",
			body:   `{"comment":`,
			mock:   func(m *mocks.MockFeedbackManager) {},
			status: http.StatusBadRequest,
		},
		{
			name: "empty comment",
			body: `{"comment":"  "}`,
			mock: func(m *mocks.MockFeedbackManager) {
				m.EXPECT().Add(gomock.Any(), actor, ref, gomock.Any()).Return(nil, myErr.ErrValidation)
			},
			status: http.StatusBadRequest,
		},
		{
			name: "invalid parent",
			body: `{"comment":"re","parent_id":"p"}`,
			mock: func(m *mocks.MockFeedbackManager) {
				m.EXPECT().Add(gomock.Any(), actor, ref, gomock.Any()).Return(nil, myErr.ErrInvalidParent)
			},
			status: http.StatusUnprocessableEntity,
		},
		{
			name: "resource missing",
			body: `{"comment":"hi"}`,
			mock: func(m *mocks.MockFeedbackManager) {
				m.EXPECT().Add(gomock.Any(), actor, ref, gomock.Any()).Return(nil, myErr.ErrNotFound)
			},
			status: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m, _ := setup(t)
			tt.mock(m)

			rr := httptest.NewRecorder()
			h.Add(rr, request(http.MethodPost, "/api/notes/"+resID+"/feedback", tt.body, vars))

			assert.Equal(t, tt.status, rr.Code)
		})
	}
}

func TestFeedbackHandler_Edit(t *testing.T) {
	vars := map[string]string{"id": fbID}

	h, m, _ := setup(t)
	m.EXPECT().Edit(gomock.Any(), actor, fbID, "better").Return(&feedback.Feedback{ID: fbID, Comment: "better"}, nil)

	rr := httptest.NewRecorder()
	h.Edit(rr, request(http.MethodPut, "/api/feedback/"+fbID, `{"comment":"better"}`, vars))
	assert.Equal(t, http.StatusOK, rr.Code)

	m.EXPECT().Edit(gomock.Any(), actor, fbID, "x").Return(nil, myErr.ErrForbidden)
	rr = httptest.NewRecorder()
	h.Edit(rr, request(http.MethodPut, "/api/feedback/"+fbID, `{"comment":"x"}`, vars))
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = httptest.NewRecorder()
	h.Edit(rr, request(http.MethodPut, "/api/feedback/nope", `{"comment":"x"}`, map[string]string{"id": "nope"}))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestFeedbackHandler_Toggles(t *testing.T) {
	vars := map[string]string{"id": fbID}

	t.Run("like", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().ToggleLike(gomock.Any(), actor, fbID).
			Return(&feedback.Feedback{ID: fbID, Likes: 1, LikedBy: []string{"u1"}}, nil)

		rr := httptest.NewRecorder()
		h.ToggleLike(rr, request(http.MethodPost, "/api/feedback/"+fbID+"/like", "", vars))

		require.Equal(t, http.StatusOK, rr.Code)
		var got feedback.Feedback
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		assert.Equal(t, 1, got.Likes)
	})

	t.Run("like in flight", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().ToggleLike(gomock.Any(), actor, fbID).Return(nil, myErr.ErrToggleInFlight)

		rr := httptest.NewRecorder()
		h.ToggleLike(rr, request(http.MethodPost, "/x", "", vars))

		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("resolve", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().ToggleResolved(gomock.Any(), actor, fbID).Return(&feedback.Feedback{ID: fbID, IsResolved: true}, nil)

		rr := httptest.NewRecorder()
		h.ToggleResolved(rr, request(http.MethodPost, "/x", "", vars))

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("resolve missing", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().ToggleResolved(gomock.Any(), actor, fbID).Return(nil, myErr.ErrNotFoundFeedback)

		rr := httptest.NewRecorder()
		h.ToggleResolved(rr, request(http.MethodPost, "/x", "", vars))

		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestFeedbackHandler_Delete(t *testing.T) {
	vars := map[string]string{"id": fbID}

	h, m, _ := setup(t)
	m.EXPECT().Remove(gomock.Any(), actor, fbID).Return(nil)

	rr := httptest.NewRecorder()
	h.Delete(rr, request(http.MethodDelete, "/api/feedback/"+fbID, "", vars))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	m.EXPECT().Remove(gomock.Any(), actor, fbID).Return(myErr.ErrForbidden)
	rr = httptest.NewRecorder()
	h.Delete(rr, request(http.MethodDelete, "/api/feedback/"+fbID, "", vars))
	assert.Equal(t, http.StatusForbidden, rr.Code)
}

func TestFeedbackHandler_Markers(t *testing.T) {
	vars := map[string]string{"id": resID}
	ref := resource.Ref{ID: resID, Type: resource.TypeRecording}
	ts := 30.0
	parent := fbID

	t.Run("one marker per top-level feedback", func(t *testing.T) {
		h, m, rr := setup(t)
		m.EXPECT().List(gomock.Any(), actor, ref).Return([]feedback.Feedback{
			{ID: fbID, Comment: "late entry", TimestampSeconds: &ts},
			{ID: "r1", Comment: "agreed", ParentID: &parent},
		}, nil)
		rr.EXPECT().GetRecording(gomock.Any(), resID).Return(&resource.Recording{ID: resID, DurationSeconds: 120}, nil)

		rec := httptest.NewRecorder()
		h.Markers(rec, request(http.MethodGet, "/api/recordings/"+resID+"/markers", "", vars))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []annotation.Marker
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		require.Len(t, got, 1)
		assert.Equal(t, fbID, got[0].FeedbackID)
		assert.InDelta(t, 25.0, got[0].Position, 1e-9)
	})

	t.Run("access denied before lookup", func(t *testing.T) {
		h, m, _ := setup(t)
		m.EXPECT().List(gomock.Any(), actor, ref).Return(nil, myErr.ErrForbidden)

		rec := httptest.NewRecorder()
		h.Markers(rec, request(http.MethodGet, "/x", "", vars))

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})
}
