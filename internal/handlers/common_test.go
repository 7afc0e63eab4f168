package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"melodia/internal/middleware"
	"melodia/internal/resource"
	"melodia/internal/session"
	myErr "melodia/internal/types/errors"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const id = "6f1c7f0e-8a59-4d8a-9a0e-0d5f2a3b4c11"

func TestRefFromVars(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want resource.Ref
		err  error
	}{
		{"note", map[string]string{"kind": "notes", "id": id}, resource.Ref{ID: id, Type: resource.TypeNote}, nil},
		{"recording", map[string]string{"kind": "recordings", "id": id}, resource.Ref{ID: id, Type: resource.TypeRecording}, nil},
		{"unknown kind", map[string]string{"kind": "videos", "id": id}, resource.Ref{}, myErr.ErrBadResourceType},
		{"bad id", map[string]string{"kind": "notes", "id": "42"}, resource.Ref{}, myErr.ErrBadID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), tt.vars)

			got, err := RefFromVars(r)
			assert.ErrorIs(t, err, tt.err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequireActor(t *testing.T) {
	logger := zap.NewNop().Sugar()

	rr := httptest.NewRecorder()
	_, ok := RequireActor(rr, httptest.NewRequest(http.MethodGet, "/", nil), logger)
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r = r.WithContext(middleware.ContextWithSession(r.Context(), &session.Session{UserID: "u1", Email: "a@b.c"}))
	rr = httptest.NewRecorder()
	actor, ok := RequireActor(rr, r, logger)
	require.True(t, ok)
	assert.Equal(t, resource.Actor{UserID: "u1", Email: "a@b.c"}, actor)
}

func TestDecodeJSON(t *testing.T) {
	var v struct{ A int }
	err := DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{")), &v)
	assert.ErrorIs(t, err, myErr.ErrInvalidJSONPayload)

	require.NoError(t, DecodeJSON(httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"A":3}`)), &v))
	assert.Equal(t, 3, v.A)
}

func TestSendError(t *testing.T) {
	rr := httptest.NewRecorder()
	SendError(rr, myErr.ErrAlreadyShared, zap.NewNop().Sugar())

	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.JSONEq(t, `{"message":"already shared with this email"}`, rr.Body.String())
}
