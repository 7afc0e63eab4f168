package contextutil

import (
	"context"
	"testing"

	"melodia/internal/middleware"
	"melodia/internal/resource"
	"melodia/internal/session"

	"github.com/stretchr/testify/assert"
)

func TestActorFromContext(t *testing.T) {
	_, ok := ActorFromContext(context.Background())
	assert.False(t, ok)

	ctx := middleware.ContextWithSession(context.Background(), &session.Session{ID: "s1", UserID: "u1", Email: "ann@example.com"})
	actor, ok := ActorFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, resource.Actor{UserID: "u1", Email: "ann@example.com"}, actor)

	id, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "u1", id)

	sess, ok := SessionFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "s1", sess.ID)
}

func TestActorFromContext_EmptyUser(t *testing.T) {
	ctx := middleware.ContextWithSession(context.Background(), &session.Session{ID: "s1"})

	_, ok := ActorFromContext(ctx)
	assert.False(t, ok)
}
