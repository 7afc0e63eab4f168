package contextutil

import (
	"context"

	"melodia/internal/middleware"
	"melodia/internal/resource"
	"melodia/internal/session"
)

// GetUserIDFromContext извлекает userID из контекста
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return "", false
	}
	return sess.UserID, true
}

// ActorFromContext - вызывающий пользователь вместе с почтой, по которой ищутся доступы
func ActorFromContext(ctx context.Context) (resource.Actor, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil || sess.UserID == "" {
		return resource.Actor{}, false
	}
	return resource.Actor{UserID: sess.UserID, Email: sess.Email}, true
}

// SessionFromContext - сессия, положенная в контекст middleware.Auth
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	sess, ok := middleware.GetSessionFromContext(ctx)
	if !ok || sess == nil {
		return nil, false
	}
	return sess, true
}
