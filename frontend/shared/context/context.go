package context

import (
	"context"

	"github.com/data-center-bgp/po-bunker/models"
)

type sessionKey struct{}

// NewContextWithSession threads the backend session through the view layer.
func NewContextWithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, session)
}

func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(models.Session)
	return s, ok
}
