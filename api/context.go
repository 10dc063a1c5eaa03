package api

import (
	"context"
	"errors"
)

type keyType string

const (
	profileIDKey keyType = "profileID"
	slugKey      keyType = "slug"
)

// ctxWithSession stores the verified session identity on the request context
func ctxWithSession(ctx context.Context, profileID int, slug string) context.Context {
	ctx = context.WithValue(ctx, profileIDKey, profileID)
	return context.WithValue(ctx, slugKey, slug)
}

// ctxGetProfileID retrieves the authenticated profile id from the context
func ctxGetProfileID(ctx context.Context) (int, error) {
	ctxValue := ctx.Value(profileIDKey)
	if ctxValue == nil {
		return 0, errors.New("no session on context")
	}
	id, ok := ctxValue.(int)
	if !ok {
		return 0, errors.New("session value is not of type `int`")
	}
	return id, nil
}
