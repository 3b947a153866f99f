package auth

import (
	"context"

	"github.com/nakamauwu/parcelmate/types"
)

type ctxKey struct{}

// WithUser returns a copy of ctx carrying the verified user.
func WithUser(ctx context.Context, user types.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFrom returns the verified user of ctx.
// Anonymous requests get the zero user, which is never valid.
func UserFrom(ctx context.Context) types.User {
	user, _ := ctx.Value(ctxKey{}).(types.User)
	return user
}
