package middleware

import (
	"context"

	goBearer "github.com/MrEthical07/goBearer"
)

type (
	playerContextKey   struct{}
	brandContextKey    struct{}
	adminContextKey    struct{}
	userContextKey     struct{}
	rawTokenContextKey struct{}
)

// PlayerFromContext returns the player identity stored by RequirePlayer or RequireUser.
func PlayerFromContext(ctx context.Context) (*goBearer.PlayerTokenData, bool) {
	v, ok := ctx.Value(playerContextKey{}).(*goBearer.PlayerTokenData)
	return v, ok
}

// BrandFromContext returns the brand identity stored by RequireBrand.
func BrandFromContext(ctx context.Context) (*goBearer.BrandTokenData, bool) {
	v, ok := ctx.Value(brandContextKey{}).(*goBearer.BrandTokenData)
	return v, ok
}

// AdminFromContext returns the admin identity stored by RequireAdmin or RequireUser.
func AdminFromContext(ctx context.Context) (*goBearer.AdminTokenData, bool) {
	v, ok := ctx.Value(adminContextKey{}).(*goBearer.AdminTokenData)
	return v, ok
}

// UserFromContext returns the player or admin identity of the request.
func UserFromContext(ctx context.Context) (goBearer.UserTokenData, bool) {
	v, ok := ctx.Value(userContextKey{}).(goBearer.UserTokenData)
	return v, ok
}

// RawTokenFromContext returns the token text the request was authenticated with.
func RawTokenFromContext(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(rawTokenContextKey{}).(string)
	return v, ok
}

func withIdentity(ctx context.Context, raw string, data goBearer.TokenData) context.Context {
	ctx = context.WithValue(ctx, rawTokenContextKey{}, raw)
	switch v := data.(type) {
	case *goBearer.PlayerTokenData:
		ctx = context.WithValue(ctx, playerContextKey{}, v)
		ctx = context.WithValue(ctx, userContextKey{}, goBearer.UserTokenData(v))
	case *goBearer.AdminTokenData:
		ctx = context.WithValue(ctx, adminContextKey{}, v)
		ctx = context.WithValue(ctx, userContextKey{}, goBearer.UserTokenData(v))
	case *goBearer.BrandTokenData:
		ctx = context.WithValue(ctx, brandContextKey{}, v)
	}
	return ctx
}
