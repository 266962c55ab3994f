package httpx

import "context"

type ctxKey string

const (
	CtxKeyUserID ctxKey = "user_id"
	CtxKeyRole   ctxKey = "role"
	CtxKeyClaims ctxKey = "claims" // full jwtx.Claims when needed
)

// Identity is the verified caller injected by AuthnMiddleware. Handlers
// receive it as an explicit context value, never as ambient global state.
type Identity struct {
	UserID string
	Role   string
}

// IdentityFromContext returns the verified identity attached by
// AuthnMiddleware, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, ok := ctx.Value(CtxKeyUserID).(string)
	if !ok || userID == "" {
		return Identity{}, false
	}
	role, _ := ctx.Value(CtxKeyRole).(string)
	return Identity{UserID: userID, Role: role}, true
}

func roleFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyRole).(string); ok {
		return v
	}
	return ""
}
