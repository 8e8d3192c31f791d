package context

import "context"

type contextKey string

const (
	requestIDKey contextKey = "observability_request_id"
	kioskIDKey   contextKey = "observability_kiosk_id"
	memberIDKey  contextKey = "observability_member_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}

func WithKioskID(ctx context.Context, kioskID string) context.Context {
	if ctx == nil || kioskID == "" {
		return ctx
	}
	return context.WithValue(ctx, kioskIDKey, kioskID)
}

func KioskIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(kioskIDKey).(string)
	return value
}

func WithMemberID(ctx context.Context, memberID string) context.Context {
	if ctx == nil || memberID == "" {
		return ctx
	}
	return context.WithValue(ctx, memberIDKey, memberID)
}

func MemberIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(memberIDKey).(string)
	return value
}
