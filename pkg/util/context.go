package util

import (
	"context"
)

type key string

const (
	requestIDKey = key("x-request-id")
	offsetKey    = key("stream-offset")
)

// Fields returns the key-value pairs this package has set into ctx.
func Fields(ctx context.Context) map[string]interface{} {
	mapFields := make(map[string]interface{})
	mapFields["request_id"] = GetRequestID(ctx)
	if offset, ok := GetOffset(ctx); ok {
		mapFields["offset"] = offset
	}

	return mapFields
}

// WithOffset returns a context carrying the stream offset of the message being processed.
func WithOffset(ctx context.Context, offset int64) context.Context {
	return context.WithValue(ctx, offsetKey, offset)
}

// GetOffset returns the stream offset from context, if present.
func GetOffset(ctx context.Context) (int64, bool) {
	offset, ok := ctx.Value(offsetKey).(int64)
	return offset, ok
}
