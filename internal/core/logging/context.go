package logging

import "context"

type contextKey string

const (
	collectionKey contextKey = "collection"
	generationKey contextKey = "generation"
)

// WithCollection adds a collection name to the context.
func WithCollection(ctx context.Context, collection string) context.Context {
	return context.WithValue(ctx, collectionKey, collection)
}

// WithGeneration adds the pagination generation a request belongs to.
func WithGeneration(ctx context.Context, gen uint64) context.Context {
	return context.WithValue(ctx, generationKey, gen)
}

// GetCollection retrieves the collection name from the context.
// Returns empty string if not present.
func GetCollection(ctx context.Context) string {
	if c, ok := ctx.Value(collectionKey).(string); ok {
		return c
	}
	return ""
}

// GetGeneration retrieves the generation from the context.
func GetGeneration(ctx context.Context) (uint64, bool) {
	gen, ok := ctx.Value(generationKey).(uint64)
	return gen, ok
}
