package logging

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCollection(t *testing.T) {
	ctx := WithCollection(context.Background(), "users")
	assert.Equal(t, "users", GetCollection(ctx))
}

func TestWithGeneration(t *testing.T) {
	ctx := WithGeneration(context.Background(), 7)

	gen, ok := GetGeneration(ctx)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), gen)
}

func TestContextValues_NotPresent(t *testing.T) {
	ctx := context.Background()

	assert.Empty(t, GetCollection(ctx))
	_, ok := GetGeneration(ctx)
	assert.False(t, ok)
}
