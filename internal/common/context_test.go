package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextValues(t *testing.T) {
	ctx := context.Background()
	assert.Equal(t, "", RequestIDFromContext(ctx))
	assert.Equal(t, "", DocumentFromContext(ctx))

	ctx = WithRequestID(ctx, "req-1")
	ctx = WithDocument(ctx, "page-104522.txt")
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
	assert.Equal(t, "page-104522.txt", DocumentFromContext(ctx))
}
