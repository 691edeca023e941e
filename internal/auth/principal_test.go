package auth

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalFromContext(t *testing.T) {
	userID := uuid.New()
	ctx := WithPrincipal(context.Background(), userID)

	got, ok := PrincipalFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, got)

	_, ok = PrincipalFromContext(context.Background())
	assert.False(t, ok)
}
