package scope

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScopeContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, GetScopeFromContext(ctx).SessionID)

	ctx = SetScopeToContext(ctx, NewScope("abc"))
	assert.Equal(t, "abc", GetScopeFromContext(ctx).SessionID)
}
