package dashboarding

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFence(t *testing.T) {
	fence := NewFence()

	firstCtx, first := fence.Acquire(context.Background(), "sessao-1")
	otherCtx, other := fence.Acquire(context.Background(), "sessao-2")
	secondCtx, second := fence.Acquire(context.Background(), "sessao-1")

	assert.Less(t, first.Seq, second.Seq)

	assert.ErrorIs(t, firstCtx.Err(), context.Canceled)
	assert.False(t, first.Current())

	assert.NoError(t, secondCtx.Err())
	assert.True(t, second.Current())

	assert.NoError(t, otherCtx.Err())
	assert.True(t, other.Current())

	// liberar um ticket antigo não afeta o atual
	first.Release()
	assert.True(t, second.Current())

	second.Release()
	assert.ErrorIs(t, secondCtx.Err(), context.Canceled)
	assert.False(t, second.Current())

	other.Release()
}
