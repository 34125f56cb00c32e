package lock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAcquireAndRelease(t *testing.T) {
	dir := t.TempDir()

	l, err := Acquire(dir)
	require.NoError(t, err)
	require.NotNil(t, l)

	assert.NoError(t, l.Release())
}

func TestAcquireFailsWhenAlreadyHeld(t *testing.T) {
	dir := t.TempDir()

	first, err := Acquire(dir)
	require.NoError(t, err)
	defer first.Release()

	_, err = Acquire(dir)
	assert.Error(t, err)
}
