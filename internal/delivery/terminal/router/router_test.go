package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchRunsRegisteredHandler(t *testing.T) {
	r := New(nil)
	var calls []string
	r.Register("View All Departments", func(context.Context) error {
		calls = append(calls, "departments")
		return nil
	})

	handled, err := r.Dispatch(context.Background(), "View All Departments")
	require.NoError(t, err)
	assert.True(t, handled)
	assert.Equal(t, []string{"departments"}, calls)
}

func TestDispatchUnknownAction(t *testing.T) {
	handled, err := New(nil).Dispatch(context.Background(), "Fire Everyone")
	require.NoError(t, err)
	assert.False(t, handled)
}

func TestDispatchReturnsHandlerError(t *testing.T) {
	r := New(nil)
	boom := errors.New("relation \"role\" does not exist")
	r.Register("View All Roles", func(context.Context) error { return boom })

	handled, err := r.Dispatch(context.Background(), "View All Roles")
	assert.True(t, handled)
	assert.ErrorIs(t, err, boom)
}

func TestActionsKeepRegistrationOrder(t *testing.T) {
	r := New(nil)
	noop := func(context.Context) error { return nil }
	r.Register("b", noop)
	r.Register("a", noop)
	r.Register("c", noop)

	replaced := false
	r.Register("b", func(context.Context) error {
		replaced = true
		return nil
	})

	assert.Equal(t, []string{"b", "a", "c"}, r.Actions())
	_, err := r.Dispatch(context.Background(), "b")
	require.NoError(t, err)
	assert.True(t, replaced)
}
