package router

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestMenuRouter_DispatchesInRegistrationOrder(t *testing.T) {
	r := New(zap.NewNop())
	var called []string
	for _, label := range []string{"View All Employees", "View All Roles", "Add Role"} {
		label := label
		r.Register(label, func(ctx context.Context) error {
			called = append(called, label)
			return nil
		})
	}

	assert.Equal(t, []string{"View All Employees", "View All Roles", "Add Role"}, r.Labels())

	ok, err := r.Dispatch(context.Background(), "View All Roles")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"View All Roles"}, called)
}

func TestMenuRouter_UnknownLabel(t *testing.T) {
	r := New(zap.NewNop())

	ok, err := r.Dispatch(context.Background(), "Fly")

	assert.False(t, ok)
	assert.NoError(t, err)
}

func TestMenuRouter_ReRegisterKeepsPosition(t *testing.T) {
	r := New(zap.NewNop())
	boom := errors.New("boom")
	r.Register("A", func(context.Context) error { return nil })
	r.Register("B", func(context.Context) error { return nil })
	r.Register("A", func(context.Context) error { return boom })

	assert.Equal(t, []string{"A", "B"}, r.Labels())
	_, err := r.Dispatch(context.Background(), "A")
	assert.ErrorIs(t, err, boom)
}
