package lifecycle_test

import (
	"testing"

	"github.com/vbasilioo/workly-web/internal/lifecycle"
	"github.com/vbasilioo/workly-web/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
)

func TestTransition_Apply(t *testing.T) {
	tests := []struct {
		name     string
		t        lifecycle.Transition
		isActive bool
		want     bool
	}{
		{"deactivate active", lifecycle.Deactivate, true, false},
		{"deactivate inactive is idempotent", lifecycle.Deactivate, false, false},
		{"restore inactive", lifecycle.Restore, false, true},
		{"restore active is idempotent", lifecycle.Restore, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.t.Apply(tt.isActive))
		})
	}
}

func TestTransition_RoundTrip(t *testing.T) {
	for _, start := range []bool{true, false} {
		got := lifecycle.Restore.Apply(lifecycle.Deactivate.Apply(start))
		assert.True(t, got)
		assert.Equal(t, lifecycle.Active, lifecycle.Restore.Target())
	}
}

func TestPolicy(t *testing.T) {
	t.Run("soft kinds allow transitions but not hard delete", func(t *testing.T) {
		for _, kind := range []lifecycle.Kind{lifecycle.KindEmployee, lifecycle.KindAddress, lifecycle.KindSetting} {
			p := lifecycle.For(kind)

			assert.NoError(t, p.Allow(lifecycle.Deactivate))
			assert.NoError(t, p.Allow(lifecycle.Restore))
			assert.True(t, apperror.IsValidation(p.AllowHardDelete()), kind)
		}
	})

	t.Run("user is hard delete only", func(t *testing.T) {
		p := lifecycle.For(lifecycle.KindUser)

		assert.False(t, p.HasLifecycle())
		assert.NoError(t, p.AllowHardDelete())
		assert.True(t, apperror.IsValidation(p.Allow(lifecycle.Restore)))
		assert.True(t, apperror.IsValidation(p.Allow(lifecycle.Deactivate)))
	})

	t.Run("unknown transition", func(t *testing.T) {
		err := lifecycle.For(lifecycle.KindEmployee).Allow("archive")

		assert.True(t, apperror.IsValidation(err))
	})
}

func TestPartition(t *testing.T) {
	items := []struct {
		id     int
		active bool
	}{{1, true}, {2, false}, {3, true}, {4, false}}

	active, inactive := lifecycle.Partition(items, func(i struct {
		id     int
		active bool
	}) bool {
		return i.active
	})

	assert.Len(t, active, 2)
	assert.Equal(t, 1, active[0].id)
	assert.Equal(t, 3, active[1].id)
	assert.Len(t, inactive, 2)
	assert.Equal(t, 2, inactive[0].id)
}
