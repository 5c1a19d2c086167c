package entitlement

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEntitlement(t *testing.T) {
	t.Run("creates open-ended grant", func(t *testing.T) {
		e, err := NewEntitlement(7, "series:saga-of-ash", OrderSource(42))
		require.NoError(t, err)

		assert.Equal(t, uint(7), e.UserID())
		assert.Equal(t, "series:saga-of-ash", e.Scope())
		assert.Equal(t, "order:42", e.Source())
		assert.Nil(t, e.EndsAt())
		assert.True(t, e.IsActive(time.Now().UTC()))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		_, err := NewEntitlement(0, "series:saga-of-ash", "order:42")
		assert.Error(t, err)

		_, err = NewEntitlement(7, "", "order:42")
		assert.Error(t, err)

		_, err = NewEntitlement(7, "series:saga-of-ash", "")
		assert.Error(t, err)
	})
}

func TestSourceTags(t *testing.T) {
	assert.Equal(t, "subscription:9", SubscriptionSource(9))
	assert.Equal(t, "order:42", OrderSource(42))
}

func TestEntitlement_IsActive(t *testing.T) {
	now := time.Now().UTC()
	end := now.Add(24 * time.Hour)

	tests := []struct {
		name     string
		startsAt time.Time
		endsAt   *time.Time
		at       time.Time
		want     bool
	}{
		{"within open-ended grant", now.Add(-time.Hour), nil, now, true},
		{"before start", now.Add(time.Hour), nil, now, false},
		{"within bounded grant", now.Add(-time.Hour), &end, now, true},
		{"after end", now.Add(-48 * time.Hour), &end, end.Add(time.Minute), false},
		{"exactly at end", now.Add(-time.Hour), &end, end, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := ReconstructEntitlement(1, 7, "series:saga-of-ash", "order:42",
				tt.startsAt, tt.endsAt, tt.startsAt)
			require.NoError(t, err)

			assert.Equal(t, tt.want, e.IsActive(tt.at))
		})
	}
}

func TestEntitlement_End(t *testing.T) {
	now := time.Now().UTC()
	e, err := ReconstructEntitlement(1, 7, "series:saga-of-ash", SubscriptionSource(9),
		now.Add(-time.Hour), nil, now.Add(-time.Hour))
	require.NoError(t, err)

	first := now
	e.End(first)
	require.NotNil(t, e.EndsAt())
	assert.Equal(t, first, *e.EndsAt())
	assert.False(t, e.IsActive(first.Add(time.Minute)))

	// Ending again keeps the original close time.
	e.End(first.Add(time.Hour))
	assert.Equal(t, first, *e.EndsAt())
}
