package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
)

func strongApplicationInput() rules.BetaApplicationInput {
	return rules.BetaApplicationInput{
		InterestStatement:  strings.Repeat("I have followed this serial since the first issue. ", 3),
		FeedbackPhilosophy: strings.Repeat("Specific, kind, and actionable notes on pacing and character. ", 4),
		HoursPerWeek:       5,
		Communication:      "Weekly written notes plus a short call when a draft lands.",
		PriorExperience:    "Two years running a critique circle.",
	}
}

func testApplication(t *testing.T) *BetaApplication {
	t.Helper()
	app, err := NewBetaApplication(7, strongApplicationInput())
	require.NoError(t, err)
	return app
}

func TestNewBetaApplication(t *testing.T) {
	t.Run("scores the answers at submission", func(t *testing.T) {
		input := strongApplicationInput()
		app, err := NewBetaApplication(7, input)
		require.NoError(t, err)

		assert.Equal(t, rules.CalculateBetaApplicationScore(input), app.Score())
		assert.Equal(t, rules.BetaStatusPending, app.Status())
		assert.True(t, app.RecommendedForApproval())
	})

	t.Run("thin answers fall below the approval bar", func(t *testing.T) {
		app, err := NewBetaApplication(7, rules.BetaApplicationInput{
			InterestStatement: "Sounds fun.",
			HoursPerWeek:      1,
		})
		require.NoError(t, err)

		assert.False(t, app.RecommendedForApproval())
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		_, err := NewBetaApplication(0, strongApplicationInput())
		assert.Error(t, err)

		_, err = NewBetaApplication(7, rules.BetaApplicationInput{HoursPerWeek: 2})
		assert.Error(t, err)

		input := strongApplicationInput()
		input.HoursPerWeek = -1
		_, err = NewBetaApplication(7, input)
		assert.Error(t, err)
	})
}

func TestBetaApplication_Review(t *testing.T) {
	t.Run("approve records the reviewer", func(t *testing.T) {
		app := testApplication(t)

		require.NoError(t, app.Approve(99, "strong application"))

		assert.Equal(t, rules.BetaStatusApproved, app.Status())
		require.NotNil(t, app.ReviewedBy())
		assert.Equal(t, uint(99), *app.ReviewedBy())
		require.NotNil(t, app.ReviewNotes())
		assert.Equal(t, "strong application", *app.ReviewNotes())
		require.NotNil(t, app.ReviewedAt())
	})

	t.Run("reject records the reviewer", func(t *testing.T) {
		app := testApplication(t)

		require.NoError(t, app.Reject(99, ""))

		assert.Equal(t, rules.BetaStatusRejected, app.Status())
		assert.Nil(t, app.ReviewNotes())
	})

	t.Run("rejects a second review", func(t *testing.T) {
		app := testApplication(t)
		require.NoError(t, app.Approve(99, ""))

		assert.Error(t, app.Reject(100, "changed my mind"))
		assert.Equal(t, rules.BetaStatusApproved, app.Status())
	})

	t.Run("requires a reviewer", func(t *testing.T) {
		app := testApplication(t)
		assert.Error(t, app.Approve(0, ""))
	})
}
