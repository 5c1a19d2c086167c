package rules

import "github.com/inkpress-io/inkpress/internal/shared/authorization"

// BetaApprovalScore is the minimum application score for automatic approval
// recommendation.
const BetaApprovalScore = 70

// BetaScoreCap bounds the computed application score.
const BetaScoreCap = 100

// BetaApplicationInput holds the answers scored by
// CalculateBetaApplicationScore. Text fields are scored by length as a proxy
// for effort; reviewers still read the content.
type BetaApplicationInput struct {
	InterestStatement  string
	FeedbackPhilosophy string
	HoursPerWeek       int
	Communication      string
	PriorExperience    string
}

// CalculateBetaApplicationScore scores a beta reader application from 0 to
// BetaScoreCap.
func CalculateBetaApplicationScore(input BetaApplicationInput) int {
	score := 0

	switch {
	case len(input.InterestStatement) > 100:
		score += 25
	case len(input.InterestStatement) > 50:
		score += 15
	}

	switch {
	case len(input.FeedbackPhilosophy) > 200:
		score += 25
	case len(input.FeedbackPhilosophy) > 100:
		score += 15
	}

	switch {
	case input.HoursPerWeek >= 5:
		score += 20
	case input.HoursPerWeek >= 3:
		score += 15
	case input.HoursPerWeek >= 1:
		score += 10
	}

	if len(input.Communication) > 50 {
		score += 15
	}

	if len(input.PriorExperience) > 20 {
		score += 15
	}

	if score > BetaScoreCap {
		score = BetaScoreCap
	}
	return score
}

// BetaApplicationStatus tracks a beta application through review.
type BetaApplicationStatus string

const (
	BetaStatusNone     BetaApplicationStatus = "none"
	BetaStatusPending  BetaApplicationStatus = "pending"
	BetaStatusApproved BetaApplicationStatus = "approved"
	BetaStatusRejected BetaApplicationStatus = "rejected"
)

// CanApplyForBeta reports whether the user may submit a beta reader
// application. Any role may apply; a pending or approved application blocks
// reapplying, while rejected applicants may try again.
func CanApplyForBeta(_ authorization.UserRole, status BetaApplicationStatus) bool {
	switch status {
	case BetaStatusPending, BetaStatusApproved:
		return false
	}
	return true
}
