package user

import (
	"fmt"
	"time"

	"github.com/inkpress-io/inkpress/internal/domain/rules"
)

// BetaApplication is a reader's application to join the beta program. The
// score is computed from the answers when the application is submitted.
type BetaApplication struct {
	id                 uint
	userID             uint
	interestStatement  string
	feedbackPhilosophy string
	hoursPerWeek       int
	communication      string
	priorExperience    string
	score              int
	status             rules.BetaApplicationStatus
	reviewedBy         *uint
	reviewNotes        *string
	reviewedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewBetaApplication scores and submits an application.
func NewBetaApplication(userID uint, input rules.BetaApplicationInput) (*BetaApplication, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if input.InterestStatement == "" {
		return nil, fmt.Errorf("interest statement is required")
	}
	if input.HoursPerWeek < 0 {
		return nil, fmt.Errorf("hours per week cannot be negative")
	}

	now := time.Now().UTC()
	return &BetaApplication{
		userID:             userID,
		interestStatement:  input.InterestStatement,
		feedbackPhilosophy: input.FeedbackPhilosophy,
		hoursPerWeek:       input.HoursPerWeek,
		communication:      input.Communication,
		priorExperience:    input.PriorExperience,
		score:              rules.CalculateBetaApplicationScore(input),
		status:             rules.BetaStatusPending,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructBetaApplication reconstructs an application from persistence
func ReconstructBetaApplication(
	id, userID uint,
	interestStatement, feedbackPhilosophy string,
	hoursPerWeek int,
	communication, priorExperience string,
	score int,
	status rules.BetaApplicationStatus,
	reviewedBy *uint,
	reviewNotes *string,
	reviewedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*BetaApplication, error) {
	if id == 0 {
		return nil, fmt.Errorf("beta application ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &BetaApplication{
		id:                 id,
		userID:             userID,
		interestStatement:  interestStatement,
		feedbackPhilosophy: feedbackPhilosophy,
		hoursPerWeek:       hoursPerWeek,
		communication:      communication,
		priorExperience:    priorExperience,
		score:              score,
		status:             status,
		reviewedBy:         reviewedBy,
		reviewNotes:        reviewNotes,
		reviewedAt:         reviewedAt,
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func (a *BetaApplication) ID() uint                   { return a.id }
func (a *BetaApplication) UserID() uint               { return a.userID }
func (a *BetaApplication) InterestStatement() string  { return a.interestStatement }
func (a *BetaApplication) FeedbackPhilosophy() string { return a.feedbackPhilosophy }
func (a *BetaApplication) HoursPerWeek() int          { return a.hoursPerWeek }
func (a *BetaApplication) Communication() string      { return a.communication }
func (a *BetaApplication) PriorExperience() string    { return a.priorExperience }
func (a *BetaApplication) Score() int                 { return a.score }
func (a *BetaApplication) Status() rules.BetaApplicationStatus {
	return a.status
}
func (a *BetaApplication) ReviewedBy() *uint      { return a.reviewedBy }
func (a *BetaApplication) ReviewNotes() *string   { return a.reviewNotes }
func (a *BetaApplication) ReviewedAt() *time.Time { return a.reviewedAt }
func (a *BetaApplication) CreatedAt() time.Time   { return a.createdAt }
func (a *BetaApplication) UpdatedAt() time.Time   { return a.updatedAt }

// SetID sets the application ID (only for persistence layer use)
func (a *BetaApplication) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("beta application ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("beta application ID cannot be zero")
	}
	a.id = id
	return nil
}

// RecommendedForApproval reports whether the score clears the approval bar.
func (a *BetaApplication) RecommendedForApproval() bool {
	return a.score >= rules.BetaApprovalScore
}

// Approve records a reviewer's approval.
func (a *BetaApplication) Approve(reviewerID uint, notes string) error {
	return a.review(rules.BetaStatusApproved, reviewerID, notes)
}

// Reject records a reviewer's rejection.
func (a *BetaApplication) Reject(reviewerID uint, notes string) error {
	return a.review(rules.BetaStatusRejected, reviewerID, notes)
}

func (a *BetaApplication) review(status rules.BetaApplicationStatus, reviewerID uint, notes string) error {
	if reviewerID == 0 {
		return fmt.Errorf("reviewer ID is required")
	}
	if a.status != rules.BetaStatusPending {
		return fmt.Errorf("application has already been reviewed")
	}

	now := time.Now().UTC()
	a.status = status
	a.reviewedBy = &reviewerID
	a.reviewedAt = &now
	if notes != "" {
		a.reviewNotes = &notes
	}
	a.updatedAt = now
	return nil
}
