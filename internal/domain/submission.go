package domain

import (
	"context"
	"time"
)

// ============================================================================
// Enumerations (Step 2 and Step 3 choices)
// ============================================================================

// Timeline represents valid project timeline options
type Timeline string

const (
	TimelineUrgent     Timeline = "urgent"
	TimelineOneToThree Timeline = "1-3-months"
	TimelineThreeToSix Timeline = "3-6-months"
	TimelineFlexible   Timeline = "flexible"
)

// ValidTimelines returns all valid timeline choices
func ValidTimelines() []Timeline {
	return []Timeline{TimelineUrgent, TimelineOneToThree, TimelineThreeToSix, TimelineFlexible}
}

// IsValid checks if the timeline is a known choice
func (t Timeline) IsValid() bool {
	for _, valid := range ValidTimelines() {
		if t == valid {
			return true
		}
	}
	return false
}

// ProjectType represents valid project classification options
type ProjectType string

const (
	ProjectWebsite   ProjectType = "website"
	ProjectEcommerce ProjectType = "ecommerce"
	ProjectWebApp    ProjectType = "webapp"
	ProjectBranding  ProjectType = "branding"
	ProjectOther     ProjectType = "other"
)

func ValidProjectTypes() []ProjectType {
	return []ProjectType{ProjectWebsite, ProjectEcommerce, ProjectWebApp, ProjectBranding, ProjectOther}
}

func (p ProjectType) IsValid() bool {
	for _, valid := range ValidProjectTypes() {
		if p == valid {
			return true
		}
	}
	return false
}

// Budget represents valid budget brackets
type Budget string

const (
	BudgetUnderFive   Budget = "under-5k"
	BudgetFiveToTen   Budget = "5-10k"
	BudgetTenToTwenty Budget = "10-20k"
	BudgetTwentyPlus  Budget = "20k-plus"
)

func ValidBudgets() []Budget {
	return []Budget{BudgetUnderFive, BudgetFiveToTen, BudgetTenToTwenty, BudgetTwentyPlus}
}

func (b Budget) IsValid() bool {
	for _, valid := range ValidBudgets() {
		if b == valid {
			return true
		}
	}
	return false
}

// ============================================================================
// Submission payload
// ============================================================================

// ContactSubmission is the full contact form payload. Fields are collected
// incrementally across three client-side steps but the endpoint only accepts
// the complete set, validated all at once.
type ContactSubmission struct {
	// Step 1: identity
	Name    string `json:"name" validate:"required,min=2,max=100,valid_name"`
	Email   string `json:"email" validate:"required,email,max=255"`
	Company string `json:"company" validate:"omitempty,max=150"`

	// Step 2: timeline and authority
	Timeline        Timeline `json:"timeline" validate:"required,oneof=urgent 1-3-months 3-6-months flexible"`
	IsDecisionMaker bool     `json:"isDecisionMaker" validate:"required"`

	// Step 3: project classification and brief
	ProjectType ProjectType `json:"projectType" validate:"required,oneof=website ecommerce webapp branding other"`
	Budget      Budget      `json:"budget" validate:"required,oneof=under-5k 5-10k 10-20k 20k-plus"`
	Message     string      `json:"message" validate:"required,min=10,max=4000"`

	// Anti-automation signals. ElapsedSeconds (time spent on step 1) is
	// recorded only, never gated on.
	CaptchaToken   string `json:"captchaToken" validate:"omitempty,max=2048"`
	ElapsedSeconds int    `json:"elapsedSeconds" validate:"omitempty,min=0"`
}

// ArchivedSubmission is a submission as stored in the optional archive.
type ArchivedSubmission struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	Company         string      `json:"company,omitempty"`
	Timeline        Timeline    `json:"timeline"`
	IsDecisionMaker bool        `json:"is_decision_maker"`
	ProjectType     ProjectType `json:"project_type"`
	Budget          Budget      `json:"budget"`
	Message         string      `json:"message"`
	ElapsedSeconds  int         `json:"elapsed_seconds"`
	SubmitterIP     string      `json:"-"`
	CreatedAt       time.Time   `json:"created_at"`
}

// ============================================================================
// Interfaces
// ============================================================================

// SubmissionRepository archives accepted submissions. Optional: deployments
// without a database run with a nil repository and keep the log line as the
// only durable record.
type SubmissionRepository interface {
	Insert(ctx context.Context, sub *ArchivedSubmission) error
	List(ctx context.Context, limit int) ([]ArchivedSubmission, error)
}

// ContactUsecase defines the server-side submission pipeline
type ContactUsecase interface {
	// Submit verifies, records and dispatches one complete submission.
	Submit(ctx context.Context, sub *ContactSubmission, remoteIP string) error

	// ListArchived returns archived submissions, newest first.
	ListArchived(ctx context.Context, limit int) ([]ArchivedSubmission, error)
}
