package usecase

import (
	"context"
	"errors"
	"fmt"

	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/captcha"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"
)

// Notifier dispatches the operator notification for one submission.
// *email.EmailService is the production implementation.
type Notifier interface {
	SendSubmissionEmail(data email.SubmissionEmailData) error
	IsConfigured() bool
}

type contactUsecase struct {
	verifier captcha.Verifier
	notifier Notifier
	repo     domain.SubmissionRepository // nil when no archive is configured
	devMode  bool
}

// NewContactUsecase creates the submission pipeline. repo may be nil; the
// structured log line is then the only durable record.
func NewContactUsecase(verifier captcha.Verifier, notifier Notifier, repo domain.SubmissionRepository, devMode bool) domain.ContactUsecase {
	return &contactUsecase{
		verifier: verifier,
		notifier: notifier,
		repo:     repo,
		devMode:  devMode,
	}
}

// Submit runs the pipeline for one already-validated submission: bot
// verification, durable log record, best-effort archive, operator email.
// Nothing is retried; every failure is terminal and surfaced to the caller.
func (uc *contactUsecase) Submit(ctx context.Context, sub *domain.ContactSubmission, remoteIP string) error {
	// Escape hatch for local development only, regardless of whether a
	// verification secret is configured.
	bypassed := uc.devMode && sub.CaptchaToken == captcha.DevBypassToken
	if !bypassed {
		if err := uc.verifier.Verify(ctx, sub.CaptchaToken, remoteIP); err != nil {
			if errors.Is(err, captcha.ErrNotConfigured) {
				return apperror.Configuration(err)
			}
			return apperror.Verification(err)
		}
	}

	// Durable fallback record. If the provider fails below, this line is the
	// only copy that survives.
	logger.Log.Info("contact submission received",
		"name", sub.Name,
		"email", sub.Email,
		"company", sub.Company,
		"timeline", sub.Timeline,
		"is_decision_maker", sub.IsDecisionMaker,
		"project_type", sub.ProjectType,
		"budget", sub.Budget,
		"message", sub.Message,
		"elapsed_seconds", sub.ElapsedSeconds,
		"remote_ip", remoteIP,
		"captcha_bypassed", bypassed,
	)

	if uc.repo != nil {
		archived := &domain.ArchivedSubmission{
			Name:            sub.Name,
			Email:           sub.Email,
			Company:         sub.Company,
			Timeline:        sub.Timeline,
			IsDecisionMaker: sub.IsDecisionMaker,
			ProjectType:     sub.ProjectType,
			Budget:          sub.Budget,
			Message:         sub.Message,
			ElapsedSeconds:  sub.ElapsedSeconds,
			SubmitterIP:     remoteIP,
		}
		if err := uc.repo.Insert(ctx, archived); err != nil {
			// Archive is best-effort; the log record above already holds the
			// submission.
			logger.Log.Warn("failed to archive submission", "error", err.Error())
		}
	}

	if !uc.notifier.IsConfigured() {
		return apperror.Configuration(fmt.Errorf("email provider not configured"))
	}

	if err := uc.notifier.SendSubmissionEmail(email.SubmissionEmailData{
		SenderName:      sub.Name,
		SenderEmail:     sub.Email,
		Company:         sub.Company,
		Timeline:        string(sub.Timeline),
		IsDecisionMaker: sub.IsDecisionMaker,
		ProjectType:     string(sub.ProjectType),
		Budget:          string(sub.Budget),
		Message:         sub.Message,
		ElapsedSeconds:  sub.ElapsedSeconds,
	}); err != nil {
		return apperror.Delivery(fmt.Errorf("failed to send notification email: %w", err))
	}

	return nil
}

// ListArchived returns archived submissions for the admin surface.
func (uc *contactUsecase) ListArchived(ctx context.Context, limit int) ([]domain.ArchivedSubmission, error) {
	if uc.repo == nil {
		return nil, apperror.Configuration(fmt.Errorf("submission archive not configured"))
	}
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	return uc.repo.List(ctx, limit)
}
