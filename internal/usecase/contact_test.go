package usecase_test

import (
	"context"
	"errors"
	"testing"

	"go-studio-backend/internal/domain"
	"go-studio-backend/internal/usecase"
	"go-studio-backend/pkg/apperror"
	"go-studio-backend/pkg/captcha"
	"go-studio-backend/pkg/email"
	"go-studio-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	logger.Init(false)
}

// Mocks

type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) SendSubmissionEmail(data email.SubmissionEmailData) error {
	return m.Called(data).Error(0)
}

func (m *MockNotifier) IsConfigured() bool {
	return m.Called().Bool(0)
}

type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) Insert(ctx context.Context, sub *domain.ArchivedSubmission) error {
	return m.Called(ctx, sub).Error(0)
}

func (m *MockSubmissionRepo) List(ctx context.Context, limit int) ([]domain.ArchivedSubmission, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ArchivedSubmission), args.Error(1)
}

type stubVerifier struct {
	err    error
	called bool
}

func (s *stubVerifier) Verify(context.Context, string, string) error {
	s.called = true
	return s.err
}

func validSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:            "Jo Smith",
		Email:           "jo@x.com",
		Timeline:        domain.TimelineFlexible,
		IsDecisionMaker: true,
		ProjectType:     domain.ProjectEcommerce,
		Budget:          domain.BudgetTenToTwenty,
		Message:         "Our checkout abandons constantly",
	}
}

func TestSubmitVerification(t *testing.T) {
	t.Run("dev bypass token skips verification entirely", func(t *testing.T) {
		verifier := &stubVerifier{err: errors.New("should never run")}
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendSubmissionEmail", mock.Anything).Return(nil)

		uc := usecase.NewContactUsecase(verifier, notifier, nil, true)
		sub := validSubmission()
		sub.CaptchaToken = captcha.DevBypassToken

		err := uc.Submit(context.Background(), sub, "203.0.113.9")
		assert.NoError(t, err)
		assert.False(t, verifier.called)
		notifier.AssertExpectations(t)
	})

	t.Run("bypass token is not honored in production mode", func(t *testing.T) {
		verifier := &stubVerifier{err: captcha.ErrVerificationFailed}
		notifier := new(MockNotifier)

		uc := usecase.NewContactUsecase(verifier, notifier, nil, false)
		sub := validSubmission()
		sub.CaptchaToken = captcha.DevBypassToken

		err := uc.Submit(context.Background(), sub, "203.0.113.9")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeVerification, appErr.Code)
		assert.True(t, verifier.called)
		notifier.AssertNotCalled(t, "SendSubmissionEmail", mock.Anything)
	})

	t.Run("production without a secret rejects every request with a configuration error", func(t *testing.T) {
		verifier := captcha.NewVerifier("", true)
		notifier := new(MockNotifier)

		uc := usecase.NewContactUsecase(verifier, notifier, nil, false)

		err := uc.Submit(context.Background(), validSubmission(), "203.0.113.9")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConfiguration, appErr.Code)
		notifier.AssertNotCalled(t, "SendSubmissionEmail", mock.Anything)
	})
}

func TestSubmitDelivery(t *testing.T) {
	t.Run("provider failure surfaces a delivery error, not success", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendSubmissionEmail", mock.Anything).Return(errors.New("smtp 550"))

		uc := usecase.NewContactUsecase(captcha.NoopVerifier{}, notifier, nil, true)

		err := uc.Submit(context.Background(), validSubmission(), "203.0.113.9")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeDelivery, appErr.Code)
	})

	t.Run("unconfigured provider is a configuration error, never a silent drop", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(false)

		uc := usecase.NewContactUsecase(captcha.NoopVerifier{}, notifier, nil, true)

		err := uc.Submit(context.Background(), validSubmission(), "203.0.113.9")
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConfiguration, appErr.Code)
	})

	t.Run("archive failure is tolerated when email succeeds", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendSubmissionEmail", mock.Anything).Return(nil)

		repo := new(MockSubmissionRepo)
		repo.On("Insert", mock.Anything, mock.Anything).Return(errors.New("db down"))

		uc := usecase.NewContactUsecase(captcha.NoopVerifier{}, notifier, repo, true)

		err := uc.Submit(context.Background(), validSubmission(), "203.0.113.9")
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("email carries every submitted field", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("IsConfigured").Return(true)
		notifier.On("SendSubmissionEmail", mock.MatchedBy(func(data email.SubmissionEmailData) bool {
			return data.SenderName == "Jo Smith" &&
				data.SenderEmail == "jo@x.com" &&
				data.Timeline == "flexible" &&
				data.IsDecisionMaker &&
				data.ProjectType == "ecommerce" &&
				data.Budget == "10-20k" &&
				data.Message == "Our checkout abandons constantly"
		})).Return(nil)

		uc := usecase.NewContactUsecase(captcha.NoopVerifier{}, notifier, nil, true)

		err := uc.Submit(context.Background(), validSubmission(), "203.0.113.9")
		assert.NoError(t, err)
		notifier.AssertExpectations(t)
	})
}

func TestListArchived(t *testing.T) {
	t.Run("no archive configured", func(t *testing.T) {
		uc := usecase.NewContactUsecase(captcha.NoopVerifier{}, new(MockNotifier), nil, true)

		_, err := uc.ListArchived(context.Background(), 10)
		var appErr *apperror.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeConfiguration, appErr.Code)
	})

	t.Run("limit is clamped to a sane default", func(t *testing.T) {
		repo := new(MockSubmissionRepo)
		repo.On("List", mock.Anything, 50).Return([]domain.ArchivedSubmission{}, nil)

		uc := usecase.NewContactUsecase(captcha.NoopVerifier{}, new(MockNotifier), repo, true)

		_, err := uc.ListArchived(context.Background(), -1)
		assert.NoError(t, err)
		repo.AssertExpectations(t)
	})
}
