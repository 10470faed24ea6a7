// Package formflow implements the client-side multi-step contact form:
// three sequential steps gated by per-step validation, then one full-payload
// submission to the contact endpoint.
package formflow

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-studio-backend/internal/domain"
	"go-studio-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// State is the controller's position in the form session.
type State string

const (
	StateStepOne    State = "step1"
	StateStepTwo    State = "step2"
	StateStepThree  State = "step3"
	StateSubmitting State = "submitting"
	StateSuccess    State = "success"
	StateError      State = "error"
)

// Field groups per step. Step validation only looks at its own slice of the
// draft; submission re-validates everything.
var (
	stepOneFields   = []string{"Name", "Email", "Company"}
	stepTwoFields   = []string{"Timeline", "IsDecisionMaker"}
	stepThreeFields = []string{"ProjectType", "Budget", "Message"}
)

// ErrSubmitBlocked is returned when submit is attempted before the challenge
// widget produced a token on a captcha-enabled session.
var ErrSubmitBlocked = errors.New("formflow: verification token not yet produced")

// Controller owns one mutable draft for the whole form session. The draft is
// never reconstructed on navigation; each step's setters mutate only their
// own fields, so values survive moving back and forth.
type Controller struct {
	state     State
	draft     domain.ContactSubmission
	startedAt time.Time
	lastError string

	validate        *validator.Validate
	client          *Client
	captchaRequired bool
}

// NewController starts a session in step one and records the start timestamp
// used later as an anti-automation signal (recorded only, never gated on).
// captchaRequired reflects whether the challenge widget is configured; when
// true, submission stays blocked until a token is set.
func NewController(client *Client, captchaRequired bool) *Controller {
	return &Controller{
		state:           StateStepOne,
		startedAt:       time.Now(),
		validate:        validation.New(),
		client:          client,
		captchaRequired: captchaRequired,
	}
}

// State returns the current controller state.
func (c *Controller) State() State {
	return c.state
}

// Draft returns a copy of the in-progress submission, which may transiently
// hold invalid values while the user is typing.
func (c *Controller) Draft() domain.ContactSubmission {
	return c.draft
}

// LastError returns the retained message from the most recent failed
// submission, for display next to the retry action.
func (c *Controller) LastError() string {
	return c.lastError
}

// Step 1: identity

func (c *Controller) SetName(name string)       { c.draft.Name = name }
func (c *Controller) SetEmail(email string)     { c.draft.Email = email }
func (c *Controller) SetCompany(company string) { c.draft.Company = company }

// Step 2: timeline and authority

func (c *Controller) SetTimeline(t domain.Timeline) { c.draft.Timeline = t }
func (c *Controller) SetDecisionMaker(ok bool)      { c.draft.IsDecisionMaker = ok }

// Step 3: project classification and brief

func (c *Controller) SetProjectType(p domain.ProjectType) { c.draft.ProjectType = p }
func (c *Controller) SetBudget(b domain.Budget)           { c.draft.Budget = b }
func (c *Controller) SetMessage(msg string)               { c.draft.Message = msg }

// SetCaptchaToken records the token produced by the challenge widget.
func (c *Controller) SetCaptchaToken(token string) { c.draft.CaptchaToken = token }

// Next advances to the following step if the current step's fields validate.
// On failure the controller stays where it is and the field-scoped errors are
// returned for display; already-entered values are never touched.
func (c *Controller) Next() ([]validation.FieldError, error) {
	switch c.state {
	case StateStepOne:
		if errs := c.validateFields(stepOneFields); len(errs) > 0 {
			return errs, nil
		}
		c.state = StateStepTwo
	case StateStepTwo:
		if errs := c.validateFields(stepTwoFields); len(errs) > 0 {
			return errs, nil
		}
		c.state = StateStepThree
	default:
		return nil, fmt.Errorf("formflow: cannot advance from %s", c.state)
	}
	return nil, nil
}

// Back navigates to the previous step. Always allowed between steps, never
// re-validates, never discards entered values.
func (c *Controller) Back() error {
	switch c.state {
	case StateStepTwo:
		c.state = StateStepOne
	case StateStepThree, StateError:
		c.state = StateStepTwo
	default:
		return fmt.Errorf("formflow: cannot go back from %s", c.state)
	}
	return nil
}

// Submit performs the one full-payload submission. All three steps are
// re-validated first (defends against state loss from navigating back and
// forth). On server or network failure the error message is retained, the
// draft survives untouched, and the controller returns to step three so the
// user can resubmit without re-entering anything.
func (c *Controller) Submit(ctx context.Context) ([]validation.FieldError, error) {
	if c.state != StateStepThree && c.state != StateError {
		return nil, fmt.Errorf("formflow: cannot submit from %s", c.state)
	}

	all := make([]string, 0, len(stepOneFields)+len(stepTwoFields)+len(stepThreeFields))
	all = append(all, stepOneFields...)
	all = append(all, stepTwoFields...)
	all = append(all, stepThreeFields...)
	if errs := c.validateFields(all); len(errs) > 0 {
		return errs, nil
	}

	if c.captchaRequired && c.draft.CaptchaToken == "" {
		return nil, ErrSubmitBlocked
	}

	c.state = StateSubmitting
	c.draft.ElapsedSeconds = int(time.Since(c.startedAt).Seconds())

	if err := c.client.Submit(ctx, &c.draft); err != nil {
		c.lastError = err.Error()
		c.state = StateError
		return nil, err
	}

	c.state = StateSuccess
	c.lastError = ""
	c.draft = domain.ContactSubmission{}
	return nil, nil
}

func (c *Controller) validateFields(fields []string) []validation.FieldError {
	err := c.validate.StructPartial(&c.draft, fields...)
	if err == nil {
		return nil
	}
	return validation.FormatFieldErrors(err)
}
