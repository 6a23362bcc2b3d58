package appointment

import (
	"context"

	"theorybook/models"
)

// AttemptSeed carries what earlier journey steps already know when the
// slot-selection flow begins.
type AttemptSeed struct {
	TestType    models.TestType           `json:"testType"`
	Centre      *models.Centre            `json:"centre,omitempty"`
	Eligibility *models.EligibilityWindow `json:"eligibility,omitempty"`
	Editing     bool                      `json:"editing"`
}

// RenderRequest is one render of the slot page. SelectedDate, when set,
// has already passed syntactic validation at the transport layer.
type RenderRequest struct {
	SelectedDate *models.CalendarDate
}

// RenderOutcome is either a view to draw or a redirect to an earlier
// journey step owned by an external collaborator.
type RenderOutcome struct {
	Redirect string                       `json:"redirect,omitempty"`
	View     *models.AppointmentViewModel `json:"view,omitempty"`
}

// DateEntryOutcome reports the result of a day/month/year form
// submission: a parsed date, or one rejection code with the raw input
// echoed back for the re-rendered form.
type DateEntryOutcome struct {
	Date      *models.CalendarDate  `json:"date,omitempty"`
	ErrorCode string                `json:"errorCode,omitempty"`
	Input     models.DateFieldInput `json:"input"`
}

// SelectOutcome names the next wizard step after a slot is chosen.
type SelectOutcome struct {
	Next string `json:"next"`
}

// AppointmentService drives the slot-selection flow over one booking
// attempt.
type AppointmentService interface {
	StartAttempt(ctx context.Context, seed AttemptSeed) (string, error)
	AssignCentre(ctx context.Context, sessionID string, centre models.Centre, eligibility *models.EligibilityWindow) error
	RenderAppointments(ctx context.Context, sessionID string, req RenderRequest) (*RenderOutcome, error)
	SubmitDate(ctx context.Context, sessionID string, input models.DateFieldInput) (*DateEntryOutcome, error)
	SelectSlot(ctx context.Context, sessionID, slotID string) (*SelectOutcome, error)
	SetChangeStep(ctx context.Context, sessionID string, step models.ChangeStep) error
}
