package appointment

import (
	"context"
	"errors"
	"time"

	slotsRepo "theorybook/database/repository/slots"
	"theorybook/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Wizard steps owned by external collaborators.
const (
	RouteCentreSearch   = "/choose-test-centre"
	RouteCheckAnswers   = "/check-your-answers"
	RouteCheckChange    = "/check-change"
	RouteChangeDate     = "/change-date"
	RouteChangeLocation = "/change-location"
	RouteManageChange   = "/manage-change"
)

const availabilityErrMsg = "We cannot show appointment availability right now. Try again later."
const noEligibleDatesMsg = "There are no appointments available in your eligible period."

// ServiceConfig fixes the per-deployment policy knobs of the flow.
type ServiceConfig struct {
	NearTerm  NearTermPolicy
	Navigator NavigatorConfig
}

// DefaultAppointmentService is the production appointment selection flow.
type DefaultAppointmentService struct {
	Slots  slotsRepo.SlotRepository
	Store  AttemptStore
	Zone   *time.Location
	Now    func() time.Time
	Config ServiceConfig
	Logger *zap.Logger
}

func (s *DefaultAppointmentService) today() models.CalendarDate {
	return models.DateOf(s.Now(), s.Zone)
}

// nearTermPolicyFor picks the rejection variant per flow: instructor flows
// reject only same-day booking, the candidate flow also rejects tomorrow.
func (s *DefaultAppointmentService) nearTermPolicyFor(testType models.TestType) NearTermPolicy {
	if testType == models.TestTypeInstructor || testType == models.TestTypeInstructorRetest {
		return RejectTodayOnly
	}
	return s.Config.NearTerm
}

// StartAttempt creates a new booking attempt record seeded with what the
// earlier journey steps already know.
func (s *DefaultAppointmentService) StartAttempt(ctx context.Context, seed AttemptSeed) (string, error) {
	if seed.TestType == "" {
		return "", NewInvariantError("attempt started without a test type")
	}

	attempt := &models.BookingAttempt{
		SessionID:   uuid.New().String(),
		Stage:       models.StageNoCentre,
		TestType:    seed.TestType,
		Centre:      seed.Centre,
		Eligibility: seed.Eligibility,
		KpiCapture:  models.KpiNotYetCaptured,
		Editing:     seed.Editing,
	}
	if seed.Centre != nil {
		attempt.Stage = models.StageAwaitingDate
	}
	if seed.Editing {
		attempt.Edit = &models.EditRecord{}
	}

	if err := s.Store.Save(ctx, attempt); err != nil {
		return "", err
	}
	s.Logger.Info("appointment attempt started",
		zap.String("sessionID", attempt.SessionID),
		zap.String("testType", string(attempt.TestType)),
		zap.Bool("editing", attempt.Editing))
	return attempt.SessionID, nil
}

// AssignCentre records the centre chosen through the external search
// service and advances the attempt to date selection.
func (s *DefaultAppointmentService) AssignCentre(ctx context.Context, sessionID string, centre models.Centre, eligibility *models.EligibilityWindow) error {
	attempt, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	attempt.Centre = &centre
	if eligibility != nil {
		attempt.Eligibility = eligibility
	}
	if attempt.Stage == models.StageNoCentre {
		attempt.Stage = models.StageAwaitingDate
	}
	return s.Store.Save(ctx, attempt)
}

// RenderAppointments answers "what does the candidate see" for one render
// of the slot page: booking window, fetched and partitioned slots, the
// navigation strips, boundary flags, and the once-only KPI capture.
func (s *DefaultAppointmentService) RenderAppointments(ctx context.Context, sessionID string, req RenderRequest) (*RenderOutcome, error) {
	attempt, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if attempt.Centre == nil {
		if attempt.Stage != models.StageNoCentre {
			return nil, NewInvariantError("attempt %s is past centre selection but has no centre", sessionID)
		}
		return &RenderOutcome{Redirect: RouteCentreSearch}, nil
	}

	today := s.today()
	window := ComputeBookingWindow(today, attempt.Eligibility, attempt.TestType)

	selected := s.resolveSelectedDate(attempt, req, window)
	view := &models.AppointmentViewModel{
		SelectedDate: selected,
		Centre:       *attempt.Centre,
		TestType:     attempt.TestType,
		Window:       window,
		Navigation:   Navigate(selected, today, s.Config.Navigator),
		Editing:      attempt.Editing,
		BackLink:     backLink(attempt),
	}
	view.IsBeforeToday = view.Navigation.PreviousDesktop.Before(today)
	view.IsAfterSixMonths = view.Navigation.NextDesktop.After(sixMonthCeiling(today))
	view.IsBeforeEligible = selected.Before(window.Earliest)
	view.IsAfterEligible = selected.After(window.Latest)

	if window.Inverted() {
		view.AvailabilityError = noEligibleDatesMsg
		return &RenderOutcome{View: view}, nil
	}

	// The first-selected-date signal is passed only while the KPI gate is
	// still open; once identifiers are captured the repository must never
	// see it again.
	var firstSignal *models.CalendarDate
	if ShouldRequestKpis(attempt) {
		if attempt.FirstSelectedDate != nil {
			firstSignal = attempt.FirstSelectedDate
		} else {
			firstSignal = &selected
		}
	}

	result, err := s.Slots.GetSlots(ctx, slotsRepo.SlotQuery{
		Date:              selected,
		CentreID:          attempt.Centre.ID,
		TestType:          attempt.TestType,
		Eligibility:       attempt.Eligibility,
		FirstSelectedDate: firstSignal,
	})
	if err != nil {
		s.Logger.Error("slot fetch failed",
			zap.String("sessionID", sessionID),
			zap.String("centreID", attempt.Centre.ID),
			zap.String("date", selected.ISO()),
			zap.Error(&FetchError{Err: err}))
		view.AvailabilityError = availabilityErrMsg
		return &RenderOutcome{View: view}, nil
	}

	if attempt.FirstSelectedDate == nil {
		attempt.FirstSelectedDate = &selected
	}
	if attempt.FirstSelectedCentre == "" {
		attempt.FirstSelectedCentre = attempt.Centre.ID
	}
	CaptureKpisIfPresent(attempt, result.Kpis)

	if attempt.Stage == models.StageAwaitingDate {
		attempt.Stage = models.StageSlotsDisplayed
	}
	attempt.StoredSearchDate = &selected
	if err := s.Store.Save(ctx, attempt); err != nil {
		return nil, err
	}

	view.Slots = PartitionSlots(result.SlotsByDate[selected.ISO()], selected, s.Zone)
	return &RenderOutcome{View: view}, nil
}

// resolveSelectedDate picks the date to render: the request's, then the
// attempt's stored search state, then the soonest navigable date.
func (s *DefaultAppointmentService) resolveSelectedDate(attempt *models.BookingAttempt, req RenderRequest, window models.BookingWindow) models.CalendarDate {
	if req.SelectedDate != nil {
		return *req.SelectedDate
	}
	if attempt.StoredSearchDate != nil {
		return *attempt.StoredSearchDate
	}
	return window.Earliest
}

// SubmitDate validates a day/month/year form submission. A rejection is
// reported through the outcome, one code per call, with the raw input
// echoed back so the form re-renders with prior input preserved.
func (s *DefaultAppointmentService) SubmitDate(ctx context.Context, sessionID string, input models.DateFieldInput) (*DateEntryOutcome, error) {
	attempt, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	date, err := ParseDateField(input, s.today(), s.nearTermPolicyFor(attempt.TestType))
	if err != nil {
		var verr *ValidationError
		if errors.As(err, &verr) {
			return &DateEntryOutcome{ErrorCode: verr.Code, Input: input}, nil
		}
		return nil, err
	}

	attempt.StoredSearchDate = &date
	if err := s.Store.Save(ctx, attempt); err != nil {
		return nil, err
	}
	return &DateEntryOutcome{Date: &date, Input: input}, nil
}

// SelectSlot records the chosen slot's start time on the attempt, or on
// the edit record when the attempt is amending a confirmed booking, and
// names the confirmation step that follows.
func (s *DefaultAppointmentService) SelectSlot(ctx context.Context, sessionID, slotID string) (*SelectOutcome, error) {
	attempt, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if attempt.Stage != models.StageSlotsDisplayed && attempt.Stage != models.StageSlotChosen {
		return nil, NewInvariantError("attempt %s cannot choose a slot from stage %s", sessionID, attempt.Stage)
	}

	start, err := time.Parse(time.RFC3339, slotID)
	if err != nil {
		return nil, NewValidationError("slotNotValid", "slot identifier is not a recognized timestamp: "+slotID)
	}
	start = start.In(s.Zone)

	next := RouteCheckAnswers
	if attempt.Editing {
		if attempt.Edit == nil {
			attempt.Edit = &models.EditRecord{}
		}
		attempt.Edit.DateTime = &start
		next = RouteCheckChange
	} else {
		attempt.DateTime = &start
	}
	attempt.Stage = models.StageSlotChosen

	if err := s.Store.Save(ctx, attempt); err != nil {
		return nil, err
	}
	s.Logger.Info("appointment slot chosen",
		zap.String("sessionID", sessionID),
		zap.Time("start", start),
		zap.Bool("editing", attempt.Editing))
	return &SelectOutcome{Next: next}, nil
}

// SetChangeStep remembers which prior step the candidate chose to alter in
// the re-scheduling sub-flow; the slot page's back target depends on it.
func (s *DefaultAppointmentService) SetChangeStep(ctx context.Context, sessionID string, step models.ChangeStep) error {
	attempt, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return err
	}
	if !attempt.Editing {
		return NewInvariantError("attempt %s is not amending a booking", sessionID)
	}
	if attempt.Edit == nil {
		attempt.Edit = &models.EditRecord{}
	}
	attempt.Edit.ChangeStep = step
	return s.Store.Save(ctx, attempt)
}

func backLink(attempt *models.BookingAttempt) string {
	if !attempt.Editing {
		return RouteCentreSearch
	}
	if attempt.Edit != nil {
		switch attempt.Edit.ChangeStep {
		case models.ChangeDate:
			return RouteChangeDate
		case models.ChangeLocation:
			return RouteChangeLocation
		}
	}
	return RouteManageChange
}
