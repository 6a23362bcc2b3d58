package handlers

import (
	"errors"
	"net/http"

	"theorybook/models"
	"theorybook/services/appointment"
	"theorybook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes the slot-selection wizard as JSON endpoints
// for the rendering front end.
type AppointmentHandler struct {
	Service appointment.AppointmentService
	Logger  *zap.Logger
}

func NewAppointmentHandler(svc appointment.AppointmentService, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{Service: svc, Logger: logger}
}

// StartAttempt begins a booking attempt seeded from earlier journey steps.
func (h *AppointmentHandler) StartAttempt(c *gin.Context) {
	var seed appointment.AttemptSeed
	if err := c.ShouldBindJSON(&seed); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID, err := h.Service.StartAttempt(c.Request.Context(), seed)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// AssignCentre records the centre resolved by the external search service.
func (h *AppointmentHandler) AssignCentre(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Centre      models.Centre             `json:"centre" binding:"required"`
		Eligibility *models.EligibilityWindow `json:"eligibility,omitempty"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.AssignCentre(c.Request.Context(), sessionID, input.Centre, input.Eligibility); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

// RenderAppointments returns the slot page view model. A malformed
// selectedDate query parameter is rejected here, before the orchestrator.
func (h *AppointmentHandler) RenderAppointments(c *gin.Context) {
	sessionID := c.Param("sessionID")

	var req appointment.RenderRequest
	if raw := c.Query("selectedDate"); raw != "" {
		date, err := models.ParseCalendarDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "selectedDate must be YYYY-MM-DD"})
			return
		}
		req.SelectedDate = &date
	}

	outcome, err := h.Service.RenderAppointments(c.Request.Context(), sessionID, req)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if outcome.Redirect != "" {
		c.JSON(http.StatusOK, gin.H{"redirect": outcome.Redirect})
		return
	}
	c.JSON(http.StatusOK, gin.H{"view": outcome.View})
}

// SubmitDate validates the day/month/year form. Rejections come back with
// the single highest-priority error code and the submitted input echoed.
func (h *AppointmentHandler) SubmitDate(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input models.DateFieldInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcome, err := h.Service.SubmitDate(c.Request.Context(), sessionID, input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if outcome.ErrorCode != "" {
		c.JSON(http.StatusOK, gin.H{"errorCode": outcome.ErrorCode, "input": outcome.Input})
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": outcome.Date})
}

// SelectSlot records the chosen slot and reports the next wizard step.
func (h *AppointmentHandler) SelectSlot(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		SlotID string `json:"slotId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	outcome, err := h.Service.SelectSlot(c.Request.Context(), sessionID, input.SlotID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"next": outcome.Next})
}

// SetChangeStep records which step of a confirmed booking is being
// altered in the re-scheduling sub-flow.
func (h *AppointmentHandler) SetChangeStep(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		ChangeStep models.ChangeStep `json:"changeStep" binding:"required,oneof=time date location"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	if err := h.Service.SetChangeStep(c.Request.Context(), sessionID, input.ChangeStep); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionID": sessionID})
}

func (h *AppointmentHandler) respondError(c *gin.Context, err error) {
	var verr *appointment.ValidationError
	if errors.As(err, &verr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errorCode": verr.Code})
		return
	}
	var ierr *appointment.InvariantError
	if errors.As(err, &ierr) {
		// A skipped journey stage is a defect, not a user error.
		h.Logger.Error("appointment flow invariant violated", zap.Error(err))
		utils.JSONError(c, http.StatusConflict, "booking journey out of order", ierr.Message)
		return
	}
	utils.JSONError(c, http.StatusNotFound, "booking attempt unavailable", err.Error())
}
