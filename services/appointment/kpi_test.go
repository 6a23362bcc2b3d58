package appointment

import (
	"testing"

	"theorybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKpiGateOpensUntilCaptured(t *testing.T) {
	attempt := &models.BookingAttempt{KpiCapture: models.KpiNotYetCaptured}
	assert.True(t, ShouldRequestKpis(attempt))

	CaptureKpisIfPresent(attempt, &models.KpiIdentifiers{AttemptCorrelationID: "corr-1"})
	assert.False(t, ShouldRequestKpis(attempt))
	require.NotNil(t, attempt.Kpis)
	assert.Equal(t, "corr-1", attempt.Kpis.AttemptCorrelationID)
}

func TestKpiCaptureIsAtMostOnce(t *testing.T) {
	attempt := &models.BookingAttempt{KpiCapture: models.KpiNotYetCaptured}
	CaptureKpisIfPresent(attempt, &models.KpiIdentifiers{AttemptCorrelationID: "corr-1"})

	// A later render returning different identifiers must not overwrite.
	CaptureKpisIfPresent(attempt, &models.KpiIdentifiers{AttemptCorrelationID: "corr-2"})
	assert.Equal(t, "corr-1", attempt.Kpis.AttemptCorrelationID)
}

func TestKpiEmptyIdentifiersLeaveGateOpen(t *testing.T) {
	attempt := &models.BookingAttempt{KpiCapture: models.KpiNotYetCaptured}

	CaptureKpisIfPresent(attempt, nil)
	assert.True(t, ShouldRequestKpis(attempt))

	CaptureKpisIfPresent(attempt, &models.KpiIdentifiers{})
	assert.True(t, ShouldRequestKpis(attempt))
	assert.Nil(t, attempt.Kpis)
}

func TestKpiCaptureCopiesIdentifiers(t *testing.T) {
	attempt := &models.BookingAttempt{KpiCapture: models.KpiNotYetCaptured}
	ids := &models.KpiIdentifiers{AttemptCorrelationID: "corr-1", InventoryCohortID: "cohort-1"}
	CaptureKpisIfPresent(attempt, ids)

	ids.AttemptCorrelationID = "mutated"
	assert.Equal(t, "corr-1", attempt.Kpis.AttemptCorrelationID)
}
