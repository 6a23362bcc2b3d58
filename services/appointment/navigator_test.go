package appointment

import (
	"testing"
	"time"

	"theorybook/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isoStrip(dates []models.CalendarDate) []string {
	out := make([]string, len(dates))
	for i, d := range dates {
		out[i] = d.ISO()
	}
	return out
}

func TestNavigateDesktopWeek(t *testing.T) {
	// Wednesday 18 March 2020 in a Monday-start week.
	selected := mustDate(t, "2020-03-18")
	today := mustDate(t, "2020-03-01")

	nav := Navigate(selected, today, DefaultNavigatorConfig())

	require.Len(t, nav.WeekView, 7)
	assert.Equal(t, []string{
		"2020-03-16", "2020-03-17", "2020-03-18", "2020-03-19",
		"2020-03-20", "2020-03-21", "2020-03-22",
	}, isoStrip(nav.WeekView))
	assert.Equal(t, "2020-03-11", nav.PreviousDesktop.ISO())
	assert.Equal(t, "2020-03-25", nav.NextDesktop.ISO())
}

func TestNavigateConfigurableWeekStart(t *testing.T) {
	selected := mustDate(t, "2020-03-18")
	today := mustDate(t, "2020-03-01")

	nav := Navigate(selected, today, NavigatorConfig{WeekStart: time.Sunday, MobileWindowDays: 3})
	assert.Equal(t, "2020-03-15", nav.WeekView[0].ISO())
	assert.Equal(t, "2020-03-21", nav.WeekView[6].ISO())
}

func TestNavigateWeekStartingOnSelected(t *testing.T) {
	// A Monday selection starts its own Monday week.
	selected := mustDate(t, "2020-03-16")
	today := mustDate(t, "2020-03-01")

	nav := Navigate(selected, today, DefaultNavigatorConfig())
	assert.Equal(t, "2020-03-16", nav.WeekView[0].ISO())
}

func TestNavigateMobileWindowCentred(t *testing.T) {
	selected := mustDate(t, "2020-03-18")
	today := mustDate(t, "2020-03-01")

	nav := Navigate(selected, today, DefaultNavigatorConfig())
	assert.Equal(t, []string{"2020-03-17", "2020-03-18", "2020-03-19"}, isoStrip(nav.WeekViewMobile))
	assert.Equal(t, "2020-03-15", nav.PreviousMobile.ISO())
	assert.Equal(t, "2020-03-21", nav.NextMobile.ISO())
}

func TestNavigateMobileWindowShrinksAtRangeEdges(t *testing.T) {
	// Selected is the first bookable day: nothing earlier is navigable.
	today := mustDate(t, "2020-03-16")
	selected := mustDate(t, "2020-03-17")

	nav := Navigate(selected, today, DefaultNavigatorConfig())
	assert.Equal(t, []string{"2020-03-17", "2020-03-18"}, isoStrip(nav.WeekViewMobile))

	// Selected is the last bookable day before the six-month horizon.
	today = mustDate(t, "2020-01-01")
	selected = mustDate(t, "2020-06-30")

	nav = Navigate(selected, today, DefaultNavigatorConfig())
	assert.Equal(t, []string{"2020-06-29", "2020-06-30"}, isoStrip(nav.WeekViewMobile))
}

func TestNavigateAnchorsAreUnclamped(t *testing.T) {
	// Clamping is a rendering decision; the anchors themselves walk past
	// the window edges.
	today := mustDate(t, "2020-01-01")
	selected := mustDate(t, "2020-01-02")

	nav := Navigate(selected, today, DefaultNavigatorConfig())
	assert.Equal(t, "2019-12-26", nav.PreviousDesktop.ISO())
	assert.Equal(t, "2019-12-30", nav.PreviousMobile.ISO())
}
