package appointment

import (
	"time"

	"theorybook/models"
)

// NavigatorConfig fixes the geometry of the calendar paging widget.
type NavigatorConfig struct {
	// WeekStart is the weekday the desktop 7-day strip begins on.
	WeekStart time.Weekday
	// MobileWindowDays is the width of the mobile strip. The mobile
	// previous/next anchors step by the same width so repeated paging
	// covers the same dates the desktop strip does.
	MobileWindowDays int
}

// DefaultNavigatorConfig matches the production widget: Monday weeks,
// three-day mobile strip.
func DefaultNavigatorConfig() NavigatorConfig {
	return NavigatorConfig{WeekStart: time.Monday, MobileWindowDays: 3}
}

// Navigate computes the desktop and mobile date strips anchored at the
// selected date. Previous/next anchors are never clamped to the booking
// window; the view model's boundary flags carry that decision to the
// rendering layer instead. Pure function.
func Navigate(selected, today models.CalendarDate, cfg NavigatorConfig) models.NavigationState {
	if cfg.MobileWindowDays <= 0 {
		cfg.MobileWindowDays = 3
	}

	back := (int(selected.Weekday()) - int(cfg.WeekStart) + 7) % 7
	weekStart := selected.AddDays(-back)
	week := make([]models.CalendarDate, 7)
	for i := range week {
		week[i] = weekStart.AddDays(i)
	}

	// The mobile strip is centred on the selected date but clipped to the
	// globally navigable range, so strips at the edges shrink.
	floor := today.AddDays(1)
	ceiling := sixMonthCeiling(today)
	mobileStart := selected.AddDays(-(cfg.MobileWindowDays - 1) / 2)
	mobileEnd := mobileStart.AddDays(cfg.MobileWindowDays - 1)
	if mobileStart.Before(floor) {
		mobileStart = floor
	}
	if mobileEnd.After(ceiling) {
		mobileEnd = ceiling
	}
	var mobile []models.CalendarDate
	for d := mobileStart; !d.After(mobileEnd); d = d.AddDays(1) {
		mobile = append(mobile, d)
	}

	return models.NavigationState{
		WeekView:        week,
		WeekViewMobile:  mobile,
		PreviousDesktop: selected.AddDays(-7),
		NextDesktop:     selected.AddDays(7),
		PreviousMobile:  selected.AddDays(-cfg.MobileWindowDays),
		NextMobile:      selected.AddDays(cfg.MobileWindowDays),
	}
}
