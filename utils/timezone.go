package utils

import (
	"log"
	"sync"
	"time"

	"theorybook/config"
)

var (
	refLocOnce sync.Once
	refLoc     *time.Location
)

// ReferenceLocation returns the single time zone in which all midnight and
// midday boundaries are interpreted, loaded from REFERENCE_TIMEZONE. A bad
// zone name is fatal: every date computation in the engine depends on it.
func ReferenceLocation() *time.Location {
	refLocOnce.Do(func() {
		name := config.AppConfig.ReferenceTimezone
		if name == "" {
			name = "Europe/London"
		}
		loc, err := time.LoadLocation(name)
		if err != nil {
			log.Fatalf("Invalid REFERENCE_TIMEZONE %q: %v", name, err)
		}
		refLoc = loc
	})
	return refLoc
}
