package enums

import "fmt"

// DurationUnit is the time granularity a rental is priced and measured in.
// It is a closed set: callers must parse raw input through ParseDurationUnit
// so an unrecognized unit never reaches pricing.
type DurationUnit string

const (
	DurationUnitHours  DurationUnit = "hours"
	DurationUnitDays   DurationUnit = "days"
	DurationUnitWeeks  DurationUnit = "weeks"
	DurationUnitMonths DurationUnit = "months"
)

var validDurationUnits = []DurationUnit{
	DurationUnitHours,
	DurationUnitDays,
	DurationUnitWeeks,
	DurationUnitMonths,
}

// String implements fmt.Stringer.
func (u DurationUnit) String() string {
	return string(u)
}

// IsValid reports whether the value is a known DurationUnit.
func (u DurationUnit) IsValid() bool {
	for _, candidate := range validDurationUnits {
		if candidate == u {
			return true
		}
	}
	return false
}

// ParseDurationUnit converts raw input into a DurationUnit.
func ParseDurationUnit(value string) (DurationUnit, error) {
	for _, candidate := range validDurationUnits {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid duration unit %q", value)
}
