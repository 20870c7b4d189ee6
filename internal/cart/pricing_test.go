package cart

import (
	"testing"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

func TestDeriveRentalRatePerUnit(t *testing.T) {
	base := decimal.NewFromInt(100000)

	cases := []struct {
		unit enums.DurationUnit
		want decimal.Decimal
	}{
		{enums.DurationUnitHours, decimal.NewFromInt(1250)},
		{enums.DurationUnitDays, decimal.NewFromInt(10000)},
		{enums.DurationUnitWeeks, decimal.NewFromInt(60000)},
		{enums.DurationUnitMonths, decimal.NewFromInt(250000)},
	}

	for _, tc := range cases {
		got, err := DeriveRentalRate(base, tc.unit)
		if err != nil {
			t.Fatalf("derive %s: %v", tc.unit, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("unit %s: expected %s, got %s", tc.unit, tc.want, got)
		}
	}
}

func TestDeriveRentalRateZeroBasePrice(t *testing.T) {
	for _, unit := range []enums.DurationUnit{
		enums.DurationUnitHours,
		enums.DurationUnitDays,
		enums.DurationUnitWeeks,
		enums.DurationUnitMonths,
	} {
		got, err := DeriveRentalRate(decimal.Zero, unit)
		if err != nil {
			t.Fatalf("derive %s: %v", unit, err)
		}
		if !got.IsZero() {
			t.Fatalf("unit %s: expected zero rate, got %s", unit, got)
		}
	}
}

func TestDeriveRentalRateUnknownUnit(t *testing.T) {
	_, err := DeriveRentalRate(decimal.NewFromInt(100000), enums.DurationUnit("fortnights"))
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Code() != pkgerrors.CodeInvalidUnit {
		t.Fatalf("expected invalid unit error, got %v", err)
	}
}
