package cart

import (
	"fmt"

	"github.com/alquigo/alquigo-backend/pkg/enums"
	pkgerrors "github.com/alquigo/alquigo-backend/pkg/errors"
	"github.com/shopspring/decimal"
)

var (
	dailyRateFactor   = decimal.New(1, -1) // 10% of the sale price per day
	hoursPerRentalDay = decimal.NewFromInt(8)
	weekDayEquivalent = decimal.NewFromInt(6)
	monthDayEquiv     = decimal.NewFromInt(25)
)

// DeriveRentalRate converts a sale price into a per-unit rental rate.
// The canonical daily rate is 10% of the sale price. An hour is priced
// as 1/8 of a day, a week as 6 daily rates, a month as 25 daily rates.
func DeriveRentalRate(basePrice decimal.Decimal, unit enums.DurationUnit) (decimal.Decimal, error) {
	daily := basePrice.Mul(dailyRateFactor)
	switch unit {
	case enums.DurationUnitHours:
		return daily.Div(hoursPerRentalDay), nil
	case enums.DurationUnitDays:
		return daily, nil
	case enums.DurationUnitWeeks:
		return daily.Mul(weekDayEquivalent), nil
	case enums.DurationUnitMonths:
		return daily.Mul(monthDayEquiv), nil
	default:
		return decimal.Zero, pkgerrors.New(pkgerrors.CodeInvalidUnit, fmt.Sprintf("unknown rental duration unit %q", unit))
	}
}
