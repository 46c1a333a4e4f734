package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/kauri-hr/payroll-backend-go/internal/domain/timesheet"
)

// Statutory limits applied by the entry builder.
var (
	// MinimumHourlyWage is the adult minimum wage. Rates below it are
	// rejected, never clamped.
	MinimumHourlyWage = decimal.RequireFromString("22.70")

	// MaxWeeklyHours is the standard maximum working week. Exceeding it
	// raises a warning, not an error.
	MaxWeeklyHours = decimal.NewFromInt(40)
)

// Pay multipliers for worked-hour categories.
var (
	MultiplierStandard      = decimal.RequireFromString("1.0")
	MultiplierOvertimeTier1 = decimal.RequireFromString("1.5")
	MultiplierOvertimeTier2 = decimal.RequireFromString("2.0")
	MultiplierHolidayTable  = decimal.RequireFromString("2.0")
	MultiplierHolidayPay    = decimal.RequireFromString("2.5")
)

// TODO: the generic rate table pays public holidays at 2.0x while the
// holiday-pay path in PremiumRate uses 2.5x. Both values are live in
// production call sites; which one is correct is awaiting a product
// decision, so neither has been unified onto the other.

// RateForCategory resolves the generic hourly rate for a recorded time
// entry category. Used by the rate preview endpoint.
func RateForCategory(base decimal.Decimal, category timesheet.Category) decimal.Decimal {
	switch category {
	case timesheet.CategoryOvertime:
		return base.Mul(MultiplierOvertimeTier1)
	case timesheet.CategoryPublicHoliday:
		return base.Mul(MultiplierHolidayTable)
	default:
		return base.Mul(MultiplierStandard)
	}
}

// PremiumTier is a pay-weighting bucket used when computing actual pay
// amounts from aggregated hours.
type PremiumTier int

const (
	TierStandard PremiumTier = iota
	TierOvertime1
	TierOvertime2
	TierPublicHoliday
)

// PremiumRate resolves the hourly rate for a premium tier. This is the
// rate used by the entry builder when turning hours into money.
func PremiumRate(base decimal.Decimal, tier PremiumTier) decimal.Decimal {
	switch tier {
	case TierOvertime1:
		return base.Mul(MultiplierOvertimeTier1)
	case TierOvertime2:
		return base.Mul(MultiplierOvertimeTier2)
	case TierPublicHoliday:
		return base.Mul(MultiplierHolidayPay)
	default:
		return base.Mul(MultiplierStandard)
	}
}
