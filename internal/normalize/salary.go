package normalize

import (
	"fmt"
	"strconv"
	"strings"

	"bordful/internal/catalog"
	"bordful/internal/domain"
)

// NoSalarySentinel is what AnnualizedUSD returns when a job carries no salary
// data. Callers must treat it as "unranked", never as a real negative salary.
const NoSalarySentinel = -1

// unitPerYear converts a salary quoted per unit onto a yearly basis.
var unitPerYear = map[domain.SalaryUnit]float64{
	domain.UnitHour:    2080,
	domain.UnitDay:     260,
	domain.UnitWeek:    52,
	domain.UnitMonth:   12,
	domain.UnitYear:    1,
	domain.UnitProject: 1,
}

// AnnualizedUSD puts a salary on a common yearly USD basis for sorting and
// bucketing only; the result is never displayed. It uses the max bound when
// present, else the min.
func AnnualizedUSD(s *domain.Salary) float64 {
	if s.Empty() {
		return NoSalarySentinel
	}
	v := 0.0
	if s.Max != nil {
		v = *s.Max
	} else if s.Min != nil {
		v = *s.Min
	}
	mult, ok := unitPerYear[s.Unit]
	if !ok {
		mult = 1
	}
	return v * mult * catalog.RateToUSD(s.Currency)
}

// FormatSalary renders a salary for display. Values >= 1M use an "X.YM" form
// (one decimal, trailing .0 dropped), values >= 10k use "Xk", smaller values
// use thousands separators. When both bounds are present and differ, the
// larger bound picks the scale and both bounds render in it, so a
// 5,000-1,200,000 range comes out "5k-1.2M" rather than "5,000-1.2M".
func FormatSalary(s *domain.Salary, showCurrencyCode bool) string {
	if s.Empty() {
		return "Not specified"
	}

	var lo, hi float64
	switch {
	case s.Min != nil && s.Max != nil:
		lo, hi = *s.Min, *s.Max
	case s.Max != nil:
		lo, hi = *s.Max, *s.Max
	default:
		lo, hi = *s.Min, *s.Min
	}

	compact := hi >= 10_000 || lo >= 10_000
	var amount string
	if lo == hi {
		amount = formatAmount(hi, compact)
	} else {
		amount = formatAmount(lo, compact) + "-" + formatAmount(hi, compact)
	}

	out := amount + "/" + string(s.Unit)
	if showCurrencyCode {
		out += " (" + s.Currency + ")"
	}
	return out
}

func formatAmount(v float64, compact bool) string {
	switch {
	case v >= 1_000_000:
		return trimDecimal(v/1_000_000, 1) + "M"
	case compact:
		if v >= 10_000 {
			return strconv.FormatFloat(v/1000, 'f', 0, 64) + "k"
		}
		return trimDecimal(v/1000, 1) + "k"
	default:
		return groupThousands(v)
	}
}

// trimDecimal formats with the given precision and drops a trailing ".0".
func trimDecimal(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}

func groupThousands(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := strconv.FormatFloat(v, 'f', 0, 64)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// DisplayRange is a convenience for feed titles: "Senior Gopher at Acme
// (50k-70k/year)". It omits the parenthetical when no salary exists.
func DisplayRange(j domain.Job) string {
	if j.Salary.Empty() {
		return fmt.Sprintf("%s at %s", j.Title, j.Company)
	}
	return fmt.Sprintf("%s at %s (%s)", j.Title, j.Company, FormatSalary(j.Salary, false))
}
