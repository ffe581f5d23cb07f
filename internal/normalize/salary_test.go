package normalize_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"bordful/internal/domain"
	"bordful/internal/normalize"
)

func fp(v float64) *float64 { return &v }

func TestAnnualizedUSD(t *testing.T) {
	cases := []struct {
		name   string
		salary *domain.Salary
		want   float64
	}{
		{"nil salary is the sentinel", nil, normalize.NoSalarySentinel},
		{"both bounds nil is the sentinel", &domain.Salary{Currency: "USD", Unit: domain.UnitYear}, normalize.NoSalarySentinel},
		{"yearly passes through", &domain.Salary{Max: fp(120000), Currency: "USD", Unit: domain.UnitYear}, 120000},
		{"hourly times 2080", &domain.Salary{Max: fp(50), Currency: "USD", Unit: domain.UnitHour}, 104000},
		{"monthly times 12", &domain.Salary{Max: fp(5000), Currency: "USD", Unit: domain.UnitMonth}, 60000},
		{"max preferred over min", &domain.Salary{Min: fp(80000), Max: fp(100000), Currency: "USD", Unit: domain.UnitYear}, 100000},
		{"min used when max absent", &domain.Salary{Min: fp(80000), Currency: "USD", Unit: domain.UnitYear}, 80000},
		{"eur converts at the fixed rate", &domain.Salary{Max: fp(100000), Currency: "EUR", Unit: domain.UnitYear}, 108000},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, normalize.AnnualizedUSD(tc.salary), 0.01)
		})
	}
}

func TestFormatSalary(t *testing.T) {
	cases := []struct {
		name     string
		salary   *domain.Salary
		showCode bool
		want     string
	}{
		{"no salary", nil, false, "Not specified"},
		{"typical range", &domain.Salary{Min: fp(50000), Max: fp(70000), Currency: "USD", Unit: domain.UnitYear}, false, "50k-70k/year"},
		{"single value", &domain.Salary{Min: fp(85000), Max: fp(85000), Currency: "USD", Unit: domain.UnitYear}, false, "85k/year"},
		{"min only", &domain.Salary{Min: fp(95000), Currency: "USD", Unit: domain.UnitYear}, false, "95k/year"},
		{"millions get one decimal", &domain.Salary{Max: fp(1200000), Currency: "USD", Unit: domain.UnitYear}, false, "1.2M/year"},
		{"round million drops the decimal", &domain.Salary{Max: fp(2000000), Currency: "USD", Unit: domain.UnitYear}, false, "2M/year"},
		// the larger bound picks the scale for both ends
		{"wide range shares a scale", &domain.Salary{Min: fp(5000), Max: fp(1200000), Currency: "USD", Unit: domain.UnitYear}, false, "5k-1.2M/year"},
		{"small values keep separators", &domain.Salary{Min: fp(1500), Max: fp(2500), Currency: "USD", Unit: domain.UnitMonth}, false, "1,500-2,500/month"},
		{"hourly stays verbatim", &domain.Salary{Min: fp(40), Max: fp(60), Currency: "USD", Unit: domain.UnitHour}, false, "40-60/hour"},
		{"currency code suffix", &domain.Salary{Min: fp(50000), Max: fp(70000), Currency: "EUR", Unit: domain.UnitYear}, true, "50k-70k/year (EUR)"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize.FormatSalary(tc.salary, tc.showCode))
		})
	}
}

func TestDisplayRange(t *testing.T) {
	j := domain.Job{Title: "Senior Gopher", Company: "Acme"}
	assert.Equal(t, "Senior Gopher at Acme", normalize.DisplayRange(j))

	j.Salary = &domain.Salary{Min: fp(50000), Max: fp(70000), Currency: "USD", Unit: domain.UnitYear}
	assert.Equal(t, "Senior Gopher at Acme (50k-70k/year)", normalize.DisplayRange(j))
}
