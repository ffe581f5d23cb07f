package catalog

import "strings"

// Currency is one entry in the closed currency table.
type Currency struct {
	Code string
	Name string
	// RateToUSD is an approximate, fixed conversion rate (1 unit -> USD).
	// It exists only to put salaries on a common scale for sorting and
	// bucketing, never for display.
	RateToUSD float64
}

// DefaultCurrency is the fallback when a raw value resolves to nothing.
const DefaultCurrency = "USD"

var currencies = []Currency{
	{"USD", "United States Dollar", 1.0},
	{"EUR", "Euro", 1.08},
	{"GBP", "British Pound", 1.27},
	{"JPY", "Japanese Yen", 0.0067},
	{"CNY", "Chinese Yuan", 0.14},
	{"AUD", "Australian Dollar", 0.66},
	{"CAD", "Canadian Dollar", 0.74},
	{"CHF", "Swiss Franc", 1.13},
	{"HKD", "Hong Kong Dollar", 0.13},
	{"SGD", "Singapore Dollar", 0.74},
	{"SEK", "Swedish Krona", 0.095},
	{"NOK", "Norwegian Krone", 0.093},
	{"DKK", "Danish Krone", 0.14},
	{"NZD", "New Zealand Dollar", 0.61},
	{"INR", "Indian Rupee", 0.012},
	{"BRL", "Brazilian Real", 0.20},
	{"MXN", "Mexican Peso", 0.059},
	{"ZAR", "South African Rand", 0.053},
	{"RUB", "Russian Ruble", 0.011},
	{"TRY", "Turkish Lira", 0.031},
	{"KRW", "South Korean Won", 0.00075},
	{"PLN", "Polish Zloty", 0.25},
	{"CZK", "Czech Koruna", 0.043},
	{"HUF", "Hungarian Forint", 0.0028},
	{"RON", "Romanian Leu", 0.22},
	{"BGN", "Bulgarian Lev", 0.55},
	{"ILS", "Israeli New Shekel", 0.27},
	{"AED", "United Arab Emirates Dirham", 0.27},
	{"SAR", "Saudi Riyal", 0.27},
	{"QAR", "Qatari Riyal", 0.27},
	{"KWD", "Kuwaiti Dinar", 3.25},
	{"BHD", "Bahraini Dinar", 2.65},
	{"OMR", "Omani Rial", 2.60},
	{"EGP", "Egyptian Pound", 0.021},
	{"NGN", "Nigerian Naira", 0.00065},
	{"KES", "Kenyan Shilling", 0.0077},
	{"GHS", "Ghanaian Cedi", 0.065},
	{"THB", "Thai Baht", 0.028},
	{"VND", "Vietnamese Dong", 0.000039},
	{"IDR", "Indonesian Rupiah", 0.000062},
	{"MYR", "Malaysian Ringgit", 0.22},
	{"PHP", "Philippine Peso", 0.017},
	{"PKR", "Pakistani Rupee", 0.0036},
	{"BDT", "Bangladeshi Taka", 0.0084},
	{"LKR", "Sri Lankan Rupee", 0.0033},
	{"CLP", "Chilean Peso", 0.0010},
	{"COP", "Colombian Peso", 0.00025},
	{"PEN", "Peruvian Sol", 0.27},
	{"ARS", "Argentine Peso", 0.0010},
	{"UAH", "Ukrainian Hryvnia", 0.024},
}

var (
	currencyByCode = func() map[string]Currency {
		m := make(map[string]Currency, len(currencies))
		for _, c := range currencies {
			m[c.Code] = c
		}
		return m
	}()
	currencyByName = func() map[string]Currency {
		m := make(map[string]Currency, len(currencies))
		for _, c := range currencies {
			m[strings.ToLower(c.Name)] = c
		}
		return m
	}()
)

// CurrencyByCode resolves a 3-letter code, case-insensitively.
func CurrencyByCode(code string) (Currency, bool) {
	c, ok := currencyByCode[strings.ToUpper(strings.TrimSpace(code))]
	return c, ok
}

// CurrencyByName resolves a full currency name, case-insensitively.
func CurrencyByName(name string) (Currency, bool) {
	c, ok := currencyByName[strings.ToLower(strings.TrimSpace(name))]
	return c, ok
}

// RateToUSD returns the fixed conversion rate for code, or 1.0 when the code
// is unknown (unknown codes have already been normalized away upstream; this
// keeps the function total).
func RateToUSD(code string) float64 {
	if c, ok := CurrencyByCode(code); ok {
		return c.RateToUSD
	}
	return 1.0
}
