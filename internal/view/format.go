package view

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/polkiloo/orderdesk/internal/domain/model"
)

const (
	dateLayout     = "02.01.2006 15:04"
	currencySuffix = " €"
)

// FormatDate renders a backend timestamp as DD.MM.YYYY HH:mm.
// Values that cannot be parsed are returned unchanged.
func FormatDate(value string) string {
	t, err := model.ParseTimestamp(value)
	if err != nil {
		return value
	}
	return FormatTime(t)
}

// FormatTime renders t as DD.MM.YYYY HH:mm in its own location.
func FormatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

// FormatPrice renders an amount with two decimals, space separated thousands,
// a decimal comma and a trailing euro sign, e.g. 1000.5 -> "1 000,50 €".
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign = "-"
		fixed = fixed[1:]
	}

	whole, fraction, _ := strings.Cut(fixed, ".")
	return sign + groupThousands(whole) + "," + fraction + currencySuffix
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
