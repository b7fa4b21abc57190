package renderer

import (
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/etnz/txledger"
)

// amountFormatter decorates amounts with a currency symbol.
//
// Contrary to money.Formatter it keeps all the txledger.Places fractional
// digits, amounts are never rounded to the currency fraction.
type amountFormatter struct {
	grapheme string
	template string // like "$1" or "1 $"
	decimal  string
	thousand string
}

// newAmountFormatter returns a formatter for an ISO 4217 currency code.
// Unknown or empty codes render plain amounts.
func newAmountFormatter(code string) amountFormatter {
	cur := money.GetCurrency(strings.ToUpper(code))
	if code == "" || cur == nil {
		return amountFormatter{template: "1", decimal: "."}
	}
	return amountFormatter{
		grapheme: cur.Grapheme,
		template: cur.Template,
		decimal:  cur.Decimal,
		thousand: cur.Thousand,
	}
}

func (f amountFormatter) Format(a txledger.Amount) string {
	s := a.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")

	// group thousands from the right.
	if f.thousand != "" {
		var b strings.Builder
		for i, r := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				b.WriteString(f.thousand)
			}
			b.WriteRune(r)
		}
		intPart = b.String()
	}

	num := intPart + f.decimal + fracPart
	return sign + strings.NewReplacer("1", num, "$", f.grapheme).Replace(f.template)
}
