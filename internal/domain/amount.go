package domain

import (
	"bytes"

	"github.com/shopspring/decimal"
)

// Amount é um valor decimal de duas casas (moeda ou percentual).
// O texto recebido é preservado para que a validação aponte o campo
// mesmo quando o valor não é um número.
type Amount struct {
	decimal.Decimal
	raw     string
	invalid bool
}

func NewAmount(value string) Amount {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{raw: value, invalid: true}
	}
	return Amount{Decimal: d}
}

func AmountFromDecimal(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

// Raw retorna o texto a ser validado
func (a Amount) Raw() string {
	if a.invalid {
		return a.raw
	}
	return a.Decimal.String()
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(`"` + a.Decimal.StringFixed(2) + `"`), nil
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	*a = NewAmount(string(bytes.Trim(bytes.TrimSpace(data), `"`)))
	return nil
}
