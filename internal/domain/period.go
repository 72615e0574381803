package domain

import (
	"database/sql/driver"
	"fmt"
	"strings"
	"time"
)

const (
	PeriodInputLayout  = "2006-01-02"
	PeriodOutputLayout = "Jan"
)

// Period é uma data de competência (mês/ano). Na entrada aceita uma data
// ISO 8601 completa e guarda apenas o primeiro dia do mês; na saída é
// apresentada como a abreviação do mês.
type Period struct {
	time.Time
	raw     string
	invalid bool
}

func NewPeriod(t time.Time) Period {
	return Period{Time: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
}

func ParsePeriod(value string) (Period, error) {
	t, err := time.Parse(PeriodInputLayout, value)
	if err != nil {
		return Period{raw: value, invalid: true}, err
	}
	return NewPeriod(t), nil
}

// Raw retorna o texto a ser validado
func (p Period) Raw() string {
	if p.invalid {
		return p.raw
	}
	return p.Time.Format(PeriodInputLayout)
}

// Label retorna a representação curta do mês (ex: Jan)
func (p Period) Label() string {
	return p.Time.Format(PeriodOutputLayout)
}

// Key identifica o período no formato yyyy-mm
func (p Period) Key() string {
	return p.Time.Format("2006-01")
}

// Next retorna o primeiro dia do mês seguinte
func (p Period) Next() Period {
	return NewPeriod(p.Time.AddDate(0, 1, 0))
}

func (p Period) Contains(t time.Time) bool {
	t = t.UTC()
	return !t.Before(p.Time) && t.Before(p.Next().Time)
}

func (p Period) MarshalJSON() ([]byte, error) {
	return []byte(`"` + p.Label() + `"`), nil
}

func (p *Period) UnmarshalJSON(data []byte) error {
	// erros de formato são reportados pela validação do payload
	*p, _ = ParsePeriod(strings.Trim(strings.TrimSpace(string(data)), `"`))
	return nil
}

func (p Period) Value() (driver.Value, error) {
	return p.Time, nil
}

func (p *Period) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*p = NewPeriod(v)
		return nil
	case string:
		parsed, err := ParsePeriod(v[:min(len(v), len(PeriodInputLayout))])
		if err != nil {
			return err
		}
		*p = parsed
		return nil
	case []byte:
		return p.Scan(string(v))
	default:
		return fmt.Errorf("tipo não suportado para período: %T", src)
	}
}
