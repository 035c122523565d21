package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Metric is one optional numeric observation. Absent means the source carried
// no usable value: the field was missing, blank, or not parseable as a number.
type Metric struct {
	decimal.NullDecimal
}

// MetricOf wraps a concrete decimal value.
func MetricOf(d decimal.Decimal) Metric {
	return Metric{decimal.NullDecimal{Decimal: d, Valid: true}}
}

// MetricFromString parses a text field into a Metric. Blank or unparseable
// content yields an absent Metric, not an error.
func MetricFromString(s string) Metric {
	s = strings.TrimSpace(s)
	if s == "" {
		return Metric{}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Metric{}
	}
	return MetricOf(d)
}

// UnmarshalJSON accepts JSON numbers, numeric strings, or null. Anything that
// does not parse as a number decodes as absent rather than failing the
// enclosing document.
func (m *Metric) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*m = Metric{}
		return nil
	}
	*m = MetricFromString(strings.Trim(s, `"`))
	return nil
}

// String renders the exact captured value, or the empty string when absent.
func (m Metric) String() string {
	if !m.Valid {
		return ""
	}
	return m.Decimal.String()
}

// Fixed renders the value with a fixed number of decimal places, or the empty
// string when absent.
func (m Metric) Fixed(places int32) string {
	if !m.Valid {
		return ""
	}
	return m.Decimal.StringFixed(places)
}

// Ptr returns the rendered value for database parameters, nil when absent.
func (m Metric) Ptr() *string {
	if !m.Valid {
		return nil
	}
	s := m.Decimal.String()
	return &s
}

// FixedPtr is Ptr with fixed decimal places, matching the file rendering of
// aggregate fields.
func (m Metric) FixedPtr(places int32) *string {
	if !m.Valid {
		return nil
	}
	s := m.Decimal.StringFixed(places)
	return &s
}
