package records

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"pet-care-tracker/internal/platform/apperr"
)

type FieldType int

const (
	TypeString FieldType = iota
	TypeDecimal
	TypeInteger
	TypeDate
	TypeEnum
)

func (t FieldType) String() string {
	switch t {
	case TypeDecimal:
		return "decimal"
	case TypeInteger:
		return "integer"
	case TypeDate:
		return "date"
	case TypeEnum:
		return "enum"
	default:
		return "string"
	}
}

// Field describe una columna del recurso.
// Name es el nombre en JSON; Column el de la tabla.
type Field struct {
	Name     string
	Column   string
	Type     FieldType
	Required bool
	Enum     []string // solo TypeEnum, en minúsculas
}

// Schema parametriza un Store: mismo patrón list/create/delete, distintos campos.
type Schema struct {
	Resource string // segmento de la URL: /api/<resource>
	Table    string
	Entity   string // nombre para logs/docs
	Fields   []Field
}

func (s Schema) Columns() []string {
	out := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		out = append(out, f.Column)
	}
	return out
}

// Decode valida el body contra el schema y devuelve los valores tipados:
// string, float64, int64, Date o nil. Campos desconocidos se ignoran.
func (s Schema) Decode(raw map[string]json.RawMessage) (map[string]any, error) {
	values := make(map[string]any, len(s.Fields))

	for _, f := range s.Fields {
		v, present := raw[f.Name]
		if !present || isNull(v) {
			if f.Required {
				return nil, fmt.Errorf("%w: %s is required", apperr.ErrValidation, f.Name)
			}
			values[f.Name] = nil
			continue
		}

		val, err := decodeField(f, v)
		if err != nil {
			return nil, fmt.Errorf("%w: %s must be %s", apperr.ErrValidation, f.Name, describe(f))
		}
		if f.Required {
			if str, ok := val.(string); ok && strings.TrimSpace(str) == "" {
				return nil, fmt.Errorf("%w: %s is required", apperr.ErrValidation, f.Name)
			}
		}
		values[f.Name] = val
	}

	return values, nil
}

func decodeField(f Field, v json.RawMessage) (any, error) {
	switch f.Type {
	case TypeString:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		return s, nil

	case TypeDecimal:
		n, err := numberText(v)
		if err != nil {
			return nil, err
		}
		d, err := strconv.ParseFloat(n, 64)
		if err != nil || math.IsNaN(d) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("not a decimal: %s", n)
		}
		return d, nil

	case TypeInteger:
		n, err := numberText(v)
		if err != nil {
			return nil, err
		}
		i, err := strconv.ParseInt(n, 10, 64)
		if err == nil {
			return i, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("integer out of range: %s", n)
		}
		// 3.0 es entero; 3.5 no. float64(MaxInt64) redondea a 2^63.
		d, ferr := strconv.ParseFloat(n, 64)
		if ferr != nil || d != math.Trunc(d) || d >= 0x1p63 || d < -0x1p63 {
			return nil, fmt.Errorf("not an integer: %s", n)
		}
		return int64(d), nil

	case TypeDate:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		return ParseDate(s)

	case TypeEnum:
		var s string
		if err := json.Unmarshal(v, &s); err != nil {
			return nil, err
		}
		s = strings.ToLower(strings.TrimSpace(s))
		for _, allowed := range f.Enum {
			if s == allowed {
				return s, nil
			}
		}
		return nil, fmt.Errorf("unknown value %q", s)
	}

	return nil, fmt.Errorf("unsupported field type %d", f.Type)
}

// numberText acepta número JSON o string numérico ("12.5").
func numberText(v json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()

	var x any
	if err := dec.Decode(&x); err != nil {
		return "", err
	}
	switch n := x.(type) {
	case json.Number:
		return n.String(), nil
	case string:
		return strings.TrimSpace(n), nil
	default:
		return "", fmt.Errorf("not a number")
	}
}

func isNull(v json.RawMessage) bool {
	return len(bytes.TrimSpace(v)) == 0 || string(bytes.TrimSpace(v)) == "null"
}

func describe(f Field) string {
	switch f.Type {
	case TypeDate:
		return "a date (YYYY-MM-DD or RFC3339)"
	case TypeEnum:
		return "one of " + strings.Join(f.Enum, ", ")
	case TypeInteger:
		return "an integer"
	case TypeDecimal:
		return "a decimal number"
	default:
		return "a string"
	}
}

// Date es una fecha sin hora; se serializa como YYYY-MM-DD.
type Date struct {
	time.Time
}

const dateLayout = "2006-01-02"

func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate acepta YYYY-MM-DD o RFC3339 (se queda con la fecha).
func ParseDate(s string) (Date, error) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(dateLayout, s); err == nil {
		return NewDate(t), nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q", s)
	}
	return NewDate(t), nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
