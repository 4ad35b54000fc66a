package recipex

import (
	"encoding/json"
	"math"
	"strconv"
)

// Ingredient is the structured representation of one ingredient line.
// Name is never empty; Amount and Units are independently optional.
type Ingredient struct {
	Name   string
	Amount Amount
	Units  string
}

// MarshalJSON emits the {name, amount, units} wire shape used in recipe
// output records. A missing unit is encoded as null, not "".
func (i Ingredient) MarshalJSON() ([]byte, error) {
	var units *string
	if i.Units != "" {
		units = &i.Units
	}
	return json.Marshal(struct {
		Name   string  `json:"name"`
		Amount Amount  `json:"amount"`
		Units  *string `json:"units"`
	}{Name: i.Name, Amount: i.Amount, Units: units})
}

// UnmarshalJSON decodes the {name, amount, units} wire shape.
func (i *Ingredient) UnmarshalJSON(data []byte) error {
	var raw struct {
		Name   string  `json:"name"`
		Amount Amount  `json:"amount"`
		Units  *string `json:"units"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	i.Name = raw.Name
	i.Amount = raw.Amount
	if raw.Units != nil {
		i.Units = *raw.Units
	} else {
		i.Units = ""
	}
	return nil
}

// EncodeIngredients serializes ingredients to the JSON array string stored
// in the ingredients field of a recipe output record.
// Returns "" for an empty list.
func EncodeIngredients(ingredients []Ingredient) (string, error) {
	if len(ingredients) == 0 {
		return "", nil
	}
	b, err := json.Marshal(ingredients)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// DecodeIngredients parses a JSON array string back into ingredients.
// An empty string decodes to nil.
func DecodeIngredients(s string) ([]Ingredient, error) {
	if s == "" {
		return nil, nil
	}
	var ingredients []Ingredient
	if err := json.Unmarshal([]byte(s), &ingredients); err != nil {
		return nil, Errorf(EUNPROCESSABLE, "invalid ingredients encoding: %v", err)
	}
	return ingredients, nil
}

type amountKind int

const (
	amountNone amountKind = iota
	amountNumber
	amountText
)

// Amount is the quantity of an ingredient. It is one of three things:
// a number (resolved fractions and mixed numbers included), a qualitative
// phrase preserved verbatim ("a piacere", "una manciata"), or nothing.
//
// The zero value means no amount.
type Amount struct {
	kind amountKind
	num  float64
	text string
}

// AmountOf returns a numeric amount.
func AmountOf(v float64) Amount {
	return Amount{kind: amountNumber, num: v}
}

// QualitativeAmount returns an amount holding a locale-specific phrase.
func QualitativeAmount(s string) Amount {
	if s == "" {
		return Amount{}
	}
	return Amount{kind: amountText, text: s}
}

// IsZero reports whether no amount is set.
func (a Amount) IsZero() bool {
	return a.kind == amountNone
}

// Float64 returns the numeric value, if the amount is numeric.
func (a Amount) Float64() (float64, bool) {
	return a.num, a.kind == amountNumber
}

// Text returns the qualitative phrase, if the amount is one.
func (a Amount) Text() (string, bool) {
	return a.text, a.kind == amountText
}

// String renders the amount for display. Integral floats render without
// a decimal part.
func (a Amount) String() string {
	switch a.kind {
	case amountNumber:
		return formatAmountNumber(a.num)
	case amountText:
		return a.text
	}
	return ""
}

// MarshalJSON emits a JSON number, string, or null. Integral floats are
// coerced to integers so "250.0 g" never appears in output records.
func (a Amount) MarshalJSON() ([]byte, error) {
	switch a.kind {
	case amountNumber:
		return []byte(formatAmountNumber(a.num)), nil
	case amountText:
		return json.Marshal(a.text)
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a JSON number, string, or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch v := v.(type) {
	case nil:
		*a = Amount{}
	case float64:
		*a = AmountOf(v)
	case string:
		*a = QualitativeAmount(v)
	default:
		return Errorf(EUNPROCESSABLE, "amount must be a number, string, or null")
	}
	return nil
}

func formatAmountNumber(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
