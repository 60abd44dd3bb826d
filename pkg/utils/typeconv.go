package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Column kinds reported by ColumnKind.
const (
	KindNull   = "null"
	KindInt    = "int"
	KindFloat  = "float"
	KindBool   = "bool"
	KindString = "string"
)

// NormalizeValue converts driver and decoder specific values to one of
// nil, int64, float64, bool or string.
func NormalizeValue(val interface{}) interface{} {
	switch v := val.(type) {
	case nil:
		return nil
	case int64, float64, bool, string:
		return v
	case int:
		return int64(v)
	case int8:
		return int64(v)
	case int16:
		return int64(v)
	case int32:
		return int64(v)
	case uint8:
		return int64(v)
	case uint16:
		return int64(v)
	case uint32:
		return int64(v)
	case uint:
		return int64(v)
	case uint64:
		return int64(v)
	case float32:
		return float64(v)
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return i
		}
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String()
	case []byte:
		return string(v)
	case time.Time:
		return v.Format(time.RFC3339)
	case primitive.DateTime:
		return v.Time().UTC().Format(time.RFC3339)
	case primitive.ObjectID:
		return v.Hex()
	case primitive.Decimal128:
		return v.String()
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}

// ColumnKind reports the common kind of already normalized values.
// Nil values are ignored; ints mixed with floats are floats; any other mix is string.
func ColumnKind(values []interface{}) string {
	kind := KindNull
	for _, val := range values {
		var k string
		switch val.(type) {
		case nil:
			continue
		case int64:
			k = KindInt
		case float64:
			k = KindFloat
		case bool:
			k = KindBool
		default:
			k = KindString
		}
		switch {
		case kind == KindNull || kind == k:
			kind = k
		case (kind == KindInt && k == KindFloat) || (kind == KindFloat && k == KindInt):
			kind = KindFloat
		default:
			return KindString
		}
	}
	return kind
}

// UnifyColumn normalizes values and coerces them to a single kind.
func UnifyColumn(values []interface{}) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = NormalizeValue(v)
	}
	switch ColumnKind(out) {
	case KindFloat:
		for i, v := range out {
			if n, ok := v.(int64); ok {
				out[i] = float64(n)
			}
		}
	case KindString:
		for i, v := range out {
			if v != nil {
				out[i] = FormatCell(v)
			}
		}
	}
	return out
}

// InferColumn parses raw text cells into typed values. Empty cells become nil.
// A column is int64 if every non-empty cell is an integer, float64 if every
// cell is numeric, bool if every cell is true/false and string otherwise.
func InferColumn(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	kind := KindNull
	for _, cell := range cells {
		if cell == "" {
			continue
		}
		k := cellKind(cell)
		switch {
		case kind == KindNull || kind == k:
			kind = k
		case (kind == KindInt && k == KindFloat) || (kind == KindFloat && k == KindInt):
			kind = KindFloat
		default:
			kind = KindString
		}
		if kind == KindString {
			break
		}
	}

	for i, cell := range cells {
		if cell == "" {
			continue
		}
		switch kind {
		case KindInt:
			n, _ := strconv.ParseInt(cell, 10, 64)
			out[i] = n
		case KindFloat:
			f, _ := strconv.ParseFloat(cell, 64)
			out[i] = f
		case KindBool:
			out[i] = strings.EqualFold(cell, "true")
		default:
			out[i] = cell
		}
	}
	return out
}

func cellKind(cell string) string {
	if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return KindInt
	}
	if _, err := strconv.ParseFloat(cell, 64); err == nil {
		return KindFloat
	}
	if strings.EqualFold(cell, "true") || strings.EqualFold(cell, "false") {
		return KindBool
	}
	return KindString
}

// FormatCell renders a normalized value as CSV text. Floats always keep a
// decimal point so they read back as floats.
func FormatCell(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return strconv.FormatFloat(v, 'g', -1, 64)
		}
		s := strconv.FormatFloat(v, 'f', -1, 64)
		if !strings.ContainsAny(s, ".e") {
			s += ".0"
		}
		return s
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return FormatCell(NormalizeValue(v))
	}
}
