package utils

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestInferColumn(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		cells    []string
		expected []interface{}
	}{
		"integers": {
			cells:    []string{"1", "-2", ""},
			expected: []interface{}{int64(1), int64(-2), nil},
		},
		"integers mixed with floats": {
			cells:    []string{"1", "2.5"},
			expected: []interface{}{1.0, 2.5},
		},
		"booleans": {
			cells:    []string{"True", "false", "TRUE"},
			expected: []interface{}{true, false, true},
		},
		"strings win over numbers": {
			cells:    []string{"1", "a", ""},
			expected: []interface{}{"1", "a", nil},
		},
		"bools mixed with numbers are strings": {
			cells:    []string{"1", "true"},
			expected: []interface{}{"1", "true"},
		},
		"all empty": {
			cells:    []string{"", ""},
			expected: []interface{}{nil, nil},
		},
	}

	for name, tc := range testCases {
		tc := tc
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, InferColumn(tc.cells))
		})
	}
}

func TestFormatCell(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", FormatCell(nil))
	assert.Equal(t, "42", FormatCell(int64(42)))
	assert.Equal(t, "2.0", FormatCell(2.0))
	assert.Equal(t, "0.125", FormatCell(0.125))
	assert.Equal(t, "True", FormatCell(true))
	assert.Equal(t, "False", FormatCell(false))
	assert.Equal(t, "text", FormatCell("text"))
	assert.Equal(t, "7", FormatCell(7))
}

func TestFormatThenInferKeepsKinds(t *testing.T) {
	t.Parallel()

	values := []interface{}{3.0, 1.5, nil}
	cells := make([]string, len(values))
	for i, v := range values {
		cells[i] = FormatCell(v)
	}
	assert.Equal(t, values, InferColumn(cells))
}

func TestNormalizeValue(t *testing.T) {
	t.Parallel()

	ts := time.Date(2024, 12, 4, 10, 0, 0, 0, time.UTC)
	oid := primitive.NewObjectID()

	assert.Equal(t, int64(5), NormalizeValue(5))
	assert.Equal(t, int64(5), NormalizeValue(int32(5)))
	assert.Equal(t, float64(1.5), NormalizeValue(float32(1.5)))
	assert.Equal(t, int64(12), NormalizeValue(json.Number("12")))
	assert.Equal(t, 1.25, NormalizeValue(json.Number("1.25")))
	assert.Equal(t, "raw", NormalizeValue([]byte("raw")))
	assert.Equal(t, "2024-12-04T10:00:00Z", NormalizeValue(ts))
	assert.Equal(t, "2024-12-04T10:00:00Z", NormalizeValue(primitive.NewDateTimeFromTime(ts)))
	assert.Equal(t, oid.Hex(), NormalizeValue(oid))
	assert.Equal(t, `{"a":1}`, NormalizeValue(map[string]interface{}{"a": 1}))
	assert.Nil(t, NormalizeValue(nil))
}

func TestUnifyColumn(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []interface{}{1.0, 2.5, nil}, UnifyColumn([]interface{}{1, 2.5, nil}))
	assert.Equal(t, []interface{}{"1", "x", "True"}, UnifyColumn([]interface{}{1, "x", true}))
	assert.Equal(t, []interface{}{int64(1), int64(2)}, UnifyColumn([]interface{}{int32(1), int64(2)}))
}

func TestColumnKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, KindNull, ColumnKind([]interface{}{nil}))
	assert.Equal(t, KindInt, ColumnKind([]interface{}{int64(1), nil}))
	assert.Equal(t, KindFloat, ColumnKind([]interface{}{int64(1), 2.0}))
	assert.Equal(t, KindBool, ColumnKind([]interface{}{true}))
	assert.Equal(t, KindString, ColumnKind([]interface{}{true, int64(1)}))
}
