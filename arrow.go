/*
 * Copyright 2026 The MicroCrate Authors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cratedb

import (
	"encoding/json"
	"math"
	"strconv"

	"github.com/apache/arrow/go/v17/arrow"
	"github.com/apache/arrow/go/v17/arrow/array"
	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/pkg/errors"
)

// ToArrowRecord converts the rows of a single execution into an Arrow record.
//
// The statement must have been executed with WithTypes. Scalar CrateDB types
// map to the matching Arrow types; timestamps and dates are epoch
// milliseconds. Objects, arrays, geo types and everything else become strings
// holding the JSON encoding of the value. The caller must Release the record.
func (r *Response) ToArrowRecord(mem memory.Allocator) (arrow.Record, error) {
	if r.IsBulk() {
		return nil, errors.New("bulk responses carry no rows")
	}
	if len(r.ColTypes) != len(r.Cols) {
		return nil, errors.Errorf("got %d column types for %d columns; execute the statement with WithTypes", len(r.ColTypes), len(r.Cols))
	}
	if mem == nil {
		mem = memory.DefaultAllocator
	}

	fields := make([]arrow.Field, len(r.Cols))
	for i, col := range r.Cols {
		fields[i] = arrow.Field{Name: col, Type: arrowType(r.ColTypes[i]), Nullable: true}
	}
	schema := arrow.NewSchema(fields, nil)

	b := array.NewRecordBuilder(mem, schema)
	defer b.Release()

	for i, row := range r.Rows {
		if len(row) != len(fields) {
			return nil, errors.Errorf("row %d has %d values for %d columns", i, len(row), len(fields))
		}
		for j, v := range row {
			if err := appendArrowValue(b.Field(j), v); err != nil {
				return nil, errors.Wrapf(err, "row %d column %q", i, r.Cols[j])
			}
		}
	}
	return b.NewRecord(), nil
}

func arrowType(t ColumnType) arrow.DataType {
	switch t.ID {
	case TypeNull:
		return arrow.Null
	case TypeBoolean:
		return arrow.FixedWidthTypes.Boolean
	case TypeChar:
		return arrow.PrimitiveTypes.Int8
	case TypeSmallint:
		return arrow.PrimitiveTypes.Int16
	case TypeInteger:
		return arrow.PrimitiveTypes.Int32
	case TypeBigint:
		return arrow.PrimitiveTypes.Int64
	case TypeReal:
		return arrow.PrimitiveTypes.Float32
	case TypeDoublePrecision:
		return arrow.PrimitiveTypes.Float64
	case TypeTimestampWithTimeZone:
		return &arrow.TimestampType{Unit: arrow.Millisecond, TimeZone: "UTC"}
	case TypeTimestampWithoutTimeZone:
		return &arrow.TimestampType{Unit: arrow.Millisecond}
	case TypeDate:
		return arrow.FixedWidthTypes.Date64
	default:
		return arrow.BinaryTypes.String
	}
}

func appendArrowValue(b array.Builder, v Value) error {
	if v == nil {
		b.AppendNull()
		return nil
	}

	switch b := b.(type) {
	case *array.NullBuilder:
		b.AppendNull()
	case *array.BooleanBuilder:
		bv, ok := v.(bool)
		if !ok {
			return errors.Errorf("expected bool, got %T", v)
		}
		b.Append(bv)
	case *array.Int8Builder:
		n, err := toInt64(v, math.MinInt8, math.MaxInt8)
		if err != nil {
			return err
		}
		b.Append(int8(n))
	case *array.Int16Builder:
		n, err := toInt64(v, math.MinInt16, math.MaxInt16)
		if err != nil {
			return err
		}
		b.Append(int16(n))
	case *array.Int32Builder:
		n, err := toInt64(v, math.MinInt32, math.MaxInt32)
		if err != nil {
			return err
		}
		b.Append(int32(n))
	case *array.Int64Builder:
		n, err := toInt64(v, math.MinInt64, math.MaxInt64)
		if err != nil {
			return err
		}
		b.Append(n)
	case *array.Float32Builder:
		f, err := toFloat64(v)
		if err != nil {
			return err
		}
		b.Append(float32(f))
	case *array.Float64Builder:
		f, err := toFloat64(v)
		if err != nil {
			return err
		}
		b.Append(f)
	case *array.TimestampBuilder:
		n, err := toInt64(v, math.MinInt64, math.MaxInt64)
		if err != nil {
			return err
		}
		b.Append(arrow.Timestamp(n))
	case *array.Date64Builder:
		n, err := toInt64(v, math.MinInt64, math.MaxInt64)
		if err != nil {
			return err
		}
		b.Append(arrow.Date64(n))
	case *array.StringBuilder:
		if s, ok := v.(string); ok {
			b.Append(s)
			break
		}
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		b.Append(string(data))
	default:
		return errors.Errorf("unsupported builder %T", b)
	}
	return nil
}

func toInt64(v Value, lo, hi int64) (int64, error) {
	var n int64
	switch v := v.(type) {
	case json.Number:
		i, err := strconv.ParseInt(v.String(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(err, "expected integer, got %s", v)
		}
		n = i
	case float64:
		if v != math.Trunc(v) || v < -(1<<63) || v >= 1<<63 {
			return 0, errors.Errorf("expected integer, got %v", v)
		}
		n = int64(v)
	case int:
		n = int64(v)
	case int64:
		n = v
	default:
		return 0, errors.Errorf("expected integer, got %T", v)
	}
	if n < lo || n > hi {
		return 0, errors.Errorf("integer %d out of range [%d, %d]", n, lo, hi)
	}
	return n, nil
}

func toFloat64(v Value) (float64, error) {
	switch v := v.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, errors.Wrapf(err, "expected number, got %s", v)
		}
		return f, nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, errors.Errorf("expected number, got %T", v)
	}
}
