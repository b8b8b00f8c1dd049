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
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Value stores the contents of a single cell from a CrateDB statement result.
//
// Numbers are json.Number, objects are map[string]any and arrays are []any.
type Value any

// Response is the result document of a statement execution.
//
// A single execution fills Rows and RowCount; a bulk execution fills Results
// instead. The two shapes are not normalized into one.
type Response struct {
	// Cols are the column names of the result.
	Cols []string `json:"cols"`
	// ColTypes are the column types, only present when requested.
	ColTypes []ColumnType `json:"col_types,omitempty"`
	// Rows is the row data of a single execution.
	Rows [][]Value `json:"rows,omitempty"`
	// RowCount is the number of rows returned or affected by a single execution.
	RowCount *int64 `json:"rowcount,omitempty"`
	// Results holds one entry per argument row of a bulk execution.
	Results []BulkResult `json:"results,omitempty"`
	// Duration is the server side execution time in milliseconds.
	Duration float64 `json:"duration"`

	// Raw is the response body exactly as received.
	Raw json.RawMessage `json:"-"`
}

// BulkResult is the outcome of one argument row of a bulk execution.
type BulkResult struct {
	// RowCount is the number of affected rows; -2 marks a failed row.
	RowCount int64 `json:"rowcount"`
	// Error is set by servers that report why a row failed.
	Error *ErrorDetail `json:"error,omitempty"`
}

// IsBulk reports whether the response is the result of a bulk execution.
func (r *Response) IsBulk() bool {
	return r.Results != nil
}

// ColumnIndex returns the position of the named column, or -1.
func (r *Response) ColumnIndex(name string) int {
	for i, col := range r.Cols {
		if col == name {
			return i
		}
	}
	return -1
}

func decodeResponse(body io.Reader) (*Response, error) {
	data, err := io.ReadAll(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var resp Response
	if err := dec.Decode(&resp); err != nil {
		return nil, errors.Wrap(err, "failed to decode response")
	}
	resp.Raw = data
	return &resp, nil
}

// ColumnType describes the type of a result column.
//
// CrateDB encodes scalar types as a bare ID and array types as a pair of the
// array ID and the element type, e.g. [100, 4] for an array of text.
type ColumnType struct {
	// ID is the type ID.
	ID TypeID
	// Element is the element type when ID is TypeArray.
	Element *ColumnType
}

func (t ColumnType) String() string {
	if t.Element != nil {
		return fmt.Sprintf("%s(%s)", t.ID, t.Element)
	}
	return t.ID.String()
}

func (t *ColumnType) UnmarshalJSON(data []byte) error {
	var id TypeID
	if err := json.Unmarshal(data, &id); err == nil {
		*t = ColumnType{ID: id}
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return errors.Errorf("invalid column type: %s", data)
	}
	if len(parts) != 2 {
		return errors.Errorf("invalid column type: %s", data)
	}
	if err := json.Unmarshal(parts[0], &id); err != nil {
		return errors.Errorf("invalid column type: %s", data)
	}
	var elem ColumnType
	if err := elem.UnmarshalJSON(parts[1]); err != nil {
		return err
	}
	*t = ColumnType{ID: id, Element: &elem}
	return nil
}

func (t ColumnType) MarshalJSON() ([]byte, error) {
	if t.Element == nil {
		return json.Marshal(t.ID)
	}
	return json.Marshal([]any{t.ID, t.Element})
}
