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

package cratedb_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	cratedb "github.com/microcrate/cratedb-sdk/go"
)

func TestResponseSingleShape(t *testing.T) {
	body := `{"rows":[[2,3]],"rowcount":1,"cols":["val1","val2"],"duration":3.266117}`
	srv := newFakeServer(t, http.StatusOK, body)
	c := srv.NewClient(t)

	resp, err := c.Execute(context.Background(), "select val1, val2 from driver_test where val1 > ? and val2 < ?", 1, 4)
	require.NoError(t, err)

	require.False(t, resp.IsBulk())
	require.Equal(t, []string{"val1", "val2"}, resp.Cols)
	require.NotNil(t, resp.RowCount)
	require.Equal(t, int64(1), *resp.RowCount)
	require.Equal(t, [][]cratedb.Value{{json.Number("2"), json.Number("3")}}, resp.Rows)
	require.InDelta(t, 3.266117, resp.Duration, 1e-9)
	require.Equal(t, 1, resp.ColumnIndex("val2"))
	require.Equal(t, -1, resp.ColumnIndex("missing"))
	require.JSONEq(t, body, string(resp.Raw))
}

func TestResponseBulkShape(t *testing.T) {
	body := `{"results":[{"rowcount":1},{"rowcount":-2,"error":{"code":4091,"message":"A document with the same primary key exists already"}}],"cols":[],"duration":4.426417}`
	srv := newFakeServer(t, http.StatusOK, body)
	c := srv.NewClient(t)

	resp, err := c.Execute(context.Background(), "INSERT INTO t (id) VALUES (?)", []any{"a"}, []any{"a"})
	require.NoError(t, err)

	require.True(t, resp.IsBulk())
	require.Nil(t, resp.Rows)
	require.Nil(t, resp.RowCount)
	require.Equal(t, []cratedb.BulkResult{
		{RowCount: 1},
		{RowCount: -2, Error: &cratedb.ErrorDetail{Code: cratedb.ErrorCodeDocumentExists, Message: "A document with the same primary key exists already"}},
	}, resp.Results)
}

func TestResponseBigintPrecision(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, `{"rows":[[9007199254740993]],"rowcount":1,"cols":["id"],"duration":1}`)
	c := srv.NewClient(t)

	resp, err := c.Execute(context.Background(), "SELECT id FROM t")
	require.NoError(t, err)

	n, ok := resp.Rows[0][0].(json.Number)
	require.True(t, ok)
	i, err := n.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(9007199254740993), i)
}

func TestColumnTypeJSON(t *testing.T) {
	var types []cratedb.ColumnType
	require.NoError(t, json.Unmarshal([]byte(`[4, [100, 9], [100, [100, 12]]]`), &types))
	require.Equal(t, []cratedb.ColumnType{
		{ID: cratedb.TypeText},
		{ID: cratedb.TypeArray, Element: &cratedb.ColumnType{ID: cratedb.TypeInteger}},
		{ID: cratedb.TypeArray, Element: &cratedb.ColumnType{
			ID:      cratedb.TypeArray,
			Element: &cratedb.ColumnType{ID: cratedb.TypeObject},
		}},
	}, types)

	require.Equal(t, "TEXT", types[0].String())
	require.Equal(t, "ARRAY(INTEGER)", types[1].String())
	require.Equal(t, "ARRAY(ARRAY(OBJECT))", types[2].String())

	data, err := json.Marshal(types)
	require.NoError(t, err)
	require.JSONEq(t, `[4,[100,9],[100,[100,12]]]`, string(data))
}

func TestColumnTypeInvalidJSON(t *testing.T) {
	var ct cratedb.ColumnType
	require.Error(t, json.Unmarshal([]byte(`"text"`), &ct))
	require.Error(t, json.Unmarshal([]byte(`[100]`), &ct))
	require.Error(t, json.Unmarshal([]byte(`["100", 4]`), &ct))
}
