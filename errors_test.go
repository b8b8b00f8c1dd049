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
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"

	cratedb "github.com/microcrate/cratedb-sdk/go"
)

func TestDatabaseErrorStatuses(t *testing.T) {
	for _, tc := range []struct {
		status int
		body   string
		code   cratedb.ErrorCode
	}{
		{
			status: http.StatusBadRequest,
			body:   `{"error":{"message":"SQLParseException[line 1:1: mismatched input 'selec']","code":4000}}`,
			code:   cratedb.ErrorCodeInvalidSyntax,
		},
		{
			status: http.StatusNotFound,
			body:   `{"error":{"message":"RelationUnknown[Relation 'driver_test' unknown]","code":4041}}`,
			code:   cratedb.ErrorCodeUnknownRelation,
		},
		{
			status: http.StatusConflict,
			body:   `{"error":{"message":"DuplicateKeyException[A document with the same primary key exists already]","code":4091}}`,
			code:   cratedb.ErrorCodeDocumentExists,
		},
	} {
		t.Run(http.StatusText(tc.status), func(t *testing.T) {
			srv := newFakeServer(t, tc.status, tc.body)
			c := srv.NewClient(t)

			_, err := c.Execute(context.Background(), "select * from driver_test")
			require.Error(t, err)
			require.True(t, cratedb.IsDatabaseError(err))
			require.False(t, cratedb.IsNetworkError(err))

			dbErr, ok := cratedb.AsDatabaseError(err)
			require.True(t, ok)
			require.Equal(t, tc.status, dbErr.StatusCode)
			require.Equal(t, tc.code, dbErr.Code)
			require.JSONEq(t, tc.body, string(dbErr.Body))
		})
	}
}

func TestDatabaseErrorWithDiscardedResult(t *testing.T) {
	srv := newFakeServer(t, http.StatusBadRequest, `{"error":{"message":"SQLParseException[line 1:1: mismatched input 'selec']","code":4000}}`)
	c := srv.NewClient(t)

	s := c.Statement("selec 1")
	s.DiscardResult = true
	_, err := s.Execute(context.Background())

	dbErr, ok := cratedb.AsDatabaseError(err)
	require.True(t, ok)
	require.Equal(t, cratedb.ErrorCodeInvalidSyntax, dbErr.Code)
}

func TestDatabaseErrorMessage(t *testing.T) {
	srv := newFakeServer(t, http.StatusNotFound, `{"error":{"message":"RelationUnknown[Relation 'driver_test' unknown]","code":4041},"error_trace":"RelationUnknown: ..."}`)
	c := srv.NewClient(t)

	_, err := c.Execute(context.Background(), "select * from driver_test")
	dbErr, ok := cratedb.AsDatabaseError(err)
	require.True(t, ok)
	require.Equal(t, "RelationUnknown: ...", dbErr.Trace)
	snaps.MatchSnapshot(t, err.Error())
}

func TestNetworkErrorStatuses(t *testing.T) {
	for _, status := range []int{
		http.StatusUnauthorized,
		http.StatusInternalServerError,
		http.StatusServiceUnavailable,
	} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			srv := newFakeServer(t, status, `{"error":{"message":"ignored","code":5000}}`)
			c := srv.NewClient(t)

			_, err := c.Execute(context.Background(), "SELECT 1")
			require.Error(t, err)
			require.True(t, cratedb.IsNetworkError(err))
			require.False(t, cratedb.IsDatabaseError(err))

			var netErr *cratedb.NetworkError
			require.True(t, errors.As(err, &netErr))
			require.Equal(t, status, netErr.StatusCode)
			require.Equal(t, http.StatusText(status), netErr.Reason)
		})
	}
}

func TestNetworkErrorMessage(t *testing.T) {
	srv := newFakeServer(t, http.StatusInternalServerError, ``)
	c := srv.NewClient(t)

	_, err := c.Execute(context.Background(), "SELECT 1")
	snaps.MatchSnapshot(t, err.Error())
}

func TestUndecodableErrorDocument(t *testing.T) {
	srv := newFakeServer(t, http.StatusBadRequest, `<html>bad request</html>`)
	c := srv.NewClient(t)

	_, err := c.Execute(context.Background(), "SELECT 1")
	require.ErrorContains(t, err, "failed to decode error response (status 400)")
	require.False(t, cratedb.IsDatabaseError(err))
	require.False(t, cratedb.IsNetworkError(err))
}

func TestTransportError(t *testing.T) {
	srv := newFakeServer(t, http.StatusOK, okSelectBody)
	c := srv.NewClient(t)
	srv.Close()

	_, err := c.Execute(context.Background(), "SELECT 1")
	require.Error(t, err)
	require.False(t, cratedb.IsDatabaseError(err))
	require.False(t, cratedb.IsNetworkError(err))

	var urlErr *url.Error
	require.True(t, errors.As(err, &urlErr))
}
