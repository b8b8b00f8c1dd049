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
	"context"
	"encoding/json"
	"reflect"
	"strings"

	"github.com/pkg/errors"
)

// ArgsMode selects how Statement.Args is sent to CrateDB.
type ArgsMode int

const (
	// ArgsModeAuto sends Args as bulk arguments when every element is itself
	// a slice or array, and as single-execution arguments otherwise.
	//
	// A single row whose bound values are all arrays is indistinguishable from
	// bulk input under this rule; use ArgsModeSingle for such statements.
	ArgsModeAuto ArgsMode = iota
	// ArgsModeSingle always sends Args as "args": one execution, positional
	// placeholders bound in order.
	ArgsModeSingle
	// ArgsModeBulk always sends Args as "bulk_args": one execution per
	// element, each of which must be a slice or array.
	ArgsModeBulk
)

func (m ArgsMode) String() string {
	switch m {
	case ArgsModeAuto:
		return "auto"
	case ArgsModeSingle:
		return "single"
	case ArgsModeBulk:
		return "bulk"
	default:
		return "unknown"
	}
}

// Statement is a struct that represents a statement to be executed on CrateDB.
type Statement struct {
	c *Client

	stmt string

	// Args are the positional arguments of the statement.
	//
	// nil sends no arguments. How non-nil Args are sent depends on Mode.
	Args []any
	// Mode selects between single and bulk arguments. Defaults to ArgsModeAuto.
	Mode ArgsMode
	// WithTypes requests the column type IDs of the result (Response.ColTypes).
	WithTypes bool
	// DiscardResult skips reading and decoding the response body on success;
	// Execute then returns a nil Response.
	DiscardResult bool
}

// Statement creates a new statement with the given SQL.
func (c *Client) Statement(stmt string) *Statement {
	return &Statement{
		c:    c,
		stmt: stmt,
	}
}

// Execute executes stmt with args under default options and returns the result document.
//
// Pass one value per placeholder for a single execution, or one slice per
// row for a bulk execution:
//
//	c.Execute(ctx, "SELECT * FROM t WHERE id = ?", "x")
//	c.Execute(ctx, "INSERT INTO t (id) VALUES (?)", []any{"a"}, []any{"b"})
func (c *Client) Execute(ctx context.Context, stmt string, args ...any) (*Response, error) {
	s := c.Statement(stmt)
	s.Args = args
	return s.Execute(ctx)
}

// Execute sends the statement and waits for the response.
//
// On status 400, 404 or 409 the error is a *DatabaseError; on any other
// status except 200 it is a *NetworkError.
func (s *Statement) Execute(ctx context.Context) (*Response, error) {
	req, err := s.request()
	if err != nil {
		return nil, err
	}
	return s.c.executeStatement(ctx, req, &executeOptions{
		withTypes:     s.WithTypes,
		discardResult: s.DiscardResult,
	})
}

func (s *Statement) request() (*statementRequest, error) {
	if strings.TrimSpace(s.stmt) == "" {
		return nil, errors.New("statement must not be empty")
	}

	req := &statementRequest{Stmt: s.stmt}
	if s.Args == nil {
		return req, nil
	}

	args := s.Args
	switch s.Mode {
	case ArgsModeAuto:
		if isBulk(args) {
			req.BulkArgs = &args
		} else {
			req.Args = &args
		}
	case ArgsModeSingle:
		req.Args = &args
	case ArgsModeBulk:
		for i, row := range args {
			if !isSequence(row) {
				return nil, errors.Errorf("bulk argument %d is %T, not a slice or array", i, row)
			}
		}
		req.BulkArgs = &args
	default:
		return nil, errors.Errorf("unknown args mode %d", s.Mode)
	}
	return req, nil
}

// isBulk reports whether every element of args is a sequence.
//
// An empty args is bulk, the same as the original wire behaviour.
func isBulk(args []any) bool {
	for _, arg := range args {
		if !isSequence(arg) {
			return false
		}
	}
	return true
}

// isSequence reports whether v encodes as a JSON array.
//
// []byte and json.RawMessage are slices but encode as a string and a raw
// value respectively, so they count as scalars. A nil slice encodes as null.
func isSequence(v any) bool {
	switch v.(type) {
	case nil, []byte, json.RawMessage:
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return !rv.IsNil()
	case reflect.Array:
		return true
	default:
		return false
	}
}
