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
	"context"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// statementRequest is the body posted to /_sql.
//
// Args and BulkArgs are pointers so an empty, non-nil argument list is still
// sent as [] while an absent one is omitted. At most one of them is set.
type statementRequest struct {
	Stmt     string `json:"stmt"`
	Args     *[]any `json:"args,omitempty"`
	BulkArgs *[]any `json:"bulk_args,omitempty"`
}

func (r *statementRequest) mode() string {
	switch {
	case r.BulkArgs != nil:
		return "bulk"
	case r.Args != nil:
		return "single"
	default:
		return "none"
	}
}

type executeOptions struct {
	withTypes     bool
	discardResult bool
}

func encodeStatementRequest(req *statementRequest) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// keep <, > and & readable in SQL text
	enc.SetEscapeHTML(false)
	if err := enc.Encode(req); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func (c *Client) executeStatement(ctx context.Context, req *statementRequest, opts *executeOptions) (*Response, error) {
	body, err := encodeStatementRequest(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode statement request")
	}

	u := c.requestURL(opts.withTypes)
	logger := c.logger.WithFields(logrus.Fields{
		"endpoint": u.String(),
		"schema":   c.config.Schema,
		"args":     req.mode(),
	})

	start := time.Now()
	resp, err := c.http.Post(ctx, u, c.requestHeader(), body)
	if err != nil {
		logger.WithError(err).Debug("statement request failed")
		return nil, errors.Wrap(err, "failed to send statement request")
	}
	defer sneakyBodyClose(resp.Body)

	logger = logger.WithFields(logrus.Fields{
		"status":   resp.StatusCode,
		"duration": time.Since(start),
	})
	if err := checkStatusCodeOK(resp); err != nil {
		logger.WithError(err).Debug("statement failed")
		return nil, err
	}
	logger.Debug("statement executed")

	if opts.discardResult {
		return nil, nil
	}
	return decodeResponse(resp.Body)
}
