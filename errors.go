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
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// NetworkError is returned when the server answers with a status other than
// 200, 400, 404 or 409.
type NetworkError struct {
	// StatusCode is the HTTP status code.
	StatusCode int
	// Reason is the reason phrase of the status line.
	Reason string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("Error %d: %s", e.StatusCode, e.Reason)
}

// DatabaseError is returned when CrateDB rejects a statement with status 400,
// 404 or 409. It carries the error document sent by the server.
type DatabaseError struct {
	// StatusCode is the HTTP status code: 400, 404 or 409.
	StatusCode int
	// Code is the CrateDB error code, e.g. ErrorCodeUnknownRelation.
	Code ErrorCode
	// Message is the error message.
	Message string
	// Trace is the server stack trace, only sent when requested.
	Trace string
	// Body is the error document exactly as received.
	Body json.RawMessage
}

func (e *DatabaseError) Error() string {
	return fmt.Sprintf("CrateDB error %d (%s): %s", e.Code, e.Code, e.Message)
}

// ErrorDetail is the error object inside a CrateDB error document or a
// failed bulk result.
type ErrorDetail struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type errorDocument struct {
	Error      ErrorDetail `json:"error"`
	ErrorTrace string      `json:"error_trace,omitempty"`
}

// IsNetworkError reports whether err is, or wraps, a *NetworkError.
func IsNetworkError(err error) bool {
	var target *NetworkError
	return errors.As(err, &target)
}

// IsDatabaseError reports whether err is, or wraps, a *DatabaseError.
func IsDatabaseError(err error) bool {
	_, ok := AsDatabaseError(err)
	return ok
}

// AsDatabaseError returns the *DatabaseError in err's chain, if any.
func AsDatabaseError(err error) (*DatabaseError, bool) {
	var target *DatabaseError
	if errors.As(err, &target) {
		return target, true
	}
	return nil, false
}

// checkStatusCodeOK classifies the response status.
func checkStatusCodeOK(resp *http.Response) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest, http.StatusNotFound, http.StatusConflict:
		return readDatabaseError(resp)
	default:
		return &NetworkError{
			StatusCode: resp.StatusCode,
			Reason:     reasonPhrase(resp),
		}
	}
}

func readDatabaseError(resp *http.Response) error {
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "failed to read error response (status %d)", resp.StatusCode)
	}

	var doc errorDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return errors.Wrapf(err, "failed to decode error response (status %d): %s", resp.StatusCode, data)
	}
	return &DatabaseError{
		StatusCode: resp.StatusCode,
		Code:       doc.Error.Code,
		Message:    doc.Error.Message,
		Trace:      doc.ErrorTrace,
		Body:       data,
	}
}

// reasonPhrase extracts the reason phrase from the status line, e.g.
// "Service Unavailable" from "503 Service Unavailable".
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// sneakyBodyClose closes the body and ignores the error.
// This is useful to close the HTTP response body when we don't care about the error.
func sneakyBodyClose(body io.ReadCloser) {
	if body != nil {
		_ = body.Close()
	}
}
