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
	"net/http"
	"net/url"
)

// HTTPClient is the interface for HTTP client.
type HTTPClient interface {
	// Post sends a POST request with the given headers to the CrateDB SQL endpoint.
	Post(ctx context.Context, u *url.URL, header http.Header, body []byte) (*http.Response, error)
	// Close releases idle connections.
	Close()
}

type httpClient struct {
	client *http.Client
}

// NewHTTPClient creates a new internal HTTP client on top of the given client.
//
// A nil client means a private client over a clone of http.DefaultTransport,
// so Close never drops connections pooled for other users of the process.
func NewHTTPClient(client *http.Client) HTTPClient {
	if client == nil {
		client = &http.Client{Transport: http.DefaultTransport.(*http.Transport).Clone()}
	}
	return &httpClient{
		client: client,
	}
}

// Ensure httpClient implements HTTPClient.
var _ HTTPClient = (*httpClient)(nil)

func (c *httpClient) Post(ctx context.Context, u *url.URL, header http.Header, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	resp, err := c.client.Do(req)
	return resp, err
}

func (c *httpClient) Close() {
	c.client.CloseIdleConnections()
}
