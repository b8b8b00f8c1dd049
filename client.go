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
	"encoding/base64"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	headerContentType   = "Content-Type"
	headerDefaultSchema = "Default-Schema"
	headerAuthorization = "Authorization"

	// contentTypeJSON is what CrateDB clients have always sent; it is not application/json.
	contentTypeJSON = "text/json"

	sqlPath    = "/_sql"
	typesQuery = "types"
)

// Client issues SQL statements to a single CrateDB node over HTTP.
//
// A Client is immutable after NewClient returns and is safe for concurrent use.
type Client struct {
	config   Config
	endpoint *url.URL

	// credential is base64(user:password), or nil when no credentials are configured.
	credential *string

	http   HTTPClient
	logger logrus.FieldLogger
}

// NewClient creates a new client. It does not contact the server.
func NewClient(config *Config) (*Client, error) {
	if config == nil {
		return nil, errors.New("config must not be nil")
	}

	cfg := *config
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := &Client{
		config:   cfg,
		endpoint: endpointURL(&cfg),
		http:     NewHTTPClient(cfg.HTTPClient),
		logger:   cfg.Logger,
	}
	if cfg.Credentials != nil {
		credential := encodeCredentials(cfg.Credentials.User, cfg.Credentials.Password)
		c.credential = &credential
	}
	if c.logger == nil {
		c.logger = logrus.StandardLogger()
	}
	return c, nil
}

// Close releases idle connections held by the underlying HTTP client.
//
// You don't typically need to call this; it is useful to release resources
// immediately, e.g., in tests.
func (c *Client) Close() {
	c.http.Close()
}

// Endpoint returns the URL statements are posted to, e.g. "https://localhost:4200/_sql".
func (c *Client) Endpoint() string {
	return c.endpoint.String()
}

// Schema returns the schema sent as Default-Schema.
func (c *Client) Schema() string {
	return c.config.Schema
}

func endpointURL(cfg *Config) *url.URL {
	scheme := "https"
	if cfg.DisableTLS {
		scheme = "http"
	}
	host := strings.TrimSuffix(strings.TrimPrefix(cfg.Host, "["), "]")
	return &url.URL{
		Scheme: scheme,
		Host:   net.JoinHostPort(host, strconv.Itoa(cfg.Port)),
		Path:   sqlPath,
	}
}

func encodeCredentials(user, password string) string {
	return base64.StdEncoding.EncodeToString([]byte(user + ":" + password))
}

// requestURL returns the endpoint, with the types flag when column types are requested.
func (c *Client) requestURL(withTypes bool) *url.URL {
	u := *c.endpoint
	if withTypes {
		u.RawQuery = typesQuery
	}
	return &u
}

func (c *Client) requestHeader() http.Header {
	header := http.Header{}
	header.Set(headerContentType, contentTypeJSON)
	header.Set(headerDefaultSchema, c.config.Schema)
	if c.credential != nil {
		header.Set(headerAuthorization, "Basic "+*c.credential)
	}
	return header
}
