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
	"net/http"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultPort is the port of the CrateDB HTTP endpoint.
	DefaultPort = 4200
	// DefaultSchema is the schema unqualified table names resolve against.
	DefaultSchema = "doc"
)

// Config defines the configuration for the client.
type Config struct {
	// Host is the host name or IP address of the CrateDB node. Required.
	Host string `json:"host"`
	// Port is the HTTP port of the CrateDB node. Defaults to 4200.
	Port int `json:"port"`
	// Schema is sent as the Default-Schema header. Defaults to "doc".
	Schema string `json:"schema"`
	// DisableTLS switches the endpoint scheme from https to http.
	DisableTLS bool `json:"disable_tls"`
	// Credentials enables basic authentication when not nil.
	Credentials *Credentials `json:"-"`

	// HTTPClient overrides the HTTP client used to reach the endpoint.
	//
	// When nil, a client with the net/http defaults is used. Timeouts are
	// whatever this client enforces.
	HTTPClient *http.Client `json:"-"`
	// Logger receives a debug entry per executed statement.
	//
	// When nil, the logrus standard logger is used.
	Logger logrus.FieldLogger `json:"-"`
}

// Credentials is a user and password pair for basic authentication.
//
// An empty password is valid; CrateDB's superuser has none by default.
type Credentials struct {
	User     string
	Password string
}

// fileConfig is the representation of Config in config files and the environment.
type fileConfig struct {
	Host       string `yaml:"host" json:"host" toml:"host" env:"CRATEDB_HOST"`
	Port       int    `yaml:"port" json:"port" toml:"port" env:"CRATEDB_PORT"`
	Schema     string `yaml:"schema" json:"schema" toml:"schema" env:"CRATEDB_SCHEMA"`
	DisableTLS bool   `yaml:"disableTLS" json:"disable_tls" toml:"disable_tls" env:"CRATEDB_DISABLE_TLS"`
	User       string `yaml:"user" json:"user" toml:"user" env:"CRATEDB_USER"`
	Password   string `yaml:"password" json:"password" toml:"password" env:"CRATEDB_PASSWORD"`
}

func (fc *fileConfig) toConfig() *Config {
	config := &Config{
		Host:       fc.Host,
		Port:       fc.Port,
		Schema:     fc.Schema,
		DisableTLS: fc.DisableTLS,
	}
	if fc.User != "" {
		config.Credentials = &Credentials{
			User:     fc.User,
			Password: fc.Password,
		}
	}
	config.applyDefaults()
	return config
}

// LoadConfig reads the configuration from a file and overlays environment variables.
//
// The file format follows the extension: .yml, .yaml, .json, .toml or .edn.
// Environment variables are CRATEDB_HOST, CRATEDB_PORT, CRATEDB_SCHEMA,
// CRATEDB_DISABLE_TLS, CRATEDB_USER and CRATEDB_PASSWORD.
func LoadConfig(path string) (*Config, error) {
	var fc fileConfig
	if err := cleanenv.ReadConfig(path, &fc); err != nil {
		return nil, errors.Wrapf(err, "failed to read config %s", path)
	}
	return fc.toConfig(), nil
}

// LoadConfigFromEnv reads the configuration from environment variables only.
func LoadConfigFromEnv() (*Config, error) {
	var fc fileConfig
	if err := cleanenv.ReadEnv(&fc); err != nil {
		return nil, errors.Wrap(err, "failed to read config from environment")
	}
	return fc.toConfig(), nil
}

func (c *Config) applyDefaults() {
	if c.Port == 0 {
		c.Port = DefaultPort
	}
	if c.Schema == "" {
		c.Schema = DefaultSchema
	}
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.Host) == "" {
		return errors.New("host must not be empty")
	}
	if c.Port < 1 || c.Port > 65535 {
		return errors.Errorf("port %d out of range", c.Port)
	}
	return nil
}
