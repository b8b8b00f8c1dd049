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

/*
Package cratedb provides a lightweight client for the CrateDB HTTP SQL endpoint.

# Client

Use NewClient to create a client. This is the major entrance to construct structs for interacting with CrateDB:

	c, err := cratedb.NewClient(&cratedb.Config{
		Host:       "localhost",
		DisableTLS: true,
	})

Set Credentials to authenticate with basic authentication:

	c, err := cratedb.NewClient(&cratedb.Config{
		Host:        "<cluster>.cratedb.net",
		Credentials: &cratedb.Credentials{User: "admin", Password: "<password>"},
	})

# Execute Statements

Execute sends a statement with positional arguments and returns the result document:

	resp, err := c.Execute(ctx, "SELECT name FROM sys.cluster")
	resp, err = c.Execute(ctx, "SELECT * FROM t WHERE id = ?", "a")

When every argument is a slice, the arguments are sent as bulk arguments and
the statement runs once per slice:

	resp, err = c.Execute(ctx, "INSERT INTO t (id, v) VALUES (?, ?)",
		[]any{"a", 1},
		[]any{"b", 2},
	)

Create a Statement for column types, explicit argument modes, or to skip
decoding the response:

	s := c.Statement("SELECT * FROM t")
	s.WithTypes = true
	resp, err := s.Execute(ctx)

# Errors

A statement rejected by CrateDB fails with a *DatabaseError carrying the
CrateDB error code; any other unexpected HTTP status fails with a
*NetworkError:

	if dbErr, ok := cratedb.AsDatabaseError(err); ok && dbErr.Code == cratedb.ErrorCodeUnknownRelation {
		// ...
	}
*/
package cratedb
