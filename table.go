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
	"fmt"
)

// Table is a handle to a CrateDB table for convenience statements.
type Table struct {
	c *Client

	// Schema is the name of the schema.
	//
	// This is optional and may be empty, in which case the Default-Schema of
	// the client applies.
	Schema string
	// Table is the name of the table.
	Table string
}

func (c *Client) Table(tableName string) *Table {
	return &Table{
		c:     c,
		Table: tableName,
	}
}

// Drop drops the table.
func (t *Table) Drop(ctx context.Context) error {
	return t.exec(ctx, fmt.Sprintf(`DROP TABLE %s`, t.Identifier()))
}

// DropIfExists drops the table if it exists.
func (t *Table) DropIfExists(ctx context.Context) error {
	return t.exec(ctx, fmt.Sprintf(`DROP TABLE IF EXISTS %s`, t.Identifier()))
}

// Refresh makes rows written so far visible to subsequent reads.
//
// See https://cratedb.com/docs/crate/reference/en/latest/sql/statements/refresh.html
func (t *Table) Refresh(ctx context.Context) error {
	return t.exec(ctx, fmt.Sprintf(`REFRESH TABLE %s`, t.Identifier()))
}

func (t *Table) exec(ctx context.Context, stmt string) error {
	s := t.c.Statement(stmt)
	s.DiscardResult = true
	_, err := s.Execute(ctx)
	return err
}

// Identifier returns the quoted, optionally schema qualified, table name.
func (t *Table) Identifier() string {
	var b bytes.Buffer
	if t.Schema != "" {
		b.WriteString(quoteIdent(t.Schema))
		b.WriteByte('.')
	}
	b.WriteString(quoteIdent(t.Table))
	return b.String()
}

// quoteIdent quotes s as a SQL identifier, doubling embedded quotes.
func quoteIdent(s string) string {
	var b bytes.Buffer
	b.WriteRune('"')
	for _, c := range s {
		if c == '"' {
			b.WriteRune('"')
		}
		b.WriteRune(c)
	}
	b.WriteRune('"')
	return b.String()
}
