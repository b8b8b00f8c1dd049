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

// TypeID is the identifier CrateDB reports for a column data type when a
// statement is executed with column types requested.
//
// See https://cratedb.com/docs/crate/reference/en/latest/interfaces/http.html#column-types
type TypeID int

const (
	TypeNull                     TypeID = 0
	TypeNotSupported             TypeID = 1
	TypeChar                     TypeID = 2
	TypeBoolean                  TypeID = 3
	TypeText                     TypeID = 4
	TypeIP                       TypeID = 5
	TypeDoublePrecision          TypeID = 6
	TypeReal                     TypeID = 7
	TypeSmallint                 TypeID = 8
	TypeInteger                  TypeID = 9
	TypeBigint                   TypeID = 10
	TypeTimestampWithTimeZone    TypeID = 11
	TypeObject                   TypeID = 12
	TypeGeoPoint                 TypeID = 13
	TypeGeoShape                 TypeID = 14
	TypeTimestampWithoutTimeZone TypeID = 15
	TypeUncheckedObject          TypeID = 16
	TypeInterval                 TypeID = 17
	TypeRegproc                  TypeID = 19
	TypeTime                     TypeID = 20
	TypeOidvector                TypeID = 21
	TypeNumeric                  TypeID = 22
	TypeRegclass                 TypeID = 23
	TypeDate                     TypeID = 24
	TypeBit                      TypeID = 25
	TypeJSON                     TypeID = 26
	TypeCharacter                TypeID = 27
	TypeFloatVector              TypeID = 28
	TypeArray                    TypeID = 100
)

var typeNames = map[TypeID]string{
	TypeNull:                     "NULL",
	TypeNotSupported:             "NOT_SUPPORTED",
	TypeChar:                     "CHAR",
	TypeBoolean:                  "BOOLEAN",
	TypeText:                     "TEXT",
	TypeIP:                       "IP",
	TypeDoublePrecision:          "DOUBLE_PRECISION",
	TypeReal:                     "REAL",
	TypeSmallint:                 "SMALLINT",
	TypeInteger:                  "INTEGER",
	TypeBigint:                   "BIGINT",
	TypeTimestampWithTimeZone:    "TIMESTAMP_WITH_TIME_ZONE",
	TypeObject:                   "OBJECT",
	TypeGeoPoint:                 "GEO_POINT",
	TypeGeoShape:                 "GEO_SHAPE",
	TypeTimestampWithoutTimeZone: "TIMESTAMP_WITHOUT_TIME_ZONE",
	TypeUncheckedObject:          "UNCHECKED_OBJECT",
	TypeInterval:                 "INTERVAL",
	TypeRegproc:                  "REGPROC",
	TypeTime:                     "TIME",
	TypeOidvector:                "OIDVECTOR",
	TypeNumeric:                  "NUMERIC",
	TypeRegclass:                 "REGCLASS",
	TypeDate:                     "DATE",
	TypeBit:                      "BIT",
	TypeJSON:                     "JSON",
	TypeCharacter:                "CHARACTER",
	TypeFloatVector:              "FLOAT_VECTOR",
	TypeArray:                    "ARRAY",
}

// String returns the name of the type, or "UNKNOWN" for IDs outside the table.
func (t TypeID) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return "UNKNOWN"
}

// Known reports whether t is one of the type IDs documented by CrateDB.
func (t TypeID) Known() bool {
	_, ok := typeNames[t]
	return ok
}
