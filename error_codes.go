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

// ErrorCode is the numeric error code CrateDB attaches to an error response.
//
// Codes in the 4000 series are client errors, codes in the 5000 series are
// server errors.
//
// See https://cratedb.com/docs/crate/reference/en/latest/interfaces/http.html#error-codes
type ErrorCode int

const (
	ErrorCodeInvalidSyntax                   ErrorCode = 4000
	ErrorCodeInvalidAnalyzer                 ErrorCode = 4001
	ErrorCodeInvalidRelationName             ErrorCode = 4002
	ErrorCodeFieldTypeValidationFailed       ErrorCode = 4003
	ErrorCodeFeatureUnsupported              ErrorCode = 4004
	ErrorCodeAlterTableWithAliasUnsupported  ErrorCode = 4005
	ErrorCodeColumnAliasAmbiguous            ErrorCode = 4006
	ErrorCodeOperationNotSupportedOnRelation ErrorCode = 4007
	ErrorCodeInvalidColumnName               ErrorCode = 4008
	ErrorCodeUserNotAuthorized               ErrorCode = 4010
	ErrorCodeMissingUserPrivilege            ErrorCode = 4011
	ErrorCodeNodeReadOnly                    ErrorCode = 4031
	ErrorCodeUnknownRelation                 ErrorCode = 4041
	ErrorCodeUnknownAnalyzer                 ErrorCode = 4042
	ErrorCodeUnknownColumn                   ErrorCode = 4043
	ErrorCodeUnknownType                     ErrorCode = 4044
	ErrorCodeUnknownSchema                   ErrorCode = 4045
	ErrorCodeUnknownPartition                ErrorCode = 4046
	ErrorCodeUnknownRepository               ErrorCode = 4047
	ErrorCodeUnknownSnapshot                 ErrorCode = 4048
	ErrorCodeUnknownFunction                 ErrorCode = 4049
	ErrorCodeUnknownUser                     ErrorCode = 40410
	ErrorCodeDocumentExists                  ErrorCode = 4091
	ErrorCodeVersionConflict                 ErrorCode = 4092
	ErrorCodeRelationExists                  ErrorCode = 4093
	ErrorCodeTableAliasSchemaDiffers         ErrorCode = 4094
	ErrorCodeRepositoryExists                ErrorCode = 4095
	ErrorCodeSnapshotExists                  ErrorCode = 4096
	ErrorCodePartitionExists                 ErrorCode = 4097
	ErrorCodeFunctionExists                  ErrorCode = 4098
	ErrorCodeUserExists                      ErrorCode = 4099
	ErrorCodeObjectExists                    ErrorCode = 4100
	ErrorCodeUnhandledServerError            ErrorCode = 5000
	ErrorCodeTaskExecutionFailed             ErrorCode = 5001
	ErrorCodeShardsUnavailable               ErrorCode = 5002
	ErrorCodeQueryFailedOnShards             ErrorCode = 5003
	ErrorCodeSnapshotCreationFailed          ErrorCode = 5004
	ErrorCodeQueryKilled                     ErrorCode = 5030
)

var errorCodeNames = map[ErrorCode]string{
	ErrorCodeInvalidSyntax:                   "INVALID_SYNTAX",
	ErrorCodeInvalidAnalyzer:                 "INVALID_ANALYZER",
	ErrorCodeInvalidRelationName:             "INVALID_RELATION_NAME",
	ErrorCodeFieldTypeValidationFailed:       "FIELD_TYPE_VALIDATION_FAILED",
	ErrorCodeFeatureUnsupported:              "FEATURE_UNSUPPORTED",
	ErrorCodeAlterTableWithAliasUnsupported:  "ALTER_TABLE_WITH_ALIAS_UNSUPPORTED",
	ErrorCodeColumnAliasAmbiguous:            "COLUMN_ALIAS_AMBIGUOUS",
	ErrorCodeOperationNotSupportedOnRelation: "OPERATION_NOT_SUPPORTED_ON_RELATION",
	ErrorCodeInvalidColumnName:               "INVALID_COLUMN_NAME",
	ErrorCodeUserNotAuthorized:               "USER_NOT_AUTHORIZED",
	ErrorCodeMissingUserPrivilege:            "MISSING_USER_PRIVILEGE",
	ErrorCodeNodeReadOnly:                    "NODE_READ_ONLY",
	ErrorCodeUnknownRelation:                 "UNKNOWN_RELATION",
	ErrorCodeUnknownAnalyzer:                 "UNKNOWN_ANALYZER",
	ErrorCodeUnknownColumn:                   "UNKNOWN_COLUMN",
	ErrorCodeUnknownType:                     "UNKNOWN_TYPE",
	ErrorCodeUnknownSchema:                   "UNKNOWN_SCHEMA",
	ErrorCodeUnknownPartition:                "UNKNOWN_PARTITION",
	ErrorCodeUnknownRepository:               "UNKNOWN_REPOSITORY",
	ErrorCodeUnknownSnapshot:                 "UNKNOWN_SNAPSHOT",
	ErrorCodeUnknownFunction:                 "UNKNOWN_FUNCTION",
	ErrorCodeUnknownUser:                     "UNKNOWN_USER",
	ErrorCodeDocumentExists:                  "DOCUMENT_EXISTS",
	ErrorCodeVersionConflict:                 "VERSION_CONFLICT",
	ErrorCodeRelationExists:                  "RELATION_EXISTS",
	ErrorCodeTableAliasSchemaDiffers:         "TABLE_ALIAS_SCHEMA_DIFFERS",
	ErrorCodeRepositoryExists:                "REPOSITORY_EXISTS",
	ErrorCodeSnapshotExists:                  "SNAPSHOT_EXISTS",
	ErrorCodePartitionExists:                 "PARTITION_EXISTS",
	ErrorCodeFunctionExists:                  "FUNCTION_EXISTS",
	ErrorCodeUserExists:                      "USER_EXISTS",
	ErrorCodeObjectExists:                    "OBJECT_EXISTS",
	ErrorCodeUnhandledServerError:            "UNHANDLED_SERVER_ERROR",
	ErrorCodeTaskExecutionFailed:             "TASK_EXECUTION_FAILED",
	ErrorCodeShardsUnavailable:               "SHARDS_UNAVAILABLE",
	ErrorCodeQueryFailedOnShards:             "QUERY_FAILED_ON_SHARDS",
	ErrorCodeSnapshotCreationFailed:          "SNAPSHOT_CREATION_FAILED",
	ErrorCodeQueryKilled:                     "QUERY_KILLED",
}

// String returns the name of the error code, or "UNKNOWN" for codes outside the table.
func (c ErrorCode) String() string {
	if name, ok := errorCodeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsClientError reports whether c belongs to the 4000 series.
//
// 40410 (UNKNOWN_USER) is a 404 variant and counts as a client error.
func (c ErrorCode) IsClientError() bool {
	return (c >= 4000 && c < 5000) || (c >= 40000 && c < 50000)
}

// IsServerError reports whether c belongs to the 5000 series.
func (c ErrorCode) IsServerError() bool {
	return c >= 5000 && c < 6000
}
