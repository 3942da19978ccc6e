package errors

// ErrorCode identifies an application error category. Codes are stable
// and safe to expose to API clients.
type ErrorCode int32

const (
	ErrorCode_HTTP_OK           ErrorCode = 200
	ErrorCode_INTERNAL          ErrorCode = 1000
	ErrorCode_INVALID_ARGUMENT  ErrorCode = 1001
	ErrorCode_NOT_FOUND         ErrorCode = 1002
	ErrorCode_ALREADY_EXISTS    ErrorCode = 1003
	ErrorCode_PERMISSION_DENIED ErrorCode = 1004
	ErrorCode_UNAUTHENTICATED   ErrorCode = 1005
	ErrorCode_INVALID_PAYLOAD   ErrorCode = 1006

	ErrorCode_AUTH_INVALID_TOKEN ErrorCode = 1100
	ErrorCode_AUTH_TOKEN_EXPIRED ErrorCode = 1101

	ErrorCode_QUESTION_NOT_FOUND   ErrorCode = 1200
	ErrorCode_QUESTION_POOL_EMPTY  ErrorCode = 1201
	ErrorCode_SESSION_NOT_FOUND    ErrorCode = 1202
	ErrorCode_SESSION_NOT_ACTIVE   ErrorCode = 1203
	ErrorCode_ATTEMPT_NOT_FOUND    ErrorCode = 1204
	ErrorCode_EVALUATION_FAILED    ErrorCode = 1205
	ErrorCode_TRANSCRIPTION_FAILED ErrorCode = 1206
	ErrorCode_FEEDBACK_FAILED      ErrorCode = 1207

	ErrorCode_INTEGRATION_STORAGE_FAILED ErrorCode = 1300
	ErrorCode_INTEGRATION_CACHE_FAILED   ErrorCode = 1301
	ErrorCode_AI_SERVICE_UNAVAILABLE     ErrorCode = 1302
	ErrorCode_AI_QUOTA_EXCEEDED          ErrorCode = 1303

	ErrorCode_DB_CONNECTION_FAILED ErrorCode = 1400
	ErrorCode_DB_QUERY_FAILED      ErrorCode = 1401
)

var codeNames = map[ErrorCode]string{
	ErrorCode_HTTP_OK:                    "HTTP_OK",
	ErrorCode_INTERNAL:                   "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:           "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:                  "NOT_FOUND",
	ErrorCode_ALREADY_EXISTS:             "ALREADY_EXISTS",
	ErrorCode_PERMISSION_DENIED:          "PERMISSION_DENIED",
	ErrorCode_UNAUTHENTICATED:            "UNAUTHENTICATED",
	ErrorCode_INVALID_PAYLOAD:            "INVALID_PAYLOAD",
	ErrorCode_AUTH_INVALID_TOKEN:         "AUTH_INVALID_TOKEN",
	ErrorCode_AUTH_TOKEN_EXPIRED:         "AUTH_TOKEN_EXPIRED",
	ErrorCode_QUESTION_NOT_FOUND:         "QUESTION_NOT_FOUND",
	ErrorCode_QUESTION_POOL_EMPTY:        "QUESTION_POOL_EMPTY",
	ErrorCode_SESSION_NOT_FOUND:          "SESSION_NOT_FOUND",
	ErrorCode_SESSION_NOT_ACTIVE:         "SESSION_NOT_ACTIVE",
	ErrorCode_ATTEMPT_NOT_FOUND:          "ATTEMPT_NOT_FOUND",
	ErrorCode_EVALUATION_FAILED:          "EVALUATION_FAILED",
	ErrorCode_TRANSCRIPTION_FAILED:       "TRANSCRIPTION_FAILED",
	ErrorCode_FEEDBACK_FAILED:            "FEEDBACK_FAILED",
	ErrorCode_INTEGRATION_STORAGE_FAILED: "INTEGRATION_STORAGE_FAILED",
	ErrorCode_INTEGRATION_CACHE_FAILED:   "INTEGRATION_CACHE_FAILED",
	ErrorCode_AI_SERVICE_UNAVAILABLE:     "AI_SERVICE_UNAVAILABLE",
	ErrorCode_AI_QUOTA_EXCEEDED:          "AI_QUOTA_EXCEEDED",
	ErrorCode_DB_CONNECTION_FAILED:       "DB_CONNECTION_FAILED",
	ErrorCode_DB_QUERY_FAILED:            "DB_QUERY_FAILED",
}

func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
