package apierror

import (
	"encoding/json"
	"fmt"
)

// Error is a classified Graph API failure. It carries everything the provider
// returned plus the derived category and retry hint.
type Error struct {
	Message    string
	HTTPStatus int
	Code       int
	Subcode    int
	Type       string
	Details    string
	FBTraceID  string
	ErrorData  json.RawMessage
	Raw        json.RawMessage

	Category Category
	Retry    RetryHint
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Code != CodeAbsent {
		return fmt.Sprintf("graph api error (code=%d, category=%s): %s", e.Code, e.Category, e.Message)
	}
	return fmt.Sprintf("graph api error (status=%d, category=%s): %s", e.HTTPStatus, e.Category, e.Message)
}

// IsAuthError reports whether the token is invalid or expired.
func (e *Error) IsAuthError() bool { return e.Category == CategoryAuthorization }

// IsRateLimit reports whether the provider throttled the request.
func (e *Error) IsRateLimit() bool { return e.Category == CategoryThrottling }

// IsTemplateError reports whether a message template was rejected.
func (e *Error) IsTemplateError() bool { return e.Category == CategoryTemplate }

// RequiresTokenRefresh reports whether the recommended recovery is a new
// access token.
func (e *Error) RequiresTokenRefresh() bool { return e.Retry.Action == ActionRefreshToken }

// errorBody is the provider's error envelope: {"error": {...}}.
type errorBody struct {
	Error *errorDetail `json:"error"`
}

type errorDetail struct {
	Message      string          `json:"message"`
	Type         string          `json:"type"`
	Code         *int            `json:"code"`
	ErrorSubcode int             `json:"error_subcode"`
	ErrorUserMsg string          `json:"error_user_msg"`
	Details      string          `json:"details"`
	ErrorData    json.RawMessage `json:"error_data"`
	FBTraceID    string          `json:"fbtrace_id"`
}

// FromResponse builds a classified Error from a non-2xx response. It never
// fails: bodies that are not the expected envelope (or not JSON at all)
// degrade to an unknown or server categorization based on the HTTP status.
func FromResponse(httpStatus int, body []byte, retryAfterHeader string) *Error {
	e := &Error{
		Message:    "unknown graph api error",
		HTTPStatus: httpStatus,
		Code:       CodeAbsent,
		Raw:        append(json.RawMessage(nil), body...),
	}

	var envelope errorBody
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error != nil {
		detail := envelope.Error
		if detail.Message != "" {
			e.Message = detail.Message
		}
		if detail.Code != nil {
			e.Code = *detail.Code
		}
		e.Subcode = detail.ErrorSubcode
		e.Type = detail.Type
		e.FBTraceID = detail.FBTraceID
		e.ErrorData = detail.ErrorData
		e.Details = detail.ErrorUserMsg
		if e.Details == "" {
			e.Details = detail.Details
		}
	}

	e.Category = Categorize(e.Code, httpStatus)
	e.Retry = RetryHintFor(e.Category, retryAfterHeader)

	return e
}
