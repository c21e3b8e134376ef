package verifykit

import (
	"errors"

	"github.com/verifykit/client-go/internal/api"
)

// Response is the normalized result of a verification call. On success
// it carries the decoded API payload fields merged with "message" and
// "status_code"; on failure it carries "status", "message" and
// "status_code" only.
type Response map[string]any

// StatusCode returns the "status_code" field, or 0 if absent.
func (r Response) StatusCode() int {
	code, _ := r["status_code"].(int)
	return code
}

// Message returns the "message" field, or "" if absent.
func (r Response) Message() string {
	msg, _ := r["message"].(string)
	return msg
}

// IsError reports whether the response carries the error marker.
func (r Response) IsError() bool {
	status, _ := r["status"].(string)
	return status == "error"
}

// Messages for failures that never produced an HTTP status.
const (
	networkErrorMessage = "Connection timeout or network issue."
	unknownErrorMessage = "An unknown error occurred."
)

// statusMessage maps an HTTP status code to its fixed message.
func statusMessage(code int) string {
	switch code {
	case 200:
		return "API OK"
	case 400:
		return "A parameter was missing or has an invalid value"
	case 401:
		return "Unauthorized. Your API key is invalid or has been disabled."
	case 403:
		return "Forbidden. Your query limit has been exceeded."
	case 500:
		return "Internal server error. Please contact support."
	case 502:
		return "Bad gateway. The verification service is temporarily unavailable."
	default:
		return unknownErrorMessage
	}
}

// errorResponse builds the unified error shape.
func errorResponse(message string, statusCode int) Response {
	return Response{
		"status":      "error",
		"message":     message,
		"status_code": statusCode,
	}
}

// validationFailure is the response for a missing required parameter.
// No request is dispatched in this case.
func validationFailure() Response {
	return errorResponse(statusMessage(400), 400)
}

// formatResult normalizes a dispatch outcome into a Response.
//
// Error outcomes map to the unified error shape: network failures keep
// a fixed message with status code 0, HTTP faults resolve their real
// status code through the message table. Success outcomes merge the
// decoded payload with "message"/"status_code" and are pruned of empty
// fields; an empty payload is additionally marked as an error.
func formatResult(res *api.Result, err error) Response {
	if err != nil {
		var statusErr *api.StatusError
		if errors.As(err, &statusErr) {
			return errorResponse(statusMessage(statusErr.StatusCode), statusErr.StatusCode)
		}
		var netErr *api.NetworkError
		if errors.As(err, &netErr) {
			return errorResponse(networkErrorMessage, 0)
		}
		return errorResponse(unknownErrorMessage, 0)
	}
	if res == nil {
		return errorResponse(unknownErrorMessage, 0)
	}

	out := Response{}
	switch body := res.Body.(type) {
	case map[string]any:
		for key, value := range body {
			out[key] = value
		}
	case nil:
		// Empty or undecodable body; handled by the empty-payload branch.
	default:
		// Arrays and scalars cannot be field-merged.
		out["data"] = body
	}

	empty := len(out) == 0
	out["message"] = statusMessage(res.StatusCode)
	out["status_code"] = res.StatusCode
	if empty {
		out["status"] = "error"
	}

	pruneEmpty(out)
	return out
}

// pruneEmpty removes empty-valued keys from m, depth-first: nested
// mappings are pruned before the emptiness test, so a mapping that
// becomes empty is itself removed from its parent.
func pruneEmpty(m map[string]any) {
	for key, value := range m {
		if nested, ok := value.(map[string]any); ok {
			pruneEmpty(nested)
		}
		if isEmpty(m[key]) {
			delete(m, key)
		}
	}
}

// isEmpty reports whether a value counts as empty for pruning: nil,
// empty string, false, numeric zero, empty mapping or empty list.
func isEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	case int:
		return v == 0
	case map[string]any:
		return len(v) == 0
	case []any:
		return len(v) == 0
	}
	return false
}
