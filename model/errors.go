package model

import "strings"

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewAPIError(errReason error) APIError {
	reason := errReason.Error()

	switch {
	case reason == "RATE_LIMIT_REACHED":
		return APIError{
			Code:    "RATE_LIMIT_REACHED",
			Message: "github rate limit reached. consider using a token to increase the limit or wait few minutes and try again",
		}

	// the upstream code keeps the literal github status, e.g. UPSTREAM_FETCH_ERROR: 403 Forbidden
	case strings.HasPrefix(reason, "UPSTREAM_FETCH_ERROR"):
		return APIError{
			Code:    reason,
			Message: "github answered with an error status. check the username exists and try again",
		}

	case reason == "RATE_LIMITER_ERROR" || reason == "FETCH_ERROR":
		return APIError{
			Code:    reason,
			Message: "internal server error. contact our support with the reason code for assistance",
		}

	default:
		return APIError{
			Code:    reason,
			Message: "internal server error. contact our support with the reason code for assistance",
		}
	}
}
