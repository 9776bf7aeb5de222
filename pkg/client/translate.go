package client

import (
	"net/http"

	apperrors "roombook/pkg/errors"
)

// translateError maps a downstream error response into the saga error
// taxonomy by HTTP status. The remote message is carried through; raw
// transport details are not.
func translateError(service string, resp *Response) error {
	var remote struct {
		Error   string         `json:"error"`
		Code    string         `json:"code"`
		Details map[string]any `json:"details,omitempty"`
	}
	message := service + " rejected the request"
	if err := resp.DecodeJSON(&remote); err == nil && remote.Error != "" {
		message = remote.Error
	}

	switch resp.StatusCode {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return apperrors.Validation(message)
	case http.StatusNotFound:
		return apperrors.New(apperrors.CodeNotFound, message, http.StatusNotFound)
	case http.StatusConflict:
		return apperrors.Conflict(message)
	case http.StatusServiceUnavailable, http.StatusGatewayTimeout, http.StatusBadGateway:
		return apperrors.Unavailable(service)
	default:
		return apperrors.Internal(message, nil)
	}
}

func successful(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}
