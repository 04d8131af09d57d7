package inquiry

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
)

// Response codes synthesized on the client side
const (
	CodeValidation  = "400"
	CodeClient      = "500"
	CodeMalformed   = "502"
	CodeUnavailable = "503"
)

// Messages attached to synthesized errors
const (
	MessageAccountRequired = "Account number required"
	MessageUnexpected      = "An unexpected error occurred"
	MessageMalformed       = "Invalid response from server"
	MessageUnavailable     = "Service unavailable. Please check your connection."
	DetailNoResponse       = "No response from server"
)

// APIError is the single error shape for every failed inquiry, whether the server
// produced it or the client synthesized it.
type APIError struct {
	ResponseCode    string `json:"response_code"`
	ResponseMessage string `json:"response_message"`
	Detail          string `json:"error,omitempty"`
}

func (e *APIError) Error() string {
	msg := e.ResponseCode + ": " + e.ResponseMessage
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	return msg
}

// UnmarshalJSON accepts response_code as a JSON string or number
func (e *APIError) UnmarshalJSON(data []byte) error {
	var raw struct {
		ResponseCode    json.RawMessage `json:"response_code"`
		ResponseMessage string          `json:"response_message"`
		Detail          string          `json:"error"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	code, err := decodeResponseCode(raw.ResponseCode)
	if err != nil {
		return err
	}

	*e = APIError{ResponseCode: code, ResponseMessage: raw.ResponseMessage, Detail: raw.Detail}
	return nil
}

func decodeResponseCode(raw json.RawMessage) (string, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return "", nil
	}

	var code string
	if err := json.Unmarshal(raw, &code); err == nil {
		return code, nil
	}

	var number json.Number
	if err := json.Unmarshal(raw, &number); err != nil {
		return "", fmt.Errorf("response_code must be a string or number: %w", err)
	}
	return number.String(), nil
}

// HTTPStatus maps the response code to an HTTP status, defaulting to 500
// when the code is not a valid error status.
func (e *APIError) HTTPStatus() int {
	code, err := strconv.Atoi(e.ResponseCode)
	if err != nil || code < 400 || code > 599 {
		return http.StatusInternalServerError
	}
	return code
}

// NewValidationError reports input rejected before any network call
func NewValidationError(message string) *APIError {
	return &APIError{ResponseCode: CodeValidation, ResponseMessage: message}
}

// NewUnavailableError reports a request that was sent but never answered
func NewUnavailableError() *APIError {
	return &APIError{
		ResponseCode:    CodeUnavailable,
		ResponseMessage: MessageUnavailable,
		Detail:          DetailNoResponse,
	}
}

// NewClientError reports a request that could not be built or sent
func NewClientError(err error) *APIError {
	return &APIError{
		ResponseCode:    CodeClient,
		ResponseMessage: MessageUnexpected,
		Detail:          err.Error(),
	}
}

// NewMalformedResponseError reports a success status carrying an unusable payload
func NewMalformedResponseError(err error) *APIError {
	return &APIError{
		ResponseCode:    CodeMalformed,
		ResponseMessage: MessageMalformed,
		Detail:          err.Error(),
	}
}

// AsAPIError extracts an APIError from err, converting anything else into a client error
func AsAPIError(err error) *APIError {
	if err == nil {
		return nil
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}
	return NewClientError(err)
}
