package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON body returned for failed requests. Code is a stable
// machine-readable identifier; Message is for humans.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

// HTTPStatus maps an error kind to its HTTP status code.
func HTTPStatus(kind ErrorKind) int {
	switch kind {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidInput:
		return fiber.StatusBadRequest
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	case KindConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// SendError writes the error as a JSON response. Internal error details are not
// leaked to the caller; they are expected to be logged where they occur.
func SendError(c *fiber.Ctx, err error) error {
	kind := KindOf(err)
	resp := ErrorResponse{Code: string(kind), Message: err.Error()}
	if kind == KindInternal {
		resp.Message = "Internal server error"
	}
	return c.Status(HTTPStatus(kind)).JSON(resp)
}
