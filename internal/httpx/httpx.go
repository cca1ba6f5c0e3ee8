package httpx

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// ErrorResponse is the JSON error body every handler returns. The request id
// comes from the requestid middleware so users can quote it in bug reports.
type ErrorResponse struct {
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

func Error(c *fiber.Ctx, status int, code string, message string) error {
	if message == "" {
		message = "Request failed"
	}
	resp := ErrorResponse{Error: message, Code: code}
	if id, ok := c.Locals("requestid").(string); ok {
		resp.RequestID = id
	}
	return c.Status(status).JSON(resp)
}

func BadRequest(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusBadRequest, code, message)
}

func Unauthorized(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusUnauthorized, code, message)
}

func Forbidden(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusForbidden, code, message)
}

func NotFound(c *fiber.Ctx, code string, message string) error {
	return Error(c, fiber.StatusNotFound, code, message)
}

func Internal(c *fiber.Ctx, code string) error {
	return Error(c, fiber.StatusInternalServerError, code, "Internal server error")
}

// ParamUint parses a numeric route parameter.
func ParamUint(c *fiber.Ctx, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(key), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
