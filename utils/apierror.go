package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// ApiError membawa status HTTP dari repository sampai ke controller.
type ApiError struct {
	Status    int    `json:"-"`
	Message   string `json:"message"`
	Transient bool   `json:"-"`
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewNotFound(format string, args ...interface{}) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: fmt.Sprintf(format, args...)}
}

func NewForbidden(format string, args ...interface{}) *ApiError {
	return &ApiError{Status: fiber.StatusForbidden, Message: fmt.Sprintf(format, args...)}
}

func NewBadRequest(format string, args ...interface{}) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: fmt.Sprintf(format, args...)}
}

// NewConflict dipakai untuk kegagalan transaksi yang boleh di-retry oleh caller.
func NewConflict(format string, args ...interface{}) *ApiError {
	return &ApiError{Status: fiber.StatusConflict, Message: fmt.Sprintf(format, args...), Transient: true}
}

// RespondError mengubah error dari repository menjadi response JSON.
// Error selain *ApiError dianggap internal server error.
func RespondError(ctx *fiber.Ctx, err error) error {
	var apiErr *ApiError
	if errors.As(err, &apiErr) {
		return ctx.Status(apiErr.Status).JSON(fiber.Map{
			"success": false,
			"error":   apiErr.Message,
		})
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
	})
}
