package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type APIResponse[T any] struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    T      `json:"data,omitempty"`
}

func SuccessResponse[T any](message string, data T) APIResponse[T] {
	return APIResponse[T]{
		Code:    fiber.StatusOK,
		Message: message,
		Data:    data,
	}
}

func ErrorResponse(code int, message string) APIResponse[any] {
	return APIResponse[any]{
		Code:    code,
		Message: message,
	}
}

// ValidateRequest runs struct tag validation and folds the failures into a
// single readable message.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		var parts []string
		for _, f := range invalid {
			parts = append(parts, fmt.Sprintf("%s is %s", strings.ToLower(f.Field()), f.Tag()))
		}
		return fiber.NewError(fiber.StatusBadRequest, strings.Join(parts, ", "))
	}
	return fiber.NewError(fiber.StatusBadRequest, err.Error())
}

// ErrorHandlerMiddleware converts uncaught errors into JSON responses.
// Fiber errors keep their status; everything else is an opaque 500 so
// internals never leak to the widget.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}
		return ctx.Status(fiber.StatusInternalServerError).
			JSON(ErrorResponse(fiber.StatusInternalServerError, "Internal server error"))
	}
}
