package response

import "github.com/gofiber/fiber/v3"

// ErrorBody is the shape of every non-2xx JSON response.
type ErrorBody struct {
	Error  string      `json:"error"`
	Fields interface{} `json:"fields,omitempty"`
}

const (
	MessageOK                  = "ok"
	MessageBadRequest          = "bad request"
	MessageUnauthorized        = "unauthorized"
	MessageForbidden           = "forbidden"
	MessageNotFound            = "not found"
	MessageConflict            = "conflict"
	MessageUnprocessableEntity = "unprocessable entity"
	MessageServiceUnavailable  = "service unavailable"
	MessageInternalServerError = "internal server error"
	MessageError               = "error"
)

// Success writes data as the bare response body.
func Success(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

// Deleted is the acknowledgement body for delete operations.
func Deleted(c fiber.Ctx) error {
	return Success(c, fiber.StatusOK, fiber.Map{"success": true})
}

func Error(c fiber.Ctx, status int, message string, fields interface{}) error {
	st := normalizeStatus(status)
	return c.Status(st).JSON(ErrorBody{Error: normalizeMessage(message, st), Fields: fields})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func normalizeMessage(message string, status int) string {
	if message != "" {
		return message
	}
	return DefaultMessageForStatus(status)
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusOK:
		return MessageOK
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusUnauthorized:
		return MessageUnauthorized
	case fiber.StatusForbidden:
		return MessageForbidden
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusConflict:
		return MessageConflict
	case fiber.StatusUnprocessableEntity:
		return MessageUnprocessableEntity
	case fiber.StatusServiceUnavailable:
		return MessageServiceUnavailable
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
