package response

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the body of action responses without a payload
type MessageResponse struct {
	Message string `json:"message"`
}

// RowsResponse wraps a collection
type RowsResponse struct {
	Rows interface{} `json:"rows"`
	Meta interface{} `json:"meta,omitempty"`
}

// RecordResponse wraps a single record
type RecordResponse struct {
	Record interface{} `json:"record"`
}

// Rows sends a 200 response with a collection
func Rows(c *fiber.Ctx, rows interface{}) error {
	return c.JSON(RowsResponse{Rows: rows})
}

// Page sends a 200 response with a collection and pagination metadata
func Page(c *fiber.Ctx, rows interface{}, meta interface{}) error {
	return c.JSON(RowsResponse{Rows: rows, Meta: meta})
}

// Record sends a single record with the given status
func Record(c *fiber.Ctx, statusCode int, record interface{}) error {
	return c.Status(statusCode).JSON(RecordResponse{Record: record})
}

// Message sends a 200 response with a message
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(MessageResponse{Message: message})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(ErrorResponse{Error: message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// Conflict sends a 409 conflict response
func Conflict(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusConflict, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
