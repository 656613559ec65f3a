package response

// Error represents the standard API error body. Error responses carry a
// single human-readable detail string.
type Error struct {
	Detail string `json:"detail"`
}

// Detail creates an error response with the given detail string
func Detail(detail string) *Error {
	return &Error{Detail: detail}
}

// NotFound creates a not found error response
func NotFound(detail string) *Error {
	if detail == "" {
		detail = "Resource not found"
	}
	return Detail(detail)
}

// BadRequest creates a bad request error response
func BadRequest(detail string) *Error {
	if detail == "" {
		detail = "Invalid request"
	}
	return Detail(detail)
}

// InternalError creates an internal server error response
func InternalError(detail string) *Error {
	if detail == "" {
		detail = "An internal error occurred"
	}
	return Detail(detail)
}
