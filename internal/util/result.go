package util

// Result is the uniform envelope every façade operation returns. The contract:
// Success is true iff the requested effect was applied (or the read completed);
// on failure Message carries a human-readable reason and Data holds the zero
// value. List operations use FailList instead, so callers always receive an
// empty slice rather than nil.
type Result[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message"`
}

func Ok[T any](data T, message string) Result[T] {
	return Result[T]{Success: true, Data: data, Message: message}
}

// Done reports a fire-and-forget mutation (delete, logout) that carries no
// payload.
func Done(message string) Result[struct{}] {
	return Result[struct{}]{Success: true, Message: message}
}

func Fail[T any](message string) Result[T] {
	var zero T
	return Result[T]{Success: false, Data: zero, Message: message}
}

// FailList is the failure envelope for list operations: Data defaults to an
// empty, non-nil slice so callers never need a nil check.
func FailList[T any](message string) Result[[]T] {
	return Result[[]T]{Success: false, Data: []T{}, Message: message}
}
