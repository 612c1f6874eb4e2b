package client

import "fmt"

// TransportError wraps a failure to get any response at all.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request to %s failed: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// HTTPStatusError is a response with a non-2xx status code.
type HTTPStatusError struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *HTTPStatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Status)
}

// SchemaError is a 2xx response whose body is not the expected shape. The API
// reports some failures this way, with the reason in a message field.
type SchemaError struct {
	URL     string
	Message string
	Err     error
}

func (e *SchemaError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("malformed inventory response: %v", e.Err)
	}
	return fmt.Sprintf("inventory response without descriptions: %s", e.Message)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
