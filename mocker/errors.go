package mocker

import "fmt"

type (
	unsupportedMethodError string

	bodyDecodeError string
)

// Error implements the error interface
func (u unsupportedMethodError) Error() string {
	return fmt.Sprintf("method %s is not supported by the response table", string(u))
}

// Error implements the error interface
func (b bodyDecodeError) Error() string {
	return fmt.Sprintf("request body for %s is not valid UTF-8 text", string(b))
}
