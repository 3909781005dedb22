package mocker

import (
	"net/http"
	"strings"
	"time"

	"github.com/mocksrv/mocker/spec"
	"github.com/sirupsen/logrus"
)

type (
	// Header is one configured response header. Declared order is
	// preserved through to the wire.
	Header struct {
		Name  string
		Value string
	}

	// Response is one resolved answer: either built from a declaration at
	// startup or synthesized by the dispatcher. Immutable once built.
	Response struct {
		Method     string
		Path       string
		StatusCode int
		Headers    []Header
		Delay      time.Duration
		Body       *Body
	}

	// Table maps method and exact path to the declared Response. Built
	// once at startup and read-only afterwards, so lookups need no
	// locking.
	Table struct {
		responses map[string]map[string]*Response
	}
)

var supportedMethods = []string{
	http.MethodHead,
	http.MethodGet,
	http.MethodPost,
	http.MethodPut,
	http.MethodDelete,
}

// BuildTable indexes the declared responses by method and path. Later
// declarations for the same method and path overwrite earlier ones. A
// method outside HEAD/GET/POST/PUT/DELETE is a configuration error.
func BuildTable(declarations []spec.Response, logger logrus.FieldLogger) (*Table, error) {
	t := &Table{responses: map[string]map[string]*Response{}}
	for _, method := range supportedMethods {
		t.responses[method] = map[string]*Response{}
	}

	for _, declaration := range declarations {
		response := newResponse(declaration, logger)

		paths, ok := t.responses[response.Method]
		if !ok {
			return nil, unsupportedMethodError(declaration.Method)
		}

		logger.WithFields(logrus.Fields{
			"method": response.Method,
			"path":   response.Path,
			"status": response.StatusCode,
		}).Debug("wiring")

		paths[response.Path] = response
	}

	return t, nil
}

// Lookup returns the declared response for an exact method and path match,
// or nil. Paths are compared byte-for-byte, query string included; there
// is no pattern matching and no normalization.
func (t *Table) Lookup(method, path string) *Response {
	paths, ok := t.responses[method]
	if !ok {
		return nil
	}

	return paths[path]
}

func newResponse(declaration spec.Response, logger logrus.FieldLogger) *Response {
	method := strings.ToUpper(declaration.Method)
	if method == "" {
		method = http.MethodGet
	}

	path := declaration.Path
	if path == "" {
		path = "/"
	}

	statusCode := declaration.ResponseCode
	if statusCode == 0 {
		statusCode = http.StatusOK
	}

	var headers []Header
	for _, declared := range declaration.Headers {
		for name, value := range declared {
			headers = append(headers, Header{Name: name, Value: value})
		}
	}

	return &Response{
		Method:     method,
		Path:       path,
		StatusCode: statusCode,
		Headers:    headers,
		Delay:      time.Duration(declaration.Delay * float64(time.Second)),
		Body:       NewBody(declaration.Body, logger),
	}
}
