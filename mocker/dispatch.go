package mocker

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/mocksrv/mocker/encode"
	"github.com/sirupsen/logrus"
)

// dispatcher turns one inbound request into the Response to render.
// Requests under the introspection base path read or clear the registry;
// everything else is recorded and answered from the table.
type dispatcher struct {
	table    *Table
	registry *Registry
	basePath string
	logger   logrus.FieldLogger
}

func newDispatcher(table *Table, registry *Registry, basePath string, logger logrus.FieldLogger) *dispatcher {
	return &dispatcher{
		table:    table,
		registry: registry,
		basePath: basePath,
		logger:   logger,
	}
}

// Resolve never fails: lookup misses and internal faults come back as
// synthesized 404/500 responses, so every request yields exactly one
// HTTP response.
func (d *dispatcher) Resolve(method, path string, rawBody []byte) *Response {
	if strings.HasPrefix(path, d.basePath) {
		return d.resolveIntrospection(method, path)
	}

	// Record before lookup, so the registry sees every inbound request
	// whether or not a mock matches.
	if err := d.registry.Add(method, path, rawBody); err != nil {
		d.logger.WithError(err).WithField("path", path).Error("failed to record call")
		return failure(method, path, err)
	}

	if response := d.table.Lookup(method, path); response != nil {
		return response
	}

	d.logger.WithFields(logrus.Fields{"method": method, "path": path}).Debug("no mock configured")

	return notFound(method, path)
}

func (d *dispatcher) resolveIntrospection(method, path string) *Response {
	switch method {
	case http.MethodGet:
		payload, err := encode.JSONString(d.registry.List())
		if err != nil {
			d.logger.WithError(err).Error("failed to encode registry")
			return failure(method, path, err)
		}

		return &Response{
			Method:     method,
			Path:       path,
			StatusCode: http.StatusOK,
			Headers:    jsonHeaders(),
			Body:       newInlineBody(payload),
		}

	case http.MethodDelete:
		d.registry.Clear()

		return &Response{
			Method:     method,
			Path:       path,
			StatusCode: http.StatusNoContent,
			Body:       newInlineBody(""),
		}

	default:
		return &Response{
			Method:     method,
			Path:       path,
			StatusCode: http.StatusInternalServerError,
			Body:       newInlineBody("Unknown method"),
		}
	}
}

func notFound(method, path string) *Response {
	return &Response{
		Method:     method,
		Path:       path,
		StatusCode: http.StatusNotFound,
		Headers:    jsonHeaders(),
		Body:       newInlineBody(messageBody(fmt.Sprintf("path '%s' not found", path))),
	}
}

func failure(method, path string, err error) *Response {
	return &Response{
		Method:     method,
		Path:       path,
		StatusCode: http.StatusInternalServerError,
		Headers:    jsonHeaders(),
		Body:       newInlineBody(messageBody(fmt.Sprintf("An error happened with path '%s': %s", path, err))),
	}
}

func jsonHeaders() []Header {
	return []Header{{Name: "Content-Type", Value: "application/json"}}
}

func messageBody(message string) string {
	body, _ := json.Marshal(map[string]string{"message": message})
	return string(body)
}
