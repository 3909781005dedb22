package mocker

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber"
	"github.com/google/uuid"
	"github.com/mocksrv/mocker/spec"
	"github.com/sirupsen/logrus"
)

type (
	mocker struct {
		app        *fiber.App
		dispatcher *dispatcher
		registry   *Registry
		table      *Table
		logger     logrus.FieldLogger
		host       string
		port       int
		basePath   string
	}

	config struct {
		host     string
		port     int
		basePath string
		logger   logrus.FieldLogger
	}

	// Option is a function that can modify a default config
	Option func(c *config)
)

// RequestIDHeader is echoed back on every response, generated when the
// request did not carry one.
const RequestIDHeader = "X-Request-Id"

// New builds a server answering from the declared responses, with a
// default setup of 0.0.0.0:8000 and /mocker as the introspection path.
func New(declarations []spec.Response, options ...Option) (*mocker, error) {
	c := &config{
		host:     "0.0.0.0",
		port:     8000,
		basePath: "/mocker",
		logger:   logrus.StandardLogger(),
	}

	for _, applyOption := range options {
		applyOption(c)
	}

	table, err := BuildTable(declarations, c.logger)
	if err != nil {
		return nil, err
	}

	app := fiber.New(&fiber.Settings{
		ServerHeader:          "Mocker",
		DisableStartupMessage: true,
	})

	registry := NewRegistry()

	m := &mocker{
		app:        app,
		logger:     c.logger,
		host:       c.host,
		port:       c.port,
		basePath:   c.basePath,
		table:      table,
		registry:   registry,
		dispatcher: newDispatcher(table, registry, c.basePath, c.logger),
	}

	app.Use(m.handle)

	return m, nil
}

// Start starts the server
func (m *mocker) Start() error {
	errc := make(chan error)

	go func() {
		m.logger.WithFields(logrus.Fields{"host": m.host, "port": m.port}).Info("server starts")
		errc <- m.app.Listen(fmt.Sprintf("%s:%d", m.host, m.port))
	}()

	return <-errc
}

// Shutdown gracefully shuts down the server
func (m *mocker) Shutdown() error {
	if shutdownErr := m.app.Shutdown(); shutdownErr != nil {
		return fmt.Errorf("failed to shutdown app %w", shutdownErr)
	}

	return nil
}

// WithLogger overrides the default logger
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		c.logger = l
	}
}

// WithHost sets the host
func WithHost(host string) Option {
	return func(c *config) {
		c.host = host
	}
}

// WithPort sets the port
func WithPort(port int) Option {
	return func(c *config) {
		c.port = port
	}
}

// WithBasePath sets the reserved path prefix of the introspection endpoint
func WithBasePath(basePath string) Option {
	return func(c *config) {
		c.basePath = basePath
	}
}

// handle serves every route: the dispatcher picks the response, then the
// transport renders it. The request URI is matched raw, query string
// included, so declarations may pin an exact query.
func (m *mocker) handle(c *fiber.Ctx) {
	requestID := c.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.New().String()
	}

	method := c.Method()
	path := c.OriginalURL()

	m.logger.WithFields(logrus.Fields{
		"request_id": requestID,
		"method":     method,
		"path":       path,
	}).Debug("serving")

	response := m.dispatcher.Resolve(method, path, c.Fasthttp.Request.Body())

	// The delay blocks only this handler; other in-flight requests keep
	// being served.
	if response.Delay > 0 {
		time.Sleep(response.Delay)
	}

	c.Status(response.StatusCode)
	c.Set(RequestIDHeader, requestID)

	for _, header := range response.Headers {
		c.Fasthttp.Response.Header.Add(header.Name, header.Value)
	}

	c.Fasthttp.Response.Header.SetContentLength(response.Body.Length())
	c.SendBytes(response.Body.Load())
}
