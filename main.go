package main

import (
	"os"

	"github.com/mocksrv/mocker/config"
	"github.com/mocksrv/mocker/mocker"
	"github.com/mocksrv/mocker/spec"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.New()

	logger := logrus.StandardLogger()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	}

	declared := spec.Config{}

	// Try to load a default config
	{
		// No config...no problem
		if _, err := os.Stat(cfg.ConfigFilePath); err == nil {
			declared, err = spec.Load(cfg.ConfigFilePath)
			if err != nil {
				logger.WithError(err).Fatal("failed to load declarations")
			}

			logger.WithField("path", cfg.ConfigFilePath).Info("declarations loaded")
		} else {
			logger.WithField("path", cfg.ConfigFilePath).Info("no declaration file, serving an empty table")
		}
	}

	// The declaration file wins over the environment when it names a host
	// or port.
	host := cfg.Host
	if declared.Hostname != "" {
		host = declared.Hostname
	}

	port := cfg.Port
	if declared.Port != 0 {
		port = declared.Port
	}

	m, err := mocker.New(
		declared.Responses,
		mocker.WithHost(host),
		mocker.WithPort(port),
		mocker.WithBasePath(cfg.MockerBasePath),
		mocker.WithLogger(logger),
	)
	if err != nil {
		logger.WithError(err).Fatal("failed to build the response table")
	}

	if err := m.Start(); err != nil {
		logger.WithError(err).Fatal("server stops")
	}
}
