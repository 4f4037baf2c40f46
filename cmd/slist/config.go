package main

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	modePush   = "push"
	modeSorted = "sorted"
)

type config struct {
	LoggerLevel logrus.Level `envconfig:"LOG_LEVEL" default:"info"`
	LogToEcs    bool         `envconfig:"LOG_TO_ECS" default:"false"`
	Mode        string       `envconfig:"MODE" default:"push"`
}

func getConfig() (*config, error) {
	cfg := new(config)
	if err := envconfig.Process("SLIST", cfg); err != nil {
		return nil, err
	}
	if cfg.Mode != modePush && cfg.Mode != modeSorted {
		return nil, fmt.Errorf("unknown mode %q", cfg.Mode)
	}

	return cfg, nil
}
