package config

import (
	"go-dsa/pkg/heap"
	"go-dsa/pkg/tree"
	"go-dsa/util/logger"

	"github.com/pkg/errors"
)

type AppConfig struct {
	HeapConfig *HeapConfig
	LogConfig  *LogConfig
}

func New() *AppConfig {
	return &AppConfig{
		HeapConfig: NewHeapConfig(),
		LogConfig:  NewLogConfig(),
	}
}

// Validate checks every field and applies the log level.
func (c *AppConfig) Validate() error {
	if _, err := c.HeapConfig.ParseMode(); err != nil {
		return errors.Wrap(err, "invalid heap config")
	}
	if _, err := tree.Style(c.HeapConfig.Style); err != nil {
		return errors.Wrap(err, "invalid heap config")
	}
	return logger.SetLevel(c.LogConfig.Level)
}

type HeapConfig struct {
	// Mode is "min" or "max".
	Mode string

	// Style is the label of a registered tree renderer.
	Style string
}

func NewHeapConfig() *HeapConfig {
	return &HeapConfig{
		Mode:  heap.MinHeap.String(),
		Style: "default",
	}
}

func (c *HeapConfig) ParseMode() (heap.Mode, error) {
	return heap.ParseMode(c.Mode)
}

type LogConfig struct {
	Level string
}

func NewLogConfig() *LogConfig {
	return &LogConfig{
		Level: "info",
	}
}
