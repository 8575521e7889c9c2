package main

import (
	"os"

	"go-dsa/config"
	"go-dsa/util/logger"
)

func main() {
	configs := config.New()
	if err := newRootCmd(configs).Execute(); err != nil {
		fatal(err)
	}
}

func fatal(val interface{}) {
	logger.L.Error(val)
	os.Exit(1)
}
