// Command leo-preview prints what protoc-gen-go-leo emits for a message
// described in YAML.
package main

import (
	"os"

	"github.com/yaroher/protoc-gen-go-leo/logger"
)

func main() {
	defer func() { _ = logger.Logger.Sync() }()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
