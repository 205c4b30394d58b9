package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

func main() {
	err := newRootCmd().Execute()
	_ = zap.L().Sync()

	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
