package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/seolint/seolint/internal/cli"
	"github.com/seolint/seolint/pkg/seolint"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(seolint.ExitPanic)
		}
	}()

	if os.Getenv("SEOLINT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(seolint.ExitCodeForError(err))
	}
}
