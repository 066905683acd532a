package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/schemaguard/schemaguard/internal/adapters/inbound/cli"
	"github.com/schemaguard/schemaguard/internal/domain"
)

func main() {
	if err := cli.Execute(); err != nil {
		// Breaking changes already produced a full report; the non-zero
		// exit is the whole signal.
		if !errors.Is(err, domain.ErrBreakingChanges) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
