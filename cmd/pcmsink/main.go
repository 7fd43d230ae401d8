// SPDX-License-Identifier: EPL-2.0

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ik5/pcmsink/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := cli.New(os.Stdin, os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "pcmsink:", err)
		os.Exit(1)
	}
}
