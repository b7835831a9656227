// SPDX-License-Identifier: MIT

// Command laplace solves the parallel-plate Laplace problem by relaxation and
// by Fourier series, then writes contour and surface figures of both.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/katalvlaran/laplace/internal/app"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	logger := log.New(os.Stderr, "laplace: ", log.LstdFlags)
	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Fatal(err)
	}
}
