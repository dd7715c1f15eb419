package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/Zachkp/portfolio/internal/site"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		msg := "portfolio exited"
		if errors.Is(err, site.ErrMountPointMissing) {
			msg = "cannot attach page"
		}
		slog.Error(msg, slog.Any("error", err))
		os.Exit(1)
	}
}
