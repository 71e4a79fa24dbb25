package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/b64u16/internal/cli"
	"github.com/MKhiriev/b64u16/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	cmd := cli.NewRootCommand(cli.StdStreams(), buildInfo)

	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
