package main

import (
	"context"
	"fmt"
	"matchjournal/cmd/match-journal/commands"
	"matchjournal/lib/serviceutil"
	"matchjournal/lib/telemetry"
	"os"
)

func main() {
	ctx := serviceutil.SignalContext()

	telemetry.InitSlog(false)
	tel, err := telemetry.SetupFromEnv(ctx, "match-journal")
	if err != nil {
		serviceutil.Fatal("failed to setup telemetry", err)
	}

	err = commands.ExecuteContext(ctx)

	if shutdownErr := tel.Shutdown(context.Background()); shutdownErr != nil {
		fmt.Fprintln(os.Stderr, "failed to flush telemetry:", shutdownErr)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
