package main

import (
	"context"

	"aldb-backend/cmd/aldb-cli/commands"
	"aldb-backend/lib/telemetry"
)

func main() {
	ctx := context.Background()
	telemetry.SetupFromEnv(ctx, "aldb-cli")
	defer telemetry.Shutdown(ctx)

	commands.ExecuteContext(ctx)
}
