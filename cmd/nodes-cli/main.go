package main

import (
	"context"

	"github.com/fuzy112/v2ex-tui/cmd/nodes-cli/commands"
	"github.com/fuzy112/v2ex-tui/lib/telemetry"
)

func main() {
	telemetry.SetupFromEnv(context.Background(), "nodes-cli")
	telemetry.InitSlog(true)
	commands.ExecuteContext(context.Background())
}
