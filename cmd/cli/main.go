package main

import (
	"context"
	"fmt"
	"os"

	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/handlers/finding"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/runtime/terminal"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/config"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/responder"
)

func main() {
	cli := terminal.NewCLI(terminal.Options{
		Factory: func(ctx context.Context, s config.Settings) (finding.EventHandler, error) {
			return responder.NewFromSettings(ctx, s)
		},
		Output: os.Stdout,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
