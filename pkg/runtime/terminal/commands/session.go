package commands

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/handlers/finding"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/config"
)

// ResponderFactory builds the event handler used by the commands.
type ResponderFactory func(ctx context.Context, s config.Settings) (finding.EventHandler, error)

// OutcomeReporter renders a responder outcome.
type OutcomeReporter interface {
	Handle(outcome domain.Outcome) error
}

// Session is populated by the root command before any subcommand runs.
type Session struct {
	Settings config.Settings
	Logger   zerolog.Logger
	Factory  ResponderFactory
}
