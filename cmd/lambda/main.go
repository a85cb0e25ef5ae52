package main

import (
	"context"
	"encoding/json"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/runtime/logging"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/config"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/responder"
)

func main() {
	settings, err := config.LoadSettings(config.NewViper(), "")
	if err != nil {
		logger := logging.New(os.Stdout, "info")
		logger.Fatal().Err(err).Msg("failed to load settings")
	}

	logger := logging.New(os.Stdout, settings.LogLevel)
	ctx := logger.WithContext(context.Background())

	r, err := responder.NewFromSettings(ctx, *settings)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize responder")
	}

	lambda.Start(func(ctx context.Context, event json.RawMessage) (domain.Outcome, error) {
		return r.Handle(logger.WithContext(ctx), event)
	})
}
