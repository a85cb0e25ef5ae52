package responder

import (
	"context"
	"fmt"

	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/compute"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/config"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/notify"
)

// NewFromSettings wires a Responder to the EC2 and SNS clients described by s.
func NewFromSettings(ctx context.Context, s config.Settings) (*Responder, error) {
	awsCfg, err := config.LoadAWSConfig(ctx, s)
	if err != nil {
		return nil, fmt.Errorf("failed to create responder: %w", err)
	}

	return New(
		compute.NewEC2Stopper(awsCfg),
		notify.NewSNSPublisher(awsCfg),
		Config{TopicARN: s.TopicARN},
	), nil
}
