package config

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

const (
	DefaultRegion = "us-east-1" // Default region if neither env nor profile set one
)

func LoadAWSConfig(ctx context.Context, s Settings) (awssdk.Config, error) {
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithDefaultRegion(DefaultRegion),
	}
	if s.AWSProfile != "" {
		opts = append(opts, awsconfig.WithSharedConfigProfile(s.AWSProfile))
	}
	if s.AWSRegion != "" {
		opts = append(opts, awsconfig.WithRegion(s.AWSRegion))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return awssdk.Config{}, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}
	return cfg, nil
}
