package config

import (
	"fmt"

	"github.com/spf13/viper"
)

const (
	KeyTopicARN   = "sns_topic_arn"
	KeyAWSProfile = "aws_profile"
	KeyAWSRegion  = "aws_region"
	KeyLogLevel   = "log_level"
)

type Settings struct {
	TopicARN   string `mapstructure:"sns_topic_arn"`
	AWSProfile string `mapstructure:"aws_profile"`
	AWSRegion  string `mapstructure:"aws_region"`
	LogLevel   string `mapstructure:"log_level"`
}

// NewViper returns a viper instance bound to the process environment. Callers
// may bind flags on it before calling LoadSettings.
func NewViper() *viper.Viper {
	v := viper.New()
	_ = v.BindEnv(KeyTopicARN, "SNS_TOPIC_ARN")
	_ = v.BindEnv(KeyAWSProfile, "AWS_PROFILE")
	_ = v.BindEnv(KeyAWSRegion, "AWS_REGION")
	_ = v.BindEnv(KeyLogLevel, "LOG_LEVEL")
	v.SetDefault(KeyLogLevel, "info")
	return v
}

// LoadSettings reads the optional config file and unmarshals all keys. A
// missing topic ARN is not an error here.
func LoadSettings(v *viper.Viper, configPath string) (*Settings, error) {
	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return &s, nil
}
