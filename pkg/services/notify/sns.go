package notify

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

// SNSAPI is the subset of the SNS client used to publish alerts.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

type snsPublisher struct {
	client SNSAPI
}

func NewSNSPublisher(cfg aws.Config) *snsPublisher {
	return NewSNSPublisherWithClient(sns.NewFromConfig(cfg))
}

func NewSNSPublisherWithClient(client SNSAPI) *snsPublisher {
	return &snsPublisher{client: client}
}

// Publish sends msg to the topic and returns the message id assigned by SNS.
func (p *snsPublisher) Publish(ctx context.Context, topicARN string, msg domain.NotificationMessage) (string, error) {
	resp, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(topicARN),
		Message:  aws.String(msg.Body),
		Subject:  aws.String(msg.Subject),
	})
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", topicARN, err)
	}
	return aws.ToString(resp.MessageId), nil
}
