package compute

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

// EC2API is the subset of the EC2 client used to stop instances.
type EC2API interface {
	StopInstances(ctx context.Context, params *ec2.StopInstancesInput, optFns ...func(*ec2.Options)) (*ec2.StopInstancesOutput, error)
}

type ec2Stopper struct {
	client EC2API
}

func NewEC2Stopper(cfg aws.Config) *ec2Stopper {
	return NewEC2StopperWithClient(ec2.NewFromConfig(cfg))
}

func NewEC2StopperWithClient(client EC2API) *ec2Stopper {
	return &ec2Stopper{client: client}
}

func (s *ec2Stopper) StopInstance(ctx context.Context, instanceID string) ([]domain.SuspendResult, error) {
	resp, err := s.client.StopInstances(ctx, &ec2.StopInstancesInput{
		InstanceIds: []string{instanceID},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to stop EC2 instance %s: %w", instanceID, err)
	}

	results := make([]domain.SuspendResult, 0, len(resp.StoppingInstances))
	for _, change := range resp.StoppingInstances {
		result := domain.SuspendResult{
			InstanceID: aws.ToString(change.InstanceId),
		}
		if change.PreviousState != nil {
			result.PreviousState = string(change.PreviousState.Name)
		}
		if change.CurrentState != nil {
			result.CurrentState = string(change.CurrentState.Name)
		}
		results = append(results, result)
	}
	return results, nil
}
