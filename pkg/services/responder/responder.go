package responder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

const (
	AlertSubject = "🚨 GuardDuty Alert: Instance Auto-Stopped"
	actionTaken  = "stopped"
)

type InstanceStopper interface {
	StopInstance(ctx context.Context, instanceID string) ([]domain.SuspendResult, error)
}

type Publisher interface {
	Publish(ctx context.Context, topicARN string, msg domain.NotificationMessage) (string, error)
}

type Config struct {
	TopicARN string
}

// Responder stops the instance named by a GuardDuty finding and publishes an
// alert about it. It keeps no state between invocations.
type Responder struct {
	compute InstanceStopper
	notify  Publisher
	config  Config
}

func New(compute InstanceStopper, notify Publisher, config Config) *Responder {
	return &Responder{
		compute: compute,
		notify:  notify,
		config:  config,
	}
}

// Handle processes one finding event. Every failure is reported through a 500
// Outcome, so the returned error is always nil; the signature matches what
// lambda.Start expects.
func (r *Responder) Handle(ctx context.Context, event json.RawMessage) (domain.Outcome, error) {
	logger := zerolog.Ctx(ctx)
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		l := logger.With().Str("request_id", lc.AwsRequestID).Logger()
		logger = &l
		ctx = l.WithContext(ctx)
	}

	logger.Info().RawJSON("event", eventJSON(event)).Msg("received GuardDuty event")

	id, err := r.respond(ctx, event)
	if err != nil {
		logger.Error().Err(err).Msg("error processing GuardDuty event")
		return outcome(domain.StatusFailure, domain.ErrorBody{Error: err.Error()}), nil
	}

	return outcome(domain.StatusSuccess, domain.SuccessBody{
		Message:    fmt.Sprintf("Successfully stopped compromised instance %s", id),
		InstanceID: id,
	}), nil
}

func (r *Responder) respond(ctx context.Context, event json.RawMessage) (string, error) {
	logger := zerolog.Ctx(ctx)

	finding, err := decodeFinding(event)
	if err != nil {
		return "", err
	}
	id, err := instanceID(finding)
	if err != nil {
		return "", err
	}
	logger.Info().Str("instance_id", id).Msg("found compromised instance")

	results, err := r.compute.StopInstance(ctx, id)
	if err != nil {
		return "", &ServiceCallError{Service: "ec2", Operation: "StopInstances", Err: err}
	}
	logger.Info().Str("instance_id", id).Interface("response", results).Msg("stop instance response")

	if r.config.TopicARN == "" {
		return "", ErrMissingConfig
	}

	details, err := alertDetails(finding, id)
	if err != nil {
		return "", err
	}
	msgID, err := r.notify.Publish(ctx, r.config.TopicARN, domain.NotificationMessage{
		Subject: AlertSubject,
		Body:    details.Render(),
	})
	if err != nil {
		return "", &ServiceCallError{Service: "sns", Operation: "Publish", Err: err}
	}
	logger.Info().Str("message_id", msgID).Str("topic_arn", r.config.TopicARN).Msg("alert published")

	return id, nil
}

func outcome(status int, body any) domain.Outcome {
	data, _ := json.Marshal(body)
	return domain.Outcome{StatusCode: status, Body: string(data)}
}

// eventJSON compacts valid JSON and quotes anything else for the log line.
func eventJSON(raw json.RawMessage) []byte {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err == nil {
		return buf.Bytes()
	}
	data, _ := json.Marshal(string(raw))
	return data
}
