package responder

import (
	"encoding/json"
	"fmt"

	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
)

const (
	pathDetail     = "detail"
	pathInstanceID = "detail.resource.instanceDetails.instanceId"
	pathType       = "detail.type"
	pathSeverity   = "detail.severity"
	pathUpdatedAt  = "detail.updatedAt"
)

// envelope is the only part of the EventBridge event that is read. Other
// envelope fields are not decoded, so their shape never affects the outcome.
type envelope struct {
	Detail json.RawMessage `json:"detail"`
}

func decodeFinding(raw json.RawMessage) (*domain.Finding, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("failed to decode event: %w", err)
	}
	if len(env.Detail) == 0 || string(env.Detail) == "null" {
		return nil, &MissingFieldError{Path: pathDetail}
	}

	var finding domain.Finding
	if err := json.Unmarshal(env.Detail, &finding); err != nil {
		return nil, fmt.Errorf("failed to decode finding detail: %w", err)
	}
	return &finding, nil
}

func instanceID(f *domain.Finding) (string, error) {
	if f.Resource == nil || f.Resource.InstanceDetails == nil || f.Resource.InstanceDetails.InstanceID == nil {
		return "", &MissingFieldError{Path: pathInstanceID}
	}
	return *f.Resource.InstanceDetails.InstanceID, nil
}

func alertDetails(f *domain.Finding, id string) (domain.AlertDetails, error) {
	switch {
	case len(f.Type) == 0:
		return domain.AlertDetails{}, &MissingFieldError{Path: pathType}
	case len(f.Severity) == 0:
		return domain.AlertDetails{}, &MissingFieldError{Path: pathSeverity}
	case len(f.UpdatedAt) == 0:
		return domain.AlertDetails{}, &MissingFieldError{Path: pathUpdatedAt}
	}

	return domain.AlertDetails{
		InstanceID:  id,
		Action:      actionTaken,
		FindingType: domain.FieldText(f.Type),
		Severity:    domain.FieldText(f.Severity),
		Time:        domain.FieldText(f.UpdatedAt),
	}, nil
}
