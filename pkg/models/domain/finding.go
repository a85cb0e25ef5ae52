package domain

import (
	"encoding/json"
)

// Finding is the GuardDuty detail carried by an EventBridge event. The
// interpolated fields stay as raw JSON: an absent field has length zero, a
// present null keeps its "null" text.
type Finding struct {
	Type      json.RawMessage  `json:"type"`
	Severity  json.RawMessage  `json:"severity"`
	UpdatedAt json.RawMessage  `json:"updatedAt"`
	Resource  *FindingResource `json:"resource"`
}

type FindingResource struct {
	InstanceDetails *InstanceDetails `json:"instanceDetails"`
}

type InstanceDetails struct {
	InstanceID *string `json:"instanceId"`
}

// FieldText renders a finding field the way it arrived: JSON strings
// decoded, anything else (numbers, null) verbatim.
func FieldText(raw json.RawMessage) string {
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	return string(raw)
}
