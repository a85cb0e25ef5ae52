package domain

import (
	"fmt"
	"strings"
)

type SuspendResult struct {
	InstanceID    string
	PreviousState string
	CurrentState  string
}

func (r SuspendResult) String() string {
	return fmt.Sprintf("%s: %s -> %s", r.InstanceID, r.PreviousState, r.CurrentState)
}

type NotificationMessage struct {
	Subject string
	Body    string
}

// AlertDetails holds the finding fields interpolated into the alert body.
type AlertDetails struct {
	InstanceID  string
	Action      string
	FindingType string
	Severity    string
	Time        string
}

func (d AlertDetails) Render() string {
	var b strings.Builder
	b.WriteString("\nGuardDuty Security Alert - Automated Response Triggered\n\n")
	fmt.Fprintf(&b, "Compromised Instance: %s\n", d.InstanceID)
	fmt.Fprintf(&b, "Action Taken: Instance automatically %s\n", d.Action)
	fmt.Fprintf(&b, "Finding Type: %s\n", d.FindingType)
	fmt.Fprintf(&b, "Severity: %s\n", d.Severity)
	fmt.Fprintf(&b, "Time: %s\n\n", d.Time)
	b.WriteString("This is an automated security response from your GuardDuty lab.\n")
	return b.String()
}

const (
	StatusSuccess = 200
	StatusFailure = 500
)

// Outcome is returned to the invoking runtime. Body is a JSON document.
type Outcome struct {
	StatusCode int    `json:"statusCode"`
	Body       string `json:"body"`
}

type SuccessBody struct {
	Message    string `json:"message"`
	InstanceID string `json:"instanceId"`
}

type ErrorBody struct {
	Error string `json:"error"`
}
