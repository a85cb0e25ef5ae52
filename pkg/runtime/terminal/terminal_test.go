package terminal

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/handlers/finding"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/config"
)

type fakeHandler struct {
	outcome domain.Outcome
	events  []string
}

func (f *fakeHandler) Handle(_ context.Context, event json.RawMessage) (domain.Outcome, error) {
	f.events = append(f.events, string(event))
	return f.outcome, nil
}

func newTestCLI(t *testing.T, handler *fakeHandler, settings *config.Settings, input io.Reader, args ...string) (*CLI, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	cli := NewCLI(Options{
		Factory: func(_ context.Context, s config.Settings) (finding.EventHandler, error) {
			*settings = s
			return handler, nil
		},
		Input:     input,
		Output:    &out,
		LogOutput: io.Discard,
		Args:      append(args, "--env-file", filepath.Join(t.TempDir(), "missing.env")),
	})
	return cli, &out
}

func TestInvoke_FromFile(t *testing.T) {
	// Given
	path := filepath.Join(t.TempDir(), "event.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"detail":{}}`), 0o644))
	handler := &fakeHandler{outcome: domain.Outcome{
		StatusCode: 200,
		Body:       `{"message":"Successfully stopped compromised instance i-1","instanceId":"i-1"}`,
	}}
	var settings config.Settings

	// When
	cli, out := newTestCLI(t, handler, &settings, nil,
		"invoke", "--event", path, "--topic-arn", "arn:aws:sns:us-east-1:1:alerts", "--region", "eu-west-1")
	err := cli.Execute()

	// Then
	require.NoError(t, err)
	assert.Equal(t, []string{`{"detail":{}}`}, handler.events)
	assert.Equal(t, "arn:aws:sns:us-east-1:1:alerts", settings.TopicARN)
	assert.Equal(t, "eu-west-1", settings.AWSRegion)
	assert.True(t, strings.HasPrefix(out.String(), "Status: 200 (success)\n"))
	assert.Contains(t, out.String(), `"instanceId": "i-1"`)
}

func TestInvoke_FromStdinAsJSON(t *testing.T) {
	t.Setenv("SNS_TOPIC_ARN", "arn:from-env")
	handler := &fakeHandler{outcome: domain.Outcome{StatusCode: 200, Body: `{"instanceId":"i-2"}`}}
	var settings config.Settings

	cli, out := newTestCLI(t, handler, &settings, strings.NewReader(`{"id":"e"}`), "invoke", "--json")
	require.NoError(t, cli.Execute())

	assert.Equal(t, "arn:from-env", settings.TopicARN)
	assert.JSONEq(t, `{"statusCode":200,"body":"{\"instanceId\":\"i-2\"}"}`, out.String())
}

func TestInvoke_FailureOutcomeIsAnError(t *testing.T) {
	handler := &fakeHandler{outcome: domain.Outcome{StatusCode: 500, Body: `{"error":"boom"}`}}
	var settings config.Settings

	cli, out := newTestCLI(t, handler, &settings, strings.NewReader(`{}`), "invoke")
	err := cli.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
	assert.Contains(t, out.String(), "Status: 500 (failure)")
	assert.Contains(t, out.String(), `"error": "boom"`)
}

func TestInvoke_MissingEventFile(t *testing.T) {
	var settings config.Settings

	cli, _ := newTestCLI(t, &fakeHandler{}, &settings, nil, "invoke", "--event", "/does/not/exist.json")
	err := cli.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read event file")
}
