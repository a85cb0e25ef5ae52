package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/models/domain"
	"github.com/tadiusfrank2001/AWS-IPS-IDS-SYSTEM/pkg/services/responder"
)

type mockStopper struct {
	mock.Mock
}

func (m *mockStopper) StopInstance(ctx context.Context, instanceID string) ([]domain.SuspendResult, error) {
	args := m.Called(ctx, instanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SuspendResult), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, topicARN string, msg domain.NotificationMessage) (string, error) {
	args := m.Called(ctx, topicARN, msg)
	return args.String(0), args.Error(1)
}

const event = `{"detail": {"type": "Trojan:EC2/Test", "severity": 8, "updatedAt": "2024-01-01T00:00:00Z",
"resource": {"instanceDetails": {"instanceId": "i-123"}}}}`

func TestWebAPI_SubmitFinding(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*mockStopper, *mockPublisher)
		expectedStatus int
		expected       interface{}
		parseResponse  func([]byte) (interface{}, error)
	}{
		{
			name: "Success",
			body: event,
			setupMocks: func(s *mockStopper, p *mockPublisher) {
				s.On("StopInstance", mock.Anything, "i-123").
					Return([]domain.SuspendResult{{InstanceID: "i-123"}}, nil)
				p.On("Publish", mock.Anything, "arn:topic", mock.Anything).Return("m-1", nil)
			},
			expectedStatus: http.StatusOK,
			expected: domain.SuccessBody{
				Message:    "Successfully stopped compromised instance i-123",
				InstanceID: "i-123",
			},
			parseResponse: unmarshalResponse[domain.SuccessBody](),
		},
		{
			name:           "MissingInstanceID",
			body:           `{"detail": {"type": "Trojan:EC2/Test"}}`,
			setupMocks:     func(*mockStopper, *mockPublisher) {},
			expectedStatus: http.StatusInternalServerError,
			expected: domain.ErrorBody{
				Error: `missing required field "detail.resource.instanceDetails.instanceId"`,
			},
			parseResponse: unmarshalResponse[domain.ErrorBody](),
		},
		{
			name: "StopFailure",
			body: event,
			setupMocks: func(s *mockStopper, p *mockPublisher) {
				s.On("StopInstance", mock.Anything, "i-123").Return(nil, errors.New("denied"))
			},
			expectedStatus: http.StatusInternalServerError,
			expected:       domain.ErrorBody{Error: "ec2 StopInstances failed: denied"},
			parseResponse:  unmarshalResponse[domain.ErrorBody](),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			stopper := new(mockStopper)
			publisher := new(mockPublisher)
			tc.setupMocks(stopper, publisher)

			router := ConfigureRouter(Config{
				Addr:            ":8080",
				ShutdownTimeout: 10 * time.Second,
				Dependencies: Dependencies{
					Responder: responder.New(stopper, publisher, responder.Config{TopicARN: "arn:topic"}),
					Logger:    zerolog.New(zerolog.NewTestWriter(t)),
				},
			})
			testServer := httptest.NewServer(router)
			defer testServer.Close()

			resp, err := http.Post(testServer.URL+"/api/v1/findings", "application/json", strings.NewReader(tc.body))
			require.NoError(t, err, "Failed to send request")
			defer resp.Body.Close()

			assert.Equal(t, tc.expectedStatus, resp.StatusCode, "Status code mismatch")
			assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err, "Failed to read response body")

			actual, err := tc.parseResponse(body)
			require.NoError(t, err, "Failed to parse response")

			assert.Equal(t, tc.expected, actual)
		})
	}
}

func TestWebAPI_UnknownRoute(t *testing.T) {
	router := ConfigureRouter(Config{
		Dependencies: Dependencies{Logger: zerolog.New(zerolog.NewTestWriter(t))},
	})
	testServer := httptest.NewServer(router)
	defer testServer.Close()

	resp, err := http.Get(testServer.URL + "/api/v1/findings")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func unmarshalResponse[T any]() func([]byte) (interface{}, error) {
	return func(data []byte) (interface{}, error) {
		var response T
		err := json.Unmarshal(data, &response)
		return response, err
	}
}
