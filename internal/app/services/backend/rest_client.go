// Package backend holds the HTTP clients for the medical council REST
// backend. All access goes through one shared client so transport and
// server failures reach the rest of the app in a single normalized
// error shape. The clients never retry; retry policy, if any, belongs to
// the caller.
package backend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"pacientes-service/internal/app/config"
	"pacientes-service/internal/pkg/constvars"
	"pacientes-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type restClient struct {
	BaseUrl    string
	AppVersion string
	HTTPClient *http.Client
	Log        *zap.Logger
}

func newRESTClient(internalConfig *config.InternalConfig, logger *zap.Logger) *restClient {
	return &restClient{
		BaseUrl:    internalConfig.Backend.BaseUrl,
		AppVersion: internalConfig.App.Version,
		HTTPClient: &http.Client{
			Timeout: time.Duration(internalConfig.Backend.TimeoutInSeconds) * time.Second,
		},
		Log: logger,
	}
}

// statusEnvelope is the smallest slice of the backend response we need
// to surface its own message on a failed request.
type statusEnvelope struct {
	Message string `json:"message"`
}

func (c *restClient) doJSON(ctx context.Context, method, path string, headers map[string]string, body interface{}, out interface{}, resource string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	var reader io.Reader
	if body != nil {
		requestJSON, err := json.Marshal(body)
		if err != nil {
			c.Log.Error("restClient.doJSON error marshaling body",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return exceptions.ErrCannotMarshalJSON(err)
		}
		reader = bytes.NewBuffer(requestJSON)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseUrl+path, reader)
	if err != nil {
		c.Log.Error("restClient.doJSON error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	req.Header.Set(constvars.HeaderXAppVersion, c.AppVersion)
	req.Header.Set(constvars.HeaderXAppPlatform, constvars.AppPlatformMobile)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		// No response reached us: network-class, as opposed to a server
		// rejection, so callers can branch on retryability.
		c.Log.Error("restClient.doJSON no response from backend",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrBackendNoResponse(err, resource)
	}
	defer resp.Body.Close()

	if resp.StatusCode < constvars.StatusOK || resp.StatusCode >= 300 {
		serverMessage := ""
		bodyBytes, readErr := io.ReadAll(resp.Body)
		if readErr == nil {
			var envelope statusEnvelope
			if json.Unmarshal(bodyBytes, &envelope) == nil {
				serverMessage = envelope.Message
			}
		}
		c.Log.Error("restClient.doJSON backend rejected request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		)
		return exceptions.ErrBackendStatus(resp.StatusCode, serverMessage, resource)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.Log.Error("restClient.doJSON error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEndpointKey, path),
			zap.Error(err),
		)
		return exceptions.ErrBackendDecodeResponse(err, resource)
	}
	return nil
}
