// Copyright (c) 2026 Commdominium. All rights reserved.

/*
Package gateway is the HTTP client the frontend uses to talk to the REST
backend.

Every call funnels through [Client.Do], which applies one normalization
contract to every response:

  - 2xx with a body: success carrying the raw JSON payload.
  - 204: soft success with no payload. Collection call sites must treat it
    as an empty list, never as an error.
  - 4xx/5xx with a structured {"error": "..."} body: failure carrying the
    backend message verbatim.
  - Anything else (transport failure, malformed body): failure carrying a
    synthesized message.

The client never redirects and never touches session state. Those concerns
belong to the page guard.
*/
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/commdominium/commdominium/internal/platform/constants"
)

// maxResponseBytes caps how much of an upstream body is read into memory.
const maxResponseBytes = 4 << 20

// APIError is the uniform failure shape of the backend contract.
type APIError struct {
	Message string `json:"error"`
}

// Error implements the error interface.
func (e *APIError) Error() string { return e.Message }

// Result is the discriminated outcome of one backend call. Exactly one of
// the two arms is populated: Data when OK, Err when not.
type Result struct {
	OK     bool
	Status int
	Data   json.RawMessage
	Err    *APIError
}

// Decode unmarshals a success payload into v. Calling it on a failed
// result returns the failure.
func (result Result) Decode(v any) error {
	if !result.OK {
		return result.Err
	}
	if len(result.Data) == 0 {
		return &APIError{Message: "empty response body"}
	}
	return json.Unmarshal(result.Data, v)
}

// Collection unmarshals a list payload into v, mapping the backend's 204
// soft-empty to an empty list.
func (result Result) Collection(v any) error {
	if !result.OK {
		return result.Err
	}
	if len(result.Data) == 0 {
		return json.Unmarshal([]byte("[]"), v)
	}
	return json.Unmarshal(result.Data, v)
}

// Client performs backend calls with bearer-token attachment and response
// normalization.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a gateway client for the backend at baseURL.
func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: constants.GatewayRequestTimeout,
		},
		logger: logger,
	}
}

// Do performs one backend call.
//
// token is attached as a bearer header when non-empty; body is marshaled
// as JSON when non-nil. Do never returns a Go error: every outcome is
// folded into the [Result] contract so call sites handle exactly two
// shapes.
func (client *Client) Do(ctx context.Context, method, path string, token string, body any) Result {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return failure(0, fmt.Sprintf("encode request body: %v", err))
		}
		reader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, reader)
	if err != nil {
		return failure(0, fmt.Sprintf("build request: %v", err))
	}
	if body != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	}

	start := time.Now()
	response, err := client.httpClient.Do(request)
	if err != nil {
		// Transport failure: no structured response exists, synthesize one.
		return failure(0, err.Error())
	}
	defer response.Body.Close()

	payload, err := io.ReadAll(io.LimitReader(response.Body, maxResponseBytes))
	if err != nil {
		return failure(response.StatusCode, fmt.Sprintf("read response body: %v", err))
	}

	client.logger.Debug("gateway_call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", response.StatusCode),
		slog.Duration("elapsed", time.Since(start)),
	)

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		result := Result{OK: true, Status: response.StatusCode}
		if response.StatusCode != http.StatusNoContent && len(payload) > 0 {
			result.Data = json.RawMessage(payload)
		}
		return result
	}

	// Surface the backend's {"error": string} verbatim when present.
	var apiErr APIError
	if unmarshalErr := json.Unmarshal(payload, &apiErr); unmarshalErr == nil && apiErr.Message != "" {
		return Result{Status: response.StatusCode, Err: &apiErr}
	}

	return failure(response.StatusCode, fmt.Sprintf("unexpected status %d", response.StatusCode))
}

func failure(status int, message string) Result {
	return Result{Status: status, Err: &APIError{Message: message}}
}
