package telephony

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/callpipe/callpipe/domain/repositories"
)

const (
	defaultAPIBaseURL = "https://api.twilio.com/2010-04-01"
	requestTimeout    = 30 * time.Second
)

// TwilioConfig holds configuration for the TwilioOriginator adapter.
// Required fields:
// - AccountSID, AuthToken, FromNumber
// Optional fields with defaults:
// - APIBaseURL: the Twilio REST API base URL (used by tests)
type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	APIBaseURL string
}

// TwilioOriginator implements CallOriginator using the Twilio REST API
type TwilioOriginator struct {
	accountSID string
	authToken  string
	fromNumber string
	apiBaseURL string
	httpClient *http.Client
	logger     *zap.Logger
}

var _ repositories.CallOriginator = (*TwilioOriginator)(nil)

// twilioCall is the subset of the Twilio call resource we consume
type twilioCall struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// twilioError is Twilio's error payload shape
type twilioError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewTwilioOriginator creates a new Twilio call originator. Credentials
// may be empty; Configured reports that and Originate refuses to run.
func NewTwilioOriginator(config TwilioConfig, logger *zap.Logger) *TwilioOriginator {
	apiBaseURL := config.APIBaseURL
	if apiBaseURL == "" {
		apiBaseURL = defaultAPIBaseURL
	}
	return &TwilioOriginator{
		accountSID: config.AccountSID,
		authToken:  config.AuthToken,
		fromNumber: config.FromNumber,
		apiBaseURL: apiBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     logger,
	}
}

// Configured reports whether account credentials and an origin number are present
func (t *TwilioOriginator) Configured() bool {
	return t.accountSID != "" && t.authToken != "" && t.fromNumber != ""
}

// Originate places an outbound call, pointing the answered call at
// answerURL for its first TwiML instruction. Provider failures are
// surfaced with the provider's message verbatim.
func (t *TwilioOriginator) Originate(ctx context.Context, to string, answerURL string) (string, error) {
	if !t.Configured() {
		return "", fmt.Errorf("twilio credentials are not configured")
	}

	endpoint := fmt.Sprintf("%s/Accounts/%s/Calls.json", t.apiBaseURL, t.accountSID)

	data := url.Values{}
	data.Set("To", to)
	data.Set("From", t.fromNumber)
	data.Set("Url", answerURL)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(data.Encode()))
	if err != nil {
		return "", fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.SetBasicAuth(t.accountSID, t.authToken)
	httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to execute HTTP request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var apiErr twilioError
		if json.Unmarshal(body, &apiErr) == nil && apiErr.Message != "" {
			return "", fmt.Errorf("%s", apiErr.Message)
		}
		return "", fmt.Errorf("twilio API returned %d: %s", resp.StatusCode, string(body))
	}

	var call twilioCall
	if err := json.Unmarshal(body, &call); err != nil {
		return "", fmt.Errorf("failed to decode call resource: %w", err)
	}

	t.logger.Info("Outbound call started",
		zap.String("callSid", call.SID),
		zap.String("to", to),
		zap.String("status", call.Status))

	return call.SID, nil
}
