package telephony

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap/zaptest"
)

func TestConfigured(t *testing.T) {
	logger := zaptest.NewLogger(t)

	cases := []struct {
		name   string
		config TwilioConfig
		want   bool
	}{
		{"complete", TwilioConfig{AccountSID: "AC1", AuthToken: "tok", FromNumber: "+15550001111"}, true},
		{"no sid", TwilioConfig{AuthToken: "tok", FromNumber: "+15550001111"}, false},
		{"no token", TwilioConfig{AccountSID: "AC1", FromNumber: "+15550001111"}, false},
		{"no number", TwilioConfig{AccountSID: "AC1", AuthToken: "tok"}, false},
		{"empty", TwilioConfig{}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			originator := NewTwilioOriginator(tc.config, logger)
			if originator.Configured() != tc.want {
				t.Errorf("Configured() = %v, want %v", originator.Configured(), tc.want)
			}
		})
	}
}

func TestOriginate(t *testing.T) {
	logger := zaptest.NewLogger(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/Accounts/AC1/Calls.json" {
			t.Errorf("Unexpected path %q", r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "AC1" || pass != "tok" {
			t.Error("Expected basic auth with account SID and token")
		}
		if err := r.ParseForm(); err != nil {
			t.Fatalf("Failed to parse form: %v", err)
		}
		if got := r.PostFormValue("To"); got != "+15551234567" {
			t.Errorf("Expected To=+15551234567, got %q", got)
		}
		if got := r.PostFormValue("From"); got != "+15550001111" {
			t.Errorf("Expected From=+15550001111, got %q", got)
		}
		if got := r.PostFormValue("Url"); got != "http://relay.example.com/ivr" {
			t.Errorf("Expected Url=http://relay.example.com/ivr, got %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"sid":"CA1234","status":"queued"}`))
	}))
	defer srv.Close()

	originator := NewTwilioOriginator(TwilioConfig{
		AccountSID: "AC1",
		AuthToken:  "tok",
		FromNumber: "+15550001111",
		APIBaseURL: srv.URL,
	}, logger)

	sid, err := originator.Originate(context.Background(), "+15551234567", "http://relay.example.com/ivr")
	if err != nil {
		t.Fatalf("Originate failed: %v", err)
	}
	if sid != "CA1234" {
		t.Errorf("Expected call SID CA1234, got %q", sid)
	}
}

func TestOriginate_ProviderErrorSurfacedVerbatim(t *testing.T) {
	logger := zaptest.NewLogger(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"code":21211,"message":"The 'To' number is not a valid phone number."}`))
	}))
	defer srv.Close()

	originator := NewTwilioOriginator(TwilioConfig{
		AccountSID: "AC1",
		AuthToken:  "tok",
		FromNumber: "+15550001111",
		APIBaseURL: srv.URL,
	}, logger)

	_, err := originator.Originate(context.Background(), "bogus", "http://relay.example.com/ivr")
	if err == nil {
		t.Fatal("Expected provider error")
	}
	if err.Error() != "The 'To' number is not a valid phone number." {
		t.Errorf("Expected provider message verbatim, got %q", err.Error())
	}
}

func TestOriginate_Unconfigured(t *testing.T) {
	logger := zaptest.NewLogger(t)
	originator := NewTwilioOriginator(TwilioConfig{}, logger)

	if _, err := originator.Originate(context.Background(), "+15551234567", "http://relay.example.com/ivr"); err == nil {
		t.Error("Expected error for unconfigured credentials")
	}
}
