// Package zoom provides a client for the Zoom REST API: OAuth token
// acquisition via client credentials and scheduled-meeting creation.
package zoom

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/moksh009/topedge-site-sub001/internal/apperrors"
	"github.com/moksh009/topedge-site-sub001/pkg/logging"
)

const (
	defaultBaseURL  = "https://api.zoom.us/v2"
	defaultTokenURL = "https://zoom.us/oauth/token"
	defaultTimeout  = 20 * time.Second

	defaultDurationMinutes = 60
	meetingTypeScheduled   = 2
)

// Client calls the Zoom token and meeting-creation endpoints.
type Client struct {
	baseURL      string
	tokenURL     string
	clientID     string
	clientSecret string
	accountID    string
	httpClient   *http.Client
	logger       *logging.Logger
}

// Config holds configuration for the Zoom client.
type Config struct {
	ClientID     string
	ClientSecret string
	AccountID    string
	BaseURL      string
	TokenURL     string
	Timeout      time.Duration
}

// New creates a new Zoom client.
func New(cfg Config, logger *logging.Logger) (*Client, error) {
	if cfg.ClientID == "" {
		return nil, apperrors.New(apperrors.KindConfiguration, "zoom: ClientID is required")
	}
	if cfg.ClientSecret == "" {
		return nil, apperrors.New(apperrors.KindConfiguration, "zoom: ClientSecret is required")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.TokenURL == "" {
		cfg.TokenURL = defaultTokenURL
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = defaultTimeout
	}
	if logger == nil {
		logger = logging.Default()
	}

	return &Client{
		baseURL:      strings.TrimSuffix(cfg.BaseURL, "/"),
		tokenURL:     cfg.TokenURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		accountID:    cfg.AccountID,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		logger: logger,
	}, nil
}

// Token fetches a fresh bearer token using the client-credentials grant.
// Each booking re-acquires a token, so no expiry tracking happens here.
func (c *Client) Token(ctx context.Context) (string, error) {
	form := url.Values{}
	form.Set("grant_type", "client_credentials")
	if c.accountID != "" {
		form.Set("account_id", c.accountID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindAuthentication, "zoom: create token request", err)
	}
	req.SetBasicAuth(c.clientID, c.clientSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", apperrors.Wrap(apperrors.KindAuthentication, "zoom: token request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", apperrors.New(apperrors.KindAuthentication,
			fmt.Sprintf("zoom: token request failed (status %d): %s", resp.StatusCode, providerMessage(resp.Body)))
	}

	var token tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return "", apperrors.Wrap(apperrors.KindAuthentication, "zoom: decode token response", err)
	}
	if token.AccessToken == "" {
		return "", apperrors.New(apperrors.KindAuthentication, "zoom: token response missing access_token")
	}

	c.logger.Debug("zoom token acquired", "expires_in", token.ExpiresIn)
	return token.AccessToken, nil
}

// CreateMeeting schedules a meeting and returns its join URL and password.
// The settings block is a fixed policy: video on for both sides, join before
// host allowed, no waiting room, unmuted entry, no auto-recording.
func (c *Client) CreateMeeting(ctx context.Context, token string, p MeetingParams) (*Meeting, error) {
	if p.DurationMinutes <= 0 {
		p.DurationMinutes = defaultDurationMinutes
	}

	body, err := json.Marshal(meetingRequest{
		Topic:     p.Topic,
		Type:      meetingTypeScheduled,
		StartTime: p.StartTime.UTC().Format(time.RFC3339),
		Duration:  p.DurationMinutes,
		Timezone:  p.Timezone,
		Agenda:    p.Agenda,
		Settings: meetingSettings{
			HostVideo:        true,
			ParticipantVideo: true,
			JoinBeforeHost:   true,
			WaitingRoom:      false,
			MuteUponEntry:    false,
			AutoRecording:    "none",
		},
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindMeetingCreation, "zoom: marshal meeting request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/users/me/meetings", bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindMeetingCreation, "zoom: create meeting request", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.KindMeetingCreation, "zoom: meeting request failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, apperrors.New(apperrors.KindMeetingCreation,
			fmt.Sprintf("zoom: meeting creation failed (status %d): %s", resp.StatusCode, providerMessage(resp.Body)))
	}

	var created meetingResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, apperrors.Wrap(apperrors.KindMeetingCreation, "zoom: decode meeting response", err)
	}
	if created.JoinURL == "" {
		return nil, apperrors.New(apperrors.KindMeetingCreation, "zoom: meeting response missing join_url")
	}

	start, _ := time.Parse(time.RFC3339, created.StartTime)
	meeting := &Meeting{
		ID:              created.ID,
		Topic:           created.Topic,
		JoinURL:         created.JoinURL,
		Password:        created.Password,
		StartTime:       start,
		DurationMinutes: created.Duration,
		Timezone:        created.Timezone,
	}

	c.logger.Info("zoom meeting created", "meeting_id", meeting.ID, "topic", meeting.Topic)
	return meeting, nil
}

// providerMessage extracts a human-readable message from an error body,
// falling back to the raw body when it is not the documented shape.
func providerMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 4096))
	if err != nil || len(raw) == 0 {
		return "no response body"
	}
	var parsed errorResponse
	if err := json.Unmarshal(raw, &parsed); err == nil {
		if parsed.Message != "" {
			return parsed.Message
		}
		if parsed.Reason != "" {
			return parsed.Reason
		}
	}
	return string(raw)
}
