package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/handlers"
	"github.com/diegoclair/prayer-times-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	SigningSecret = "test-signing-secret"
	FeedSecret    = "test-feed-secret"
	PublicURL     = "https://prayer.example.com"
	BotUserID     = "UBOT"
	AdminUserID   = "UADMIN"
)

type ServiceMocks struct {
	SettingsServiceMock *mocks.MockSettingsService
	ScheduleServiceMock *mocks.MockScheduleService
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		SettingsServiceMock: mocks.NewMockSettingsService(ctrl),
		ScheduleServiceMock: mocks.NewMockScheduleService(ctrl),
	}

	handler = handlers.New(m.SettingsServiceMock, m.ScheduleServiceMock, handlers.Options{
		SigningSecret: SigningSecret,
		BotUserID:     BotUserID,
		AdminUserIDs:  []string{AdminUserID},
		CalendarDays:  7,
		FeedSecret:    FeedSecret,
		PublicURL:     PublicURL + "/",
	})

	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, channelName, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {channelName},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	req := newSignedRequest(t, "/slack/commands", form.Encode(), signingSecret)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// CreateEventRequest creates a properly signed Events API request with a JSON body
func CreateEventRequest(t *testing.T, body, signingSecret string) *http.Request {
	t.Helper()

	req := newSignedRequest(t, "/slack/events", body, signingSecret)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// MemberEventBody builds an event_callback payload for member_joined_channel or member_left_channel.
func MemberEventBody(eventType, userID, channelID string) string {
	return fmt.Sprintf(`{
		"token": "test-token",
		"team_id": "T123456789",
		"api_app_id": "A123456789",
		"type": "event_callback",
		"event_id": "Ev123456789",
		"event_time": 1773800000,
		"event": {
			"type": %q,
			"user": %q,
			"channel": %q,
			"channel_type": "C",
			"team": "T123456789"
		}
	}`, eventType, userID, channelID)
}

func newSignedRequest(t *testing.T, path, body, signingSecret string) *http.Request {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	require.NoError(t, err)

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)
	req.Header.Set("X-Slack-Signature", generateSlackSignature(signingSecret, timestamp, body))

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}

// FeedToken computes the calendar feed token of a channel for FeedSecret.
func FeedToken(channelID string) string {
	mac := hmac.New(sha256.New, []byte(FeedSecret))
	mac.Write([]byte("calendar:" + channelID))
	return hex.EncodeToString(mac.Sum(nil))
}
