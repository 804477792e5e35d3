package handlers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/diegoclair/prayer-times-bot/internal/domain/service"
	slackcmd "github.com/diegoclair/prayer-times-bot/internal/domain/slack"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
	"github.com/slack-go/slack/slackevents"
)

const (
	defaultCalendarDays = 30
	maxCalendarDays     = 366
)

type Options struct {
	SigningSecret string
	// BotUserID identifies membership events about the bot itself.
	BotUserID    string
	AdminUserIDs []string
	CalendarDays int
	// FeedSecret signs calendar feed links. It defaults to SigningSecret.
	FeedSecret string
	// PublicURL prefixes the feed links shown by config show.
	PublicURL string
}

type SlackHandler struct {
	settings      contract.SettingsService
	schedule      contract.ScheduleService
	signingSecret string
	botUserID     string
	admins        map[string]bool
	calendarDays  int
	feedSecret    string
	publicURL     string
}

func New(settings contract.SettingsService, schedule contract.ScheduleService, opts Options) *SlackHandler {
	admins := make(map[string]bool, len(opts.AdminUserIDs))
	for _, id := range opts.AdminUserIDs {
		admins[id] = true
	}

	days := opts.CalendarDays
	if days <= 0 {
		days = defaultCalendarDays
	}

	feedSecret := opts.FeedSecret
	if feedSecret == "" {
		feedSecret = opts.SigningSecret
	}

	return &SlackHandler{
		settings:      settings,
		schedule:      schedule,
		signingSecret: opts.SigningSecret,
		botUserID:     opts.BotUserID,
		admins:        admins,
		calendarDays:  min(days, maxCalendarDays),
		feedSecret:    feedSecret,
		publicURL:     strings.TrimSuffix(opts.PublicURL, "/"),
	}
}

// verifiedBody reads the request body and checks the Slack signature.
// On failure the status has already been written.
func (h *SlackHandler) verifiedBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, false
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return nil, false
	}

	if err := verifier.Ensure(); err != nil {
		log.Warn().Err(err).Str("path", r.URL.Path).Msg("rejected request with invalid Slack signature")
		w.WriteHeader(http.StatusUnauthorized)
		return nil, false
	}

	return body, true
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.verifiedBody(w, r); !ok {
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		h.respondWithError(w, fmt.Sprintf("%v. Use `%s help` to see the available commands", err, s.Command))
		return
	}

	response := h.handleCommand(r, cmd, &s)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func (h *SlackHandler) handleCommand(r *http.Request, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Type == slackcmd.CmdHelp {
		return h.handleHelp()
	}
	if cmd.Type == slackcmd.CmdReload {
		return h.handleReload(r, slashCmd)
	}

	recipient, _, err := h.settings.Setup(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		log.Error().Err(err).Str("channel_id", slashCmd.ChannelID).Msg("failed to set up recipient")
		return h.createErrorResponse("Failed to load channel settings")
	}

	switch cmd.Type {
	case slackcmd.CmdToday:
		return h.scheduleResponse(h.schedule.Now(), recipient)
	case slackcmd.CmdTomorrow:
		return h.scheduleResponse(h.schedule.Now().AddDate(0, 0, 1), recipient)
	case slackcmd.CmdDate:
		return h.handleDate(cmd, recipient)
	case slackcmd.CmdNext:
		return &slack.Msg{
			ResponseType: slack.ResponseTypeInChannel,
			Text:         h.schedule.FormatNextPrayer(h.schedule.Now(), recipient),
		}
	case slackcmd.CmdConfig:
		return h.handleConfig(cmd, slashCmd, recipient)
	default:
		return h.createErrorResponse("Command not recognized")
	}
}

func (h *SlackHandler) scheduleResponse(date time.Time, recipient *entity.Recipient) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         h.schedule.FormatSchedule(date, recipient),
	}
}

func (h *SlackHandler) handleDate(cmd *slackcmd.Command, recipient *entity.Recipient) *slack.Msg {
	if len(cmd.Args) == 0 {
		return h.createErrorResponse("Please provide a date: `/prayer date YYYY-MM-DD`")
	}

	date, err := time.ParseInLocation(domain.DateLayout, cmd.Args[0], h.schedule.Now().Location())
	if err != nil {
		return h.createErrorResponse(fmt.Sprintf("Invalid date %q. Use YYYY-MM-DD, example: 2026-03-20", cmd.Args[0]))
	}

	return h.scheduleResponse(date, recipient)
}

func (h *SlackHandler) handleConfig(cmd *slackcmd.Command, slashCmd *slack.SlashCommand, recipient *entity.Recipient) *slack.Msg {
	if len(cmd.Args) == 0 || (len(cmd.Args) == 1 && strings.EqualFold(cmd.Args[0], "show")) {
		return &slack.Msg{
			ResponseType: slack.ResponseTypeEphemeral,
			Text:         formatSettings(recipient, h.FeedURL(recipient.SlackChannelID)),
		}
	}

	if len(cmd.Args) < 2 {
		return h.createErrorResponse("Invalid format. Use: `/prayer config digest 07:00` or `/prayer help` for every setting")
	}

	configType := cmd.Args[0]
	configValue := strings.Join(cmd.Args[1:], " ")

	if err := h.settings.UpdateConfig(slashCmd.ChannelID, configType, configValue); err != nil {
		if errors.Is(err, service.ErrInvalidConfig) {
			return h.createErrorResponse(fmt.Sprintf("Failed to update configuration: %v", err))
		}
		log.Error().Err(err).Str("channel_id", slashCmd.ChannelID).Str("config", configType).Msg("failed to update configuration")
		return h.createErrorResponse("Failed to update configuration")
	}

	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("✅ Configuration updated: %s = %s", configType, configValue),
	}
}

func (h *SlackHandler) handleReload(r *http.Request, slashCmd *slack.SlashCommand) *slack.Msg {
	if !h.admins[slashCmd.UserID] {
		return h.createErrorResponse("Only bot administrators can reload the time table")
	}

	if err := h.schedule.Reload(r.Context()); err != nil {
		return h.createErrorResponse(fmt.Sprintf("Reload failed, the previous time table is still active: %v", err))
	}

	log.Info().Str("user_id", slashCmd.UserID).Msg("time table reloaded by admin")
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         "✅ Time table reloaded",
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(),
	}
}

// HandleEvents answers the Events API URL verification and tracks the bot's channel membership.
func (h *SlackHandler) HandleEvents(w http.ResponseWriter, r *http.Request) {
	body, ok := h.verifiedBody(w, r)
	if !ok {
		return
	}

	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte(challenge.Challenge))
		return

	case slackevents.CallbackEvent:
		h.handleCallbackEvent(event.InnerEvent)
	}

	w.WriteHeader(http.StatusOK)
}

func (h *SlackHandler) handleCallbackEvent(inner slackevents.EventsAPIInnerEvent) {
	switch ev := inner.Data.(type) {
	case *slackevents.MemberJoinedChannelEvent:
		if ev.User != h.botUserID {
			return
		}
		recipient, created, err := h.settings.Setup(ev.Channel, "", ev.Team)
		if err != nil {
			log.Error().Err(err).Str("channel_id", ev.Channel).Msg("failed to set up recipient on join")
			return
		}
		if !created && !recipient.IsActive {
			if err := h.settings.SetActive(ev.Channel, true); err != nil {
				log.Error().Err(err).Str("channel_id", ev.Channel).Msg("failed to reactivate recipient")
			}
		}

	case *slackevents.MemberLeftChannelEvent:
		if ev.User != h.botUserID {
			return
		}
		if err := h.settings.SetActive(ev.Channel, false); err != nil {
			log.Error().Err(err).Str("channel_id", ev.Channel).Msg("failed to deactivate recipient")
		}
	}
}

// FeedURL returns the signed calendar feed link of a channel.
func (h *SlackHandler) FeedURL(channelID string) string {
	return fmt.Sprintf("%s/calendar/%s.ics?token=%s", h.publicURL, channelID, h.feedToken(channelID))
}

func (h *SlackHandler) feedToken(channelID string) string {
	mac := hmac.New(sha256.New, []byte(h.feedSecret))
	mac.Write([]byte("calendar:" + channelID))
	return hex.EncodeToString(mac.Sum(nil))
}

// HandleCalendarFeed serves /calendar/{feed}?token=... where feed is "<channel id>.ics".
// A missing or wrong token is answered like an unknown channel.
func (h *SlackHandler) HandleCalendarFeed(w http.ResponseWriter, r *http.Request) {
	feed := chi.URLParam(r, "feed")
	channelID, ok := strings.CutSuffix(feed, ".ics")
	if !ok || channelID == "" {
		http.NotFound(w, r)
		return
	}

	token := r.URL.Query().Get("token")
	if !hmac.Equal([]byte(token), []byte(h.feedToken(channelID))) {
		log.Warn().Str("channel_id", channelID).Msg("rejected calendar feed request with invalid token")
		http.NotFound(w, r)
		return
	}

	recipient, err := h.settings.Get(channelID)
	if errors.Is(err, service.ErrRecipientNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to load recipient for calendar feed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	data, err := h.schedule.CalendarFeed(h.schedule.Now(), h.calendarDays, recipient)
	if err != nil {
		log.Error().Err(err).Str("channel_id", channelID).Msg("failed to build calendar feed")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="%s"`, feed))
	w.Write(data)
}

func (h *SlackHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "OK")
}

func formatSettings(r *entity.Recipient, feedURL string) string {
	onOff := func(v bool) string {
		if v {
			return "on"
		}
		return "off"
	}

	digest := "off"
	if r.DailyDigestTime != "" {
		digest = fmt.Sprintf("%s (%s)", r.DailyDigestTime, r.DigestDay)
	}

	var reminders []string
	var offsets []string
	for _, key := range domain.PrayerKeys {
		if minutes := r.Reminders[key]; minutes > 0 {
			reminders = append(reminders, fmt.Sprintf("%s %d min", key, minutes))
		}
		if offset := r.PrayerOffsets[key]; offset != 0 {
			offsets = append(offsets, fmt.Sprintf("%s %+d", key, offset))
		}
	}

	prayers := make([]string, 0, len(domain.PrayerKeys))
	for _, key := range r.Prayers() {
		prayers = append(prayers, string(key))
	}

	var b strings.Builder
	b.WriteString("*Current settings:*\n")
	fmt.Fprintf(&b, "• Language: %s\n", r.Language)
	fmt.Fprintf(&b, "• Location: %s (%s)\n", valueOr(r.LocationName, "not set"), onOff(r.ShowLocation))
	fmt.Fprintf(&b, "• Daily schedule: %s\n", digest)
	fmt.Fprintf(&b, "• Reminders: %s\n", valueOr(strings.Join(reminders, ", "), "none"))
	fmt.Fprintf(&b, "• Offset: %+d min\n", r.GeneralOffset)
	fmt.Fprintf(&b, "• Prayer offsets: %s\n", valueOr(strings.Join(offsets, ", "), "none"))
	fmt.Fprintf(&b, "• Prayers: %s\n", strings.Join(prayers, ", "))
	fmt.Fprintf(&b, "• Hijri date: %s (%s)\n", onOff(r.ShowHijri), r.HijriStyle)
	fmt.Fprintf(&b, "• Holidays: %s\n", onOff(r.ShowHolidays))
	fmt.Fprintf(&b, "• Calendar feed: %s", feedURL)
	return b.String()
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         fmt.Sprintf("❌ %s", message),
	}
}

func (h *SlackHandler) respondWithError(w http.ResponseWriter, message string) {
	response := h.createErrorResponse(message)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
