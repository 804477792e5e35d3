package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

var (
	// ErrInvalidConfig wraps every rejected configuration value; its message is safe to show to users.
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrRecipientNotFound = errors.New("recipient not found")
)

const maxLocationLength = 100

func invalidConfig(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
}

type settingsService struct {
	dm              contract.DataManager
	defaultLanguage string
	defaultLocation string
}

func newSettings(dm contract.DataManager, defaultLanguage, defaultLocation string) *settingsService {
	return &settingsService{
		dm:              dm,
		defaultLanguage: defaultLanguage,
		defaultLocation: defaultLocation,
	}
}

// Setup returns the recipient of a conversation, creating it with defaults on first use.
// The boolean reports whether it was created.
func (s *settingsService) Setup(slackChannelID, channelName, teamID string) (*entity.Recipient, bool, error) {
	recipient, err := s.dm.Recipient().GetByChannelID(slackChannelID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check recipient: %w", err)
	}

	if recipient != nil {
		return recipient, false, nil
	}

	recipient = &entity.Recipient{
		SlackChannelID:   slackChannelID,
		SlackChannelName: channelName,
		SlackTeamID:      teamID,
		IsActive:         true,
		Language:         s.defaultLanguage,
		LocationName:     s.defaultLocation,
		ShowLocation:     s.defaultLocation != "",
		ShowHijri:        true,
		HijriStyle:       domain.DefaultHijriStyle,
		ShowHolidays:     true,
		PrayerOffsets:    map[domain.PrayerKey]int{},
		DigestDay:        domain.DigestToday,
		Reminders:        map[domain.PrayerKey]int{},
	}

	if err := s.dm.Recipient().Create(recipient); err != nil {
		return nil, false, fmt.Errorf("failed to create recipient: %w", err)
	}

	log.Info().Str("channel_id", slackChannelID).Str("channel_name", channelName).Msg("recipient created")
	return recipient, true, nil
}

func (s *settingsService) Get(slackChannelID string) (*entity.Recipient, error) {
	recipient, err := s.dm.Recipient().GetByChannelID(slackChannelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	if recipient == nil {
		return nil, ErrRecipientNotFound
	}

	return recipient, nil
}

func (s *settingsService) SetActive(slackChannelID string, active bool) error {
	if err := s.dm.Recipient().SetActive(slackChannelID, active); err != nil {
		return fmt.Errorf("failed to update recipient status: %w", err)
	}

	log.Info().Str("channel_id", slackChannelID).Bool("active", active).Msg("recipient status changed")
	return nil
}

// UpdateConfig validates and applies one setting. Validation errors wrap ErrInvalidConfig.
func (s *settingsService) UpdateConfig(slackChannelID, configType, configValue string) error {
	value := strings.TrimSpace(configValue)

	return s.dm.WithTransaction(context.Background(), func(tx contract.DataManager) error {
		recipient, err := tx.Recipient().GetByChannelID(slackChannelID)
		if err != nil {
			return fmt.Errorf("failed to get recipient: %w", err)
		}

		if recipient == nil {
			return ErrRecipientNotFound
		}

		if err := applyConfig(recipient, strings.ToLower(strings.TrimSpace(configType)), value); err != nil {
			return err
		}

		if err := tx.Recipient().Update(recipient); err != nil {
			return fmt.Errorf("failed to update recipient: %w", err)
		}

		return nil
	})
}

func applyConfig(r *entity.Recipient, configType, value string) error {
	switch configType {
	case "offset":
		offset, err := parseOffset(value)
		if err != nil {
			return err
		}
		r.GeneralOffset = offset

	case "prayer-offset":
		key, rest, err := splitPrayerArg(value)
		if err != nil {
			return err
		}
		offset, err := parseOffset(rest)
		if err != nil {
			return err
		}
		if r.PrayerOffsets == nil {
			r.PrayerOffsets = map[domain.PrayerKey]int{}
		}
		if offset == 0 {
			delete(r.PrayerOffsets, key)
		} else {
			r.PrayerOffsets[key] = offset
		}

	case "digest":
		if isOff(value) {
			r.DailyDigestTime = ""
			return nil
		}
		at, err := entity.ParseClockTime(value)
		if err != nil {
			return invalidConfig("use HH:MM (24-hour format) or off. Example: 07:00")
		}
		r.DailyDigestTime = at.String()

	case "day":
		switch strings.ToLower(value) {
		case domain.DigestToday, domain.DigestTomorrow:
			r.DigestDay = strings.ToLower(value)
		default:
			return invalidConfig("use today or tomorrow")
		}

	case "remind":
		key, rest, err := splitPrayerArg(value)
		if err != nil {
			return err
		}
		if r.Reminders == nil {
			r.Reminders = map[domain.PrayerKey]int{}
		}
		if isOff(rest) {
			delete(r.Reminders, key)
			return nil
		}
		minutes, err := strconv.Atoi(rest)
		if err != nil || minutes < 1 || minutes > domain.MaxReminderMinutes {
			return invalidConfig("reminder must be between 1 and %d minutes, or off", domain.MaxReminderMinutes)
		}
		r.Reminders[key] = minutes

	case "lang":
		lang, ok := domain.ParseLanguage(value)
		if !ok {
			return invalidConfig("supported languages: %s", strings.Join(domain.SupportedLanguages, ", "))
		}
		r.Language = lang

	case "location":
		value = trimQuotes(value)
		if value == "" {
			return invalidConfig("location cannot be empty. Example: Simferopol")
		}
		if len([]rune(value)) > maxLocationLength {
			return invalidConfig("location is longer than %d characters", maxLocationLength)
		}
		r.LocationName = value

	case "show":
		field, state, _ := strings.Cut(value, " ")
		enabled, err := parseSwitch(strings.TrimSpace(state))
		if err != nil {
			return err
		}
		switch strings.ToLower(field) {
		case "location":
			r.ShowLocation = enabled
		case "hijri":
			r.ShowHijri = enabled
		case "holidays":
			r.ShowHolidays = enabled
		default:
			return invalidConfig("use location, hijri or holidays. Example: show hijri off")
		}

	case "hijri-style":
		switch strings.ToLower(value) {
		case domain.HijriCyrillic, domain.HijriLatin:
			r.HijriStyle = strings.ToLower(value)
		default:
			return invalidConfig("use cyrillic or latin")
		}

	case "prayers":
		prayers, err := parsePrayerList(value)
		if err != nil {
			return err
		}
		r.EnabledPrayers = prayers

	default:
		return invalidConfig("unknown setting %q", configType)
	}

	return nil
}

func parseOffset(value string) (int, error) {
	offset, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(value), "+"))
	if err != nil {
		return 0, invalidConfig("offset must be a whole number of minutes. Example: -5")
	}
	if offset < domain.MinOffset || offset > domain.MaxOffset {
		return 0, invalidConfig("offset must be between %d and %d minutes", domain.MinOffset, domain.MaxOffset)
	}
	return offset, nil
}

func splitPrayerArg(value string) (domain.PrayerKey, string, error) {
	name, rest, ok := strings.Cut(value, " ")
	if !ok {
		return "", "", invalidConfig("use <prayer> <value>. Example: dhuhr 10")
	}
	key, ok := domain.ParsePrayerKey(strings.ToLower(name))
	if !ok {
		return "", "", invalidConfig("unknown prayer %q. Use one of: %s", name, prayerList())
	}
	return key, strings.TrimSpace(rest), nil
}

// parsePrayerList accepts "all" or a comma separated list; "all" is stored as an empty selection.
func parsePrayerList(value string) ([]domain.PrayerKey, error) {
	if strings.EqualFold(value, "all") {
		return nil, nil
	}

	seen := make(map[domain.PrayerKey]bool)
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part == "" {
			continue
		}
		key, ok := domain.ParsePrayerKey(part)
		if !ok {
			return nil, invalidConfig("unknown prayer %q. Use one of: %s", part, prayerList())
		}
		seen[key] = true
	}

	if len(seen) == 0 {
		return nil, invalidConfig("select at least one prayer or all")
	}

	prayers := make([]domain.PrayerKey, 0, len(seen))
	for _, key := range domain.PrayerKeys {
		if seen[key] {
			prayers = append(prayers, key)
		}
	}
	return prayers, nil
}

func parseSwitch(value string) (bool, error) {
	switch strings.ToLower(value) {
	case "on", "yes", "true":
		return true, nil
	case "off", "no", "false":
		return false, nil
	}
	return false, invalidConfig("use on or off")
}

func isOff(value string) bool {
	return strings.EqualFold(value, "off")
}

func trimQuotes(value string) string {
	if len(value) >= 2 &&
		((strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, `'`) && strings.HasSuffix(value, `'`))) {
		value = value[1 : len(value)-1]
	}
	return strings.TrimSpace(value)
}

func prayerList() string {
	names := make([]string, len(domain.PrayerKeys))
	for i, k := range domain.PrayerKeys {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
