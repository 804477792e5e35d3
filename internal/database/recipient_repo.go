package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/rs/zerolog/log"
)

// errCorruptSettings marks a row whose JSON settings columns cannot be decoded.
var errCorruptSettings = errors.New("corrupt recipient settings")

const recipientColumns = `
	id, slack_channel_id, slack_channel_name, slack_team_id, is_active,
	language, location_name, show_location, show_hijri, hijri_style, show_holidays,
	general_offset, prayer_offsets, enabled_prayers,
	daily_digest_time, digest_day, reminders, created_at, updated_at`

type recipientRepo struct {
	db dbConn
}

func newRecipientRepo(db dbConn) contract.RecipientRepo {
	return &recipientRepo{db: db}
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

type recipientJSON struct {
	prayerOffsets  string
	enabledPrayers string
	reminders      string
}

func marshalRecipientJSON(r *entity.Recipient) (recipientJSON, error) {
	var out recipientJSON

	offsets := r.PrayerOffsets
	if offsets == nil {
		offsets = map[domain.PrayerKey]int{}
	}
	b, err := json.Marshal(offsets)
	if err != nil {
		return out, fmt.Errorf("failed to marshal prayer offsets: %w", err)
	}
	out.prayerOffsets = string(b)

	enabled := r.EnabledPrayers
	if enabled == nil {
		enabled = []domain.PrayerKey{}
	}
	b, err = json.Marshal(enabled)
	if err != nil {
		return out, fmt.Errorf("failed to marshal enabled prayers: %w", err)
	}
	out.enabledPrayers = string(b)

	reminders := r.Reminders
	if reminders == nil {
		reminders = map[domain.PrayerKey]int{}
	}
	b, err = json.Marshal(reminders)
	if err != nil {
		return out, fmt.Errorf("failed to marshal reminders: %w", err)
	}
	out.reminders = string(b)

	return out, nil
}

func digestTimeValue(r *entity.Recipient) sql.NullString {
	return sql.NullString{String: r.DailyDigestTime, Valid: r.DailyDigestTime != ""}
}

func scanRecipient(row rowScanner) (*entity.Recipient, error) {
	r := &entity.Recipient{}
	var (
		offsetsJSON, enabledJSON, remindersJSON string
		digestTime                              sql.NullString
	)

	err := row.Scan(
		&r.ID,
		&r.SlackChannelID,
		&r.SlackChannelName,
		&r.SlackTeamID,
		&r.IsActive,
		&r.Language,
		&r.LocationName,
		&r.ShowLocation,
		&r.ShowHijri,
		&r.HijriStyle,
		&r.ShowHolidays,
		&r.GeneralOffset,
		&offsetsJSON,
		&enabledJSON,
		&digestTime,
		&r.DigestDay,
		&remindersJSON,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	r.DailyDigestTime = digestTime.String

	if err := json.Unmarshal([]byte(offsetsJSON), &r.PrayerOffsets); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal prayer offsets: %w", errCorruptSettings, err)
	}
	if err := json.Unmarshal([]byte(enabledJSON), &r.EnabledPrayers); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal enabled prayers: %w", errCorruptSettings, err)
	}
	if err := json.Unmarshal([]byte(remindersJSON), &r.Reminders); err != nil {
		return nil, fmt.Errorf("%w: failed to unmarshal reminders: %w", errCorruptSettings, err)
	}

	return r, nil
}

func (r *recipientRepo) Create(recipient *entity.Recipient) error {
	query := `
		INSERT INTO recipients (
			slack_channel_id, slack_channel_name, slack_team_id, is_active,
			language, location_name, show_location, show_hijri, hijri_style, show_holidays,
			general_offset, prayer_offsets, enabled_prayers,
			daily_digest_time, digest_day, reminders
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	js, err := marshalRecipientJSON(recipient)
	if err != nil {
		return err
	}

	result, err := r.db.Exec(query,
		recipient.SlackChannelID,
		recipient.SlackChannelName,
		recipient.SlackTeamID,
		recipient.IsActive,
		recipient.Language,
		recipient.LocationName,
		recipient.ShowLocation,
		recipient.ShowHijri,
		recipient.HijriStyle,
		recipient.ShowHolidays,
		recipient.GeneralOffset,
		js.prayerOffsets,
		js.enabledPrayers,
		digestTimeValue(recipient),
		recipient.DigestDay,
		js.reminders,
	)
	if err != nil {
		return fmt.Errorf("failed to create recipient: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert id: %w", err)
	}

	recipient.ID = id
	return nil
}

func (r *recipientRepo) GetByChannelID(slackChannelID string) (*entity.Recipient, error) {
	query := `SELECT ` + recipientColumns + ` FROM recipients WHERE slack_channel_id = ?`

	recipient, err := scanRecipient(r.db.QueryRow(query, slackChannelID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get recipient: %w", err)
	}

	return recipient, nil
}

func (r *recipientRepo) Update(recipient *entity.Recipient) error {
	query := `
		UPDATE recipients
		SET slack_channel_name = ?, slack_team_id = ?, is_active = ?,
			language = ?, location_name = ?, show_location = ?, show_hijri = ?, hijri_style = ?, show_holidays = ?,
			general_offset = ?, prayer_offsets = ?, enabled_prayers = ?,
			daily_digest_time = ?, digest_day = ?, reminders = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?
	`

	js, err := marshalRecipientJSON(recipient)
	if err != nil {
		return err
	}

	_, err = r.db.Exec(query,
		recipient.SlackChannelName,
		recipient.SlackTeamID,
		recipient.IsActive,
		recipient.Language,
		recipient.LocationName,
		recipient.ShowLocation,
		recipient.ShowHijri,
		recipient.HijriStyle,
		recipient.ShowHolidays,
		recipient.GeneralOffset,
		js.prayerOffsets,
		js.enabledPrayers,
		digestTimeValue(recipient),
		recipient.DigestDay,
		js.reminders,
		recipient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update recipient: %w", err)
	}

	return nil
}

func (r *recipientRepo) SetActive(slackChannelID string, active bool) error {
	query := `
		UPDATE recipients
		SET is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE slack_channel_id = ?
	`

	if _, err := r.db.Exec(query, active, slackChannelID); err != nil {
		return fmt.Errorf("failed to set recipient active flag: %w", err)
	}

	return nil
}

func (r *recipientRepo) GetWithDailyDigest() ([]*entity.Recipient, error) {
	query := `SELECT ` + recipientColumns + `
		FROM recipients
		WHERE is_active = 1 AND daily_digest_time IS NOT NULL AND daily_digest_time != ''
		ORDER BY id`

	return r.list(query)
}

func (r *recipientRepo) GetWithReminders() ([]*entity.Recipient, error) {
	query := `SELECT ` + recipientColumns + `
		FROM recipients
		WHERE is_active = 1 AND reminders != '{}' AND reminders != ''
		ORDER BY id`

	return r.list(query)
}

func (r *recipientRepo) list(query string) ([]*entity.Recipient, error) {
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list recipients: %w", err)
	}
	defer rows.Close()

	var recipients []*entity.Recipient
	for rows.Next() {
		recipient, err := scanRecipient(rows)
		if errors.Is(err, errCorruptSettings) {
			log.Warn().Err(err).Msg("skipping recipient with corrupt settings")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan recipient: %w", err)
		}
		recipients = append(recipients, recipient)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate recipients: %w", err)
	}

	return recipients, nil
}
