// Command prayerctl renders schedules from the time table without Slack.
//
// Usage:
//
//	prayerctl validate --source ./data/timetable.sample.csv
//	prayerctl schedule 2026-03-20 --lang en --offset 2
//	prayerctl next --at "2026-03-18 12:00"
//	prayerctl ics --days 30 --remind fajr=10 --out feed.ics
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	_ "time/tzdata"

	"github.com/diegoclair/prayer-times-bot/internal/config"
	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
	"github.com/diegoclair/prayer-times-bot/internal/domain/entity"
	"github.com/diegoclair/prayer-times-bot/internal/domain/service"
	"github.com/diegoclair/prayer-times-bot/internal/i18n"
	"github.com/diegoclair/prayer-times-bot/internal/logger"
	"github.com/diegoclair/prayer-times-bot/internal/timetable"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	source     string
	timezone   string
	at         string
	lang       string
	location   string
	offset     int
	hijriStyle string
	reminders  map[string]int
}

type fixedClock time.Time

func (c fixedClock) Now() time.Time { return time.Time(c) }

func newRootCmd() *cobra.Command {
	cfg := config.Load()
	opts := &options{}

	root := &cobra.Command{
		Use:          "prayerctl",
		Short:        "Prayer time table tools",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.Setup(cfg.LogLevel, cfg.LogPretty)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.source, "source", cfg.TimetableSource, "Time table CSV path or http(s) URL")
	flags.StringVar(&opts.timezone, "timezone", cfg.Timezone, "Operating time zone")
	flags.StringVar(&opts.at, "at", "", `Current time as "YYYY-MM-DD HH:MM", defaults to now`)
	flags.StringVar(&opts.lang, "lang", cfg.DefaultLanguage, "Language: ru, crh-Cyrl, crh-Latn, en")
	flags.StringVar(&opts.location, "location", cfg.DefaultLocation, "Location shown in the header")
	flags.IntVar(&opts.offset, "offset", 0, "General offset in minutes")
	flags.StringVar(&opts.hijriStyle, "hijri-style", domain.DefaultHijriStyle, "Hijri month names: cyrillic or latin")
	flags.StringToIntVar(&opts.reminders, "remind", nil, "Reminders as prayer=minutes, used by ics")

	root.AddCommand(validateCmd(cfg, opts))
	root.AddCommand(scheduleCmd(cfg, opts))
	root.AddCommand(nextCmd(cfg, opts))
	root.AddCommand(icsCmd(cfg, opts))

	return root
}

func validateCmd(cfg *config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the time table and report its coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.source == "" {
				return errors.New("no time table source, set --source or TIMETABLE_SOURCE")
			}
			loc, err := time.LoadLocation(opts.timezone)
			if err != nil {
				return fmt.Errorf("invalid --timezone %q: %w", opts.timezone, err)
			}
			clock, err := clockFromFlags(opts, loc)
			if err != nil {
				return err
			}

			store := timetable.NewStore(timetable.NewSource(opts.source))
			if err := store.Load(cmd.Context()); err != nil {
				return err
			}

			stats := store.Stats()
			covers := "no"
			if stats.Covers(clock.Now().In(loc)) {
				covers = "yes"
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "rows: %d\n", stats.Rows)
			fmt.Fprintf(out, "skipped: %d\n", stats.Skipped)
			fmt.Fprintf(out, "range: %s .. %s\n", stats.First.Format(domain.DateLayout), stats.Last.Format(domain.DateLayout))
			fmt.Fprintf(out, "covers today: %s\n", covers)
			return nil
		},
	}
}

func scheduleCmd(cfg *config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule [YYYY-MM-DD]",
		Short: "Print the formatted schedule of a date, today by default",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}

			date := env.schedule.Now()
			if len(args) == 1 {
				date, err = time.ParseInLocation(domain.DateLayout, args[0], env.loc)
				if err != nil {
					return fmt.Errorf("invalid date %q, use YYYY-MM-DD", args[0])
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), env.schedule.FormatSchedule(date, env.recipient))
			return nil
		},
	}
}

func nextCmd(cfg *config.Config, opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Print the next prayer and the time remaining",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := newEnv(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), env.schedule.FormatNextPrayer(env.schedule.Now(), env.recipient))
			return nil
		},
	}
}

func icsCmd(cfg *config.Config, opts *options) *cobra.Command {
	var days int
	var outPath string

	cmd := &cobra.Command{
		Use:   "ics",
		Short: "Export the iCalendar feed starting today",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 || days > 366 {
				return fmt.Errorf("days must be between 1 and 366, got %d", days)
			}

			env, err := newEnv(cmd.Context(), cfg, opts)
			if err != nil {
				return err
			}

			data, err := env.schedule.CalendarFeed(env.schedule.Now(), days, env.recipient)
			if err != nil {
				return fmt.Errorf("build calendar: %w", err)
			}

			var out io.Writer = cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return err
				}
				defer f.Close()
				out = f
			}

			_, err = out.Write(data)
			return err
		},
	}

	cmd.Flags().IntVar(&days, "days", cfg.CalendarDays, "Number of days to export")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Write to a file instead of stdout")
	return cmd
}

type env struct {
	loc       *time.Location
	schedule  contract.ScheduleService
	recipient *entity.Recipient
}

// newEnv loads the time table and builds an in-memory recipient from the flags.
func newEnv(ctx context.Context, cfg *config.Config, opts *options) (*env, error) {
	cfg.TimetableSource = opts.source
	cfg.Timezone = opts.timezone
	cfg.DefaultLanguage = opts.lang
	if err := cfg.Validate(false); err != nil {
		return nil, err
	}
	loc, _ := cfg.Location()

	recipient, err := recipientFromFlags(cfg.DefaultLanguage, opts)
	if err != nil {
		return nil, err
	}

	clock, err := clockFromFlags(opts, loc)
	if err != nil {
		return nil, err
	}

	store := timetable.NewStore(timetable.NewSource(opts.source))
	if err := store.Load(ctx); err != nil {
		return nil, err
	}

	translator, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		return nil, err
	}

	svc := service.NewInstance(nil, nil, store, translator, service.Options{
		Location:        loc,
		DefaultLanguage: cfg.DefaultLanguage,
		Clock:           clock,
	})

	return &env{loc: loc, schedule: svc.Schedule, recipient: recipient}, nil
}

func clockFromFlags(opts *options, loc *time.Location) (service.Clock, error) {
	if opts.at == "" {
		return service.RealClock{}, nil
	}
	at, err := time.ParseInLocation(domain.DateLayout+" "+domain.ClockLayout, opts.at, loc)
	if err != nil {
		return nil, fmt.Errorf("invalid --at %q, use \"YYYY-MM-DD HH:MM\"", opts.at)
	}
	return fixedClock(at), nil
}

func recipientFromFlags(lang string, opts *options) (*entity.Recipient, error) {
	if opts.hijriStyle != domain.HijriCyrillic && opts.hijriStyle != domain.HijriLatin {
		return nil, fmt.Errorf("invalid --hijri-style %q, use cyrillic or latin", opts.hijriStyle)
	}

	reminders := make(map[domain.PrayerKey]int, len(opts.reminders))
	for name, minutes := range opts.reminders {
		key, ok := domain.ParsePrayerKey(strings.ToLower(name))
		if !ok {
			return nil, fmt.Errorf("unknown prayer %q in --remind", name)
		}
		if minutes < 1 || minutes > domain.MaxReminderMinutes {
			return nil, fmt.Errorf("reminder for %s must be between 1 and %d minutes", key, domain.MaxReminderMinutes)
		}
		reminders[key] = minutes
	}

	return &entity.Recipient{
		SlackChannelID: "cli",
		IsActive:       true,
		Language:       lang,
		LocationName:   opts.location,
		ShowLocation:   opts.location != "",
		ShowHijri:      true,
		HijriStyle:     opts.hijriStyle,
		ShowHolidays:   true,
		GeneralOffset:  opts.offset,
		PrayerOffsets:  map[domain.PrayerKey]int{},
		DigestDay:      domain.DigestToday,
		Reminders:      reminders,
	}, nil
}
