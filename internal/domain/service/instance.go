package service

import (
	"time"

	"github.com/diegoclair/prayer-times-bot/internal/calendar"
	"github.com/diegoclair/prayer-times-bot/internal/domain"
	"github.com/diegoclair/prayer-times-bot/internal/domain/contract"
)

type Options struct {
	Location            *time.Location
	DefaultLocationName string
	DefaultLanguage     string
	// DispatchInterval paces message launches within one tick; zero disables pacing.
	DispatchInterval time.Duration
	DrainTimeout     time.Duration
	Calendar         *calendar.Calendar
	Clock            Clock
}

type Instance struct {
	Settings  *settingsService
	Schedule  *scheduleService
	Delivery  *deliveryService
	Scheduler *scheduler
}

func NewInstance(dm contract.DataManager, slackClient contract.SlackClient, table contract.TimeTable, tr contract.Localizer, opts Options) *Instance {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = domain.DefaultLanguage
	}
	if opts.Calendar == nil {
		opts.Calendar = calendar.Default()
	}
	if opts.Clock == nil {
		opts.Clock = RealClock{}
	}

	scheduleService := newSchedule(table, opts.Calendar, tr, opts.Clock, opts.Location)
	deliveryService := newDelivery(dm, slackClient)

	return &Instance{
		Settings:  newSettings(dm, opts.DefaultLanguage, opts.DefaultLocationName),
		Schedule:  scheduleService,
		Delivery:  deliveryService,
		Scheduler: newScheduler(dm, scheduleService, deliveryService, opts.Clock, opts.Location, opts.DispatchInterval, opts.DrainTimeout),
	}
}
