package page

import (
	"time"

	"k8s.io/utils/clock"

	"github.com/aerissecure/salesfinder/config"
)

// Options are the settings shared by every page host.
type Options struct {
	// Clock supplies the reference time for recency tiers.
	Clock clock.PassiveClock

	ViewerSteamID string
	BackpackURL   string
	SteamURL      string
	DateLayouts   []string
}

// NewOptions builds Options from cfg. A pinned cfg.Now replaces the real clock.
func NewOptions(cfg *config.Config) Options {
	opts := Options{
		Clock:         clock.RealClock{},
		ViewerSteamID: cfg.ViewerSteamID,
		BackpackURL:   cfg.BackpackURL,
		SteamURL:      cfg.SteamURL,
		DateLayouts:   cfg.DateLayouts,
	}
	if now, ok := cfg.NowTime(); ok {
		opts.Clock = fixedClock{now: now}
	}
	return opts
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = clock.RealClock{}
	}
	if o.BackpackURL == "" {
		o.BackpackURL = config.DefaultBackpackURL
	}
	if o.SteamURL == "" {
		o.SteamURL = config.DefaultSteamURL
	}
	return o
}

type fixedClock struct {
	now time.Time
}

var _ clock.PassiveClock = fixedClock{}

func (c fixedClock) Now() time.Time                  { return c.now }
func (c fixedClock) Since(t time.Time) time.Duration { return c.now.Sub(t) }
