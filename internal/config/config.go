package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the bot needs, parsed once from the environment and
// passed into constructors. Trigger days use weekday indices 0=Monday..6=Sunday.
type Config struct {
	SlackBotToken      string   `env:"SLACK_BOT_TOKEN,required,notEmpty"`
	SlackSigningSecret string   `env:"SLACK_SIGNING_SECRET,required,notEmpty"`
	DutyChannelID      string   `env:"DUTY_CHANNEL_ID,required,notEmpty"`
	DatabasePath       string   `env:"DATABASE_PATH" envDefault:"./duty.db"`
	FirstTriggerDay    int      `env:"FIRST_TRIGGER_DAY" envDefault:"0"`
	SecondTriggerDay   int      `env:"SECOND_TRIGGER_DAY" envDefault:"3"`
	NotificationTime   string   `env:"NOTIFICATION_TIME" envDefault:"08:30"`
	ExcludedUserIDs    []string `env:"EXCLUDED_USER_IDS" envSeparator:","`
	Port               string   `env:"PORT" envDefault:"3000"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	for _, day := range []int{c.FirstTriggerDay, c.SecondTriggerDay} {
		if day < 0 || day > 6 {
			return fmt.Errorf("invalid trigger day %d: must be 0 (Monday) to 6 (Sunday)", day)
		}
	}

	if _, err := time.Parse("15:04", c.NotificationTime); err != nil {
		return fmt.Errorf("invalid notification time %q: use HH:MM (24-hour format)", c.NotificationTime)
	}

	return nil
}

// TriggerClock returns the configured notification time of day.
// Only valid after a successful Load.
func (c *Config) TriggerClock() (hour, minute int) {
	t, _ := time.Parse("15:04", c.NotificationTime)
	return t.Hour(), t.Minute()
}
