package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/username/business-time/internal/calendar"
	"github.com/username/business-time/pkg/dateutil"
	"go.uber.org/zap"
)

// EnvPrefix prefixes every environment override, e.g. BUSINESS_TIME_LOG_LEVEL
const EnvPrefix = "BUSINESS_TIME"

// Config represents application configuration
type Config struct {
	Calendar CalendarConfig `mapstructure:"calendar"`
	Hours    HoursConfig    `mapstructure:"hours"`
	Log      LogConfig      `mapstructure:"log"`
}

// CalendarConfig represents the holiday calendar
type CalendarConfig struct {
	Holidays    []string `mapstructure:"holidays"`     // YYYY-MM-DD
	HolidayFile string   `mapstructure:"holiday_file"` // optional, merged with Holidays
	Timezone    string   `mapstructure:"timezone"`     // IANA name, empty = Local
}

// HoursConfig represents opening windows per day type
type HoursConfig struct {
	Workday WindowConfig `mapstructure:"workday"`
	Holiday WindowConfig `mapstructure:"holiday"`
}

// WindowConfig represents a single opening window (HH:MM[:SS])
type WindowConfig struct {
	Open  string `mapstructure:"open"`
	Close string `mapstructure:"close"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("calendar.holidays", []string{"2021-05-05"})
	v.SetDefault("calendar.holiday_file", "")
	v.SetDefault("calendar.timezone", "")
	v.SetDefault("hours.workday.open", "06:00:00")
	v.SetDefault("hours.workday.close", "20:00:00")
	v.SetDefault("hours.holiday.open", "07:00:00")
	v.SetDefault("hours.holiday.close", "18:00:00")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Load loads configuration from file. An explicit path must exist; when no
// path is given the search paths are tried and defaults apply if none match.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	// Set config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.business-time")
		v.AddConfigPath("/etc/business-time")
	}

	// Read environment variables
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configPath != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	for _, h := range c.Calendar.Holidays {
		if _, err := time.Parse("2006-01-02", h); err != nil {
			return fmt.Errorf("calendar.holidays: invalid date %q", h)
		}
	}

	if _, err := c.Calendar.Location(); err != nil {
		return err
	}

	if _, err := c.BuildHours(); err != nil {
		return err
	}

	return nil
}

// Window parses the opening window
func (w WindowConfig) Window() (calendar.Window, error) {
	open, err := calendar.ParseClock(w.Open)
	if err != nil {
		return calendar.Window{}, fmt.Errorf("open: %w", err)
	}
	closing, err := calendar.ParseClock(w.Close)
	if err != nil {
		return calendar.Window{}, fmt.Errorf("close: %w", err)
	}
	if open == closing {
		return calendar.Window{}, fmt.Errorf("open and close are both %s", open)
	}
	return calendar.Window{Open: open, Close: closing}, nil
}

// Location returns the configured timezone
func (c *CalendarConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("calendar.timezone: %w", err)
	}
	return loc, nil
}

// BuildHours converts the hours section into an hours table
func (c *Config) BuildHours() (*calendar.Hours, error) {
	workday, err := c.Hours.Workday.Window()
	if err != nil {
		return nil, fmt.Errorf("hours.workday: %w", err)
	}
	holiday, err := c.Hours.Holiday.Window()
	if err != nil {
		return nil, fmt.Errorf("hours.holiday: %w", err)
	}
	return calendar.NewHours(workday, holiday), nil
}

// BuildCalendar assembles the holiday calendar from the listed holidays,
// the optional holiday file and the hours table
func (c *Config) BuildCalendar(logger *zap.Logger) (*calendar.HolidayCalendar, error) {
	hours, err := c.BuildHours()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	for _, dayType := range []calendar.DayType{calendar.DayTypeWorkday, calendar.DayTypeHoliday} {
		if w := hours.Window(dayType); w.CrossesMidnight() {
			logger.Warn("Opening window crosses midnight, business time is counted per calendar day",
				zap.Stringer("day_type", dayType),
				zap.Stringer("window", w))
		}
	}

	holidays := make([]time.Time, 0, len(c.Calendar.Holidays))
	for _, h := range c.Calendar.Holidays {
		date, err := dateutil.ParseDate(h)
		if err != nil {
			return nil, fmt.Errorf("calendar.holidays: %w", err)
		}
		holidays = append(holidays, date)
	}

	if c.Calendar.HolidayFile != "" {
		fc := calendar.NewFileCalendar(c.Calendar.HolidayFile, logger)
		if err := fc.Load(); err != nil {
			return nil, err
		}
		holidays = append(holidays, fc.Holidays()...)
	}

	return calendar.NewHolidayCalendar(holidays, hours, logger), nil
}
