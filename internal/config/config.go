package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	DB      DBConfig      `mapstructure:"db"`
	Cron    CronConfig    `mapstructure:"cron"`
	Journal JournalConfig `mapstructure:"journal"`
	Risk    RiskConfig    `mapstructure:"risk"`
}

type AppConfig struct {
	Env string `mapstructure:"env"`
}

type ServerConfig struct {
	HTTPAddr string `mapstructure:"http_addr"`
}

type LogConfig struct {
	Level             string `mapstructure:"level"`
	Encoding          string `mapstructure:"encoding"`
	Development       bool   `mapstructure:"development"`
	Sampling          bool   `mapstructure:"sampling"`
	DisableCaller     bool   `mapstructure:"disable_caller"`
	DisableStacktrace bool   `mapstructure:"disable_stacktrace"`
}

type DBConfig struct {
	Driver          string        `mapstructure:"driver"`
	DSN             string        `mapstructure:"dsn"`
	MaxOpenConns    int           `mapstructure:"max_open_conns"`
	MaxIdleConns    int           `mapstructure:"max_idle_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"conn_max_lifetime"`
	ConnMaxIdleTime time.Duration `mapstructure:"conn_max_idle_time"`
	Timezone        string        `mapstructure:"timezone"`
}

type CronConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	DailyStats string `mapstructure:"daily_stats"`
}

// TimeSlotConfig is one clock-minute bucket of the time-of-day breakdown.
type TimeSlotConfig struct {
	Label string `mapstructure:"label"`
	Min   int    `mapstructure:"min"`
	Max   int    `mapstructure:"max"`
}

// JournalConfig carries the per-journal knobs: the single-user id and the
// value catalogs for the categorical trade fields. The catalogs are
// configuration rather than engine constants so custom playbooks do not
// require a rebuild.
type JournalConfig struct {
	UserID       string           `mapstructure:"user_id"`
	Setups       []string         `mapstructure:"setups"`
	Emotions     []string         `mapstructure:"emotions"`
	TimeSlots    []TimeSlotConfig `mapstructure:"time_slots"`
	EquityPoints int              `mapstructure:"equity_points"`
	ExtremeCount int              `mapstructure:"extreme_count"`
}

type RiskConfig struct {
	DailyMaxLossPct float64 `mapstructure:"daily_max_loss_pct"`
	DefaultRiskPct  float64 `mapstructure:"default_risk_pct"`
}

func Load(path string, envOnly bool) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("SPY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.AutomaticEnv()
	v.SetDefault("app.env", "dev")
	v.SetDefault("server.http_addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.encoding", "console")
	v.SetDefault("log.development", true)
	v.SetDefault("log.sampling", false)
	v.SetDefault("log.disable_caller", false)
	v.SetDefault("log.disable_stacktrace", false)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.dsn", "spytracker.db")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 2)
	v.SetDefault("db.conn_max_lifetime", "30m")
	v.SetDefault("db.conn_max_idle_time", "5m")
	v.SetDefault("db.timezone", "UTC")
	v.SetDefault("cron.enabled", true)
	v.SetDefault("cron.daily_stats", "@every 6h")
	v.SetDefault("journal.user_id", "default")
	v.SetDefault("journal.setups", []string{
		"VWAP Reclaim",
		"Gap Fill",
		"ORB Breakout",
		"Bull/Bear Flag",
		"EMA Dip Buy",
		"EMA Sell Rip",
		"Other",
	})
	v.SetDefault("journal.emotions", []string{
		"Calm", "FOMO", "Anxious", "Revenge", "Confident", "Greedy",
	})
	v.SetDefault("journal.equity_points", 20)
	v.SetDefault("journal.extreme_count", 5)
	v.SetDefault("risk.daily_max_loss_pct", 2.0)
	v.SetDefault("risk.default_risk_pct", 1.0)

	if !envOnly {
		if err := v.ReadInConfig(); err != nil {
			return Config{}, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, err
	}
	if len(cfg.Journal.TimeSlots) == 0 {
		cfg.Journal.TimeSlots = DefaultTimeSlots()
	}
	return cfg, nil
}

// DefaultTimeSlots covers the regular session from the open to the close.
func DefaultTimeSlots() []TimeSlotConfig {
	return []TimeSlotConfig{
		{Label: "9:30–10:00", Min: 570, Max: 600},
		{Label: "10:00–11:30", Min: 600, Max: 690},
		{Label: "11:30–13:00", Min: 690, Max: 780},
		{Label: "13:00–14:00", Min: 780, Max: 840},
		{Label: "14:00–15:30", Min: 840, Max: 930},
		{Label: "15:30–16:00", Min: 930, Max: 960},
	}
}
