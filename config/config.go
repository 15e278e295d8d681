package config

import (
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type Config struct {
	Server    Server
	Database  Database
	Redis     Redis
	SMTP      SMTP
	Runner    Runner
	Proctor   Proctor
	Scheduler Scheduler
}

type Server struct {
	Port string
}

type Database struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type Redis struct {
	Addr     string
	Password string
	DB       int
}

type SMTP struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

// Runner points at the external code-execution collaborator.
type Runner struct {
	URL     string
	Timeout time.Duration
}

// Proctor configures the face-comparator collaborator and the identity
// verification cadence during active sessions.
type Proctor struct {
	ComparatorURL  string
	MatchThreshold float64
	WarmupDelay    time.Duration
	CheckInterval  time.Duration
}

// Scheduler configures the challenge lifecycle ticks. The reminder window is
// [now+ReminderOffset-ReminderTolerance, now+ReminderOffset+ReminderTolerance].
type Scheduler struct {
	ReminderSpec      string
	LeaderboardSpec   string
	ReminderOffset    time.Duration
	ReminderTolerance time.Duration
	LockTTL           time.Duration
}

func NewConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("RUNNER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("PROCTOR_MATCH_THRESHOLD", 0.6)
	viper.SetDefault("PROCTOR_WARMUP_SECONDS", 5)
	viper.SetDefault("PROCTOR_INTERVAL_SECONDS", 15)
	viper.SetDefault("REMINDER_CRON_SPEC", "*/30 * * * * *")
	viper.SetDefault("LEADERBOARD_CRON_SPEC", "0 * * * * *")
	viper.SetDefault("REMINDER_OFFSET_SECONDS", 120)
	viper.SetDefault("REMINDER_TOLERANCE_SECONDS", 40)
	viper.SetDefault("SCHEDULER_LOCK_TTL_SECONDS", 300)

	if err := viper.ReadInConfig(); err != nil {
		log.Warn().Err(err).Msg("Error reading config file")
	}

	var config Config

	config.Server.Port = viper.GetString("SERVER_PORT")
	config.Database.Host = viper.GetString("DATABASE_HOST")
	config.Database.Port = viper.GetString("DATABASE_PORT")
	config.Database.User = viper.GetString("DATABASE_USER")
	config.Database.Password = viper.GetString("DATABASE_PASSWORD")
	config.Database.Name = viper.GetString("DATABASE_NAME")

	config.Redis.Addr = viper.GetString("REDIS_ADDR")
	config.Redis.Password = viper.GetString("REDIS_PASSWORD")
	config.Redis.DB = viper.GetInt("REDIS_DB")

	config.SMTP.Host = viper.GetString("SMTP_HOST")
	config.SMTP.Port = viper.GetInt("SMTP_PORT")
	config.SMTP.User = viper.GetString("SMTP_USER")
	config.SMTP.Password = viper.GetString("SMTP_APP_PASS")
	config.SMTP.From = viper.GetString("SMTP_FROM")
	if config.SMTP.From == "" {
		config.SMTP.From = config.SMTP.User
	}

	config.Runner.URL = viper.GetString("RUNNER_URL")
	config.Runner.Timeout = secondsDuration("RUNNER_TIMEOUT_SECONDS")

	config.Proctor.ComparatorURL = viper.GetString("FACE_COMPARATOR_URL")
	config.Proctor.MatchThreshold = viper.GetFloat64("PROCTOR_MATCH_THRESHOLD")
	config.Proctor.WarmupDelay = secondsDuration("PROCTOR_WARMUP_SECONDS")
	config.Proctor.CheckInterval = secondsDuration("PROCTOR_INTERVAL_SECONDS")

	config.Scheduler.ReminderSpec = viper.GetString("REMINDER_CRON_SPEC")
	config.Scheduler.LeaderboardSpec = viper.GetString("LEADERBOARD_CRON_SPEC")
	config.Scheduler.ReminderOffset = secondsDuration("REMINDER_OFFSET_SECONDS")
	config.Scheduler.ReminderTolerance = secondsDuration("REMINDER_TOLERANCE_SECONDS")
	config.Scheduler.LockTTL = secondsDuration("SCHEDULER_LOCK_TTL_SECONDS")

	log.Info().Str("port", config.Server.Port).Msg("Config loaded")
	return &config, nil
}

func secondsDuration(key string) time.Duration {
	return time.Duration(viper.GetInt(key)) * time.Second
}
