// Package config loads mailbatch settings from an optional YAML file,
// MAILBATCH_* environment variables and built-in defaults, in increasing
// order of precedence: defaults, file, environment.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/Abraxas-365/mailbatch/pkg/roster"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override, e.g. MAILBATCH_MAIL_PROVIDER.
const EnvPrefix = "MAILBATCH"

// DefaultFile is looked up in the working directory when no file is given.
const DefaultFile = "mailbatch"

// Config is the full application configuration.
type Config struct {
	Dispatch DispatchConfig `mapstructure:"dispatch"`
	Mail     MailConfig     `mapstructure:"mail"`
	Source   SourceConfig   `mapstructure:"source"`
	Campaign CampaignConfig `mapstructure:"campaign"`
	Log      LogConfig      `mapstructure:"log"`
	AWS      AWSConfig      `mapstructure:"aws"`
}

// DispatchConfig controls pacing of the send loop.
type DispatchConfig struct {
	// Delay is the pause between two sends.
	Delay time.Duration `mapstructure:"delay"`
	// Rate, when positive, replaces Delay with a token bucket of Rate sends
	// per minute.
	Rate   float64 `mapstructure:"rate"`
	Burst  int     `mapstructure:"burst"`
	DryRun bool    `mapstructure:"dry_run"`
}

// MailConfig selects and configures the mail provider.
type MailConfig struct {
	Provider    string     `mapstructure:"provider"`
	FromAddress string     `mapstructure:"from_address"`
	FromName    string     `mapstructure:"from_name"`
	SMTP        SMTPConfig `mapstructure:"smtp"`
	SES         SESConfig  `mapstructure:"ses"`
}

type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type SESConfig struct {
	Region           string `mapstructure:"region"`
	ConfigurationSet string `mapstructure:"configuration_set"`
}

// SourceConfig locates the roster.
type SourceConfig struct {
	// Path is a local path or an s3://bucket/key URL.
	Path    string         `mapstructure:"path"`
	Sheet   string         `mapstructure:"sheet"`
	Columns roster.Columns `mapstructure:"columns"`
}

type CampaignConfig struct {
	// TablesPath optionally points to a YAML localization file.
	TablesPath string `mapstructure:"tables_path"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  string `mapstructure:"color"`
}

type AWSConfig struct {
	Region string `mapstructure:"region"`
}

// Mail providers.
const (
	ProviderConsole = "console"
	ProviderSMTP    = "smtp"
	ProviderSES     = "ses"
)

// Load reads configuration. path may be empty, in which case ./mailbatch.yaml
// is used if present. A .env file in the working directory is loaded into
// the process environment first.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// logx reads LOG_* on its own; honour the same names here.
	_ = v.BindEnv("log.level", EnvPrefix+"_LOG_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("log.format", EnvPrefix+"_LOG_FORMAT", "LOG_FORMAT")
	_ = v.BindEnv("log.color", EnvPrefix+"_LOG_COLOR", "LOG_COLOR")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, configErrors.NewWithCause(ErrLoad, err).WithDetail("path", path)
		}
	} else {
		v.SetConfigName(DefaultFile)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, configErrors.NewWithCause(ErrLoad, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, configErrors.NewWithCause(ErrLoad, err)
	}
	cfg.Mail.Provider = strings.ToLower(strings.TrimSpace(cfg.Mail.Provider))
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("dispatch.delay", 5*time.Second)
	v.SetDefault("dispatch.rate", 0.0)
	v.SetDefault("dispatch.burst", 1)
	v.SetDefault("dispatch.dry_run", false)

	v.SetDefault("mail.provider", ProviderConsole)
	v.SetDefault("mail.from_address", "")
	v.SetDefault("mail.from_name", "")
	v.SetDefault("mail.smtp.host", "localhost")
	v.SetDefault("mail.smtp.port", 587)
	v.SetDefault("mail.smtp.username", "")
	v.SetDefault("mail.smtp.password", "")
	v.SetDefault("mail.ses.region", "")
	v.SetDefault("mail.ses.configuration_set", "")

	cols := roster.DefaultColumns()
	v.SetDefault("source.path", "")
	v.SetDefault("source.sheet", "")
	v.SetDefault("source.columns.address", cols.Address)
	v.SetDefault("source.columns.salutation", cols.Salutation)
	v.SetDefault("source.columns.first_name", cols.FirstName)
	v.SetDefault("source.columns.last_name", cols.LastName)
	v.SetDefault("source.columns.language", cols.Language)

	v.SetDefault("campaign.tables_path", "")

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.color", "auto")

	v.SetDefault("aws.region", "eu-central-1")
}

// Validate checks settings that would otherwise fail mid-run.
func (c *Config) Validate() error {
	invalid := func(key, reason string) error {
		return configErrors.New(ErrInvalid).WithDetail("key", key).WithDetail("reason", reason)
	}

	if c.Dispatch.Delay < 0 {
		return invalid("dispatch.delay", "must not be negative")
	}
	if c.Dispatch.Rate < 0 {
		return invalid("dispatch.rate", "must not be negative")
	}
	if c.Dispatch.Rate > 0 && c.Dispatch.Burst < 1 {
		return invalid("dispatch.burst", "must be at least 1 when a rate is set")
	}

	switch c.Mail.Provider {
	case ProviderConsole:
	case ProviderSMTP:
		if c.Mail.SMTP.Host == "" {
			return invalid("mail.smtp.host", "required for the smtp provider")
		}
		if c.Mail.SMTP.Port <= 0 || c.Mail.SMTP.Port > 65535 {
			return invalid("mail.smtp.port", "must be a valid port")
		}
		if c.Mail.FromAddress == "" {
			return invalid("mail.from_address", "required for the smtp provider")
		}
	case ProviderSES:
		if c.Mail.FromAddress == "" {
			return invalid("mail.from_address", "required for the ses provider")
		}
	default:
		return invalid("mail.provider", "must be one of console, smtp, ses")
	}

	switch strings.ToLower(c.Log.Color) {
	case "", "auto", "always", "never":
	default:
		return invalid("log.color", "must be one of auto, always, never")
	}
	return nil
}

// SESRegion returns the SES region, falling back to the AWS region.
func (c *Config) SESRegion() string {
	if c.Mail.SES.Region != "" {
		return c.Mail.SES.Region
	}
	return c.AWS.Region
}
