package config

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	BotToken          string `mapstructure:"bot_token"`
	SigningSecret     string `mapstructure:"signing_secret"`
	LogLevel          string `mapstructure:"log_level"`
	RequestLogEnabled bool   `mapstructure:"request_log_enabled"`
	Port              int    `mapstructure:"port"`
	DataDir           string `mapstructure:"data_dir"`
	StoreDriver       string `mapstructure:"store_driver"`
}

var config = Config{}

// Load reads process configuration from the environment, falling back to an
// optional intro-bot.yaml in the working directory. Env variable names match
// what the Slack app setup produces (SLACK_BOT_TOKEN etc.).
func Load() error {
	viper.SetDefault("log_level", "debug")
	viper.SetDefault("port", 3000)
	viper.SetDefault("data_dir", "config")
	viper.SetDefault("store_driver", "json")

	viper.BindEnv("bot_token", "SLACK_BOT_TOKEN")
	viper.BindEnv("signing_secret", "SLACK_SIGNING_SECRET")
	viper.BindEnv("log_level", "SLACK_LOG_LEVEL")
	viper.BindEnv("request_log_enabled", "SLACK_REQUEST_LOG_ENABLED")
	viper.BindEnv("port", "PORT")
	viper.BindEnv("data_dir", "DATA_DIR")
	viper.BindEnv("store_driver", "STORE_DRIVER")

	viper.SetConfigName("intro-bot")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	return viper.Unmarshal(&config)
}

func SetLogLevel() {
	if viper.GetBool("verbose") {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithField("log_level", config.LogLevel).Warn("unknown log level, using debug")
		level = logrus.DebugLevel
	}
	logrus.SetLevel(level)
}

func GetConfig() *Config {
	return &config
}
