package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/tsingjyujing/polyglot/config"
	"github.com/tsingjyujing/polyglot/utils"
)

var logger = utils.Logger

// readConfig resolves the configuration file and environment overrides, exiting on error.
// Running without a configuration file is allowed, the defaults are used then.
func readConfig(configFile string) (*viper.Viper, *config.Envelope) {
	viperInstance, envelope, err := resolveConfig(configFile)
	if err != nil {
		logger.WithError(err).Fatal("Failed to parse configuration")
	}
	return viperInstance, envelope
}

func resolveConfig(configFile string) (*viper.Viper, *config.Envelope, error) {
	viperInstance := viper.New()
	if configFile != "" {
		viperInstance.SetConfigFile(configFile)
	} else {
		viperInstance.SetConfigName("config")
		viperInstance.SetConfigType("yaml")
		viperInstance.AddConfigPath("/etc/polyglot/")
		viperInstance.AddConfigPath("$HOME/.polyglot")
		viperInstance.AddConfigPath("./config")
	}
	viperInstance.SetEnvPrefix("POLYGLOT")
	viperInstance.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viperInstance.AutomaticEnv()
	// Set default values
	defaults := config.Default()
	viperInstance.SetDefault("server.address", defaults.Server.Address)
	viperInstance.SetDefault("server.tokens", []string{})

	envelope := defaults
	if err := viperInstance.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, nil, fmt.Errorf("error reading config file: %w", err)
		}
		logger.Warn("No config file found, using defaults")
	} else {
		logger.Infof("Using config file: %s", viperInstance.ConfigFileUsed())
		envelope, err = config.LoadConfigFromFile(viperInstance.ConfigFileUsed())
		if err != nil {
			return nil, nil, err
		}
	}

	applyEnvironment(viperInstance, envelope)
	if err := envelope.Detector.Validate(); err != nil {
		return nil, nil, err
	}
	return viperInstance, envelope, nil
}

// applyEnvironment copies POLYGLOT_* overrides into the envelope.
// List values are space separated, e.g. POLYGLOT_DETECTOR_LANGUAGES="en fr de".
func applyEnvironment(v *viper.Viper, envelope *config.Envelope) {
	envelope.Server.Address = v.GetString("server.address")
	envelope.Server.Tokens = v.GetStringSlice("server.tokens")

	d := &envelope.Detector
	if v.IsSet("detector.engine") {
		d.Engine = v.GetString("detector.engine")
	}
	if v.IsSet("detector.languages") {
		d.Languages = v.GetStringSlice("detector.languages")
	}
	if v.IsSet("detector.preload") {
		d.Preload = v.GetBool("detector.preload")
	}
	if v.IsSet("detector.low_accuracy") {
		d.LowAccuracy = v.GetBool("detector.low_accuracy")
	}
	if v.IsSet("detector.min_confidence") {
		d.MinConfidence = v.GetFloat64("detector.min_confidence")
	}
	if v.IsSet("detector.min_relative_distance") {
		d.MinRelativeDistance = v.GetFloat64("detector.min_relative_distance")
	}
	if v.IsSet("detector.hint_weight") {
		d.HintWeight = v.GetFloat64("detector.hint_weight")
	}
	if v.IsSet("detector.plain_text") {
		d.PlainText = v.GetBool("detector.plain_text")
	}
	if v.IsSet("detector.language_hints") {
		d.LanguageHints = v.GetStringSlice("detector.language_hints")
	}
	if v.IsSet("detector.encoding_hint") {
		d.EncodingHint = v.GetString("detector.encoding_hint")
	}
	if v.IsSet("detector.max_input_bytes") {
		d.MaxInputBytes = v.GetInt("detector.max_input_bytes")
	}

	if v.IsSet("limits.body_bytes") {
		envelope.Limits.BodyBytes = v.GetInt64("limits.body_bytes")
	}
	if v.IsSet("limits.log_every") {
		envelope.Limits.LogEvery = v.GetInt("limits.log_every")
	}
}
