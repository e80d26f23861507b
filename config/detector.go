package config

import (
	"fmt"
	"os"

	"github.com/tsingjyujing/polyglot/text"
	"gopkg.in/yaml.v3"
)

// Detector configures the engine and the fixed per-call options of the boundary
type Detector struct {
	Engine              string   `yaml:"engine"`
	Languages           []string `yaml:"languages"`
	Preload             bool     `yaml:"preload"`
	LowAccuracy         bool     `yaml:"low_accuracy"`
	MinConfidence       float64  `yaml:"min_confidence"`
	MinRelativeDistance float64  `yaml:"min_relative_distance"`
	HintWeight          float64  `yaml:"hint_weight"`
	PlainText           bool     `yaml:"plain_text"`
	LanguageHints       []string `yaml:"language_hints"`
	EncodingHint        string   `yaml:"encoding_hint"`
	MaxInputBytes       int      `yaml:"max_input_bytes"`
}

// DefaultDetector mirrors the fixed configuration of the C boundary
func DefaultDetector() Detector {
	lingua := text.DefaultLinguaOptions()
	return Detector{
		Engine:              text.EngineLingua,
		MinConfidence:       lingua.MinConfidence,
		MinRelativeDistance: lingua.MinRelativeDistance,
		HintWeight:          lingua.HintWeight,
		PlainText:           true,
		MaxInputBytes:       text.DefaultMaxInputBytes,
	}
}

// Default returns the configuration used when no file is present
func Default() *Envelope {
	return &Envelope{
		Server: Server{
			Address: ":8080",
		},
		Detector: DefaultDetector(),
		Limits: Limits{
			BodyBytes: 1 << 20,
			LogEvery:  1000,
		},
	}
}

// LoadConfigFromFile parses a YAML file on top of the defaults
func LoadConfigFromFile(path string) (*Envelope, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	envelope := Default()
	if err := yaml.Unmarshal(data, envelope); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}
	if err := envelope.Detector.Validate(); err != nil {
		return nil, err
	}
	return envelope, nil
}

// Validate checks the values an engine cannot be built from
func (d Detector) Validate() error {
	switch d.Engine {
	case text.EngineLingua, text.EngineWhatlang:
	default:
		return fmt.Errorf("unknown detector engine: %q", d.Engine)
	}
	if d.MinConfidence < 0 || d.MinConfidence > 1 {
		return fmt.Errorf("min_confidence must be within [0, 1], got %v", d.MinConfidence)
	}
	if d.MinRelativeDistance < 0 || d.MinRelativeDistance > 1 {
		return fmt.Errorf("min_relative_distance must be within [0, 1], got %v", d.MinRelativeDistance)
	}
	if d.HintWeight < 0 {
		return fmt.Errorf("hint_weight must not be negative, got %v", d.HintWeight)
	}
	if d.MaxInputBytes < 0 {
		return fmt.Errorf("max_input_bytes must not be negative, got %d", d.MaxInputBytes)
	}
	return nil
}

// LinguaOptions converts the section into engine options
func (d Detector) LinguaOptions() text.LinguaOptions {
	return text.LinguaOptions{
		Languages:           d.Languages,
		Preload:             d.Preload,
		LowAccuracy:         d.LowAccuracy,
		MinConfidence:       d.MinConfidence,
		MinRelativeDistance: d.MinRelativeDistance,
		HintWeight:          d.HintWeight,
	}
}

// InvokeOptions converts the section into per-call options
func (d Detector) InvokeOptions() text.InvokeOptions {
	return text.InvokeOptions{
		IsPlainText:   d.PlainText,
		LanguageHints: d.LanguageHints,
		EncodingHint:  d.EncodingHint,
	}
}
