// Package boundary is the single entry point for language identification.
//
// It composes input validation, engine invocation and code mapping, and guarantees a
// valid LanguageCode for every call. Nothing below it is allowed to fault the caller.
package boundary

import (
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/tsingjyujing/polyglot/config"
	"github.com/tsingjyujing/polyglot/text"
)

var logger = logrus.StandardLogger()

// Result is a language code plus whether the engine trusts it
type Result = text.Result

// Detector runs validate, invoke and map with a configuration fixed at construction
type Detector struct {
	invoker       *text.Invoker
	options       text.InvokeOptions
	maxInputBytes int
}

// NewEngine builds the engine named in the configuration
func NewEngine(cfg config.Detector) (text.Engine, error) {
	switch cfg.Engine {
	case text.EngineLingua:
		return text.NewLanguageDetector(cfg.LinguaOptions())
	case text.EngineWhatlang:
		return text.NewWhatlangDetector(), nil
	}
	return nil, fmt.Errorf("unknown detector engine: %q", cfg.Engine)
}

// NewDetector builds a detector with its own engine
func NewDetector(cfg config.Detector) (*Detector, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	engine, err := NewEngine(cfg)
	if err != nil {
		return nil, err
	}
	return NewDetectorWithEngine(engine, cfg), nil
}

// NewDetectorWithEngine wraps an existing engine
func NewDetectorWithEngine(engine text.Engine, cfg config.Detector) *Detector {
	return &Detector{
		invoker:       text.NewInvoker(engine),
		options:       cfg.InvokeOptions(),
		maxInputBytes: cfg.MaxInputBytes,
	}
}

// EngineName returns the name of the wrapped engine
func (d *Detector) EngineName() string {
	return d.invoker.Engine().Name()
}

// Detect classifies text given at its explicit length
func (d *Detector) Detect(input []byte) Result {
	return d.run(func() text.ValidatedInput {
		return text.Validate(input, d.maxInputBytes)
	})
}

// DetectString is Detect for Go strings
func (d *Detector) DetectString(s string) Result {
	return d.Detect([]byte(s))
}

// DetectTerminated classifies a NUL terminated buffer.
// A buffer without terminator is reported rather than read past.
func (d *Detector) DetectTerminated(buf []byte) (Result, error) {
	input, err := text.ValidateTerminated(buf, d.maxInputBytes)
	if err != nil {
		return Result{Code: text.Undetermined}, err
	}
	return d.run(func() text.ValidatedInput { return input }), nil
}

func (d *Detector) run(validate func() text.ValidatedInput) (result Result) {
	defer func() {
		if r := recover(); r != nil {
			logger.WithField("engine", d.EngineName()).
				WithField("panic", r).
				Error("language detection panicked, returning undetermined")
			result = Result{Code: text.Undetermined}
		}
	}()
	input := validate()
	if input.Truncated {
		logger.WithField("limit", d.maxInputBytes).Debug("input truncated before detection")
	}
	detection := d.invoker.Invoke(input, d.options)
	return text.MapResult(detection)
}

var (
	defaultOnce     sync.Once
	defaultDetector *Detector
	defaultErr      error
)

// Init builds the process wide detector from cfg. Only the first call, or first use
// of Default, has an effect; later calls return the outcome of that first one.
func Init(cfg config.Detector) error {
	defaultOnce.Do(func() {
		defaultDetector, defaultErr = NewDetector(cfg)
		if defaultErr != nil {
			logger.WithError(defaultErr).Error("failed to build detector, falling back to whatlang")
			defaultDetector = NewDetectorWithEngine(text.NewWhatlangDetector(), config.DefaultDetector())
		}
	})
	return defaultErr
}

// Default returns the process wide detector, building it with the default configuration on first use
func Default() *Detector {
	_ = Init(config.DefaultDetector())
	return defaultDetector
}

// DetectLanguage classifies text with the process wide detector.
// It never fails and never returns an empty code.
func DetectLanguage(input []byte) text.LanguageCode {
	return Default().Detect(input).Code
}

// DetectLanguageString is DetectLanguage for Go strings
func DetectLanguageString(s string) text.LanguageCode {
	return Default().DetectString(s).Code
}
