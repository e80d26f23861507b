package text

import (
	"strings"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"golang.org/x/text/language"
)

var logger = logrus.StandardLogger()

// InvokeOptions is the per-call engine configuration
type InvokeOptions struct {
	// IsPlainText treats the input as prose, otherwise as HTML markup
	IsPlainText bool
	// LanguageHints are BCP 47 tags biasing the guess, e.g. "en" or "pt-BR"
	LanguageHints []string
	// EncodingHint is passed along for engines that understand it
	EncodingHint string
}

// DefaultInvokeOptions returns the fixed configuration of the boundary
func DefaultInvokeOptions() InvokeOptions {
	return InvokeOptions{IsPlainText: true}
}

// Invoker runs an Engine over validated input
type Invoker struct {
	engine Engine
}

func NewInvoker(engine Engine) *Invoker {
	return &Invoker{engine: engine}
}

// Engine returns the wrapped engine
func (i *Invoker) Engine() Engine {
	return i.engine
}

// Invoke classifies the input. Low or absent confidence is a normal outcome, not an error.
func (i *Invoker) Invoke(in ValidatedInput, options InvokeOptions) Detection {
	if in.IsEmpty() {
		return Detection{}
	}
	text := in.Text
	if !options.IsPlainText {
		text = ExtractText(text)
		if text == "" {
			return Detection{}
		}
	}
	if options.EncodingHint != "" {
		logger.WithField("encoding", options.EncodingHint).
			WithField("engine", i.engine.Name()).
			Debug("encoding hint is not used by the engine")
	}
	return i.engine.Classify(text, CanonicalHints(options.LanguageHints))
}

// CanonicalHints reduces BCP 47 tags to lowercase base language codes, dropping unparseable ones
func CanonicalHints(hints []string) []string {
	if len(hints) == 0 {
		return nil
	}
	canonical := lo.FilterMap(hints, func(hint string, _ int) (string, bool) {
		tag, err := language.Parse(strings.TrimSpace(hint))
		if err != nil {
			logger.WithError(err).WithField("hint", hint).Debug("dropping language hint")
			return "", false
		}
		base, confidence := tag.Base()
		if confidence == language.No {
			return "", false
		}
		return base.String(), true
	})
	return lo.Uniq(canonical)
}
