package text

import (
	"github.com/abadojack/whatlanggo"
)

// WhatlangDetector is an Engine backed by github.com/abadojack/whatlanggo.
// It has no candidate restriction and ignores hints.
type WhatlangDetector struct{}

func NewWhatlangDetector() *WhatlangDetector {
	return &WhatlangDetector{}
}

func (d *WhatlangDetector) Name() string {
	return EngineWhatlang
}

func (d *WhatlangDetector) Classify(text string, _ []string) Detection {
	if text == "" {
		return Detection{}
	}
	info := whatlanggo.Detect(text)
	// no script means no letters at all
	if info.Script == nil {
		return Detection{}
	}
	return Detection{
		Code:       info.Lang.Iso6391(),
		Confidence: info.Confidence,
		Reliable:   info.IsReliable(),
	}
}
