// Detect language of a given text using github.com/pemistahl/lingua-go
package text

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pemistahl/lingua-go"
	"github.com/samber/lo"
)

const (
	EngineLingua   = "lingua"
	EngineWhatlang = "whatlang"
)

// Detection is the raw outcome of one engine call
type Detection struct {
	// Code is the engine's ISO 639-1 guess, empty when it has none
	Code       string
	Confidence float64
	Reliable   bool
}

// Engine is a statistical language detector treated as a black box.
// Implementations are read-only after construction and safe for concurrent use.
type Engine interface {
	Name() string
	// Classify never fails, "no language" is an empty Code
	Classify(text string, hints []string) Detection
}

// LinguaOptions configures the lingua detector
type LinguaOptions struct {
	// Languages restricts the candidates to these ISO 639-1 codes, all languages when empty
	Languages           []string
	Preload             bool
	LowAccuracy         bool
	MinConfidence       float64
	MinRelativeDistance float64
	// HintWeight multiplies the confidence of hinted languages before ranking
	HintWeight float64
}

// DefaultLinguaOptions returns the options used by the boundary
func DefaultLinguaOptions() LinguaOptions {
	return LinguaOptions{
		MinConfidence:       0.5,
		MinRelativeDistance: 0.1,
		HintWeight:          2.0,
	}
}

// LanguageDetector detects the language of a given text
type LanguageDetector struct {
	detector lingua.LanguageDetector
	codes    map[lingua.Language]string
	byCode   map[string]lingua.Language
	options  LinguaOptions
}

// NewLanguageDetector creates a lingua backed engine.
// lingua needs at least two candidate languages, a smaller subset is rejected.
func NewLanguageDetector(options LinguaOptions) (*LanguageDetector, error) {
	all := lingua.AllLanguages()
	codes := make(map[lingua.Language]string, len(all))
	byCode := make(map[string]lingua.Language, len(all))
	for _, lang := range all {
		iso := strings.ToLower(lang.IsoCode639_1().String())
		codes[lang] = iso
		byCode[iso] = lang
	}

	languages := all
	if len(options.Languages) > 0 {
		languages = make([]lingua.Language, 0, len(options.Languages))
		for _, code := range lo.Uniq(options.Languages) {
			lang, ok := byCode[strings.ToLower(code)]
			if !ok {
				return nil, fmt.Errorf("unsupported language: %s", code)
			}
			languages = append(languages, lang)
		}
		if len(languages) < 2 {
			return nil, fmt.Errorf("at least two languages are required, got %d", len(languages))
		}
	}

	builder := lingua.NewLanguageDetectorBuilder().FromLanguages(languages...)
	if options.Preload {
		builder = builder.WithPreloadedLanguageModels()
	}
	if options.LowAccuracy {
		builder = builder.WithLowAccuracyMode()
	}

	return &LanguageDetector{
		detector: builder.Build(),
		codes:    codes,
		byCode:   byCode,
		options:  options,
	}, nil
}

func (d *LanguageDetector) Name() string {
	return EngineLingua
}

type candidate struct {
	language lingua.Language
	value    float64
}

// Classify ranks lingua's confidence values, biased towards hinted languages.
// The guess is reliable when it is confident enough and far enough ahead of the runner-up.
func (d *LanguageDetector) Classify(text string, hints []string) Detection {
	if text == "" {
		return Detection{}
	}
	values := d.detector.ComputeLanguageConfidenceValues(text)
	if len(values) == 0 {
		return Detection{}
	}

	hinted := make(map[lingua.Language]bool, len(hints))
	for _, hint := range hints {
		if lang, ok := d.byCode[hint]; ok {
			hinted[lang] = true
		}
	}

	ranked := make([]candidate, 0, len(values))
	total := 0.0
	for _, cv := range values {
		value := cv.Value()
		if hinted[cv.Language()] && d.options.HintWeight > 0 {
			value *= d.options.HintWeight
		}
		ranked = append(ranked, candidate{language: cv.Language(), value: value})
		total += value
	}
	if total <= 0 {
		return Detection{}
	}
	slices.SortStableFunc(ranked, func(a, b candidate) int {
		switch {
		case a.value > b.value:
			return -1
		case a.value < b.value:
			return 1
		}
		return 0
	})

	top := ranked[0].value / total
	second := 0.0
	if len(ranked) > 1 {
		second = ranked[1].value / total
	}
	return Detection{
		Code:       d.codes[ranked[0].language],
		Confidence: top,
		Reliable:   top >= d.options.MinConfidence && top-second >= d.options.MinRelativeDistance,
	}
}
