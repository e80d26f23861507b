package cmd

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tsingjyujing/polyglot/boundary"
	"github.com/tsingjyujing/polyglot/config"
	"github.com/tsingjyujing/polyglot/text"
)

type constantEngine struct {
	detection text.Detection
}

func (e constantEngine) Name() string { return "constant" }

func (e constantEngine) Classify(string, []string) text.Detection { return e.detection }

func TestPolyglotMCP_DetectLanguage(t *testing.T) {
	tests := []struct {
		name      string
		detection text.Detection
		input     string
		expected  DetectOutput
	}{
		{
			name:      "reliable",
			detection: text.Detection{Code: "de", Confidence: 0.9, Reliable: true},
			input:     "Guten Morgen",
			expected:  DetectOutput{Code: "de", Name: "German", Reliable: true},
		},
		{
			name:      "empty text",
			detection: text.Detection{Code: "de", Reliable: true},
			input:     "",
			expected:  DetectOutput{Code: "un", Name: "Unknown"},
		},
		{
			name:      "engine without answer",
			detection: text.Detection{},
			input:     "1234",
			expected:  DetectOutput{Code: "un", Name: "Unknown"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := boundary.NewDetectorWithEngine(constantEngine{detection: tt.detection}, config.DefaultDetector())
			p := PolyglotMCP{detector: detector}
			result, output, err := p.DetectLanguage(context.Background(), nil, DetectInput{Text: tt.input})
			require.NoError(t, err)
			assert.Nil(t, result)
			assert.Equal(t, tt.expected, output)
		})
	}
}

func TestPolyglotMCP_ListLanguages(t *testing.T) {
	p := PolyglotMCP{}
	_, output, err := p.ListLanguages(context.Background(), nil, ListLanguagesInput{})
	require.NoError(t, err)
	assert.Len(t, output.Languages, len(text.SupportedCodes()))
	assert.Contains(t, output.Languages, "en")
	assert.NotContains(t, output.Languages, "un")
}

func TestNewMcpServer(t *testing.T) {
	detector := boundary.NewDetectorWithEngine(constantEngine{}, config.DefaultDetector())
	assert.NotNil(t, newMcpServer(detector, "test"))
}
