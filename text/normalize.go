package text

import (
	"strings"

	"github.com/samber/lo"
	"golang.org/x/text/unicode/norm"
)

type Normalizer interface {
	Normalize(text string) string
}

// SocialNormalizer prepares social media posts for detection.
// It performs the following normalization steps:
// 1. Unicode NFKC normalization
// 2. Removal of words starting with one of the configured prefixes (mentions, links)
type SocialNormalizer struct {
	prefixes []string
}

// NewSocialNormalizer creates a normalizer dropping @mentions and http(s) links
func NewSocialNormalizer() *SocialNormalizer {
	return &SocialNormalizer{prefixes: []string{"@", "http"}}
}

func (n *SocialNormalizer) Normalize(text string) string {
	// 1. Unicode NFKC
	s := norm.NFKC.String(text)
	// 2. mentions and links skew detection
	words := lo.Reject(strings.Fields(s), func(word string, _ int) bool {
		return hasAnyPrefix(word, n.prefixes)
	})
	return strings.Join(words, " ")
}

func hasAnyPrefix(word string, prefixes []string) bool {
	return lo.SomeBy(prefixes, func(prefix string) bool {
		return strings.HasPrefix(word, prefix)
	})
}
