package text

import (
	"slices"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
	"github.com/samber/lo"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// LanguageCode is a short, stable language identifier handed back to callers
type LanguageCode string

// Undetermined is returned whenever no supported language could be determined
const Undetermined LanguageCode = "un"

const undeterminedName = "Unknown"

// Result is what the boundary returns for one input
type Result struct {
	Code     LanguageCode `json:"code"`
	Reliable bool         `json:"reliable"`
}

type codeTable struct {
	codes  map[string]LanguageCode
	names  map[LanguageCode]string
	sorted []LanguageCode
}

var (
	tableOnce sync.Once
	table     *codeTable
)

// codeTableOf returns the closed code table, built from the engine's language list on first use
func codeTableOf() *codeTable {
	tableOnce.Do(func() {
		table = buildCodeTable(lingua.AllLanguages())
	})
	return table
}

func buildCodeTable(languages []lingua.Language) *codeTable {
	t := &codeTable{
		codes: make(map[string]LanguageCode, len(languages)),
		names: make(map[LanguageCode]string, len(languages)),
	}
	namer := display.English.Languages()
	for _, lang := range languages {
		iso := strings.ToLower(lang.IsoCode639_1().String())
		if len(iso) != 2 {
			continue
		}
		code := LanguageCode(iso)
		name := namer.Name(language.Make(iso))
		if name == "" {
			name = lang.String()
		}
		t.codes[iso] = code
		t.names[code] = name
	}
	t.sorted = lo.Keys(t.names)
	slices.Sort(t.sorted)
	return t
}

// MapDetection turns an engine detection into a code from the closed table.
// Unknown or unsupported identifiers map to Undetermined, never to an empty code.
func MapDetection(d Detection) LanguageCode {
	t := codeTableOf()
	if code, ok := t.codes[d.Code]; ok {
		return code
	}
	if code, ok := t.codes[strings.ToLower(d.Code)]; ok {
		return code
	}
	return Undetermined
}

// MapResult is MapDetection keeping the reliability signal
func MapResult(d Detection) Result {
	code := MapDetection(d)
	return Result{
		Code:     code,
		Reliable: d.Reliable && code != Undetermined,
	}
}

// LanguageName returns the English name of a code, "Unknown" for anything outside the table
func LanguageName(code LanguageCode) string {
	if name, ok := codeTableOf().names[code]; ok {
		return name
	}
	return undeterminedName
}

// IsSupported reports whether code is part of the closed table
func IsSupported(code LanguageCode) bool {
	_, ok := codeTableOf().names[code]
	return ok
}

// SupportedCodes lists every code the mapper can produce apart from Undetermined
func SupportedCodes() []LanguageCode {
	return slices.Clone(codeTableOf().sorted)
}
