package text

import (
	"testing"
)

var sharedDetector *LanguageDetector

func newTestDetector(t testing.TB) *LanguageDetector {
	t.Helper()
	if sharedDetector != nil {
		return sharedDetector
	}
	detector, err := NewLanguageDetector(DefaultLinguaOptions())
	if err != nil {
		t.Fatalf("NewLanguageDetector() error = %v", err)
	}
	sharedDetector = detector
	return detector
}

func TestNewLanguageDetector(t *testing.T) {
	detector := newTestDetector(t)
	if detector == nil {
		t.Fatal("NewLanguageDetector() returned nil")
	}
	if detector.detector == nil {
		t.Error("LanguageDetector.detector is nil")
	}
	if detector.Name() != EngineLingua {
		t.Errorf("Name() = %s, want %s", detector.Name(), EngineLingua)
	}
}

func TestNewLanguageDetector_Subset(t *testing.T) {
	tests := []struct {
		name      string
		languages []string
		wantErr   bool
	}{
		{name: "two languages", languages: []string{"en", "fr"}},
		{name: "upper case codes", languages: []string{"EN", "DE", "ES"}},
		{name: "single language", languages: []string{"en"}, wantErr: true},
		{name: "duplicates collapse to one", languages: []string{"en", "en"}, wantErr: true},
		{name: "unknown code", languages: []string{"en", "xx"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			options := DefaultLinguaOptions()
			options.Languages = tt.languages
			_, err := NewLanguageDetector(options)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewLanguageDetector() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLanguageDetector_Classify(t *testing.T) {
	detector := newTestDetector(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "english", text: "The quick brown fox jumps over the lazy dog.", want: "en"},
		{name: "french", text: "Le rapide renard brun sautait par-dessus le chien paresseux.", want: "fr"},
		{name: "spanish", text: "para poner este importante proyecto en práctica", want: "es"},
		{name: "italian", text: "studio dell'uomo interiore? La scienza del cuore umano, che", want: "it"},
		{name: "german", text: "sagt Hühsam das war bei Über eine Annonce in einem Frankfurter der Töpfer ein.", want: "de"},
		{name: "dutch", text: "tegen de kabinetsplannen. Een speciaal in het leven geroepen Landelijk", want: "nl"},
		{name: "swedish", text: "Och så ska vi prova lite svenska, som också borde fungera utan problem.", want: "sv"},
		{name: "japanese", text: "私はガラスを食べられます。それは私を傷つけません。", want: "ja"},
		{name: "chinese", text: "我能吞下玻璃而不伤身体。", want: "zh"},
		{name: "korean", text: "나는 유리를 먹을 수 있어요. 그래도 아프지 않아요", want: "ko"},
		{name: "thai", text: "ฉันกินกระจกได้ แต่มันไม่ทำให้ฉันเจ็บ", want: "th"},
		{name: "longer english", text: "This is an English text for testing language detection.", want: "en"},
		{name: "longer japanese", text: "これは日本語のテキストです。言語検出機能をテストします。", want: "ja"},
		{name: "simplified chinese", text: "这是一段简体中文文本，用于测试语言检测功能。", want: "zh"},
		{name: "no letters", text: "1234 5678", want: ""},
		{name: "symbols", text: "!@#$%^&*()", want: ""},
		{name: "empty", text: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.Classify(tt.text, nil)
			if got.Code != tt.want {
				t.Errorf("Classify(%q) = %q (confidence %.2f), want %q", tt.text, got.Code, got.Confidence, tt.want)
			}
			if got.Confidence < 0 || got.Confidence > 1 {
				t.Errorf("Classify(%q) confidence %.2f out of range", tt.text, got.Confidence)
			}
		})
	}
}

func TestLanguageDetector_ClassifyUnknownIsNeverReliable(t *testing.T) {
	detector := newTestDetector(t)
	for _, text := range []string{"", "12345", "!@#$%^&*()"} {
		if got := detector.Classify(text, nil); got.Reliable {
			t.Errorf("Classify(%q) is reliable without a language", text)
		}
	}
}

func TestLanguageDetector_HintsBias(t *testing.T) {
	options := DefaultLinguaOptions()
	options.Languages = []string{"es", "pt"}
	detector, err := NewLanguageDetector(options)
	if err != nil {
		t.Fatalf("NewLanguageDetector() error = %v", err)
	}

	// a heavy enough weight settles any ambiguity between two close languages
	options.HintWeight = 1000
	biased, err := NewLanguageDetector(options)
	if err != nil {
		t.Fatalf("NewLanguageDetector() error = %v", err)
	}

	text := "o menino"
	unbiased := detector.Classify(text, nil)
	if unbiased.Code != "es" && unbiased.Code != "pt" {
		t.Fatalf("Classify(%q) = %q, want es or pt", text, unbiased.Code)
	}
	other := "es"
	if unbiased.Code == "es" {
		other = "pt"
	}
	if got := biased.Classify(text, []string{other}); got.Code != other {
		t.Errorf("Classify(%q) with hint %s = %q", text, other, got.Code)
	}
	// unknown hints change nothing
	if got := detector.Classify(text, []string{"xx"}); got.Code != unbiased.Code {
		t.Errorf("Classify(%q) with unknown hint = %q, want %q", text, got.Code, unbiased.Code)
	}
}

func TestLanguageDetector_ClassifySubset(t *testing.T) {
	options := DefaultLinguaOptions()
	options.Languages = []string{"zh", "ja", "en"}
	detector, err := NewLanguageDetector(options)
	if err != nil {
		t.Fatalf("NewLanguageDetector() error = %v", err)
	}

	supportedTexts := map[string]string{
		"zh": "这是中文",
		"ja": "これは日本語です",
		"en": "This is English",
	}

	for expected, text := range supportedTexts {
		t.Run(expected, func(t *testing.T) {
			got := detector.Classify(text, nil)
			if got.Code != expected {
				t.Errorf("Classify(%q) = %q, want %q", text, got.Code, expected)
			}
		})
	}
}

func BenchmarkLanguageDetector_Classify_English(b *testing.B) {
	detector := newTestDetector(b)
	text := "This is an English text for benchmark testing that contains sufficient information for language detection."

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.Classify(text, nil)
	}
}

func BenchmarkLanguageDetector_Classify_Japanese(b *testing.B) {
	detector := newTestDetector(b)
	text := "これはベンチマークテスト用の日本語テキストで、言語検出を行うための十分な情報が含まれています。"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		detector.Classify(text, nil)
	}
}
