package i18n

import (
	"testing"

	"golang.org/x/text/language"
)

func TestDefaultTagIsAmericanEnglish(t *testing.T) {
	t.Parallel()

	if got := DefaultTag(); got != language.AmericanEnglish {
		t.Fatalf("DefaultTag() = %v", got)
	}
}

func TestSupportedTagsReturnsCopy(t *testing.T) {
	t.Parallel()

	tags := SupportedTags()
	if len(tags) != 2 {
		t.Fatalf("SupportedTags() len = %d", len(tags))
	}
	tags[0] = language.Japanese
	if DefaultTag() != language.AmericanEnglish {
		t.Fatal("mutating the returned slice changed the default tag")
	}
}

func TestParseTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		value string
		want  language.Tag
		ok    bool
	}{
		{name: "exact english", value: "en-US", want: language.AmericanEnglish, ok: true},
		{name: "base english", value: "en", want: language.AmericanEnglish, ok: true},
		{name: "exact portuguese", value: "pt-BR", want: language.BrazilianPortuguese, ok: true},
		{name: "base portuguese", value: "pt", want: language.BrazilianPortuguese, ok: true},
		{name: "unsupported", value: "ja", ok: false},
		{name: "garbage", value: "!!", ok: false},
		{name: "blank", value: "  ", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseTag(tc.value)
			if ok != tc.ok {
				t.Fatalf("ParseTag(%q) ok = %v, want %v", tc.value, ok, tc.ok)
			}
			if ok && got != tc.want {
				t.Fatalf("ParseTag(%q) = %v, want %v", tc.value, got, tc.want)
			}
		})
	}
}

func TestMatchTagsPrefersFirstSupported(t *testing.T) {
	t.Parallel()

	got := MatchTags([]language.Tag{language.Japanese, language.BrazilianPortuguese})
	if got != language.BrazilianPortuguese {
		t.Fatalf("MatchTags = %v", got)
	}
}

func TestMatchTagsFallsBackToDefault(t *testing.T) {
	t.Parallel()

	if got := MatchTags(nil); got != language.AmericanEnglish {
		t.Fatalf("MatchTags(nil) = %v", got)
	}
	if got := MatchTags([]language.Tag{language.Japanese}); got != language.AmericanEnglish {
		t.Fatalf("MatchTags(ja) = %v", got)
	}
}
