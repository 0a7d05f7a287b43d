package highlighter

import (
	"reflect"
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"
)

var propLangs = []LangID{
	LangSwift, LangPython, LangJavaScript, LangJSON, LangMarkdown, LangPlain,
}

// Drawn inputs mix arbitrary text with source-shaped fragments so the
// passes actually fire, not just the plain fallback.
func sourceText() *rapid.Generator[string] {
	fragment := rapid.SampledFrom([]string{
		"var", "let", "func", "def", "return", "if", "else",
		"HelloWorld", "Int", "print", "count", "_tmp",
		"5", "3.14", "0",
		`"text"`, `"5 apples"`, "`tpl`", "'c'",
		"// comment", "# note", "/* block */",
		"@State", "#if", "@app.route",
		`{"k": 1}`, "true", "null",
		"# Title", "**bold**", "`code`", "[a](b)",
		"(", ")", ":", "=", "\n", "\t", " ", "é€",
	})
	return rapid.Custom(func(t *rapid.T) string {
		parts := rapid.SliceOfN(fragment, 0, 24).Draw(t, "parts")
		out := ""
		for _, p := range parts {
			out += p
		}
		return out + rapid.StringN(0, 8, 32).Draw(t, "tail")
	})
}

func TestClassifyCoversEveryRuneExactlyOnce(t *testing.T) {
	h := New()
	rapid.Check(t, func(t *rapid.T) {
		text := sourceText().Draw(t, "text")
		id := rapid.SampledFrom(propLangs).Draw(t, "lang")

		spans := h.Classify(text, id)
		runeLen := utf8.RuneCountInString(text)

		if text == "" {
			if len(spans) != 0 {
				t.Fatalf("empty text produced spans %#v", spans)
			}
			return
		}

		cursor := 0
		for i, span := range spans {
			if span.Start != cursor {
				t.Fatalf("span %d starts at %d, want %d (spans %#v)", i, span.Start, cursor, spans)
			}
			if span.End <= span.Start {
				t.Fatalf("span %d is empty or inverted: %#v", i, span)
			}
			cursor = span.End
		}
		if cursor != runeLen {
			t.Fatalf("spans cover %d runes, text has %d", cursor, runeLen)
		}
	})
}

func TestClassifyIsIdempotent(t *testing.T) {
	h := New()
	rapid.Check(t, func(t *rapid.T) {
		text := sourceText().Draw(t, "text")
		id := rapid.SampledFrom(propLangs).Draw(t, "lang")

		first := h.Classify(text, id)
		second := h.Classify(text, id)
		if !reflect.DeepEqual(first, second) {
			t.Fatalf("classify not idempotent:\nfirst  %#v\nsecond %#v", first, second)
		}
	})
}

func TestClassifyKeywordSpansAreExactSetMembers(t *testing.T) {
	h := New()
	sets := map[LangID]map[string]bool{
		LangSwift:      swiftKeywords,
		LangPython:     pythonKeywords,
		LangJavaScript: javascriptKeywords,
	}

	rapid.Check(t, func(t *rapid.T) {
		text := sourceText().Draw(t, "text")
		id := rapid.SampledFrom([]LangID{LangSwift, LangPython, LangJavaScript}).Draw(t, "lang")

		runes := []rune(text)
		for _, span := range h.Classify(text, id) {
			if span.Cat != TokenKeyword {
				continue
			}
			word := string(runes[span.Start:span.End])
			if !sets[id][word] {
				t.Fatalf("keyword span %q is not in the %s keyword set", word, id)
			}
		}
	})
}

func TestClassifyMergedSpansAlternateCategories(t *testing.T) {
	h := New()
	rapid.Check(t, func(t *rapid.T) {
		text := sourceText().Draw(t, "text")
		id := rapid.SampledFrom(propLangs).Draw(t, "lang")

		spans := h.Classify(text, id)
		for i := 1; i < len(spans); i++ {
			if spans[i].Cat == spans[i-1].Cat {
				t.Fatalf("adjacent spans %d and %d share category %v: %#v", i-1, i, spans[i].Cat, spans)
			}
		}
	})
}
