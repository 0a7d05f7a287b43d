package highlighter

import (
	"quill/internal/lang"
)

type LangID = lang.ID

const (
	LangPlain      LangID = lang.Plain
	LangSwift      LangID = lang.Swift
	LangPython     LangID = lang.Python
	LangJavaScript LangID = lang.JavaScript
	LangJSON       LangID = lang.JSON
	LangMarkdown   LangID = lang.Markdown
	LangHTML       LangID = lang.HTML
	LangCSS        LangID = lang.CSS
)

type TokenCategory int

const (
	TokenPlain TokenCategory = iota
	TokenKeyword
	TokenType
	TokenFunction
	TokenString
	TokenNumber
	TokenComment
	TokenProperty
	TokenPreproc
)

// Span is a classified run of text. Start and End are zero-based rune
// offsets into the classified text, half-open.
type Span struct {
	Start int
	End   int
	Cat   TokenCategory
}

// Highlighter classifies source text into token spans with one
// regex pass per rule. It holds only the per-language pass tables,
// built once; Classify is a pure function of its arguments.
type Highlighter struct {
	passes map[LangID][]pass
}

func New() *Highlighter {
	return &Highlighter{passes: buildPassTable()}
}

// Classify runs the language's pass sequence over text and returns
// normalized spans covering every rune exactly once. Empty text
// returns nil. A language without a pass set (plain, or any unknown
// ID) yields a single plain span.
func (h *Highlighter) Classify(text string, id LangID) []Span {
	if text == "" {
		return nil
	}

	passes, ok := h.passes[id]
	if !ok || len(passes) == 0 {
		return plainSpans(text)
	}

	raw := runPasses(text, passes)
	if len(raw) == 0 {
		return plainSpans(text)
	}
	return buildMergedSpans(text, raw)
}

// Languages reports the IDs with a dedicated pass set, useful for
// callers that present a language picker.
func (h *Highlighter) Languages() []LangID {
	out := make([]LangID, 0, len(h.passes))
	for id, passes := range h.passes {
		if len(passes) > 0 {
			out = append(out, id)
		}
	}
	return out
}
