package highlighter

import (
	"unicode"
	"unicode/utf8"
)

func buildPassTable() map[LangID][]pass {
	return map[LangID][]pass{
		LangSwift:      swiftPasses(),
		LangPython:     pythonPasses(),
		LangJavaScript: javascriptPasses(),
		LangJSON:       jsonPasses(),
		LangMarkdown:   markdownPasses(),
		// HTML and CSS buffers are edited for the live preview but
		// carry no dedicated pass set yet; they render plain.
		LangHTML:  nil,
		LangCSS:   nil,
		LangPlain: nil,
	}
}

const (
	identPattern  = `\b[A-Za-z_][A-Za-z0-9_]*\b`
	callPattern   = `\b([a-z_][A-Za-z0-9_]*)\s*\(`
	numberPattern = `\b\d+(?:\.\d+)?\b`
)

// identifierClassifier resolves a matched word against the language's
// keyword and type tables. Keyword wins on exact membership only;
// types match by table membership or the capitalized-word heuristic
// (first rune uppercase, more than one rune). Anything else is left
// for later passes.
func identifierClassifier(keywords map[string]bool, types map[string]bool) func(string) TokenCategory {
	return func(word string) TokenCategory {
		if keywords[word] {
			return TokenKeyword
		}
		if types[word] {
			return TokenType
		}
		first, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(first) && utf8.RuneCountInString(word) > 1 {
			return TokenType
		}
		return TokenPlain
	}
}

// callClassifier marks a lowercase-leading identifier followed by an
// opening parenthesis as a function name, unless the word is
// reserved.
func callClassifier(keywords map[string]bool) func(string) TokenCategory {
	return func(word string) TokenCategory {
		if keywords[word] {
			return TokenPlain
		}
		return TokenFunction
	}
}
