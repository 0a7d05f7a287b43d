package lang

import (
	"path/filepath"
	"strings"
)

type ID string

const (
	Plain      ID = "plain"
	Swift      ID = "swift"
	Python     ID = "python"
	JavaScript ID = "javascript"
	JSON       ID = "json"
	Markdown   ID = "markdown"
	HTML       ID = "html"
	CSS        ID = "css"
)

var extMap = map[string]ID{
	".swift":    Swift,
	".py":       Python,
	".pyw":      Python,
	".js":       JavaScript,
	".jsx":      JavaScript,
	".mjs":      JavaScript,
	".cjs":      JavaScript,
	".ts":       JavaScript,
	".json":     JSON,
	".jsonc":    JSON,
	".json5":    JSON,
	".md":       Markdown,
	".markdown": Markdown,
	".html":     HTML,
	".htm":      HTML,
	".css":      CSS,

	".txt":  Plain,
	".log":  Plain,
	".ini":  Plain,
	".conf": Plain,
	".yml":  Plain,
	".yaml": Plain,
	".toml": Plain,
}

var fileMap = map[string]ID{
	"Package.swift":     Swift,
	"package.json":      JSON,
	"package-lock.json": JSON,
	"tsconfig.json":     JSON,
	"README":            Markdown,
	".gitignore":        Plain,
	".editorconfig":     Plain,
	"Makefile":          Plain,
	"Dockerfile":        Plain,
}

func Detect(path string) ID {
	base := filepath.Base(path)
	if id, ok := fileMap[base]; ok {
		return id
	}
	ext := strings.ToLower(filepath.Ext(base))
	if id, ok := extMap[ext]; ok {
		return id
	}
	return Plain
}

func DetectWithShebang(path string, firstLine string) ID {
	if id := Detect(path); id != Plain {
		return id
	}

	if !strings.HasPrefix(firstLine, "#!") {
		return Plain
	}
	lower := strings.ToLower(firstLine)
	switch {
	case strings.Contains(lower, "python"):
		return Python
	case strings.Contains(lower, "node"):
		return JavaScript
	case strings.Contains(lower, "swift"):
		return Swift
	default:
		return Plain
	}
}

// Parse maps a user-supplied language name (a -lang flag value) to an
// ID, tolerating common aliases. The second result reports whether
// the name was recognized.
func Parse(v string) (ID, bool) {
	switch strings.TrimSpace(strings.ToLower(v)) {
	case "swift":
		return Swift, true
	case "python", "py":
		return Python, true
	case "javascript", "js", "typescript", "ts":
		return JavaScript, true
	case "json":
		return JSON, true
	case "markdown", "md":
		return Markdown, true
	case "html":
		return HTML, true
	case "css":
		return CSS, true
	case "", "plain", "text", "none":
		return Plain, true
	default:
		return Plain, false
	}
}
