package highlighter

// Markdown is prose, not nested code, so its passes are plain
// overlays with no claimed-range bookkeeping. Overlaps (bold inside a
// header line, for instance) resolve in favor of the span that starts
// first during normalization.
func markdownPasses() []pass {
	return []pass{
		newPass(`(?m)^#{1,6}[^\n]*`, TokenKeyword),
		newPass(`\*\*[^*\n]+\*\*|__[^_\n]+__`, TokenType),
		newPass("`[^`\n]+`", TokenString),
		newPass(`\[[^\]\n]*\]\([^)\n]*\)`, TokenFunction),
	}
}
