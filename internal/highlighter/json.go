package highlighter

// JSON runs its own small pass set instead of the shared identifier
// machinery: quoted text left of a colon is a key, quoted text right
// of a colon is a value, and the only bare words are the three
// literals. Key and value passes claim their ranges so digits inside
// quotes never pick up the number role.
func jsonPasses() []pass {
	return []pass{
		newPass(`("(?:[^"\\\n]|\\.)*")\s*:`, TokenProperty).submatch(1).claiming(),
		newPass(`:\s*("(?:[^"\\\n]|\\.)*")`, TokenString).submatch(1).claiming(),
		newPass(`:\s*(-?\d+(?:\.\d+)?)`, TokenNumber).submatch(1),
		newPass(numberPattern, TokenNumber),
		newPass(`\b(?:true|false|null)\b`, TokenKeyword),
	}
}
