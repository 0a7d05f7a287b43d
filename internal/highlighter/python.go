package highlighter

var pythonKeywords = map[string]bool{
	"False": true, "None": true, "True": true, "and": true,
	"as": true, "assert": true, "async": true, "await": true,
	"break": true, "class": true, "continue": true, "def": true,
	"del": true, "elif": true, "else": true, "except": true,
	"finally": true, "for": true, "from": true, "global": true,
	"if": true, "import": true, "in": true, "is": true,
	"lambda": true, "nonlocal": true, "not": true, "or": true,
	"pass": true, "raise": true, "return": true, "try": true,
	"while": true, "with": true, "yield": true,
}

var pythonTypes = map[string]bool{
	"bool": true, "bytearray": true, "bytes": true, "complex": true,
	"dict": true, "float": true, "frozenset": true, "int": true,
	"list": true, "object": true, "set": true, "str": true,
	"tuple": true,
}

func pythonPasses() []pass {
	return []pass{
		newPass(`#[^\n]*`, TokenComment).claiming(),
		newPass(`(?s)""".*?"""|'''.*?'''`, TokenString).claiming(),
		newPass(`"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`, TokenString).claiming(),
		newPass(`@[A-Za-z_][A-Za-z0-9_.]*`, TokenPreproc),
		newPass(numberPattern, TokenNumber),
		newPass(identPattern, TokenPlain).
			withClassifier(identifierClassifier(pythonKeywords, pythonTypes)),
		newPass(callPattern, TokenFunction).submatch(1).
			withClassifier(callClassifier(pythonKeywords)),
	}
}
