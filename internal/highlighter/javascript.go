package highlighter

var javascriptKeywords = map[string]bool{
	"async": true, "await": true, "break": true, "case": true,
	"catch": true, "class": true, "const": true, "continue": true,
	"debugger": true, "default": true, "delete": true, "do": true,
	"else": true, "export": true, "extends": true, "false": true,
	"finally": true, "for": true, "from": true, "function": true,
	"get": true, "if": true, "import": true, "in": true,
	"instanceof": true, "let": true, "new": true, "null": true,
	"of": true, "return": true, "set": true, "static": true,
	"super": true, "switch": true, "this": true, "throw": true,
	"true": true, "try": true, "typeof": true, "undefined": true,
	"var": true, "void": true, "while": true, "with": true,
	"yield": true,
}

var javascriptTypes = map[string]bool{
	"Array": true, "Boolean": true, "Date": true, "Error": true,
	"JSON": true, "Map": true, "Math": true, "Number": true,
	"Object": true, "Promise": true, "RegExp": true, "Set": true,
	"String": true, "Symbol": true, "WeakMap": true, "WeakSet": true,
}

func javascriptPasses() []pass {
	return []pass{
		newPass(`(?s)/\*.*?\*/`, TokenComment).claiming(),
		newPass(`//[^\n]*`, TokenComment).claiming(),
		newPass("(?s)`(?:[^`\\\\]|\\\\.)*`", TokenString).claiming(),
		newPass(`"(?:[^"\\\n]|\\.)*"|'(?:[^'\\\n]|\\.)*'`, TokenString).claiming(),
		newPass(numberPattern, TokenNumber),
		newPass(identPattern, TokenPlain).
			withClassifier(identifierClassifier(javascriptKeywords, javascriptTypes)),
		newPass(callPattern, TokenFunction).submatch(1).
			withClassifier(callClassifier(javascriptKeywords)),
	}
}
