package highlighter

var swiftKeywords = map[string]bool{
	"as": true, "associatedtype": true, "async": true, "await": true,
	"break": true, "case": true, "catch": true, "class": true,
	"continue": true, "default": true, "defer": true, "deinit": true,
	"do": true, "else": true, "enum": true, "extension": true,
	"fallthrough": true, "false": true, "fileprivate": true,
	"final": true, "for": true, "func": true, "guard": true,
	"if": true, "import": true, "in": true, "indirect": true,
	"init": true, "inout": true, "internal": true, "is": true,
	"lazy": true, "let": true, "mutating": true, "nil": true,
	"nonmutating": true, "open": true, "operator": true,
	"override": true, "private": true, "protocol": true,
	"public": true, "repeat": true, "required": true, "rethrows": true,
	"return": true, "self": true, "some": true, "static": true,
	"struct": true, "subscript": true, "super": true, "switch": true,
	"throw": true, "throws": true, "true": true, "try": true,
	"typealias": true, "unowned": true, "var": true, "weak": true,
	"where": true, "while": true,
}

var swiftTypes = map[string]bool{
	"Any": true, "AnyObject": true, "Array": true, "Bool": true,
	"Character": true, "Data": true, "Date": true, "Dictionary": true,
	"Double": true, "Error": true, "Float": true, "Int": true,
	"Int8": true, "Int16": true, "Int32": true, "Int64": true,
	"Optional": true, "Result": true, "Set": true, "String": true,
	"UInt": true, "URL": true, "Void": true,
}

func swiftPasses() []pass {
	return []pass{
		newPass(`(?s)/\*.*?\*/`, TokenComment).claiming(),
		newPass(`//[^\n]*`, TokenComment).claiming(),
		newPass(`(?s)""".*?"""`, TokenString).claiming(),
		newPass(`"(?:[^"\\\n]|\\.)*"`, TokenString).claiming(),
		newPass(`@[A-Za-z_][A-Za-z0-9_]*`, TokenPreproc),
		newPass(`#[A-Za-z_][A-Za-z0-9_]*`, TokenPreproc),
		newPass(numberPattern, TokenNumber),
		newPass(identPattern, TokenPlain).
			withClassifier(identifierClassifier(swiftKeywords, swiftTypes)),
		newPass(callPattern, TokenFunction).submatch(1).
			withClassifier(callClassifier(swiftKeywords)),
	}
}
