package highlighter

import "quill/internal/lang"

func DetectLanguage(path string) LangID {
	return lang.Detect(path)
}

func DetectLanguageWithShebang(path string, firstLine string) LangID {
	return lang.DetectWithShebang(path, firstLine)
}
