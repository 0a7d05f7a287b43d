package readfile

import (
	"os"
	"strings"
)

// ReadTextNormalized loads a file as a single string with CRLF
// sequences folded to LF, so rune offsets from the classifier line up
// with what the editor buffer holds.
func ReadTextNormalized(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}

func ReadLinesNormalized(path string) ([]string, error) {
	text, err := ReadTextNormalized(path)
	if err != nil {
		return nil, err
	}
	return strings.Split(text, "\n"), nil
}

// WriteText persists the buffer with LF newlines.
func WriteText(path string, text string) error {
	return os.WriteFile(path, []byte(text), 0o644)
}
