package langreg

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/yaklabco/syntree/pkg/syntree"
)

// Detect resolves the grammar for a file, trying the extension table
// first, then content signals: shebang, language-specific patterns,
// and finally the go-enry classifier. It returns the grammar, its
// canonical name, and whether resolution succeeded. Content may be
// nil, in which case only the path is consulted.
func Detect(path string, content []byte) (*syntree.Language, string, bool) {
	if lang, name, ok := ByPath(path); ok {
		return lang, name, true
	}

	if len(content) == 0 {
		return nil, "", false
	}

	// Shebangs are the most reliable signal for extensionless files.
	if detected, safe := enry.GetLanguageByShebang(content); safe {
		if lang, name, ok := byEnryName(detected); ok {
			return lang, name, true
		}
	}

	// Highly indicative patterns beat the statistical classifier.
	if name := detectByPattern(content); name != "" {
		if lang, ok := ByName(name); ok {
			return lang, name, true
		}
	}

	// Constrain the classifier to the grammars we can actually load.
	// The classifier ranks every candidate, so its safe flag never
	// fires with multiple candidates; the top-ranked one is a best
	// guess.
	candidates := make([]string, 0, len(entries))
	for _, e := range entries {
		candidates = append(candidates, e.enryName)
	}
	if detected, _ := enry.GetLanguageByClassifier(content, candidates); detected != "" {
		if lang, name, ok := byEnryName(detected); ok {
			return lang, name, true
		}
	}

	return nil, "", false
}

// detectByPattern checks for language-specific patterns among the
// bundled grammars.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	contentStr := string(content)

	if bytes.HasPrefix(trimmed, []byte("package ")) {
		return NameGo
	}

	if strings.Contains(contentStr, "def ") && strings.Contains(contentStr, "):") {
		return NamePython
	}
	if strings.Contains(contentStr, "__name__") || strings.Contains(contentStr, "__main__") {
		return NamePython
	}

	if (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`)) {
		return NameJSON
	}

	if strings.Contains(contentStr, "=>") ||
		strings.Contains(contentStr, "const ") ||
		strings.Contains(contentStr, "console.log") {
		return NameJavaScript
	}

	return ""
}
