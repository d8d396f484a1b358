package diffstat

import (
	"strings"
	"unicode"

	"github.com/Sumatoshi-tech/diffloc/pkg/lang"
)

// Unified-diff markers. The +++ and --- path lines are metadata, not
// content.
const (
	fileHeaderMarker = "diff --git "
	newPathMarker    = "+++"
	oldPathMarker    = "---"
)

// headerMinTokens is the token count a file header needs to carry a
// new-side path ("diff --git a/old b/new").
const headerMinTokens = 4

// Parse scans unified-diff text and returns the accumulated counts.
// It is total: malformed headers clear the current-file context and the
// lines under them are dropped, never reported as an error.
func Parse(diff string) *Result {
	result := NewResult()
	currentFile := ""
	haveFile := false

	for line := range strings.Lines(diff) {
		line = strings.TrimRight(line, "\n")

		switch {
		case strings.HasPrefix(line, fileHeaderMarker):
			currentFile, haveFile = extractFilePath(line)
		case strings.HasPrefix(line, "+") && !strings.HasPrefix(line, newPathMarker):
			if haveFile {
				countLine(result, line[1:], currentFile, true)
			}
		case strings.HasPrefix(line, "-") && !strings.HasPrefix(line, oldPathMarker):
			if haveFile {
				countLine(result, line[1:], currentFile, false)
			}
		}
	}

	return result
}

// extractFilePath pulls the new-side path out of a "diff --git" header:
// the 4th whitespace-delimited token with any leading "b/" stripped.
// Headers with fewer tokens yield no path.
func extractFilePath(header string) (string, bool) {
	parts := strings.Fields(header)
	if len(parts) < headerMinTokens {
		return "", false
	}

	return strings.TrimPrefix(parts[headerMinTokens-1], "b/"), true
}

// countLine classifies one added or removed content line and bumps
// exactly one counter. Blank and no-alphanumeric lines are diff noise
// and count as nothing.
func countLine(result *Result, content, filePath string, added bool) {
	trimmed := strings.TrimSpace(content)
	if isNoise(trimmed) {
		return
	}

	language := lang.FromPath(filePath)
	test := IsTestPath(filePath)

	if language.Classify(trimmed) == lang.Comment {
		result.Comments.count(added, test)
		return
	}

	result.codeStats(language).count(added, test)
}

// isNoise reports whether a trimmed line is empty or carries no
// alphanumeric character (pure punctuation, braces, separators).
func isNoise(trimmed string) bool {
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}

	return true
}
