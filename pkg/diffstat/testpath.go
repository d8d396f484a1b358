package diffstat

import "strings"

// Filename-stem suffixes that mark a file as test code.
var testStemSuffixes = []string{"_test", "_tests", "-test", "-tests"}

// IsTestPath reports whether a slash-separated path belongs to a test
// scope: any path component equal to "test" or "tests", or a filename
// stem ending with a test suffix. Matching is case-insensitive. Pure
// string check, no filesystem access.
func IsTestPath(filePath string) bool {
	components := strings.Split(filePath, "/")

	for _, component := range components {
		lower := strings.ToLower(component)
		if lower == "test" || lower == "tests" {
			return true
		}
	}

	stem := components[len(components)-1]
	if idx := strings.LastIndexByte(stem, '.'); idx > 0 {
		stem = stem[:idx]
	}

	lower := strings.ToLower(stem)
	for _, suffix := range testStemSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}

	return false
}
