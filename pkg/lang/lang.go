// Package lang classifies filenames into language tags and lines into
// code or comment, using fixed lookup tables.
package lang

import (
	"path"
	"strings"
)

// Language is a tag derived from a filename. It is stateless and
// immutable once computed.
type Language int

// Recognized languages. Unknown covers everything else.
const (
	Unknown Language = iota
	Rust
	CCpp
	Go
	Python
	JavaScript
	TypeScript
	Java
	CMake
	Shell
	Ruby
	Markdown
	Text
	Dotfile
)

// LineKind is the classification of a single content line.
type LineKind int

const (
	// Code is any line that does not start with a comment prefix.
	Code LineKind = iota
	// Comment is a line starting with one of the language's comment prefixes.
	Comment
)

// byExtension maps a lower-cased final extension to a Language.
var byExtension = map[string]Language{
	"rs":       Rust,
	"c":        CCpp,
	"h":        CCpp,
	"cpp":      CCpp,
	"cc":       CCpp,
	"cxx":      CCpp,
	"hpp":      CCpp,
	"hxx":      CCpp,
	"go":       Go,
	"py":       Python,
	"js":       JavaScript,
	"jsx":      JavaScript,
	"ts":       TypeScript,
	"tsx":      TypeScript,
	"java":     Java,
	"cmake":    CMake,
	"sh":       Shell,
	"bash":     Shell,
	"rb":       Ruby,
	"md":       Markdown,
	"markdown": Markdown,
	"txt":      Text,
}

var (
	slashPrefixes = []string{"//"}
	hashPrefixes  = []string{"#"}
)

// FromFilename classifies a bare filename (no directory part).
// Rules, in priority order: the special name CMakeLists.txt, dotfiles
// (leading dot, no further dot), then the extension table. Names with
// no extension and unmatched extensions yield Unknown. Total: never
// fails.
func FromFilename(filename string) Language {
	if strings.EqualFold(filename, "cmakelists.txt") {
		return CMake
	}

	// Dotfile: starts with '.' and has no extension of its own.
	if strings.HasPrefix(filename, ".") && !strings.Contains(filename[1:], ".") {
		return Dotfile
	}

	idx := strings.LastIndexByte(filename, '.')
	if idx < 0 {
		return Unknown
	}

	if l, ok := byExtension[strings.ToLower(filename[idx+1:])]; ok {
		return l
	}

	return Unknown
}

// FromPath classifies the basename of a slash-separated path.
func FromPath(filePath string) Language {
	name := path.Base(filePath)
	if name == "." || name == "/" {
		return Unknown
	}

	return FromFilename(name)
}

// CommentPrefixes returns the ordered comment-prefix set owned by the
// language. Markdown and Text own none, so every line is code.
func (l Language) CommentPrefixes() []string {
	switch l {
	case Rust, CCpp, Go, JavaScript, TypeScript, Java, Unknown:
		return slashPrefixes
	case Python, CMake, Shell, Ruby, Dotfile:
		return hashPrefixes
	case Markdown, Text:
		return nil
	}

	return nil
}

// Classify decides Code vs. Comment for a pre-trimmed line. Only
// whole-line prefixes count: code followed by a trailing comment on the
// same line is still code.
func (l Language) Classify(trimmed string) LineKind {
	for _, prefix := range l.CommentPrefixes() {
		if strings.HasPrefix(trimmed, prefix) {
			return Comment
		}
	}

	return Code
}

// String returns the display name used in reports.
func (l Language) String() string {
	switch l {
	case Rust:
		return "Rust"
	case CCpp:
		return "C/C++"
	case Go:
		return "Go"
	case Python:
		return "Python"
	case JavaScript:
		return "JavaScript"
	case TypeScript:
		return "TypeScript"
	case Java:
		return "Java"
	case CMake:
		return "CMake"
	case Shell:
		return "Shell"
	case Ruby:
		return "Ruby"
	case Markdown:
		return "Markdown"
	case Text:
		return "Text"
	case Dotfile:
		return "Dotfiles"
	case Unknown:
		return "Unknown"
	}

	return "Unknown"
}
