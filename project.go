package main

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// ProjectFile holds the project metadata next to the build files.
const ProjectFile = ".project"

// DefaultProjectConfig returns the fixed metadata used when no
// .project file exists. Exactly these five keys, nothing merged.
func DefaultProjectConfig() map[string]string {
	return map[string]string{
		"PROJECT_NAME":        "cpp-template",
		"PROJECT_VERSION":     "1.0.0",
		"PROJECT_DESCRIPTION": "Modern C++ project template",
		"PROJECT_URL":         "https://github.com/yourusername/cpp-template",
		"PROJECT_LICENSE":     "MIT",
	}
}

// LoadProjectConfig reads key=value pairs from path. Callers decide
// what a missing file means; see loadProjectOrDefault.
func LoadProjectConfig(path string) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return ParseProjectConfig(f), nil
}

// ParseProjectConfig parses key=value lines. Blank lines and lines
// starting with # are skipped, one layer of surrounding quotes is
// stripped from values. Lines without = are ignored.
func ParseProjectConfig(r io.Reader) map[string]string {
	config := make(map[string]string)

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}

		config[strings.TrimSpace(key)] = stripQuotes(strings.TrimSpace(value))
	}

	return config
}

// stripQuotes removes one layer of matching single or double quotes.
func stripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
