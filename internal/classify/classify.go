// Package classify decides whether a task or command line looks like a
// test run. Matching is a fixed vocabulary of test runners and build-tool
// test subcommands, not semantic parsing of tool output: false positives
// and false negatives are accepted tradeoffs.
package classify

import (
	"regexp"
	"strings"
)

// taskKeywords are matched as plain substrings against the lowercased
// task name, source and definition type.
var taskKeywords = []string{
	"test",
	"jest",
	"mocha",
	"vitest",
	"jasmine",
	"karma",
	"pytest",
	"tox",
	"rspec",
	"minitest",
	"phpunit",
	"cypress",
	"playwright",
}

// commandPatterns require word boundaries so short tokens do not match
// inside unrelated words ("testify", "attestation"). Runner idioms that
// span two words are matched as phrases.
var commandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`\btest\b`),
	regexp.MustCompile(`\btests\b`),
	regexp.MustCompile(`\bjest\b`),
	regexp.MustCompile(`\bmocha\b`),
	regexp.MustCompile(`\bvitest\b`),
	regexp.MustCompile(`\bjasmine\b`),
	regexp.MustCompile(`\bkarma\b`),
	regexp.MustCompile(`\bpytest\b`),
	regexp.MustCompile(`\btox\b`),
	regexp.MustCompile(`\brspec\b`),
	regexp.MustCompile(`\bphpunit\b`),
	regexp.MustCompile(`\bcypress\b`),
	regexp.MustCompile(`\bplaywright\b`),
	regexp.MustCompile(`\bgo test\b`),
	regexp.MustCompile(`\bcargo test\b`),
	regexp.MustCompile(`\bmvn test\b`),
	regexp.MustCompile(`\bgradle test\b`),
	regexp.MustCompile(`\bdotnet test\b`),
	regexp.MustCompile(`\bctest\b`),
}

// IsTestTask reports whether a task descriptor looks like a test run.
// All three fields are checked case-insensitively for any vocabulary
// keyword as a substring.
func IsTestTask(name, source, definitionType string) bool {
	for _, field := range []string{name, source, definitionType} {
		lower := strings.ToLower(field)
		if lower == "" {
			continue
		}
		for _, keyword := range taskKeywords {
			if strings.Contains(lower, keyword) {
				return true
			}
		}
	}
	return false
}

// IsTestCommand reports whether a raw command line looks like a test
// invocation.
func IsTestCommand(commandLine string) bool {
	lower := strings.ToLower(commandLine)
	for _, pattern := range commandPatterns {
		if pattern.MatchString(lower) {
			return true
		}
	}
	return false
}
