package domain

import (
	"regexp"
	"strings"
)

// defaultIgnores match messages written by tools rather than people.
var defaultIgnores = []*regexp.Regexp{
	regexp.MustCompile(`^(Merge pull request|Merge (.*?) into (.*?)|Merge branch (.*?))`),
	regexp.MustCompile(`^Merge tag (.*?)`),
	regexp.MustCompile(`^(R|r)evert (.*)`),
	regexp.MustCompile(`^(amend|fixup|squash)!`),
	regexp.MustCompile(`^(Merged (.*?)(in|into) (.*)|Merged PR (.*): (.*))`),
	regexp.MustCompile(`^Merge remote-tracking branch(\s*)(.*)`),
	regexp.MustCompile(`^Automatic merge(.*)`),
	regexp.MustCompile(`^Auto-merged (.*?) into (.*)`),
}

// IsIgnored reports whether raw should skip validation. The header is
// matched against the built-in patterns when useDefaults is set, then
// against extra.
func IsIgnored(raw string, useDefaults bool, extra []*regexp.Regexp) bool {
	header, _, _ := strings.Cut(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	if useDefaults {
		for _, re := range defaultIgnores {
			if re.MatchString(header) {
				return true
			}
		}
	}
	for _, re := range extra {
		if re.MatchString(raw) {
			return true
		}
	}
	return false
}
