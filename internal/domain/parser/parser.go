// Package parser splits raw commit messages into their conventional-commit
// parts.
package parser

import (
	"regexp"
	"strings"

	"github.com/openkraft/commitkraft/internal/domain"
)

var (
	headerPattern  = regexp.MustCompile(`^(\w*)(?:\(([^()\r\n]*)\))?(!)?: (.*)$`)
	trailerPattern = regexp.MustCompile(`^(BREAKING[ -]CHANGE|[\w-]+)(: | #)(.*)$`)
)

// Parse builds a ParsedMessage from raw. It fails only when raw is empty or
// its first line is blank.
func Parse(raw string) (*domain.ParsedMessage, error) {
	if raw == "" {
		return nil, &domain.MalformedMessageError{Reason: "message is empty"}
	}

	lines := strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n")
	header := lines[0]
	if isBlank(header) {
		return nil, &domain.MalformedMessageError{Reason: "no header line"}
	}

	msg := &domain.ParsedMessage{RawHeader: header}
	if !parseHeader(msg, header) {
		parseHeader(msg, strings.TrimSpace(header))
	}

	rest := trimTrailingBlank(lines[1:])
	if len(rest) == 0 {
		return msg, nil
	}

	start := footerStart(rest)
	bodyLines, footerLines := rest[:start], rest[start:]

	msg.RawBody = strings.Join(bodyLines, "\n")
	if body := strings.Join(trimBlank(bodyLines), "\n"); body != "" {
		msg.Body = &body
		msg.BodyLeadingBlank = isBlank(rest[0])
	}

	if len(footerLines) > 0 {
		footer := strings.Join(footerLines, "\n")
		msg.RawFooter = footer
		msg.Footer = &footer
		msg.FooterLeadingBlank = start > 0 && isBlank(rest[start-1])
		msg.Trailers = parseTrailers(footerLines)
	}

	for _, t := range msg.Trailers {
		if isBreakingToken(t.Token) {
			msg.IsBreaking = true
		}
	}

	return msg, nil
}

// parseHeader fills the header fields and reports whether header matched.
func parseHeader(msg *domain.ParsedMessage, header string) bool {
	m := headerPattern.FindStringSubmatchIndex(header)
	if m == nil {
		return false
	}

	typ := header[m[2]:m[3]]
	msg.Type = &typ
	if m[4] >= 0 {
		scope := header[m[4]:m[5]]
		msg.Scope = &scope
	}
	msg.IsBreaking = m[6] >= 0
	msg.Subject = header[m[8]:m[9]]
	return true
}

// footerStart returns the index of the first line of the footer block, or
// len(lines) when there is none. A footer starts at a trailer line; every
// later line must be blank, another trailer, or a continuation directly
// below a non-blank line.
func footerStart(lines []string) int {
	for i, line := range lines {
		if trailerPattern.MatchString(line) && footerContinues(lines, i) {
			return i
		}
	}
	return len(lines)
}

func footerContinues(lines []string, start int) bool {
	for j := start + 1; j < len(lines); j++ {
		if isBlank(lines[j]) || trailerPattern.MatchString(lines[j]) {
			continue
		}
		if isBlank(lines[j-1]) {
			return false
		}
	}
	return true
}

func parseTrailers(lines []string) []domain.Trailer {
	var trailers []domain.Trailer
	for _, line := range lines {
		if m := trailerPattern.FindStringSubmatch(line); m != nil {
			trailers = append(trailers, domain.Trailer{Token: m[1], Separator: m[2], Value: m[3]})
			continue
		}
		if isBlank(line) || len(trailers) == 0 {
			continue
		}
		last := &trailers[len(trailers)-1]
		last.Value += "\n" + line
	}
	return trailers
}

func isBreakingToken(token string) bool {
	return token == "BREAKING CHANGE" || token == "BREAKING-CHANGE"
}

func isBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

func trimTrailingBlank(lines []string) []string {
	end := len(lines)
	for end > 0 && isBlank(lines[end-1]) {
		end--
	}
	return lines[:end]
}

func trimBlank(lines []string) []string {
	start := 0
	for start < len(lines) && isBlank(lines[start]) {
		start++
	}
	return trimTrailingBlank(lines[start:])
}
