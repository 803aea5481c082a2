package domain

// Status is the aggregate outcome of a validation run.
type Status string

const (
	StatusPass Status = "pass"
	StatusWarn Status = "warn"
	StatusFail Status = "fail"
)

// RuleResult is one rule's verdict on one message.
type RuleResult struct {
	Name     string   `json:"name"`
	Severity Severity `json:"severity"`
	Valid    bool     `json:"valid"`
	Message  string   `json:"message,omitempty"`
}

// ValidationReport aggregates every RuleResult of one validation run.
type ValidationReport struct {
	Status       Status       `json:"status"`
	Results      []RuleResult `json:"results"`
	ErrorCount   int          `json:"error_count"`
	WarningCount int          `json:"warning_count"`
	Ignored      bool         `json:"ignored,omitempty"`
}

// BuildReport derives the aggregate status from results: fail if any error
// fails, warn if only warnings fail, pass otherwise. The input is copied.
func BuildReport(results []RuleResult) ValidationReport {
	report := ValidationReport{
		Status:  StatusPass,
		Results: make([]RuleResult, len(results)),
	}
	copy(report.Results, results)

	for _, r := range results {
		if r.Valid {
			continue
		}
		switch r.Severity {
		case SeverityError:
			report.ErrorCount++
		case SeverityWarning:
			report.WarningCount++
		}
	}

	switch {
	case report.ErrorCount > 0:
		report.Status = StatusFail
	case report.WarningCount > 0:
		report.Status = StatusWarn
	}
	return report
}

// IgnoredReport is the report of a message that matched an ignore pattern.
func IgnoredReport() ValidationReport {
	return ValidationReport{Status: StatusPass, Results: []RuleResult{}, Ignored: true}
}

// Failures returns the failing results in evaluation order.
func (r ValidationReport) Failures() []RuleResult {
	var out []RuleResult
	for _, res := range r.Results {
		if !res.Valid {
			out = append(out, res)
		}
	}
	return out
}

// Passed reports whether the run did not fail. With strict set, warnings
// count as failures too.
func (r ValidationReport) Passed(strict bool) bool {
	switch r.Status {
	case StatusFail:
		return false
	case StatusWarn:
		return !strict
	default:
		return true
	}
}

// CommitReport pairs a commit with the outcome of validating its message.
// Error is set instead of Report when the message could not be parsed.
type CommitReport struct {
	Commit Commit            `json:"commit"`
	Report *ValidationReport `json:"report,omitempty"`
	Error  string            `json:"error,omitempty"`
}

// Passed reports whether the commit's message did not fail.
func (c CommitReport) Passed(strict bool) bool {
	return c.Report != nil && c.Report.Passed(strict)
}
