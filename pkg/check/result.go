package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name    string   // e.g., "tool: make", "display"
	Status  Status   // OK, WARN, or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the check passed without warnings.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Fatal returns true if the check failed hard. Warnings are advisory:
// they are surfaced but never fatal on their own.
func (r Result) Fatal() bool {
	return r.Status == StatusFail
}
