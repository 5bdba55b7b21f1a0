package check

// Checker is implemented by all check types.
// Each check validates one aspect of the host environment and returns a
// Result. Checks never abort the run; the aggregator decides the verdict.
//
// Implementations:
//   - toolcheck.Check: executable presence and version constraints
//   - enginecheck.Check: container engine binary, version, daemon
//   - composecheck.Check: compose plugin or standalone binary
//   - displaycheck.Check: display-server address and access grant
//   - keycheck.Check: SSH key-pair presence
type Checker interface {
	Run() Result
}
