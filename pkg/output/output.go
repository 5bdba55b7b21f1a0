package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/denvtool/denv/pkg/check"
	"github.com/denvtool/denv/pkg/doctor"
)

var (
	green  = "\033[32m"
	yellow = "\033[33m"
	red    = "\033[31m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, yellow, red, dim, reset = "", "", "", "", ""
	}
}

// PrintResult outputs a check result with a colored status tag.
// Details are indented to align under the tag.
func PrintResult(r check.Result) {
	var tag string
	var indent string
	switch r.Status {
	case check.StatusOK:
		tag = green + "[OK]" + reset
		indent = "     " // len("[OK] ")
	case check.StatusWarn:
		tag = yellow + "[WARN]" + reset
		indent = "       " // len("[WARN] ")
	default:
		tag = red + "[FAIL]" + reset
		indent = "       " // len("[FAIL] ")
	}

	fmt.Printf("%s %s\n", tag, r.Name)
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
}

// PrintSummary outputs the run verdict.
func PrintSummary(s doctor.Summary) {
	fmt.Printf("\n%d passed, %d warnings, %d failed\n", s.Passed, s.Warned, s.Fatal)
	if s.Fatal > 0 {
		fmt.Printf("%senvironment not ready; fix the failures above%s\n", red, reset)
	}
}

// formatLabel dims a single-word "label:" prefix in a detail line.
func formatLabel(detail string) string {
	label, rest, ok := strings.Cut(detail, ": ")
	if !ok || strings.ContainsRune(label, ' ') {
		return detail
	}
	return dim + label + ":" + reset + " " + rest
}
