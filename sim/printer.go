// Diagnostic rendering for activities. The output is line-oriented and
// indentation-based, meant for interactive inspection rather than machine
// parsing. Rendering is best-effort: a value that cannot be formatted must
// never abort the surrounding simulation.

package sim

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// MaxPrintArgs caps the number of labelled arguments rendered inline on an
// activity's diagnostic line.
const MaxPrintArgs = 5

// Arg is one labelled value on an activity's diagnostic line.
type Arg struct {
	Label string
	Value any
}

// PrintHeader renders the opening of the activity's diagnostic line:
// indentation, the name left-justified, the link identities when verbose,
// and the tag when set. Brief mode suppresses the header entirely.
func (b *Base) PrintHeader(w io.Writer, indent int, verbose, brief bool) {
	if brief {
		return
	}
	fmt.Fprintf(w, "%s{ Activity: %-12s | ", strings.Repeat(" ", indent), b.name)
	if verbose {
		fmt.Fprintf(w, "%9s <- %9s -> %-9s | ",
			nodeID(b.prev), fmt.Sprintf("%p", b), nodeID(b.next))
	}
	if b.tag != "" {
		fmt.Fprintf(w, "[%s] ", b.tag)
	}
}

// PrintArgs renders up to MaxPrintArgs labelled values, comma-separated,
// followed by the closing delimiter. Brief mode drops the labels and, unless
// endl is set, leaves a trailing separator so callers can append further
// values on the same line.
func PrintArgs(w io.Writer, brief, endl bool, args ...Arg) {
	if len(args) > MaxPrintArgs {
		args = args[:MaxPrintArgs]
	}
	for i, arg := range args {
		if !brief {
			fmt.Fprintf(w, "%s: ", arg.Label)
		}
		fmt.Fprint(w, formatValue(arg.Value))
		if i < len(args)-1 || (brief && !endl) {
			fmt.Fprint(w, ", ")
		}
	}
	PrintClose(w, brief, endl)
}

// PrintClose renders the closing delimiter and line break. Brief mode
// suppresses both, emitting a bare line break only when endl requests one.
func PrintClose(w io.Writer, brief, endl bool) {
	if !brief {
		fmt.Fprintln(w, " }")
	} else if endl {
		fmt.Fprintln(w)
	}
}

// nodeID renders a chain neighbor's memory identity for verbose printing.
func nodeID(a Activity) string {
	if a == nil {
		return "0x0"
	}
	return fmt.Sprintf("%p", a.base())
}

// formatValue renders v, absorbing any panic from a misbehaving String or
// Format method so diagnostics never take the simulation down.
func formatValue(v any) (s string) {
	defer func() {
		if r := recover(); r != nil {
			logrus.Debugf("diagnostic print: recovered %v", r)
			s = "<unprintable>"
		}
	}()
	return fmt.Sprint(v)
}
