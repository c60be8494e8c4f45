package commands

import (
	"fmt"
	"io"

	"go.trai.ch/sail/internal/core/domain"
	"go.trai.ch/sail/internal/ui/style"
)

// PrintError renders err for the user. Invariant violations are reported
// with full detail since they indicate a defect rather than bad input.
func PrintError(w io.Writer, err error) {
	if err == nil {
		return
	}

	msg := err.Error()
	if domain.KindOf(err) == domain.KindInternal {
		msg = fmt.Sprintf("internal error: %+v", err)
	}
	_, _ = fmt.Fprintln(w, style.Failure.Render(style.Cross+" "+msg))

	if hint := hintFor(domain.KindOf(err)); hint != "" {
		_, _ = fmt.Fprintln(w, style.Caution.Render(style.Warning+" "+hint))
	}
}

func hintFor(kind domain.ErrorKind) string {
	switch kind {
	case domain.KindUserInput:
		return "run 'sail --help' for usage"
	case domain.KindFetch:
		return "check the address and your network connection"
	default:
		return ""
	}
}
