package prompt

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// New picks the prompter for a run. The terminal UI is used only when
// useTUI is set and in is a terminal; scripts piping into stdin always get
// the [Line] prompter.
func New(in *os.File, out io.Writer, useTUI bool) Prompter {
	if useTUI && isTerminal(in) {
		return NewTUI(in, out)
	}

	return NewLine(in, out)
}

func isTerminal(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
