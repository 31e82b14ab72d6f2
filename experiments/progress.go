package experiments

import (
	"fmt"
	"os"

	"github.com/muesli/termenv"
)

// progress repaints a single status line while an experiment runs.
type progress struct {
	out *termenv.Output
}

func newProgress() *progress {
	return &progress{out: termenv.NewOutput(os.Stdout)}
}

func (p *progress) update(format string, args ...interface{}) {
	p.out.ClearLine()
	line := p.out.String(fmt.Sprintf(format, args...)).Foreground(p.out.Color("6"))
	fmt.Fprintf(p.out, "\r%s", line)
}

func (p *progress) done() {
	fmt.Fprintln(p.out)
}
