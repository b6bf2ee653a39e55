package repl

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vschwaberow/rustalize/internal/errors"
	"github.com/vschwaberow/rustalize/internal/parser"
	"github.com/vschwaberow/rustalize/internal/render"
)

const PROMPT = ">> "
const CONTINUATION = ".. "

// Start reads declarations interactively. Input is buffered until braces
// balance, so multi-line declarations work the way they do in a file.
func Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	var buffer strings.Builder
	depth := 0

	for {
		if buffer.Len() == 0 {
			fmt.Fprint(out, PROMPT)
		} else {
			fmt.Fprint(out, CONTINUATION)
		}

		scanned := scanner.Scan()
		if !scanned {
			return
		}

		line := scanner.Text()
		buffer.WriteString(line)
		buffer.WriteString("\n")
		depth += braceDelta(line)

		if depth > 0 {
			continue
		}

		source := buffer.String()
		buffer.Reset()
		depth = 0

		if strings.TrimSpace(source) == "" {
			continue
		}

		decl, err := parser.ParseDeclaration(source)
		if err != nil {
			reporter := errors.NewReporter("<repl>", source)
			fmt.Fprint(out, reporter.Format(err))
			continue
		}

		fmt.Fprintf(out, "%s\n", render.Render(decl))
	}
}

func braceDelta(line string) int {
	delta := 0
	for i := 0; i < len(line); i++ {
		switch line[i] {
		case '{':
			delta++
		case '}':
			delta--
		}
	}
	return delta
}
