// Command pushi runs a Push program from the command line, printing
// the INTEGER, BOOLEAN and FLOAT stacks once the interpreter drains
// EXEC or a budget stops it. With no program argument it runs one
// program per line read from stdin, printing a prompt only when stdin
// is a terminal.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	push "github.com/gopush/push3"
)

const name = "pushi"

const (
	exitCodeOK = iota
	exitCodeErr
)

type cli struct {
	inStream  io.Reader
	outStream io.Writer
	errStream io.Writer
	log       *logrus.Logger
}

func (c *cli) run(args []string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.errStream)
	var maxSteps int
	var verbose bool
	fs.IntVar(&maxSteps, "max-steps", 0, "step budget for each run (0 = keep the library default)")
	fs.BoolVar(&verbose, "v", false, "log every dispatched instruction")
	fs.Usage = func() {
		fmt.Fprintf(c.errStream, "%s - run a Push3 program\n\nUsage:\n  %s [-max-steps N] [-v] ['( 2 3 INTEGER.+ )']\n\nOptions:\n", name, name)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return exitCodeOK
		}
		return exitCodeErr
	}

	reg := push.NewRegistry()
	push.LoadDefaults(reg)
	interp := push.NewInterpreter(reg)

	if verbose {
		c.log.SetLevel(logrus.DebugLevel)
		zapLog, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
			return exitCodeErr
		}
		defer zapLog.Sync()
		reg.SetLogger(zapLog)
		interp.SetLogger(zapLog)
	}

	switch rest := fs.Args(); len(rest) {
	case 0:
		return c.repl(reg, interp, maxSteps)
	case 1:
		return c.runOnce(reg, interp, rest[0], maxSteps)
	default:
		fmt.Fprintf(c.errStream, "%s: too many arguments\n", name)
		return exitCodeErr
	}
}

func (c *cli) runOnce(reg *push.Registry, interp *push.Interpreter, src string, maxSteps int) int {
	st, err := push.NewState(push.DefaultConfig())
	if err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	if maxSteps > 0 {
		st.Config.MaxSteps = maxSteps
	}
	prog, err := push.Parse(src, reg)
	if err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	// Programs stored and replayed against a narrower registry than the
	// one that parsed them (see LoadDefaults) can name instructions this
	// run's registry no longer has; catch that up front rather than
	// letting it dispatch as a silent NOOP.
	if err := reg.Check(prog); err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	outcome, err := interp.Run(context.Background(), st, prog)
	if err != nil {
		fmt.Fprintf(c.errStream, "%s: %s\n", name, err)
		return exitCodeErr
	}
	c.log.WithField("outcome", outcome).Debug("run finished")
	fmt.Fprint(c.outStream, push.DumpStack("INTEGER", st.Int.Data()))
	fmt.Fprint(c.outStream, push.DumpStack("BOOLEAN", st.Bool.Data()))
	fmt.Fprint(c.outStream, push.DumpStack("FLOAT", st.Float.Data()))
	return exitCodeOK
}

// repl reads one program per line from stdin, printing a prompt only
// when stdin is an interactive terminal -- go-isatty is what lets a
// piped script run silently while a human at a shell still sees "> ".
func (c *cli) repl(reg *push.Registry, interp *push.Interpreter, maxSteps int) int {
	interactive := false
	if f, ok := c.inStream.(*os.File); ok {
		interactive = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	scanner := bufio.NewScanner(c.inStream)
	for {
		if interactive {
			fmt.Fprint(c.outStream, "pushi> ")
		}
		if !scanner.Scan() {
			return exitCodeOK
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		c.runOnce(reg, interp, line, maxSteps)
	}
}

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	c := &cli{inStream: os.Stdin, outStream: os.Stdout, errStream: os.Stderr, log: log}
	os.Exit(c.run(os.Args[1:]))
}
