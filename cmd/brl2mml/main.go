/*
Command brl2mml back-translates mathematical braille to MathML.

Usage:

	brl2mml translate [-code nemeth|ueb|cmu|auto] [-ascii] [-block] [-decl] [-indent s] [-tree] <braille>
	brl2mml check [-code nemeth|ueb|cmu|auto] [-ascii] <braille>
	brl2mml codes
	brl2mml repl [-code nemeth|ueb|cmu]

Braille is given as Unicode braille cells or, with -ascii, in dot-number
notation ("3456 2" for ⠼⠂). Without arguments, input is read from stdin.
With -code auto, translate follows switches between UEB and Nemeth and reads
input of several lines as a matrix.
Exit status is 0 on success, 1 if translation fails and 2 for usage errors.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	brlmath "github.com/NSoiffer/MathCAT-sub001"
	"github.com/NSoiffer/MathCAT-sub001/mathml"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

const (
	exitOK = iota
	exitFailed
	exitUsage
)

const usage = `usage: brl2mml <command> [flags] [braille]

commands:
  translate   translate braille to MathML
  check       report structural problems of braille input
  codes       list supported braille codes
  repl        translate interactively
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}
	switch args[0] {
	case "translate":
		return translate(args[1:], stdin, stdout, stderr)
	case "check":
		return check(args[1:], stdin, stdout, stderr)
	case "codes":
		for _, c := range brlmath.SupportedCodes() {
			fmt.Fprintf(stdout, "%-8s %-6s %s\n", c, c.Language(), c.Description())
		}
		return exitOK
	case "repl":
		return repl(args[1:], stdout, stderr)
	case "help", "-h", "-help", "--help":
		fmt.Fprint(stdout, usage)
		return exitOK
	}
	fmt.Fprintf(stderr, "unknown command %q\n\n%s", args[0], usage)
	return exitUsage
}

// common holds the flags shared by all commands reading braille.
type common struct {
	code    string
	ascii   bool
	verbose bool
}

func (c *common) register(fs *flag.FlagSet) {
	fs.StringVar(&c.code, "code", "auto", "braille code: nemeth, ueb, cmu or auto")
	fs.BoolVar(&c.ascii, "ascii", false, "input is in dot-number notation")
	fs.BoolVar(&c.verbose, "v", false, "trace to stderr")
}

func (c *common) setup() {
	gtrace.CoreTracer = gologadapter.New()
	gtrace.SyntaxTracer = gologadapter.New()
	level := tracing.LevelError
	if c.verbose {
		level = tracing.LevelDebug
	}
	gtrace.CoreTracer.SetTraceLevel(level)
	gtrace.SyntaxTracer.SetTraceLevel(level)
}

// input collects the braille from the remaining arguments or from stdin and
// selects the code to use.
func (c *common) input(fs *flag.FlagSet, stdin io.Reader) (brlmath.Code, string, error) {
	var braille string
	if fs.NArg() > 0 {
		braille = strings.Join(fs.Args(), " ")
	} else {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return brlmath.Nemeth, "", err
		}
		braille = strings.TrimRight(string(b), "\r\n")
	}
	if c.ascii {
		braille = brlmath.ASCIIToUnicode(braille)
	}
	if strings.EqualFold(c.code, "auto") {
		return brlmath.DetectCode(braille), braille, nil
	}
	code, err := brlmath.ParseCode(c.code)
	return code, braille, err
}

func translate(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("translate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var flags common
	flags.register(fs)
	var opts mathml.Options
	fs.BoolVar(&opts.DisplayBlock, "block", false, "render display-style math")
	fs.BoolVar(&opts.IncludeDeclaration, "decl", false, "prepend an XML declaration")
	fs.StringVar(&opts.Indent, "indent", "", "indent nested elements by this string")
	tree := fs.Bool("tree", false, "print the semantic tree instead of MathML")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	flags.setup()
	code, braille, err := flags.input(fs, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	var r brlmath.ParseResult
	if strings.EqualFold(flags.code, "auto") {
		r = brlmath.TranslateAutoWith(braille, opts)
	} else {
		r = brlmath.TranslateWith(code, braille, opts)
	}
	if !r.IsSuccess() {
		for _, e := range r.Errors {
			fmt.Fprintf(stderr, "error: %s\n", e)
		}
		return exitFailed
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(stderr, "warning: %s\n", w)
	}
	if *tree {
		fmt.Fprintln(stdout, r.Tree)
	} else {
		fmt.Fprintln(stdout, *r.MathML)
	}
	return exitOK
}

func check(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var flags common
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	flags.setup()
	code, braille, err := flags.input(fs, stdin)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	e, err := code.Engine()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	report := e.Check(braille)
	if report.Balanced {
		fmt.Fprintf(stdout, "%s: structure is balanced\n", code)
		return exitOK
	}
	for _, issue := range report.Issues {
		fmt.Fprintln(stdout, issue)
	}
	return exitFailed
}
