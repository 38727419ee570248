package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	brlmath "github.com/NSoiffer/MathCAT-sub001"
	"github.com/peterh/liner"
)

const (
	historyFile = ".brl2mml_history"
	prompt      = "%s> "
)

const replHelp = `
REPL commands:
  :code <name>  switch braille code (nemeth, ueb, cmu)
  :ascii        toggle dot-number input
  :tree         toggle printing of the semantic tree
  :codes        list supported codes
  :quit         exit the REPL
`

type session struct {
	code  brlmath.Code
	ascii bool
	tree  bool
	out   io.Writer
}

func repl(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var flags common
	flags.register(fs)
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	flags.setup()
	s := &session{code: brlmath.CodeFromEnvironment(), ascii: flags.ascii, out: stdout}
	if !strings.EqualFold(flags.code, "auto") {
		code, err := brlmath.ParseCode(flags.code)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitUsage
		}
		s.code = code
	}
	fmt.Fprintf(stdout, "brl2mml: braille to MathML. Ctrl+D exits, :help lists commands.\n")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(fmt.Sprintf(prompt, s.code))
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil { // io.EOF on Ctrl+D
			fmt.Fprintln(stdout)
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)
		if strings.HasPrefix(line, ":") {
			if done := s.command(line); done {
				break
			}
			continue
		}
		s.translate(line)
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return exitOK
}

func (s *session) command(line string) (exit bool) {
	fields := strings.Fields(line)
	switch fields[0] {
	case ":quit", ":q", ":exit":
		return true
	case ":help":
		fmt.Fprint(s.out, replHelp)
	case ":code":
		if len(fields) < 2 {
			fmt.Fprintf(s.out, "current code is %s\n", s.code)
			break
		}
		code, err := brlmath.ParseCode(fields[1])
		if err != nil {
			fmt.Fprintln(s.out, err)
			break
		}
		s.code = code
	case ":ascii":
		s.ascii = !s.ascii
		fmt.Fprintf(s.out, "dot-number input: %v\n", s.ascii)
	case ":tree":
		s.tree = !s.tree
		fmt.Fprintf(s.out, "print tree: %v\n", s.tree)
	case ":codes":
		for _, c := range brlmath.SupportedCodes() {
			fmt.Fprintf(s.out, "%-8s %s\n", c, c.Description())
		}
	default:
		fmt.Fprintf(s.out, "unknown command %s, try :help\n", fields[0])
	}
	return false
}

func (s *session) translate(line string) {
	if s.ascii {
		line = brlmath.ASCIIToUnicode(line)
	}
	r := brlmath.Translate(s.code, line)
	if !r.IsSuccess() {
		for _, e := range r.Errors {
			fmt.Fprintf(s.out, "error: %s\n", e)
		}
		return
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(s.out, "warning: %s\n", w)
	}
	if s.tree {
		fmt.Fprintln(s.out, r.Tree)
	}
	fmt.Fprintln(s.out, *r.MathML)
}
