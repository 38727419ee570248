package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	for _, tc := range []struct {
		args   []string
		stdin  string
		status int
		output string
	}{
		{nil, "", exitUsage, ""},
		{[]string{"frobnicate"}, "", exitUsage, ""},
		{[]string{"codes"}, "", exitOK, "CMU"},
		{[]string{"translate", "-code", "nemeth", "⠭⠬⠼⠂"}, "", exitOK, "<mo>+</mo>"},
		{[]string{"translate", "-ascii", "3456 2"}, "", exitOK, "<mn>1</mn>"},
		{[]string{"translate", "-code", "cmu"}, "⠼⠁⠃\n", exitOK, "<mn>12</mn>"},
		{[]string{"translate", "-tree", "⠹⠂⠌⠆⠼"}, "", exitOK, "(1/2)"},
		{[]string{"translate", "-code", "marburg", "⠭"}, "", exitUsage, ""},
		{[]string{"translate", "-code", "ueb", "⠰⠭⠐⠖⠼⠁"}, "", exitOK, "<mo>+</mo>"},
		{[]string{"translate", "-tree", "⠭⠐⠶⠸⠩⠼⠂⠬⠼⠆⠸⠱"}, "", exitOK, "x=1+2"},
		{[]string{"translate", "-tree"}, "⠼⠂⠀⠀⠼⠆\n⠼⠒⠀⠀⠼⠲\n", exitOK, "1,2;3,4"},
		{[]string{"translate", "abc"}, "", exitFailed, ""},
		{[]string{"check", "-code", "nemeth", "⠹⠂⠌⠆⠼"}, "", exitOK, "balanced"},
		{[]string{"check", "-code", "nemeth", "⠹⠂⠌⠆"}, "", exitFailed, "fraction"},
	} {
		var stdout, stderr bytes.Buffer
		status := run(tc.args, strings.NewReader(tc.stdin), &stdout, &stderr)
		if status != tc.status {
			t.Errorf("expected status %d for %v, is %d (%s)", tc.status, tc.args, status, stderr.String())
		}
		if !strings.Contains(stdout.String(), tc.output) {
			t.Errorf("expected %q in output of %v, is %q", tc.output, tc.args, stdout.String())
		}
	}
}
