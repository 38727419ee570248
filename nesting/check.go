package nesting

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// IssueKind classifies structural problems.
type IssueKind int

// Kinds of structural problems.
const (
	UnclosedFraction IssueKind = iota
	UnclosedRadical
	UnbalancedGroup
	StrayClose
	FractionWithoutBar
	Malformed
)

func (k IssueKind) String() string {
	switch k {
	case UnclosedFraction:
		return "unclosed fraction"
	case UnclosedRadical:
		return "unclosed radical"
	case UnbalancedGroup:
		return "unbalanced grouping"
	case StrayClose:
		return "stray closing indicator"
	case FractionWithoutBar:
		return "fraction without bar"
	}
	return "malformed structure"
}

// EndOfInput is the Found value of issues which run into the end of input.
const EndOfInput = "end of input"

// Issue is a structural problem. Position is the cell offset of the
// indicator concerned; for unclosed structures it is the opening indicator.
type Issue struct {
	Kind     IssueKind
	Position int
	Expected string // grouping issues only
	Found    string // grouping issues only
	Message  string
}

func (is Issue) String() string {
	if is.Kind == UnbalancedGroup {
		return fmt.Sprintf("%s at %d: expected '%s', found '%s'", is.Kind, is.Position, is.Expected, is.Found)
	}
	if is.Message != "" {
		return fmt.Sprintf("%s at %d: %s", is.Kind, is.Position, is.Message)
	}
	return fmt.Sprintf("%s at %d", is.Kind, is.Position)
}

// Report is the result of a structural check.
type Report struct {
	Balanced bool
	Issues   []Issue
	Tokens   []Token
}

// Check lexes input into structural tokens and checks them for balance.
// Input without any structural token is balanced.
func Check(s *Structure, input string) Report {
	cells := []rune(input)
	tokens := Lex(s, cells)
	report := Report{Tokens: tokens}
	if len(tokens) == 0 {
		report.Balanced = true
		return report
	}
	parser := getParser()
	accept, err := parser.Parse(NewTokenizer(tokens, len(cells)), nil)
	if err != nil {
		T().Debugf("nesting: parser error: %v", err)
	}
	issues := locate(s, tokens, len(cells))
	if accept && len(issues) == 0 {
		report.Balanced = true
		return report
	}
	if len(issues) == 0 {
		issues = append(issues, Issue{Kind: Malformed, Position: tokens[0].Pos})
	}
	report.Issues = issues
	T().Infof("nesting: %d structural issue(s)", len(issues))
	return report
}

type frame struct {
	token  Token
	bar    bool // fraction bar seen
	filled bool // content seen since the opening indicator or the bar
}

// locate scans the tokens with a stack of open structures and reports every
// indicator which does not pair up. Grouping symbols are matched by glyph.
func locate(s *Structure, tokens []Token, end int) []Issue {
	var issues []Issue
	stack := arraystack.New()
	top := func() *frame {
		if f, ok := stack.Peek(); ok {
			return f.(*frame)
		}
		return nil
	}
	fill := func() {
		if f := top(); f != nil {
			f.filled = true
		}
	}
	unclosed := func(f *frame, found Token, atEnd bool) {
		switch f.token.Type {
		case FractionOpen:
			issues = append(issues, Issue{Kind: UnclosedFraction, Position: f.token.Pos})
		case RadicalOpen:
			issues = append(issues, Issue{Kind: UnclosedRadical, Position: f.token.Pos})
		case GroupOpen:
			is := Issue{Kind: UnbalancedGroup, Expected: s.partner(f.token.Glyph)}
			if atEnd {
				is.Found, is.Position = EndOfInput, end
			} else {
				is.Found, is.Position = found.Glyph, found.Pos
				if is.Found == "" {
					is.Found = found.Cells
				}
			}
			issues = append(issues, is)
		}
	}
	// unwind pops frames up to and including the innermost frame opened by
	// typ, reporting every frame left open in between.
	unwind := func(typ TokenType, t Token) (*frame, bool) {
		found := false
		for _, v := range stack.Values() {
			if v.(*frame).token.Type == typ {
				found = true
				break
			}
		}
		if !found {
			issues = append(issues, Issue{Kind: StrayClose, Position: t.Pos, Message: t.Type.String()})
			return nil, false
		}
		for {
			v, _ := stack.Pop()
			f := v.(*frame)
			if f.token.Type == typ {
				return f, true
			}
			unclosed(f, t, false)
		}
	}
	for _, t := range tokens {
		switch t.Type {
		case Content:
			fill()
		case FractionOpen, RadicalOpen, GroupOpen:
			fill()
			stack.Push(&frame{token: t})
		case FractionBar:
			f := top()
			if f == nil || f.token.Type != FractionOpen || f.bar {
				issues = append(issues, Issue{Kind: StrayClose, Position: t.Pos, Message: t.Type.String()})
				continue
			}
			if !f.filled {
				issues = append(issues, Issue{Kind: Malformed, Position: t.Pos, Message: "empty numerator"})
			}
			f.bar, f.filled = true, false
		case FractionClose:
			if f, ok := unwind(FractionOpen, t); ok {
				if !f.bar {
					issues = append(issues, Issue{Kind: FractionWithoutBar, Position: f.token.Pos})
				} else if !f.filled {
					issues = append(issues, Issue{Kind: Malformed, Position: t.Pos, Message: "empty denominator"})
				}
			}
		case RadicalClose:
			if f, ok := unwind(RadicalOpen, t); ok && !f.filled {
				issues = append(issues, Issue{Kind: Malformed, Position: t.Pos, Message: "empty radicand"})
			}
		case GroupClose:
			if f, ok := unwind(GroupOpen, t); ok {
				if expected := s.partner(f.token.Glyph); expected != t.Glyph {
					issues = append(issues, Issue{Kind: UnbalancedGroup, Position: t.Pos,
						Expected: expected, Found: t.Glyph})
				}
			}
		}
		if t.Type == FractionClose || t.Type == RadicalClose || t.Type == GroupClose {
			fill()
		}
	}
	for !stack.Empty() {
		v, _ := stack.Pop()
		unclosed(v.(*frame), Token{}, true)
	}
	return issues
}
