package nesting

import (
	"strconv"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/npillmayer/gorgo/lr/scanner"
)

// TokenType is the type of a structural token.
type TokenType int

// Token types. Values double as terminal token values of the Earley grammar
// and start well above the values gorgo reserves for itself.
const (
	Content TokenType = iota + 10
	FractionOpen
	FractionBar
	FractionClose
	RadicalOpen
	RadicalClose
	GroupOpen
	GroupClose
)

func (t TokenType) String() string {
	switch t {
	case Content:
		return "content"
	case FractionOpen:
		return "frac_open"
	case FractionBar:
		return "frac_bar"
	case FractionClose:
		return "frac_close"
	case RadicalOpen:
		return "rad_open"
	case RadicalClose:
		return "rad_close"
	case GroupOpen:
		return "group_open"
	case GroupClose:
		return "group_close"
	}
	return "token(" + strconv.Itoa(int(t)) + ")"
}

// Token is a structural token. Pos is the cell offset of its first cell.
type Token struct {
	Type  TokenType
	Cells string
	Glyph string // glyph of grouping symbols
	Pos   int
}

// Delimiter is a grouping symbol and the glyph it denotes. Glyphs identify
// matching pairs of opening and closing delimiters.
type Delimiter struct {
	Cells string
	Glyph string
}

// Structure describes the structural cells of a braille code.
//
// Fraction and radical indicators may list alternatives, e.g. the plain and
// the complex form of a fraction indicator. Content lists multi-cell
// sequences which contain structural cells but are not structural. If
// NumericIndicator is set, it introduces a number when followed by one of
// Digits, even if the cell is structural otherwise. Opens and Closes are
// listed in matching order.
type Structure struct {
	FractionOpen, FractionBar, FractionClose []string
	RadicalStart, RadicalEnd                 []string
	Opens, Closes                            []Delimiter
	Content                                  []string
	NumericIndicator                         rune
	Digits                                   []rune
}

// partner returns the closing glyph for an opening glyph. Opens and Closes
// pair up by index.
func (s *Structure) partner(open string) string {
	for i, d := range s.Opens {
		if d.Glyph == open && i < len(s.Closes) {
			return s.Closes[i].Glyph
		}
	}
	return open
}

type pattern struct {
	cells []rune
	typ   TokenType
	glyph string
}

// Lex splits input into structural tokens. Blanks are skipped; runs of
// contiguous content are merged into a single token.
func Lex(s *Structure, input []rune) []Token {
	patterns := s.patterns()
	digits := make(map[rune]bool, len(s.Digits))
	for _, d := range s.Digits {
		digits[d] = true
	}
	var tokens []Token
	emit := func(t Token) {
		if t.Type == Content && len(tokens) > 0 {
			last := &tokens[len(tokens)-1]
			if last.Type == Content && last.Pos+len([]rune(last.Cells)) == t.Pos {
				last.Cells += t.Cells
				return
			}
		}
		tokens = append(tokens, t)
	}
	for i := 0; i < len(input); {
		if cells.IsBlank(input[i]) {
			i++
			continue
		}
		if s.NumericIndicator != 0 && input[i] == s.NumericIndicator &&
			i+1 < len(input) && digits[input[i+1]] {
			emit(Token{Type: Content, Cells: string(input[i : i+2]), Pos: i})
			i += 2
			continue
		}
		best := -1
		for k, p := range patterns {
			if hasPrefix(input[i:], p.cells) && (best < 0 || len(p.cells) > len(patterns[best].cells)) {
				best = k
			}
		}
		if best < 0 {
			emit(Token{Type: Content, Cells: string(input[i]), Pos: i})
			i++
			continue
		}
		p := patterns[best]
		emit(Token{Type: p.typ, Cells: string(p.cells), Glyph: p.glyph, Pos: i})
		i += len(p.cells)
	}
	return tokens
}

func (s *Structure) patterns() []pattern {
	var ps []pattern
	add := func(seqs []string, typ TokenType) {
		for _, seq := range seqs {
			if seq != "" {
				ps = append(ps, pattern{cells: []rune(seq), typ: typ})
			}
		}
	}
	add(s.FractionOpen, FractionOpen)
	add(s.FractionBar, FractionBar)
	add(s.FractionClose, FractionClose)
	add(s.RadicalStart, RadicalOpen)
	add(s.RadicalEnd, RadicalClose)
	closing := make(map[string]bool)
	for _, d := range s.Closes {
		closing[d.Cells] = true
	}
	for _, d := range s.Opens {
		if closing[d.Cells] { // same cells both ways, direction is unknown
			ps = append(ps, pattern{cells: []rune(d.Cells), typ: Content})
			continue
		}
		ps = append(ps, pattern{cells: []rune(d.Cells), typ: GroupOpen, glyph: d.Glyph})
	}
	opening := make(map[string]bool)
	for _, d := range s.Opens {
		opening[d.Cells] = true
	}
	for _, d := range s.Closes {
		if !opening[d.Cells] {
			ps = append(ps, pattern{cells: []rune(d.Cells), typ: GroupClose, glyph: d.Glyph})
		}
	}
	add(s.Content, Content)
	return ps
}

func hasPrefix(input, prefix []rune) bool {
	if len(prefix) == 0 || len(prefix) > len(input) {
		return false
	}
	for i, r := range prefix {
		if input[i] != r {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------

// Tokenizer feeds structural tokens to a parser. It implements the
// scanner.Tokenizer interface of gorgo.
type Tokenizer struct {
	tokens []Token
	inx    int
	end    int
	errh   func(error)
}

// NewTokenizer creates a tokenizer for the tokens of an input with n cells.
func NewTokenizer(tokens []Token, n int) *Tokenizer {
	return &Tokenizer{tokens: tokens, end: n}
}

// NextToken returns the next structural token. The token value is its type,
// the token itself is a Token.
func (tz *Tokenizer) NextToken(expected []int) (int, interface{}, uint64, uint64) {
	if tz.inx >= len(tz.tokens) {
		return scanner.EOF, nil, uint64(tz.end), 0
	}
	t := tz.tokens[tz.inx]
	tz.inx++
	T().Debugf("nesting: token %s at %d", t.Type, t.Pos)
	return int(t.Type), t, uint64(t.Pos), uint64(len([]rune(t.Cells)))
}

// SetErrorHandler sets an error handler function. Tokenizing never fails, the
// handler is kept for the parser's benefit only.
func (tz *Tokenizer) SetErrorHandler(h func(error)) {
	tz.errh = h
}
