package brlmath

import (
	"strings"
	"unicode/utf8"

	jj "github.com/cloudfoundry/jibber_jabber"
	"golang.org/x/text/language"

	"github.com/NSoiffer/MathCAT-sub001/cells"
	"github.com/NSoiffer/MathCAT-sub001/cmu"
	"github.com/NSoiffer/MathCAT-sub001/nemeth"
)

// marker cells which, outside of numbers, are typical for one code
var codeMarkers = map[Code][]string{
	Nemeth: {"⠬", "⠨⠅"},
	CMU:    {"⠮", "⠶"},
}

// UEB markers are counted and blanked before the others, as they contain
// CMU markers.
var uebMarkers = []string{"⠐⠖", "⠐⠮", "⠐⠶", "⠐⠦", "⠐⠣", "⠐⠜"}

// DetectCode guesses the braille code of a string. Digits following a
// numeric indicator are the strongest hint: Nemeth writes digits in the lower
// part of the cell, UEB and CMU re-use the letters a–j. Operator cells typical
// for one code count as weaker hints. Input containing a Nemeth switch
// indicator is UEB. If nothing points to UEB or CMU, Nemeth is assumed; UEB
// has to score higher than CMU.
func DetectCode(braille string) Code {
	if strings.Contains(braille, NemethOpen) {
		return UEB
	}
	input := []rune(braille)
	var score [3]int
	for i := 0; i+1 < len(input); i++ {
		if input[i] != nemeth.NumericIndicator { // same cell in both codes
			continue
		}
		start := i + 1
		switch {
		case nemeth.Table.IsDigit(input[start]):
			score[Nemeth] += 2
			i = maskNumber(input, start, nemeth.Table.IsDigit)
		case cmu.Table.IsDigit(input[start]): // same digits in UEB
			score[CMU] += 2
			score[UEB] += 2
			i = maskNumber(input, start, cmu.Table.IsDigit)
		}
	}
	masked := string(input)
	for _, m := range uebMarkers {
		score[UEB] += strings.Count(masked, m)
		blanks := strings.Repeat(string(cells.BlankCell), utf8.RuneCountInString(m))
		masked = strings.ReplaceAll(masked, m, blanks)
	}
	for code, markers := range codeMarkers {
		for _, m := range markers {
			score[code] += strings.Count(masked, m)
		}
	}
	CT().Debugf("code detection: Nemeth=%d, UEB=%d, CMU=%d", score[Nemeth], score[UEB], score[CMU])
	if score[UEB] > score[Nemeth] && score[UEB] > score[CMU] {
		return UEB
	}
	if score[CMU] > score[Nemeth] {
		return CMU
	}
	return Nemeth
}

// maskNumber blanks the digit run starting at i and returns the position of
// its last digit.
func maskNumber(input []rune, i int, isDigit func(rune) bool) int {
	for ; i < len(input) && isDigit(input[i]); i++ {
		input[i] = cells.BlankCell
	}
	return i - 1
}

// The first tag is used as fallback.
var codeMatcher = language.NewMatcher([]language.Tag{
	language.AmericanEnglish,
	language.BritishEnglish,
	language.Spanish,
})

// CodeForLocale selects the braille code used in the language community of a
// BCP 47 tag. Unknown or unrelated languages yield Nemeth.
func CodeForLocale(tag string) Code {
	lang, err := language.Parse(tag)
	if err != nil {
		CT().Infof("cannot parse locale %q: %v", tag, err)
		return Nemeth
	}
	_, index, confidence := codeMatcher.Match(lang)
	if confidence == language.No {
		return Nemeth
	}
	return SupportedCodes()[index]
}

// CodeFromEnvironment selects the braille code for the locale of the user.
func CodeFromEnvironment() Code {
	userLocale, err := jj.DetectIETF()
	if err != nil {
		CT().Errorf(err.Error())
		userLocale = "en-US"
		CT().Infof("braille code detection sets default user locale %v", userLocale)
	} else {
		CT().Infof("braille code detection found user locale %v", userLocale)
	}
	return CodeForLocale(userLocale)
}
