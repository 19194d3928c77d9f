package pathtoregexp

import (
	"unicode"

	"golang.org/x/exp/utf8string"
)

type tokenizer struct {
	input     *utf8string.String
	tokenList []token
	index     int
	nextIndex int
	codePoint rune
}

// tokenize splits input into lexical units. The last token is always tokenEnd.
func tokenize(input *utf8string.String) ([]token, error) {
	t := tokenizer{
		input:     input,
		tokenList: make([]token, 0, input.RuneCount()+1),
	}

	len := t.input.RuneCount()

	for t.index < len {
		t.seekAndGetNextCodePoint(t.index)

		switch t.codePoint {
		case '*':
			t.addTokenWithDefaultPositionAndLength(tokenAsterisk)

		case '+', '?':
			t.addTokenWithDefaultPositionAndLength(tokenOtherModifier)

		case '\\':
			if t.index == len-1 {
				return nil, newSyntaxError(t.input.String(), t.index, ErrDanglingEscape)
			}

			escapedIndex := t.nextIndex
			t.getNextCodePoint()
			t.addTokenWithDefaultLength(tokenEscapedChar, t.nextIndex, escapedIndex)

		case ':':
			namePosition := t.nextIndex
			nameStart := namePosition

			for namePosition < len {
				t.seekAndGetNextCodePoint(namePosition)
				if !isNameCodePoint(t.codePoint) {
					break
				}

				namePosition = t.nextIndex
			}

			if namePosition <= nameStart {
				return nil, newSyntaxError(t.input.String(), t.index, ErrEmptyParameterName)
			}

			t.addTokenWithDefaultLength(tokenName, namePosition, nameStart)

		case '(':
			regexpPosition, err := scanGroup(t.input, t.index)
			if err != nil {
				return nil, err
			}

			regexpStart := t.index + 1
			t.addToken(tokenRegexp, regexpPosition, regexpStart, regexpPosition-regexpStart-1)

		default:
			t.addTokenWithDefaultPositionAndLength(tokenChar)
		}
	}

	t.addTokenWithDefaultLength(tokenEnd, t.index, t.index)

	return t.tokenList, nil
}

// scanGroup walks a parenthesized group whose "(" is at index open and
// returns the index just past the matching ")". Escaped parentheses do not
// change the depth.
func scanGroup(input *utf8string.String, open int) (int, error) {
	len := input.RuneCount()
	depth := 1
	escaped := false

	for i := open + 1; i < len; i++ {
		switch c := input.At(i); {
		case escaped:
			escaped = false

		case c == '\\':
			escaped = true

		case c == '(':
			depth++

		case c == ')':
			depth--
			if depth == 0 {
				return i + 1, nil
			}
		}
	}

	if escaped {
		return 0, newSyntaxError(input.String(), len-1, ErrDanglingEscape)
	}

	return 0, newSyntaxError(input.String(), open, ErrUnterminatedGroup)
}

func (t *tokenizer) getNextCodePoint() {
	t.codePoint = t.input.At(t.nextIndex)
	t.nextIndex++
}

func (t *tokenizer) seekAndGetNextCodePoint(index int) {
	t.nextIndex = index
	t.getNextCodePoint()
}

func (t *tokenizer) addToken(tType tokenType, nextPosition, valuePosition, valueLength int) {
	t.tokenList = append(t.tokenList, token{
		tType: tType,
		index: t.index,
		value: t.input.Slice(valuePosition, valuePosition+valueLength),
	})
	t.index = nextPosition
}

func (t *tokenizer) addTokenWithDefaultLength(tType tokenType, nextPosition, valuePosition int) {
	t.addToken(tType, nextPosition, valuePosition, nextPosition-valuePosition)
}

func (t *tokenizer) addTokenWithDefaultPositionAndLength(tType tokenType) {
	t.addTokenWithDefaultLength(tType, t.nextIndex, t.index)
}

// isNameCodePoint reports whether r may appear in a parameter name.
func isNameCodePoint(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
