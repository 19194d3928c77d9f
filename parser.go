package pathtoregexp

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/valyala/bytebufferpool"
	"golang.org/x/exp/utf8string"
)

type pathParser struct {
	input                 *utf8string.String
	tokenList             []token
	options               Options
	segmentWildcardRegexp string
	pendingFixedValue     *bytebufferpool.ByteBuffer
	result                []Token
	index                 int
	nextNumericName       int
}

// parsePathString runs the builder over the lexical units of input.
func parsePathString(input string, options Options) ([]Token, error) {
	s := utf8string.NewString(input)

	tl, err := tokenize(s)
	if err != nil {
		return nil, err
	}

	p := pathParser{
		input:                 s,
		tokenList:             tl,
		options:               options,
		segmentWildcardRegexp: generateSegmentWildcardRegexp(options),
		pendingFixedValue:     bytebufferpool.Get(),
		result:                make([]Token, 0, len(tl)/2+1),
	}
	defer bytebufferpool.Put(p.pendingFixedValue)

	for {
		t := p.tokenList[p.index]
		p.index++

		switch t.tType {
		case tokenEnd:
			if err := p.maybeAddLiteralFromPendingFixedValue(); err != nil {
				return nil, err
			}

			return p.result, nil

		case tokenName:
			pattern := p.segmentWildcardRegexp
			if regexpToken := p.tryConsumeToken(tokenRegexp); regexpToken != nil {
				pattern = regexpToken.value
			}

			if err := p.addParameter(t.value, pattern, false); err != nil {
				return nil, err
			}

		case tokenRegexp:
			if err := p.addParameter(p.generateNumericName(), t.value, false); err != nil {
				return nil, err
			}

		case tokenAsterisk:
			if err := p.addParameter(p.generateNumericName(), fullWildcardRegexpValue, true); err != nil {
				return nil, err
			}

		default:
			// tokenChar, tokenEscapedChar, and modifiers not following a parameter.
			p.pendingFixedValue.WriteString(t.value)
		}
	}
}

func (p *pathParser) tryConsumeToken(tokenType tokenType) *token {
	nextToken := p.tokenList[p.index]
	if nextToken.tType != tokenType {
		return nil
	}

	p.index++

	return &nextToken
}

func (p *pathParser) tryConsumeModifierToken() *token {
	if t := p.tryConsumeToken(tokenOtherModifier); t != nil {
		return t
	}

	return p.tryConsumeToken(tokenAsterisk)
}

func (p *pathParser) generateNumericName() string {
	name := strconv.Itoa(p.nextNumericName)
	p.nextNumericName++

	return name
}

// addParameter flushes the pending literal text, absorbing a trailing
// delimiter as the prefix, and appends the parameter.
func (p *pathParser) addParameter(name, pattern string, asterisk bool) error {
	prefix := ""
	if delimiter := p.options.Delimiter; bytes.HasSuffix(p.pendingFixedValue.B, []byte(delimiter)) {
		p.pendingFixedValue.B = p.pendingFixedValue.B[:p.pendingFixedValue.Len()-len(delimiter)]
		prefix = delimiter
	}

	if err := p.maybeAddLiteralFromPendingFixedValue(); err != nil {
		return err
	}

	param := Parameter{
		Name:      name,
		Prefix:    prefix,
		Delimiter: prefix,
		Asterisk:  asterisk,
		Pattern:   pattern,
	}

	// A wildcard takes no modifier: a "*" after it is another wildcard.
	if !asterisk {
		if modifierToken := p.tryConsumeModifierToken(); modifierToken != nil {
			switch modifierToken.value {
			case "?":
				param.Optional = true
			case "*":
				param.Optional = true
				param.Repeat = true
			case "+":
				param.Repeat = true
			}
		}
	}

	param.Partial = p.isPartial()
	p.result = append(p.result, param)

	return nil
}

// isPartial reports whether input remains after the current position
// without starting a new segment.
func (p *pathParser) isPartial() bool {
	next := p.tokenList[p.index]
	if next.tType == tokenEnd {
		return false
	}

	rest := p.input.Slice(next.index, p.input.RuneCount())

	return !strings.HasPrefix(rest, p.options.Delimiter)
}

func (p *pathParser) maybeAddLiteralFromPendingFixedValue() error {
	if p.pendingFixedValue.Len() == 0 {
		return nil
	}

	value := p.pendingFixedValue.String()
	p.pendingFixedValue.Reset()

	if p.options.Encoding != nil {
		encodedValue, err := p.options.Encoding(value)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", value, err)
		}

		if encodedValue == "" {
			return nil
		}

		value = encodedValue
	}

	p.result = append(p.result, Literal{Text: value})

	return nil
}
