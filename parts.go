package pathtoregexp

import (
	"strconv"
	"unicode/utf8"

	"github.com/valyala/bytebufferpool"
)

// fullWildcardRegexpValue is the pattern of a standalone "*".
const fullWildcardRegexpValue = ".*"

// Token is one unit of a parsed path pattern: either a Literal or a Parameter.
type Token interface {
	// Record returns the flat representation of the token.
	Record() Record

	isToken()
}

// Literal is fixed path text.
type Literal struct {
	Text string
}

// Parameter is a named parameter, an unnamed group or a wildcard.
//
// Unnamed groups and wildcards are named after their position among the
// unnamed parameters of the pattern: "0", "1" and so on.
type Parameter struct {
	Name string
	// Prefix is the delimiter absorbed from the text preceding the parameter, if any.
	Prefix string
	// Delimiter joins repeated matches. It is always equal to Prefix.
	Delimiter string
	Optional  bool
	Repeat    bool
	// Partial is set when literal text follows the parameter within the same segment.
	Partial bool
	// Asterisk is set for a standalone "*" wildcard.
	Asterisk bool
	Pattern  string
}

// Record is the flat form of a Token, IsString telling literals apart.
type Record struct {
	Name      string `json:"name"`
	Prefix    string `json:"prefix"`
	Delimiter string `json:"delimiter"`
	Optional  bool   `json:"optional"`
	Repeat    bool   `json:"repeat"`
	Partial   bool   `json:"partial"`
	Asterisk  bool   `json:"asterisk"`
	Pattern   string `json:"pattern"`
	IsString  bool   `json:"is_string"`
}

func (Literal) isToken()   {}
func (Parameter) isToken() {}

func (l Literal) Record() Record {
	return Record{Name: l.Text, IsString: true}
}

func (p Parameter) Record() Record {
	return Record{
		Name:      p.Name,
		Prefix:    p.Prefix,
		Delimiter: p.Delimiter,
		Optional:  p.Optional,
		Repeat:    p.Repeat,
		Partial:   p.Partial,
		Asterisk:  p.Asterisk,
		Pattern:   p.Pattern,
	}
}

// Records converts tokens to their flat form.
func Records(tokens []Token) []Record {
	records := make([]Record, 0, len(tokens))
	for _, t := range tokens {
		records = append(records, t.Record())
	}

	return records
}

// Format renders tokens back to a path pattern. For any tokens returned by
// Parse with the same options, parsing the result yields the same tokens.
func Format(tokens []Token, options Options) string {
	options = options.withDefaults()
	segmentWildcardRegexp := generateSegmentWildcardRegexp(options)

	result := bytebufferpool.Get()
	defer bytebufferpool.Put(result)

	nextNumericName := 0
	// Set after a named parameter written without pattern nor modifier,
	// which a following name code point would extend.
	openName := false

	for index, t := range tokens {
		switch t := t.(type) {
		case Literal:
			text := escapePatternString(t.Text)
			if openName && text != "" {
				if r, _ := utf8.DecodeRuneInString(text); isNameCodePoint(r) {
					result.WriteByte('\\')
				}
			}

			result.WriteString(text)
			openName = false

		case Parameter:
			result.WriteString(escapePatternString(t.Prefix))

			customName := t.Name != strconv.Itoa(nextNumericName)
			if !customName {
				nextNumericName++
			}

			if !customName && t.Asterisk {
				result.WriteByte('*')
				openName = false

				continue
			}

			writePattern := !customName || t.Pattern != segmentWildcardRegexp
			if customName {
				result.WriteByte(':')
				result.WriteString(t.Name)

				if index+1 < len(tokens) {
					if next, ok := tokens[index+1].(Parameter); ok && next.Prefix == "" && !next.Asterisk && next.Name == strconv.Itoa(nextNumericName) {
						writePattern = true
					}
				}
			}

			if writePattern {
				result.WriteByte('(')
				result.WriteString(t.Pattern)
				result.WriteByte(')')
			}

			modifier := convertModifierToString(t.Optional, t.Repeat)
			if modifier != 0 {
				result.WriteByte(modifier)
			}

			openName = customName && !writePattern && modifier == 0
		}
	}

	return result.String()
}

func convertModifierToString(optional, repeat bool) byte {
	switch {
	case optional && repeat:
		return '*'
	case optional:
		return '?'
	case repeat:
		return '+'
	default:
		return 0
	}
}

// generateSegmentWildcardRegexp returns the pattern of a parameter without a custom pattern.
func generateSegmentWildcardRegexp(options Options) string {
	return "[^" + escapeClassString(options.Delimiter) + "]+?"
}
