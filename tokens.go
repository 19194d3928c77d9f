package pathtoregexp

// token is a lexical unit of a path pattern.
type token struct {
	tType tokenType
	index int
	value string
}

type tokenType uint8

const (
	// tokenChar represents a code point without any special syntactical meaning.
	tokenChar tokenType = iota
	// tokenEscapedChar represents a code point escaped using a backslash like "\<char>". Its value is the escaped code point alone.
	tokenEscapedChar
	// tokenName represents a string of the form ":<name>". Its value is the name without the colon.
	tokenName
	// tokenRegexp represents a string of the form "(<pattern>)" with balanced parentheses. Its value is the pattern without the outer parentheses.
	tokenRegexp
	// tokenOtherModifier represents either the U+003F (?) or U+002B (+) code point.
	// It is only a modifier when it directly follows a name or a regexp; anywhere else it is literal text.
	tokenOtherModifier
	// tokenAsterisk represents a U+002A (*) code point that can be either a wildcard or a modifier.
	tokenAsterisk
	// tokenEnd represents the end of the pattern string.
	tokenEnd
)
