// Package pathtoregexp tokenizes route templates such as "/users/:id(\d+)?".
//
// A template is made of literal text and parameters:
//
//	Syntax       Meaning
//	:name        named parameter matching one segment
//	:name(re)    named parameter matching the custom pattern re
//	(re)         unnamed parameter matching re
//	*            wildcard matching anything
//
// A named or unnamed parameter may be followed by a modifier: "?" (optional),
// "*" (zero or more) or "+" (one or more). A backslash escapes the next code
// point, which is then literal text.
//
// When the text preceding a parameter ends with the delimiter, the delimiter
// is moved to the parameter's Prefix:
//
//	Parse("/users/:id", Options{})
//	// Literal{"/users"}, Parameter{Name: "id", Prefix: "/", Delimiter: "/", Pattern: "[^/]+?"}
//
// Compiling the tokens to a regular expression is left to the caller.
package pathtoregexp

// Parse splits path into tokens. On failure the error is a *SyntaxError,
// unless it was returned by options.Encoding, and no token is returned.
func Parse(path string, options Options) ([]Token, error) {
	return parsePathString(path, options.withDefaults())
}

// MustParse is like Parse but panics if the path cannot be parsed.
func MustParse(path string, options Options) []Token {
	tokens, err := Parse(path, options)
	if err != nil {
		panic("pathtoregexp: " + err.Error())
	}

	return tokens
}
