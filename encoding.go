package pathtoregexp

import (
	"strings"

	"github.com/dunglas/whatwg-url/url"
)

// EncodingCallback transforms the text of a literal token before it is stored.
type EncodingCallback func(string) (string, error)

var urlParser = url.NewParser()

// CanonicalizePathname is an EncodingCallback encoding literal text the way
// a URL parser encodes a pathname, e.g. "/foo bar" becomes "/foo%20bar".
// Text that does not start with a slash is canonicalized as a relative piece.
func CanonicalizePathname(value string) (string, error) {
	if value == "" {
		return value, nil
	}

	leadingSlash := value[0] == '/'
	var modifiedValue strings.Builder

	if !leadingSlash {
		modifiedValue.WriteString("/-")
	}

	modifiedValue.WriteString(value)

	dummyURL := urlParser.NewUrl()
	u, err := urlParser.BasicParser(modifiedValue.String(), nil, dummyURL, url.StatePathStart)
	if err != nil {
		return "", err
	}

	result := u.Pathname()

	if !leadingSlash {
		result = result[2:]
	}

	return result, nil
}
