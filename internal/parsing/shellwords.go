package parsing

import (
	"fmt"

	"github.com/kballard/go-shellquote"
)

// Tokenize splits s into arguments the way a POSIX shell would.
//
// Words are separated by unquoted whitespace. Single quotes preserve everything
// literally, double quotes allow backslash escapes, and an unbalanced quote
// is an error. No variable expansion or globbing is performed.
func Tokenize(s string) ([]string, error) {
	words, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("could not tokenize %q: %w", s, err)
	}
	return words, nil
}

// TokenizeAll tokenizes each entry of raw and concatenates the results in order.
func TokenizeAll(raw []string) ([]string, error) {
	out := make([]string, 0, len(raw)*2)
	for _, r := range raw {
		words, err := Tokenize(r)
		if err != nil {
			return nil, err
		}
		out = append(out, words...)
	}
	return out, nil
}
