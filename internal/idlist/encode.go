package idlist

import (
	"bytes"
	"encoding/json"
	"strings"
)

// EmptyCanonical is the encoding of an empty list, and the fallback list
// every failure path reports.
const EmptyCanonical = "[]"

const prettyIndent = "  "

// Canonical encodes l on a single line with ", " between elements, e.g.
// ["1", "2", "3"]. The result always decodes back to l.
func (l List) Canonical() (string, error) {
	if len(l) == 0 {
		return EmptyCanonical, nil
	}
	elems, err := l.encodeElements()
	if err != nil {
		return "", err
	}
	return "[" + strings.Join(elems, ", ") + "]", nil
}

// Pretty encodes l with one element per line and two-space indentation.
// An empty list is still "[]". Elements are escaped exactly as in Canonical.
func (l List) Pretty() (string, error) {
	if len(l) == 0 {
		return EmptyCanonical, nil
	}
	elems, err := l.encodeElements()
	if err != nil {
		return "", err
	}
	return "[\n" + prettyIndent + strings.Join(elems, ",\n"+prettyIndent) + "\n]", nil
}

// encodeElements renders every id as a JSON string. Text is kept as written:
// HTML characters are not escaped and no Unicode normalization happens. Only
// invalid UTF-8 is replaced, by the \ufffd escape.
func (l List) encodeElements() ([]string, error) {
	elems := make([]string, len(l))
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	for i, id := range l {
		buf.Reset()
		if err := enc.Encode(id); err != nil {
			return nil, newError(KindUnexpected, "encoding element %d: %w", i, err)
		}
		elems[i] = strings.TrimSuffix(buf.String(), "\n")
	}
	return elems, nil
}
