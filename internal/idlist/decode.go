package idlist

import (
	"encoding/json"

	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// List is an ordered sequence of node identifiers. It may be empty.
type List []string

// Decode parses raw as a JSON array of strings.
//
// The returned error, if any, is always an *Error. Empty or whitespace-only
// text is a KindDecode error; the host is expected to substitute its own
// default ("[]") before calling when the input is absent.
func Decode(raw string) (List, error) {
	buf := []byte(raw)

	// ImpliedType walks the whole document, so syntax errors and trailing
	// garbage are caught before we look at the shape.
	ty, err := ctyjson.ImpliedType(buf)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	if !ty.IsTupleType() {
		return nil, newError(KindShape, "%w: got %s", ErrNotArray, describeType(ty))
	}

	for i, ety := range ty.TupleElementTypes() {
		if !ety.Equals(cty.String) {
			return nil, newError(KindUnexpected, "element %d is %s, not a string", i, describeType(ety))
		}
	}

	// The elements are read with encoding/json rather than cty: cty.StringVal
	// normalizes to NFC and ids must survive byte for byte.
	var ids []string
	if err := json.Unmarshal(buf, &ids); err != nil {
		return nil, &Error{Kind: KindUnexpected, Err: err}
	}
	if ids == nil {
		ids = []string{}
	}
	return List(ids), nil
}

// describeType names a JSON-implied cty type the way a user would name the
// JSON value.
func describeType(ty cty.Type) string {
	switch {
	case ty == cty.DynamicPseudoType:
		// ImpliedType reports a bare null as dynamic.
		return "null"
	case ty.IsObjectType():
		return "an object"
	case ty.IsTupleType():
		return "an array"
	default:
		return "a " + ty.FriendlyName()
	}
}
