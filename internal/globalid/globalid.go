// Package globalid implements the opaque identifiers used for Relay global
// object identification and connection cursors. Both share the same reversible
// transform (base64 over a "name:value" pair) but live in distinct namespaces:
// a cursor decodes to the reserved cursorNamespace type name, which is never a
// registrable node type, so a cursor can never alias a node id.
package globalid

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// cursorNamespace is the reserved type name under which connection cursors
// are encoded. It mirrors the classic Relay "arrayconnection" namespace.
const cursorNamespace = "arrayconnection"

const separator = ":"

// DecodeError reports an identifier that was not produced by Encode or
// EncodeCursor.
type DecodeError struct {
	Value  string
	Reason string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid id %q: %s", e.Value, e.Reason)
}

// Extensions implements the extension hook of graph-gophers' resolver errors.
func (e *DecodeError) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": "DECODE_ERROR"}
}

// Encode produces the opaque global id for a (typeName, localID) pair.
// typeName must not contain the separator; localID may be any string.
func Encode(typeName, localID string) string {
	return base64.StdEncoding.EncodeToString([]byte(typeName + separator + localID))
}

// Decode reverses Encode. The returned pair is exactly the one given to
// Encode for any typeName free of the separator character.
func Decode(id string) (typeName, localID string, err error) {
	raw, derr := base64.StdEncoding.DecodeString(id)
	if derr != nil {
		return "", "", &DecodeError{Value: id, Reason: "not base64"}
	}
	typeName, localID, ok := strings.Cut(string(raw), separator)
	if !ok {
		return "", "", &DecodeError{Value: id, Reason: "missing separator"}
	}
	if typeName == "" {
		return "", "", &DecodeError{Value: id, Reason: "empty type name"}
	}
	return typeName, localID, nil
}

// IsCursorNamespace reports whether typeName is reserved for cursors.
func IsCursorNamespace(typeName string) bool { return typeName == cursorNamespace }

// EncodeCursor produces the opaque cursor for a position within an in-memory
// sequence.
func EncodeCursor(pos int) string {
	return Encode(cursorNamespace, strconv.Itoa(pos))
}

// DecodeCursor reverses EncodeCursor. Ids from the node namespace, or ones
// whose position is not a decimal integer, fail with DecodeError.
func DecodeCursor(cursor string) (int, error) {
	ns, v, err := Decode(cursor)
	if err != nil {
		return 0, err
	}
	if ns != cursorNamespace {
		return 0, &DecodeError{Value: cursor, Reason: "not a cursor"}
	}
	pos, perr := strconv.Atoi(v)
	if perr != nil {
		return 0, &DecodeError{Value: cursor, Reason: "malformed position"}
	}
	return pos, nil
}
