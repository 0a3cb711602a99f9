package runtime

import (
	"fmt"
	"unicode/utf8"

	"github.com/go-faster/errors"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrInvalidUTF8 is reported for string fields that require valid UTF-8.
var ErrInvalidUTF8 = errors.New("invalid UTF-8")

// DecodeError is returned by generated Unmarshal methods for malformed input.
type DecodeError struct {
	Field protowire.Number
	Err   error
}

func (e *DecodeError) Error() string {
	if e.Field == 0 {
		return fmt.Sprintf("decode: %v", e.Err)
	}
	return fmt.Sprintf("decode field %d: %v", e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// WireError converts a negative protowire length into a DecodeError.
// Truncated input unwraps to io.ErrUnexpectedEOF.
func WireError(field protowire.Number, n int) error {
	return &DecodeError{Field: field, Err: protowire.ParseError(n)}
}

// ReadString consumes one length-delimited value from the head of b and
// returns it with the number of bytes read. The bytes are kept as is.
func ReadString(b []byte, field protowire.Number) (string, int, error) {
	v, n := protowire.ConsumeString(b)
	if n < 0 {
		return "", 0, WireError(field, n)
	}
	return v, n, nil
}

// ReadStringRequireUTF8 is ReadString for fields that reject invalid UTF-8.
func ReadStringRequireUTF8(b []byte, field protowire.Number) (string, int, error) {
	v, n, err := ReadString(b, field)
	if err != nil {
		return "", 0, err
	}
	if !utf8.ValidString(v) {
		return "", 0, &DecodeError{Field: field, Err: ErrInvalidUTF8}
	}
	return v, n, nil
}

// SkipField consumes a field value the message does not know and returns
// the number of bytes read.
func SkipField(b []byte, field protowire.Number, typ protowire.Type) (int, error) {
	n := protowire.ConsumeFieldValue(field, typ, b)
	if n < 0 {
		return 0, WireError(field, n)
	}
	return n, nil
}

// ReadTag consumes a field tag.
func ReadTag(b []byte) (protowire.Number, protowire.Type, int, error) {
	num, typ, n := protowire.ConsumeTag(b)
	if n < 0 {
		return 0, 0, 0, WireError(0, n)
	}
	return num, typ, n, nil
}
