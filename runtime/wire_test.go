package runtime

import (
	"io"
	"testing"

	"github.com/go-faster/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protowire"
)

func TestReadString(t *testing.T) {
	b := protowire.AppendString(nil, "abc")
	b = append(b, 0xff)

	v, n, err := ReadString(b, 5)
	require.NoError(t, err)
	assert.Equal(t, "abc", v)
	assert.Equal(t, 4, n)
}

func TestReadString_Truncated(t *testing.T) {
	_, _, err := ReadString([]byte{0x05, 'a'}, 7)
	require.Error(t, err)

	var de *DecodeError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, protowire.Number(7), de.Field)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Contains(t, err.Error(), "field 7")
}

func TestReadStringRequireUTF8(t *testing.T) {
	invalid := protowire.AppendBytes(nil, []byte{0xff, 0xfe})

	t.Run("lenient keeps bytes", func(t *testing.T) {
		v, n, err := ReadString(invalid, 1)
		require.NoError(t, err)
		assert.Equal(t, "\xff\xfe", v)
		assert.Equal(t, 3, n)
	})

	t.Run("strict rejects", func(t *testing.T) {
		_, _, err := ReadStringRequireUTF8(invalid, 1)
		assert.ErrorIs(t, err, ErrInvalidUTF8)
	})

	t.Run("strict accepts valid", func(t *testing.T) {
		v, _, err := ReadStringRequireUTF8(protowire.AppendString(nil, "héllo"), 1)
		require.NoError(t, err)
		assert.Equal(t, "héllo", v)
	})
}

func TestSkipField(t *testing.T) {
	b := protowire.AppendVarint(nil, 300)
	n, err := SkipField(b, 9, protowire.VarintType)
	require.NoError(t, err)
	assert.Equal(t, len(b), n)

	_, err = SkipField([]byte{0x80}, 9, protowire.VarintType)
	assert.Error(t, err)
}

func TestReadTag(t *testing.T) {
	b := protowire.AppendTag(nil, 5, protowire.BytesType)
	num, typ, n, err := ReadTag(b)
	require.NoError(t, err)
	assert.Equal(t, protowire.Number(5), num)
	assert.Equal(t, protowire.BytesType, typ)
	assert.Equal(t, 1, n)
	assert.Equal(t, []byte{0x2a}, b)
}

func TestNotifier(t *testing.T) {
	var n Notifier
	n.OnChanged(1) // no listener

	var got []protowire.Number
	n.SetChangeListener(func(f protowire.Number) { got = append(got, f) })
	n.OnChanged(3)
	n.OnChanged(5)
	assert.Equal(t, []protowire.Number{3, 5}, got)

	n.SetChangeListener(nil)
	n.OnChanged(7)
	assert.Len(t, got, 2)
}

func TestHashString(t *testing.T) {
	assert.Equal(t, HashString("abc"), HashString("abc"))
	assert.NotEqual(t, HashString("abc"), HashString("abd"))
}
