package preview

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yaroher/protoc-gen-go-leo/generator/field"
	"go.uber.org/zap"
	"google.golang.org/protobuf/reflect/protodesc"
)

func loadPerson(t *testing.T) *Message {
	t.Helper()
	m, err := LoadFile("testdata/person.yaml")
	require.NoError(t, err)
	return m
}

func TestLoad(t *testing.T) {
	m := loadPerson(t)
	assert.Equal(t, "Person", m.Name)
	assert.Equal(t, "proto3", m.Syntax)
	require.Len(t, m.Fields, 5)
	assert.Equal(t, "nickName", m.Fields[4].JSONName)
	assert.True(t, m.Fields[1].Repeated)
	assert.Equal(t, "contact", m.Fields[2].Oneof)
}

func TestLoad_Defaults(t *testing.T) {
	m, err := Load(strings.NewReader("message: Empty\n"))
	require.NoError(t, err)
	assert.Equal(t, "proto3", m.Syntax)
	assert.Equal(t, "example", m.Package)
	assert.Equal(t, "example.com/example", m.GoPackage)
}

func TestLoad_Errors(t *testing.T) {
	for _, tt := range []struct {
		Name  string
		Input string
	}{
		{Name: "UnknownKey", Input: "message: A\ncolor: red\n"},
		{Name: "UnknownFieldKey", Input: "message: A\nfields:\n  - {name: a, number: 1, kind: int32}\n"},
		{Name: "NoName", Input: "fields: []\n"},
		{Name: "Syntax", Input: "message: A\nsyntax: editions\n"},
		{Name: "DuplicateNumber", Input: "message: A\nfields:\n  - {name: a, number: 1}\n  - {name: b, number: 1}\n"},
		{Name: "RepeatedOneof", Input: "message: A\nfields:\n  - {name: a, number: 1, repeated: true, oneof: o}\n"},
		{Name: "ZeroNumber", Input: "message: A\nfields:\n  - {name: a}\n"},
	} {
		t.Run(tt.Name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.Input))
			assert.Error(t, err)
		})
	}
}

func TestFragments(t *testing.T) {
	fragments, err := loadPerson(t).Fragments()
	require.NoError(t, err)
	require.Len(t, fragments, 5*len(field.Phases))

	code := func(name string, phase field.Phase) string {
		for _, f := range fragments {
			if f.Field.Name == name && f.Phase == phase {
				return f.Code
			}
		}
		t.Fatalf("no fragment %s/%s", name, phase)
		return ""
	}
	bit := func(name string) int {
		for _, f := range fragments {
			if f.Field.Name == name {
				return f.Bit
			}
		}
		return -1
	}

	assert.Equal(t, 0, bit("name"))
	assert.Equal(t, 1, bit("tags"))
	assert.Equal(t, 2, bit("email"))
	assert.Equal(t, 2, bit("nick_name"))

	assert.Contains(t, code("name", field.PhaseMembers), "x.bitField0_&0x00000001 != 0")
	assert.Contains(t, code("name", field.PhaseParse), "runtime.ReadStringRequireUTF8(b, PersonNameFieldNumber)")
	assert.Contains(t, code("tags", field.PhaseParse), "mutable_bitField0_&0x00000002 != 0")
	assert.Contains(t, code("email", field.PhaseMembers), "x.contactCase_ == Person_ContactCase_Email")
	assert.Contains(t, code("nick_name", field.PhaseMembers), "func (x *Person) GetNickName() string")
	assert.Empty(t, code("email", field.PhaseFields))
}

func TestFragments_SelectedPhases(t *testing.T) {
	fragments, err := loadPerson(t).Fragments(field.PhaseSerialize)
	require.NoError(t, err)
	require.Len(t, fragments, 5)

	var buf bytes.Buffer
	require.NoError(t, WriteFragments(&buf, fragments))
	out := buf.String()
	assert.Contains(t, out, "// field name = 5 (bit 0)")
	assert.Contains(t, out, "// field nick_name = 9 (bit 2)")
	assert.Equal(t, 5, strings.Count(out, "// -- serialize"))
}

func TestWriteFragments_Empty(t *testing.T) {
	fragments, err := loadPerson(t).Fragments(field.PhaseParseDone)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteFragments(&buf, fragments))
	assert.Equal(t, 5, strings.Count(buf.String(), "// (empty)"))
}

func TestFileDescriptor(t *testing.T) {
	fd, err := protodesc.NewFile(loadPerson(t).FileDescriptor(), nil)
	require.NoError(t, err)

	msg := fd.Messages().ByName("Person")
	require.NotNil(t, msg)
	name := msg.Fields().ByName("name")
	assert.True(t, name.HasPresence())
	assert.True(t, name.ContainingOneof().IsSynthetic())
	assert.True(t, msg.Fields().ByName("tags").IsList())
	assert.Equal(t, "contact", string(msg.Fields().ByName("phone").ContainingOneof().Name()))
	assert.False(t, msg.Fields().ByName("nick_name").HasPresence())
	assert.Equal(t, 2, msg.Oneofs().Len())
}

func TestGenerate(t *testing.T) {
	content, err := loadPerson(t).Generate("", zap.NewNop())
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "person.pb.leo.go", content, parser.AllErrors)
	require.NoError(t, err, content)

	for _, want := range []string{
		"package person",
		"type Person struct {",
		"func (x *Person) GetNickName() string {",
		"func (x *Person) ClearContact() *Person {",
		"func (x *Person) MarshalJX(e *jx.Encoder) error {",
	} {
		assert.Contains(t, content, want)
	}
}

func TestGenerate_Parameter(t *testing.T) {
	content, err := loadPerson(t).Generate("json=false,suffix=Msg", zap.NewNop())
	require.NoError(t, err)
	assert.Contains(t, content, "type PersonMsg struct {")
	assert.NotContains(t, content, "MarshalJX")

	_, err = loadPerson(t).Generate("json=maybe", zap.NewNop())
	assert.Error(t, err)
}
