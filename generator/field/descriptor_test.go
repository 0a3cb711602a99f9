package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/reflect/protodesc"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

func personFile(t *testing.T, syntax string) protoreflect.MessageDescriptor {
	t.Helper()
	str := descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum()
	optional := descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum()
	repeated := descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
	fdp := &descriptorpb.FileDescriptorProto{
		Name:    proto.String("person.proto"),
		Package: proto.String("test"),
		Syntax:  proto.String(syntax),
		MessageType: []*descriptorpb.DescriptorProto{{
			Name: proto.String("Person"),
			Field: []*descriptorpb.FieldDescriptorProto{
				{Name: proto.String("name"), Number: proto.Int32(5), Type: str, Label: optional, JsonName: proto.String("name")},
				{Name: proto.String("tags"), Number: proto.Int32(6), Type: str, Label: repeated, JsonName: proto.String("tags")},
				{Name: proto.String("email"), Number: proto.Int32(7), Type: str, Label: optional, JsonName: proto.String("email"), OneofIndex: proto.Int32(0)},
				{
					Name: proto.String("old_name"), Number: proto.Int32(8), Type: str, Label: optional, JsonName: proto.String("oldName"),
					Options: &descriptorpb.FieldOptions{Deprecated: proto.Bool(true)},
				},
				{Name: proto.String("age"), Number: proto.Int32(9), Type: descriptorpb.FieldDescriptorProto_TYPE_INT32.Enum(), Label: optional, JsonName: proto.String("age")},
			},
			OneofDecl: []*descriptorpb.OneofDescriptorProto{{Name: proto.String("contact")}},
		}},
	}
	fd, err := protodesc.NewFile(fdp, nil)
	require.NoError(t, err)
	return fd.Messages().Get(0)
}

func TestDescriptorFromProto_Proto3(t *testing.T) {
	fields := personFile(t, "proto3").Fields()

	name, err := DescriptorFromProto(fields.ByName("name"))
	require.NoError(t, err)
	assert.Equal(t, &Descriptor{Number: 5, Name: "name", JSONName: "name", EnforceUTF8: true}, name)

	tags, err := DescriptorFromProto(fields.ByName("tags"))
	require.NoError(t, err)
	assert.True(t, tags.Repeated)
	assert.False(t, tags.InOneof())

	email, err := DescriptorFromProto(fields.ByName("email"))
	require.NoError(t, err)
	assert.Equal(t, "contact", email.Oneof)
	assert.True(t, email.HasPresence)

	old, err := DescriptorFromProto(fields.ByName("old_name"))
	require.NoError(t, err)
	assert.True(t, old.Deprecated)

	_, err = DescriptorFromProto(fields.ByName("age"))
	assert.ErrorIs(t, err, ErrUnsupportedKind)
}

func TestDescriptorFromProto_Proto2(t *testing.T) {
	fields := personFile(t, "proto2").Fields()

	name, err := DescriptorFromProto(fields.ByName("name"))
	require.NoError(t, err)
	assert.True(t, name.HasPresence)
	assert.False(t, name.EnforceUTF8)
}
