// Package preview renders generator output from a YAML message description,
// without protoc.
package preview

import (
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"github.com/go-faster/errors"
	"github.com/goccy/go-yaml"
	"github.com/iancoleman/strcase"
	"github.com/yaroher/protoc-gen-go-leo/generator"
	"github.com/yaroher/protoc-gen-go-leo/generator/field"
	"github.com/yaroher/protoc-gen-go-leo/internal/help"
	"go.uber.org/zap"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/descriptorpb"
	"google.golang.org/protobuf/types/pluginpb"
)

// Message is a message description:
//
//	syntax: proto3
//	message: Person
//	fields:
//	  - {name: name, number: 5, presence: true}
//	  - {name: tags, number: 6, repeated: true}
//	  - {name: email, number: 7, oneof: contact}
type Message struct {
	Syntax    string              `yaml:"syntax,omitempty"`
	Package   string              `yaml:"package,omitempty"`
	GoPackage string              `yaml:"go_package,omitempty"`
	Name      string              `yaml:"message"`
	Fields    []*field.Descriptor `yaml:"fields"`
}

// Load decodes a description strictly: unknown keys are errors.
func Load(r io.Reader) (*Message, error) {
	m := &Message{}
	if err := yaml.NewDecoder(r, yaml.Strict()).Decode(m); err != nil {
		return nil, errors.Wrap(err, "decode")
	}
	m.Syntax = help.StringOrDefault(m.Syntax, "proto3")
	m.Package = help.StringOrDefault(m.Package, "example")
	m.GoPackage = help.StringOrDefault(m.GoPackage, "example.com/"+m.Package)
	if err := m.validate(); err != nil {
		return nil, err
	}
	return m, nil
}

func LoadFile(name string) (*Message, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	m, err := Load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "load %s", name)
	}
	return m, nil
}

func (m *Message) validate() error {
	if m.Name == "" {
		return errors.New("empty message name")
	}
	switch m.Syntax {
	case "proto2", "proto3":
	default:
		return errors.Errorf("unsupported syntax %q", m.Syntax)
	}
	seen := make(map[protowire.Number]string)
	for _, d := range m.Fields {
		if err := d.Validate(); err != nil {
			return err
		}
		if prev, ok := seen[d.Number]; ok {
			return errors.Errorf("fields %q and %q share number %d", prev, d.Name, d.Number)
		}
		seen[d.Number] = d.Name
		if d.JSONName == "" {
			d.JSONName = strcase.ToLowerCamel(d.Name)
		}
	}
	return nil
}

// importResolver qualifies identifiers by the last element of their import
// path, which is what a generated file does absent collisions.
type importResolver struct{}

func (importResolver) QualifiedGoIdent(ident protogen.GoIdent) string {
	return path.Base(string(ident.GoImportPath)) + "." + ident.GoName
}

// Fragment is the output of one phase for one field.
type Fragment struct {
	Field *field.Descriptor
	Bit   int
	Phase field.Phase
	Code  string
}

// Fragments runs the field generators directly. Bits are assigned the way
// the plugin assigns them.
func (m *Message) Fragments(phases ...field.Phase) ([]Fragment, error) {
	if len(phases) == 0 {
		phases = field.Phases
	}
	ctx := field.NewContext(m.Name, importResolver{})
	for _, d := range m.Fields {
		ctx.AddField(d.Number, field.DefaultFieldInfo(m.Name, d))
		if d.InOneof() {
			ctx.AddOneof(d.Oneof, field.DefaultOneofInfo(m.Name, d.Oneof))
		}
	}
	var (
		out  []Fragment
		bits int
	)
	for _, d := range m.Fields {
		gen, err := field.New(d, bits, bits, ctx)
		if err != nil {
			return nil, err
		}
		for _, phase := range phases {
			code, err := field.Emit(gen, phase)
			if err != nil {
				return nil, errors.Wrapf(err, "%s: %s", d.Name, phase)
			}
			out = append(out, Fragment{Field: d, Bit: bits, Phase: phase, Code: code})
		}
		bits += max(gen.NumBitsForMessage(), gen.NumBitsForBuilder())
	}
	return out, nil
}

// WriteFragments prints fragments grouped by field. Empty fragments are
// listed so every phase is accounted for.
func WriteFragments(w io.Writer, fragments []Fragment) error {
	var last *field.Descriptor
	for _, f := range fragments {
		if f.Field != last {
			if _, err := fmt.Fprintf(w, "// field %s = %d (bit %d)\n", f.Field.Name, f.Field.Number, f.Bit); err != nil {
				return err
			}
			last = f.Field
		}
		code := f.Code
		if code == "" {
			code = "// (empty)\n"
		}
		if _, err := fmt.Fprintf(w, "// -- %s\n%s\n", f.Phase, code); err != nil {
			return err
		}
	}
	return nil
}

// FileDescriptor describes m as a one-message proto file.
func (m *Message) FileDescriptor() *descriptorpb.FileDescriptorProto {
	msg := &descriptorpb.DescriptorProto{Name: proto.String(m.Name)}
	oneofs := make(map[string]int32)
	for _, d := range m.Fields {
		if !d.InOneof() {
			continue
		}
		if _, ok := oneofs[d.Oneof]; !ok {
			oneofs[d.Oneof] = int32(len(msg.OneofDecl))
			msg.OneofDecl = append(msg.OneofDecl, &descriptorpb.OneofDescriptorProto{Name: proto.String(d.Oneof)})
		}
	}
	var synthetic []*descriptorpb.OneofDescriptorProto
	for _, d := range m.Fields {
		fdp := &descriptorpb.FieldDescriptorProto{
			Name:     proto.String(d.Name),
			Number:   proto.Int32(int32(d.Number)),
			Type:     descriptorpb.FieldDescriptorProto_TYPE_STRING.Enum(),
			Label:    descriptorpb.FieldDescriptorProto_LABEL_OPTIONAL.Enum(),
			JsonName: proto.String(d.JSONName),
		}
		if d.Deprecated {
			fdp.Options = &descriptorpb.FieldOptions{Deprecated: proto.Bool(true)}
		}
		switch {
		case d.Repeated:
			fdp.Label = descriptorpb.FieldDescriptorProto_LABEL_REPEATED.Enum()
		case d.InOneof():
			fdp.OneofIndex = proto.Int32(oneofs[d.Oneof])
		case d.HasPresence && m.Syntax == "proto3":
			// Synthetic oneofs follow the real ones.
			fdp.Proto3Optional = proto.Bool(true)
			fdp.OneofIndex = proto.Int32(int32(len(msg.OneofDecl) + len(synthetic)))
			synthetic = append(synthetic, &descriptorpb.OneofDescriptorProto{Name: proto.String("_" + d.Name)})
		}
		msg.Field = append(msg.Field, fdp)
	}
	msg.OneofDecl = append(msg.OneofDecl, synthetic...)
	return &descriptorpb.FileDescriptorProto{
		Name:        proto.String(strings.ToLower(m.Name) + ".proto"),
		Package:     proto.String(m.Package),
		Syntax:      proto.String(m.Syntax),
		Options:     &descriptorpb.FileOptions{GoPackage: proto.String(m.GoPackage)},
		MessageType: []*descriptorpb.DescriptorProto{msg},
	}
}

// Generate runs the plugin over FileDescriptor and returns the generated
// file. parameter is the plugin parameter string.
func (m *Message) Generate(parameter string, log *zap.Logger) (string, error) {
	fdp := m.FileDescriptor()
	plugin, err := protogen.Options{}.New(&pluginpb.CodeGeneratorRequest{
		FileToGenerate: []string{fdp.GetName()},
		Parameter:      proto.String(parameter),
		ProtoFile:      []*descriptorpb.FileDescriptorProto{fdp},
	})
	if err != nil {
		return "", errors.Wrap(err, "plugin")
	}
	g, err := generator.NewGenerator(plugin, generator.WithLogger(log))
	if err != nil {
		return "", err
	}
	if err := g.Generate(); err != nil {
		return "", err
	}
	resp := plugin.Response()
	if resp.Error != nil {
		return "", errors.New(resp.GetError())
	}
	if len(resp.GetFile()) == 0 {
		return "", errors.New("no output")
	}
	return resp.GetFile()[0].GetContent(), nil
}
