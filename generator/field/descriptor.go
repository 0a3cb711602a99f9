package field

import (
	"github.com/go-faster/errors"
	"google.golang.org/protobuf/encoding/protowire"
	"google.golang.org/protobuf/reflect/protoreflect"
	"google.golang.org/protobuf/types/descriptorpb"
)

var (
	// ErrInvalidDescriptor reports descriptor metadata a generator cannot work from.
	ErrInvalidDescriptor = errors.New("invalid field descriptor")

	// ErrUnsupportedKind is returned for fields that are not of string kind.
	ErrUnsupportedKind = errors.New("unsupported field kind")

	// ErrUnknownPhase is returned by Emit for an unrecognized phase name.
	ErrUnknownPhase = errors.New("unknown emission phase")
)

// Descriptor is the field metadata consumed by the string field generators.
type Descriptor struct {
	Number      protowire.Number `yaml:"number"`
	Name        string           `yaml:"name"`
	JSONName    string           `yaml:"json_name,omitempty"`
	Repeated    bool             `yaml:"repeated,omitempty"`
	Oneof       string           `yaml:"oneof,omitempty"`
	Deprecated  bool             `yaml:"deprecated,omitempty"`
	EnforceUTF8 bool             `yaml:"enforce_utf8,omitempty"`
	HasPresence bool             `yaml:"presence,omitempty"`
}

// InOneof reports whether the field belongs to a real oneof group.
func (d *Descriptor) InOneof() bool {
	return d.Oneof != ""
}

// Validate checks the metadata every generator depends on.
func (d *Descriptor) Validate() error {
	if d == nil {
		return errors.Wrap(ErrInvalidDescriptor, "nil descriptor")
	}
	if d.Name == "" {
		return errors.Wrapf(ErrInvalidDescriptor, "field %d: empty name", d.Number)
	}
	if d.Number <= 0 || d.Number > protowire.MaxValidNumber {
		return errors.Wrapf(ErrInvalidDescriptor, "field %q: number %d out of range", d.Name, d.Number)
	}
	if d.Repeated && d.InOneof() {
		return errors.Wrapf(ErrInvalidDescriptor, "field %q: repeated field inside oneof %q", d.Name, d.Oneof)
	}
	return nil
}

// DescriptorFromProto converts a string field descriptor.
func DescriptorFromProto(fd protoreflect.FieldDescriptor) (*Descriptor, error) {
	if fd.Kind() != protoreflect.StringKind {
		return nil, errors.Wrapf(ErrUnsupportedKind, "%s: %s", fd.FullName(), fd.Kind())
	}
	if fd.IsMap() {
		return nil, errors.Wrapf(ErrUnsupportedKind, "%s: map", fd.FullName())
	}
	d := &Descriptor{
		Number:      fd.Number(),
		Name:        string(fd.Name()),
		JSONName:    fd.JSONName(),
		Repeated:    fd.IsList(),
		HasPresence: fd.HasPresence(),
		EnforceUTF8: enforceUTF8(fd),
	}
	if od := fd.ContainingOneof(); od != nil && !od.IsSynthetic() {
		d.Oneof = string(od.Name())
	}
	if opts, ok := fd.Options().(*descriptorpb.FieldOptions); ok && opts != nil {
		d.Deprecated = opts.GetDeprecated()
	}
	return d, d.Validate()
}

func enforceUTF8(fd protoreflect.FieldDescriptor) bool {
	file := fd.ParentFile()
	if file == nil {
		return false
	}
	switch file.Syntax() {
	case protoreflect.Proto3:
		return true
	case protoreflect.Editions:
	default:
		return false
	}
	// The closest explicit feature wins; edition 2023 verifies by default.
	var features []*descriptorpb.FeatureSet
	if opts, ok := fd.Options().(*descriptorpb.FieldOptions); ok {
		features = append(features, opts.GetFeatures())
	}
	for parent := fd.Parent(); parent != nil; parent = parent.Parent() {
		switch opts := parent.Options().(type) {
		case *descriptorpb.MessageOptions:
			features = append(features, opts.GetFeatures())
		case *descriptorpb.FileOptions:
			features = append(features, opts.GetFeatures())
		}
	}
	for _, fs := range features {
		switch fs.GetUtf8Validation() {
		case descriptorpb.FeatureSet_VERIFY:
			return true
		case descriptorpb.FeatureSet_NONE:
			return false
		}
	}
	return true
}
