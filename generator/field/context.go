package field

import (
	"github.com/go-faster/errors"
	"github.com/iancoleman/strcase"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMissingInfo is returned when the context has no naming info for a field or oneof.
var ErrMissingInfo = errors.New("missing generator info")

// NameResolver qualifies Go identifiers in the file being generated.
// *protogen.GeneratedFile satisfies it.
type NameResolver interface {
	QualifiedGoIdent(ident protogen.GoIdent) string
}

// FieldInfo carries the per-field names derived by the driver.
type FieldInfo struct {
	// CapitalizedName is the accessor stem: GetName, SetName.
	CapitalizedName string
	// ConstantName is the declared field number constant.
	ConstantName string
	// StorageName is the struct field holding the value.
	StorageName string
}

// OneofInfo identifies the shared slot and discriminator of a oneof group.
type OneofInfo struct {
	CapitalizedName string
	// StorageName is the struct field of type any shared by all members.
	StorageName string
	// CaseField is the struct field holding the discriminator.
	CaseField string
	// CaseType is the Go type of the discriminator.
	CaseType string
	// NotSetCase is the discriminator value selecting no member.
	NotSetCase string
}

// CaseConst returns the discriminator constant selecting a member field.
func (o *OneofInfo) CaseConst(field *FieldInfo) string {
	return o.CaseType + "_" + field.CapitalizedName
}

// Context is everything a field generator needs besides its descriptor.
type Context struct {
	// ClassName is the Go type of the enclosing message.
	ClassName string
	Resolver  NameResolver
	Bits      BitVectors

	fields map[protowire.Number]*FieldInfo
	oneofs map[string]*OneofInfo
}

// NewContext returns an empty context for the message type className.
func NewContext(className string, resolver NameResolver) *Context {
	return &Context{
		ClassName: className,
		Resolver:  resolver,
		Bits:      DefaultBitVectors(),
		fields:    make(map[protowire.Number]*FieldInfo),
		oneofs:    make(map[string]*OneofInfo),
	}
}

// AddField registers naming info for the field number.
func (c *Context) AddField(num protowire.Number, info *FieldInfo) {
	c.fields[num] = info
}

// AddOneof registers a oneof group under its declared name.
func (c *Context) AddOneof(name string, info *OneofInfo) {
	c.oneofs[name] = info
}

// FieldInfo returns the naming info of a field.
func (c *Context) FieldInfo(d *Descriptor) (*FieldInfo, error) {
	info, ok := c.fields[d.Number]
	if !ok || info == nil {
		return nil, errors.Wrapf(ErrMissingInfo, "%s: field %q (%d)", c.ClassName, d.Name, d.Number)
	}
	return info, nil
}

// OneofInfo returns the info of the oneof group the field belongs to.
func (c *Context) OneofInfo(d *Descriptor) (*OneofInfo, error) {
	info, ok := c.oneofs[d.Oneof]
	if !ok || info == nil {
		return nil, errors.Wrapf(ErrMissingInfo, "%s: oneof %q of field %q", c.ClassName, d.Oneof, d.Name)
	}
	return info, nil
}

// DefaultFieldInfo derives field names from the declared name when no
// protogen names are available.
func DefaultFieldInfo(className string, d *Descriptor) *FieldInfo {
	capitalized := strcase.ToCamel(d.Name)
	return &FieldInfo{
		CapitalizedName: capitalized,
		ConstantName:    className + capitalized + "FieldNumber",
		StorageName:     strcase.ToLowerCamel(d.Name) + "_",
	}
}

// DefaultOneofInfo derives oneof names from the declared group name.
func DefaultOneofInfo(className, oneof string) *OneofInfo {
	capitalized := strcase.ToCamel(oneof)
	caseType := className + "_" + capitalized + "Case"
	return &OneofInfo{
		CapitalizedName: capitalized,
		StorageName:     strcase.ToLowerCamel(oneof) + "_",
		CaseField:       strcase.ToLowerCamel(oneof) + "Case_",
		CaseType:        caseType,
		NotSetCase:      caseType + "_NotSet",
	}
}
