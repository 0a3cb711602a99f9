package field

import (
	"maps"
	"strconv"

	"github.com/go-faster/errors"
	"google.golang.org/protobuf/compiler/protogen"
	"google.golang.org/protobuf/encoding/protowire"
)

// ErrMissingBitIndex is returned when a field needs a presence or ownership
// bit and the driver did not allocate one.
var ErrMissingBitIndex = errors.New("missing bit index")

const (
	RuntimePackage   = protogen.GoImportPath("github.com/yaroher/protoc-gen-go-leo/runtime")
	ProtowirePackage = protogen.GoImportPath("google.golang.org/protobuf/encoding/protowire")
	AtomicPackage    = protogen.GoImportPath("sync/atomic")
	JxPackage        = protogen.GoImportPath("github.com/go-faster/jx")
)

// Variables maps placeholder names to Go source text. A generator builds
// its Variables once and never modifies them afterwards.
type Variables map[string]string

// Clone returns a copy that can be extended without touching v.
func (v Variables) Clone() Variables {
	return maps.Clone(v)
}

// Tag returns the wire tag of a length-delimited field.
func Tag(num protowire.Number) uint64 {
	return protowire.EncodeTag(num, protowire.BytesType)
}

// TagSize returns the encoded length of the wire tag.
func TagSize(num protowire.Number) int {
	return protowire.SizeVarint(Tag(num))
}

// BindVariables builds the substitution table of a string field.
func BindVariables(d *Descriptor, messageBitIndex, builderBitIndex int, ctx *Context) (Variables, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if ctx == nil || ctx.Resolver == nil {
		return nil, errors.Wrapf(ErrMissingInfo, "field %q: nil context", d.Name)
	}
	info, err := ctx.FieldInfo(d)
	if err != nil {
		return nil, err
	}
	bits := ctx.Bits
	usesPresenceBits := d.HasPresence && !d.Repeated && !d.InOneof()
	if usesPresenceBits && (messageBitIndex < 0 || builderBitIndex < 0) {
		return nil, errors.Wrapf(ErrMissingBitIndex, "field %q: presence bits %d/%d", d.Name, messageBitIndex, builderBitIndex)
	}
	if d.Repeated && builderBitIndex < 0 {
		return nil, errors.Wrapf(ErrMissingBitIndex, "field %q: list ownership bit %d", d.Name, builderBitIndex)
	}

	runtimeIdent := func(name string) string {
		return ctx.Resolver.QualifiedGoIdent(RuntimePackage.Ident(name))
	}
	wireIdent := func(name string) string {
		return ctx.Resolver.QualifiedGoIdent(ProtowirePackage.Ident(name))
	}

	recv := Receiver
	tag := Tag(d.Number)
	vars := Variables{
		"name":             d.Name,
		"storage_name":     info.StorageName,
		"field":            recv + "." + info.StorageName,
		"other_field":      "other." + info.StorageName,
		"capitalized_name": info.CapitalizedName,
		"constant_name":    info.ConstantName,
		"number":           strconv.Itoa(int(d.Number)),
		"classname":        ctx.ClassName,
		"type":             "string",
		"default":          `""`,
		"unset":            "nil",
		"json_name":        strconv.Quote(jsonName(d)),
		"on_changed":       recv + ".OnChanged(" + info.ConstantName + ")",
		"tag":              strconv.FormatUint(tag, 10),
		"tag_size":         strconv.Itoa(protowire.SizeVarint(tag)),
		"append_varint":    wireIdent("AppendVarint"),
		"append_string":    wireIdent("AppendString"),
		"size_bytes":       wireIdent("SizeBytes"),
		"hash_string":      runtimeIdent("HashString"),
		"deprecation":      "",
	}
	if d.Deprecated {
		vars["deprecation"] = "//\n// Deprecated: Marked as deprecated in the proto file."
	}
	if d.EnforceUTF8 {
		vars["read_string"] = runtimeIdent("ReadStringRequireUTF8")
	} else {
		vars["read_string"] = runtimeIdent("ReadString")
	}

	if usesPresenceBits {
		vars["get_has_field_bit_message"] = bits.GetBit(messageBitIndex)
		vars["get_has_field_bit_builder"] = bits.GetBuilderBit(builderBitIndex)
		vars["set_has_field_bit_message"] = bits.SetBit(messageBitIndex)
		vars["set_has_field_bit_builder"] = bits.SetBuilderBit(builderBitIndex)
		vars["clear_has_field_bit_builder"] = bits.ClearBuilderBit(builderBitIndex)
		vars["is_field_present_message"] = bits.GetBit(messageBitIndex)
	} else {
		vars["get_has_field_bit_message"] = ""
		vars["get_has_field_bit_builder"] = ""
		vars["set_has_field_bit_message"] = ""
		vars["set_has_field_bit_builder"] = ""
		vars["clear_has_field_bit_builder"] = ""
		vars["is_field_present_message"] = recv + ".Get" + info.CapitalizedName + `() != ""`
	}

	// Repeated fields use their builder bit as the parser-local
	// "list is owned" flag.
	if d.Repeated {
		vars["get_mutable_bit_parser"] = bits.GetParserBit(builderBitIndex)
		vars["set_mutable_bit_parser"] = bits.SetParserBit(builderBitIndex)
	} else {
		vars["get_mutable_bit_parser"] = ""
		vars["set_mutable_bit_parser"] = ""
	}
	return vars, nil
}

// Storage identifiers are bound by the variant that declares the storage:
// qualifying an identifier imports its package, and a file must not import
// sync/atomic unless some field stores a singular string.

// bindSingularStorage extends vars with the singular storage type.
func bindSingularStorage(vars Variables, ctx *Context) Variables {
	out := vars.Clone()
	out["atomic_string"] = ctx.Resolver.QualifiedGoIdent(AtomicPackage.Ident("Pointer")) + "[string]"
	return out
}

// bindListStorage extends vars with the list constructors and types.
func bindListStorage(vars Variables, ctx *Context) Variables {
	runtimeIdent := func(name string) string {
		return ctx.Resolver.QualifiedGoIdent(RuntimePackage.Ident(name))
	}
	out := vars.Clone()
	out["empty_list"] = runtimeIdent("EmptyStringList") + "()"
	out["new_list"] = runtimeIdent("NewStringList") + "()"
	out["list_type"] = "*" + runtimeIdent("StringList")
	out["list_view"] = runtimeIdent("StringView")
	return out
}

// bindOneofVariables extends vars with the shared slot and discriminator
// expressions of the field's oneof group.
func bindOneofVariables(d *Descriptor, vars Variables, ctx *Context) (Variables, error) {
	info, err := ctx.FieldInfo(d)
	if err != nil {
		return nil, err
	}
	oneof, err := ctx.OneofInfo(d)
	if err != nil {
		return nil, err
	}
	recv := Receiver
	caseConst := oneof.CaseConst(info)
	out := vars.Clone()
	out["oneof_storage_name"] = oneof.StorageName
	out["oneof_case_field"] = oneof.CaseField
	out["oneof_name"] = recv + "." + oneof.StorageName
	out["other_oneof_name"] = "other." + oneof.StorageName
	out["oneof_capitalized_name"] = oneof.CapitalizedName
	out["oneof_case"] = caseConst
	out["has_oneof_case_message"] = recv + "." + oneof.CaseField + " == " + caseConst
	out["set_oneof_case_message"] = recv + "." + oneof.CaseField + " = " + caseConst
	out["clear_oneof_case_message"] = recv + "." + oneof.CaseField + " = " + oneof.NotSetCase
	out["is_field_present_message"] = out["has_oneof_case_message"]
	return out, nil
}

func jsonName(d *Descriptor) string {
	if d.JSONName != "" {
		return d.JSONName
	}
	return d.Name
}
