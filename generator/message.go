package generator

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/go-faster/errors"
	"github.com/samber/lo"
	"github.com/yaroher/protoc-gen-go-leo/generator/field"
	"google.golang.org/protobuf/compiler/protogen"
)

type fieldModel struct {
	field *protogen.Field
	desc  *field.Descriptor
	info  *field.FieldInfo
	gen   field.Generator
	// bit is the first bit index handed to the generator.
	bit int
}

type oneofModel struct {
	oneof  *protogen.Oneof
	info   *field.OneofInfo
	fields []*fieldModel
}

type messageModel struct {
	msg       *protogen.Message
	className string
	ctx       *field.Context
	fields    []*fieldModel
	oneofs    []*oneofModel
	numBits   int
}

// plainFields returns the fields outside any oneof, in declaration order.
func (m *messageModel) plainFields() []*fieldModel {
	return lo.Filter(m.fields, func(fm *fieldModel, _ int) bool {
		return !fm.desc.InOneof()
	})
}

func (m *messageModel) fieldsByNumber() []*fieldModel {
	return slices.SortedFunc(slices.Values(m.fields), func(a, b *fieldModel) int {
		return cmp.Compare(a.desc.Number, b.desc.Number)
	})
}

// messageWords returns how many struct words hold presence bits. Bits used
// only as parser-local flags do not count.
func (m *messageModel) messageWords() int {
	return field.WordCount(lo.Max(lo.Map(m.fields, func(fm *fieldModel, _ int) int {
		if n := fm.gen.NumBitsForMessage(); n > 0 {
			return fm.bit + n
		}
		return 0
	})))
}

// parserWords returns the parser-local words used by repeated fields.
func (m *messageModel) parserWords() []int {
	return lo.Uniq(lo.FilterMap(m.fields, func(fm *fieldModel, _ int) (int, bool) {
		return fm.bit / 32, fm.desc.Repeated
	}))
}

// messageGen prints one message and keeps the first fragment error.
type messageGen struct {
	*FileGen
	m   *messageModel
	err error
}

func (mg *messageGen) phase(fm *fieldModel, phase field.Phase) {
	if mg.err != nil {
		return
	}
	out, err := field.Emit(fm.gen, phase)
	if err != nil {
		mg.err = errors.Wrapf(err, "%s: %s", fm.field.Desc.FullName(), phase)
		return
	}
	if out != "" {
		mg.P(out)
	}
}

func (mg *messageGen) phaseAll(fields []*fieldModel, phase field.Phase) {
	for _, fm := range fields {
		mg.phase(fm, phase)
	}
}

// oneofSwitch emits phase for each member of o under a switch on the
// discriminator of recv.
func (mg *messageGen) oneofSwitch(o *oneofModel, recv string, phase field.Phase) {
	mg.P("switch ", recv, ".", o.info.CaseField, " {")
	for _, fm := range o.fields {
		mg.P("case ", o.info.CaseConst(fm.info), ":")
		mg.phase(fm, phase)
	}
	mg.P("}")
}

func (fg *FileGen) genMessage(m *messageModel) error {
	mg := &messageGen{FileGen: fg, m: m}
	mg.genConstants()
	mg.genOneofCases()
	mg.genStruct()
	mg.genConstructor()
	mg.genInterface()
	mg.genAccessors()
	mg.genClear()
	mg.genMerge()
	mg.genUnmarshal()
	mg.genMarshal()
	mg.genEqual()
	mg.genHash()
	if fg.g.Settings.JSON {
		mg.genJSON()
	}
	return mg.err
}

func (mg *messageGen) genConstants() {
	if len(mg.m.fields) == 0 {
		return
	}
	number := mg.ident(field.ProtowirePackage, "Number")
	mg.P("// Field numbers of ", mg.m.className, ".")
	mg.P("const (")
	for _, fm := range mg.m.fields {
		mg.P(fm.info.ConstantName, " ", number, " = ", fm.desc.Number)
	}
	mg.P(")")
	mg.P()
}

func (mg *messageGen) genOneofCases() {
	for _, o := range mg.m.oneofs {
		mg.P("// ", o.info.CaseType, " identifies the selected field of the ", o.oneof.Desc.Name(), " oneof.")
		mg.P("type ", o.info.CaseType, " int32")
		mg.P()
		mg.P("const (")
		mg.P(o.info.NotSetCase, " ", o.info.CaseType, " = 0")
		for _, fm := range o.fields {
			mg.P(o.info.CaseConst(fm.info), " ", o.info.CaseType, " = ", fm.desc.Number)
		}
		mg.P(")")
		mg.P()
	}
}

func (mg *messageGen) genStruct() {
	m := mg.m
	bits := m.ctx.Bits
	mg.P(m.msg.Comments.Leading, "type ", m.className, " struct {")
	mg.P(mg.ident(field.RuntimePackage, "Notifier"))
	mg.P()
	for w := range m.messageWords() {
		mg.P(field.WordName(bits.Message, w*32), " uint32")
	}
	mg.phaseAll(m.plainFields(), field.PhaseFields)
	for _, o := range m.oneofs {
		mg.P(o.info.StorageName, " any")
		mg.P(o.info.CaseField, " ", o.info.CaseType)
	}
	mg.P("unknownFields []byte")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genConstructor() {
	m := mg.m
	mg.P("// New", m.className, " returns an empty ", m.className, ".")
	mg.P("func New", m.className, "() *", m.className, " {")
	mg.P("x := &", m.className, "{}")
	mg.phaseAll(m.fields, field.PhaseInit)
	mg.P("return x")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genInterface() {
	m := mg.m
	mg.P("// ", m.className, "OrBuilder is the read side of ", m.className, ".")
	mg.P("type ", m.className, "OrBuilder interface {")
	mg.phaseAll(m.fields, field.PhaseInterface)
	for _, o := range m.oneofs {
		mg.P("Get", o.info.CapitalizedName, "Case() ", o.info.CaseType)
	}
	mg.P("}")
	mg.P()
	mg.P("var _ ", m.className, "OrBuilder = (*", m.className, ")(nil)")
	mg.P()
}

func (mg *messageGen) genAccessors() {
	m := mg.m
	for _, fm := range m.fields {
		mg.phase(fm, field.PhaseMembers)
		mg.P()
	}
	for _, o := range m.oneofs {
		number := mg.ident(field.ProtowirePackage, "Number")
		mg.P("func (x *", m.className, ") Get", o.info.CapitalizedName, "Case() ", o.info.CaseType, " {")
		mg.P("if x == nil {")
		mg.P("return ", o.info.NotSetCase)
		mg.P("}")
		mg.P("return x.", o.info.CaseField)
		mg.P("}")
		mg.P()
		mg.P("// Clear", o.info.CapitalizedName, " unsets whichever ", o.oneof.Desc.Name(), " field is selected.")
		mg.P("func (x *", m.className, ") Clear", o.info.CapitalizedName, "() *", m.className, " {")
		mg.P("if x.", o.info.CaseField, " != ", o.info.NotSetCase, " {")
		mg.P("selected := ", number, "(x.", o.info.CaseField, ")")
		mg.P("x.", o.info.CaseField, " = ", o.info.NotSetCase)
		mg.P("x.", o.info.StorageName, " = nil")
		mg.P("x.OnChanged(selected)")
		mg.P("}")
		mg.P("return x")
		mg.P("}")
		mg.P()
	}
}

func (mg *messageGen) genClear() {
	m := mg.m
	mg.P("// Clear resets every field of x.")
	mg.P("func (x *", m.className, ") Clear() *", m.className, " {")
	mg.phaseAll(m.fields, field.PhaseClear)
	mg.P("x.unknownFields = nil")
	mg.P("return x")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genMerge() {
	m := mg.m
	mg.P("// MergeFrom copies the set fields of other into x. Repeated fields are")
	mg.P("// appended; fields unset in other are left alone.")
	mg.P("func (x *", m.className, ") MergeFrom(other *", m.className, ") *", m.className, " {")
	mg.P("if other == nil {")
	mg.P("return x")
	mg.P("}")
	mg.phaseAll(m.plainFields(), field.PhaseMerge)
	for _, o := range m.oneofs {
		mg.oneofSwitch(o, "other", field.PhaseMerge)
	}
	mg.P("x.unknownFields = append(x.unknownFields, other.unknownFields...)")
	mg.P("return x")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genUnmarshal() {
	m := mg.m
	mg.P("// Unmarshal clears x and parses the wire encoding in b. Fields x does not")
	mg.P("// know are kept and written back by Marshal.")
	mg.P("func (x *", m.className, ") Unmarshal(b []byte) error {")
	mg.P("x.Clear()")
	for _, w := range m.parserWords() {
		mg.P("var ", field.WordName(m.ctx.Bits.Parser, w*32), " uint32")
	}
	mg.P("for len(b) > 0 {")
	mg.P("num, typ, n, err := ", mg.ident(field.RuntimePackage, "ReadTag"), "(b)")
	mg.P("if err != nil {")
	mg.P("return err")
	mg.P("}")
	if len(m.fields) > 0 {
		mg.P("if typ == ", mg.ident(field.ProtowirePackage, "BytesType"), " {")
		mg.P("switch num {")
		for _, fm := range m.fields {
			mg.P("case ", fm.info.ConstantName, ":")
			mg.P("b = b[n:]")
			mg.phase(fm, field.PhaseParse)
			mg.P("continue")
		}
		mg.P("}")
		mg.P("}")
	}
	mg.P("m, err := ", mg.ident(field.RuntimePackage, "SkipField"), "(b[n:], num, typ)")
	mg.P("if err != nil {")
	mg.P("return err")
	mg.P("}")
	mg.P("x.unknownFields = append(x.unknownFields, b[:n+m]...)")
	mg.P("b = b[n+m:]")
	mg.P("}")
	mg.phaseAll(m.fields, field.PhaseParseDone)
	mg.P("return nil")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genMarshal() {
	m := mg.m
	mg.P("// Size returns the length of the wire encoding of x.")
	mg.P("func (x *", m.className, ") Size() int {")
	mg.P("if x == nil {")
	mg.P("return 0")
	mg.P("}")
	mg.P("size := 0")
	mg.phaseAll(m.fields, field.PhaseSize)
	mg.P("size += len(x.unknownFields)")
	mg.P("return size")
	mg.P("}")
	mg.P()
	mg.P("// AppendTo appends the wire encoding of x to b, fields in number order.")
	mg.P("func (x *", m.className, ") AppendTo(b []byte) []byte {")
	mg.P("if x == nil {")
	mg.P("return b")
	mg.P("}")
	mg.phaseAll(m.fieldsByNumber(), field.PhaseSerialize)
	mg.P("b = append(b, x.unknownFields...)")
	mg.P("return b")
	mg.P("}")
	mg.P()
	mg.P("func (x *", m.className, ") Marshal() ([]byte, error) {")
	mg.P("return x.AppendTo(make([]byte, 0, x.Size())), nil")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genEqual() {
	m := mg.m
	mg.P("// Equal reports whether x and other hold the same values.")
	mg.P("func (x *", m.className, ") Equal(other *", m.className, ") bool {")
	mg.P("if x == other {")
	mg.P("return true")
	mg.P("}")
	mg.P("if x == nil || other == nil {")
	mg.P("return false")
	mg.P("}")
	mg.phaseAll(m.plainFields(), field.PhaseEquals)
	for _, o := range m.oneofs {
		mg.P("if x.", o.info.CaseField, " != other.", o.info.CaseField, " {")
		mg.P("return false")
		mg.P("}")
		mg.oneofSwitch(o, "x", field.PhaseEquals)
	}
	mg.P("return ", mg.ident("bytes", "Equal"), "(x.unknownFields, other.unknownFields)")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genHash() {
	m := mg.m
	hashString := mg.ident(field.RuntimePackage, "HashString")
	mg.P("// Hash is consistent with Equal.")
	mg.P("func (x *", m.className, ") Hash() uint64 {")
	mg.P("if x == nil {")
	mg.P("return 0")
	mg.P("}")
	mg.P("var hash uint64 = 41")
	mg.P("hash = 19*hash + ", hashString, "(", strconv.Quote(string(m.msg.Desc.FullName())), ")")
	mg.phaseAll(m.plainFields(), field.PhaseHash)
	for _, o := range m.oneofs {
		mg.oneofSwitch(o, "x", field.PhaseHash)
	}
	mg.P("hash = 29*hash + ", hashString, "(string(x.unknownFields))")
	mg.P("return hash")
	mg.P("}")
	mg.P()
}

func (mg *messageGen) genJSON() {
	m := mg.m
	encoder := mg.ident(field.JxPackage, "Encoder")
	mg.P("// MarshalJX writes the set fields of x as a JSON object.")
	mg.P("func (x *", m.className, ") MarshalJX(e *", encoder, ") error {")
	mg.P("if x == nil {")
	mg.P("e.Null()")
	mg.P("return nil")
	mg.P("}")
	mg.P("e.ObjStart()")
	mg.phaseAll(m.fields, field.PhaseToString)
	mg.P("e.ObjEnd()")
	mg.P("return nil")
	mg.P("}")
	mg.P()
	mg.P("func (x *", m.className, ") String() string {")
	mg.P("var e ", encoder)
	mg.P("_ = x.MarshalJX(&e)")
	mg.P("return e.String()")
	mg.P("}")
	mg.P()
}
