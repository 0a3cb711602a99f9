package field

var (
	stringHasInterfaceTemplate = newTemplate("StringHasInterface", `
// Has{{.capitalized_name}} reports whether the {{.name}} field is set.
{{.deprecation}}
Has{{.capitalized_name}}() bool
`)

	stringInterfaceTemplate = newTemplate("StringInterface", `
// Get{{.capitalized_name}} returns the value of the {{.name}} field.
{{.deprecation}}
Get{{.capitalized_name}}() {{.type}}
// Set{{.capitalized_name}} assigns the {{.name}} field.
{{.deprecation}}
Set{{.capitalized_name}}(value {{.type}}) *{{.classname}}
`)

	stringFieldsTemplate = newTemplate("StringFields", `
{{.storage_name}} {{.atomic_string}}
`)

	stringHasTemplate = newTemplate("StringHas", `
// Has{{.capitalized_name}} reports whether the {{.name}} field is set.
{{.deprecation}}
func (x *{{.classname}}) Has{{.capitalized_name}}() bool {
	return x != nil && {{.is_field_present_message}}
}
`)

	stringGetterTemplate = newTemplate("StringGetter", `
{{.deprecation}}
func (x *{{.classname}}) Get{{.capitalized_name}}() {{.type}} {
	if x != nil {
		if v := {{.field}}.Load(); v != {{.unset}} {
			return *v
		}
	}
	return {{.default}}
}
`)

	stringSetterTemplate = newTemplate("StringSetter", `
{{.deprecation}}
func (x *{{.classname}}) Set{{.capitalized_name}}(value {{.type}}) *{{.classname}} {
	{{.set_has_field_bit_builder}}
	if v := {{.field}}.Load(); v == {{.unset}} || *v != value {
		{{.field}}.Store(&value)
		{{.on_changed}}
	}
	return x
}
`)

	stringInitTemplate = newTemplate("StringInit", `
{{.field}}.Store({{.unset}})
`)

	stringClearTemplate = newTemplate("StringClear", `
{{.field}}.Store({{.unset}})
{{.clear_has_field_bit_builder}}
`)

	stringMergePresenceTemplate = newTemplate("StringMergePresence", `
if other.Has{{.capitalized_name}}() {
	{{.set_has_field_bit_builder}}
	{{.field}}.Store({{.other_field}}.Load())
	{{.on_changed}}
}
`)

	stringMergeTemplate = newTemplate("StringMerge", `
if other.Get{{.capitalized_name}}() != {{.default}} {
	{{.field}}.Store({{.other_field}}.Load())
	{{.on_changed}}
}
`)

	stringParseTemplate = newTemplate("StringParse", `
s, n, err := {{.read_string}}(b, {{.constant_name}})
if err != nil {
	return err
}
b = b[n:]
{{.set_has_field_bit_message}}
{{.field}}.Store(&s)
`)

	stringSerializeTemplate = newTemplate("StringSerialize", `
if {{.is_field_present_message}} {
	b = {{.append_varint}}(b, {{.tag}})
	b = {{.append_string}}(b, x.Get{{.capitalized_name}}())
}
`)

	stringSizeTemplate = newTemplate("StringSize", `
if {{.is_field_present_message}} {
	size += {{.tag_size}} + {{.size_bytes}}(len(x.Get{{.capitalized_name}}()))
}
`)

	stringEqualsTemplate = newTemplate("StringEquals", `
if x.Get{{.capitalized_name}}() != other.Get{{.capitalized_name}}() {
	return false
}
`)

	stringHashTemplate = newTemplate("StringHash", `
hash = 37*hash + uint64({{.constant_name}})
hash = 53*hash + {{.hash_string}}(x.Get{{.capitalized_name}}())
`)

	stringToStringTemplate = newTemplate("StringToString", `
if {{.is_field_present_message}} {
	e.FieldStart({{.json_name}})
	e.Str(x.Get{{.capitalized_name}}())
}
`)
)

// StringFieldGenerator emits a singular string field. With presence the
// field owns one bit that serves as both message and builder bit; without
// presence a non-empty value counts as set.
type StringFieldGenerator struct {
	descriptor *Descriptor
	variables  Variables
}

var _ Generator = (*StringFieldGenerator)(nil)

// NewStringFieldGenerator binds the variables of a singular string field.
func NewStringFieldGenerator(d *Descriptor, messageBitIndex, builderBitIndex int, ctx *Context) (*StringFieldGenerator, error) {
	vars, err := BindVariables(d, messageBitIndex, builderBitIndex, ctx)
	if err != nil {
		return nil, err
	}
	return &StringFieldGenerator{descriptor: d, variables: bindSingularStorage(vars, ctx)}, nil
}

func (g *StringFieldGenerator) Descriptor() *Descriptor { return g.descriptor }

// Variables returns a copy of the bound variables.
func (g *StringFieldGenerator) Variables() Variables { return g.variables.Clone() }

func (g *StringFieldGenerator) NumBitsForMessage() int {
	if g.descriptor.HasPresence {
		return 1
	}
	return 0
}

func (g *StringFieldGenerator) NumBitsForBuilder() int {
	return g.NumBitsForMessage()
}

func (g *StringFieldGenerator) GoType() string { return "string" }

func (g *StringFieldGenerator) GenerateInterfaceMembers() (string, error) {
	var p printer
	if g.descriptor.HasPresence {
		p.print(stringHasInterfaceTemplate, g.variables)
	}
	p.print(stringInterfaceTemplate, g.variables)
	return p.output()
}

func (g *StringFieldGenerator) GenerateFields() (string, error) {
	return render(stringFieldsTemplate, g.variables)
}

// GenerateMembers emits HasX in both presence modes so callers can test a
// field without knowing how its file declares presence.
func (g *StringFieldGenerator) GenerateMembers() (string, error) {
	var p printer
	p.declarations(g.variables, stringHasTemplate, stringGetterTemplate, stringSetterTemplate)
	return p.output()
}

func (g *StringFieldGenerator) GenerateInitializationCode() (string, error) {
	return render(stringInitTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateClearCode() (string, error) {
	return render(stringClearTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateMergingCode() (string, error) {
	if g.descriptor.HasPresence {
		return render(stringMergePresenceTemplate, g.variables)
	}
	return render(stringMergeTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateParsingCode() (string, error) {
	return render(stringParseTemplate, g.variables)
}

// GenerateParsingDoneCode is empty: parsed strings are stored as they arrive.
func (g *StringFieldGenerator) GenerateParsingDoneCode() (string, error) {
	return "", nil
}

func (g *StringFieldGenerator) GenerateSerializationCode() (string, error) {
	return render(stringSerializeTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateSerializedSizeCode() (string, error) {
	return render(stringSizeTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateEqualsCode() (string, error) {
	return render(stringEqualsTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateHashCode() (string, error) {
	return render(stringHashTemplate, g.variables)
}

func (g *StringFieldGenerator) GenerateToStringCode() (string, error) {
	return render(stringToStringTemplate, g.variables)
}
