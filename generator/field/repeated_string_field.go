package field

var (
	repeatedInterfaceTemplate = newTemplate("RepeatedInterface", `
// Get{{.capitalized_name}}List returns a read-only view of the {{.name}} field.
{{.deprecation}}
Get{{.capitalized_name}}List() {{.list_view}}
{{.deprecation}}
Get{{.capitalized_name}}Count() int
{{.deprecation}}
Get{{.capitalized_name}}(index int) {{.type}}
`)

	repeatedFieldsTemplate = newTemplate("RepeatedFields", `
{{.storage_name}} {{.list_type}}
`)

	repeatedListTemplate = newTemplate("RepeatedList", `
// Get{{.capitalized_name}}List returns a read-only view of the {{.name}} field.
{{.deprecation}}
func (x *{{.classname}}) Get{{.capitalized_name}}List() {{.list_view}} {
	if x != nil {
		return {{.field}}.View()
	}
	return {{.empty_list}}.View()
}
`)

	repeatedCountTemplate = newTemplate("RepeatedCount", `
{{.deprecation}}
func (x *{{.classname}}) Get{{.capitalized_name}}Count() int {
	if x != nil {
		return {{.field}}.Len()
	}
	return 0
}
`)

	repeatedGetterTemplate = newTemplate("RepeatedGetter", `
// Get{{.capitalized_name}} returns the element at index. It panics if index is out of range.
{{.deprecation}}
func (x *{{.classname}}) Get{{.capitalized_name}}(index int) {{.type}} {
	return {{.field}}.Get(index)
}
`)

	repeatedSetterTemplate = newTemplate("RepeatedSetter", `
// Set{{.capitalized_name}} replaces the element at index.
{{.deprecation}}
func (x *{{.classname}}) Set{{.capitalized_name}}(index int, value {{.type}}) *{{.classname}} {
	{{.field}} = {{.field}}.Set(index, value)
	{{.on_changed}}
	return x
}
`)

	repeatedAdderTemplate = newTemplate("RepeatedAdder", `
{{.deprecation}}
func (x *{{.classname}}) Add{{.capitalized_name}}(value {{.type}}) *{{.classname}} {
	{{.field}} = {{.field}}.Append(value)
	{{.on_changed}}
	return x
}
`)

	repeatedAddAllTemplate = newTemplate("RepeatedAddAll", `
{{.deprecation}}
func (x *{{.classname}}) AddAll{{.capitalized_name}}(values []{{.type}}) *{{.classname}} {
	{{.field}} = {{.field}}.Append(values...)
	{{.on_changed}}
	return x
}
`)

	repeatedClearerTemplate = newTemplate("RepeatedClearer", `
{{.deprecation}}
func (x *{{.classname}}) Clear{{.capitalized_name}}() *{{.classname}} {
	{{.field}} = {{.empty_list}}
	{{.on_changed}}
	return x
}
`)

	repeatedInitTemplate = newTemplate("RepeatedInit", `
{{.field}} = {{.empty_list}}
`)

	repeatedMergeTemplate = newTemplate("RepeatedMerge", `
if other.Get{{.capitalized_name}}Count() > 0 {
	if {{.field}}.Untouched() {
		{{.field}} = {{.other_field}}.Freeze()
	} else {
		{{.field}} = {{.field}}.AppendList({{.other_field}})
	}
	{{.on_changed}}
}
`)

	repeatedParseTemplate = newTemplate("RepeatedParse", `
s, n, err := {{.read_string}}(b, {{.constant_name}})
if err != nil {
	return err
}
b = b[n:]
if !({{.get_mutable_bit_parser}}) {
	{{.field}} = {{.new_list}}
	{{.set_mutable_bit_parser}}
}
{{.field}} = {{.field}}.Append(s)
`)

	repeatedSerializeTemplate = newTemplate("RepeatedSerialize", `
for i, n := 0, {{.field}}.Len(); i < n; i++ {
	b = {{.append_varint}}(b, {{.tag}})
	b = {{.append_string}}(b, {{.field}}.Raw(i))
}
`)

	repeatedSizeTemplate = newTemplate("RepeatedSize", `
{
	dataSize := 0
	for i, n := 0, {{.field}}.Len(); i < n; i++ {
		dataSize += {{.size_bytes}}(len({{.field}}.Raw(i)))
	}
	size += dataSize
	size += {{.tag_size}} * {{.field}}.Len()
}
`)

	repeatedEqualsTemplate = newTemplate("RepeatedEquals", `
if !{{.field}}.Equal({{.other_field}}) {
	return false
}
`)

	repeatedHashTemplate = newTemplate("RepeatedHash", `
if {{.field}}.Len() > 0 {
	hash = 37*hash + uint64({{.constant_name}})
	hash = 53*hash + {{.field}}.Hash()
}
`)

	repeatedToStringTemplate = newTemplate("RepeatedToString", `
if {{.field}}.Len() > 0 {
	e.FieldStart({{.json_name}})
	e.ArrStart()
	for _, v := range {{.field}}.All() {
		e.Str(v)
	}
	e.ArrEnd()
}
`)
)

// RepeatedStringFieldGenerator emits a repeated string field backed by a
// copy-on-write runtime.StringList. The field's builder bit is the
// parser-local flag recording that Unmarshal allocated an owned list.
type RepeatedStringFieldGenerator struct {
	descriptor *Descriptor
	variables  Variables
}

var _ Generator = (*RepeatedStringFieldGenerator)(nil)

// NewRepeatedStringFieldGenerator binds the variables of a repeated string
// field. builderBitIndex must be non-negative.
func NewRepeatedStringFieldGenerator(d *Descriptor, messageBitIndex, builderBitIndex int, ctx *Context) (*RepeatedStringFieldGenerator, error) {
	vars, err := BindVariables(d, messageBitIndex, builderBitIndex, ctx)
	if err != nil {
		return nil, err
	}
	return &RepeatedStringFieldGenerator{descriptor: d, variables: bindListStorage(vars, ctx)}, nil
}

func (g *RepeatedStringFieldGenerator) Descriptor() *Descriptor { return g.descriptor }

func (g *RepeatedStringFieldGenerator) Variables() Variables { return g.variables.Clone() }

func (g *RepeatedStringFieldGenerator) NumBitsForMessage() int { return 0 }

func (g *RepeatedStringFieldGenerator) NumBitsForBuilder() int { return 1 }

func (g *RepeatedStringFieldGenerator) GoType() string { return "[]string" }

func (g *RepeatedStringFieldGenerator) GenerateInterfaceMembers() (string, error) {
	return render(repeatedInterfaceTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateFields() (string, error) {
	return render(repeatedFieldsTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateMembers() (string, error) {
	var p printer
	p.declarations(g.variables,
		repeatedListTemplate, repeatedCountTemplate, repeatedGetterTemplate, repeatedSetterTemplate,
		repeatedAdderTemplate, repeatedAddAllTemplate, repeatedClearerTemplate)
	return p.output()
}

func (g *RepeatedStringFieldGenerator) GenerateInitializationCode() (string, error) {
	return render(repeatedInitTemplate, g.variables)
}

// GenerateClearCode rebinds the shared empty list, same as initialization.
func (g *RepeatedStringFieldGenerator) GenerateClearCode() (string, error) {
	return render(repeatedInitTemplate, g.variables)
}

// GenerateMergingCode adopts the source list by reference when the target
// is untouched and appends otherwise. Adoption freezes the source so
// neither message mutates the shared storage in place.
func (g *RepeatedStringFieldGenerator) GenerateMergingCode() (string, error) {
	return render(repeatedMergeTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateParsingCode() (string, error) {
	return render(repeatedParseTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateParsingDoneCode() (string, error) {
	return "", nil
}

func (g *RepeatedStringFieldGenerator) GenerateSerializationCode() (string, error) {
	return render(repeatedSerializeTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateSerializedSizeCode() (string, error) {
	return render(repeatedSizeTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateEqualsCode() (string, error) {
	return render(repeatedEqualsTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateHashCode() (string, error) {
	return render(repeatedHashTemplate, g.variables)
}

func (g *RepeatedStringFieldGenerator) GenerateToStringCode() (string, error) {
	return render(repeatedToStringTemplate, g.variables)
}
