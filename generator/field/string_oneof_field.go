package field

var (
	oneofInterfaceTemplate = newTemplate("OneofInterface", `
// Has{{.capitalized_name}} reports whether {{.name}} is the selected {{.oneof_capitalized_name}} case.
{{.deprecation}}
Has{{.capitalized_name}}() bool
// Get{{.capitalized_name}} returns the {{.name}} field, or "" when another case is selected.
{{.deprecation}}
Get{{.capitalized_name}}() {{.type}}
{{.deprecation}}
Set{{.capitalized_name}}(value {{.type}}) *{{.classname}}
`)

	oneofHasTemplate = newTemplate("OneofHas", `
// Has{{.capitalized_name}} reports whether {{.name}} is the selected {{.oneof_capitalized_name}} case.
{{.deprecation}}
func (x *{{.classname}}) Has{{.capitalized_name}}() bool {
	return x != nil && {{.has_oneof_case_message}}
}
`)

	oneofGetterTemplate = newTemplate("OneofGetter", `
{{.deprecation}}
func (x *{{.classname}}) Get{{.capitalized_name}}() {{.type}} {
	if x != nil && {{.has_oneof_case_message}} {
		if v, ok := {{.oneof_name}}.({{.type}}); ok {
			return v
		}
	}
	return {{.default}}
}
`)

	oneofSetterTemplate = newTemplate("OneofSetter", `
// Set{{.capitalized_name}} selects the {{.name}} case and stores value.
{{.deprecation}}
func (x *{{.classname}}) Set{{.capitalized_name}}(value {{.type}}) *{{.classname}} {
	{{.set_oneof_case_message}}
	{{.oneof_name}} = value
	{{.on_changed}}
	return x
}
`)

	oneofClearerTemplate = newTemplate("OneofClearer", `
// Clear{{.capitalized_name}} unsets {{.name}} if it is the selected case.
{{.deprecation}}
func (x *{{.classname}}) Clear{{.capitalized_name}}() *{{.classname}} {
	if {{.has_oneof_case_message}} {
		{{.clear_oneof_case_message}}
		{{.oneof_name}} = {{.unset}}
		{{.on_changed}}
	}
	return x
}
`)

	oneofClearTemplate = newTemplate("OneofClear", `
if {{.has_oneof_case_message}} {
	{{.clear_oneof_case_message}}
	{{.oneof_name}} = {{.unset}}
}
`)

	oneofMergeTemplate = newTemplate("OneofMerge", `
{{.set_oneof_case_message}}
{{.oneof_name}} = {{.other_oneof_name}}
{{.on_changed}}
`)

	oneofParseTemplate = newTemplate("OneofParse", `
s, n, err := {{.read_string}}(b, {{.constant_name}})
if err != nil {
	return err
}
b = b[n:]
{{.set_oneof_case_message}}
{{.oneof_name}} = s
`)
)

// StringOneofFieldGenerator emits a string member of a oneof group. Members
// share the group's any slot; the discriminator carries presence, so the
// field uses no bits. Serialization, size, equality, hash and JSON come
// from the singular generator with presence bound to the discriminator.
type StringOneofFieldGenerator struct {
	*StringFieldGenerator
}

var _ Generator = (*StringOneofFieldGenerator)(nil)

// NewStringOneofFieldGenerator binds the variables of a oneof member. Bit
// indices are ignored.
func NewStringOneofFieldGenerator(d *Descriptor, messageBitIndex, builderBitIndex int, ctx *Context) (*StringOneofFieldGenerator, error) {
	vars, err := BindVariables(d, messageBitIndex, builderBitIndex, ctx)
	if err != nil {
		return nil, err
	}
	vars, err = bindOneofVariables(d, vars, ctx)
	if err != nil {
		return nil, err
	}
	return &StringOneofFieldGenerator{
		StringFieldGenerator: &StringFieldGenerator{descriptor: d, variables: vars},
	}, nil
}

func (g *StringOneofFieldGenerator) NumBitsForMessage() int { return 0 }

func (g *StringOneofFieldGenerator) NumBitsForBuilder() int { return 0 }

func (g *StringOneofFieldGenerator) GenerateInterfaceMembers() (string, error) {
	return render(oneofInterfaceTemplate, g.variables)
}

// GenerateFields is empty: the driver declares the slot once per group.
func (g *StringOneofFieldGenerator) GenerateFields() (string, error) {
	return "", nil
}

func (g *StringOneofFieldGenerator) GenerateMembers() (string, error) {
	var p printer
	p.declarations(g.variables, oneofHasTemplate, oneofGetterTemplate, oneofSetterTemplate, oneofClearerTemplate)
	return p.output()
}

// GenerateInitializationCode is empty: a zero discriminator selects no case.
func (g *StringOneofFieldGenerator) GenerateInitializationCode() (string, error) {
	return "", nil
}

func (g *StringOneofFieldGenerator) GenerateClearCode() (string, error) {
	return render(oneofClearTemplate, g.variables)
}

// GenerateMergingCode adopts the source case unconditionally. The driver
// emits it only under the source discriminator's matching case.
func (g *StringOneofFieldGenerator) GenerateMergingCode() (string, error) {
	return render(oneofMergeTemplate, g.variables)
}

func (g *StringOneofFieldGenerator) GenerateParsingCode() (string, error) {
	return render(oneofParseTemplate, g.variables)
}
