// Package field emits the Go fragments that store, access, merge, parse,
// serialize, size, compare, hash and render string fields of a generated
// message.
//
// Fragments follow fixed conventions shared with the message driver: the
// receiver is x, the merge source is other, Unmarshal consumes b and
// Marshal appends to b, Size accumulates into size (int), Hash into hash
// (uint64), MarshalJX writes to e (*jx.Encoder).
package field

// Generator answers emission requests for one field. Every method is
// idempotent and returns either a complete fragment or an error.
type Generator interface {
	Descriptor() *Descriptor
	Variables() Variables

	// NumBitsForMessage and NumBitsForBuilder report how many bits the
	// field consumes from the message and builder bit vectors.
	NumBitsForMessage() int
	NumBitsForBuilder() int
	GoType() string

	GenerateInterfaceMembers() (string, error)
	// GenerateFields emits the struct fields; GenerateMembers the methods.
	GenerateFields() (string, error)
	GenerateMembers() (string, error)
	GenerateInitializationCode() (string, error)
	GenerateClearCode() (string, error)
	GenerateMergingCode() (string, error)
	GenerateParsingCode() (string, error)
	GenerateParsingDoneCode() (string, error)
	GenerateSerializationCode() (string, error)
	GenerateSerializedSizeCode() (string, error)
	GenerateEqualsCode() (string, error)
	GenerateHashCode() (string, error)
	GenerateToStringCode() (string, error)
}

// Phase names an emission request.
type Phase string

const (
	PhaseInterface Phase = "interface"
	PhaseFields    Phase = "fields"
	PhaseMembers   Phase = "members"
	PhaseInit      Phase = "init"
	PhaseClear     Phase = "clear"
	PhaseMerge     Phase = "merge"
	PhaseParse     Phase = "parse"
	PhaseParseDone Phase = "parse_done"
	PhaseSerialize Phase = "serialize"
	PhaseSize      Phase = "size"
	PhaseEquals    Phase = "equals"
	PhaseHash      Phase = "hash"
	PhaseToString  Phase = "to_string"
)

// Phases lists every phase in declaration order.
var Phases = []Phase{
	PhaseInterface, PhaseFields, PhaseMembers, PhaseInit, PhaseClear, PhaseMerge,
	PhaseParse, PhaseParseDone, PhaseSerialize, PhaseSize, PhaseEquals, PhaseHash, PhaseToString,
}

// Emit runs the emission request named by phase.
func Emit(g Generator, phase Phase) (string, error) {
	switch phase {
	case PhaseInterface:
		return g.GenerateInterfaceMembers()
	case PhaseFields:
		return g.GenerateFields()
	case PhaseMembers:
		return g.GenerateMembers()
	case PhaseInit:
		return g.GenerateInitializationCode()
	case PhaseClear:
		return g.GenerateClearCode()
	case PhaseMerge:
		return g.GenerateMergingCode()
	case PhaseParse:
		return g.GenerateParsingCode()
	case PhaseParseDone:
		return g.GenerateParsingDoneCode()
	case PhaseSerialize:
		return g.GenerateSerializationCode()
	case PhaseSize:
		return g.GenerateSerializedSizeCode()
	case PhaseEquals:
		return g.GenerateEqualsCode()
	case PhaseHash:
		return g.GenerateHashCode()
	case PhaseToString:
		return g.GenerateToStringCode()
	}
	return "", ErrUnknownPhase
}

// New selects the generator variant serving d.
func New(d *Descriptor, messageBitIndex, builderBitIndex int, ctx *Context) (Generator, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	switch {
	case d.Repeated:
		return generator(NewRepeatedStringFieldGenerator(d, messageBitIndex, builderBitIndex, ctx))
	case d.InOneof():
		return generator(NewStringOneofFieldGenerator(d, messageBitIndex, builderBitIndex, ctx))
	default:
		return generator(NewStringFieldGenerator(d, messageBitIndex, builderBitIndex, ctx))
	}
}

// generator keeps a typed nil out of the returned interface.
func generator[G Generator](g G, err error) (Generator, error) {
	if err != nil {
		return nil, err
	}
	return g, nil
}
