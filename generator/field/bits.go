package field

import "fmt"

// Receiver is the receiver name of every generated method.
const Receiver = "x"

// BitVectors names the packed uint32 bit vectors that generated code keeps
// presence flags in. A global bit index selects word index/32 and mask
// 1<<(index%32) inside the vector.
type BitVectors struct {
	// Message is the word prefix of the message vector, "bitField" gives bitField0_.
	Message string
	// Builder is the word prefix of the builder vector.
	Builder string
	// Parser is the word prefix of the parser-local vector declared by Unmarshal.
	Parser string
}

// DefaultBitVectors shares one vector between message and builder bits,
// since generated messages double as their own builders.
func DefaultBitVectors() BitVectors {
	return BitVectors{
		Message: "bitField",
		Builder: "bitField",
		Parser:  "mutable_bitField",
	}
}

// WordName returns the identifier of the word holding bit index.
func WordName(prefix string, index int) string {
	return fmt.Sprintf("%s%d_", prefix, index/32)
}

// WordCount returns how many words hold bits [0, bits).
func WordCount(bits int) int {
	return (bits + 31) / 32
}

func bitMask(index int) string {
	return fmt.Sprintf("0x%08x", uint32(1)<<(index%32))
}

func (v BitVectors) member(prefix string, index int) string {
	return Receiver + "." + WordName(prefix, index)
}

// GetBit returns an expression reporting whether the message bit is set.
func (v BitVectors) GetBit(index int) string {
	return fmt.Sprintf("%s&%s != 0", v.member(v.Message, index), bitMask(index))
}

// SetBit returns a statement setting the message bit.
func (v BitVectors) SetBit(index int) string {
	return fmt.Sprintf("%s |= %s", v.member(v.Message, index), bitMask(index))
}

// GetBuilderBit returns an expression reporting whether the builder bit is set.
func (v BitVectors) GetBuilderBit(index int) string {
	return fmt.Sprintf("%s&%s != 0", v.member(v.Builder, index), bitMask(index))
}

// SetBuilderBit returns a statement setting the builder bit.
func (v BitVectors) SetBuilderBit(index int) string {
	return fmt.Sprintf("%s |= %s", v.member(v.Builder, index), bitMask(index))
}

// ClearBuilderBit returns a statement clearing the builder bit.
func (v BitVectors) ClearBuilderBit(index int) string {
	return fmt.Sprintf("%s &^= %s", v.member(v.Builder, index), bitMask(index))
}

// GetParserBit returns an expression over the parser-local vector.
func (v BitVectors) GetParserBit(index int) string {
	return fmt.Sprintf("%s&%s != 0", WordName(v.Parser, index), bitMask(index))
}

// SetParserBit returns a statement setting a parser-local bit.
func (v BitVectors) SetParserBit(index int) string {
	return fmt.Sprintf("%s |= %s", WordName(v.Parser, index), bitMask(index))
}
