package help

import (
	"github.com/iancoleman/strcase"
	"google.golang.org/protobuf/compiler/protogen"
)

// WalkMessages calls fn for every message of msgs and their nested
// messages, depth first. Map entries are skipped.
func WalkMessages(msgs []*protogen.Message, fn func(*protogen.Message) error) error {
	for _, msg := range msgs {
		if msg.Desc.IsMapEntry() {
			continue
		}
		if err := fn(msg); err != nil {
			return err
		}
		if err := WalkMessages(msg.Messages, fn); err != nil {
			return err
		}
	}
	return nil
}

// StorageName returns the unexported struct field name for a Go name.
func StorageName(goName string) string {
	return strcase.ToLowerCamel(goName) + "_"
}

func StringOrDefault(s string, d string) string {
	if s != "" {
		return s
	}
	return d
}
