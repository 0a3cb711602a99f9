package runtime

import "google.golang.org/protobuf/encoding/protowire"

// ChangeListener is called after a generated mutator changed a field.
type ChangeListener func(field protowire.Number)

// Notifier is embedded in generated messages and carries their change hook.
// The zero value has no listener.
type Notifier struct {
	listener ChangeListener
}

// SetChangeListener installs fn; nil removes the current listener.
func (n *Notifier) SetChangeListener(fn ChangeListener) {
	n.listener = fn
}

// OnChanged reports a mutation of field to the listener, if any.
func (n *Notifier) OnChanged(field protowire.Number) {
	if n.listener != nil {
		n.listener(field)
	}
}
