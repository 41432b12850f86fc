package entity

import "strings"

// Switch fires its triggers when pressed.
type Switch struct {
	Triggers []Trigger
}

// NewSwitch creates a switch firing the given triggers.
func NewSwitch(triggers ...Trigger) *Switch {
	return &Switch{Triggers: triggers}
}

// Key returns the key granted by pressing the switch, or ItemNone.
func (s *Switch) Key() Item {
	return grantedKey(s.Triggers)
}

// String returns the switch as "S(trigger,...)".
func (s *Switch) String() string {
	parts := make([]string, len(s.Triggers))
	for i, t := range s.Triggers {
		parts[i] = t.String()
	}
	return "S(" + strings.Join(parts, ",") + ")"
}
