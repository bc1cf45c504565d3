// Package semantics describes what a widget tree means to assistive tooling
// and collects that description by walking the tree.
package semantics

// SemanticsRole describes what kind of control a node is.
type SemanticsRole int

const (
	SemanticsRoleNone SemanticsRole = iota
	SemanticsRoleButton
	SemanticsRoleText
	SemanticsRoleGroup
	SemanticsRoleTooltip
)

func (r SemanticsRole) String() string {
	switch r {
	case SemanticsRoleButton:
		return "button"
	case SemanticsRoleText:
		return "text"
	case SemanticsRoleGroup:
		return "group"
	case SemanticsRoleTooltip:
		return "tooltip"
	default:
		return "none"
	}
}

// SemanticsFlag is a bit set of boolean semantic properties.
type SemanticsFlag uint32

const (
	SemanticsIsEnabled SemanticsFlag = 1 << iota
	SemanticsIsFocusable
	SemanticsIsHidden
	SemanticsIsPressed
)

// Has reports whether all bits of flag are set.
func (f SemanticsFlag) Has(flag SemanticsFlag) bool {
	return f&flag == flag
}

// Set returns f with flag added.
func (f SemanticsFlag) Set(flag SemanticsFlag) SemanticsFlag {
	return f | flag
}

// SemanticsConfiguration describes semantic properties of one node.
type SemanticsConfiguration struct {
	Role  SemanticsRole
	Label string
	Value string
	Hint  string
	Flags SemanticsFlag
}

// IsEmpty reports whether the configuration contains any semantic information.
func (c SemanticsConfiguration) IsEmpty() bool {
	return c.Role == SemanticsRoleNone && c.Label == "" && c.Value == "" && c.Hint == "" && c.Flags == 0
}

// EnsureFocusable marks the configuration as focusable when it has meaningful content.
func (c *SemanticsConfiguration) EnsureFocusable() {
	if c == nil || c.Flags.Has(SemanticsIsHidden) || c.Flags.Has(SemanticsIsFocusable) {
		return
	}
	if c.Label != "" || c.Role == SemanticsRoleButton {
		c.Flags = c.Flags.Set(SemanticsIsFocusable)
	}
}
