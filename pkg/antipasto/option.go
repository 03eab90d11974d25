package antipasto

// MenuOption is a single entry in a Menu: a label and the action invoked
// when the entry is confirmed. Actions can be any function, including one
// that opens a nested menu:
//
//	nested, _ := antipasto.New(nestedOptions, antipasto.DefaultMenuProps())
//	open := antipasto.NewMenuOption("show nested menu", func() { nested.Show() })
//
// The menu invokes the action by reference, so when ExitOnAction is false
// the same action may fire multiple times and may mutate captured state
// between invocations.
type MenuOption struct {
	Label  string
	Action func()
}

// NewMenuOption creates a menu option. A nil action is replaced with a
// no-op so confirming the option is always safe.
func NewMenuOption(label string, action func()) MenuOption {
	if action == nil {
		action = func() {}
	}
	return MenuOption{Label: label, Action: action}
}

// DefaultMenuOption returns an "exit" entry with a no-op action.
func DefaultMenuOption() MenuOption {
	return NewMenuOption("exit", nil)
}
