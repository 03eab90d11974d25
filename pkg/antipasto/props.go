package antipasto

// Pre-selected 8-bit color values to simplify menu theming. Values from
// 0-15 vary based on individual terminal settings.
const (
	ColorWhite     uint8 = 15
	ColorLightGray uint8 = 7
	ColorGray      uint8 = 8
	ColorBlue      uint8 = 32
	ColorGreen     uint8 = 35
	ColorPurple    uint8 = 99
	ColorRed       uint8 = 160
	ColorOrange    uint8 = 208
	ColorYellow    uint8 = 220
	ColorBlack     uint8 = 233
	ColorDarkGray  uint8 = 236
)

// Color wraps an 8-bit color value for use in the optional override
// fields of MenuProps.
func Color(v uint8) *uint8 {
	return &v
}

// MenuProps stores configuration passed to a Menu on creation. Menus use
// 8-bit colors to ensure widespread terminal support.
//
// Configure a subset of properties starting from the defaults:
//
//	props := antipasto.DefaultMenuProps()
//	props.Title = "My Menu"
//	props.BgColor = antipasto.ColorDarkGray
//
// Props are read once at Menu construction and never mutated afterwards.
type MenuProps struct {
	// Title displays above the list of menu options. Empty means no title.
	Title string
	// Message displays below the list of menu options. Empty means no message.
	Message string
	// ExitOnAction ends the session immediately after a confirmed option's
	// action returns.
	ExitOnAction bool
	// BgColor is the background color for the menu box.
	BgColor uint8
	// FgColor is the foreground (text) color for the menu.
	FgColor uint8
	// TitleColor overrides FgColor for the title line. Nil uses FgColor.
	TitleColor *uint8
	// SelectedColor overrides FgColor for the selected option. Nil uses FgColor.
	SelectedColor *uint8
	// MsgColor overrides FgColor for the footer message. Nil uses FgColor.
	MsgColor *uint8
	// ReservedRows is how many terminal rows are held back from pagination
	// for borders, title, message, and padding. Zero uses
	// DefaultReservedRows. Note the reservation is fixed: it does not grow
	// when both a title and a message are set, so on very small terminals
	// that combination can push options below the visible area.
	ReservedRows int
}

// DefaultReservedRows is the default chrome reservation used by the
// layout when MenuProps.ReservedRows is zero.
const DefaultReservedRows = 6

// DefaultMenuProps returns the default menu configuration: no title or
// message, exit on action, white text on a gray box, light gray footer.
func DefaultMenuProps() MenuProps {
	return MenuProps{
		Title:         "",
		Message:       "",
		ExitOnAction:  true,
		BgColor:       ColorGray,
		FgColor:       ColorWhite,
		TitleColor:    nil,
		SelectedColor: nil,
		MsgColor:      Color(ColorLightGray),
	}
}
