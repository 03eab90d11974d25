package antipasto

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// themeFile mirrors MenuProps for TOML decoding. Pointer fields
// distinguish "unset" from explicit zero values so a theme file only
// overrides what it names.
type themeFile struct {
	Title         string `toml:"title"`
	Message       string `toml:"message"`
	ExitOnAction  *bool  `toml:"exit_on_action"`
	BgColor       *uint8 `toml:"bg_color"`
	FgColor       *uint8 `toml:"fg_color"`
	TitleColor    *uint8 `toml:"title_color"`
	SelectedColor *uint8 `toml:"selected_color"`
	MsgColor      *uint8 `toml:"msg_color"`
	ReservedRows  *int   `toml:"reserved_rows"`
}

// LoadMenuProps reads a TOML theme file and returns MenuProps built on
// top of DefaultMenuProps. Fields absent from the file keep their
// defaults.
//
//	title = "My Menu"
//	bg_color = 236
//	selected_color = 220
//	exit_on_action = false
func LoadMenuProps(path string) (MenuProps, error) {
	var tf themeFile
	if _, err := toml.DecodeFile(path, &tf); err != nil {
		return MenuProps{}, fmt.Errorf("load theme %s: %w", path, err)
	}
	return tf.apply(DefaultMenuProps()), nil
}

// ParseMenuProps decodes a TOML theme held in memory. See LoadMenuProps.
func ParseMenuProps(data []byte) (MenuProps, error) {
	var tf themeFile
	if err := toml.Unmarshal(data, &tf); err != nil {
		return MenuProps{}, fmt.Errorf("parse theme: %w", err)
	}
	return tf.apply(DefaultMenuProps()), nil
}

func (tf themeFile) apply(props MenuProps) MenuProps {
	if tf.Title != "" {
		props.Title = tf.Title
	}
	if tf.Message != "" {
		props.Message = tf.Message
	}
	if tf.ExitOnAction != nil {
		props.ExitOnAction = *tf.ExitOnAction
	}
	if tf.BgColor != nil {
		props.BgColor = *tf.BgColor
	}
	if tf.FgColor != nil {
		props.FgColor = *tf.FgColor
	}
	if tf.TitleColor != nil {
		props.TitleColor = tf.TitleColor
	}
	if tf.SelectedColor != nil {
		props.SelectedColor = tf.SelectedColor
	}
	if tf.MsgColor != nil {
		props.MsgColor = tf.MsgColor
	}
	if tf.ReservedRows != nil {
		props.ReservedRows = *tf.ReservedRows
	}
	return props
}
