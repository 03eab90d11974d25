package antipasto

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseMenuPropsOverrides(t *testing.T) {
	props, err := ParseMenuProps([]byte(`
title = "Settings"
message = "press q to go back"
exit_on_action = false
bg_color = 236
selected_color = 220
reserved_rows = 8
`))
	if err != nil {
		t.Fatalf("ParseMenuProps: %v", err)
	}

	if props.Title != "Settings" {
		t.Errorf("Title = %q", props.Title)
	}
	if props.Message != "press q to go back" {
		t.Errorf("Message = %q", props.Message)
	}
	if props.ExitOnAction {
		t.Error("ExitOnAction not overridden to false")
	}
	if props.BgColor != 236 {
		t.Errorf("BgColor = %d, want 236", props.BgColor)
	}
	if props.SelectedColor == nil || *props.SelectedColor != 220 {
		t.Errorf("SelectedColor = %v, want 220", props.SelectedColor)
	}
	if props.ReservedRows != 8 {
		t.Errorf("ReservedRows = %d, want 8", props.ReservedRows)
	}

	// Unnamed fields keep their defaults.
	if props.FgColor != ColorWhite {
		t.Errorf("FgColor = %d, want default %d", props.FgColor, ColorWhite)
	}
	if props.MsgColor == nil || *props.MsgColor != ColorLightGray {
		t.Errorf("MsgColor = %v, want default %d", props.MsgColor, ColorLightGray)
	}
}

func TestParseMenuPropsEmptyKeepsDefaults(t *testing.T) {
	props, err := ParseMenuProps(nil)
	if err != nil {
		t.Fatalf("ParseMenuProps: %v", err)
	}
	want := DefaultMenuProps()
	if props.Title != want.Title || props.BgColor != want.BgColor ||
		props.FgColor != want.FgColor || props.ExitOnAction != want.ExitOnAction {
		t.Errorf("empty theme changed defaults: %+v", props)
	}
}

func TestParseMenuPropsRejectsMalformedTOML(t *testing.T) {
	if _, err := ParseMenuProps([]byte(`bg_color = "not a color"`)); err == nil {
		t.Error("malformed theme parsed without error")
	}
}

func TestLoadMenuPropsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "theme.toml")
	if err := os.WriteFile(path, []byte("title = \"From Disk\"\nfg_color = 220\n"), 0644); err != nil {
		t.Fatal(err)
	}

	props, err := LoadMenuProps(path)
	if err != nil {
		t.Fatalf("LoadMenuProps: %v", err)
	}
	if props.Title != "From Disk" || props.FgColor != 220 {
		t.Errorf("loaded props = %+v", props)
	}
}

func TestLoadMenuPropsMissingFile(t *testing.T) {
	if _, err := LoadMenuProps(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("missing theme file loaded without error")
	}
}
