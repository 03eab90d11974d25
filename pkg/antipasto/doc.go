// Package antipasto renders interactive, paginated menus in a plain
// terminal, without pulling in a TUI framework.
//
// A menu is a non-empty list of labeled actions drawn inside a colored
// box, centered in the console. Menus that don't fit the window are
// paginated. Build one from a slice of MenuOption and a MenuProps, then
// run the session with Show:
//
//	options := []antipasto.MenuOption{
//	    antipasto.NewMenuOption("option 1", func() { fmt.Println("option one!") }),
//	    antipasto.NewMenuOption("option 2", func() { fmt.Println("option two!") }),
//	    antipasto.NewMenuOption("option 3", func() { fmt.Println("option three!") }),
//	}
//	menu, err := antipasto.New(options, antipasto.DefaultMenuProps())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := menu.Show(); err != nil {
//	    log.Fatal(err)
//	}
//
// Menus can include a title, a footer message, and any combination of
// 8-bit colored backgrounds and text by configuring MenuProps. Props can
// also be loaded from a TOML theme file with LoadMenuProps.
//
// Menu controls:
//
//	| Key Bind               | Action         |
//	| ---------------------- | -------------- |
//	| ↓, ↑, ←, →, h, j, k, l | make selection |
//	| b, w                   | previous/next page |
//	| enter                  | confirm        |
//	| esc, q, backspace      | exit           |
//
// Actions run synchronously on the goroutine that called Show, so an
// action may itself open another menu; the outer menu redraws once the
// nested session returns and the next key is handled.
package antipasto
