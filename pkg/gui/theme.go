package gui

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/gdamore/tcell/v2"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name           string      `json:"name"`
	SquareDark     tcell.Color `json:"squareDark"`
	SquareLight    tcell.Color `json:"squareLight"`
	SquareCursor   tcell.Color `json:"squareCursor"`
	SquareSelected tcell.Color `json:"squareSelected"`
	SquareHint     tcell.Color `json:"squareHint"`
	SquareCheck    tcell.Color `json:"squareCheck"`
	White          tcell.Color `json:"white"`
	Black          tcell.Color `json:"black"`
	Msg            tcell.Color `json:"msg"`
	Rank           tcell.Color `json:"rank"`
	File           tcell.Color `json:"file"`
}

// ThemeHex is the form a Theme takes in a theme file
type ThemeHex struct {
	Name           string `json:"name"`
	SquareDark     string `json:"squareDark"`
	SquareLight    string `json:"squareLight"`
	SquareCursor   string `json:"squareCursor"`
	SquareSelected string `json:"squareSelected"`
	SquareHint     string `json:"squareHint"`
	SquareCheck    string `json:"squareCheck"`
	White          string `json:"white"`
	Black          string `json:"black"`
	Msg            string `json:"msg"`
	Rank           string `json:"rank"`
	File           string `json:"file"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex, so ColorDefault survives a
// round trip instead of being read back as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareCursor.Hex()),
		fmtHex(t.SquareSelected.Hex()),
		fmtHex(t.SquareHint.Hex()),
		fmtHex(t.SquareCheck.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.Msg.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareCursor),
		tcell.GetColor(t.SquareSelected),
		tcell.GetColor(t.SquareHint),
		tcell.GetColor(t.SquareCheck),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.Msg),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
	}
}

var ErrNoTheme = errors.New("theme: no theme found")

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}

	return Theme{}, ErrNoTheme
}

// LoadTheme reads a theme file holding a single theme or a list of them and
// returns the first.
func LoadTheme(path string) (Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Theme{}, err
	}

	var themes []ThemeHex
	if err := json.Unmarshal(data, &themes); err != nil {
		var single ThemeHex
		if err := json.Unmarshal(data, &single); err != nil {
			return Theme{}, fmt.Errorf("theme: failed to parse %s: %w", path, err)
		}
		themes = []ThemeHex{single}
	}
	if len(themes) == 0 {
		return Theme{}, ErrNoTheme
	}

	return ImportThemes(themes[0].Name, themes)
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",        // Name
	tcell.Color188, // SquareDark
	tcell.Color230, // SquareLight
	tcell.Color117, // SquareCursor
	tcell.Color226, // SquareSelected
	tcell.Color223, // SquareHint
	tcell.Color218, // SquareCheck
	tcell.Color232, // White
	tcell.Color232, // Black
	tcell.Color160, // Msg
	tcell.Color247, // Rank
	tcell.Color247, // File
}
