package app

import (
	"fmt"

	"github.com/phillarmonic/figlet/figletlib"
)

// ShowVersion displays version information with ASCII art.
func ShowVersion(version, commit, date string) error {
	loader := figletlib.NewEmbededLoader()
	font, err := loader.GetFontByName("standard")
	if err != nil {
		return err
	}

	startColor, _ := figletlib.ParseColor("#00FF95")
	endColor, _ := figletlib.ParseColor("#00C2FF")
	gradientConfig := figletlib.ColorConfig{
		Mode:       figletlib.ColorModeGradient,
		StartColor: startColor,
		EndColor:   endColor,
	}

	fmt.Println("")
	figletlib.PrintColoredMsg("Raccoon", font, 80, font.Settings(), "left", gradientConfig)

	fmt.Println("raccoon: a Python-inspired, indentation-sensitive language")
	fmt.Println()
	fmt.Printf("Version %s\n", version)
	if commit != "unknown" {
		fmt.Printf("commit: %s\n", commit)
	}
	if date != "unknown" {
		fmt.Printf("built: %s\n", date)
	}
	return nil
}
