package app

import (
	"fmt"
	"os"

	"github.com/appcypher/raccoon/internal/config"
)

// InitConfig writes a default .raccoon.yml to the current directory. It
// refuses to overwrite an existing file.
func InitConfig() error {
	if _, err := os.Stat(config.Filename); err == nil {
		return fmt.Errorf("%s already exists", config.Filename)
	}

	if err := config.Save(config.Default()); err != nil {
		return err
	}

	fmt.Printf("created %s\n", config.Filename)
	return nil
}
