// Package greet implements the program entry behaviour: writing a single line
// that identifies the package.
package greet

import (
	"errors"
	"fmt"
	"io"
	"os"

	"zsoltcs1123/your_package/pkg/config"
)

// Main writes the default greeting to stdout.
// A failed write is not recovered and panics.
func Main() {
	if err := Write(os.Stdout, config.Default()); err != nil {
		panic(err)
	}
}

// Line renders the greeting without a trailing newline.
func Line(cfg config.Greeting) string {
	return fmt.Sprintf(cfg.Format, cfg.Name)
}

// Write validates cfg and writes the rendered greeting plus newline to w.
func Write(w io.Writer, cfg config.Greeting) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		return fmt.Errorf("invalid greeting: %w", errors.Join(errs...))
	}

	if _, err := fmt.Fprintln(w, Line(cfg)); err != nil {
		return fmt.Errorf("writing greeting: %w", err)
	}

	return nil
}
