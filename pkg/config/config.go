// Package config holds the settings that control what the program prints
// and validates them before use.
package config

import (
	"fmt"
	"strings"
)

// PackageName is the identifier every greeting must contain.
const PackageName = "your_package"

// DefaultFormat renders the greeting, %s receives the package name.
const DefaultFormat = "Hello from %s!"

// Greeting describes the line written by the entry function.
type Greeting struct {
	Name   string
	Format string
}

// Default returns the greeting printed when nothing is overridden.
func Default() Greeting {
	return Greeting{
		Name:   PackageName,
		Format: DefaultFormat,
	}
}

// Validate checks that Name carries PackageName and that Format takes
// exactly one %s and no other verbs. Escaped %% is allowed.
func (c Greeting) Validate() []error {
	var errors []error

	if c.Name == "" {
		errors = append(errors, fmt.Errorf("name must not be empty"))
	} else if !strings.Contains(c.Name, PackageName) {
		errors = append(errors, fmt.Errorf("name %q must contain %q", c.Name, PackageName))
	}

	verbs := strings.ReplaceAll(c.Format, "%%", "")
	if n := strings.Count(verbs, "%s"); n != 1 {
		errors = append(errors, fmt.Errorf("format %q must contain exactly one %%s, found %d", c.Format, n))
	}
	if strings.Count(verbs, "%") != strings.Count(verbs, "%s") {
		errors = append(errors, fmt.Errorf("format %q must not use verbs other than %%s", c.Format))
	}

	return errors
}

// Output controls how diagnostics are rendered on stderr.
type Output struct {
	Verbose bool
	NoColor bool
}
