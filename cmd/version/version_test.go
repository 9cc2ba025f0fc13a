package version

import (
	"bytes"
	"context"
	"testing"

	"github.com/urfave/cli/v3"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}

	if cmd.Name != "version" {
		t.Errorf("command name = %q; want %q", cmd.Name, "version")
	}

	if cmd.Usage == "" {
		t.Error("command usage should not be empty")
	}

	if cmd.Action == nil {
		t.Fatal("command action should not be nil")
	}
}

func TestVersionCommand_Execute(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"default version", "unknown"},
		{"custom version", "1.2.3"},
		{"semver version", "v2.0.0-beta1"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			// Save and restore original version
			origVersion := Version
			defer func() { Version = origVersion }()

			Version = tt.version

			var buf bytes.Buffer
			root := &cli.Command{
				Name:     "your_package",
				Writer:   &buf,
				Commands: []*cli.Command{GetCommand()},
			}

			if err := root.Run(context.Background(), []string{"your_package", "version"}); err != nil {
				t.Fatalf("Run() returned unexpected error: %v", err)
			}

			if got, want := buf.String(), tt.version+"\n"; got != want {
				t.Errorf("version output = %q; want %q", got, want)
			}
		})
	}
}

func TestVersion_DefaultValue(t *testing.T) {
	t.Parallel()

	// release builds replace Version through -ldflags
	if Version == "" {
		t.Error("Version should have a default value")
	}
}
