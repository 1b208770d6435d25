package cli

import (
	"io"
	"reflect"
	"testing"

	"github.com/gcptools/archdiag/pkg/errors"
)

func TestParseFormats(t *testing.T) {
	defaults := []string{"png"}

	tests := []struct {
		name    string
		input   string
		want    []string
		wantErr bool
	}{
		{
			name:  "empty uses defaults",
			input: "",
			want:  []string{"png"},
		},
		{
			name:  "single format",
			input: "svg",
			want:  []string{"svg"},
		},
		{
			name:  "multiple formats",
			input: "svg,png,pdf",
			want:  []string{"svg", "png", "pdf"},
		},
		{
			name:    "unknown format",
			input:   "gif",
			wantErr: true,
		},
		{
			name:    "valid then unknown",
			input:   "svg,webp",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFormats(tt.input, defaults)
			if tt.wantErr {
				if err == nil {
					t.Fatal("parseFormats() expected error, got nil")
				}
				if code := errors.GetCode(err); code != errors.ErrCodeInvalidFormat {
					t.Errorf("error code = %q, want %q", code, errors.ErrCodeInvalidFormat)
				}
				return
			}
			if err != nil {
				t.Fatalf("parseFormats() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFormats() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRootCommandStructure(t *testing.T) {
	// Keep the test hermetic: New reads the user config file if one exists.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	want := []string{"generate", "render", "topology", "inspect", "serve", "cache", "completion"}
	for _, name := range want {
		found := false
		for _, sub := range root.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}
