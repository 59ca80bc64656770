package output

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", Text, false},
		{"text", Text, false},
		{" JSON ", JSON, false},
		{"yaml", YAML, false},
		{"xml", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWrite(t *testing.T) {
	v := map[string][]string{"identifiers": {"root:pagestore"}}
	text := func(w io.Writer) error {
		_, err := io.WriteString(w, "plain\n")
		return err
	}

	tests := []struct {
		format Format
		want   string
	}{
		{Text, "plain\n"},
		{JSON, "{\n  \"identifiers\": [\n    \"root:pagestore\"\n  ]\n}\n"},
		{YAML, "identifiers:\n  - root:pagestore\n"},
	}
	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Write(&buf, tt.format, v, text); err != nil {
				t.Fatalf("Write error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestFormat_Set(t *testing.T) {
	var f Format
	if err := f.Set("Yaml"); err != nil || f != YAML {
		t.Fatalf("Set = %q, %v", f, err)
	}
	if err := f.Set("csv"); err == nil || !strings.Contains(err.Error(), "csv") {
		t.Errorf("Set(csv) error = %v", err)
	}
}
