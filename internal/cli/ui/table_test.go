package ui

import (
	"bytes"
	"strings"
	"testing"
)

func TestTableRender(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, []string{"FIELD", "TYPE"}, &TableOptions{NoColor: true})
	table.AddRow("id", "uuid")
	table.AddRow("title", "string")
	table.Render()

	out := buf.String()
	for _, want := range []string{"FIELD", "TYPE", "id", "uuid", "title", "string"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines (header, separator, 2 rows), got %d", len(lines))
	}
}

func TestTableRenderNoHeaders(t *testing.T) {
	var buf bytes.Buffer
	table := NewTable(&buf, nil, nil)
	table.AddRow("orphan")
	table.Render()

	if buf.Len() != 0 {
		t.Errorf("expected no output without headers, got %q", buf.String())
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	Header(&buf, "Records", true)

	out := buf.String()
	if !strings.HasPrefix(out, "Records\n") {
		t.Errorf("expected title line, got %q", out)
	}
	if !strings.Contains(out, "───────") {
		t.Errorf("expected underline matching title width, got %q", out)
	}
}
