package cleanhtml

import (
	"strings"
	"testing"
)

func TestText_StripsMarkupAndBoilerplate(t *testing.T) {
	raw := `<html><body><pre>
From the Congressional Record Online through the Government Publishing Office [www.gpo.gov]
[Pages H100-H102]
[[Page H100]]
                         BORDER SECURITY

Mr. SMITH. We must act now.
</pre></body></html>`

	text, err := Text(raw)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	if strings.Contains(text, "<") {
		t.Error("expected markup to be stripped")
	}
	if strings.Contains(text, "Government Publishing Office") {
		t.Error("expected the GPO header to be removed")
	}
	if strings.Contains(text, "[Pages H100-H102]") {
		t.Error("expected the page-range annotation to be removed")
	}
	if strings.Contains(text, "[[Page H100]]") {
		t.Error("expected the page annotation to be removed")
	}
	if !strings.Contains(text, "BORDER SECURITY") {
		t.Error("expected the article body to survive")
	}
	if !strings.Contains(text, "Mr. SMITH. We must act now.") {
		t.Error("expected speech text to survive")
	}
}

func TestText_SinglePageAnnotation(t *testing.T) {
	text, err := Text("<p>before [Pages S1-S2] after</p>")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if strings.Contains(text, "[Pages S1-S2]") {
		t.Error("expected the bracketed page range to be removed")
	}
	if !strings.Contains(text, "before") || !strings.Contains(text, "after") {
		t.Errorf("expected surrounding text to survive, got %q", text)
	}
}

func TestText_PlainTextPassesThrough(t *testing.T) {
	text, err := Text("no markup at all")
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if !strings.Contains(text, "no markup at all") {
		t.Errorf("expected passthrough, got %q", text)
	}
}
