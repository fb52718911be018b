package view

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func TestEscapeAttr(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "plain", want: "plain"},
		{in: `a"b`, want: "a&quot;b"},
		{in: "<script>", want: "&lt;script&gt;"},
		{in: "Tom & Jerry", want: "Tom &amp; Jerry"},
		{in: "&lt;", want: "&amp;lt;"},
		{in: `"><img src=x onerror=alert(1)>`, want: "&quot;&gt;&lt;img src=x onerror=alert(1)&gt;"},
	}
	for _, tt := range tests {
		if got := EscapeAttr(tt.in); got != tt.want {
			t.Fatalf("EscapeAttr(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeAttrRoundTripsThroughHTMLParser(t *testing.T) {
	inputs := []string{
		`"><script>alert('x')</script>`,
		"a&b<c>d\"e",
		"&amp; already escaped",
		"evil\"@example.com",
		"Arts & Crafts <Advanced>",
	}
	for _, in := range inputs {
		escaped := EscapeAttr(in)
		if strings.ContainsAny(escaped, `"<>`) {
			t.Fatalf("escaped %q still contains a raw special character", escaped)
		}
		if bareAmpersand(escaped) {
			t.Fatalf("escaped %q contains a bare ampersand", escaped)
		}

		got := parseAttr(t, `<div data-value="`+escaped+`"></div>`, "data-value")
		if got != in {
			t.Fatalf("round trip of %q = %q", in, got)
		}
	}
}

func bareAmpersand(s string) bool {
	for _, entity := range []string{"&amp;", "&quot;", "&lt;", "&gt;"} {
		s = strings.ReplaceAll(s, entity, "")
	}
	return strings.Contains(s, "&")
}

// parseAttr returns the value of attr on the first element carrying it.
func parseAttr(t *testing.T, markup, attr string) string {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var found *string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if found != nil {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == attr {
					v := a.Val
					found = &v
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if found == nil {
		t.Fatalf("attribute %q not found in %q", attr, markup)
	}
	return *found
}
