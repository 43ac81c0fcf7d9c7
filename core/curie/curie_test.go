package curie

import "testing"

func TestExpand_BuiltinPrefix(t *testing.T) {
	scope := NewScope(BuiltinPrefixes())

	tests := []struct {
		token    string
		expected string
	}{
		{"foaf:nick", "http://xmlns.com/foaf/0.1/nick"},
		{"schema:Person", "https://schema.org/Person"},
		{"dc:title", "http://purl.org/dc/terms/title"},
		{"rdf:type", "http://www.w3.org/1999/02/22-rdf-syntax-ns#type"},
	}

	for _, tt := range tests {
		if got := scope.Expand(tt.token); got != tt.expected {
			t.Errorf("Expand(%q) = %q, want %q", tt.token, got, tt.expected)
		}
	}
}

func TestExpand_AbsoluteURIUnchanged(t *testing.T) {
	scope := NewScope(BuiltinPrefixes()).Push("", "https://schema.org/")

	token := "https://schema.org/Person"
	if got := scope.Expand(token); got != token {
		t.Errorf("Expand(%q) = %q, want unchanged", token, got)
	}
}

func TestExpand_UnknownPrefixFallsToVocab(t *testing.T) {
	scope := NewScope(BuiltinPrefixes()).Push("", "https://schema.org/")

	if got := scope.Expand("name"); got != "https://schema.org/name" {
		t.Errorf("Expand(name) = %q, want vocab expansion", got)
	}
}

func TestExpand_UnknownTokenUnchangedWithoutVocab(t *testing.T) {
	scope := NewScope(BuiltinPrefixes())

	if got := scope.Expand("custom:thing"); got != "custom:thing" {
		t.Errorf("Expand(custom:thing) = %q, want unchanged", got)
	}
	if got := scope.Expand("name"); got != "name" {
		t.Errorf("Expand(name) = %q, want unchanged", got)
	}
}

func TestExpand_DeclaredPrefixShadowsBuiltin(t *testing.T) {
	scope := NewScope(BuiltinPrefixes()).Push("schema: http://example.org/alt#", "")

	if got := scope.Expand("schema:Person"); got != "http://example.org/alt#Person" {
		t.Errorf("declared prefix did not shadow builtin: %q", got)
	}
}

func TestExpand_InnerScopeShadowsOuter(t *testing.T) {
	outer := NewScope(BuiltinPrefixes()).Push("ex: http://outer.example/", "https://outer.example/vocab/")
	inner := outer.Push("ex: http://inner.example/", "")

	if got := inner.Expand("ex:thing"); got != "http://inner.example/thing" {
		t.Errorf("inner prefix = %q, want inner declaration", got)
	}
	// The outer vocab stays visible through the inner scope.
	if got := inner.Expand("plain"); got != "https://outer.example/vocab/plain" {
		t.Errorf("inherited vocab = %q", got)
	}
	// The outer scope itself is unaffected.
	if got := outer.Expand("ex:thing"); got != "http://outer.example/thing" {
		t.Errorf("outer prefix = %q, want outer declaration", got)
	}
}

func TestParsePrefixAttr(t *testing.T) {
	table := ParsePrefixAttr("foaf: http://xmlns.com/foaf/0.1/ og: https://ogp.me/ns#")

	if table["foaf"] != "http://xmlns.com/foaf/0.1/" {
		t.Errorf("foaf = %q", table["foaf"])
	}
	if table["og"] != "https://ogp.me/ns#" {
		t.Errorf("og = %q", table["og"])
	}
}

func TestParsePrefixAttr_MalformedPairsSkipped(t *testing.T) {
	table := ParsePrefixAttr("nocolon http://x.example/ good: http://y.example/")

	if _, ok := table["nocolon"]; ok {
		t.Error("malformed pair should be skipped")
	}
	if table["good"] != "http://y.example/" {
		t.Errorf("good = %q", table["good"])
	}
}

func TestBuiltinPrefixes_ReturnsCopy(t *testing.T) {
	a := BuiltinPrefixes()
	a["schema"] = "http://mutated.example/"

	b := BuiltinPrefixes()
	if b["schema"] != "https://schema.org/" {
		t.Error("BuiltinPrefixes must hand out independent copies")
	}
}
