// ABOUTME: CURIE (compact URI) expansion for the RDFa extractor
// ABOUTME: Lexically scoped prefix/vocab chain over a fixed built-in prefix table

package curie

import "strings"

// Table maps CURIE prefixes to namespace URIs.
type Table map[string]string

// builtinPrefixes is the fixed process-wide prefix table. It is never
// mutated; BuiltinPrefixes hands out copies.
var builtinPrefixes = Table{
	"schema": "https://schema.org/",
	"foaf":   "http://xmlns.com/foaf/0.1/",
	"dc":     "http://purl.org/dc/terms/",
	"og":     "https://ogp.me/ns#",
	"xsd":    "http://www.w3.org/2001/XMLSchema#",
	"rdf":    "http://www.w3.org/1999/02/22-rdf-syntax-ns#",
	"rdfs":   "http://www.w3.org/2000/01/rdf-schema#",
}

// BuiltinPrefixes returns a fresh copy of the built-in prefix table.
// Callers may extend the copy without affecting other calls.
func BuiltinPrefixes() Table {
	t := make(Table, len(builtinPrefixes))
	for k, v := range builtinPrefixes {
		t[k] = v
	}
	return t
}

// Scope is one level of lexical prefix/vocab scope. Scopes form a chain
// from the element that declared them up to the document root; lookups use
// the innermost declaration. A Scope is immutable once created.
type Scope struct {
	prefixes Table
	vocab    string
	hasVocab bool
	parent   *Scope
}

// NewScope creates a root scope over the given prefix table.
func NewScope(prefixes Table) *Scope {
	return &Scope{prefixes: prefixes}
}

// Push derives a child scope from the element's prefix and vocab
// attributes. Empty attributes still produce a valid (pass-through) child.
func (s *Scope) Push(prefixAttr, vocabAttr string) *Scope {
	child := &Scope{parent: s}
	if prefixAttr != "" {
		child.prefixes = ParsePrefixAttr(prefixAttr)
	}
	if vocabAttr != "" {
		child.vocab = strings.TrimSpace(vocabAttr)
		child.hasVocab = true
	}
	return child
}

// Vocab returns the innermost default vocabulary in effect, if any.
func (s *Scope) Vocab() (string, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.hasVocab {
			return cur.vocab, true
		}
	}
	return "", false
}

// lookup finds a prefix in the innermost declaring scope.
func (s *Scope) lookup(prefix string) (string, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if cur.prefixes != nil {
			if uri, ok := cur.prefixes[prefix]; ok {
				return uri, true
			}
		}
	}
	return "", false
}

// Expand expands a single token in this scope.
//
// Tokens that already carry a scheme separator pass through unchanged. A
// prefix:suffix token with a known prefix concatenates; otherwise the
// default vocabulary applies when one is in effect; otherwise the token is
// returned as-is.
func (s *Scope) Expand(token string) string {
	if token == "" {
		return token
	}
	if strings.Contains(token, "://") {
		return token
	}
	if idx := strings.Index(token, ":"); idx > 0 {
		prefix, suffix := token[:idx], token[idx+1:]
		if uri, ok := s.lookup(prefix); ok {
			return uri + suffix
		}
	}
	if vocab, ok := s.Vocab(); ok {
		return vocab + token
	}
	return token
}

// ParsePrefixAttr parses an RDFa prefix attribute of the form
// "pfx1: uri1 pfx2: uri2" into a Table. Malformed pairs are skipped.
func ParsePrefixAttr(attr string) Table {
	fields := strings.Fields(attr)
	table := Table{}
	for i := 0; i+1 < len(fields); i++ {
		name := fields[i]
		if !strings.HasSuffix(name, ":") {
			continue
		}
		name = strings.TrimSuffix(name, ":")
		if name == "" {
			continue
		}
		table[name] = fields[i+1]
		i++
	}
	return table
}
