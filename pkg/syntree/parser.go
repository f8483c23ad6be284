package syntree

import (
	"context"
	"errors"
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"
)

// ErrParseFailed is returned when the engine produces no tree at all.
// Malformed input is not a parse failure: it yields a complete tree
// whose error nodes mark the malformed regions.
var ErrParseFailed = errors.New("syntree: engine produced no tree")

// Parser turns source text into Trees. It is bound to exactly one
// Language for its lifetime.
type Parser struct {
	inner    *sitter.Parser
	language *Language
}

// NewParser creates a parser bound to the given language. It fails if
// the language is nil or the engine rejects it (for example, on a
// grammar ABI mismatch); there is no degraded mode for either.
func NewParser(language *Language) (*Parser, error) {
	if language == nil || language.inner == nil {
		return nil, errors.New("syntree: nil language")
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(language.inner); err != nil {
		p.Close()
		return nil, fmt.Errorf("syntree: set language: %w", err)
	}

	return &Parser{inner: p, language: language}, nil
}

// Language returns the language this parser was bound to.
func (p *Parser) Language() *Language {
	if p == nil {
		return nil
	}
	return p.language
}

// Parse parses source in a single synchronous call and returns the
// resulting Tree. Malformed source still yields a complete tree with
// error and missing nodes embedded; only engine-level failure is an
// error. The caller owns the returned Tree and must Close it.
func (p *Parser) Parse(ctx context.Context, source []byte) (*Tree, error) {
	if p == nil || p.inner == nil {
		return nil, errors.New("syntree: parser is closed")
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("syntree: parse cancelled: %w", err)
	}

	tree := p.inner.Parse(source, nil)
	if tree == nil {
		return nil, ErrParseFailed
	}

	return &Tree{inner: tree}, nil
}

// ParseString is Parse for string sources.
func (p *Parser) ParseString(ctx context.Context, source string) (*Tree, error) {
	return p.Parse(ctx, []byte(source))
}

// Close releases the engine parser. Trees it produced stay valid; they
// own their structure independently.
func (p *Parser) Close() {
	if p == nil || p.inner == nil {
		return
	}
	p.inner.Close()
	p.inner = nil
}
