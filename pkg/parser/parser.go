// Package parser reads java compilation units with tree-sitter and
// produces javasym class declarations.  Supertype references are kept
// as source names; linking them to class symbols is the provider's
// job, once every declaration is registered.
package parser

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// Option configures a Parser.
type Option func(*Parser) *Parser

// WithLogger sets the parser logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(p *Parser) *Parser {
		p.logger = logger
		return p
	}
}

// Parser parses java sources.  It is not safe for concurrent use; one
// goroutine, one Parser.
type Parser struct {
	logger zerolog.Logger
	parser *sitter.Parser
}

// NewParser constructs a Parser for the java grammar.
func NewParser(options ...Option) *Parser {
	p := &Parser{}
	for _, opt := range options {
		p = opt(p)
	}
	p.parser = sitter.NewParser()
	p.parser.SetLanguage(java.GetLanguage())
	return p
}

// ParseFile parses one compilation unit.
func (p *Parser) ParseFile(ctx context.Context, filename string, src []byte) (*File, error) {
	tree, err := p.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", filename, err)
	}
	defer tree.Close()

	file := newFile(filename)
	ex := &extractor{src: src, file: file, logger: p.logger}
	ex.program(tree.RootNode())

	p.logger.Debug().
		Str("file", filename).
		Str("package", file.Package).
		Int("types", len(file.Types)).
		Msg("parsed compilation unit")

	return file, nil
}
