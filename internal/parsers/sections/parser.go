// Package sections extracts indented entries that follow "## " headings.
package sections

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/headergen/internal/core/domain"
	"github.com/custodia-labs/headergen/internal/escape"
)

const (
	headingPrefix = "## "
	entryIndent   = "    "
)

// Parser scans a document one line at a time. At most one section is open.
type Parser struct {
	specs  []domain.SectionSpec
	open   *domain.SectionBlock
	blocks domain.SectionEntries
}

// NewParser returns a parser matching headings against specs in order.
func NewParser(specs []domain.SectionSpec) *Parser {
	return &Parser{specs: specs}
}

// Feed consumes one line without its line terminator.
func (p *Parser) Feed(line string) {
	if p.open != nil && strings.HasPrefix(line, entryIndent) {
		p.open.Entries = append(p.open.Entries, escape.String(strings.TrimSpace(line)))
		return
	}
	if !strings.HasPrefix(line, headingPrefix) {
		return
	}

	p.closeSection()
	heading := strings.TrimSpace(line)
	for _, spec := range p.specs {
		if strings.HasSuffix(heading, spec.Heading) {
			p.open = &domain.SectionBlock{ID: spec.ID, Entries: []string{}}
			break
		}
	}
}

// Close ends the input and returns the blocks in document order.
func (p *Parser) Close() domain.SectionEntries {
	p.closeSection()
	return p.blocks
}

func (p *Parser) closeSection() {
	if p.open == nil {
		return
	}
	p.blocks = append(p.blocks, *p.open)
	p.open = nil
}

// Parse reads a whole document and returns the entries of every matched heading.
// Entries are trimmed and escaped.
func Parse(r io.Reader, specs []domain.SectionSpec) (domain.SectionEntries, error) {
	p := NewParser(specs)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.Feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read sections: %w: %w", domain.ErrIOUnavailable, err)
	}
	return p.Close(), nil
}
