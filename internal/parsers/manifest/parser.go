// Package manifest extracts License records from a copyright manifest.
//
// A manifest is a sequence of paragraphs made of "Tag: value" lines. A tag's
// value continues on following lines that begin with a space. Lines that begin
// with '#' are comments and are skipped wherever they appear.
package manifest

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// LicenseTag is the only tag whose content is kept.
const LicenseTag = "License"

type state int

const (
	scanning state = iota
	inTag
)

// Parser is a line-at-a-time state machine over a manifest.
// The zero value is not usable; call NewParser.
type Parser struct {
	state state

	tag   string
	lines []string

	// license holds the License lines of the current paragraph, nil if none.
	license []string

	records []domain.LicenseRecord
}

// NewParser returns a parser positioned before the first paragraph.
func NewParser() *Parser {
	return &Parser{state: scanning}
}

// Feed consumes one line without its line terminator.
func (p *Parser) Feed(line string) {
	if strings.HasPrefix(line, "#") {
		return
	}

	if p.state == inTag {
		if strings.HasPrefix(line, " ") {
			p.lines = append(p.lines, strings.TrimSpace(line))
			return
		}
		p.closeTag()
	}

	tag, value, ok := strings.Cut(line, ":")
	// An empty tag name ends the paragraph; the line after it is still read.
	if !ok || tag == "" {
		p.closeParagraph()
		return
	}
	p.state = inTag
	p.tag = tag
	p.lines = []string{strings.TrimSpace(value)}
}

// Close ends the input and returns every record in manifest order.
// An open tag or paragraph is closed first.
func (p *Parser) Close() []domain.LicenseRecord {
	if p.state == inTag {
		p.closeTag()
	}
	p.closeParagraph()
	return p.records
}

func (p *Parser) closeTag() {
	if p.tag == LicenseTag {
		p.license = p.lines
	}
	p.state = scanning
	p.tag = ""
	p.lines = nil
}

func (p *Parser) closeParagraph() {
	if p.license != nil {
		p.records = append(p.records, domain.NewLicenseRecord(p.license))
	}
	p.license = nil
}

// Parse reads a whole manifest and returns its License records.
func Parse(r io.Reader) ([]domain.LicenseRecord, error) {
	p := NewParser()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		p.Feed(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest: %w: %w", domain.ErrIOUnavailable, err)
	}
	return p.Close(), nil
}
