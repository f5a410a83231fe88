package domain

import (
	"fmt"
	"strings"
)

// SectionSpec pairs a heading text with the identifier its entries are emitted under.
type SectionSpec struct {
	Heading string
	ID      string
}

// ParseSectionSpec parses the "Heading=ID" form used in configuration.
func ParseSectionSpec(s string) (SectionSpec, error) {
	heading, id, ok := strings.Cut(s, "=")
	heading = strings.TrimSpace(heading)
	id = strings.TrimSpace(id)
	if !ok || heading == "" || id == "" {
		return SectionSpec{}, fmt.Errorf("%w: section %q must be Heading=ID", ErrInvalidInput, s)
	}
	return SectionSpec{Heading: heading, ID: id}, nil
}

// String returns the "Heading=ID" form.
func (s SectionSpec) String() string {
	return s.Heading + "=" + s.ID
}

// SectionBlock holds the entries captured under one recognised heading.
type SectionBlock struct {
	ID      string
	Entries []string
}

// SectionEntries is the ordered list of blocks found in a document.
// Order follows the document, not the configuration.
type SectionEntries []SectionBlock

// Lookup returns the entries of the first block with the given id.
func (e SectionEntries) Lookup(id string) ([]string, bool) {
	for _, b := range e {
		if b.ID == id {
			return b.Entries, true
		}
	}
	return nil, false
}

// IDs returns the block identifiers in document order.
func (e SectionEntries) IDs() []string {
	ids := make([]string, 0, len(e))
	for _, b := range e {
		ids = append(ids, b.ID)
	}
	return ids
}
