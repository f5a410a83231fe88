package manifest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

func parse(t *testing.T, in string) []domain.LicenseRecord {
	t.Helper()
	records, err := Parse(strings.NewReader(in))
	require.NoError(t, err)
	return records
}

func TestParse_SingleRecord(t *testing.T) {
	records := parse(t, "Files: foo\nLicense: MIT\n .\n Permission is granted.\n")

	require.Len(t, records, 1)
	assert.Equal(t, []string{"MIT", ".", "Permission is granted."}, records[0].Lines())
}

func TestParse_ParagraphWithoutLicense(t *testing.T) {
	in := `Files: a.c
Copyright: 2014 Someone
License: Expat

Files: b.c
Copyright: 2015 Someone Else
`
	records := parse(t, in)

	require.Len(t, records, 1)
	assert.Equal(t, "Expat", records[0].Name)
	assert.Empty(t, records[0].Body)
}

func TestParse_PreservesOrder(t *testing.T) {
	in := `License: First
 one

License: Second
 two

License: Third
`
	records := parse(t, in)

	require.Len(t, records, 3)
	assert.Equal(t, "First", records[0].Name)
	assert.Equal(t, []string{"one"}, records[0].Body)
	assert.Equal(t, "Second", records[1].Name)
	assert.Equal(t, []string{"two"}, records[1].Body)
	assert.Equal(t, "Third", records[2].Name)
}

func TestParse_ContinuationOnlyWhileIndented(t *testing.T) {
	in := `License: MIT
 indented
Comment: not part of the license
 belongs to comment
`
	records := parse(t, in)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"MIT", "indented"}, records[0].Lines())
}

func TestParse_NonIndentedLineWithoutColonEndsParagraph(t *testing.T) {
	in := `License: MIT
 body
stray line
 not a continuation
License: BSD
`
	records := parse(t, in)

	require.Len(t, records, 2)
	assert.Equal(t, []string{"MIT", "body"}, records[0].Lines())
	assert.Equal(t, []string{"BSD"}, records[1].Lines())
}

func TestParse_CommentsSkippedEverywhere(t *testing.T) {
	in := `# header comment
License: MIT
# inside a tag
 kept
#another
 also kept
`
	records := parse(t, in)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"MIT", "kept", "also kept"}, records[0].Lines())
}

func TestParse_LastLicenseInParagraphWins(t *testing.T) {
	in := `License: A
License: B
 body
`
	records := parse(t, in)

	require.Len(t, records, 1)
	assert.Equal(t, []string{"B", "body"}, records[0].Lines())
}

func TestParse_TagMustStartLine(t *testing.T) {
	in := `Files: x
 License: indented is a continuation
`
	assert.Empty(t, parse(t, in))
}

func TestParse_ValueKeepsLaterColons(t *testing.T) {
	records := parse(t, "License: GPL-2.0: with exception\n")

	require.Len(t, records, 1)
	assert.Equal(t, "GPL-2.0: with exception", records[0].Name)
}

func TestParse_EmptyTagNameIsBoundary(t *testing.T) {
	in := `License: MIT
: orphan
License: BSD
`
	records := parse(t, in)

	require.Len(t, records, 2)
	assert.Equal(t, "MIT", records[0].Name)
	assert.Equal(t, "BSD", records[1].Name)
}

func TestParse_NoTrailingNewline(t *testing.T) {
	records := parse(t, "License: Zlib\n text")

	require.Len(t, records, 1)
	assert.Equal(t, []string{"Zlib", "text"}, records[0].Lines())
}

func TestParse_WhitespaceOnlyContinuation(t *testing.T) {
	records := parse(t, "License: MIT\n \n end\n")

	require.Len(t, records, 1)
	assert.Equal(t, []string{"MIT", "", "end"}, records[0].Lines())
}

func TestParse_CRLF(t *testing.T) {
	records := parse(t, "License: MIT\r\n .\r\n body\r\n")

	require.Len(t, records, 1)
	assert.Equal(t, []string{"MIT", ".", "body"}, records[0].Lines())
}

func TestParse_Empty(t *testing.T) {
	assert.Empty(t, parse(t, ""))
	assert.Empty(t, parse(t, "# only comments\n\n\n"))
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk gone")
}

func TestParse_ReadError(t *testing.T) {
	records, err := Parse(failingReader{})

	assert.Nil(t, records)
	assert.ErrorIs(t, err, domain.ErrIOUnavailable)
	assert.Contains(t, err.Error(), "disk gone")
}

func TestParser_Feed(t *testing.T) {
	p := NewParser()
	for _, line := range []string{"Files: *", "License: MIT", " ."} {
		p.Feed(line)
	}

	records := p.Close()

	require.Len(t, records, 1)
	assert.Equal(t, []string{"MIT", "."}, records[0].Lines())
}
