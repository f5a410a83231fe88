// Package parsers holds the line-oriented readers that turn build assets into
// domain records.
//
//   - manifest: "Tag: value" paragraphs of a copyright manifest
//   - sections: indented entries under "## " headings
//
// Parsers are lenient. Build assets are trusted but not guaranteed to be tidy,
// so an unterminated record at end of input is closed, never rejected. The
// only errors returned come from the underlying reader.
package parsers
