package domain

// BlankLineSentinel is the manifest body line that stands for an empty line.
const BlankLineSentinel = "."

// LicenseRecord is one license entry from a copyright manifest.
// Name is the first line of the License tag; Body holds its continuation lines.
type LicenseRecord struct {
	Name string
	Body []string
}

// Lines returns the record as the ordered sequence [Name, Body...].
func (r LicenseRecord) Lines() []string {
	lines := make([]string, 0, len(r.Body)+1)
	lines = append(lines, r.Name)
	return append(lines, r.Body...)
}

// NewLicenseRecord builds a record from the raw lines of a License tag.
// The first line becomes the name. An empty slice yields the zero record.
func NewLicenseRecord(lines []string) LicenseRecord {
	if len(lines) == 0 {
		return LicenseRecord{}
	}
	body := make([]string, len(lines)-1)
	copy(body, lines[1:])
	return LicenseRecord{Name: lines[0], Body: body}
}
