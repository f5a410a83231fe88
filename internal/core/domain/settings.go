package domain

import "fmt"

// DefaultLicenseTextSymbol is the identifier of the full license text constant.
const DefaultLicenseTextSymbol = "NEBULA_LICENSE_TEXT"

// GeneratorSettings holds the resolved configuration shared by all emitters.
type GeneratorSettings struct {
	// SystemCertsPath is embedded verbatim in the certs header.
	SystemCertsPath string

	// BuiltinCerts gates inclusion of the compressed bundle.
	BuiltinCerts bool

	// Sections lists the author headings to extract, in match priority order.
	Sections []SectionSpec

	// LicenseTextSymbol names the full license text constant.
	LicenseTextSymbol string
}

// DefaultGeneratorSettings returns the settings used when nothing is configured.
func DefaultGeneratorSettings() GeneratorSettings {
	return GeneratorSettings{
		SystemCertsPath: "",
		BuiltinCerts:    true,
		Sections: []SectionSpec{
			{Heading: "Contributors", ID: "AUTHORS_CONTRIBUTORS"},
		},
		LicenseTextSymbol: DefaultLicenseTextSymbol,
	}
}

// Validate checks that the settings can drive every emitter.
func (s GeneratorSettings) Validate() error {
	if s.LicenseTextSymbol == "" {
		return fmt.Errorf("%w: license text symbol is empty", ErrInvalidInput)
	}
	seen := make(map[string]bool, len(s.Sections))
	for _, sec := range s.Sections {
		if sec.Heading == "" || sec.ID == "" {
			return fmt.Errorf("%w: section %q is incomplete", ErrInvalidInput, sec.String())
		}
		if seen[sec.ID] {
			return fmt.Errorf("%w: duplicate section id %q", ErrInvalidInput, sec.ID)
		}
		seen[sec.ID] = true
	}
	return nil
}

// Fingerprint returns the settings that affect the output of the given kind,
// in a stable textual form. Used to key the stamp cache.
func (s GeneratorSettings) Fingerprint(kind ArtifactKind) string {
	switch kind {
	case ArtifactCerts:
		return fmt.Sprintf("system_path=%q builtin=%t", s.SystemCertsPath, s.BuiltinCerts)
	case ArtifactAuthors:
		return fmt.Sprintf("sections=%q", s.Sections)
	case ArtifactLicense:
		return fmt.Sprintf("text_symbol=%q", s.LicenseTextSymbol)
	default:
		return ""
	}
}

// TargetSettings holds the configured source and target for one kind.
type TargetSettings struct {
	Source string
	Target string
}

// IsConfigured returns true if both paths are present.
func (t TargetSettings) IsConfigured() bool {
	return t.Source != "" && t.Target != ""
}
