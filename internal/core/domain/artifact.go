package domain

// ArtifactKind identifies one of the generated header documents.
type ArtifactKind string

// Available artifact kinds.
const (
	// ArtifactCerts is the compressed certificate bundle header.
	ArtifactCerts ArtifactKind = "certs"

	// ArtifactAuthors is the contributors list header.
	ArtifactAuthors ArtifactKind = "authors"

	// ArtifactLicense is the license and copyright header.
	ArtifactLicense ArtifactKind = "license"
)

// AllArtifactKinds returns every kind in generation order.
func AllArtifactKinds() []ArtifactKind {
	return []ArtifactKind{ArtifactCerts, ArtifactAuthors, ArtifactLicense}
}

// IsValid returns true if the kind is recognised.
func (k ArtifactKind) IsValid() bool {
	switch k {
	case ArtifactCerts, ArtifactAuthors, ArtifactLicense:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k ArtifactKind) String() string {
	return string(k)
}

// Description returns a human-readable description of the kind.
func (k ArtifactKind) Description() string {
	switch k {
	case ArtifactCerts:
		return "Certificate bundle (compressed)"
	case ArtifactAuthors:
		return "Authors sections"
	case ArtifactLicense:
		return "License manifest"
	default:
		return "Unknown"
	}
}

// GenerateRequest describes one generation run.
type GenerateRequest struct {
	// Kind selects the emitter.
	Kind ArtifactKind

	// Sources are the input file paths. Every kind takes exactly one.
	Sources []string

	// Target is the output file path.
	Target string

	// Check compares the would-be output against Target without writing.
	Check bool

	// Force regenerates even when the stamp cache says Target is current.
	Force bool
}

// GenerateResult reports what a run did.
type GenerateResult struct {
	Kind   ArtifactKind
	Target string

	// Size is the length of the generated document in bytes.
	Size int

	// Skipped is set when the stamp cache showed Target to be current.
	Skipped bool

	// Stale is set in check mode when Target differs from the generated document.
	Stale bool
}
