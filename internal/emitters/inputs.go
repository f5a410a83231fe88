package emitters

import (
	"fmt"

	"github.com/custodia-labs/headergen/internal/core/domain"
)

// SingleInput returns the only input of a one-source emitter.
func SingleInput(kind domain.ArtifactKind, inputs [][]byte) ([]byte, error) {
	if len(inputs) != 1 {
		return nil, fmt.Errorf("%w: %s takes exactly one source, got %d", domain.ErrInvalidInput, kind, len(inputs))
	}
	return inputs[0], nil
}
