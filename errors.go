package cohort

import (
	"errors"
	"fmt"

	"github.com/tessark/cohort/cluster"
	"github.com/tessark/cohort/stats"
)

var (
	// ErrEmptyDataset is returned when an engine is invoked over a suite with
	// no records.
	ErrEmptyDataset = errors.New("cohort: empty dataset")
)

// translateError unifies subpackage validation errors under the root
// sentinels so callers can match one error regardless of which engine raised
// it. Engine-specific typed errors pass through unchanged and stay matchable
// via errors.As.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, stats.ErrEmptyInput) {
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	}
	if errors.Is(err, cluster.ErrNoPoints) {
		return fmt.Errorf("%w: %w", ErrEmptyDataset, err)
	}

	return err
}
