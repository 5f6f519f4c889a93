package gallery

import (
	"context"
	"fmt"

	"github.com/alnah/go-biopage/internal/pipeline"
)

// Discover lists image files through lister and groups them into series
// published under publicPrefix. A listing failure is fatal: no partial map is
// returned and the error wraps ErrListImages.
func Discover(ctx context.Context, lister Lister, publicPrefix string) (pipeline.SeriesMap, error) {
	names, err := lister.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrListImages, err)
	}
	return pipeline.GroupSeries(names, publicPrefix), nil
}
