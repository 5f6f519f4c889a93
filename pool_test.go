package biopage

import (
	"context"
	"errors"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
)

func TestResolvePoolSize(t *testing.T) {
	t.Parallel()

	gomaxprocs := runtime.GOMAXPROCS(0)

	tests := []struct {
		name    string
		workers int
		want    int
	}{
		{
			name:    "explicit takes priority",
			workers: 4,
			want:    4,
		},
		{
			name:    "explicit=1 for sequential",
			workers: 1,
			want:    1,
		},
		{
			name:    "explicit above max is kept",
			workers: MaxPoolSize + 4,
			want:    MaxPoolSize + 4,
		},
		{
			name:    "zero uses auto calculation",
			workers: 0,
			want:    min(max(gomaxprocs, MinPoolSize), MaxPoolSize),
		},
		{
			name:    "negative uses auto calculation",
			workers: -1,
			want:    min(max(gomaxprocs, MinPoolSize), MaxPoolSize),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolvePoolSize(tt.workers)
			if got != tt.want {
				t.Errorf("ResolvePoolSize(%d) = %d, want %d", tt.workers, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestRenderAll - Concurrent rendering
// ---------------------------------------------------------------------------

// flakyLister fails every call after the first failAfter successful ones.
type flakyLister struct {
	calls     atomic.Int32
	failAfter int32
}

func (l *flakyLister) List(ctx context.Context) ([]string, error) {
	if l.calls.Add(1) > l.failAfter {
		return nil, errors.New("disk unplugged")
	}
	return []string{"childhood-1.jpg"}, nil
}

func TestRenderAll(t *testing.T) {
	t.Parallel()

	content := FlatContent([]Paragraph{{Text: "Childhood"}, {Text: "Дитинство"}, {Text: "Body"}})

	t.Run("keeps input order", func(t *testing.T) {
		t.Parallel()

		svc := New(WithLister(NewStaticLister("childhood-1.jpg")))
		inputs := []Input{
			{Locale: "ua", Content: content},
			{Locale: "en", Content: content},
			{Locale: "fr", Content: content},
			{Locale: "ua", Content: content},
		}

		for _, workers := range []int{0, 1, 3, 16} {
			pages, err := RenderAll(context.Background(), svc, inputs, workers)
			if err != nil {
				t.Fatalf("RenderAll(workers=%d) error = %v", workers, err)
			}
			got := make([]string, len(pages))
			for i, p := range pages {
				got[i] = p.Locale
			}
			if strings.Join(got, ",") != "ua,en,en,ua" {
				t.Errorf("RenderAll(workers=%d) locales = %v", workers, got)
			}
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		pages, err := RenderAll(context.Background(), New(), nil, 0)
		if err != nil || len(pages) != 0 {
			t.Errorf("RenderAll(nil) = %v, %v", pages, err)
		}
	})

	t.Run("partial failure", func(t *testing.T) {
		t.Parallel()

		svc := New(WithLister(&flakyLister{failAfter: 1}))
		inputs := []Input{{Locale: "en", Content: content}, {Locale: "ua", Content: content}}

		pages, err := RenderAll(context.Background(), svc, inputs, 1)
		if !errors.Is(err, ErrListImages) {
			t.Fatalf("RenderAll() error = %v, want ErrListImages", err)
		}
		if !strings.Contains(err.Error(), `locale "ua"`) {
			t.Errorf("error %q should name the failed locale", err)
		}
		if pages[0] == nil || pages[1] != nil {
			t.Errorf("pages = %v, want first rendered and second nil", pages)
		}
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		pages, err := RenderAll(ctx, New(), []Input{{Locale: "en", Content: content}}, 0)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("RenderAll() error = %v, want context.Canceled", err)
		}
		if pages[0] != nil {
			t.Errorf("pages[0] = %+v, want nil", pages[0])
		}
	})
}
