package config

import (
	"context"
	"fmt"

	"github.com/podiumd/versionwatch/pkg/extract"
	"github.com/podiumd/versionwatch/pkg/integrations"
)

// Check runs the sources one after another and returns their latest
// versions in order. The first failing source aborts the run.
func Check(ctx context.Context, specs []SourceSpec, opts integrations.Options) ([]extract.Result, error) {
	return CheckEach(ctx, specs, opts, nil)
}

// CheckEach is [Check] with a callback invoked before each source is
// fetched. before may be nil.
func CheckEach(ctx context.Context, specs []SourceSpec, opts integrations.Options, before func(SourceSpec)) ([]extract.Result, error) {
	results := make([]extract.Result, 0, len(specs))
	for _, s := range specs {
		if before != nil {
			before(s)
		}
		r, err := s.Check(ctx, opts)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Check builds the extractor for s and fetches its latest version.
func (s SourceSpec) Check(ctx context.Context, opts integrations.Options) (extract.Result, error) {
	src, err := s.Build(opts)
	if err != nil {
		return extract.Result{}, err
	}
	latest, err := src.LatestVersion(ctx)
	if err != nil {
		return extract.Result{}, fmt.Errorf("%s: %w", s.Name, err)
	}
	return extract.Result{Name: s.Name, Latest: latest}, nil
}
