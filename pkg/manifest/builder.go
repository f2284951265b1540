package manifest

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	errs "github.com/podiumd/versionwatch/pkg/errors"
	"github.com/podiumd/versionwatch/pkg/integrations"
)

const (
	// DefaultBaseURL serves raw files of the PodiumD chart repository.
	DefaultBaseURL = "https://raw.githubusercontent.com/Dimpact-Samenwerking/helm-charts"

	DefaultProduct   = "podiumd"
	DefaultChartPath = "charts/podiumd"
	MainRef          = "main"
)

// Ref selects a release. At most one of Version and Branch should be set;
// Version takes precedence.
type Ref struct {
	Version string
	Branch  string
}

// Resolve returns the git ref for r: "<product>-<version>" for a version,
// the branch name for a branch, and [MainRef] otherwise.
func (r Ref) Resolve(product string) string {
	switch {
	case r.Version != "":
		return product + "-" + r.Version
	case r.Branch != "":
		return r.Branch
	default:
		return MainRef
	}
}

func (r Ref) String() string {
	switch {
	case r.Version != "":
		return "version " + r.Version
	case r.Branch != "":
		return "branch " + r.Branch
	default:
		return MainRef
	}
}

// Builder fetches chart manifests and assembles [Version] values.
type Builder struct {
	client *integrations.Client

	BaseURL   string
	Product   string
	ChartPath string
	Logger    *log.Logger
}

// NewBuilder creates a Builder reading from the default chart repository.
func NewBuilder(opts integrations.Options) *Builder {
	return &Builder{
		client:    opts.NewClient("manifest", nil),
		BaseURL:   DefaultBaseURL,
		Product:   DefaultProduct,
		ChartPath: DefaultChartPath,
		Logger:    log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// Build fetches Chart.yaml and values.yaml for ref.
//
// Returns:
//   - [errs.ErrCodeInvalidRef] if the resolved ref is unsafe in a URL
//   - [errs.ErrCodeInvalidManifest] if a file does not parse or Chart.yaml has no version
//   - transport errors from [integrations.Client] unchanged
func (b *Builder) Build(ctx context.Context, ref Ref) (*Version, error) {
	resolved := ref.Resolve(b.Product)
	if err := errs.ValidateRef(resolved); err != nil {
		return nil, err
	}
	b.Logger.Debug("building manifest", "ref", resolved)

	chartURL := b.fileURL(resolved, "Chart.yaml")
	chart, err := b.fetchYAML(ctx, chartURL)
	if err != nil {
		return nil, err
	}
	release, ok := scalarString(chart["version"])
	if !ok || release == "" {
		return nil, errs.New(errs.ErrCodeInvalidManifest, "%s: missing version", chartURL)
	}
	appVersion, _ := scalarString(chart["appVersion"])

	values, err := b.fetchYAML(ctx, b.fileURL(resolved, "values.yaml"))
	if err != nil {
		return nil, err
	}

	v := &Version{
		SourceRef:      resolved,
		ReleaseVersion: release,
		AppVersion:     appVersion,
		Components:     Components(values, b.Logger),
		Dependencies:   dependencies(chart["dependencies"]),
	}

	b.Logger.Debug("manifest built", "ref", resolved, "release", release, "components", len(v.Components))
	return v, nil
}

func (b *Builder) fileURL(ref, name string) string {
	return fmt.Sprintf("%s/%s/%s/%s", strings.TrimSuffix(b.BaseURL, "/"), ref, strings.Trim(b.ChartPath, "/"), name)
}

// fetchYAML fetches and decodes a YAML file, keeping scalars as written.
func (b *Builder) fetchYAML(ctx context.Context, url string) (map[string]any, error) {
	body, err := b.client.GetText(ctx, url)
	if err != nil {
		return nil, err
	}
	doc, err := decodeSource([]byte(body))
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidManifest, err, "parse %s", url)
	}
	return doc, nil
}

// dependencies reads the dependencies list of Chart.yaml. Entries without
// a name are skipped; nil is returned when there are none.
func dependencies(v any) map[string]ComponentVersion {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	var out map[string]ComponentVersion
	for _, item := range list {
		d, ok := asMap(item)
		if !ok {
			continue
		}
		name, _ := scalarString(d["name"])
		if name == "" {
			continue
		}
		ver, _ := scalarString(d["version"])
		if out == nil {
			out = make(map[string]ComponentVersion, len(list))
		}
		out[name] = ComponentVersion{Name: name, Version: ver}
	}
	return out
}
