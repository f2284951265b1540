package manifest

import (
	"fmt"
	"maps"
	"math"
	"slices"
	"strconv"

	"github.com/charmbracelet/log"
)

// Components walks a decoded values.yaml tree one level deep.
//
// A top-level mapping with image.tag yields a component named after the
// top key. Otherwise each second-level mapping with image.tag yields a
// component named "<top>.<sub>". Keys are visited in sorted order; when two
// keys share a display name the later one wins and a warning is logged.
func Components(values map[string]any, logger *log.Logger) map[string]ComponentVersion {
	out := make(map[string]ComponentVersion)
	add := func(raw, tag string) {
		name := DisplayName(raw)
		if prev, ok := out[name]; ok && logger != nil {
			logger.Warn("display name collision", "name", name, "key", raw, "replaced", prev.Version, "with", tag)
		}
		out[name] = ComponentVersion{Name: name, Version: tag}
	}

	for _, top := range sortedKeys(values) {
		m, ok := asMap(values[top])
		if !ok {
			continue
		}
		if tag, ok := imageTag(m); ok {
			add(top, tag)
			continue
		}
		for _, sub := range sortedKeys(m) {
			sm, ok := asMap(m[sub])
			if !ok {
				continue
			}
			if tag, ok := imageTag(sm); ok {
				add(top+"."+sub, tag)
			}
		}
	}
	return out
}

func imageTag(m map[string]any) (string, bool) {
	img, ok := asMap(m["image"])
	if !ok {
		return "", false
	}
	return scalarString(img["tag"])
}

// asMap accepts both decoded mapping shapes.
func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, v := range m {
			out[fmt.Sprint(k)] = v
		}
		return out, true
	default:
		return nil, false
	}
}

// scalarString renders a scalar as a version string. Trees from the
// builder already hold source text; other decoded values are formatted.
func scalarString(v any) (string, bool) {
	switch s := v.(type) {
	case nil:
		return "", false
	case string:
		return s, true
	case bool:
		return strconv.FormatBool(s), true
	case int:
		return strconv.Itoa(s), true
	case int64:
		return strconv.FormatInt(s, 10), true
	case uint64:
		return strconv.FormatUint(s, 10), true
	case float64:
		if math.IsInf(s, 0) || math.IsNaN(s) {
			return fmt.Sprint(s), true
		}
		return strconv.FormatFloat(s, 'f', -1, 64), true
	case map[string]any, map[any]any, []any:
		return "", false
	default:
		return fmt.Sprint(s), true
	}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
