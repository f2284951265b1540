// Package manifest builds the component list of one PodiumD release from
// its Helm chart.
//
// A release is identified by a [Ref]: a version, a branch, or neither
// (the main branch). [Builder.Build] fetches Chart.yaml and values.yaml
// for that ref and returns a [Version] holding:
//
//   - the chart version and appVersion
//   - one [ComponentVersion] per image tag found in values.yaml
//   - one [ComponentVersion] per chart dependency
//
// Components are keyed by display name; see [DisplayName].
package manifest
