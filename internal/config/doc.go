// Package config defines the typed parameter bundles used to construct
// modules, and the operations that transform them: merging caller overrides
// under a strict or warn-and-set policy, flattening nested bundles, and
// round-tripping to and from YAML documents.
//
// Every concrete config embeds Base, which carries the two fields all config
// documents must declare: `name` (the module's registry key) and
// `config_type` (the registry partition consulted to resolve the concrete
// type). Fields unknown to the struct are kept in an inline map so that
// documents written by newer code still round-trip through older clients.
package config
