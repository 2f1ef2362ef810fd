// Package builder is the single entry point tying the registry, resolver and
// artifact locator together: "give me a working instance of module X of kind
// K, optionally with config overrides and optionally configured from a local
// directory or hub repository".
//
// The chain is fail-fast. The first failure (unknown key, missing file,
// unreachable hub, rejected override) aborts the whole build; no partially
// constructed module is ever returned.
package builder
