// Package registry provides the central "glue" for the module system.
//
// The Registry maps kind-qualified string keys (e.g. the model
// "distilbert_text_classification") to the factories that produce the
// module's config and the module itself. Keys are normalized to snake_case
// at both registration and lookup time, so "DistilBERT" and "distil_bert"
// address the same entry.
//
// Entries come from self-registering module packages: each exposes a value
// implementing Module, and the application bootstraps them exactly once per
// Registry instance. After bootstrap the registry is treated as read-only;
// the mutex exists so that a misbehaving late registration is safe, not to
// support concurrent registration as a feature.
package registry
