// Package resolver turns a path or repository identifier into a populated,
// correctly-typed config.
//
// One Load entry point materializes any registered config shape: the raw
// document's `name` and `config_type` fields are peeked first, the registry
// supplies the concrete config factory for that pair, and the document plus
// caller overrides are merged into the fresh instance. There is no type
// switch anywhere; the registry's content alone drives dispatch.
package resolver
