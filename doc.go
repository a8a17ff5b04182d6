// Package diffx reports whether two filesystem subtrees or two individual
// files are different. A directory comparison builds an in-memory tree of each
// side, compares the shapes while ignoring absolute paths and, only when the
// shapes match, compares the text content of the leaf files. It is intended
// for lightweight change detection such as build watchers or cache
// invalidation, not for producing a human-readable diff.
package diffx
