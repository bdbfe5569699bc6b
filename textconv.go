// Package textconv defines a minimal contract for text-to-text
// conversion: a Converter provides one required operation, Convert, and
// the package supplies convenience functions that feed a converter from
// a literal string, a file, or the system clipboard.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., clipboard/,
// htmltomarkdown/).
package textconv
