// Package docsift discovers documentation article URLs on a help-center
// site, filters them to canonical article pages, fetches each article's
// rendered page, and decomposes its content into an ordered sequence of
// labeled sections suitable for downstream readability analysis.
//
// This package contains domain types, interfaces, and the two pure
// algorithms (URL filtering and section segmentation) following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, sqlite/).
package docsift
