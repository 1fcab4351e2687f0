// Package png assembles flat chunk sequences into whole container files and
// validated PNG documents.
//
// File pairs a container-type tag (PNG, MNG, or JNG) with an ordered chunk
// list and handles the signature-prefixed wire form. Image refines a PNG
// File into its structural parts (header, pre-data chunks, the contiguous
// IDAT run, and post-data chunks), enforcing the ordering and cardinality
// invariants that only hold across the entire file. Pixel semantics are out
// of scope: IDAT payloads pass through this package as opaque bytes.
package png
