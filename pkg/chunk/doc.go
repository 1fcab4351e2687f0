// Package chunk implements the chunk framing protocol shared by PNG, MNG,
// and JNG container files, together with a typed catalog of the standard
// chunk vocabulary.
//
// # Frame Format
//
// Every chunk is serialized in a binary frame with the following structure:
//
//	[Length(4)][Type(4)][Data(Length)][CRC32(4)]
//
// Fields:
//   - Length: 32-bit unsigned data length, big-endian, at most 2^31-1
//   - Type: 4 ASCII letters; the case bit of each position carries the
//     critical/public/reserved/safe-to-copy properties
//   - Data: the chunk's payload, whose layout depends on the type
//   - CRC32: ISO-3309 checksum over Type and Data, big-endian
//
// Reader and Writer handle one frame at a time. On read, the CRC is
// recomputed over the consumed bytes and compared against the stored field;
// on write, the payload is buffered in full so the length can be emitted
// first, then stamped with the computed CRC.
//
// # Dispatch
//
// Read looks the decoded type code up in a registry mapping type codes to
// decoders. All standard chunk types are preinstalled; unknown codes fall
// back to Custom, which preserves the raw payload verbatim so unrecognized
// vocabulary round-trips byte-exact. Register extends the registry with
// private chunk types; do so once, before any concurrent parsing, since the
// registry is process-wide.
//
// # Validation
//
// Chunk constructors validate every field against its legal domain, and
// decoders route through the same constructors, so an invalid field
// combination is unrepresentable whether it arrives from the wire or from
// code. Failures are reported as *Error values carrying an ErrorKind;
// callers branch on the kind with IsKind or errors.As rather than matching
// message text. There is no partial decoding: any violation fails the chunk
// immediately.
//
// # Thread Safety
//
// Readers and Writers are single-use and not safe for concurrent access,
// but independent parses share no state: files may be processed on separate
// goroutines freely as long as the registry is not mutated concurrently.
package chunk
