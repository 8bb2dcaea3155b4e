// Package export flattens a solved grid into per-cell records, encodes them
// for transport, and hands encoded buffers to callers under explicit handles.
//
// What
//
//   - Record: one cell in row-major order; Linked holds direction names in
//     topology order and Orientation is "" for families without one.
//   - Flatten / Rebuild: grid → records → grid, preserving coordinates,
//     links, distances and flags.
//   - EncodeJSON / DecodeJSON (goccy/go-json) and EncodeMsgpack /
//     DecodeMsgpack (vmihailenco/msgpack).
//   - Registry: Transfer hands an encoded buffer to the caller under a uuid
//     handle; Release is the only way to reclaim it.
//
// Errors
//
//   - ErrMalformedRecords: record sets that do not describe a full, symmetric
//     grid of one family.
//   - ErrUnknownHandle: Get or Release of a handle that is not held.
//   - ErrUnknownFormat: encoding name outside json and msgpack.
package export
