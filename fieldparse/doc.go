// Package fieldparse extracts typed values from delimited byte input.
//
// The package parses one field at a time: given a source of bytes, a
// position, and an immutable Options snapshot, Xparse recognizes a single
// field (handling surrounding whitespace, quoting with escapes, sentinel
// strings for missing values, and the terminating delimiter or newline) and
// interprets the value bytes as the requested Go type. The outcome is a
// ReturnCode bitmask plus the total number of bytes consumed, so callers can
// resynchronize at the next field even after a failed parse.
//
// The parser never materializes field text. String-like results are returned
// as a PosLen, a packed descriptor of the substring within the source;
// GetString reifies one on demand, unescaping doubled escape bytes only when
// the field actually contained an escape sequence.
//
// Two source implementations are provided: Buf for contiguous byte slices
// (including memory-mapped files, see MapFile) and Stream for forward-only
// io.Readers. Both are driven through the same Source interface and produce
// identical results for identical input.
//
// Options snapshots are safe to share across goroutines. A Source is owned
// by a single goroutine for the duration of a parse.
package fieldparse
