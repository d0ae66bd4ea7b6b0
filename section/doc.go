// Package section defines the fixed binary sections that frame a gridzip
// stream: the 16-byte stream header and the per-hypercube offset table.
// Section structs marshal with Bytes and unmarshal with Parse; all wire
// fields are little-endian.
package section
