// Package filestore moves documents between storage and memory.
//
// A Store loads a file into text, detecting its encoding, and saves text
// back using the encoding recorded when it was loaded. The Record it
// updates carries the per-file state of the session: path, encoding,
// modified flag and the modification time last seen on disk.
//
// Files larger than MaxFileSize bytes are rejected before decoding.
package filestore
