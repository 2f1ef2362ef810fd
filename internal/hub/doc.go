// Package hub resolves artifact paths to bytes.
//
// A path is either a directory that exists on local disk or an "owner/name"
// repository identifier served by a hub. Local paths win: when the directory
// exists, the named file is read from it, and a directory that exists but
// lacks the file is a user error rather than a cache miss. Remote files are
// fetched through a Transport into a local cache mirror and read from there.
//
// The Transport interface is the seam to the hub's HTTP API; the locator
// itself only needs "fetch bytes for this path" and "store bytes at this
// path".
package hub
