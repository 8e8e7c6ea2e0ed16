// Package writers owns every byte the pipeline puts on disk.
//
// Design:
//   • Stages render into an io.Writer; they never open paths themselves.
//   • A Sink maps an artifact name to a destination (a directory on disk, or
//     memory in tests), so output locations are injected, not global.
//   • Line files are newline-joined without a trailing newline.
package writers
