// Package filesystem provides the file access used by the generator.
//
// The manifest extractor, the template renderer and the README writer all go
// through FileSystem so that tests can run against MemoryFileSystem instead
// of the working directory.
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
package filesystem
