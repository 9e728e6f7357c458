// Package fileio reads text resources and derives character statistics
// from them.
//
// Resources are looked up by slash-separated name inside an [fs.FS], so the
// same code reads from a directory on disk ([os.DirFS]), an embedded
// filesystem or an in-memory [testing/fstest.MapFS]. Missing or unreadable
// resources are reported as RESOURCE_ACCESS errors from
// [github.com/matzehuels/structkit/pkg/errors] with the underlying cause
// preserved.
package fileio
