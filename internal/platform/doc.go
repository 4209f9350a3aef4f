// Package platform provides the filesystem side effects of a setup run:
// replacing the manifest atomically, adjusting permissions, and removing the
// setup artifact once it is no longer needed. Permission changes are a no-op
// on Windows, which has no Unix permission bits.
package platform
