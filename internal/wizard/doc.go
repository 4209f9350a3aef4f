// Package wizard collects package identity, author identity, and runtime
// constraints from the user and folds them into a composer manifest.
//
// The flow is prompt → transform → prune. Run never touches the filesystem;
// reading, writing, and removing the setup artifact belong to the caller.
package wizard
