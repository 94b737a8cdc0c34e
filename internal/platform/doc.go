package platform

// Package platform contains OS integration glue: locating bundled and
// user-supplied resource files across per-user and system directories.
