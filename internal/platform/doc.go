package platform

// Package platform contains OS/filesystem glue: locating the directory that
// holds the state graphics, resolving states/<ABBR>.svg paths on disk, and
// revealing that directory in the system file manager.
