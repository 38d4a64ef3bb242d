// Package bridge provides a core.Backend for storage that is reachable only
// through opaque handles handed out by a host environment, such as a content
// provider that never exposes raw paths.
//
// Every operation resolves the combined path to a Handle with exactly one
// Host call. A nil Handle means the path does not exist and the operation
// answers with the missing sentinel without calling the host again.
//
// Opening for reading performs one probe read into a DefaultBufferSize
// buffer. A failed probe means the open failed; no separate existence query
// is made. The probed bytes seed the returned stream so the first logical
// read does not fetch them again.
package bridge
