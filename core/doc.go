// Package core provides the foundational interfaces and types for a
// multi-backend virtual filesystem.
//
// A Backend is a storage provider: the native OS filesystem, a
// content-provider store reached through opaque host handles, a go-billy
// tree, or a hook layered on another backend. A View pairs a backend with a
// sub-path and scopes every operation to it without mutating the backend:
//
//	root := core.NewView(native.New("/srv/games"))
//	game := root.Subtree("Ahriman")
//	if game.IsFile("RPG_RT.ldb") {
//	    in, err := game.OpenInputStream("RPG_RT.ldb")
//	    ...
//	}
//
// # Sentinels
//
// Query operations never fail loudly: a missing path answers false from
// IsFile, IsDirectory and Exists and -1 from Filesize. Operations producing
// a resource (streams, listings) return a nil resource and an error from the
// errors package whose code tells not-found apart from other failures.
//
// # Capabilities
//
// IsFeatureSupported reports what a backend can do. Unknown or unadvertised
// features are always unsupported; nothing is inferred.
//
// # Paths
//
// Combine is the only path-join primitive. Views combine their sub-path with
// the operation path; backends combine the result with their base path.
package core
