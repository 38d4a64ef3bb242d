// Package mount turns a YAML configuration into a table of named views.
//
// Each mount entry selects one backend kind. The backend is built once when
// the table is created and every later operation goes straight to it.
//
//	cfg, err := mount.Load("vfs.yaml")
//	table, err := mount.Mount(cfg, mount.WithLogger(logger))
//	view, path, err := table.Resolve("game:Map0001.lmu")
package mount
