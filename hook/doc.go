// Package hook provides a backend that layers on another view and rewrites
// selected game files as they are read.
//
// Some games ship data files that were altered to keep them from being
// opened by standard tools. Detect recognises such a game from its map tree
// and returns a view that undoes the alteration transparently:
//
//	view = hook.Detect(view)
//	tree, err := view.OpenInputStream(hook.TreeMapName)
package hook
