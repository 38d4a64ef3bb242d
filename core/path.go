package core

import "strings"

// Normalize cleans a path: backslashes become forward slashes, empty and "."
// segments disappear and ".." removes the previous segment. A leading slash
// is kept and ".." never climbs above it. Leading ".." segments of a relative
// path are kept. Returns "" for an empty relative result.
func Normalize(path string) string {
	path = strings.ReplaceAll(path, "\\", "/")
	if strings.HasPrefix(path, "/") {
		return "/" + clean(path, false)
	}
	return clean(path, true)
}

// normalizeSegments cleans path as a relative path that cannot leave its
// own root.
func normalizeSegments(path string) string {
	return clean(strings.ReplaceAll(path, "\\", "/"), false)
}

func clean(path string, keepParent bool) string {
	if path == "" {
		return ""
	}

	parts := strings.Split(path, "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		switch p {
		case "", ".":
			continue
		case "..":
			switch {
			case len(out) > 0 && out[len(out)-1] != "..":
				out = out[:len(out)-1]
			case keepParent:
				out = append(out, p)
			}
		default:
			out = append(out, p)
		}
	}
	return strings.Join(out, "/")
}

// Combine joins base and sub into one canonical path.
//
// The sub path is always treated as relative to base and is cleaned on its
// own, so it can never reach above base. Combine is associative:
// Combine(Combine(a, b), c) == Combine(a, Combine(b, c)).
func Combine(base, sub string) string {
	b := Normalize(base)
	s := normalizeSegments(sub)

	switch {
	case s == "":
		return b
	case b == "":
		return s
	case b == "/":
		return "/" + s
	default:
		return b + "/" + s
	}
}

// Split separates the final element from path. The directory part is
// canonical; Split("a/b/c") returns ("a/b", "c").
func Split(path string) (dir, name string) {
	clean := Normalize(path)
	i := strings.LastIndex(clean, "/")
	if i < 0 {
		return "", clean
	}
	if i == 0 {
		return "/", clean[1:]
	}
	return clean[:i], clean[i+1:]
}
