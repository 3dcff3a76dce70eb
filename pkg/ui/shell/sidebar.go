package shell

import "strings"

type Entry struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Path   string `json:"path"`
	Active bool   `json:"active"`
}

type entry struct {
	key       string
	label     string
	path      string
	adminOnly bool
}

var entries = []entry{
	{key: "projects", label: "Projects", path: "/projects"},
	{key: "runs", label: "Runs", path: "/runs"},
	{key: "settings", label: "Settings", path: "/settings"},
	{key: "admin", label: "Admin", path: "/admin", adminOnly: true},
}

// Sidebar returns navigation entries for the caller at currentPath.
//
// The entry whose path is currentPath, or a prefix of it at a segment boundary,
// is active. At most one entry is active.
func Sidebar(currentPath string, isAdmin bool) []Entry {
	ret := make([]Entry, 0, len(entries))
	activated := false
	for _, e := range entries {
		if e.adminOnly && !isAdmin {
			continue
		}
		active := !activated && under(currentPath, e.path)
		activated = activated || active
		ret = append(ret, Entry{Key: e.key, Label: e.label, Path: e.path, Active: active})
	}
	return ret
}

func under(p, prefix string) bool {
	if p == prefix {
		return true
	}
	return strings.HasPrefix(p, prefix+"/")
}
