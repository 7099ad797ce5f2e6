package platform

import "strings"

// Platform is a target AI coding tool with its expected rule-file name.
type Platform struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	File  string `json:"file"`
}

const (
	Cursor   = "CURSOR"
	Trae     = "TRAE"
	Windsurf = "WINDSURF"
	VSCode   = "VSCODE"
	Others   = "OTHERS"
)

// Registry order is display order.
var all = []Platform{
	{ID: Cursor, Label: "Cursor", File: ".cursorrules"},
	{ID: Trae, Label: "Trae", File: ".traerules"},
	{ID: Windsurf, Label: "Windsurf", File: ".windsurfrules"},
	{ID: VSCode, Label: "VS Code", File: ".github/copilot-instructions.md"},
	{ID: Others, Label: "Others", File: "instructions.md"},
}

var byID = func() map[string]Platform {
	m := make(map[string]Platform, len(all))
	for _, p := range all {
		m[p.ID] = p
	}
	return m
}()

// All returns every known platform in display order.
func All() []Platform {
	return all
}

// Resolve maps a platform id (any case) to its record, falling back to the
// generic Others platform for anything unknown.
func Resolve(id string) Platform {
	if p, ok := byID[strings.ToUpper(id)]; ok {
		return p
	}
	return byID[Others]
}

// Known reports whether id names a real platform (no fallback).
func Known(id string) bool {
	_, ok := byID[strings.ToUpper(id)]
	return ok
}

// FileBased reports whether exported output for this platform is written to a
// rule file. Only file-based platforms carry an embedded snapshot block; the
// generic chat-paste path must stay clean.
func FileBased(id string) bool {
	switch strings.ToUpper(id) {
	case Cursor, Trae, Windsurf, VSCode:
		return true
	}
	return false
}
