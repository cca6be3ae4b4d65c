// Package stringutil provides path and name mapping helpers.
package stringutil

import (
	"path/filepath"
	"strings"
)

// BlueprintToDocName maps a blueprint file path (relative to the blueprints
// directory) to its expected documentation file name: path separators become
// '-' and the YAML extension is stripped.
//
//	automation/motion_light.yaml -> automation-motion_light
func BlueprintToDocName(relPath string) string {
	name := filepath.ToSlash(relPath)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	return strings.ReplaceAll(name, "/", "-")
}

// BlueprintToDocFile returns the documentation file name, including the
// markdown extension, for a blueprint path relative to the blueprints
// directory.
func BlueprintToDocFile(relPath string) string {
	return BlueprintToDocName(relPath) + ".md"
}
