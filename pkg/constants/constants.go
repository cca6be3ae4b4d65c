// Package constants holds the fixed directory names, closed value sets, and
// custom YAML tags the blueprint checks are written against.
package constants

// BlueprintsDir is the repository directory scanned for blueprint YAML files.
const BlueprintsDir = "blueprints"

// DocsDir is the repository directory holding per-blueprint documentation.
const DocsDir = "docs"

// ReadmeFile is the documentation index checked for blueprint links.
const ReadmeFile = "README.md"

// ValidDomains are the blueprint domains Home Assistant accepts for
// community blueprints. Order is significant for error messages.
var ValidDomains = []string{"automation", "script"}

// ValidSelectorTypes is the closed set of selector type names a blueprint
// input may declare.
var ValidSelectorTypes = []string{
	"entity", "number", "boolean", "time", "date", "datetime", "text",
	"select", "action", "area", "device", "duration", "icon", "media",
	"object", "target", "template", "theme", "color_rgb", "color_temp",
	"location",
}

// RecognizedTags are the custom YAML tags accepted by the tag-tolerant
// loader. Each tagged scalar is replaced by the marker string
// "<tag> <value>" rather than being resolved.
var RecognizedTags = []string{"!input", "!include", "!include_dir_merge_list", "!secret"}

// DocSectionKeywords are the section keywords every blueprint documentation
// file must mention (matched case-insensitively anywhere in the text).
var DocSectionKeywords = []string{"overview", "configuration", "setup", "usage", "troubleshooting"}

// RequiredBlueprintFields are the metadata fields every blueprint descriptor
// must carry. Order is significant for error messages.
var RequiredBlueprintFields = []string{"name", "description", "domain"}

// RequiredAutomationFields are the document-root keys an automation
// blueprint must carry. Order is significant for error messages.
var RequiredAutomationFields = []string{"trigger", "action"}
