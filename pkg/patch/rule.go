// Package patch rewrites bundler-emitted JavaScript files to break circular
// chunk dependencies around the __exportAll helper.
//
// The bundler occasionally emits a chunk graph where __exportAll is imported
// by a module that is itself part of the circular chunk cycle defining the
// helper. Node.js then hits a TDZ error at module evaluation time. The helper
// is small and side-effect-free, so the remedy is to replace the cross-chunk
// import with a locally inlined definition, removing the dependency edge.
package patch

import (
	"regexp"
)

// inlinedExportAll is the replacement block substituted for a circular
// __exportAll import. It must stay textually identical to the helper the
// bundler emits, including tab indentation.
const inlinedExportAll = `var __defProp = Object.defineProperty;
var __exportAll = (all, no_symbols) => {
	let target = {};
	for (var name in all) {
		__defProp(target, name, {
			get: all[name],
			enumerable: true
		});
	}
	if (!no_symbols) {
		__defProp(target, Symbol.toStringTag, { value: "Module" });
	}
	return target;
};
`

// Rule rewrites one textual import shape into a fixed replacement.
type Rule struct {
	// Name is a short identifier used in rule files and the rules listing.
	Name string
	// Label is the human phrasing used in summary lines:
	// "[1/2] Patched 3 files with <Label>".
	Label string
	// Pattern matches the exact import statement to remove, including the
	// trailing newline. Anchoring to the full textual shape keeps incidental
	// text untouched.
	Pattern *regexp.Regexp
	// Replacement is substituted literally for every match.
	Replacement string
}

// Apply returns content with every occurrence of the rule pattern replaced.
// The replacement is literal; no capture-group expansion happens.
func (r Rule) Apply(content string) string {
	if !r.Pattern.MatchString(content) {
		return content
	}

	return r.Pattern.ReplaceAllLiteralString(content, r.Replacement)
}

// BuiltinRules returns the rules for the two chunk families known to produce
// circular __exportAll imports. The reply family additionally covers the
// case where the bound name collides with the reserved word "in", which
// breaks live-binding resolution on its own.
func BuiltinRules() []Rule {
	return []Rule{
		{
			Name:        "subagent-registry",
			Label:       "inlined __exportAll (subagent-registry)",
			Pattern:     regexp.MustCompile(`import \{ \w+ as __exportAll \} from "\./subagent-registry-[^"]+\.js";\n`),
			Replacement: inlinedExportAll,
		},
		{
			Name:        "reply",
			Label:       "inlined __exportAll (reply/in)",
			Pattern:     regexp.MustCompile(`import \{ \w+ as __exportAll \} from "\./reply-[^"]+\.js";\n`),
			Replacement: inlinedExportAll,
		},
	}
}
