package multitask

import "regexp"

const logPrefix = "internal.multitask"

// separators are checked most specific first so "and then" wins over a
// bare "and" split.
var separators = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\s+and\s+also\s+`),
	regexp.MustCompile(`(?i)\s+and\s+then\s+`),
	regexp.MustCompile(`(?i)\s+then\s+`),
	regexp.MustCompile(`(?i)\s+and\s+`),
	regexp.MustCompile(`(?i)\s+also\s+`),
	regexp.MustCompile(`(?i),\s*and\s+`),
	regexp.MustCompile(`(?i),\s*then\s+`),
	regexp.MustCompile(`,\s+`),
}

var sequentialKeywords = []string{
	"then", "after that", "next", "afterwards", "following that",
}

var continuationVerbs = []string{"search", "type", "click", "find"}

var openerVerbs = []string{"open", "launch", "start"}
