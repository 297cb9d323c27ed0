package scoring

// stopwords filtered out of keyword density. Lowercase; only words of
// significantWordMinLen or more matter, shorter ones are dropped before the
// lookup.
var stopwords = map[string]struct{}{
	"a": {}, "about": {}, "above": {}, "after": {}, "again": {}, "against": {},
	"all": {}, "also": {}, "among": {}, "and": {}, "any": {}, "are": {},
	"because": {}, "been": {}, "before": {}, "being": {}, "below": {},
	"between": {}, "both": {}, "but": {}, "can": {}, "could": {}, "did": {},
	"does": {}, "doing": {}, "down": {}, "during": {}, "each": {}, "etc": {},
	"few": {}, "for": {}, "from": {}, "further": {}, "had": {}, "has": {},
	"have": {}, "having": {}, "her": {}, "here": {}, "hers": {}, "him": {},
	"his": {}, "how": {}, "into": {}, "its": {}, "itself": {}, "just": {},
	"more": {}, "most": {}, "must": {}, "not": {}, "now": {}, "off": {},
	"once": {}, "only": {}, "other": {}, "ours": {}, "out": {}, "over": {},
	"own": {}, "same": {}, "should": {}, "some": {}, "such": {}, "than": {},
	"that": {}, "the": {}, "their": {}, "theirs": {}, "them": {}, "then": {},
	"there": {}, "these": {}, "they": {}, "this": {}, "those": {},
	"through": {}, "under": {}, "until": {}, "very": {}, "was": {},
	"were": {}, "what": {}, "when": {}, "where": {}, "which": {},
	"while": {}, "who": {}, "whom": {}, "why": {}, "will": {}, "with": {},
	"would": {}, "your": {}, "yours": {}, "yourself": {},
	// Job-posting boilerplate that carries no matching signal.
	"ability": {}, "candidate": {}, "experience": {}, "knowledge": {},
	"looking": {}, "plus": {}, "preferred": {}, "required": {},
	"requirements": {}, "responsibilities": {}, "role": {}, "skills": {},
	"strong": {}, "team": {}, "work": {}, "working": {}, "years": {},
}
