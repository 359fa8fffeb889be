package analysis

import "strings"

const (
	maxEntitiesPerBucket = 10
	maxRelatedConcepts   = 10
	maxSemanticKeywords  = 15
	minConceptChars      = 5 // multi-word phrases must be longer than this
	minSemanticChars     = 3 // single tokens must be longer than this
	semanticPrefixChars  = 3000
)

// labelBuckets maps recognizer category labels to the fixed output buckets.
// Unknown labels fall through to "other".
var labelBuckets = map[string]string{
	"PERSON":  "people",
	"ORG":     "organizations",
	"COMPANY": "organizations",
	"GPE":     "locations",
	"LOC":     "locations",
	"DATE":    "dates",
	"PRODUCT": "products",
}

// AggregateEntities buckets recognizer output into the six fixed categories,
// deduplicating each bucket and capping it at ten entries.
func AggregateEntities(entities []Entity) EntitySet {
	buckets := map[string][]string{}
	for _, e := range entities {
		bucket, ok := labelBuckets[e.Label]
		if !ok {
			bucket = "other"
		}
		buckets[bucket] = append(buckets[bucket], e.Text)
	}
	return EntitySet{
		People:        dedupeCapped(buckets["people"], maxEntitiesPerBucket),
		Organizations: dedupeCapped(buckets["organizations"], maxEntitiesPerBucket),
		Locations:     dedupeCapped(buckets["locations"], maxEntitiesPerBucket),
		Dates:         dedupeCapped(buckets["dates"], maxEntitiesPerBucket),
		Products:      dedupeCapped(buckets["products"], maxEntitiesPerBucket),
		Other:         dedupeCapped(buckets["other"], maxEntitiesPerBucket),
	}
}

// nounTags are Penn Treebank tags counted as noun or proper-noun tokens.
var nounTags = map[string]bool{
	"NN": true, "NNS": true, "NNP": true, "NNPS": true,
}

// EnrichSemantics derives related-concept and semantic-keyword lists from the
// provider's token stream. An empty stream (provider unavailable) yields
// empty, well-formed lists.
func EnrichSemantics(tokens []Token) SemanticEnrichment {
	enrichment := SemanticEnrichment{
		RelatedConcepts:  []string{},
		SemanticKeywords: []string{},
	}
	if len(tokens) == 0 {
		return enrichment
	}

	// Multi-word noun-phrase candidates: maximal runs of consecutive noun
	// tokens, more than one token long and longer than five characters.
	var concepts []string
	var run []string
	flush := func() {
		if len(run) > 1 {
			phrase := strings.Join(run, " ")
			if len(phrase) > minConceptChars {
				concepts = append(concepts, phrase)
			}
		}
		run = run[:0]
	}
	for _, tok := range tokens {
		if nounTags[tok.Tag] {
			run = append(run, tok.Text)
			continue
		}
		flush()
	}
	flush()
	enrichment.RelatedConcepts = topFrequent(concepts, maxRelatedConcepts)

	// Semantic keywords: noun/proper-noun single tokens longer than three
	// characters, ranked by frequency.
	var keywords []string
	for _, tok := range tokens {
		if nounTags[tok.Tag] && len(tok.Text) > minSemanticChars {
			keywords = append(keywords, tok.Text)
		}
	}
	enrichment.SemanticKeywords = topFrequent(keywords, maxSemanticKeywords)

	return enrichment
}
