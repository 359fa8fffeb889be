package analysis

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateEntities(t *testing.T) {
	entities := []Entity{
		{Text: "Ada Lovelace", Label: "PERSON"},
		{Text: "Google", Label: "ORG"},
		{Text: "Acme Corp", Label: "COMPANY"},
		{Text: "Berlin", Label: "GPE"},
		{Text: "Rhine", Label: "LOC"},
		{Text: "2024", Label: "DATE"},
		{Text: "Pixel", Label: "PRODUCT"},
		{Text: "quantum", Label: "MISC"},
		{Text: "Ada Lovelace", Label: "PERSON"}, // duplicate
	}

	set := AggregateEntities(entities)

	assert.Equal(t, []string{"Ada Lovelace"}, set.People)
	assert.Equal(t, []string{"Google", "Acme Corp"}, set.Organizations)
	assert.Equal(t, []string{"Berlin", "Rhine"}, set.Locations)
	assert.Equal(t, []string{"2024"}, set.Dates)
	assert.Equal(t, []string{"Pixel"}, set.Products)
	assert.Equal(t, []string{"quantum"}, set.Other)
	assert.Equal(t, 8, set.Total())
}

func TestAggregateEntitiesCapsBuckets(t *testing.T) {
	var entities []Entity
	for i := 0; i < 15; i++ {
		entities = append(entities, Entity{Text: fmt.Sprintf("Person %d", i), Label: "PERSON"})
	}

	set := AggregateEntities(entities)

	assert.Len(t, set.People, 10)
	assert.Equal(t, 10, set.Total())
}

func TestAggregateEntitiesEmpty(t *testing.T) {
	set := AggregateEntities(nil)

	assert.Equal(t, 0, set.Total())
	assert.Empty(t, set.People)
}

func TestEnrichSemantics(t *testing.T) {
	tokens := []Token{
		{Text: "Go", Tag: "NNP"},
		{Text: "language", Tag: "NN"},
		{Text: "the", Tag: "DT"},
		{Text: "Go", Tag: "NNP"},
		{Text: "language", Tag: "NN"},
		{Text: "runs", Tag: "VBZ"},
	}

	enrichment := EnrichSemantics(tokens)

	assert.Equal(t, []string{"Go language"}, enrichment.RelatedConcepts)
	// single-token keywords must be longer than three characters
	assert.Equal(t, []string{"language"}, enrichment.SemanticKeywords)
}

func TestEnrichSemanticsEmptyStream(t *testing.T) {
	enrichment := EnrichSemantics(nil)

	assert.NotNil(t, enrichment.RelatedConcepts)
	assert.NotNil(t, enrichment.SemanticKeywords)
	assert.Empty(t, enrichment.RelatedConcepts)
	assert.Empty(t, enrichment.SemanticKeywords)
}
