package matching

import (
	"fmt"
	"strings"

	"github.com/jdkato/prose/v2"
)

// Extractor recognizes curated vocabulary terms in free text. The text is
// run through an NLP pipeline and every token, noun-phrase chunk and named
// entity is tested against the vocabulary, case-insensitively.
type Extractor struct {
	vocab Vocabulary
}

func NewExtractor(vocab Vocabulary) *Extractor {
	return &Extractor{vocab: vocab}
}

// ExtractSkills returns the set of vocabulary terms mentioned in the text.
// Repeated and differently-cased mentions collapse into one entry. A
// pipeline failure is returned as an error; callers decide whether to
// substitute an empty set.
func (e *Extractor) ExtractSkills(text string) (SkillSet, error) {
	skills := make(SkillSet)
	if strings.TrimSpace(text) == "" {
		return skills, nil
	}

	doc, err := prose.NewDocument(text, prose.WithSegmentation(false))
	if err != nil {
		return nil, fmt.Errorf("failed to run NLP pipeline: %w", err)
	}

	tokens := doc.Tokens()
	for _, tok := range tokens {
		e.addIfKnown(skills, tok.Text)
	}

	for _, chunk := range nounPhrases(tokens) {
		e.addIfKnown(skills, chunk)
	}

	for _, ent := range doc.Entities() {
		e.addIfKnown(skills, ent.Text)
	}

	return skills, nil
}

func (e *Extractor) addIfKnown(set SkillSet, span string) {
	term := strings.ToLower(strings.TrimSpace(span))
	if term == "" {
		return
	}
	if _, ok := e.vocab[term]; ok {
		set[term] = struct{}{}
	}
}

// nounPhrases builds flat noun-phrase chunks from POS tags: maximal runs of
// determiners, adjectives and nouns, cut after the last noun, with leading
// determiners dropped. Multi-word vocabulary terms like "machine learning"
// are only reachable through these chunks.
func nounPhrases(tokens []prose.Token) []string {
	var phrases []string
	var run []prose.Token

	flush := func() {
		defer func() { run = nil }()

		for len(run) > 0 && run[0].Tag == "DT" {
			run = run[1:]
		}

		lastNoun := -1
		for i := len(run) - 1; i >= 0; i-- {
			if strings.HasPrefix(run[i].Tag, "NN") {
				lastNoun = i
				break
			}
		}
		if lastNoun < 0 {
			return
		}

		words := make([]string, 0, lastNoun+1)
		for _, tok := range run[:lastNoun+1] {
			words = append(words, tok.Text)
		}
		phrases = append(phrases, strings.Join(words, " "))
	}

	for _, tok := range tokens {
		if tok.Tag == "DT" || strings.HasPrefix(tok.Tag, "JJ") || strings.HasPrefix(tok.Tag, "NN") {
			run = append(run, tok)
			continue
		}
		flush()
	}
	flush()

	return phrases
}
