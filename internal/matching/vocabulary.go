package matching

import (
	"bufio"
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"strings"
)

//go:embed data/skills.txt
var defaultVocabularyData []byte

// Vocabulary is the curated set of recognized skill, role and soft-skill
// terms. Terms are stored lower-cased; membership is case-insensitive.
type Vocabulary map[string]struct{}

// DefaultVocabulary returns the vocabulary embedded with the binary.
func DefaultVocabulary() Vocabulary {
	return parseVocabulary(defaultVocabularyData)
}

// LoadVocabulary reads a vocabulary from a data file with one term per line.
// Blank lines and lines starting with '#' are ignored. An empty path falls
// back to the embedded default.
func LoadVocabulary(path string) (Vocabulary, error) {
	if path == "" {
		return DefaultVocabulary(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}

	vocab := parseVocabulary(data)
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s contains no terms", path)
	}

	return vocab, nil
}

func parseVocabulary(data []byte) Vocabulary {
	vocab := make(Vocabulary)

	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		vocab[strings.ToLower(line)] = struct{}{}
	}

	return vocab
}

func (v Vocabulary) Contains(term string) bool {
	_, ok := v[strings.ToLower(strings.TrimSpace(term))]
	return ok
}

func (v Vocabulary) Len() int {
	return len(v)
}
