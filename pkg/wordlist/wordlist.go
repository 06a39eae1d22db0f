// Package wordlist loads candidate words from Peter Broda's WORD;SCORE
// format and sanitises them into the plain uppercase-letter strings the
// crossword encoder expects.
package wordlist

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Word is a candidate word with its quality score.
type Word struct {
	Text  string
	Score int
}

// List is a collection of words organized by length.
type List struct {
	ByLength map[int][]Word
}

// LoadBroda loads a word list from a file in Peter Broda's format
// (WORD;SCORE per line). Words are sanitised (see Sanitize), grouped by
// their sanitised length, and sorted within each length bucket by score
// descending. Returns an error if the file is missing or a line is
// malformed; a word that Sanitize refuses (it sanitises to empty, or it
// contains a character outside the alphabet) is silently dropped rather
// than failing the load.
func LoadBroda(path string) (*List, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordlist: opening %s: %w", path, err)
	}
	defer file.Close()

	wl := &List{ByLength: make(map[int][]Word)}
	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		parts := strings.Split(line, ";")
		if len(parts) != 2 {
			return nil, fmt.Errorf("wordlist: malformed line %d: expected 'WORD;SCORE', got %q", lineNum, line)
		}

		text, ok := Sanitize(parts[0])
		if !ok {
			continue
		}

		score, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return nil, fmt.Errorf("wordlist: malformed line %d: invalid score: %w", lineNum, err)
		}

		wl.ByLength[len(text)] = append(wl.ByLength[len(text)], Word{Text: text, Score: score})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("wordlist: reading %s: %w", path, err)
	}

	for length := range wl.ByLength {
		bucket := wl.ByLength[length]
		sort.Slice(bucket, func(i, j int) bool {
			return bucket[i].Score > bucket[j].Score
		})
	}

	return wl, nil
}

// Sanitize strips the punctuation Broda-format wordlists commonly
// include in multi-word entries (hyphens, apostrophes, periods),
// uppercases the remainder, and reports false if what remains is empty
// or contains a character outside the crossword alphabet.
func Sanitize(raw string) (string, bool) {
	var sb strings.Builder
	for _, r := range strings.ToUpper(strings.TrimSpace(raw)) {
		switch r {
		case '-', '\'', '.':
			continue
		}
		if r < 'A' || r > 'Z' {
			return "", false
		}
		sb.WriteRune(r)
	}
	text := sb.String()
	if text == "" {
		return "", false
	}
	return text, true
}

// WordsOfLength returns every word of the given length, sorted by score
// descending. It returns nil if no word of that length is known.
func (wl *List) WordsOfLength(length int) []Word {
	return wl.ByLength[length]
}

// Words returns every word in the list, flattened, sorted by length then
// by score descending. This is the form pkg/constraints consumes.
func (wl *List) Words() []string {
	lengths := make([]int, 0, len(wl.ByLength))
	for length := range wl.ByLength {
		lengths = append(lengths, length)
	}
	sort.Ints(lengths)

	var words []string
	for _, length := range lengths {
		for _, w := range wl.ByLength[length] {
			words = append(words, w.Text)
		}
	}
	return words
}

// Size returns the total number of words in the list.
func (wl *List) Size() int {
	count := 0
	for _, words := range wl.ByLength {
		count += len(words)
	}
	return count
}

// Match finds all words of the same length as pattern, where pattern
// uses '_' as a wildcard matching any letter. Results are sorted by
// score descending.
func (wl *List) Match(pattern string) []string {
	candidates := wl.ByLength[len(pattern)]
	var matches []string
	for _, word := range candidates {
		if matchesPattern(word.Text, pattern) {
			matches = append(matches, word.Text)
		}
	}
	return matches
}

func matchesPattern(word, pattern string) bool {
	if len(word) != len(pattern) {
		return false
	}
	for i := 0; i < len(word); i++ {
		if pattern[i] != '_' && pattern[i] != word[i] {
			return false
		}
	}
	return true
}
