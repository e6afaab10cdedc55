// SPDX-License-Identifier: MPL-2.0

package aamva

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agext/levenshtein"
	"github.com/sahilm/fuzzy"
	"golang.org/x/exp/slices"
)

const (
	// similarityThreshold is the minimum levenshtein similarity (0..1) for
	// a jurisdiction code to be offered as a correction.
	similarityThreshold = 0.6
	// maxCodeSuggestions caps the code-derived suggestion list.
	maxCodeSuggestions = 5
	// maxNameSuggestions caps the full-name-derived suggestion list.
	maxNameSuggestions = 3
	// genericSuggestionCount is how many valid codes are offered when
	// nothing clears the similarity threshold.
	genericSuggestionCount = 10
)

// ValidateJurisdictionCode validates a two-letter jurisdiction code with
// typo recovery. An exact code match is confirmed; a full jurisdiction name
// supplied in place of a code yields a precise auto-fix; anything else gets
// fuzzy-matched suggestions against both the code list and the name list,
// or the first few valid codes when no candidate is close enough. The
// ranking is deterministic: ties break alphabetically.
func ValidateJurisdictionCode(code string) FieldResult {
	input := strings.ToUpper(strings.TrimSpace(code))

	if entry, ok := LookupJurisdiction(input); ok {
		return FieldResult{
			Field:    "jurisdiction",
			Valid:    true,
			Severity: SeverityInfo,
			Message:  fmt.Sprintf("jurisdiction code %q is %s", entry.Code, entry.Name),
		}
	}

	if entry, ok := LookupJurisdictionByName(input); ok {
		return FieldResult{
			Field:    "jurisdiction",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("%q is the jurisdiction's full name; the two-letter code %q is expected",
				code, entry.Code),
			Suggestions: []string{entry.Code},
			AutoFix:     entry.Code,
		}
	}

	suggestions := suggestJurisdictions(input)
	if len(suggestions) == 0 {
		suggestions = JurisdictionCodes()[:genericSuggestionCount]
		return FieldResult{
			Field:    "jurisdiction",
			Valid:    false,
			Severity: SeverityError,
			Message: fmt.Sprintf("jurisdiction code %q is not recognized and no close match was found",
				code),
			Suggestions: suggestions,
		}
	}

	fr := FieldResult{
		Field:    "jurisdiction",
		Valid:    false,
		Severity: SeverityError,
		Message: fmt.Sprintf("jurisdiction code %q is not recognized; did you mean %s?",
			code, strings.Join(suggestions, ", ")),
		Suggestions: suggestions,
	}
	if len(suggestions) == 1 {
		fr.AutoFix = suggestions[0]
	}
	return fr
}

// suggestJurisdictions merges code-list and name-list candidates. Both
// channels are gated by the levenshtein similarity threshold; names are
// additionally ranked by fuzzy subsequence score and mapped back to their
// codes, so a misspelled full name ("CALIFRNIA") corrects to its code while
// an input that merely shares letters with a name does not. The merged list
// is de-duplicated, code candidates first.
func suggestJurisdictions(input string) []string {
	if input == "" {
		return nil
	}

	type scored struct {
		code  string
		score float64
	}

	var byCode []scored
	for _, candidate := range JurisdictionCodes() {
		if sim := levenshtein.Match(input, candidate, nil); sim >= similarityThreshold {
			byCode = append(byCode, scored{candidate, sim})
		}
	}
	sort.Slice(byCode, func(i, j int) bool {
		if byCode[i].score != byCode[j].score {
			return byCode[i].score > byCode[j].score
		}
		return byCode[i].code < byCode[j].code
	})
	if len(byCode) > maxCodeSuggestions {
		byCode = byCode[:maxCodeSuggestions]
	}

	var names []string
	for _, code := range JurisdictionCodes() {
		entry, _ := LookupJurisdiction(code)
		names = append(names, entry.Name)
	}
	var byName []string
	for _, m := range fuzzy.Find(input, names) {
		if levenshtein.Match(input, m.Str, nil) < similarityThreshold {
			continue
		}
		byName = append(byName, m.Str)
		if len(byName) == maxNameSuggestions {
			break
		}
	}

	var merged []string
	for _, s := range byCode {
		if !slices.Contains(merged, s.code) {
			merged = append(merged, s.code)
		}
	}
	for _, name := range byName {
		if entry, ok := LookupJurisdictionByName(name); ok && !slices.Contains(merged, entry.Code) {
			merged = append(merged, entry.Code)
		}
	}
	return merged
}
