package match

import "github.com/trouvaille/lostfound/internal/model"

// Policy controls the match predicate applied to every (found, lost) pair.
type Policy struct {
	// MinSharedTokens is how many keywords the two descriptions must share.
	MinSharedTokens int
	// MinTokenLength is the shortest word that counts as a keyword.
	MinTokenLength int
	// RequireDates additionally demands that both items carry a non-empty
	// date string. Presence only; the date values are never compared.
	RequireDates bool
}

// DefaultPolicy is the production threshold: at least two shared keywords,
// words longer than three characters, no date requirement.
var DefaultPolicy = Policy{
	MinSharedTokens: 2,
	MinTokenLength:  DefaultMinTokenLength,
}

// Recompute derives the full candidate-match relation between the two record
// sets. Every item's PossibleMatches is cleared and rewritten in place, both
// sides in lockstep so the relation is symmetric by construction. The returned
// pairs are the edges to persist.
//
// Recompute is a pure function over the snapshots passed in: it touches no
// storage, and the same input order always yields the same relation. The dense
// double loop is O(F x L) set intersections, fine at festival scale.
func (p Policy) Recompute(found []*model.FoundItem, lost []*model.LostItem) []model.MatchPair {
	foundKeywords := make([]map[string]struct{}, len(found))
	for i, f := range found {
		foundKeywords[i] = Keywords(f.Description, p.MinTokenLength)
		f.PossibleMatches = nil
	}
	lostKeywords := make([]map[string]struct{}, len(lost))
	for j, l := range lost {
		lostKeywords[j] = Keywords(l.Description, p.MinTokenLength)
		l.PossibleMatches = nil
	}

	var pairs []model.MatchPair
	for i, f := range found {
		for j, l := range lost {
			if p.RequireDates && (f.FoundDate == "" || l.LostDate == "") {
				continue
			}
			if !sharedAtLeast(foundKeywords[i], lostKeywords[j], p.MinSharedTokens) {
				continue
			}
			f.PossibleMatches = append(f.PossibleMatches, l.ID)
			l.PossibleMatches = append(l.PossibleMatches, f.ID)
			pairs = append(pairs, model.MatchPair{FoundID: f.ID, LostID: l.ID})
		}
	}
	return pairs
}

// sharedAtLeast reports whether the two token sets have at least n elements in
// common, stopping as soon as the threshold is reached.
func sharedAtLeast(a, b map[string]struct{}, n int) bool {
	if n < 1 {
		n = 1
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	shared := 0
	for token := range a {
		if _, ok := b[token]; ok {
			shared++
			if shared >= n {
				return true
			}
		}
	}
	return false
}
