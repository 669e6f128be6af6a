package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trouvaille/lostfound/internal/model"
)

func foundItem(id, desc, date string) *model.FoundItem {
	return &model.FoundItem{ID: id, Description: desc, FoundDate: date}
}

func lostItem(id, desc, date string) *model.LostItem {
	return &model.LostItem{ID: id, Description: desc, LostDate: date}
}

func TestRecomputeTwoTokenThreshold(t *testing.T) {
	found := []*model.FoundItem{
		foundItem("f1", "blue leather wallet with cards", "2024-07-12"),
		foundItem("f2", "blue scarf", "2024-07-12"),
	}
	lost := []*model.LostItem{
		lostItem("l1", "black leather wallet cards inside", "2024-07-11"),
		lostItem("l2", "red hat", "2024-07-11"),
	}

	pairs := DefaultPolicy.Recompute(found, lost)

	require.Len(t, pairs, 1)
	assert.Equal(t, model.MatchPair{FoundID: "f1", LostID: "l1"}, pairs[0])
	assert.Equal(t, []string{"l1"}, found[0].PossibleMatches)
	assert.Equal(t, []string{"f1"}, lost[0].PossibleMatches)
	assert.Empty(t, found[1].PossibleMatches)
	assert.Empty(t, lost[1].PossibleMatches)
}

func TestRecomputeSymmetry(t *testing.T) {
	found := []*model.FoundItem{
		foundItem("f1", "silver phone cracked screen", ""),
		foundItem("f2", "leather wallet brown", ""),
		foundItem("f3", "festival wristband green", ""),
	}
	lost := []*model.LostItem{
		lostItem("l1", "phone silver with cracked screen", ""),
		lostItem("l2", "brown leather wallet", ""),
	}

	DefaultPolicy.Recompute(found, lost)

	// Every edge must appear on both sides, and no side may carry an edge
	// the other does not.
	lostByID := map[string]*model.LostItem{}
	for _, l := range lost {
		lostByID[l.ID] = l
	}
	for _, f := range found {
		for _, lid := range f.PossibleMatches {
			assert.Contains(t, lostByID[lid].PossibleMatches, f.ID)
		}
	}
	foundByID := map[string]*model.FoundItem{}
	for _, f := range found {
		foundByID[f.ID] = f
	}
	for _, l := range lost {
		for _, fid := range l.PossibleMatches {
			assert.Contains(t, foundByID[fid].PossibleMatches, l.ID)
		}
	}
}

func TestRecomputeDeterministic(t *testing.T) {
	found := []*model.FoundItem{
		foundItem("f1", "green backpack hiking straps", ""),
		foundItem("f2", "backpack green small", ""),
	}
	lost := []*model.LostItem{
		lostItem("l1", "green hiking backpack", ""),
	}

	first := DefaultPolicy.Recompute(found, lost)
	second := DefaultPolicy.Recompute(found, lost)
	assert.Equal(t, first, second)
}

func TestRecomputeClearsStaleMatches(t *testing.T) {
	f := foundItem("f1", "blue scarf", "")
	f.PossibleMatches = []string{"gone"}
	l := lostItem("l1", "red hat", "")
	l.PossibleMatches = []string{"gone"}

	pairs := DefaultPolicy.Recompute([]*model.FoundItem{f}, []*model.LostItem{l})

	assert.Empty(t, pairs)
	assert.Empty(t, f.PossibleMatches)
	assert.Empty(t, l.PossibleMatches)
}

func TestRecomputeDatePresencePolicy(t *testing.T) {
	policy := Policy{MinSharedTokens: 1, MinTokenLength: 1, RequireDates: true}

	found := []*model.FoundItem{
		foundItem("f1", "umbrella", "2024-07-12"),
		foundItem("f2", "umbrella", ""),
	}
	lost := []*model.LostItem{
		lostItem("l1", "umbrella", "2024-07-11"),
	}

	pairs := policy.Recompute(found, lost)

	// f2 shares the keyword but has no date, so only f1 qualifies.
	require.Len(t, pairs, 1)
	assert.Equal(t, "f1", pairs[0].FoundID)
	assert.Empty(t, found[1].PossibleMatches)
}

func TestRecomputeManyToMany(t *testing.T) {
	found := []*model.FoundItem{
		foundItem("f1", "black leather wallet", ""),
		foundItem("f2", "worn leather wallet", ""),
	}
	lost := []*model.LostItem{
		lostItem("l1", "leather wallet lost near stage", ""),
		lostItem("l2", "wallet black leather", ""),
	}

	DefaultPolicy.Recompute(found, lost)

	assert.ElementsMatch(t, []string{"l1", "l2"}, found[0].PossibleMatches)
	assert.ElementsMatch(t, []string{"l1", "l2"}, found[1].PossibleMatches)
	assert.ElementsMatch(t, []string{"f1", "f2"}, lost[0].PossibleMatches)
	assert.ElementsMatch(t, []string{"f1", "f2"}, lost[1].PossibleMatches)
}
