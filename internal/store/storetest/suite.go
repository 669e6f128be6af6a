// Package storetest holds a compliance suite shared by store drivers.
package storetest

import (
	"context"
	"errors"
	"testing"

	"github.com/trouvaille/lostfound/internal/model"
	"github.com/trouvaille/lostfound/internal/store"
)

// Run exercises a compliance suite against a store.Store implementation.
// makeStore must return a clean, isolated store.
func Run(t *testing.T, makeStore func(t *testing.T) store.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()

	// Users
	u, err := s.Users().Create(ctx, &model.User{Username: "desk-admin", PasswordHash: "x", IsAdmin: true})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	if u.ID == "" || u.CreatedAt.IsZero() {
		t.Fatalf("CreateUser: id/created_at not assigned: %+v", u)
	}
	if got, err := s.Users().GetByUsername(ctx, "desk-admin"); err != nil || got.ID != u.ID || !got.IsAdmin {
		t.Fatalf("GetByUsername: got=%+v err=%v", got, err)
	}
	if got, err := s.Users().GetByID(ctx, u.ID); err != nil || got.Username != "desk-admin" {
		t.Fatalf("GetByID: got=%+v err=%v", got, err)
	}
	if _, err := s.Users().GetByUsername(ctx, "nobody"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetByUsername missing: err=%v, want ErrNotFound", err)
	}
	if _, err := s.Users().Create(ctx, &model.User{Username: "desk-admin", PasswordHash: "y"}); !errors.Is(err, model.ErrConflict) {
		t.Fatalf("CreateUser duplicate username: err=%v, want ErrConflict", err)
	}

	// Found items
	info := "cards inside"
	f, err := s.FoundItems().Create(ctx, &model.FoundItem{
		Description: "blue leather wallet",
		FoundDate:   "2024-07-12",
		FoundTime:   "18:30",
		Location:    "main stage",
		ContentInfo: &info,
	})
	if err != nil {
		t.Fatalf("CreateFoundItem: %v", err)
	}
	if f.ID == "" || f.CreatedAt.IsZero() {
		t.Fatalf("CreateFoundItem: id/created_at not assigned: %+v", f)
	}
	if got, err := s.FoundItems().Get(ctx, f.ID); err != nil || got.Description != "blue leather wallet" {
		t.Fatalf("GetFoundItem: got=%+v err=%v", got, err)
	}
	if _, err := s.FoundItems().Get(ctx, "missing"); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("GetFoundItem missing: err=%v, want ErrNotFound", err)
	}

	// Lost items
	l, err := s.LostItems().Create(ctx, &model.LostItem{
		Description: "black leather wallet",
		LostDate:    "2024-07-11",
		LostTime:    "22:00",
		Location:    "camping",
	})
	if err != nil {
		t.Fatalf("CreateLostItem: %v", err)
	}

	// Relation round trip, both directions
	if err := s.Matches().Replace(ctx, []model.MatchPair{{FoundID: f.ID, LostID: l.ID}}); err != nil {
		t.Fatalf("ReplaceMatches: %v", err)
	}
	if got, err := s.FoundItems().Get(ctx, f.ID); err != nil || len(got.PossibleMatches) != 1 || got.PossibleMatches[0] != l.ID {
		t.Fatalf("found matches after replace: got=%+v err=%v", got, err)
	}
	if got, err := s.LostItems().Get(ctx, l.ID); err != nil || len(got.PossibleMatches) != 1 || got.PossibleMatches[0] != f.ID {
		t.Fatalf("lost matches after replace: got=%+v err=%v", got, err)
	}

	// Replace with an empty relation clears both sides
	if err := s.Matches().Replace(ctx, nil); err != nil {
		t.Fatalf("ReplaceMatches empty: %v", err)
	}
	if got, _ := s.FoundItems().Get(ctx, f.ID); len(got.PossibleMatches) != 0 {
		t.Fatalf("found matches not cleared: %+v", got.PossibleMatches)
	}

	// Update preserves id and created_at
	f.Location = "lost and found desk"
	updated, err := s.FoundItems().Update(ctx, f)
	if err != nil {
		t.Fatalf("UpdateFoundItem: %v", err)
	}
	if updated.ID != f.ID || !updated.CreatedAt.Equal(f.CreatedAt) {
		t.Fatalf("UpdateFoundItem mutated identity: %+v vs %+v", updated, f)
	}
	if updated.Location != "lost and found desk" || updated.Description != "blue leather wallet" {
		t.Fatalf("UpdateFoundItem fields: %+v", updated)
	}
	if _, err := s.FoundItems().Update(ctx, &model.FoundItem{ID: "missing"}); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("UpdateFoundItem missing: err=%v, want ErrNotFound", err)
	}

	// List order: newest first
	f2, err := s.FoundItems().Create(ctx, &model.FoundItem{Description: "green scarf"})
	if err != nil {
		t.Fatalf("CreateFoundItem #2: %v", err)
	}
	list, err := s.FoundItems().List(ctx)
	if err != nil || len(list) != 2 {
		t.Fatalf("ListFoundItems: n=%d err=%v", len(list), err)
	}
	if list[0].CreatedAt.Before(list[1].CreatedAt) {
		t.Fatalf("ListFoundItems order: expected newest first")
	}

	// Delete, then delete again
	if err := s.FoundItems().Delete(ctx, f2.ID); err != nil {
		t.Fatalf("DeleteFoundItem: %v", err)
	}
	if err := s.FoundItems().Delete(ctx, f2.ID); !errors.Is(err, model.ErrNotFound) {
		t.Fatalf("DeleteFoundItem repeat: err=%v, want ErrNotFound", err)
	}
	if err := s.LostItems().Delete(ctx, l.ID); err != nil {
		t.Fatalf("DeleteLostItem: %v", err)
	}

	if err := s.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}
}
