package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trouvaille/lostfound/internal/blob"
	"github.com/trouvaille/lostfound/internal/match"
	"github.com/trouvaille/lostfound/internal/model"
	"github.com/trouvaille/lostfound/internal/store/sqlite"
)

func newTestService(t *testing.T) (*ItemService, *blob.MemStore) {
	t.Helper()
	st, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	blobs := blob.NewMem()
	return NewItemService(st, blobs, match.DefaultPolicy, zerolog.Nop()), blobs
}

func strPtr(s string) *string { return &s }

func TestCreateRecomputesMatches(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	found, err := svc.CreateFoundItem(ctx, CreateFoundInput{
		Description: "black leather wallet with cards inside",
		FoundDate:   "2026-08-01",
		Location:    "main stage",
	})
	require.NoError(t, err)
	assert.Empty(t, found.PossibleMatches)

	lost, err := svc.CreateLostItem(ctx, CreateLostInput{
		Description: "blue leather wallet containing cards",
		LostDate:    "2026-08-01",
		Location:    "food court",
	})
	require.NoError(t, err)
	require.Len(t, lost.PossibleMatches, 1)
	assert.Equal(t, found.ID, lost.PossibleMatches[0])

	// Symmetric side picked up the new pair too.
	found, err = svc.GetFoundItem(ctx, found.ID)
	require.NoError(t, err)
	require.Len(t, found.PossibleMatches, 1)
	assert.Equal(t, lost.ID, found.PossibleMatches[0])
}

func TestCreateRequiresDescription(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.CreateFoundItem(ctx, CreateFoundInput{Location: "gate 3"})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = svc.CreateLostItem(ctx, CreateLostInput{Location: "gate 3"})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestUpdateRewritesRelation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	found, err := svc.CreateFoundItem(ctx, CreateFoundInput{Description: "silver ring with engraving"})
	require.NoError(t, err)
	lost, err := svc.CreateLostItem(ctx, CreateLostInput{Description: "green canvas backpack"})
	require.NoError(t, err)
	assert.Empty(t, lost.PossibleMatches)

	lost, err = svc.UpdateLostItem(ctx, lost.ID, model.LostItemUpdate{
		Description: strPtr("silver ring small engraving inside"),
	})
	require.NoError(t, err)
	require.Len(t, lost.PossibleMatches, 1)
	assert.Equal(t, found.ID, lost.PossibleMatches[0])

	// Editing away the overlap dissolves the pair on both sides.
	lost, err = svc.UpdateLostItem(ctx, lost.ID, model.LostItemUpdate{
		Description: strPtr("green canvas backpack"),
	})
	require.NoError(t, err)
	assert.Empty(t, lost.PossibleMatches)

	found, err = svc.GetFoundItem(ctx, found.ID)
	require.NoError(t, err)
	assert.Empty(t, found.PossibleMatches)
}

func TestUpdatePreservesUnspecifiedFields(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFoundItem(ctx, CreateFoundInput{
		Description: "brown suede jacket",
		FoundDate:   "2026-08-02",
		FoundTime:   "21:15",
		Location:    "camping area",
		ContentInfo: strPtr("keys in pocket"),
	})
	require.NoError(t, err)

	updated, err := svc.UpdateFoundItem(ctx, created.ID, model.FoundItemUpdate{
		Location: strPtr("lost and found booth"),
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.Equal(t, "brown suede jacket", updated.Description)
	assert.Equal(t, "2026-08-02", updated.FoundDate)
	assert.Equal(t, "21:15", updated.FoundTime)
	assert.Equal(t, "lost and found booth", updated.Location)
	require.NotNil(t, updated.ContentInfo)
	assert.Equal(t, "keys in pocket", *updated.ContentInfo)
}

func TestDeleteCascadesMatches(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	found, err := svc.CreateFoundItem(ctx, CreateFoundInput{Description: "festival wristband orange lanyard"})
	require.NoError(t, err)
	lost, err := svc.CreateLostItem(ctx, CreateLostInput{Description: "orange lanyard with festival wristband"})
	require.NoError(t, err)
	require.Len(t, lost.PossibleMatches, 1)

	ok, err := svc.DeleteFoundItem(ctx, found.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	lost, err = svc.GetLostItem(ctx, lost.ID)
	require.NoError(t, err)
	assert.Empty(t, lost.PossibleMatches)
}

func TestDeleteMissingReturnsFalse(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	ok, err := svc.DeleteFoundItem(ctx, "no-such-id")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = svc.DeleteLostItem(ctx, "no-such-id")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestImageLifecycle(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	created, err := svc.CreateFoundItem(ctx, CreateFoundInput{
		Description: "compact camera",
		Image:       &ImageUpload{Data: []byte("jpegdata"), ContentType: "image/jpeg", Filename: "cam.jpg"},
	})
	require.NoError(t, err)
	require.NotNil(t, created.ImageURL)
	require.NotNil(t, created.ImageFilename)
	assert.True(t, blobs.Has(*created.ImageURL))

	firstURL := *created.ImageURL

	// Replacing the photo removes the old object exactly once.
	updated, err := svc.UpdateFoundItem(ctx, created.ID, model.FoundItemUpdate{}, &ImageUpload{
		Data: []byte("newjpeg"), ContentType: "image/jpeg", Filename: "cam2.jpg",
	})
	require.NoError(t, err)
	require.NotNil(t, updated.ImageURL)
	assert.NotEqual(t, firstURL, *updated.ImageURL)
	assert.False(t, blobs.Has(firstURL))
	assert.Equal(t, []string{firstURL}, blobs.Deleted())

	ok, err := svc.DeleteFoundItem(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, blobs.Has(*updated.ImageURL))
}

func TestFailedUpdateDiscardsUploadedImage(t *testing.T) {
	svc, blobs := newTestService(t)
	ctx := context.Background()

	_, err := svc.UpdateFoundItem(ctx, "no-such-id", model.FoundItemUpdate{}, &ImageUpload{
		Data: []byte("jpegdata"), ContentType: "image/jpeg", Filename: "cam.jpg",
	})
	require.ErrorIs(t, err, model.ErrNotFound)
	require.Len(t, blobs.Deleted(), 1)
	assert.False(t, blobs.Has(blobs.Deleted()[0]))

	// Same cleanup when the update fails validation after the upload.
	created, err := svc.CreateFoundItem(ctx, CreateFoundInput{Description: "compact camera"})
	require.NoError(t, err)

	_, err = svc.UpdateFoundItem(ctx, created.ID, model.FoundItemUpdate{
		Description: strPtr(""),
	}, &ImageUpload{Data: []byte("jpegdata"), ContentType: "image/jpeg", Filename: "cam.jpg"})
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Len(t, blobs.Deleted(), 2)
}

func TestEmptyImageRejected(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.CreateFoundItem(context.Background(), CreateFoundInput{
		Description: "phone in a red case",
		Image:       &ImageUpload{Filename: "img.png"},
	})
	assert.ErrorIs(t, err, model.ErrValidation)
}

func TestManyToManyMatches(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	f1, err := svc.CreateFoundItem(ctx, CreateFoundInput{Description: "black wallet leather strap"})
	require.NoError(t, err)
	f2, err := svc.CreateFoundItem(ctx, CreateFoundInput{Description: "small wallet leather brown"})
	require.NoError(t, err)

	lost, err := svc.CreateLostItem(ctx, CreateLostInput{Description: "leather wallet missing since saturday"})
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{f1.ID, f2.ID}, lost.PossibleMatches)
}
