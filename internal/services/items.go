package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/trouvaille/lostfound/internal/blob"
	"github.com/trouvaille/lostfound/internal/match"
	"github.com/trouvaille/lostfound/internal/model"
	"github.com/trouvaille/lostfound/internal/store"
)

// ImageUpload carries an item photo received with a create or update.
type ImageUpload struct {
	Data        []byte
	ContentType string
	Filename    string
}

// CreateFoundInput are the caller-supplied fields for a new found item.
type CreateFoundInput struct {
	Description string
	FoundDate   string
	FoundTime   string
	Location    string
	ContentInfo *string
	Image       *ImageUpload
}

// CreateLostInput are the caller-supplied fields for a new lost item.
type CreateLostInput struct {
	Description string
	LostDate    string
	LostTime    string
	Location    string
	ContentInfo *string
}

// ItemService orchestrates item mutations. Every create, update or delete
// persists the change, then recomputes the full candidate-match relation, then
// re-reads the affected record so the response carries fresh matches.
//
// The mutex serializes the whole mutate-then-recompute sequence: a recompute
// always runs against a snapshot taken after all completed writes, and two
// racing mutations cannot interleave their relation rewrites.
type ItemService struct {
	store  store.Store
	blobs  blob.Store
	policy match.Policy
	log    zerolog.Logger

	mu sync.Mutex
}

func NewItemService(s store.Store, blobs blob.Store, policy match.Policy, log zerolog.Logger) *ItemService {
	return &ItemService{store: s, blobs: blobs, policy: policy, log: log}
}

// --- Found items ---

func (s *ItemService) ListFoundItems(ctx context.Context) ([]*model.FoundItem, error) {
	return s.store.FoundItems().List(ctx)
}

func (s *ItemService) GetFoundItem(ctx context.Context, id string) (*model.FoundItem, error) {
	return s.store.FoundItems().Get(ctx, id)
}

func (s *ItemService) CreateFoundItem(ctx context.Context, in CreateFoundInput) (*model.FoundItem, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description is required", model.ErrValidation)
	}

	it := &model.FoundItem{
		Description: in.Description,
		FoundDate:   in.FoundDate,
		FoundTime:   in.FoundTime,
		Location:    in.Location,
		ContentInfo: in.ContentInfo,
	}

	// Upload before the mutation lock; a failed upload aborts the create
	// with nothing persisted.
	if in.Image != nil {
		url, filename, err := s.uploadImage(ctx, in.Image)
		if err != nil {
			return nil, err
		}
		it.ImageURL = &url
		it.ImageFilename = &filename
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.FoundItems().Create(ctx, it)
	if err != nil {
		s.discardUpload(ctx, it.ImageURL)
		return nil, err
	}
	if err := s.recompute(ctx); err != nil {
		return nil, err
	}
	return s.store.FoundItems().Get(ctx, created.ID)
}

func (s *ItemService) UpdateFoundItem(ctx context.Context, id string, upd model.FoundItemUpdate, image *ImageUpload) (*model.FoundItem, error) {
	var newURL, newFilename string
	if image != nil {
		url, filename, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		newURL, newFilename = url, filename
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.store.FoundItems().Get(ctx, id)
	if err != nil {
		if image != nil {
			s.discardUpload(ctx, &newURL)
		}
		return nil, err
	}

	var replacedURL string
	if upd.Description != nil {
		if *upd.Description == "" {
			if image != nil {
				s.discardUpload(ctx, &newURL)
			}
			return nil, fmt.Errorf("%w: description cannot be empty", model.ErrValidation)
		}
		it.Description = *upd.Description
	}
	if upd.FoundDate != nil {
		it.FoundDate = *upd.FoundDate
	}
	if upd.FoundTime != nil {
		it.FoundTime = *upd.FoundTime
	}
	if upd.Location != nil {
		it.Location = *upd.Location
	}
	if upd.ContentInfo != nil {
		it.ContentInfo = upd.ContentInfo
	}
	if image != nil {
		if it.ImageURL != nil && *it.ImageURL != newURL {
			replacedURL = *it.ImageURL
		}
		it.ImageURL = &newURL
		it.ImageFilename = &newFilename
	}

	updated, err := s.store.FoundItems().Update(ctx, it)
	if err != nil {
		if image != nil {
			s.discardUpload(ctx, &newURL)
		}
		return nil, err
	}

	// The replaced asset is gone from the record; losing the blob delete is
	// an orphaned file, not an inconsistency, so log and continue.
	if replacedURL != "" {
		s.deleteBlob(ctx, replacedURL)
	}

	if err := s.recompute(ctx); err != nil {
		return nil, err
	}
	return s.store.FoundItems().Get(ctx, updated.ID)
}

// DeleteFoundItem removes an item and its photo. It reports false, not an
// error, for an id that does not exist.
func (s *ItemService) DeleteFoundItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.store.FoundItems().Get(ctx, id)
	if errors.Is(err, model.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if it.ImageURL != nil {
		s.deleteBlob(ctx, *it.ImageURL)
	}

	if err := s.store.FoundItems().Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.recompute(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// --- Lost items ---

func (s *ItemService) ListLostItems(ctx context.Context) ([]*model.LostItem, error) {
	return s.store.LostItems().List(ctx)
}

func (s *ItemService) GetLostItem(ctx context.Context, id string) (*model.LostItem, error) {
	return s.store.LostItems().Get(ctx, id)
}

func (s *ItemService) CreateLostItem(ctx context.Context, in CreateLostInput) (*model.LostItem, error) {
	if in.Description == "" {
		return nil, fmt.Errorf("%w: description is required", model.ErrValidation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	created, err := s.store.LostItems().Create(ctx, &model.LostItem{
		Description: in.Description,
		LostDate:    in.LostDate,
		LostTime:    in.LostTime,
		Location:    in.Location,
		ContentInfo: in.ContentInfo,
	})
	if err != nil {
		return nil, err
	}
	if err := s.recompute(ctx); err != nil {
		return nil, err
	}
	return s.store.LostItems().Get(ctx, created.ID)
}

func (s *ItemService) UpdateLostItem(ctx context.Context, id string, upd model.LostItemUpdate) (*model.LostItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	it, err := s.store.LostItems().Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Description != nil {
		if *upd.Description == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", model.ErrValidation)
		}
		it.Description = *upd.Description
	}
	if upd.LostDate != nil {
		it.LostDate = *upd.LostDate
	}
	if upd.LostTime != nil {
		it.LostTime = *upd.LostTime
	}
	if upd.Location != nil {
		it.Location = *upd.Location
	}
	if upd.ContentInfo != nil {
		it.ContentInfo = upd.ContentInfo
	}

	updated, err := s.store.LostItems().Update(ctx, it)
	if err != nil {
		return nil, err
	}
	if err := s.recompute(ctx); err != nil {
		return nil, err
	}
	return s.store.LostItems().Get(ctx, updated.ID)
}

func (s *ItemService) DeleteLostItem(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.LostItems().Delete(ctx, id); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	if err := s.recompute(ctx); err != nil {
		return false, err
	}
	return true, nil
}

// Rematch recomputes the relation without any record mutation. Useful after
// changing the match policy configuration.
func (s *ItemService) Rematch(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.recompute(ctx)
}

// recompute loads both full record sets, derives the relation and persists it
// in one transaction. Callers must hold s.mu.
func (s *ItemService) recompute(ctx context.Context) error {
	found, err := s.store.FoundItems().List(ctx)
	if err != nil {
		return fmt.Errorf("load found items for recompute: %w", err)
	}
	lost, err := s.store.LostItems().List(ctx)
	if err != nil {
		return fmt.Errorf("load lost items for recompute: %w", err)
	}

	pairs := s.policy.Recompute(found, lost)
	if err := s.store.Matches().Replace(ctx, pairs); err != nil {
		return fmt.Errorf("persist match relation: %w", err)
	}
	s.log.Debug().Int("found", len(found)).Int("lost", len(lost)).Int("pairs", len(pairs)).Msg("match relation recomputed")
	return nil
}

func (s *ItemService) uploadImage(ctx context.Context, img *ImageUpload) (url, filename string, err error) {
	if len(img.Data) == 0 {
		return "", "", fmt.Errorf("%w: image file is empty", model.ErrValidation)
	}
	url, err = s.blobs.Upload(ctx, img.Data, img.ContentType, img.Filename)
	if err != nil {
		return "", "", fmt.Errorf("upload image: %w", err)
	}
	return url, lastSegment(url), nil
}

func (s *ItemService) deleteBlob(ctx context.Context, url string) {
	if err := s.blobs.Delete(ctx, url); err != nil {
		s.log.Warn().Err(err).Str("url", url).Msg("asset delete failed; object orphaned")
	}
}

// discardUpload removes an asset uploaded for an operation that then failed,
// so no object is left behind without a record pointing at it.
func (s *ItemService) discardUpload(ctx context.Context, url *string) {
	if url == nil {
		return
	}
	s.deleteBlob(ctx, *url)
}

func lastSegment(url string) string {
	for i := len(url) - 1; i >= 0; i-- {
		if url[i] == '/' {
			return url[i+1:]
		}
	}
	return url
}
