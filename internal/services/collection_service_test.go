package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcmarket/arc-api/internal/apperr"
	"github.com/arcmarket/arc-api/internal/models"
)

func newCollectionService(collections *fakeCollectionStore, nfts *fakeNFTStore, activities *fakeActivityStore, persons *fakePersonStore, now time.Time) *CollectionService {
	return NewCollectionService(collections, nfts, activities, persons, func() time.Time { return now })
}

func TestGetCollectionEmpty(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New().String()

	collections := &fakeCollectionStore{collections: []models.Collection{
		{ID: id, Name: "Empty", Creator: "0xcreator"},
	}}
	persons := &fakePersonStore{persons: []models.Person{
		{ID: "person-1", Wallet: "0xcreator", Name: "Casey"},
	}}

	svc := newCollectionService(collections, &fakeNFTStore{}, &fakeActivityStore{}, persons, now)

	summary, err := svc.GetCollection(id)
	require.NoError(t, err)

	assert.Zero(t, summary.Volume)
	assert.Zero(t, summary.FloorPrice)
	assert.Zero(t, summary.H24)
	assert.Zero(t, summary.H24Percent)
	assert.Zero(t, summary.Owners)
	assert.Zero(t, summary.Items)
	require.NotNil(t, summary.CreatorDetail)
	assert.Equal(t, "Casey", summary.CreatorDetail.Name)
}

func TestGetCollectionMetrics(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	id := uuid.New().String()
	index := "1"

	collections := &fakeCollectionStore{collections: []models.Collection{
		{ID: id, Name: "Apes", Creator: "0xcreator"},
	}}
	nfts := &fakeNFTStore{nfts: []models.NFT{
		{ID: "n1", CollectionID: id, Index: "1", Owner: "0xa", Price: 10},
		{ID: "n2", CollectionID: id, Index: "2", Owner: "0xb", Price: 30},
		{ID: "n3", CollectionID: id, Index: "3", Owner: "0xa", Price: 5},
	}}
	activities := &fakeActivityStore{activities: []models.Activity{
		{ID: "a1", CollectionID: id, NFTIndex: &index, Type: models.ActivityTypeList, Price: 8, Date: now.Add(-30 * time.Hour).Unix()},
		{ID: "a2", CollectionID: id, NFTIndex: &index, Type: models.ActivityTypeSale, Price: 12, Date: now.Add(-2 * time.Hour).Unix()},
		{ID: "a3", CollectionID: id, NFTIndex: &index, Type: models.ActivityTypeOffer, Price: 4, Date: now.Add(-1 * time.Hour).Unix()},
	}}

	svc := newCollectionService(collections, nfts, activities, &fakePersonStore{}, now)

	summary, err := svc.GetCollection(id)
	require.NoError(t, err)

	// Volume sums current item prices; floor considers list and sale only
	assert.Equal(t, 45.0, summary.Volume)
	assert.Equal(t, 8.0, summary.FloorPrice)

	// Today: 12 + 4, yesterday: 8 -> 200%
	assert.Equal(t, 16.0, summary.H24)
	assert.Equal(t, 200.0, summary.H24Percent)

	assert.Equal(t, 2, summary.Owners)
	assert.Equal(t, 3, summary.Items)
	assert.Len(t, summary.NFTs, 3)
	assert.Len(t, summary.Activities, 3)
}

func TestGetCollectionsDegradesOnLookupFailure(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	collections := &fakeCollectionStore{collections: []models.Collection{
		{ID: uuid.New().String(), Name: "First", Creator: "0xone"},
		{ID: uuid.New().String(), Name: "Second", Creator: "0xtwo"},
	}}
	persons := &fakePersonStore{failLookup: true}

	svc := newCollectionService(collections, &fakeNFTStore{}, &fakeActivityStore{}, persons, now)

	summaries, err := svc.GetCollections(models.CollectionParams{})
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Batch order is preserved and a failed creator lookup yields a null
	// creatorDetail, never an aborted batch
	assert.Equal(t, "First", summaries[0].Name)
	assert.Equal(t, "Second", summaries[1].Name)
	assert.Nil(t, summaries[0].CreatorDetail)
	assert.Nil(t, summaries[1].CreatorDetail)
}

func TestGetTopCollections(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	collections := &fakeCollectionStore{}
	nfts := &fakeNFTStore{}
	for i := 0; i < 12; i++ {
		id := uuid.New().String()
		collections.collections = append(collections.collections, models.Collection{
			ID:   id,
			Name: fmt.Sprintf("c%d", i),
		})
		nfts.nfts = append(nfts.nfts, models.NFT{
			ID:           fmt.Sprintf("n%d", i),
			CollectionID: id,
			Index:        "1",
			Owner:        "0xa",
			Price:        float64(i + 1),
		})
	}

	svc := newCollectionService(collections, nfts, &fakeActivityStore{}, &fakePersonStore{}, now)

	top, err := svc.GetTopCollections(models.CollectionParams{})
	require.NoError(t, err)
	require.Len(t, top, 10)

	assert.Equal(t, "c11", top[0].Name)
	assert.Equal(t, 12.0, top[0].Volume)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Volume, top[i].Volume)
	}
}

func TestGetCollectionInvalidID(t *testing.T) {
	svc := newCollectionService(&fakeCollectionStore{}, &fakeNFTStore{}, &fakeActivityStore{}, &fakePersonStore{}, time.Now())

	_, err := svc.GetCollection("not-a-uuid")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.GetCollection(uuid.New().String())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestCreateCollectionValidation(t *testing.T) {
	creatorID := uuid.New().String()
	persons := &fakePersonStore{persons: []models.Person{
		{ID: creatorID, Wallet: "0xCreator"},
	}}
	collections := &fakeCollectionStore{collections: []models.Collection{
		{ID: uuid.New().String(), Name: "Taken", URL: "taken"},
	}}

	svc := newCollectionService(collections, &fakeNFTStore{}, &fakeActivityStore{}, persons, time.Now())

	tests := []struct {
		name    string
		req     models.CreateCollectionRequest
		wantMsg string
	}{
		{
			name:    "bad creator id",
			req:     models.CreateCollectionRequest{CreatorID: "nope"},
			wantMsg: "invalid creatorId",
		},
		{
			name:    "unknown creator",
			req:     models.CreateCollectionRequest{CreatorID: uuid.New().String()},
			wantMsg: "creator address is invalid or missing",
		},
		{
			name:    "missing name",
			req:     models.CreateCollectionRequest{CreatorID: creatorID},
			wantMsg: "name is invalid or missing",
		},
		{
			name:    "missing blockchain",
			req:     models.CreateCollectionRequest{CreatorID: creatorID, Name: "Fresh"},
			wantMsg: "blockchain is invalid or missing",
		},
		{
			name:    "missing category",
			req:     models.CreateCollectionRequest{CreatorID: creatorID, Name: "Fresh", Blockchain: "ERC721"},
			wantMsg: "category is invalid or missing",
		},
		{
			name:    "duplicate name",
			req:     models.CreateCollectionRequest{CreatorID: creatorID, Name: "Taken", Blockchain: "ERC721", Category: "art"},
			wantMsg: "same collection name detected",
		},
		{
			name:    "missing url",
			req:     models.CreateCollectionRequest{CreatorID: creatorID, Name: "Fresh", Blockchain: "ERC721", Category: "art"},
			wantMsg: "collection url empty",
		},
		{
			name:    "duplicate url",
			req:     models.CreateCollectionRequest{CreatorID: creatorID, Name: "Fresh", Blockchain: "ERC721", Category: "art", URL: "taken"},
			wantMsg: "same collection url detected",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(tt.req)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
			assert.Equal(t, tt.wantMsg, apperr.MessageOf(err))
		})
	}
}

func TestCreateCollectionDefaults(t *testing.T) {
	creatorID := uuid.New().String()
	persons := &fakePersonStore{persons: []models.Person{
		{ID: creatorID, Wallet: "0xCreator"},
	}}
	collections := &fakeCollectionStore{}

	svc := newCollectionService(collections, &fakeNFTStore{}, &fakeActivityStore{}, persons, time.Now())

	summary, err := svc.Create(models.CreateCollectionRequest{
		CreatorID:  creatorID,
		Name:       "Fresh",
		Blockchain: "ERC721",
		Category:   "art",
		URL:        "fresh",
	})
	require.NoError(t, err)

	assert.Equal(t, models.DefaultContractERC721, summary.Contract)
	assert.Equal(t, "ARC", summary.Platform)
	assert.Equal(t, "0xcreator", summary.Creator)
	assert.Equal(t, models.OfferStatusNone, summary.OfferStatus)
	require.NotNil(t, summary.CreatorDetail)
	assert.Equal(t, creatorID, summary.CreatorDetail.ID)
}

func TestDeleteCollectionWithItems(t *testing.T) {
	id := uuid.New().String()
	collections := &fakeCollectionStore{collections: []models.Collection{
		{ID: id, Name: "Full"},
	}}
	nfts := &fakeNFTStore{nfts: []models.NFT{
		{ID: "n1", CollectionID: id, Index: "1", Owner: "0xa"},
	}}

	svc := newCollectionService(collections, nfts, &fakeActivityStore{}, &fakePersonStore{}, time.Now())

	err := svc.Delete(id)
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	nfts.nfts = nil
	require.NoError(t, svc.Delete(id))
}

func TestGetOwners(t *testing.T) {
	id := uuid.New().String()
	collections := &fakeCollectionStore{collections: []models.Collection{
		{ID: id, Name: "Apes"},
	}}
	nfts := &fakeNFTStore{nfts: []models.NFT{
		{ID: "n1", CollectionID: id, Index: "1", Owner: "0xa"},
		{ID: "n2", CollectionID: id, Index: "2", Owner: "0xb"},
		{ID: "n3", CollectionID: id, Index: "3", Owner: "0xa"},
	}}
	persons := &fakePersonStore{persons: []models.Person{
		{ID: "p1", Wallet: "0xa", Name: "Alice"},
	}}

	svc := newCollectionService(collections, nfts, &fakeActivityStore{}, persons, time.Now())

	owners, err := svc.GetOwners(id)
	require.NoError(t, err)
	require.Len(t, owners, 2)

	// First-seen order; an unregistered wallet stays a null entry
	require.NotNil(t, owners[0])
	assert.Equal(t, "Alice", owners[0].Name)
	assert.Nil(t, owners[1])
}
