package services

import (
	"errors"
	"fmt"

	"github.com/arcmarket/arc-api/internal/models"
	"github.com/arcmarket/arc-api/internal/store"
)

// In-memory store fakes. Slices preserve insertion order so tests can
// assert on output ordering. The NFT and activity fakes error from
// their list methods when failList is set, and the person fake errors
// from lookups when failLookup is set, to exercise degraded paths.

type fakeCollectionStore struct {
	collections []models.Collection
}

func (f *fakeCollectionStore) GetByID(id string) (*models.Collection, error) {
	for i := range f.collections {
		if f.collections[i].ID == id {
			c := f.collections[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCollectionStore) GetByName(name string) (*models.Collection, error) {
	for i := range f.collections {
		if f.collections[i].Name == name {
			c := f.collections[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCollectionStore) GetByURL(url string) (*models.Collection, error) {
	for i := range f.collections {
		if f.collections[i].URL == url {
			c := f.collections[i]
			return &c, nil
		}
	}
	return nil, nil
}

func (f *fakeCollectionStore) List(filters []store.Filter, page, pageSize int) ([]models.Collection, error) {
	return f.collections, nil
}

func (f *fakeCollectionStore) Search(keyword string) ([]models.Collection, error) {
	return f.collections, nil
}

func (f *fakeCollectionStore) Create(collection *models.Collection) error {
	if collection.ID == "" {
		collection.ID = fmt.Sprintf("collection-%d", len(f.collections)+1)
	}
	f.collections = append(f.collections, *collection)
	return nil
}

func (f *fakeCollectionStore) Update(collection *models.Collection) error {
	for i := range f.collections {
		if f.collections[i].ID == collection.ID {
			f.collections[i] = *collection
			return nil
		}
	}
	return errors.New("collection not found")
}

func (f *fakeCollectionStore) Delete(id string) error {
	for i := range f.collections {
		if f.collections[i].ID == id {
			f.collections = append(f.collections[:i], f.collections[i+1:]...)
			return nil
		}
	}
	return errors.New("collection not found")
}

type fakeNFTStore struct {
	nfts     []models.NFT
	failList bool
}

func (f *fakeNFTStore) GetByID(id string) (*models.NFT, error) {
	for i := range f.nfts {
		if f.nfts[i].ID == id {
			n := f.nfts[i]
			return &n, nil
		}
	}
	return nil, nil
}

func (f *fakeNFTStore) GetByCollectionAndIndex(collectionID, index string) (*models.NFT, error) {
	for i := range f.nfts {
		if f.nfts[i].CollectionID == collectionID && f.nfts[i].Index == index {
			n := f.nfts[i]
			return &n, nil
		}
	}
	return nil, nil
}

func (f *fakeNFTStore) ListByCollection(collectionID string) ([]models.NFT, error) {
	if f.failList {
		return nil, errors.New("nft store down")
	}
	var out []models.NFT
	for _, n := range f.nfts {
		if n.CollectionID == collectionID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNFTStore) List(filters []store.Filter, page, pageSize int) ([]models.NFT, error) {
	if f.failList {
		return nil, errors.New("nft store down")
	}
	return f.nfts, nil
}

func (f *fakeNFTStore) Search(keyword string) ([]models.NFT, error) {
	return f.nfts, nil
}

func (f *fakeNFTStore) CountByCollection(collectionID string) (int, error) {
	count := 0
	for _, n := range f.nfts {
		if n.CollectionID == collectionID {
			count++
		}
	}
	return count, nil
}

func (f *fakeNFTStore) Create(nft *models.NFT) error {
	if nft.ID == "" {
		nft.ID = fmt.Sprintf("nft-%d", len(f.nfts)+1)
	}
	f.nfts = append(f.nfts, *nft)
	return nil
}

func (f *fakeNFTStore) Update(nft *models.NFT) error {
	for i := range f.nfts {
		if f.nfts[i].ID == nft.ID {
			f.nfts[i] = *nft
			return nil
		}
	}
	return errors.New("nft not found")
}

func (f *fakeNFTStore) Delete(id string) error {
	for i := range f.nfts {
		if f.nfts[i].ID == id {
			f.nfts = append(f.nfts[:i], f.nfts[i+1:]...)
			return nil
		}
	}
	return errors.New("nft not found")
}

type fakeActivityStore struct {
	activities []models.Activity
	failList   bool
}

func (f *fakeActivityStore) GetByID(id string) (*models.Activity, error) {
	for i := range f.activities {
		if f.activities[i].ID == id {
			a := f.activities[i]
			return &a, nil
		}
	}
	return nil, nil
}

func (f *fakeActivityStore) ListByCollection(collectionID string) ([]models.Activity, error) {
	if f.failList {
		return nil, errors.New("activity store down")
	}
	var out []models.Activity
	for _, a := range f.activities {
		if a.CollectionID == collectionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) ListByWallet(wallet string) ([]models.Activity, error) {
	var out []models.Activity
	for _, a := range f.activities {
		if a.From == wallet || a.To == wallet {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeActivityStore) List(filters []store.Filter, page, pageSize int) ([]models.Activity, error) {
	if f.failList {
		return nil, errors.New("activity store down")
	}
	return f.activities, nil
}

func (f *fakeActivityStore) Create(activity *models.Activity) error {
	if activity.ID == "" {
		activity.ID = fmt.Sprintf("activity-%d", len(f.activities)+1)
	}
	f.activities = append(f.activities, *activity)
	return nil
}

func (f *fakeActivityStore) Delete(id string) error {
	for i := range f.activities {
		if f.activities[i].ID == id {
			f.activities = append(f.activities[:i], f.activities[i+1:]...)
			return nil
		}
	}
	return errors.New("activity not found")
}

type fakePersonStore struct {
	persons    []models.Person
	failLookup bool
}

func (f *fakePersonStore) GetByID(id string) (*models.Person, error) {
	for i := range f.persons {
		if f.persons[i].ID == id {
			p := f.persons[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePersonStore) GetByWallet(wallet string) (*models.Person, error) {
	if f.failLookup {
		return nil, errors.New("person store down")
	}
	for i := range f.persons {
		if f.persons[i].Wallet == wallet {
			p := f.persons[i]
			return &p, nil
		}
	}
	return nil, nil
}

func (f *fakePersonStore) List(filters []store.Filter, page, pageSize int) ([]models.Person, error) {
	return f.persons, nil
}

func (f *fakePersonStore) Create(person *models.Person) error {
	if person.ID == "" {
		person.ID = fmt.Sprintf("person-%d", len(f.persons)+1)
	}
	f.persons = append(f.persons, *person)
	return nil
}

func (f *fakePersonStore) Update(person *models.Person) error {
	for i := range f.persons {
		if f.persons[i].ID == person.ID {
			f.persons[i] = *person
			return nil
		}
	}
	return errors.New("person not found")
}

type capturingPublisher struct {
	published []models.Activity
}

func (c *capturingPublisher) PublishActivity(activity models.Activity) {
	c.published = append(c.published, activity)
}
