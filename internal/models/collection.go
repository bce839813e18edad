package models

import (
	"encoding/json"
	"time"

	"github.com/lib/pq"
)

// OfferStatus represents the collection-wide offer state
type OfferStatus string

const (
	OfferStatusNone     OfferStatus = "none"
	OfferStatusActive   OfferStatus = "active"
	OfferStatusCanceled OfferStatus = "canceled"
)

// Default contracts used when a collection does not deploy its own
const (
	DefaultContractERC721  = "0x8113901EEd7d41Db3c9D327484be1870605e4144"
	DefaultContractERC1155 = "0xaf8fC965cF9572e5178ae95733b1631440e7f5C8"
)

// Collection represents a named grouping of NFTs sharing a contract and creator
type Collection struct {
	ID             string          `json:"id" db:"id"`
	Contract       string          `json:"contract" db:"contract"`
	Name           string          `json:"name" db:"name"`
	URL            string          `json:"url" db:"url"`
	Description    string          `json:"description" db:"description"`
	Category       string          `json:"category" db:"category"`
	Blockchain     string          `json:"blockchain" db:"blockchain"`
	Platform       string          `json:"platform" db:"platform"`
	LogoURL        string          `json:"logoUrl" db:"logo_url"`
	FeaturedURL    string          `json:"featuredUrl" db:"featured_url"`
	BannerURL      string          `json:"bannerUrl" db:"banner_url"`
	Links          pq.StringArray  `json:"links" db:"links"`
	Creator        string          `json:"creator" db:"creator"`
	CreatorEarning float64         `json:"creatorEarning" db:"creator_earning"`
	IsVerified     bool            `json:"isVerified" db:"is_verified"`
	IsExplicit     bool            `json:"isExplicit" db:"is_explicit"`
	Properties     json.RawMessage `json:"properties" db:"properties"`
	OfferStatus    OfferStatus     `json:"offerStatus" db:"offer_status"`
	CreatedAt      time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at" db:"updated_at"`
}

// CollectionSummary is the denormalized read model returned by collection views.
// Volume sums current NFT prices; H24 is the trailing-24h activity volume.
// The two figures are intentionally distinct.
type CollectionSummary struct {
	Collection
	CreatorDetail *Person    `json:"creatorDetail"`
	Volume        float64    `json:"volume"`
	H24           float64    `json:"_24h"`
	H24Percent    float64    `json:"_24hPercent"`
	FloorPrice    float64    `json:"floorPrice"`
	Owners        int        `json:"owners"`
	Items         int        `json:"items"`
	NFTs          []NFT      `json:"nfts,omitempty"`
	Activities    []Activity `json:"activities,omitempty"`
}

// CreateCollectionRequest represents a request to create a collection
type CreateCollectionRequest struct {
	Name           string  `json:"name"`
	URL            string  `json:"url"`
	Description    string  `json:"description"`
	Category       string  `json:"category"`
	Blockchain     string  `json:"blockchain"`
	SiteURL        string  `json:"siteUrl"`
	DiscordURL     string  `json:"discordUrl"`
	InstagramURL   string  `json:"instagramUrl"`
	MediumURL      string  `json:"mediumUrl"`
	TelegramURL    string  `json:"telegramUrl"`
	CreatorEarning float64 `json:"creatorEarning"`
	IsExplicit     bool    `json:"isExplicit"`
	CreatorID      string  `json:"creatorId"`
	LogoURL        string  `json:"logoUrl"`
	FeaturedURL    string  `json:"featuredUrl"`
	BannerURL      string  `json:"bannerUrl"`
}

// UpdateCollectionRequest represents a request to update collection metadata
type UpdateCollectionRequest struct {
	Description *string         `json:"description,omitempty"`
	Category    *string         `json:"category,omitempty"`
	LogoURL     *string         `json:"logoUrl,omitempty"`
	FeaturedURL *string         `json:"featuredUrl,omitempty"`
	BannerURL   *string         `json:"bannerUrl,omitempty"`
	Links       []string        `json:"links,omitempty"`
	IsExplicit  *bool           `json:"isExplicit,omitempty"`
	Properties  json.RawMessage `json:"properties,omitempty"`
}

// CollectionParams represents the parameters for filtering collections
type CollectionParams struct {
	Category   string `json:"category"`
	Blockchain string `json:"blockchain"`
	Platform   string `json:"platform"`
	Verified   *bool  `json:"verified"`
	Page       int    `json:"page"`
	PageSize   int    `json:"page_size"`
}

// SearchResult is the combined collection and item search response
type SearchResult struct {
	Collections []CollectionSummary `json:"collections"`
	Items       []NFT               `json:"items"`
}
