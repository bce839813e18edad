package models

import (
	"encoding/json"
	"time"
)

// NFTStatus represents the lifecycle state of an NFT
type NFTStatus string

const (
	NFTStatusMinted      NFTStatus = "minted"
	NFTStatusForSale     NFTStatus = "for_sale"
	NFTStatusSold        NFTStatus = "sold"
	NFTStatusTransferred NFTStatus = "transferred"
)

// NFT represents a single item inside a collection
type NFT struct {
	ID           string          `json:"id" db:"id"`
	CollectionID string          `json:"collection" db:"collection_id"`
	Index        string          `json:"index" db:"index"`
	Owner        string          `json:"owner" db:"owner"`
	Creator      string          `json:"creator" db:"creator"`
	Name         string          `json:"name" db:"name"`
	Description  string          `json:"description" db:"description"`
	ArtURI       string          `json:"artURI" db:"art_uri"`
	Price        float64         `json:"price" db:"price"`
	Status       NFTStatus       `json:"status" db:"status"`
	Properties   json.RawMessage `json:"properties" db:"properties"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}

// NFTContext is the projected display context attached to activity records
type NFTContext struct {
	ArtURI *string `json:"artUri"`
	Name   *string `json:"name"`
}

// NFTDetail is an NFT with its owner and creator resolved
type NFTDetail struct {
	NFT
	OwnerDetail   *Person `json:"ownerDetail"`
	CreatorDetail *Person `json:"creatorDetail"`
}

// CreateItemRequest represents a request to create an NFT
type CreateItemRequest struct {
	CollectionID string          `json:"collection"`
	Index        string          `json:"index"`
	Owner        string          `json:"owner"`
	Creator      string          `json:"creator"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	ArtURI       string          `json:"artURI"`
	Price        float64         `json:"price"`
	Properties   json.RawMessage `json:"properties"`
}

// UpdateItemRequest represents a request to update an NFT
type UpdateItemRequest struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	ArtURI      *string  `json:"artURI,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      *string  `json:"status,omitempty"`
}

// NFTParams represents the parameters for filtering NFTs
type NFTParams struct {
	CollectionID string `json:"collection"`
	Owner        string `json:"owner"`
	Creator      string `json:"creator"`
	Status       string `json:"status"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}
