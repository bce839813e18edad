package models

import (
	"time"
)

// ActivityType represents the kind of market event an activity records
type ActivityType string

const (
	ActivityTypeList            ActivityType = "list"
	ActivityTypeSale            ActivityType = "sale"
	ActivityTypeOffer           ActivityType = "offer"
	ActivityTypeOfferCollection ActivityType = "offer_collection"
	ActivityTypeTransfer        ActivityType = "transfer"
	ActivityTypeCancelList      ActivityType = "cancel_list"
	ActivityTypeCancelOffer     ActivityType = "cancel_offer"
)

// Activity is an immutable market event tied to a collection and
// optionally to one NFT inside it. Collection-wide offers leave
// NFTIndex unset.
type Activity struct {
	ID           string       `json:"id" db:"id"`
	CollectionID string       `json:"collection" db:"collection_id"`
	NFTIndex     *string      `json:"nftId" db:"nft_index"`
	Type         ActivityType `json:"type" db:"type"`
	Price        float64      `json:"price" db:"price"`
	From         string       `json:"from" db:"from_wallet"`
	To           string       `json:"to" db:"to_wallet"`
	Date         int64        `json:"date" db:"date"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
}

// ActivityDetail is an activity with its NFT display context attached.
// NFTObject is a single NFTContext for item-scoped activity and a
// []NFTContext for collection-wide offers.
type ActivityDetail struct {
	Activity
	NFTObject interface{} `json:"nftObject"`
}

// ActivityParams represents the parameters for filtering activities
type ActivityParams struct {
	CollectionID string `json:"collection"`
	Wallet       string `json:"wallet"`
	Type         string `json:"type"`
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
}

// ListForSaleRequest represents a request to list an NFT for sale
type ListForSaleRequest struct {
	CollectionID string  `json:"collection"`
	Index        string  `json:"index"`
	Seller       string  `json:"seller"`
	Price        float64 `json:"price"`
}

// MakeOfferRequest represents a request to place an offer on an NFT
type MakeOfferRequest struct {
	CollectionID string  `json:"collection"`
	Index        string  `json:"index"`
	From         string  `json:"from"`
	Price        float64 `json:"price"`
}

// CollectionOfferRequest represents a collection-wide offer
type CollectionOfferRequest struct {
	CollectionID string  `json:"collection"`
	From         string  `json:"from"`
	Price        float64 `json:"price"`
}

// ApproveOfferRequest represents an owner accepting an offer
type ApproveOfferRequest struct {
	ActivityID string `json:"activityId"`
	Seller     string `json:"seller"`
}

// TransferRequest represents a direct NFT transfer between wallets
type TransferRequest struct {
	CollectionID string `json:"collection"`
	Index        string `json:"index"`
	From         string `json:"from"`
	To           string `json:"to"`
}

// CancelActivityRequest represents cancelling a listing or offer
type CancelActivityRequest struct {
	ActivityID string `json:"activityId"`
	From       string `json:"from"`
}
