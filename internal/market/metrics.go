// Package market derives read-only market statistics for a collection
// from its NFT and Activity records. All functions are pure: callers
// supply the records and, where windows are involved, the current time.
package market

import (
	"sort"
	"time"

	"github.com/arcmarket/arc-api/internal/models"
)

// FloorPrice returns the minimum price among list and sale activity,
// or 0 when no qualifying activity exists. The activity log is the
// authoritative source for the floor; NFT.Price is not consulted.
func FloorPrice(activities []models.Activity) float64 {
	found := false
	var floor float64
	for _, a := range activities {
		if a.Type != models.ActivityTypeList && a.Type != models.ActivityTypeSale {
			continue
		}
		if !found || a.Price < floor {
			floor = a.Price
			found = true
		}
	}
	if !found {
		return 0
	}
	return floor
}

// TradeDelta reports the trailing-24h activity volume and its
// percentage change against the prior 24h window. Every activity type
// contributes to the sums, matching the marketplace's historical
// behavior.
//
//	today == 0                  => percent = 0
//	today != 0 && yesterday == 0 => percent = 100
//	otherwise                    => percent = today/yesterday * 100
func TradeDelta(activities []models.Activity, now time.Time) (percent, today float64) {
	dayAgo := now.Add(-24 * time.Hour).Unix()
	twoDaysAgo := now.Add(-48 * time.Hour).Unix()

	var yesterday float64
	for _, a := range activities {
		if a.Date > dayAgo {
			today += a.Price
		} else if a.Date > twoDaysAgo {
			yesterday += a.Price
		}
	}

	switch {
	case today == 0:
		percent = 0
	case yesterday == 0:
		percent = 100
	default:
		percent = today / yesterday * 100
	}
	return percent, today
}

// Owners returns the distinct owner wallets of the given NFTs in
// first-seen order.
func Owners(nfts []models.NFT) []string {
	seen := make(map[string]struct{}, len(nfts))
	owners := make([]string, 0, len(nfts))
	for _, nft := range nfts {
		if _, ok := seen[nft.Owner]; ok {
			continue
		}
		seen[nft.Owner] = struct{}{}
		owners = append(owners, nft.Owner)
	}
	return owners
}

// Volume sums the current prices of the given NFTs. This legacy figure
// is distinct from the activity-window volume reported by TradeDelta.
func Volume(nfts []models.NFT) float64 {
	var total float64
	for _, nft := range nfts {
		total += nft.Price
	}
	return total
}

// TopByVolume returns at most n summaries ordered by volume descending.
// Ties keep their input order.
func TopByVolume(summaries []models.CollectionSummary, n int) []models.CollectionSummary {
	sorted := make([]models.CollectionSummary, len(summaries))
	copy(sorted, summaries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Volume > sorted[j].Volume
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
