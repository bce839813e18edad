package market

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcmarket/arc-api/internal/models"
)

func act(t models.ActivityType, price float64, date int64) models.Activity {
	return models.Activity{Type: t, Price: price, Date: date}
}

func TestFloorPrice(t *testing.T) {
	tests := []struct {
		name       string
		activities []models.Activity
		want       float64
	}{
		{
			name:       "no activity",
			activities: nil,
			want:       0,
		},
		{
			name: "no qualifying activity",
			activities: []models.Activity{
				act(models.ActivityTypeOffer, 5, 0),
				act(models.ActivityTypeTransfer, 1, 0),
			},
			want: 0,
		},
		{
			name: "minimum among list and sale",
			activities: []models.Activity{
				act(models.ActivityTypeList, 30, 0),
				act(models.ActivityTypeSale, 10, 0),
				act(models.ActivityTypeList, 20, 0),
				act(models.ActivityTypeOffer, 1, 0),
			},
			want: 10,
		},
		{
			name: "zero-priced listing is a valid floor",
			activities: []models.Activity{
				act(models.ActivityTypeList, 0, 0),
				act(models.ActivityTypeSale, 7, 0),
			},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FloorPrice(tt.activities))
		})
	}
}

func TestTradeDelta(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		activities  []models.Activity
		wantPercent float64
		wantToday   float64
	}{
		{
			name:        "empty log",
			activities:  nil,
			wantPercent: 0,
			wantToday:   0,
		},
		{
			name: "today zero forces percent zero regardless of yesterday",
			activities: []models.Activity{
				act(models.ActivityTypeSale, 500, now.Add(-30*time.Hour).Unix()),
			},
			wantPercent: 0,
			wantToday:   0,
		},
		{
			name: "today nonzero with empty yesterday is 100",
			activities: []models.Activity{
				act(models.ActivityTypeSale, 12, now.Add(-time.Hour).Unix()),
			},
			wantPercent: 100,
			wantToday:   12,
		},
		{
			name: "sale today versus sale yesterday",
			activities: []models.Activity{
				act(models.ActivityTypeSale, 10, now.Add(-time.Hour).Unix()),
				act(models.ActivityTypeSale, 20, now.Add(-30*time.Hour).Unix()),
			},
			wantPercent: 50,
			wantToday:   10,
		},
		{
			name: "all activity types count toward volume",
			activities: []models.Activity{
				act(models.ActivityTypeOffer, 5, now.Add(-2*time.Hour).Unix()),
				act(models.ActivityTypeList, 5, now.Add(-3*time.Hour).Unix()),
				act(models.ActivityTypeTransfer, 10, now.Add(-26*time.Hour).Unix()),
			},
			wantPercent: 100,
			wantToday:   10,
		},
		{
			name: "older than 48h is ignored",
			activities: []models.Activity{
				act(models.ActivityTypeSale, 8, now.Add(-time.Hour).Unix()),
				act(models.ActivityTypeSale, 999, now.Add(-72*time.Hour).Unix()),
			},
			wantPercent: 100,
			wantToday:   8,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			percent, today := TradeDelta(tt.activities, now)
			assert.Equal(t, tt.wantPercent, percent)
			assert.Equal(t, tt.wantToday, today)
		})
	}
}

func TestTradeDeltaDeterministic(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	activities := []models.Activity{
		act(models.ActivityTypeSale, 10, now.Add(-time.Hour).Unix()),
		act(models.ActivityTypeSale, 20, now.Add(-30*time.Hour).Unix()),
	}

	p1, t1 := TradeDelta(activities, now)
	p2, t2 := TradeDelta(activities, now)
	assert.Equal(t, p1, p2)
	assert.Equal(t, t1, t2)
}

func TestOwners(t *testing.T) {
	nfts := []models.NFT{
		{Owner: "0xaaa"},
		{Owner: "0xbbb"},
		{Owner: "0xaaa"},
	}

	owners := Owners(nfts)
	require.Len(t, owners, 2)
	assert.Equal(t, []string{"0xaaa", "0xbbb"}, owners)

	assert.Empty(t, Owners(nil))
}

func TestVolume(t *testing.T) {
	nfts := []models.NFT{
		{Price: 1.5},
		{Price: 2},
		{Price: 0},
	}
	assert.Equal(t, 3.5, Volume(nfts))
	assert.Equal(t, float64(0), Volume(nil))
}

func TestTopByVolume(t *testing.T) {
	summaries := make([]models.CollectionSummary, 0, 12)
	volumes := []float64{5, 50, 10, 3, 42, 42, 7, 1, 90, 2, 6, 11}
	for i, v := range volumes {
		s := models.CollectionSummary{Volume: v}
		s.Name = string(rune('a' + i))
		summaries = append(summaries, s)
	}

	top := TopByVolume(summaries, 10)
	require.Len(t, top, 10)
	for i := 1; i < len(top); i++ {
		assert.GreaterOrEqual(t, top[i-1].Volume, top[i].Volume)
	}
	assert.Equal(t, float64(90), top[0].Volume)

	// ties keep input order
	var first, second string
	for _, s := range top {
		if s.Volume == 42 {
			if first == "" {
				first = s.Name
			} else {
				second = s.Name
			}
		}
	}
	assert.Equal(t, "e", first)
	assert.Equal(t, "f", second)

	// input is not mutated
	assert.Equal(t, float64(5), summaries[0].Volume)

	// fewer than n entries pass through sorted
	small := TopByVolume(summaries[:3], 10)
	require.Len(t, small, 3)
	assert.Equal(t, float64(50), small[0].Volume)
}
