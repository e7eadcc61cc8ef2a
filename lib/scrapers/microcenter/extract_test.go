package microcenter

import (
	"gpumon-backend/lib/telemetry"
	"strings"
	"testing"

	_ "embed"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

//go:embed testdata/search_results.html
var searchResultsFixture string

func parseFixture(t *testing.T, markup string) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

func TestExtractListings(t *testing.T) {
	cleanup := telemetry.SetupForTesting(t, "test:scrapers/microcenter")
	defer cleanup()

	listings, err := ExtractListings(parseFixture(t, searchResultsFixture))
	require.NoError(t, err)

	require.Equal(t, []RawListing{
		{
			Title:     "ASUS NVIDIA GeForce RTX 5090 TUF GDDR7 24GB Graphics Card",
			SKU:       "683422",
			StockText: "IN STOCK+5 at Houston Store",
			PriceText: "$1,299.99",
		},
		{
			Title:     "Gigabyte NVIDIA GeForce RTX 5070 Ti Gaming OC GDDR7 16GB Graphics Card",
			SKU:       "655321",
			StockText: "SOLD OUT",
			PriceText: "$829.99",
		},
		{
			Title:     "Sapphire AMD Radeon RX 9070 XT Pulse GDDR6 16GB Graphics Card",
			SKU:       "unknown",
			StockText: "IN STOCK+22 at Houston Store",
			PriceText: "$699.99",
		},
	}, listings)
}

func TestExtractListingsMissingPriceMarker(t *testing.T) {
	broken := strings.Replace(searchResultsFixture, `itemprop="price"`, `itemprop="offer"`, 1)

	_, err := ExtractListings(parseFixture(t, broken))
	require.ErrorIs(t, err, ErrAlignment)
}

func TestExtractListingsMissingTitle(t *testing.T) {
	broken := strings.Replace(searchResultsFixture, `class="detail_wrapper"`, `class="details"`, 1)

	_, err := ExtractListings(parseFixture(t, broken))
	require.ErrorIs(t, err, ErrAlignment)
}

func TestExtractListingsEmptyDocument(t *testing.T) {
	listings, err := ExtractListings(parseFixture(t, "<html><body></body></html>"))
	require.NoError(t, err)
	require.Empty(t, listings)
}
