package microcenter

import (
	"fmt"
	"gpumon-backend/lib/htmlutil"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RawListing is one product cell of a search-results page, fields still
// in the shape the markup carries them.
type RawListing struct {
	Title     string
	SKU       string
	StockText string
	PriceText string
}

// ExtractListings walks the product cells of a search-results page and
// pulls all four fields out of each cell in a single pass, so the
// fields of one product can never pair up with those of another.
//
// a cell missing its title or price marker is an alignment failure:
// the old column-wise markup scan would silently shift every later
// product's fields by one, so the whole document is rejected instead.
func ExtractListings(doc *goquery.Document) ([]RawListing, error) {
	cells := doc.Find("li.product_wrapper")
	listings := make([]RawListing, 0, cells.Length())

	var err error
	cells.EachWithBreak(func(i int, cell *goquery.Selection) bool {
		title := htmlutil.CleanText(cell.Find(".detail_wrapper a").First().Text())
		if title == "" {
			err = fmt.Errorf("%w: listing %d has no title anchor", ErrAlignment, i)
			return false
		}

		sku := htmlutil.CleanText(cell.Find(".sku").First().Text())
		sku = strings.TrimPrefix(sku, "SKU: ")
		if sku == "" {
			sku = "unknown"
		}

		stockText := htmlutil.CleanText(cell.Find(".stock").First().Text())

		priceSpan := cell.Find(".price span[itemprop=price]").First()
		if priceSpan.Length() == 0 {
			err = fmt.Errorf("%w: listing %d (sku %s) has no price marker", ErrAlignment, i, sku)
			return false
		}

		listings = append(listings, RawListing{
			Title:     title,
			SKU:       sku,
			StockText: stockText,
			PriceText: htmlutil.CleanText(priceSpan.Text()),
		})
		return true
	})
	if err != nil {
		return nil, err
	}

	return listings, nil
}
