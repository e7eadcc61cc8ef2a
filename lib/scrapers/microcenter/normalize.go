package microcenter

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// vendor/marketing noise that pads out listing titles
var titleNoise = []string{
	"NVIDIA ",
	"AMD ",
	"GeForce ",
	"Radeon ",
	"GDDR7",
	"GDDR6",
	"PCIe 4.0",
	"PCIe 5.0",
	"Graphics Card",
}

// boilerplate around the actual stock count, e.g. "IN STOCK+5 at Houston Store"
var stockNoise = []string{
	"SOLD OUT",
	"IN STOCK",
	"at Houston Store",
	"Buy In Store",
	"+",
	"-",
}

var priceRun = regexp.MustCompile(`[\d,.]+`)

// CleanTitle strips vendor and marketing tokens from a listing title so
// only brand, family, model and memory size remain.
func CleanTitle(raw string) string {
	title := raw
	for _, noise := range titleNoise {
		title = strings.ReplaceAll(title, noise, "")
	}
	return strings.TrimSpace(title)
}

// ParseStock strips boilerplate from stock text and parses the count.
// text with no digits left ("SOLD OUT") means zero, anything left over
// that isn't a number is a parse failure rather than a silent zero.
func ParseStock(raw string) (int, error) {
	text := raw
	for _, noise := range stockNoise {
		text = strings.ReplaceAll(text, noise, "")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}

	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%w: stock text %q", ErrParse, raw)
	}
	return count, nil
}

// ParsePrice pulls the numeric run out of price text like "$1,299.99"
// and parses it with thousands separators removed.
func ParsePrice(raw string) (float64, error) {
	run := priceRun.FindString(raw)
	if run == "" {
		return 0, fmt.Errorf("%w: price text %q", ErrParse, raw)
	}

	price, err := strconv.ParseFloat(strings.ReplaceAll(run, ",", ""), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: price text %q", ErrParse, raw)
	}
	return price, nil
}
