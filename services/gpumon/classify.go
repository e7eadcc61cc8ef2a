package gpumon

import (
	"fmt"
	"gpumon-backend/lib/scrapers/microcenter"
	"strings"
)

type Classification struct {
	Brand      string
	Family     string
	Model      string
	MemorySize string
}

// Classifier assigns brand and GPU family to a cleaned listing title by
// ordered precedence matching.
type Classifier struct {
	brands   []string
	families []string
}

func NewClassifier(brands, families []string) Classifier {
	return Classifier{brands: brands, families: families}
}

// Classify picks the first brand that prefixes the title and the first
// family contained anywhere in it, then splits what is left on the last
// space into model and memory size. titles that leave a single token
// after brand/family removal cannot be split and are rejected.
func (c Classifier) Classify(title string) (Classification, error) {
	brand := Unknown
	for _, b := range c.brands {
		if strings.HasPrefix(title, b) {
			brand = b
			break
		}
	}

	family := Unknown
	for _, f := range c.families {
		if strings.Contains(title, f) {
			family = f
			break
		}
	}

	remainder := title
	if brand != Unknown {
		remainder = strings.TrimSpace(strings.TrimPrefix(remainder, brand))
	}
	if family != Unknown {
		remainder = strings.TrimSpace(strings.Replace(remainder, family, "", 1))
	}

	split := strings.LastIndex(remainder, " ")
	if split < 0 {
		return Classification{}, fmt.Errorf(
			"%w: no model/memory split left in title %q", microcenter.ErrParse, title,
		)
	}

	return Classification{
		Brand:      brand,
		Family:     family,
		Model:      strings.TrimSpace(remainder[:split]),
		MemorySize: remainder[split+1:],
	}, nil
}
