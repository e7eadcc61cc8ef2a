package gpumon

// Unknown is the sentinel for a brand or family no precedence list
// entry matched. it is a real label value on the exposition side,
// never an empty string.
const Unknown = "unknown"

type SourceConfig struct {
	Name string `json:"name"`
	Url  string `json:"url"`
}

type Config struct {
	Port               int    `json:"port"`
	IntervalMinutes    int    `json:"interval_minutes"`
	SourceDelaySeconds int    `json:"source_delay_seconds"`
	EvictAfterMinutes  int    `json:"evict_after_minutes"`
	UserAgent          string `json:"user_agent"`
	// scraped in order within one cycle
	Sources []SourceConfig `json:"sources"`
	// precedence lists: earlier entries win, so "Ti" variants must come
	// before the base family name they are a prefix of
	Brands   []string `json:"brands"`
	Families []string `json:"families"`
}

var defaultSources = []SourceConfig{
	{
		Name: "nvidia",
		Url:  "https://www.microcenter.com/search/search_results.aspx?Ntk=all&sortby=match&N=4294802166&myStore=false&storeid=155&rpp=96",
	},
	{
		Name: "radeon",
		Url:  "https://www.microcenter.com/search/search_results.aspx?Ntk=all&sortby=match&N=4294802072&myStore=false&storeid=155&rpp=96",
	},
}

var defaultBrands = []string{
	"ASRock", "ASUS", "Gigabyte", "MSI", "PNY",
	"PowerColor", "Sapphire", "XFX", "Zotac",
}

var defaultFamilies = []string{
	"RTX 5090", "RTX 5080", "RTX 5070 Ti",
	"RTX 5060 Ti", "RTX 5070", "RTX 5060",
}

// WithDefaults fills in anything the config file left unset. an
// entirely absent file yields a fully working default setup.
func (c Config) WithDefaults() Config {
	if c.Port == 0 {
		c.Port = 10123
	}
	if c.IntervalMinutes == 0 {
		c.IntervalMinutes = 1
	}
	if c.SourceDelaySeconds == 0 {
		c.SourceDelaySeconds = 5
	}
	if len(c.Sources) == 0 {
		c.Sources = defaultSources
	}
	if len(c.Brands) == 0 {
		c.Brands = defaultBrands
	}
	if len(c.Families) == 0 {
		c.Families = defaultFamilies
	}
	return c
}
