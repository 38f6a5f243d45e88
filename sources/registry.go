package sources

import (
	"github.com/raushankrgupta/stylefinder/fetch"
	"github.com/raushankrgupta/stylefinder/sources/asos"
	"github.com/raushankrgupta/stylefinder/sources/gimages"
	"github.com/raushankrgupta/stylefinder/sources/hm"
	"github.com/raushankrgupta/stylefinder/sources/rakuten"
	"github.com/raushankrgupta/stylefinder/sources/shopstyle"
)

// Registered returns every product adapter in registration order. The order
// matters: the aggregator concatenates results by this position. Adapters
// whose credentials are missing stay registered and simply return no results.
func Registered(fetcher *fetch.Fetcher) []Adapter {
	return []Adapter{
		rakuten.New(),
		shopstyle.New(),
		asos.New(),
		hm.New(fetcher),
	}
}

// ImageSource returns the image-search adapter, used both standalone and by
// the image resolution cascade.
func ImageSource() ImageSearcher {
	return gimages.New()
}
