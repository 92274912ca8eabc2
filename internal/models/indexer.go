package models

// Indexer protocols.
const (
	ProtocolTorrent = "torrent"
	ProtocolUsenet  = "usenet"
)

// Indexer is a row of the indexers table.
type Indexer struct {
	ID                      int64
	Name                    string
	Implementation          string
	Protocol                string
	URL                     string
	APIKey                  string
	SeedRatio               string
	Tags                    []string
	Priority                int
	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool
}

// IndexerSettings holds the options shared by all indexers.
type IndexerSettings struct {
	MinimumAge      int
	Retention       int
	MaximumSize     int
	RssSyncInterval int
}

// IndexerTestResult reports the outcome of testing one indexer.
type IndexerTestResult struct {
	Name    string
	Valid   bool
	Failure string
}
