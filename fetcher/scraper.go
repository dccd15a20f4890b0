package fetcher

// Fetcher interface defines the contract for fetching implementations
type Fetcher interface {
	// Fetch retrieves the raw HTML document at the given URL
	Fetch(url string) (string, error)
}
