package service

// Cleaner abstracts the async object-store cleanup queue. Services hand it
// the public URLs of files that became orphaned; deletion happens in the
// background and never fails the originating request.
type Cleaner interface {
	EnqueueURLs(urls ...string)
}

// NoopCleaner discards cleanup requests. Used in tests and when no object
// store is configured.
type NoopCleaner struct{}

func (NoopCleaner) EnqueueURLs(...string) {}

// replacedURLs returns the entries of old that are absent from updated.
func replacedURLs(old, updated []string) []string {
	keep := make(map[string]struct{}, len(updated))
	for _, u := range updated {
		keep[u] = struct{}{}
	}
	var gone []string
	for _, u := range old {
		if _, ok := keep[u]; !ok {
			gone = append(gone, u)
		}
	}
	return gone
}
