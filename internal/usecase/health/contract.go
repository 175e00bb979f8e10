package health

import "context"

// CatalogInspector reports the state of the loaded catalog.
type CatalogInspector interface {
	Size() int
	Ranking() bool
}

// CachePinger checks image size cache availability.
type CachePinger interface {
	Ping(ctx context.Context) error
}
