package plexnet

import (
	"context"
	"net/url"
)

// MyPlexIdentity identifies the aggregator transport. It can list
// resources but can't transcode them.
const MyPlexIdentity = "myplex"

// Transport is a connection to a server.
type Transport interface {
	// Query fetches path and returns the root element. The listing is its children.
	Query(ctx context.Context, path string) (*Element, error)

	// Put asks the server to act on path without reading a response.
	Put(ctx context.Context, path string) error

	URL(path string) string
	ImageTranscodeURL(path string, width, height int, extras url.Values) string
	Identity() string
}
