package plexnet

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Search types the server uses to filter media kinds.
var searchTypes = map[string]int{
	"movie":   1,
	"show":    2,
	"season":  3,
	"episode": 4,
	"artist":  8,
	"album":   9,
	"track":   10,
}

// Watched filters listings by view count.
type Watched int

const (
	WatchedAny Watched = iota
	WatchedOnly
	UnwatchedOnly
)

func (w Watched) String() string {
	return [...]string{
		WatchedAny:    "any",
		WatchedOnly:   "watched",
		UnwatchedOnly: "unwatched",
	}[w]
}

// FindItem returns the first item at path titled title, ignoring case.
func FindItem(ctx context.Context, server Transport, path, title string) (Entity, error) {
	data, err := server.Query(ctx, path)
	if err != nil {
		return nil, err
	}
	for _, elem := range data.Children {
		t, _ := elem.Attr("title")
		if strings.EqualFold(t, title) {
			return BuildItem(server, elem, path, false, nil)
		}
	}
	return nil, fmt.Errorf("%w: unable to find item: %s", ErrNotFound, title)
}

// BuildItem constructs the registered type for elem. The type comes from
// the tag if byTag is set and from the type attribute otherwise.
func BuildItem(server Transport, elem *Element, initPath string, byTag bool, container *Container) (Entity, error) {
	var libType string
	if byTag {
		libType = elem.Tag
	} else {
		libType, _ = elem.Attr("type")
	}

	c, ok := lookupType(libType)
	if !ok {
		return nil, &UnknownTypeError{Discriminator: libType}
	}
	return c(elem, initPath, server, container), nil
}

// ListItems builds every item at path that passes the filters. An empty
// libType matches everything. Items of unknown types are skipped.
func ListItems(ctx context.Context, server Transport, path, libType string, watched Watched, byTag bool) ([]Entity, error) {
	data, err := server.Query(ctx, path)
	if err != nil {
		return nil, err
	}

	container, err := NewContainer(data, path, server, "")
	if err != nil {
		return nil, err
	}

	var items []Entity
	for _, elem := range data.Children {
		if libType != "" {
			if t, _ := elem.Attr("type"); t != libType {
				continue
			}
		}

		views := viewCount(elem)
		if watched == WatchedOnly && views < 1 {
			continue
		}
		if watched == UnwatchedOnly && views >= 1 {
			continue
		}

		item, err := BuildItem(server, elem, path, byTag, container)
		if errors.Is(err, ErrUnknownType) {
			log.WithFields(log.Fields{
				"tag":  elem.Tag,
				"path": path,
			}).WithError(err).Debug("skip")
			continue
		}
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

func viewCount(elem *Element) int {
	s, ok := elem.Attr("viewCount")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// SearchType maps a media kind such as "movie" to its search type. A
// number that already is a search type is returned as is.
func SearchType(libType string) (int, error) {
	if n, err := strconv.Atoi(libType); err == nil {
		for _, v := range searchTypes {
			if v == n {
				return n, nil
			}
		}
	}
	if n, ok := searchTypes[strings.ToLower(libType)]; ok {
		return n, nil
	}
	return 0, fmt.Errorf("%w: unknown libtype: %s", ErrNotFound, libType)
}
