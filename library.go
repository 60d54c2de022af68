package plexnet

import (
	"context"
	"net/url"
)

const (
	TypeMovie   = "movie"
	TypeShow    = "show"
	TypeSeason  = "season"
	TypeEpisode = "episode"
	TypeArtist  = "artist"
	TypeAlbum   = "album"
	TypeTrack   = "track"
	TypePhoto   = "photo"

	TagDirectory = "Directory"
	TagMedia     = "Media"
	TagPart      = "Part"
	TagServer    = "Server"
)

func init() {
	Register(TypeMovie, newMovie)
	Register(TypeEpisode, newEpisode)
	Register(TypeTrack, newTrack)
	Register(TypePhoto, newPhoto)
	Register(TypeShow, newShow)
	Register(TypeSeason, newSeason)
	Register(TypeArtist, newArtist)
	Register(TypeAlbum, newAlbum)
	Register(TagDirectory, newDirectory)
	Register(TagServer, newResource)
}

// Playable is an item with media attached.
type Playable struct {
	Object

	// Media holds the Media children as *MediaItem.
	Media *ItemList
}

func (p *Playable) init(elem *Element, initPath string, server Transport, container *Container, self Entity) {
	p.Init(elem, initPath, server, container)
	var data []*Element
	if elem != nil {
		data = elem.Children
	}
	p.Media = NewMediaItemList(data, newMediaItem, TagMedia, initPath, server, self)
}

type Movie struct{ Playable }

func newMovie(elem *Element, initPath string, server Transport, container *Container) Entity {
	var m Movie
	m.init(elem, initPath, server, container, &m)
	return &m
}

type Episode struct{ Playable }

func newEpisode(elem *Element, initPath string, server Transport, container *Container) Entity {
	var e Episode
	e.init(elem, initPath, server, container, &e)
	return &e
}

type Track struct{ Playable }

func newTrack(elem *Element, initPath string, server Transport, container *Container) Entity {
	var t Track
	t.init(elem, initPath, server, container, &t)
	return &t
}

type Photo struct{ Playable }

func newPhoto(elem *Element, initPath string, server Transport, container *Container) Entity {
	var p Photo
	p.init(elem, initPath, server, container, &p)
	return &p
}

// Directory is a browsable node: a library section, a show, an album.
type Directory struct {
	Object
}

func newDirectory(elem *Element, initPath string, server Transport, container *Container) Entity {
	var d Directory
	d.Init(elem, initPath, server, container)
	return &d
}

// Children lists what's under the directory's key.
func (d *Directory) Children(ctx context.Context) ([]Entity, error) {
	server := d.Server()
	if server == nil {
		return nil, ErrNoServer
	}
	return ListItems(ctx, server, d.Key(), "", WatchedAny, false)
}

type Show struct{ Directory }

func newShow(elem *Element, initPath string, server Transport, container *Container) Entity {
	var s Show
	s.Init(elem, initPath, server, container)
	return &s
}

type Season struct{ Directory }

func newSeason(elem *Element, initPath string, server Transport, container *Container) Entity {
	var s Season
	s.Init(elem, initPath, server, container)
	return &s
}

type Artist struct{ Directory }

func newArtist(elem *Element, initPath string, server Transport, container *Container) Entity {
	var a Artist
	a.Init(elem, initPath, server, container)
	return &a
}

type Album struct{ Directory }

func newAlbum(elem *Element, initPath string, server Transport, container *Container) Entity {
	var a Album
	a.Init(elem, initPath, server, container)
	return &a
}

// MediaItem is one version of a playable item.
type MediaItem struct {
	Object

	// Owner is the item this media belongs to.
	Owner Entity

	// Parts holds the Part children as *MediaPart.
	Parts *ItemList
}

func newMediaItem(elem *Element, initPath string, server Transport, media Entity) Entity {
	m := MediaItem{Owner: media}
	m.Init(elem, initPath, server, nil)
	var data []*Element
	if elem != nil {
		data = elem.Children
	}
	m.Parts = NewMediaItemList(data, newMediaPart, TagPart, initPath, server, &m)
	return &m
}

// MediaPart is a file backing a MediaItem.
type MediaPart struct {
	Object

	Media Entity
}

func newMediaPart(elem *Element, initPath string, server Transport, media Entity) Entity {
	p := MediaPart{Media: media}
	p.Init(elem, initPath, server, nil)
	return &p
}

// Resource is a server as listed by discovery or the aggregator.
type Resource struct {
	Object
}

func newResource(elem *Element, initPath string, server Transport, container *Container) Entity {
	var r Resource
	r.Init(elem, initPath, server, container)
	return &r
}

func (r *Resource) Name() string {
	return r.Get("name").Or("")
}

// Address returns host:port of the server.
func (r *Resource) Address() string {
	host := r.Get("host").Or("")
	port := r.Get("port").Or("")
	if port == "" {
		return host
	}
	return host + ":" + port
}

// Connect returns a Server talking to the resource over plain HTTP.
func (r *Resource) Connect(token string) *Server {
	s := NewServer(&url.URL{Scheme: "http", Host: r.Address()}, token)
	if id := r.Get("machineIdentifier").Or(""); id != "" {
		s.SetIdentity(id)
	}
	return s
}
