package plexnet

import (
	"context"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Entity is anything built from the registry.
type Entity interface {
	Get(name string) Value
	GetContext(ctx context.Context, name string) Value
	Reload(ctx context.Context) error
	Refresh(ctx context.Context) error
	IsFullObject() bool
	Base() *Object
}

// Object is a remote resource that may have been built from a partial
// listing. Reading an attribute the listing didn't carry fetches the full
// resource from its key once, then answers from whatever came back.
//
// Concrete types embed Object and call Init from their constructor.
type Object struct {
	mu        sync.Mutex
	initPath  string
	attrs     map[string]Value
	server    Transport
	container *Container
}

// Init populates the object from elem, which may be nil.
func (o *Object) Init(elem *Element, initPath string, server Transport, container *Container) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.initPath = initPath
	o.server = server
	o.container = container
	o.attrs = map[string]Value{}
	if elem == nil {
		return
	}
	o.setData(elem)
}

func (o *Object) Base() *Object {
	return o
}

// setData replaces the attributes. Callers hold mu.
func (o *Object) setData(elem *Element) {
	attrs := make(map[string]Value, len(elem.Attrs))
	for k, v := range elem.Attrs {
		attrs[k] = NewValue(v, o.server)
	}
	o.attrs = attrs
}

// Get returns the named attribute, reloading the object first if it's
// partial and the attribute is missing. It never fails: a missing
// attribute comes back as a value that isn't Available.
func (o *Object) Get(name string) Value {
	return o.GetContext(context.Background(), name)
}

// GetContext is Get with a context for the reload.
func (o *Object) GetContext(ctx context.Context, name string) Value {
	o.mu.Lock()
	defer o.mu.Unlock()

	if v, ok := o.attrs[name]; ok {
		return v
	}

	if !o.isFullObject() {
		_ = o.reload(ctx)
		if v, ok := o.attrs[name]; ok {
			return v
		}
	}

	v := unavailable(o.server)
	if o.attrs == nil {
		o.attrs = map[string]Value{}
	}
	o.attrs[name] = v
	return v
}

// Has reports whether the attribute is present without triggering a reload.
func (o *Object) Has(name string) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	v, ok := o.attrs[name]
	return ok && v.Available()
}

// Attrs returns a copy of the current attributes.
func (o *Object) Attrs() map[string]Value {
	o.mu.Lock()
	defer o.mu.Unlock()
	m := make(map[string]Value, len(o.attrs))
	for k, v := range o.attrs {
		m[k] = v
	}
	return m
}

// Key is the path the full object is fetched from.
func (o *Object) Key() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.key()
}

func (o *Object) key() string {
	return o.attrs["key"].Or("")
}

// InitPath is the path the current attributes were fetched from.
func (o *Object) InitPath() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.initPath
}

func (o *Object) IsFullObject() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.isFullObject()
}

func (o *Object) isFullObject() bool {
	key := o.key()
	return o.initPath == "" || key == "" || o.initPath == key
}

// Reload fetches the object from its key and replaces its attributes.
// The object counts as full afterwards even if the fetch failed, so a
// broken key is only tried once.
func (o *Object) Reload(ctx context.Context) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.reload(ctx)
}

func (o *Object) reload(ctx context.Context) error {
	key := o.key()
	fs := log.Fields{
		"key":      key,
		"initPath": o.initPath,
	}

	if o.server == nil {
		o.initPath = key
		log.WithFields(fs).WithError(ErrNoServer).Error("Failed to reload.")
		return ErrNoServer
	}

	data, err := o.server.Query(ctx, key)
	o.initPath = key
	if err != nil {
		log.WithFields(fs).WithError(err).Error("Failed to reload.")
		return err
	}
	if data.Len() == 0 {
		log.WithFields(fs).Warn("Reload returned no elements.")
		return nil
	}

	o.setData(data.Children[0])
	log.WithFields(fs).Debug("reloaded")
	return nil
}

// Refresh asks the server to rebuild the resource. Nothing changes locally.
func (o *Object) Refresh(ctx context.Context) error {
	o.mu.Lock()
	server, key := o.server, o.key()
	o.mu.Unlock()

	if server == nil {
		return ErrNoServer
	}
	return server.Put(ctx, key+"/refresh")
}

func (o *Object) Server() Transport {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.server
}

func (o *Object) Container() *Container {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.container
}

func (o *Object) DefaultThumb() Value {
	return o.Get("thumb")
}

// AbsolutePath resolves the path held by attr against the owning container.
func (o *Object) AbsolutePath(attr string) (string, bool) {
	v := o.Get(attr)
	if !v.Available() {
		return "", false
	}
	c := o.Container()
	if c == nil {
		return v.String(), true
	}
	return c.AbsolutePath(v.String()), true
}

// TranscodeServer returns the server to transcode this object with. The
// aggregator can't transcode, so a channel server stands in for it. If
// there is none, the aggregator is returned unless localRequired is set.
func (o *Object) TranscodeServer(localRequired bool, transcodeType string) Transport {
	server := o.Server()
	if server == nil || server.Identity() != MyPlexIdentity {
		return server
	}

	if fallback := channelServer(); fallback != nil {
		log.WithFields(log.Fields{
			"identity":      fallback.Identity(),
			"transcodeType": transcodeType,
		}).Debug("transcode on channel server")
		return fallback
	}
	if localRequired {
		return nil
	}
	return server
}
