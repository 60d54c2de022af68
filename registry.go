package plexnet

import "sync"

// Constructor builds an entity from an element.
type Constructor func(elem *Element, initPath string, server Transport, container *Container) Entity

var libraryTypes = struct {
	sync.RWMutex
	m map[string]Constructor
}{
	m: map[string]Constructor{},
}

// Register makes a constructor available to BuildItem under discriminator.
// Types register themselves from init so the table is complete before the
// first BuildItem. Registering the same discriminator again replaces it.
func Register(discriminator string, c Constructor) {
	libraryTypes.Lock()
	defer libraryTypes.Unlock()
	libraryTypes.m[discriminator] = c
}

func lookupType(discriminator string) (Constructor, bool) {
	libraryTypes.RLock()
	defer libraryTypes.RUnlock()
	c, ok := libraryTypes.m[discriminator]
	return c, ok
}

// unregister is for tests.
func unregister(discriminator string) {
	libraryTypes.Lock()
	defer libraryTypes.Unlock()
	delete(libraryTypes.m, discriminator)
}
