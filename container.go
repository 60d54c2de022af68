package plexnet

import (
	"strings"
	"sync"
)

var allowedHosts = struct {
	sync.RWMutex
	hosts []string
}{
	hosts: []string{"node.plexapp.com"},
}

// AllowContainerHost lets root-relative container addresses mention host.
// Call it during startup, before containers are built.
func AllowContainerHost(host string) {
	allowedHosts.Lock()
	defer allowedHosts.Unlock()
	allowedHosts.hosts = append(allowedHosts.hosts, host)
}

func hostAllowed(address string) bool {
	allowedHosts.RLock()
	defer allowedHosts.RUnlock()
	for _, h := range allowedHosts.hosts {
		if strings.Contains(address, h) {
			return true
		}
	}
	return false
}

// Container is a set of resources that share a base address.
type Container struct {
	Object

	Address   string
	Resources []Entity
}

// NewContainer builds a container. A root-relative address that doesn't
// belong to an allowed host is a *ConfigError.
func NewContainer(elem *Element, initPath string, server Transport, address string) (*Container, error) {
	var c Container
	c.Init(elem, initPath, server, nil)
	if err := c.SetAddress(address); err != nil {
		return nil, err
	}
	return &c, nil
}

// MustContainer is NewContainer that panics on a bad address.
func MustContainer(elem *Element, initPath string, server Transport, address string) *Container {
	c, err := NewContainer(elem, initPath, server, address)
	if err != nil {
		panic(err)
	}
	return c
}

// SetAddress strips a trailing slash unless the address is "/".
func (c *Container) SetAddress(address string) error {
	if address != "/" && strings.HasSuffix(address, "/") {
		address = address[:len(address)-1]
	}
	if strings.HasPrefix(address, "/") && !hostAllowed(address) {
		return &ConfigError{Address: address}
	}
	c.Address = address
	return nil
}

// AbsolutePath leaves absolute paths and URLs alone and resolves
// anything else against the container address.
func (c *Container) AbsolutePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/"):
		return path
	case strings.Contains(path, "://"):
		return path
	default:
		return c.Address + "/" + path
	}
}

func (c *Container) Len() int {
	return len(c.Resources)
}

func (c *Container) At(i int) Entity {
	return c.Resources[i]
}

// Each calls f for every resource in order until f returns false.
func (c *Container) Each(f func(Entity) bool) {
	for _, r := range c.Resources {
		if !f(r) {
			return
		}
	}
}

// ServerContainer lists servers, for example the ones a discovery or
// the aggregator returns.
type ServerContainer struct {
	Container
}

// NewServerContainer builds one Resource per child of elem.
func NewServerContainer(elem *Element, initPath string, server Transport, address string) (*ServerContainer, error) {
	var c ServerContainer
	c.Init(elem, initPath, server, nil)
	if err := c.SetAddress(address); err != nil {
		return nil, err
	}
	if elem != nil {
		for _, e := range elem.Children {
			c.Resources = append(c.Resources, newResource(e, initPath, nil, &c.Container))
		}
	}
	return &c, nil
}
