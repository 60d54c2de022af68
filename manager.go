package plexnet

import "sync"

// ServerManager knows which servers the client can reach.
type ServerManager interface {
	// ChannelServer returns a server able to transcode on behalf of the
	// aggregator, or nil.
	ChannelServer() Transport
}

var manager struct {
	sync.RWMutex
	m ServerManager
}

// SetServerManager installs the manager consulted by Object.TranscodeServer.
func SetServerManager(m ServerManager) {
	manager.Lock()
	defer manager.Unlock()
	manager.m = m
}

func channelServer() Transport {
	manager.RLock()
	defer manager.RUnlock()
	if manager.m == nil {
		return nil
	}
	return manager.m.ChannelServer()
}

// StaticManager is a ServerManager over a fixed list of servers. The first
// one that isn't the aggregator is the channel server.
type StaticManager []Transport

func (s StaticManager) ChannelServer() Transport {
	for _, t := range s {
		if t != nil && t.Identity() != MyPlexIdentity {
			return t
		}
	}
	return nil
}
