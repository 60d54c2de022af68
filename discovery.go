package plexnet

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
)

const MethodMSearch = "M-SEARCH"

const (
	headerContentType        = "Content-Type"
	headerName               = "Name"
	headerPort               = "Port"
	headerResourceIdentifier = "Resource-Identifier"
	headerUpdatedAt          = "Updated-At"
	headerGDMVersion         = "Version"
)

const contentTypeMediaServer = "plex/media-server"

const defaultDiscoveryTimeout = 2 * time.Second

var gdmAddress = "239.0.0.250:32414"

var netListenUDP = net.ListenUDP

// Discover asks the local network for media servers and collects the
// replies until ctx is done or timeout passes, whichever comes first.
func Discover(ctx context.Context, timeout time.Duration) (*ServerContainer, error) {
	if timeout <= 0 {
		timeout = defaultDiscoveryTimeout
	}

	fs := log.Fields{
		"addr":    gdmAddress,
		"timeout": timeout,
	}
	log.WithFields(fs).Debug("start discovery")
	defer log.WithFields(fs).Debug("end discovery")

	dst, err := net.ResolveUDPAddr("udp4", gdmAddress)
	if err != nil {
		return nil, err
	}

	conn, err := netListenUDP("udp4", &net.UDPAddr{})
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := conn.Close(); err != nil {
			log.WithError(err).Error("Failed to close.")
		}
	}()

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetReadDeadline(deadline); err != nil {
		return nil, err
	}

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			// Unblocks the pending read.
			if err := conn.SetReadDeadline(time.Now()); err != nil {
				log.WithError(err).Debug("Failed to cancel read.")
			}
		case <-done:
		}
	}()

	var buf bytes.Buffer
	if err := searchRequest().Write(&buf); err != nil {
		return nil, err
	}
	if _, err := conn.WriteTo(buf.Bytes(), dst); err != nil {
		return nil, err
	}

	root := Element{Tag: "MediaContainer", Attrs: map[string]string{}}
	seen := map[string]struct{}{}
	b := make([]byte, 2048)
	for ctx.Err() == nil {
		n, addr, err := conn.ReadFromUDP(b)
		if errors.Is(err, os.ErrDeadlineExceeded) {
			break
		}
		if err != nil {
			return nil, err
		}

		e, err := parseReply(b[:n], addr)
		if err != nil {
			log.WithError(err).WithField("addr", addr).Debug("Ignored reply.")
			continue
		}

		id, _ := e.Attr("machineIdentifier")
		if id == "" {
			id = addr.String()
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}

		log.WithFields(log.Fields{
			"name": e.Attrs["name"],
			"addr": addr,
		}).Info("Found server.")
		root.Children = append(root.Children, e)
	}

	return NewServerContainer(&root, "", nil, "")
}

func searchRequest() *http.Request {
	return &http.Request{
		Method:     MethodMSearch,
		URL:        &url.URL{Path: "*"},
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     http.Header{},
		Host:       gdmAddress,
	}
}

// parseReply turns a discovery reply into a Server element.
func parseReply(b []byte, addr *net.UDPAddr) (*Element, error) {
	resp, err := http.ReadResponse(bufio.NewReader(bytes.NewReader(b)), nil)
	if err != nil {
		return nil, err
	}
	_ = resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}
	if resp.Header.Get(headerContentType) != contentTypeMediaServer {
		return nil, errors.New("not a media server")
	}

	e := Element{
		Tag: TagServer,
		Attrs: map[string]string{
			"name":              resp.Header.Get(headerName),
			"port":              resp.Header.Get(headerPort),
			"machineIdentifier": resp.Header.Get(headerResourceIdentifier),
			"version":           resp.Header.Get(headerGDMVersion),
			"updatedAt":         resp.Header.Get(headerUpdatedAt),
		},
	}
	if addr != nil {
		e.Attrs["host"] = addr.IP.String()
	}
	return &e, nil
}
