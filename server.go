package plexnet

import (
	"bytes"
	"context"
	"fmt"
	"io/ioutil"
	"mime"
	"net/http"
	"net/url"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"
)

const (
	headerToken            = "X-Plex-Token"
	headerClientIdentifier = "X-Plex-Client-Identifier"
	headerProduct          = "X-Plex-Product"
	headerVersion          = "X-Plex-Version"
	headerPlatform         = "X-Plex-Platform"
	headerAccept           = "Accept"
)

const (
	productName    = "plexnet"
	productVersion = "0.0"
	defaultTimeout = 30 * time.Second
	myPlexURL      = "https://plex.tv"
)

// Server is a Transport over HTTP.
type Server struct {
	BaseURL  *url.URL
	Token    string
	ClientID uuid.UUID
	Client   *http.Client

	identity string
}

// NewServer returns a Server for the media server at baseURL. A new client
// identifier is generated; set ClientID to reuse an existing one.
func NewServer(baseURL *url.URL, token string) *Server {
	return &Server{
		BaseURL:  baseURL,
		Token:    token,
		ClientID: uuid.NewV4(),
		Client:   &http.Client{Timeout: defaultTimeout},
		identity: baseURL.Host,
	}
}

// NewMyPlexServer returns the aggregator. Objects it returns can be listed
// but have to be transcoded elsewhere.
func NewMyPlexServer(token string) *Server {
	u, _ := url.Parse(myPlexURL)
	s := NewServer(u, token)
	s.identity = MyPlexIdentity
	return s
}

// Identity returns the machine identifier if known, the host otherwise.
func (s *Server) Identity() string {
	return s.identity
}

// SetIdentity records the machine identifier reported by the server.
func (s *Server) SetIdentity(id string) {
	s.identity = id
}

func (s *Server) Query(ctx context.Context, path string) (*Element, error) {
	b, contentType, err := s.do(ctx, http.MethodGet, path)
	if err != nil {
		return nil, err
	}

	if m := mimetype.Detect(b); !m.Is("text/xml") && !isXML(contentType) {
		return nil, &TransportError{
			Method: http.MethodGet,
			Path:   path,
			Err:    fmt.Errorf("unexpected content type: %s", m),
		}
	}

	e, err := ParseElement(bytes.NewReader(b))
	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, Path: path, Err: err}
	}
	return e, nil
}

func (s *Server) Put(ctx context.Context, path string) error {
	_, _, err := s.do(ctx, http.MethodPut, path)
	return err
}

func (s *Server) do(ctx context.Context, method, path string) ([]byte, string, error) {
	t := time.Now()

	req, err := http.NewRequestWithContext(ctx, method, s.resolve(path).String(), nil)
	if err != nil {
		return nil, "", &TransportError{Method: method, Path: path, Err: err}
	}
	for k, v := range s.headers() {
		req.Header.Set(k, v)
	}
	req.Header.Set(headerAccept, "application/xml")

	resp, err := s.client().Do(req)
	if err != nil {
		return nil, "", &TransportError{Method: method, Path: path, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			log.WithError(err).Error("Failed to close.")
		}
	}()

	log.WithFields(log.Fields{
		"method":  method,
		"path":    path,
		"status":  resp.StatusCode,
		"elapsed": time.Since(t).Milliseconds(),
	}).Debug(s.identity)

	b, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, "", &TransportError{Method: method, Path: path, StatusCode: resp.StatusCode, Err: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, "", &TransportError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%s: %q", http.StatusText(resp.StatusCode), truncate(b, 128)),
		}
	}
	return b, resp.Header.Get("Content-Type"), nil
}

func (s *Server) client() *http.Client {
	if s.Client == nil {
		return http.DefaultClient
	}
	return s.Client
}

func (s *Server) headers() map[string]string {
	h := map[string]string{
		headerClientIdentifier: s.ClientID.String(),
		headerProduct:          productName,
		headerVersion:          productVersion,
		headerPlatform:         runtime.GOOS,
	}
	if s.Token != "" {
		h[headerToken] = s.Token
	}
	return h
}

// resolve turns a path, possibly with a query, into a URL on the server.
func (s *Server) resolve(path string) *url.URL {
	ref, err := url.Parse(path)
	if err != nil {
		return &url.URL{Scheme: s.BaseURL.Scheme, Host: s.BaseURL.Host, Path: path}
	}
	return s.BaseURL.ResolveReference(ref)
}

// URL returns an absolute URL for path, carrying the token so players can
// fetch it without headers. URLs on other hosts never get the token.
func (s *Server) URL(path string) string {
	u := s.resolve(path)
	if s.Token != "" && u.Host == s.BaseURL.Host {
		q := u.Query()
		q.Set(headerToken, s.Token)
		u.RawQuery = q.Encode()
	}
	return u.String()
}

// ImageTranscodeURL returns the URL of path scaled to width x height.
func (s *Server) ImageTranscodeURL(path string, width, height int, extras url.Values) string {
	if strings.HasPrefix(path, "/") {
		path = "http://127.0.0.1:32400" + path
	}

	q := url.Values{}
	for k, vs := range extras {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	q.Set("url", path)
	q.Set("width", strconv.Itoa(width))
	q.Set("height", strconv.Itoa(height))
	return s.URL("/photo/:/transcode?" + q.Encode())
}

func truncate(b []byte, n int) []byte {
	if len(b) <= n {
		return b
	}
	return b[:n]
}

// isXML reports whether a Content-Type names an XML document.
func isXML(contentType string) bool {
	t, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	return t == "text/xml" || t == "application/xml"
}
