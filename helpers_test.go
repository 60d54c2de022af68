package plexnet

import (
	"context"
	"net/url"

	"github.com/stretchr/testify/mock"
)

type mockTransport struct {
	mock.Mock
}

func (m *mockTransport) Query(ctx context.Context, path string) (*Element, error) {
	args := m.Called(ctx, path)
	e, _ := args.Get(0).(*Element)
	return e, args.Error(1)
}

func (m *mockTransport) Put(ctx context.Context, path string) error {
	args := m.Called(ctx, path)
	return args.Error(0)
}

func (m *mockTransport) URL(path string) string {
	args := m.Called(path)
	return args.String(0)
}

func (m *mockTransport) ImageTranscodeURL(path string, width, height int, extras url.Values) string {
	args := m.Called(path, width, height, extras)
	return args.String(0)
}

func (m *mockTransport) Identity() string {
	args := m.Called()
	return args.String(0)
}

// elem builds an element from tag and name/value pairs.
func elem(tag string, kv ...string) *Element {
	e := Element{Tag: tag, Attrs: map[string]string{}}
	for i := 0; i+1 < len(kv); i += 2 {
		e.Attrs[kv[i]] = kv[i+1]
	}
	return &e
}

func mediaContainer(children ...*Element) *Element {
	e := elem("MediaContainer")
	e.Children = children
	return e
}
