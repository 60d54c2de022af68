package plexnet

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Bool(t *testing.T) {
	assert.True(t, NewValue("1", nil).Bool())
	assert.False(t, NewValue("0", nil).Bool())
	assert.False(t, NewValue("", nil).Bool())
	assert.False(t, NewValue("true", nil).Bool())
	assert.False(t, unavailable(nil).Bool())
}

func TestValue_Int(t *testing.T) {
	t.Run("number", func(t *testing.T) {
		n, err := NewValue("42", nil).Int(0)
		assert.NoError(t, err)
		assert.Equal(t, 42, n)
	})

	t.Run("empty", func(t *testing.T) {
		n, err := NewValue("", nil).Int(3)
		assert.NoError(t, err)
		assert.Equal(t, 3, n)
	})

	t.Run("unavailable", func(t *testing.T) {
		n, err := unavailable(nil).Int(7)
		assert.NoError(t, err)
		assert.Equal(t, 7, n)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewValue("abc", nil).Int(0)
		var pe *ParseError
		assert.True(t, errors.As(err, &pe))
		assert.Equal(t, "abc", pe.Raw)
	})
}

func TestValue_Float(t *testing.T) {
	f, err := NewValue("1.5", nil).Float(0)
	assert.NoError(t, err)
	assert.Equal(t, 1.5, f)

	f, err = unavailable(nil).Float(2.5)
	assert.NoError(t, err)
	assert.Equal(t, 2.5, f)

	_, err = NewValue("x1", nil).Float(0)
	assert.Error(t, err)
}

func TestValue_Time(t *testing.T) {
	t.Run("epoch", func(t *testing.T) {
		tm, err := NewValue("1700000000", nil).Time()
		assert.NoError(t, err)
		assert.True(t, tm.Equal(time.Unix(1700000000, 0)))
	})

	t.Run("date", func(t *testing.T) {
		tm, err := NewValue("2024-01-15", nil).Time()
		assert.NoError(t, err)
		assert.Equal(t, 2024, tm.Year())
		assert.Equal(t, time.January, tm.Month())
		assert.Equal(t, 15, tm.Day())
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewValue("not-a-date", nil).Time()
		var pe *ParseError
		assert.True(t, errors.As(err, &pe))
	})

	t.Run("empty", func(t *testing.T) {
		_, err := NewValue("", nil).Time()
		assert.Error(t, err)
	})
}

func TestValue_FormatTime(t *testing.T) {
	s, err := NewValue("2024-01-15", nil).FormatTime("02 Jan 2006")
	assert.NoError(t, err)
	assert.Equal(t, "15 Jan 2024", s)

	_, err = NewValue("soon", nil).FormatTime("2006")
	assert.Error(t, err)
}

func TestValue_Or(t *testing.T) {
	assert.Equal(t, "Alien", NewValue("Alien", nil).Or("unknown"))
	assert.Equal(t, "", NewValue("", nil).Or("unknown"))
	assert.Equal(t, "unknown", unavailable(nil).Or("unknown"))
	assert.True(t, NewValue("", nil).Available())
	assert.False(t, unavailable(nil).Available())
}

func TestValue_URL(t *testing.T) {
	t.Run("no server", func(t *testing.T) {
		_, err := NewValue("/library/metadata/1/thumb", nil).URL()
		assert.True(t, errors.Is(err, ErrNoServer))
	})

	t.Run("server", func(t *testing.T) {
		var m mockTransport
		m.On("URL", "/library/metadata/1/thumb").Return("http://pms:32400/library/metadata/1/thumb").Once()
		defer m.AssertExpectations(t)

		u, err := NewValue("/library/metadata/1/thumb", &m).URL()
		require.NoError(t, err)
		assert.Equal(t, "http://pms:32400/library/metadata/1/thumb", u)
	})
}

func TestValue_TranscodedImageURL(t *testing.T) {
	extras := url.Values{"minSize": []string{"1"}}

	var m mockTransport
	m.On("ImageTranscodeURL", "/thumb", 320, 180, extras).Return("http://pms/photo").Once()
	defer m.AssertExpectations(t)

	u, err := NewValue("/thumb", &m).TranscodedImageURL(320, 180, extras)
	assert.NoError(t, err)
	assert.Equal(t, "http://pms/photo", u)

	_, err = NewValue("/thumb", nil).TranscodedImageURL(320, 180, nil)
	assert.Error(t, err)
}
