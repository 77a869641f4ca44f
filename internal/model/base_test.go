package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStringListScan(t *testing.T) {
	t.Run("from bytes", func(t *testing.T) {
		var l StringList
		assert.NoError(t, l.Scan([]byte(`["dashboard","users"]`)))
		assert.Equal(t, StringList{"dashboard", "users"}, l)
	})

	t.Run("from string", func(t *testing.T) {
		var l StringList
		assert.NoError(t, l.Scan(`["tests"]`))
		assert.Equal(t, StringList{"tests"}, l)
	})

	t.Run("nil column", func(t *testing.T) {
		l := StringList{"stale"}
		assert.NoError(t, l.Scan(nil))
		assert.Nil(t, l)
	})

	t.Run("unsupported type", func(t *testing.T) {
		var l StringList
		assert.Error(t, l.Scan(42))
	})
}

func TestStringListValue(t *testing.T) {
	t.Run("nil serializes as empty array", func(t *testing.T) {
		var l StringList
		v, err := l.Value()
		assert.NoError(t, err)
		assert.Equal(t, "[]", v)
	})

	t.Run("round trip", func(t *testing.T) {
		orig := StringList{"dashboard", "settings"}
		v, err := orig.Value()
		assert.NoError(t, err)

		var back StringList
		assert.NoError(t, back.Scan(v))
		assert.Equal(t, orig, back)
	})
}

func TestNewTokenUnique(t *testing.T) {
	a := NewToken()
	b := NewToken()
	assert.NotEmpty(t, a)
	assert.NotEqual(t, a, b)
}
