package mnoda

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordLoaderLoad(t *testing.T) {
	t.Run("missing type", func(t *testing.T) {
		_, err := NewRecordLoader().Load([]byte(`{"id":"the ID"}`))

		var missing *ErrMissingField
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "type", missing.Field)
	})

	t.Run("unknown type falls back to base record", func(t *testing.T) {
		rec, err := NewRecordLoader().Load([]byte(`{"type":"never registered","id":"the ID"}`))
		require.NoError(t, err)

		_, ok := rec.(*BaseRecord)
		assert.True(t, ok)
		assert.Equal(t, "never registered", rec.Type())
		assert.Equal(t, "the ID", rec.ID().Value())
	})

	t.Run("registered factory is invoked", func(t *testing.T) {
		loader := NewRecordLoader()
		invoked := false
		loader.AddTypeLoader("X", func(data json.RawMessage) (Record, error) {
			invoked = true
			return DecodeBaseRecord(data)
		})

		_, err := loader.Load([]byte(`{"type":"X","id":"the ID"}`))
		require.NoError(t, err)
		assert.True(t, invoked)
	})

	t.Run("factory errors propagate", func(t *testing.T) {
		loader := DefaultRecordLoader()

		_, err := loader.Load([]byte(`{"type":"run","id":"the ID"}`))
		var missing *ErrMissingField
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "application", missing.Field)
	})
}

func TestRecordLoaderCanLoad(t *testing.T) {
	loader := NewRecordLoader()
	assert.False(t, loader.CanLoad("X"))

	loader.AddTypeLoader("X", func(data json.RawMessage) (Record, error) {
		return DecodeBaseRecord(data)
	})
	assert.True(t, loader.CanLoad("X"))
	assert.False(t, loader.CanLoad("Y"))
}

func TestRecordLoaderReRegistration(t *testing.T) {
	loader := NewRecordLoader()
	loader.AddTypeLoader("X", func(data json.RawMessage) (Record, error) {
		return NewBaseRecord(NewID("first", IDTypeGlobal), "X"), nil
	})
	// Last write wins.
	loader.AddTypeLoader("X", func(data json.RawMessage) (Record, error) {
		return NewBaseRecord(NewID("second", IDTypeGlobal), "X"), nil
	})

	rec, err := loader.Load([]byte(`{"type":"X"}`))
	require.NoError(t, err)
	assert.Equal(t, "second", rec.ID().Value())
}

func TestDefaultRecordLoader(t *testing.T) {
	loader := DefaultRecordLoader()
	assert.True(t, loader.CanLoad(RunType))

	rec, err := loader.Load([]byte(`{"type":"run","id":"r1","application":"sim"}`))
	require.NoError(t, err)

	_, ok := rec.(*Run)
	assert.True(t, ok)
}
