package mnoda

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeRun(t *testing.T) {
	t.Run("full run", func(t *testing.T) {
		r, err := DecodeRun([]byte(`{
			"type": "run",
			"id": "run1",
			"application": "My Sim Code",
			"version": "1.2.3",
			"user": "jdoe",
			"data": [{"name":"energy","value":2.22}]
		}`))
		require.NoError(t, err)

		assert.Equal(t, RunType, r.Type())
		assert.Equal(t, "run1", r.ID().Value())
		assert.Equal(t, "My Sim Code", r.Application())
		assert.Equal(t, "1.2.3", r.Version())
		assert.Equal(t, "jdoe", r.User())
		require.Len(t, r.Data(), 1)
	})

	t.Run("missing application", func(t *testing.T) {
		_, err := DecodeRun([]byte(`{"type":"run","id":"run1"}`))

		var missing *ErrMissingField
		require.ErrorAs(t, err, &missing)
		assert.Equal(t, "application", missing.Field)
		assert.Equal(t, "Run", missing.Enclosing)
	})

	t.Run("missing identity is generated, not rejected", func(t *testing.T) {
		r, err := DecodeRun([]byte(`{"type":"run","application":"My Sim Code"}`))
		require.NoError(t, err)

		assert.Equal(t, IDTypeLocal, r.ID().Type())
		assert.NotEmpty(t, r.ID().Value())
	})
}

func TestRunMarshalJSON(t *testing.T) {
	t.Run("extends base record shape", func(t *testing.T) {
		r := NewRun(NewID("run1", IDTypeGlobal), "My Sim Code", "1.2.3", "jdoe")
		r.AddFile(NewFile("out.png"))

		out, err := json.Marshal(r)
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"type": "run",
			"id": "run1",
			"application": "My Sim Code",
			"version": "1.2.3",
			"user": "jdoe",
			"files": [{"uri":"out.png"}]
		}`, string(out))
	})

	t.Run("optional metadata omitted when empty", func(t *testing.T) {
		out, err := json.Marshal(NewRun(NewID("run1", IDTypeGlobal), "My Sim Code", "", ""))
		require.NoError(t, err)

		var obj map[string]any
		require.NoError(t, json.Unmarshal(out, &obj))
		assert.NotContains(t, obj, "version")
		assert.NotContains(t, obj, "user")
	})

	t.Run("round trip through the loader", func(t *testing.T) {
		original := NewRun(NewID("run1", IDTypeGlobal), "My Sim Code", "1.2.3", "jdoe")
		out, err := json.Marshal(original)
		require.NoError(t, err)

		rec, err := DefaultRecordLoader().Load(out)
		require.NoError(t, err)

		decoded, ok := rec.(*Run)
		require.True(t, ok)
		assert.Equal(t, original.Application(), decoded.Application())
		assert.Equal(t, original.Version(), decoded.Version())
		assert.Equal(t, original.User(), decoded.User())
		assert.Equal(t, original.ID(), decoded.ID())
	})
}
