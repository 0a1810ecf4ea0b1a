package provider

import (
	"errors"
	"testing"
	"time"

	"github.com/go-openapi/strfmt"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestChunkJSONRoundTrip(t *testing.T) {
	original := Chunk{
		RunID:     uuid.New(),
		Text:      "hello, \"world\"\nsecond line",
		Timestamp: strfmt.DateTime(time.Now().UTC()),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)
	assert.Equal(t, "chunk", gjson.GetBytes(data, "type").String())

	var decoded Chunk
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.RunID, decoded.RunID)
	assert.Equal(t, original.Text, decoded.Text)
}

func TestDelimJSONRoundTrip(t *testing.T) {
	original := Delim{RunID: uuid.New(), Delim: "start"}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Delim
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestErrorJSONRoundTrip(t *testing.T) {
	original := Error{
		RunID:     uuid.New(),
		Err:       errors.New("upstream said no"),
		Timestamp: strfmt.DateTime(time.Now().UTC()),
	}

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Error
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original.RunID, decoded.RunID)
	assert.EqualError(t, decoded.Err, "upstream said no")
}

func TestUnmarshalRejectsWrongType(t *testing.T) {
	var c Chunk
	err := json.Unmarshal([]byte(`{"type":"delim","run_id":"x"}`), &c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 'chunk'")

	var d Delim
	err = json.Unmarshal([]byte(`not json`), &d)
	require.Error(t, err)
}

func TestErrorImplementsError(t *testing.T) {
	underlying := errors.New("boom")
	e := Error{RunID: uuid.New(), Err: underlying}

	assert.Contains(t, e.Error(), "boom")
	assert.ErrorIs(t, e, underlying)
}
