package iojson

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalError(t *testing.T) {
	out := MarshalError("fetch failed", map[string]any{"status": 500})

	var e Error
	require.NoError(t, json.Unmarshal([]byte(out), &e))
	assert.Equal(t, "fetch failed", e.Message)
	assert.InDelta(t, 500, e.Data["status"], 0)

	out = MarshalError("bad", map[string]any{"v": math.Inf(1)})
	assert.Contains(t, out, `"json_error"`)
}

func TestWriteWith(t *testing.T) {
	var out, errOut bytes.Buffer
	require.NoError(t, WriteWith(&out, &errOut, map[string]int{"count": 2}))
	assert.JSONEq(t, `{"count":2}`, out.String())
	assert.Empty(t, errOut.String())

	out.Reset()
	require.NoError(t, WriteWith(&out, &errOut, make(chan int)))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "error marshaling")
}

func TestLineWriter(t *testing.T) {
	var out bytes.Buffer
	lw := NewLineWriter(&out)
	require.NoError(t, lw.Write(map[string]string{"id": "a"}))
	require.NoError(t, lw.Write(map[string]string{"id": "b"}))
	assert.Error(t, lw.Write(make(chan int)))

	assert.Equal(t, 2, lw.Count())
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Equal(t, []string{`{"id":"a"}`, `{"id":"b"}`}, lines)
}

func TestFileReader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "items.json")
	require.NoError(t, os.WriteFile(path, []byte(`[1,2,3]`), 0o644))

	fr := &FileReader[[]int]{fileFlagValue: path}
	got, err := fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)

	fr = &FileReader[[]int]{stdin: strings.NewReader(`[4]`)}
	got, err = fr.Read()
	require.NoError(t, err)
	assert.Equal(t, []int{4}, got)

	fr = &FileReader[[]int]{stdin: strings.NewReader(`{`)}
	_, err = fr.Read()
	assert.ErrorContains(t, err, "decode JSON")

	fr = &FileReader[[]int]{fileFlagValue: filepath.Join(t.TempDir(), "missing.json")}
	_, err = fr.Read()
	assert.ErrorContains(t, err, "open file")
}
