package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type summary struct {
	RunID   string      `json:"run_id"`
	Labels  []int       `json:"labels"`
	Centers [][]float64 `json:"centers"`
}

func mustMarshal(t *testing.T, c Codec, v any) []byte {
	t.Helper()
	b, err := c.Marshal(v)
	require.NoError(t, err, c.Name())
	return b
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		c, ok := ByName(name)
		require.True(t, ok, name)
		assert.Equal(t, name, c.Name())
	}

	_, ok := ByName("msgpack")
	assert.False(t, ok)
}

func TestCodecs_Agree(t *testing.T) {
	in := summary{
		RunID:   "r1",
		Labels:  []int{0, 0, 1, 1},
		Centers: [][]float64{{0, 0.5}, {10, 0.5}},
	}

	std := mustMarshal(t, JSON{}, in)
	fast := mustMarshal(t, GoJSON{}, in)
	assert.JSONEq(t, string(std), string(fast))
	assert.Equal(t, `{"run_id":"r1","labels":[0,0,1,1],"centers":[[0,0.5],[10,0.5]]}`, string(fast))

	var out summary
	require.NoError(t, Default.Unmarshal(std, &out))
	assert.Equal(t, in, out)
}

func TestDecodePoints(t *testing.T) {
	var points [][]float64
	require.NoError(t, GoJSON{}.Unmarshal([]byte(`[[1, 2.5], [-3, 4e2]]`), &points))
	assert.Equal(t, [][]float64{{1, 2.5}, {-3, 400}}, points)

	assert.Error(t, JSON{}.Unmarshal([]byte(`[[1, "x"]]`), &points))
}

func TestMarshal_Unsupported(t *testing.T) {
	for _, name := range Names() {
		c, _ := ByName(name)
		_, err := c.Marshal(make(chan int))
		assert.Error(t, err, name)
	}
}

func BenchmarkCodec_Marshal(b *testing.B) {
	centers := make([][]float64, 64)
	for i := range centers {
		centers[i] = []float64{float64(i), float64(i) * 0.5, -float64(i)}
	}
	v := summary{RunID: "bench", Labels: make([]int, 4096), Centers: centers}

	b.Run("stdlib", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = JSON{}.Marshal(v)
		}
	})
	b.Run("go-json", func(b *testing.B) {
		b.ReportAllocs()
		for b.Loop() {
			_, _ = GoJSON{}.Marshal(v)
		}
	})
}
