package picker

import (
	"bytes"
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/randomizer/internal/logger"
	"github.com/ytget/randomizer/internal/model"
)

// fixedSource always returns the same index
type fixedSource struct {
	index int
	calls int
}

func (f *fixedSource) IntN(n int) int {
	f.calls++
	return f.index
}

func texts(s *Service) []string {
	out := make([]string, 0, s.Len())
	for _, option := range s.Options() {
		out = append(out, option.Text)
	}
	return out
}

func TestNewService(t *testing.T) {
	service := NewService()

	assert.Equal(t, 0, service.Len())
	assert.NotNil(t, service.source)
	assert.Empty(t, service.Options())
}

func TestAdd_PreservesInsertionOrder(t *testing.T) {
	service := NewService()
	inputs := []string{"Apple", "Banana", "Apple", "Cherry"}

	for i, text := range inputs {
		option := service.Add(text)
		assert.Equal(t, text, option.Text)
		assert.Equal(t, i+1, service.Len())
	}

	for i, text := range inputs {
		option, ok := service.At(i)
		require.True(t, ok)
		assert.Equal(t, text, option.Text)
	}
}

func TestAdd_EmptyText(t *testing.T) {
	service := NewService()

	service.Add("")

	require.Equal(t, 1, service.Len())
	option, _ := service.At(0)
	assert.Equal(t, "", option.Text)
}

func TestAdd_NoTrimming(t *testing.T) {
	service := NewService()

	service.Add("  padded  ")

	option, _ := service.At(0)
	assert.Equal(t, "  padded  ", option.Text)
}

func TestRemove_NoSelectionOnEmptyList(t *testing.T) {
	service := NewService()

	assert.False(t, service.Remove(NoSelection))
	assert.Equal(t, 0, service.Len())
}

func TestRemove_ValidIndex(t *testing.T) {
	service := NewService()
	for _, text := range []string{"a", "b", "c", "d"} {
		service.Add(text)
	}

	assert.True(t, service.Remove(1))
	assert.Equal(t, []string{"a", "c", "d"}, texts(service))

	assert.True(t, service.Remove(2))
	assert.Equal(t, []string{"a", "c"}, texts(service))
}

func TestRemove_StaleIndexIsNoop(t *testing.T) {
	var buf bytes.Buffer
	service := NewService(WithLogger(logger.NewZerolog(&buf, zerolog.WarnLevel)))
	service.Add("a")
	service.Add("b")

	assert.False(t, service.Remove(2))
	assert.False(t, service.Remove(100))
	assert.Equal(t, []string{"a", "b"}, texts(service))
	assert.Contains(t, buf.String(), "stale selection")
}

func TestPickRandom_EmptyList(t *testing.T) {
	source := &fixedSource{}
	service := NewService(WithSource(source))

	text, err := service.PickRandom()

	assert.True(t, errors.Is(err, model.ErrEmptyList))
	assert.Equal(t, "", text)
	assert.Equal(t, "0 options in the list", err.Error())
	assert.Equal(t, 0, service.Len())
	assert.Equal(t, 0, source.calls, "no draw should happen on an empty list")
}

func TestPickRandom_UsesSourceIndex(t *testing.T) {
	service := NewService(WithSource(&fixedSource{index: 2}))
	for _, text := range []string{"a", "b", "c"} {
		service.Add(text)
	}

	text, err := service.PickRandom()

	require.NoError(t, err)
	assert.Equal(t, "c", text)
	assert.Equal(t, 3, service.Len(), "pick must not mutate the list")
}

func TestPickRandom_OutOfRangeSourceIsClamped(t *testing.T) {
	service := NewService(WithSource(&fixedSource{index: 7}))
	service.Add("only")

	text, err := service.PickRandom()

	require.NoError(t, err)
	assert.Equal(t, "only", text)
}

func TestPickRandom_AppleBanana(t *testing.T) {
	service := NewService()
	service.Add("Apple")
	service.Add("Banana")

	for i := 0; i < 200; i++ {
		text, err := service.PickRandom()
		require.NoError(t, err)
		assert.Contains(t, []string{"Apple", "Banana"}, text)
	}
}

func TestPickRandom_Uniform(t *testing.T) {
	const (
		options = 5
		draws   = 50000
	)

	service := NewService(WithSource(rand.New(rand.NewPCG(42, 1024))))
	names := []string{"a", "b", "c", "d", "e"}
	for _, name := range names {
		service.Add(name)
	}

	counts := make(map[string]int)
	for i := 0; i < draws; i++ {
		text, err := service.PickRandom()
		require.NoError(t, err)
		counts[text]++
	}

	expected := float64(draws) / options
	for _, name := range names {
		assert.InDelta(t, expected, float64(counts[name]), expected*0.05,
			"frequency of %q should approach 1/%d", name, options)
	}
}

func TestPickRandom_DuplicatesWeighByOccurrence(t *testing.T) {
	service := NewService(WithSource(rand.New(rand.NewPCG(7, 7))))
	service.Add("x")
	service.Add("x")
	service.Add("y")

	counts := make(map[string]int)
	for i := 0; i < 30000; i++ {
		text, _ := service.PickRandom()
		counts[text]++
	}

	assert.InDelta(t, 20000, counts["x"], 1000)
	assert.InDelta(t, 10000, counts["y"], 1000)
}

func TestUpdateCallback(t *testing.T) {
	service := NewService()
	updates := 0
	service.SetUpdateCallback(func() { updates++ })

	service.Add("a")
	service.Add("b")
	service.Remove(NoSelection)
	service.Remove(5)
	service.Remove(0)
	_, _ = service.PickRandom()

	assert.Equal(t, 3, updates, "only successful mutations notify")
}

func TestServiceImplementsPicker(t *testing.T) {
	var _ Picker = NewService()
}
