package hashmultimap

import (
	"bytes"
	"math"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejectsInvalidConfiguration(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"zero capacity", []Option{WithCapacity(0)}},
		{"negative capacity", []Option{WithCapacity(-3)}},
		{"zero load factor", []Option{WithLoadFactor(0)}},
		{"negative load factor", []Option{WithLoadFactor(-0.5)}},
		{"load factor above one", []Option{WithLoadFactor(1.01)}},
		{"NaN load factor", []Option{WithLoadFactor(math.NaN())}},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			m, err := New[string, int](test.opts...)
			assert.ErrorIs(t, err, ErrInvalidConfiguration)
			assert.Nil(t, m)
		})
	}
}

func TestNewAcceptsBoundaries(t *testing.T) {
	m, err := New[string, int](WithCapacity(1), WithLoadFactor(1))
	require.NoError(t, err)
	assert.Equal(t, 1, m.Capacity())

	m, err = New[string, int]()
	require.NoError(t, err)
	assert.Equal(t, DefaultCapacity, m.Capacity())
	assert.Equal(t, DefaultLoadFactor, m.loadFactor)
}

func TestWithHashSeed(t *testing.T) {
	m1 := mustNew[int, int](t, WithHashSeed(42), WithCapacity(17))
	m2 := mustNew[int, int](t, WithHashSeed(42), WithCapacity(17))
	for i := 0; i < 8; i++ {
		m1.Put(i, i)
		m2.Put(i, i)
	}
	assert.Equal(t, m1.String(), m2.String())
	assert.Equal(t, m1.Values(), m2.Values())
}

func TestWithLoggerReportsResize(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	m := mustNew[string, int](t,
		WithCapacity(5),
		WithLoadFactor(0.5),
		WithLogger(logger))
	m.Put("a", 1)
	m.Put("b", 1)
	assert.Zero(t, buf.Len())

	m.Put("c", 1)
	assert.Contains(t, buf.String(), "resized multimap table")
	assert.Contains(t, buf.String(), `"from":5`)
	assert.Contains(t, buf.String(), `"to":11`)
	assert.Contains(t, buf.String(), `"keys":3`)
}
