package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

func TestStore_LoadMissingKey(t *testing.T) {
	store := NewStore()

	var out []record
	found, err := store.Load(context.Background(), "nothing", &out)
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, out)
}

func TestStore_SaveThenLoad(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	in := []record{{Name: "a", Items: []string{"x"}}}
	require.NoError(t, store.Save(ctx, "records", in))

	var out []record
	found, err := store.Load(ctx, "records", &out)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, in, out)
}

func TestStore_LoadedValuesAreCopies(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	in := []record{{Name: "a", Items: []string{"x"}}}
	require.NoError(t, store.Save(ctx, "records", in))

	in[0].Items[0] = "changed after save"

	var first []record
	_, err := store.Load(ctx, "records", &first)
	require.NoError(t, err)
	first[0].Name = "changed after load"

	var second []record
	_, err = store.Load(ctx, "records", &second)
	require.NoError(t, err)
	assert.Equal(t, "a", second[0].Name)
	assert.Equal(t, "x", second[0].Items[0])
}

func TestStore_SaveUnencodable(t *testing.T) {
	store := NewStore()
	err := store.Save(context.Background(), "bad", map[string]any{"ch": make(chan int)})
	assert.Error(t, err)
}
