package storage

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TestGridFSStore_PutOpenDelete runs against a real server when MONGO_TEST_URI is set.
func TestGridFSStore_PutOpenDelete(t *testing.T) {
	uri := os.Getenv("MONGO_TEST_URI")
	if uri == "" {
		t.Skip("MONGO_TEST_URI not set")
	}
	ctx := context.Background()
	s, err := ConnectGridFS(ctx, uri, "rentco_test_"+strings.ReplaceAll(uuid.NewString(), "-", ""))
	require.NoError(t, err)
	defer func() {
		_ = s.db.Drop(ctx)
		_ = s.Close(ctx)
	}()

	id, err := s.Put(ctx, "image/webp", []byte("webp-bytes"))
	require.NoError(t, err)
	_, err = primitive.ObjectIDFromHex(id)
	require.NoError(t, err, "id is an ObjectID hex")

	obj, err := s.Open(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "image/webp", obj.ContentType)
	assert.Equal(t, []byte("webp-bytes"), obj.Data)

	require.NoError(t, s.Delete(ctx, id))
	_, err = s.Open(ctx, id)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, id), ErrNotFound)

	_, err = s.Put(ctx, "image/gif", []byte("gif"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
}

func TestGridFSStore_ForeignIDs(t *testing.T) {
	// разбор id выполняется до обращения к серверу
	s := &GridFSStore{}
	ctx := context.Background()

	_, err := s.Open(ctx, "abc.png")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "../x.png"), ErrNotFound)
}
