package file

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pet-care-assistant/internal/domain/records"
)

func testRecord(name, ts string) records.Record {
	return records.Record{
		Name:      name,
		Species:   "Dog",
		Breed:     "Labrador",
		Age:       3,
		Weight:    28,
		Allergies: "Chicken",
		Timestamp: ts,
	}
}

func TestLoadAll_MissingFileIsEmptyLog(t *testing.T) {
	repo := NewRecordsRepo(filepath.Join(t.TempDir(), "pet_data.json"))

	out, err := repo.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)

	// el archivo recién se crea en el primer Append
	_, statErr := os.Stat(repo.path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestLoadAll_EmptyFileIsEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o644))

	out, err := NewRecordsRepo(path).LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAppend_RoundTrip(t *testing.T) {
	repo := NewRecordsRepo(filepath.Join(t.TempDir(), "pet_data.json"))
	ctx := context.Background()

	rec := testRecord("Rex", "2026-08-24 10:00:00")
	require.NoError(t, repo.Append(ctx, rec))

	out, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, rec, out[0])
}

func TestAppend_TwoAppendsKeepOrder(t *testing.T) {
	repo := NewRecordsRepo(filepath.Join(t.TempDir(), "pet_data.json"))
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, testRecord("Rex", "2026-08-24 10:00:00")))
	require.NoError(t, repo.Append(ctx, testRecord("Milo", "2026-08-24 10:00:01")))

	out, err := repo.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "Rex", out[0].Name)
	assert.Equal(t, "Milo", out[1].Name)
	assert.NotEqual(t, out[0].Timestamp, out[1].Timestamp)
}

func TestLoadAll_ToleratesUnknownFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	raw := `[{"name":"Rex","species":"Dog","age":3,"weight":28,"timestamp":"2026-08-24 10:00:00","extra_field":"ignored"}]`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	out, err := NewRecordsRepo(path).LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Rex", out[0].Name)
	assert.Empty(t, out[0].Breed) // campo faltante queda en cero
}

func TestLoadAll_CorruptFileIsAnError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewRecordsRepo(path).LoadAll(context.Background())
	require.Error(t, err)
}

func TestAppend_WritesDecodableJSONArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pet_data.json")
	repo := NewRecordsRepo(path)

	require.NoError(t, repo.Append(context.Background(), testRecord("Rex", "2026-08-24 10:00:00")))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var arr []map[string]any
	require.NoError(t, json.Unmarshal(b, &arr))
	require.Len(t, arr, 1)
	assert.Equal(t, "Rex", arr[0]["name"])
	assert.Equal(t, "Chicken", arr[0]["allergies"])
}
