package projects

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/fundraise/internal/models"
	"github.com/dmitrijs2005/fundraise/internal/recordio"
	"github.com/dmitrijs2005/fundraise/internal/timex"
	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProjects() []models.Project {
	return []models.Project{
		{
			ID: 1, Title: "Water well", Details: "Clean water, for a village",
			Target:    decimal.RequireFromString("1500.5"),
			StartTime: timex.NewDate(2024, time.January, 10), EndTime: timex.NewDate(2024, time.March, 1),
			OwnerID: 1,
		},
		{
			ID: 3, Title: "School \"books\"", Details: "line one\nline two",
			Target:    decimal.RequireFromString("20000"),
			StartTime: timex.NewDate(2024, time.June, 1), EndTime: timex.NewDate(2025, time.January, 1),
			OwnerID: 2,
		},
	}
}

func TestNewFileRepository_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.jsonl")

	r, err := NewFileRepository(path)
	require.NoError(t, err)

	got, err := r.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileRepository_SaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "projects.jsonl")
	r, err := NewFileRepository(path)
	require.NoError(t, err)

	want := sampleProjects()
	require.NoError(t, r.Save(ctx, want))

	got, err := r.Load(ctx)
	require.NoError(t, err)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("projects mismatch (-want +got):\n%s", diff)
	}
}

func TestFileRepository_RecordLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.jsonl")
	r, err := NewFileRepository(path)
	require.NoError(t, err)
	require.NoError(t, r.Save(context.Background(), sampleProjects()[:1]))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	line := strings.TrimSpace(string(b))
	assert.Equal(t,
		`{"id":1,"title":"Water well","details":"Clean water, for a village","target":"1500.5","start_time":"2024-01-10","end_time":"2024-03-01","owner_id":1}`,
		line)
}

func TestFileRepository_MalformedRecord(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.jsonl")
	content := `{"id":1,"title":"ok","details":"d","target":"10","start_time":"2024-01-01","end_time":"2024-02-01","owner_id":1}` + "\n" +
		`{"id":2,"title":"bad","details":"d","target":"10","start_time":"2024-13-01","end_time":"2024-02-01","owner_id":1}` + "\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	r, err := NewFileRepository(path)
	require.NoError(t, err)

	_, err = r.Load(context.Background())
	require.ErrorIs(t, err, recordio.ErrMalformedRecord)
	assert.Contains(t, err.Error(), "line 2")
}
