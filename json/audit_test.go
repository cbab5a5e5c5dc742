package json_test

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/herald"
	heraldjson "github.com/fwojciec/herald/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sentAt = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)

func announcement() herald.Dispatch {
	return herald.Dispatch{
		Kind:      herald.KindAnnounce,
		ActorID:   "u1",
		GuildID:   "g1",
		ChannelID: "c1",
		SentAt:    sentAt,
		Content: herald.Content{
			Text: "<@&42>",
			Embed: &herald.Embed{
				Title:       "Launch",
				Description: "Line1\nLine2",
				Color:       0xFFD700,
				ImageURL:    "https://example.com/i.png",
			},
		},
	}
}

func TestAuditLog_FileRoundTrip(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "audit.jsonl")

	log, err := heraldjson.OpenAuditLog(path)
	require.NoError(t, err)
	failed := herald.Dispatch{
		Kind:      herald.KindSay,
		ActorID:   "u2",
		ChannelID: "c2",
		SentAt:    sentAt,
		Content:   herald.Content{Text: "hi"},
		Err:       "Missing Permissions",
	}
	require.NoError(t, log.Record(context.Background(), announcement()))
	require.NoError(t, log.Record(context.Background(), failed))
	require.NoError(t, log.Close())

	// Reopening appends.
	log, err = heraldjson.OpenAuditLog(path)
	require.NoError(t, err)
	require.NoError(t, log.Record(context.Background(), failed))
	require.NoError(t, log.Close())

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	got, err := heraldjson.ReadAuditLog(f)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, announcement(), got[0])
	assert.Equal(t, failed, got[1])
}

func TestMarshalDispatch(t *testing.T) {
	t.Parallel()

	t.Run("omits empty optional fields", func(t *testing.T) {
		t.Parallel()
		data, err := heraldjson.MarshalDispatch(herald.Dispatch{
			Kind:    herald.KindSay,
			SentAt:  sentAt,
			Content: herald.Content{Text: "hi"},
		})
		require.NoError(t, err)
		s := string(data)
		assert.Contains(t, s, `"version":1`)
		assert.Contains(t, s, `"text":"hi"`)
		assert.NotContains(t, s, `"embed"`)
		assert.NotContains(t, s, `"error"`)
		assert.NotContains(t, s, "\n")
	})

	t.Run("requires a kind", func(t *testing.T) {
		t.Parallel()
		_, err := heraldjson.MarshalDispatch(herald.Dispatch{})
		assert.Error(t, err)
	})
}

func TestUnmarshalDispatch_Errors(t *testing.T) {
	t.Parallel()

	_, err := heraldjson.UnmarshalDispatch([]byte(`{"version":2,"kind":"say"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported record version")

	_, err = heraldjson.UnmarshalDispatch([]byte(`{not json`))
	assert.Error(t, err)
}

func TestReadAuditLog(t *testing.T) {
	t.Parallel()

	t.Run("skips blank lines", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := heraldjson.NewAuditLog(&buf)
		require.NoError(t, log.Record(context.Background(), announcement()))
		buf.WriteString("\n")
		require.NoError(t, log.Record(context.Background(), announcement()))
		require.NoError(t, log.Close())

		got, err := heraldjson.ReadAuditLog(&buf)
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("reports the bad line", func(t *testing.T) {
		t.Parallel()
		in := strings.NewReader("{\"version\":1,\"kind\":\"say\"}\n{oops}\n")
		_, err := heraldjson.ReadAuditLog(in)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
	})
}

func TestAuditLog_ConcurrentRecords(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	log := heraldjson.NewAuditLog(&buf)

	var wg sync.WaitGroup
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d := announcement()
			d.ActorID = fmt.Sprintf("u%d", i)
			assert.NoError(t, log.Record(context.Background(), d))
		}()
	}
	wg.Wait()

	got, err := heraldjson.ReadAuditLog(&buf)
	require.NoError(t, err)
	assert.Len(t, got, 20)
}
