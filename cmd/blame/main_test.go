package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/cms-blame/internal/config"
	"github.com/heartmarshall/cms-blame/internal/domain"
)

// fakeCMS serves one model with two records, one user and one audit event.
func fakeCMS(t *testing.T) *httptest.Server {
	t.Helper()

	routes := map[string]string{
		"GET /site": `{"data":{"id":"1","type":"site"}}`,
		"GET /item-types": `{"data":[{"id":"10","type":"item_type","attributes":{"name":"Article","api_key":"article"},
			"relationships":{"title_field":{"data":{"id":"f1","type":"field"}},"presentation_title_field":{"data":null}}}]}`,
		"GET /item-types/10/fields": `{"data":[{"id":"f1","type":"field","attributes":{"api_key":"title","label":"Title","field_type":"string"}}]}`,
		"GET /items": `{"data":[
			{"id":"r1","type":"item","attributes":{"title":"Hello"},
			 "relationships":{"item_type":{"data":{"id":"10","type":"item_type"}}},
			 "meta":{"updated_at":"2024-03-02T10:00:00Z","published_at":"2024-03-02T10:00:00Z","first_published_at":"2024-01-01T00:00:00Z"}},
			{"id":"r2","type":"item","attributes":{"title":"Draft"},
			 "relationships":{"item_type":{"data":{"id":"10","type":"item_type"}}},
			 "meta":{"updated_at":"2024-03-01T10:00:00Z","published_at":null,"first_published_at":null}}]}`,
		"GET /users": `{"data":[{"id":"u1","type":"user","attributes":{"full_name":"Ada Lovelace","email":"ada@example.com"},
			"relationships":{"role":{"data":{"id":"role-1","type":"role"}}},"meta":{"last_access":"2024-03-01T09:00:00Z"}}]}`,
		"GET /roles/role-1": `{"data":{"id":"role-1","type":"role","attributes":{"name":"Editor"}}}`,
		"POST /audit-log-events/query": `{"data":[{"id":"e1","type":"audit_log_event",
			"attributes":{"action_name":"update","actor":{"id":"u1","type":"user"},"request":{"method":"PUT","path":"/items/r7"}},
			"meta":{"occurred_at":"2024-03-02T11:00:00Z"}}]}`,
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.Method+" "+r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.api+json")
		io.WriteString(w, body) //nolint:errcheck
	}))
	t.Cleanup(srv.Close)
	return srv
}

func testConfig(baseURL string) func() (*config.Config, error) {
	return func() (*config.Config, error) {
		return &config.Config{
			Server: config.ServerConfig{Port: 8080, RefreshPerMinute: 6},
			CMS: config.CMSConfig{
				BaseURL:        baseURL,
				APIToken:       "token",
				InternalDomain: "acme.admin.datocms.com",
				Timeout:        time.Second,
			},
			Activity: config.ActivityConfig{
				FeedSize:       10,
				WindowSize:     10,
				Source:         config.SourceRecords,
				RefreshTimeout: 5 * time.Second,
			},
			Log: config.LogConfig{Level: "error", Format: "text"},
		}, nil
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := NewRootCmd(&out, testConfig(fakeCMS(t).URL))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestBlame_OverviewText(t *testing.T) {
	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Recent updates")
	assert.Contains(t, out, "Recent publishes")
	assert.Contains(t, out, "Hello")
	assert.Contains(t, out, "Article")
	assert.Contains(t, out, "https://acme.admin.datocms.com/editor/items/r1/edit")
	assert.Contains(t, out, "Editor")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "#r7")
}

func TestBlame_OverviewJSON(t *testing.T) {
	out, err := execute(t, "--format", "json")
	require.NoError(t, err)

	var got domain.Overview
	require.NoError(t, json.Unmarshal([]byte(out), &got))

	assert.Equal(t, domain.LoadStatusReady, got.Activity.Status)
	require.Len(t, got.Activity.Feeds.Updates, 2)
	assert.Equal(t, "r1", got.Activity.Feeds.Updates[0].RecordID)
	assert.Equal(t, "r2", got.Activity.Feeds.Updates[1].RecordID)
	require.Len(t, got.Activity.Feeds.Publishes, 1)
	assert.Equal(t, domain.ActionPublish, got.Activity.Feeds.Publishes[0].Action)

	require.Len(t, got.Roster.Collaborators, 1)
	assert.Equal(t, "Editor", got.Roster.Collaborators[0].RoleName)
	require.NotNil(t, got.Roster.Collaborators[0].LastUpdate)
	assert.Equal(t, "r7", got.Roster.Collaborators[0].LastUpdate.RecordID)
	assert.Nil(t, got.Roster.Collaborators[0].LastPublish)
}

func TestBlame_FeedLimit(t *testing.T) {
	out, err := execute(t, "feed", "updates", "-n", "1", "-f", "json")
	require.NoError(t, err)

	var entries []domain.ActivityEntry
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Hello", entries[0].Title)
}

func TestBlame_UnknownFeed(t *testing.T) {
	_, err := execute(t, "feed", "deletes")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), `feed: must be updates or publishes (got "deletes")`)
}

func TestBlame_Roster(t *testing.T) {
	out, err := execute(t, "roster")
	require.NoError(t, err)

	assert.Contains(t, out, "LAST PUBLISH/UNPUBLISH")
	assert.Contains(t, out, "Ada Lovelace")
}

func TestBlame_Actor(t *testing.T) {
	out, err := execute(t, "actor", "u1")
	require.NoError(t, err)
	assert.Contains(t, out, "update #r7")
	assert.Contains(t, out, "https://acme.admin.datocms.com/editor/items/r7/edit")

	out, err = execute(t, "actor", "u1", "--kind", "publishes")
	require.NoError(t, err)
	assert.Contains(t, out, "No matching activity for user u1")
}

func TestBlame_InvalidFlags(t *testing.T) {
	_, err := execute(t, "--format", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown format "yaml"`)

	_, err = execute(t, "--source", "webhooks")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "source must be one of")
}
