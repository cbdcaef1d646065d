package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"greenroots_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type newsJSON struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Excerpt   string    `json:"excerpt"`
	Link      string    `json:"link"`
	Image     string    `json:"image"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func createNews(t *testing.T, ts *helpers.TestServer, fields map[string]string, files ...helpers.UploadFile) newsJSON {
	t.Helper()

	res, body := ts.SendMultipart(t, "POST", "/api/news", fields, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	var item newsJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &item))
	return item
}

func TestNews_CreateAppliesDefaultColor(t *testing.T) {
	ts := helpers.NewTestServer(t)

	item := createNews(t, ts, map[string]string{
		"title":   "Planting day announced",
		"excerpt": "Join us in Eldoret",
		"link":    "/news/planting-day",
	})

	assert.NotEmpty(t, item.ID)
	assert.Equal(t, "#FF6B35", item.Color)
	assert.Empty(t, item.Image)
}

func TestNews_CreateWithImageAndColor(t *testing.T) {
	ts := helpers.NewTestServer(t)

	item := createNews(t, ts, map[string]string{
		"title":   "Award ceremony",
		"excerpt": "Schools recognized",
		"link":    "/news/awards",
		"color":   "#2E8B57",
	}, helpers.UploadFile{
		Field:       "image",
		Name:        "ceremony.png",
		ContentType: "image/png",
		Content:     []byte("png"),
	})

	assert.Equal(t, "#2E8B57", item.Color)
	assert.Equal(t, "/uploads/ceremony.png", item.Image)
}

func TestNews_CreateRequiresCoreFields(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, "POST", "/api/news",
		map[string]string{"title": "Only a title"}, nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, helpers.DecodeEnvelope(t, body).Success)
}

func TestNews_UpdateKeepsTimestampsAndOldFile(t *testing.T) {
	ts := helpers.NewTestServer(t)

	item := createNews(t, ts, map[string]string{
		"title":   "Original",
		"excerpt": "Original excerpt",
		"link":    "/news/original",
	}, helpers.UploadFile{
		Field:       "image",
		Name:        "before.png",
		ContentType: "image/png",
		Content:     []byte("old"),
	})

	time.Sleep(10 * time.Millisecond)

	res, body := ts.SendMultipart(t, "PUT", "/api/news/"+item.ID,
		map[string]string{"title": "Edited"},
		[]helpers.UploadFile{{
			Field:       "image",
			Name:        "after.png",
			ContentType: "image/png",
			Content:     []byte("new"),
		}})
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var updated newsJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &updated))
	assert.Equal(t, "Edited", updated.Title)
	assert.Equal(t, "Original excerpt", updated.Excerpt)
	assert.Equal(t, "/uploads/after.png", updated.Image)
	assert.True(t, updated.UpdatedAt.Equal(item.UpdatedAt),
		"updatedAt must not change on edit")

	// The replaced image file is left on disk.
	assert.ElementsMatch(t, []string{"before.png", "after.png"}, uploadedFiles(t, ts))
}

func TestNews_UpdateUnknownID(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, "PUT", "/api/news/no-such-id",
		map[string]string{"title": "x"}, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "News not found", helpers.DecodeEnvelope(t, body).Error)
}

func TestNews_DeleteKeepsImageFile(t *testing.T) {
	ts := helpers.NewTestServer(t)

	item := createNews(t, ts, map[string]string{
		"title":   "Short lived",
		"excerpt": "Excerpt",
		"link":    "/news/short",
	}, helpers.UploadFile{
		Field:       "image",
		Name:        "kept.png",
		ContentType: "image/png",
		Content:     []byte("png"),
	})

	res, body := ts.SendRequest(t, "DELETE", "/api/news/"+item.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, helpers.DecodeEnvelope(t, body).Success)

	// Record is gone, file remains.
	res, body = ts.SendRequest(t, "GET", "/api/news", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var items []newsJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &items))
	assert.Empty(t, items)
	assert.Equal(t, []string{"kept.png"}, uploadedFiles(t, ts))

	// Deleting again still succeeds.
	res, _ = ts.SendRequest(t, "DELETE", "/api/news/"+item.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestNews_ListNewestFirst(t *testing.T) {
	ts := helpers.NewTestServer(t)

	createNews(t, ts, map[string]string{"title": "Older", "excerpt": "e", "link": "/a"})
	time.Sleep(10 * time.Millisecond)
	createNews(t, ts, map[string]string{"title": "Newer", "excerpt": "e", "link": "/b"})

	res, body := ts.SendRequest(t, "GET", "/api/news", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var items []newsJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Newer", items[0].Title)
	assert.Equal(t, "Older", items[1].Title)
}
