package integration_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"testing"
	"time"

	"greenroots_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type projectJSON struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Trees  int      `json:"trees"`
	Images []string `json:"images"`
}

func pngFile(field, name string) helpers.UploadFile {
	return helpers.UploadFile{
		Field:       field,
		Name:        name,
		ContentType: "image/png",
		Content:     []byte("png bytes for " + name),
	}
}

func createProject(t *testing.T, ts *helpers.TestServer, name string, trees int, files ...helpers.UploadFile) projectJSON {
	t.Helper()

	res, body := ts.SendMultipart(t, "POST", "/api/projects",
		map[string]string{"name": name, "trees": fmt.Sprintf("%d", trees)}, files)
	require.Equal(t, http.StatusCreated, res.StatusCode, "body: %s", body)

	env := helpers.DecodeEnvelope(t, body)
	require.True(t, env.Success)

	var project projectJSON
	require.NoError(t, json.Unmarshal(env.Data, &project))
	return project
}

func uploadedFiles(t *testing.T, ts *helpers.TestServer) []string {
	t.Helper()

	entries, err := os.ReadDir(ts.UploadsDir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestProject_CreateWithImages(t *testing.T) {
	ts := helpers.NewTestServer(t)

	project := createProject(t, ts, "Kapkong reforestation", 350,
		pngFile("images", "site.png"), pngFile("images", "students.png"))

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "Kapkong reforestation", project.Name)
	assert.Equal(t, 350, project.Trees)
	require.Len(t, project.Images, 2)
	for _, img := range project.Images {
		assert.True(t, strings.HasPrefix(img, "/uploads/"), "image path %q", img)
	}
	assert.Len(t, uploadedFiles(t, ts), 2)
}

func TestProject_CreateRejectsNonImage(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, "POST", "/api/projects",
		map[string]string{"name": "Bad upload", "trees": "10"},
		[]helpers.UploadFile{{
			Field:       "images",
			Name:        "notes.txt",
			ContentType: "text/plain",
			Content:     []byte("plain text"),
		}})

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	env := helpers.DecodeEnvelope(t, body)
	assert.False(t, env.Success)
	assert.Equal(t, "Not an image! Please upload an image.", env.Error)

	// Nothing reached disk or the database.
	assert.Empty(t, uploadedFiles(t, ts))
	res, body = ts.SendRequest(t, "GET", "/api/projects", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Equal(t, "[]", strings.TrimSpace(string(helpers.DecodeEnvelope(t, body).Data)))
}

func TestProject_CreateRequiresTreeCount(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, "POST", "/api/projects",
		map[string]string{"name": "No count"}, nil)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Equal(t, "Tree count is required", helpers.DecodeEnvelope(t, body).Error)

	res, body = ts.SendRequest(t, "GET", "/api/projects", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)
	var projects []projectJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &projects))
	assert.Empty(t, projects)
}

func TestProject_CreateRejectsTooManyImages(t *testing.T) {
	ts := helpers.NewTestServer(t)

	files := make([]helpers.UploadFile, 0, 6)
	for i := 0; i < 6; i++ {
		files = append(files, pngFile("images", fmt.Sprintf("img%d.png", i)))
	}

	res, body := ts.SendMultipart(t, "POST", "/api/projects",
		map[string]string{"name": "Too many", "trees": "1"}, files)

	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.False(t, helpers.DecodeEnvelope(t, body).Success)
	assert.Empty(t, uploadedFiles(t, ts))
}

func TestProject_UpdateFieldsAndAppendImages(t *testing.T) {
	ts := helpers.NewTestServer(t)

	project := createProject(t, ts, "Initial name", 100, pngFile("images", "first.png"))
	firstImage := project.Images[0]

	res, body := ts.SendMultipart(t, "PUT", "/api/projects/"+project.ID,
		map[string]string{"name": "Renamed", "trees": "250"},
		[]helpers.UploadFile{pngFile("images", "second.png")})
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var updated projectJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &updated))
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, 250, updated.Trees)
	require.Len(t, updated.Images, 2)
	assert.Equal(t, firstImage, updated.Images[0], "existing images must stay in front")
}

func TestProject_AppendImagesEndpoint(t *testing.T) {
	ts := helpers.NewTestServer(t)

	project := createProject(t, ts, "Gallery growth", 50, pngFile("images", "a.png"))

	res, body := ts.SendMultipart(t, "PUT", "/api/projects/"+project.ID+"/images",
		nil, []helpers.UploadFile{pngFile("images", "b.png"), pngFile("images", "c.png")})
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var updated projectJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &updated))
	require.Len(t, updated.Images, 3)
	assert.Equal(t, project.Images[0], updated.Images[0])
}

func TestProject_RemoveImageByIndex(t *testing.T) {
	ts := helpers.NewTestServer(t)

	project := createProject(t, ts, "Prune me", 10,
		pngFile("images", "first.png"), pngFile("images", "second.png"))
	require.Len(t, project.Images, 2)
	second := project.Images[1]

	res, body := ts.SendRequest(t, "DELETE", "/api/projects/"+project.ID+"/images/0", nil)
	require.Equal(t, http.StatusOK, res.StatusCode, "body: %s", body)

	var updated projectJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &updated))
	require.Len(t, updated.Images, 1)
	assert.Equal(t, second, updated.Images[0])

	// The removed file is gone from disk, the survivor remains.
	assert.Len(t, uploadedFiles(t, ts), 1)
}

func TestProject_RemoveImageInvalidIndex(t *testing.T) {
	ts := helpers.NewTestServer(t)

	project := createProject(t, ts, "Bounds", 10, pngFile("images", "only.png"))

	for _, index := range []string{"5", "-1"} {
		res, body := ts.SendRequest(t, "DELETE", "/api/projects/"+project.ID+"/images/"+index, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
		assert.Equal(t, "Invalid image index", helpers.DecodeEnvelope(t, body).Error)
	}

	res, _ := ts.SendRequest(t, "DELETE", "/api/projects/"+project.ID+"/images/abc", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
}

func TestProject_DeleteRemovesFiles(t *testing.T) {
	ts := helpers.NewTestServer(t)

	project := createProject(t, ts, "Goodbye", 10,
		pngFile("images", "one.png"), pngFile("images", "two.png"))
	require.Len(t, uploadedFiles(t, ts), 2)

	res, body := ts.SendRequest(t, "DELETE", "/api/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.True(t, helpers.DecodeEnvelope(t, body).Success)
	assert.Empty(t, uploadedFiles(t, ts))

	// Repeating the delete still succeeds.
	res, _ = ts.SendRequest(t, "DELETE", "/api/projects/"+project.ID, nil)
	assert.Equal(t, http.StatusOK, res.StatusCode)
}

func TestProject_UpdateUnknownID(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendMultipart(t, "PUT", "/api/projects/no-such-id",
		map[string]string{"name": "Whatever"}, nil)
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
	assert.Equal(t, "Project not found", helpers.DecodeEnvelope(t, body).Error)
}

func TestProject_ListNewestFirst(t *testing.T) {
	ts := helpers.NewTestServer(t)

	createProject(t, ts, "Older", 1)
	time.Sleep(10 * time.Millisecond)
	createProject(t, ts, "Newer", 2)

	res, body := ts.SendRequest(t, "GET", "/api/projects", nil)
	require.Equal(t, http.StatusOK, res.StatusCode)

	var projects []projectJSON
	require.NoError(t, json.Unmarshal(helpers.DecodeEnvelope(t, body).Data, &projects))
	require.Len(t, projects, 2)
	assert.Equal(t, "Newer", projects[0].Name)
	assert.Equal(t, "Older", projects[1].Name)
}

func TestProject_SameFilenameGetsSuffix(t *testing.T) {
	ts := helpers.NewTestServer(t)

	first := createProject(t, ts, "First", 1, pngFile("images", "tree.png"))
	second := createProject(t, ts, "Second", 2, pngFile("images", "tree.png"))

	assert.Equal(t, "/uploads/tree.png", first.Images[0])
	assert.Equal(t, "/uploads/tree(1).png", second.Images[0])
}
