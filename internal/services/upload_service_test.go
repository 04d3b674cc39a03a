package services

import (
	"bytes"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cms-api/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) *UploadService {
	t.Helper()
	config.Config = config.MainConfig{
		Uploads: config.UploadConfig{
			Dir:         t.TempDir(),
			MaxFileSize: 1024,
			AllowedExtensions: map[string][]string{
				"image":    {"jpg", "png"},
				"document": {"pdf", "txt"},
			},
		},
	}
	return NewUploadService()
}

func makeFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(int64(len(content)) + 10240)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })
	return form.File["file"][0]
}

func TestSaveGeneratesOpaqueName(t *testing.T) {
	svc := newTestService(t)
	file := makeFileHeader(t, "Report.PDF", []byte("%PDF-1.4"))

	token, err := svc.Save(file, "docs")
	require.NoError(t, err)

	require.True(t, strings.HasPrefix(token, "docs/"))
	name := strings.TrimPrefix(token, "docs/")
	assert.NotEqual(t, "Report.PDF", name)
	assert.True(t, strings.HasSuffix(name, ".pdf"), "extension must be preserved lowercase")

	_, err = uuid.Parse(strings.TrimSuffix(name, ".pdf"))
	assert.NoError(t, err, "stored name must be a generated identifier")

	stored := filepath.Join(config.GetConfig().Uploads.Dir, "docs", name)
	data, err := os.ReadFile(stored)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4"), data)
}

func TestSaveRejectsMissingFilename(t *testing.T) {
	svc := newTestService(t)

	err := svc.Validate(&multipart.FileHeader{}, "")
	assert.Error(t, err)

	err = svc.Validate(nil, "")
	assert.Error(t, err)
}

func TestSaveRejectsDisallowedExtension(t *testing.T) {
	svc := newTestService(t)
	file := makeFileHeader(t, "payload.exe", []byte("MZ"))

	_, err := svc.Save(file, "docs")
	assert.Error(t, err)
}

func TestSaveRejectsOversizedFile(t *testing.T) {
	svc := newTestService(t)
	file := makeFileHeader(t, "big.txt", bytes.Repeat([]byte("x"), 2048))

	_, err := svc.Save(file, "docs")
	assert.Error(t, err)
}

func TestSaveAsEnforcesCategory(t *testing.T) {
	svc := newTestService(t)

	// A document extension is not acceptable for an image upload
	file := makeFileHeader(t, "photo.pdf", []byte("%PDF-1.4"))
	_, err := svc.SaveAs(file, "images", "image")
	assert.Error(t, err)

	file = makeFileHeader(t, "photo.jpg", []byte{0xFF, 0xD8})
	_, err = svc.SaveAs(file, "images", "image")
	assert.NoError(t, err)
}

func TestDeleteIsIdempotent(t *testing.T) {
	svc := newTestService(t)
	file := makeFileHeader(t, "note.txt", []byte("hello"))

	token, err := svc.Save(file, "docs")
	require.NoError(t, err)

	assert.True(t, svc.Delete(token), "first delete removes the file")
	assert.False(t, svc.Delete(token), "second delete reports already gone")
	assert.False(t, svc.Delete("docs/never-existed.txt"))
}
