package storage

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage_RoundTrip(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	path, err := store.Upload(ctx, uuid.New(), "my resume.pdf", strings.NewReader("pdf-bytes"), 9)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, "_my_resume.pdf"))

	reader, err := store.Download(ctx, path)
	require.NoError(t, err)
	defer reader.Close()
	data, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(data))

	require.NoError(t, store.Delete(ctx, path))
	_, err = store.Download(ctx, path)
	assert.ErrorIs(t, err, ErrFileNotFound)
}

func TestLocalStorage_SameFilenameDoesNotCollide(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()
	first, err := store.Upload(ctx, uuid.New(), "cv.pdf", strings.NewReader("first"), 5)
	require.NoError(t, err)
	second, err := store.Upload(ctx, uuid.New(), "cv.pdf", strings.NewReader("second"), -1)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)

	reader, err := store.Download(ctx, first)
	require.NoError(t, err)
	defer reader.Close()
	data, _ := io.ReadAll(reader)
	assert.Equal(t, "first", string(data))
}

func TestLocalStorage_RejectsEscapingPath(t *testing.T) {
	store, err := NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	_, err = store.Download(context.Background(), "../../etc/passwd")
	assert.Error(t, err)
}

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"cv.pdf", "cv.pdf"},
		{"my cv.pdf", "my_cv.pdf"},
		{"../../etc/passwd", "passwd"},
		{`..\..\windows\win.ini`, "win.ini"},
		{"", "resume"},
		{"..", "resume"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeFilename(tt.in))
		})
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/pdf", ContentType("CV.PDF"))
	assert.Equal(t, "text/plain", ContentType("notes.txt"))
	assert.Equal(t, "application/octet-stream", ContentType("photo.png"))
}
