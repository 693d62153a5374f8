package attachment

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medremind/appointment-notifier/internal/model"
)

type fakeUploads struct {
	uploads []model.UploadRecord
	err     error
}

func (f *fakeUploads) ListUploads(_ context.Context, _ string) ([]model.UploadRecord, error) {
	return f.uploads, f.err
}

type fakeStorage struct {
	unresolvable map[string]bool // by path
	unreachable  map[string]bool // by url
}

func (f *fakeStorage) PublicURL(path string) (string, error) {
	if f.unresolvable[path] {
		return "", errors.New("no public url")
	}
	return "https://files.example.com/" + path, nil
}

func (f *fakeStorage) Probe(_ context.Context, url string) bool {
	return !f.unreachable[url]
}

func upload(name string) model.UploadRecord {
	return model.UploadRecord{FileName: name, StoragePath: "p-1/" + name, UploadedAt: time.Now()}
}

func TestResolve_NoUploads(t *testing.T) {
	r := NewResolver(&fakeUploads{}, &fakeStorage{}, "uploads", 4)

	refs := r.Resolve(context.Background(), "p-1")
	assert.Empty(t, refs, "zero-attachment patients resolve to an empty result")
}

func TestResolve_UploadLogError(t *testing.T) {
	r := NewResolver(&fakeUploads{err: errors.New("db down")}, &fakeStorage{}, "uploads", 4)

	// resolution never fails the dispatch
	assert.Empty(t, r.Resolve(context.Background(), "p-1"))
}

func TestResolve_MediaKindsAndURLs(t *testing.T) {
	f := &fakeUploads{uploads: []model.UploadRecord{upload("scan.PNG"), upload("note.pdf")}}
	r := NewResolver(f, &fakeStorage{}, "uploads", 4)

	refs := r.Resolve(context.Background(), "p-1")
	require.Len(t, refs, 2)

	assert.Equal(t, model.MediaImage, refs[0].Media)
	assert.Equal(t, "https://files.example.com/uploads/p-1/scan.PNG", refs[0].PublicURL)
	assert.True(t, refs[0].Verified)

	assert.Equal(t, model.MediaDocument, refs[1].Media)
	assert.Equal(t, "uploads/p-1/note.pdf", refs[1].StoragePath)
}

func TestResolve_DropsUnreachableAndUnresolvable(t *testing.T) {
	f := &fakeUploads{uploads: []model.UploadRecord{upload("a.png"), upload("b.png"), upload("c.png")}}
	s := &fakeStorage{
		unresolvable: map[string]bool{"uploads/p-1/a.png": true},
		unreachable:  map[string]bool{"https://files.example.com/uploads/p-1/b.png": true},
	}
	r := NewResolver(f, s, "uploads", 4)

	refs := r.Resolve(context.Background(), "p-1")
	require.Len(t, refs, 1)
	assert.Equal(t, "c.png", refs[0].FileName)
}

func TestResolve_CapsAttachments(t *testing.T) {
	f := &fakeUploads{uploads: []model.UploadRecord{
		upload("1.png"), upload("2.png"), upload("3.png"), upload("4.png"), upload("5.png"),
	}}
	r := NewResolver(f, &fakeStorage{}, "uploads", 2)

	assert.Len(t, r.Resolve(context.Background(), "p-1"), 2)
}

func TestNormalize_KeepsExistingPrefix(t *testing.T) {
	r := NewResolver(&fakeUploads{uploads: []model.UploadRecord{
		{FileName: "x.png", StoragePath: "/uploads/p-1/x.png"},
	}}, &fakeStorage{}, "uploads", 4)

	refs := r.Resolve(context.Background(), "p-1")
	require.Len(t, refs, 1)
	assert.Equal(t, "uploads/p-1/x.png", refs[0].StoragePath)
}

func TestMediaKind(t *testing.T) {
	assert.Equal(t, model.MediaImage, MediaKind("a.jpg"))
	assert.Equal(t, model.MediaImage, MediaKind("a.JPEG"))
	assert.Equal(t, model.MediaImage, MediaKind("a.png"))
	assert.Equal(t, model.MediaDocument, MediaKind("a.pdf"))
	assert.Equal(t, model.MediaDocument, MediaKind("noext"))
}
