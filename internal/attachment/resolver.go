// Package attachment resolves a patient's uploaded files into publicly
// fetchable, reachability-checked references for one dispatch.
package attachment

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/wb-go/wbf/zlog"

	"github.com/medremind/appointment-notifier/internal/model"
)

type uploadSource interface {
	ListUploads(ctx context.Context, patientID string) ([]model.UploadRecord, error)
}

type storageClient interface {
	PublicURL(path string) (string, error)
	Probe(ctx context.Context, url string) bool
}

type Resolver struct {
	uploads uploadSource
	storage storageClient
	prefix  string // expected storage prefix, e.g. "uploads"
	maxRefs int    // attachment cap per message
}

func NewResolver(uploads uploadSource, storage storageClient, prefix string, maxRefs int) *Resolver {
	if maxRefs <= 0 {
		maxRefs = 4
	}
	return &Resolver{
		uploads: uploads,
		storage: storage,
		prefix:  strings.Trim(prefix, "/"),
		maxRefs: maxRefs,
	}
}

// Resolve returns the reachable attachments of a patient, most recent
// first. Unreachable or unresolvable files are dropped with a logged
// reason; absence of attachments never blocks delivery, so the result is
// simply empty when nothing usable exists.
func (r *Resolver) Resolve(ctx context.Context, patientID string) []model.AttachmentRef {
	uploads, err := r.uploads.ListUploads(ctx, patientID)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("patient_id", patientID).Msg("failed to read upload log")
		return nil
	}

	var refs []model.AttachmentRef
	for _, u := range uploads {
		if len(refs) >= r.maxRefs {
			break
		}

		path := r.normalize(u.StoragePath)

		url, err := r.storage.PublicURL(path)
		if err != nil {
			zlog.Logger.Warn().Err(err).
				Str("patient_id", patientID).
				Str("path", path).
				Msg("dropping attachment: no public url")
			continue
		}

		if !r.storage.Probe(ctx, url) {
			zlog.Logger.Warn().
				Str("patient_id", patientID).
				Str("url", url).
				Msg("dropping attachment: unreachable")
			continue
		}

		refs = append(refs, model.AttachmentRef{
			FileName:    u.FileName,
			StoragePath: path,
			PublicURL:   url,
			Media:       MediaKind(u.FileName),
			Verified:    true,
		})
	}

	return refs
}

func (r *Resolver) normalize(path string) string {
	path = strings.TrimLeft(path, "/")
	if r.prefix == "" || strings.HasPrefix(path, r.prefix+"/") {
		return path
	}
	return r.prefix + "/" + path
}

// MediaKind infers how a file rides in the outbound message from its
// extension: jpg/jpeg/png are sent inline as images, everything else
// becomes a document link.
func MediaKind(fileName string) model.MediaKind {
	switch strings.ToLower(filepath.Ext(fileName)) {
	case ".jpg", ".jpeg", ".png":
		return model.MediaImage
	default:
		return model.MediaDocument
	}
}
