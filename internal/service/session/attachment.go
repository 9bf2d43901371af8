package session

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

const mediaContentType = "image/jpeg"

// AttachmentPipeline moves dialog media into the storage bucket and removes
// it again when the owning message is deleted.
type AttachmentPipeline struct {
	files  FileStore
	bucket string
}

func NewAttachmentPipeline(files FileStore, bucket string) *AttachmentPipeline {
	return &AttachmentPipeline{
		files:  files,
		bucket: bucket,
	}
}

// Upload stores the media under a path derived from the owner, the current
// time and the original base name, and returns the public URL.
func (p *AttachmentPipeline) Upload(ctx context.Context, userID uuid.UUID, filename string, data []byte) (string, error) {
	objectPath := fmt.Sprintf("%s/%d_%s", userID, time.Now().UnixMilli(), path.Base(filename))

	url, err := p.files.UploadFile(ctx, p.bucket, objectPath, data, mediaContentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload attachment: %v", err)
	}

	return url, nil
}

// Remove extracts the object path back out of a public URL and issues the
// bucket delete. Callers treat failures as best-effort and proceed with the
// message row delete regardless.
func (p *AttachmentPipeline) Remove(ctx context.Context, mediaURL string) error {
	objectPath, err := p.objectPath(mediaURL)
	if err != nil {
		return err
	}

	if err := p.files.RemoveFile(ctx, p.bucket, objectPath); err != nil {
		return fmt.Errorf("failed to remove attachment: %v", err)
	}

	return nil
}

func (p *AttachmentPipeline) objectPath(mediaURL string) (string, error) {
	marker := fmt.Sprintf("/object/public/%s/", p.bucket)

	idx := strings.Index(mediaURL, marker)
	if idx < 0 {
		return "", fmt.Errorf("media url does not belong to bucket %s", p.bucket)
	}

	return mediaURL[idx+len(marker):], nil
}
