package api

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	json "github.com/json-iterator/go"
	"github.com/sense-social/sense/cli/pkg/client"
	"github.com/sense-social/sense/cli/pkg/logger"
)

// MediaURL resolves a media id to a servable URL
func (b *Backend) MediaURL(ctx context.Context, mediaID string) (string, error) {
	logger.Debug("Resolving media", "media_id", mediaID)

	var resp MediaFileResponse
	if err := b.http.Get(ctx, "/media/"+pathID(mediaID)+"/file", nil, &resp); err != nil {
		return "", err
	}
	if resp.URL == "" {
		return "", fmt.Errorf("media %s: empty url", mediaID)
	}
	return resp.URL, nil
}

// UploadMedia sends an image as multipart form field "file" and returns the
// new media id. The backend answers with either a media object or a bare id.
func (b *Backend) UploadMedia(ctx context.Context, filename string, r io.Reader) (string, error) {
	logger.Debug("Uploading media", "filename", filename)

	body, err := b.http.Do(ctx, http.MethodPost, "/media/upload", client.RequestOptions{
		Files: []client.File{{Param: "file", Name: filename, Reader: r}},
	})
	if err != nil {
		return "", err
	}

	return parseMediaID(body)
}

func parseMediaID(body []byte) (string, error) {
	var media MediaResponse
	if err := json.Unmarshal(body, &media); err == nil && media.ID != "" {
		return media.ID, nil
	}

	var id string
	if err := json.Unmarshal(body, &id); err == nil && id != "" {
		return id, nil
	}

	if raw := strings.TrimSpace(string(body)); raw != "" && !strings.ContainsAny(raw, "{}[]\"") {
		return raw, nil
	}
	return "", fmt.Errorf("upload response carried no media id")
}
