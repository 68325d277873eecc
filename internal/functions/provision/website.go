// internal/functions/provision/website.go
package provision

import (
	"context"
	"os"
	"path"
	"strings"

	"chatbot-lambdas/internal/common/errors"
)

// contentTypeFor maps asset extensions to the content types the website
// serves them with. Unknown extensions fail the copy.
func contentTypeFor(file string) (string, bool) {
	switch {
	case strings.HasSuffix(file, ".htm"), strings.HasSuffix(file, ".html"):
		return "text/html", true
	case strings.HasSuffix(file, ".css"):
		return "text/css", true
	case strings.HasSuffix(file, ".js"):
		return "application/javascript", true
	default:
		return "", false
	}
}

// copyWebsiteFiles publishes the static chat widget assets to the website
// bucket.
func (h *Handler) copyWebsiteFiles(ctx context.Context, props map[string]string) string {
	destBucket := props[propDestBucket]
	destPrefix := props[propDestPrefix]

	for _, file := range h.website.Files {
		contentType, ok := contentTypeFor(file)
		if !ok {
			h.logger.Error("unknown file type", map[string]interface{}{"file": file})
			return StatusFailed
		}

		source := path.Join(h.website.SourceDir, file)
		data, err := os.ReadFile(source)
		if err != nil {
			h.logger.WithError(err).Error("read website asset failed", map[string]interface{}{
				"file": source,
			})
			return StatusFailed
		}

		destKey := destPrefix + file
		h.logger.Info("copying website asset", map[string]interface{}{
			"source": source,
			"bucket": destBucket,
			"key":    destKey,
		})
		if err := h.s3.PutObject(ctx, destBucket, destKey, contentType, data); err != nil {
			h.logger.WithError(errors.NewAssetUploadFailedError(destKey, err)).Error(
				"website asset upload failed", nil)
			return StatusFailed
		}
	}
	return StatusSuccess
}

// configIndexFile substitutes deployment values into the website index
// template and publishes the result. Only the first occurrence of each
// placeholder is replaced.
func (h *Handler) configIndexFile(ctx context.Context, props map[string]string) string {
	source := path.Join(h.website.SourceDir, h.website.IndexFile)
	raw, err := os.ReadFile(source)
	if err != nil {
		h.logger.WithError(err).Error("read index template failed", map[string]interface{}{
			"file": source,
		})
		return StatusFailed
	}

	data := string(raw)
	data = strings.Replace(data, "${region}", props[propRegion], 1)
	data = strings.Replace(data, "${apiId}", props[propAPIID], 1)
	data = strings.Replace(data, "${instanceId}", props[propInstanceID], 1)
	data = strings.Replace(data, "${contactFlowId}", props[propFlowID], 1)
	data = strings.Replace(data, "${enableAttachments}", props[propEnableAttach], 1)

	destKey := props[propDestPrefix] + h.website.IndexFile
	if err := h.s3.PutObject(ctx, props[propDestBucket], destKey, "text/html", []byte(data)); err != nil {
		h.logger.WithError(errors.NewAssetUploadFailedError(destKey, err)).Error(
			"index file upload failed", nil)
		return StatusFailed
	}
	return StatusSuccess
}
