package sanity

import (
	"fmt"
	"strconv"
	"strings"

	"hearth/internal/config"
)

// ImageBuilder turns opaque Sanity asset refs into CDN URLs.
// Refs look like "image-<assetid>-<width>x<height>-<ext>".
type ImageBuilder struct {
	projectID string
	dataset   string
}

func NewImageBuilder(cfg config.ContentConfig) *ImageBuilder {
	return &ImageBuilder{projectID: cfg.ProjectID, dataset: cfg.Dataset}
}

type imageAsset struct {
	id     string
	width  int
	height int
	ext    string
}

func parseImageRef(ref string) (imageAsset, bool) {
	parts := strings.Split(ref, "-")
	if len(parts) != 4 || parts[0] != "image" || parts[1] == "" {
		return imageAsset{}, false
	}

	dims := strings.Split(parts[2], "x")
	if len(dims) != 2 {
		return imageAsset{}, false
	}
	width, err := strconv.Atoi(dims[0])
	if err != nil || width <= 0 {
		return imageAsset{}, false
	}
	height, err := strconv.Atoi(dims[1])
	if err != nil || height <= 0 {
		return imageAsset{}, false
	}
	if parts[3] == "" {
		return imageAsset{}, false
	}

	return imageAsset{id: parts[1], width: width, height: height, ext: parts[3]}, true
}

// URL returns a sized CDN URL for ref, or ("", false) when the ref is
// malformed so the caller can render without an image.
func (b *ImageBuilder) URL(ref string, width int) (string, bool) {
	asset, ok := parseImageRef(ref)
	if !ok {
		return "", false
	}

	u := fmt.Sprintf("https://cdn.sanity.io/images/%s/%s/%s-%dx%d.%s",
		b.projectID, b.dataset, asset.id, asset.width, asset.height, asset.ext)
	if width > 0 {
		u += fmt.Sprintf("?w=%d&fit=max&auto=format", width)
	}
	return u, true
}
