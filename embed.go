package portfolio

import (
	"crypto/sha256"
	"embed"
	"encoding/hex"
	"io/fs"
)

// EmbeddedAssets contains static assets shipped with the site:
// site.css and toggle.js
//
//go:embed embedded/*
var EmbeddedAssets embed.FS

// embeddedAssetNames are served under /public/ and cached as immutable.
var embeddedAssetNames = []string{"site.css", "toggle.js"}

// assetVersion hashes the embedded assets so their URLs change whenever
// their content does.
func assetVersion(fsys fs.FS) string {
	h := sha256.New()
	for _, name := range embeddedAssetNames {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			continue
		}
		h.Write([]byte(name))
		h.Write(data)
	}
	return hex.EncodeToString(h.Sum(nil))[:12]
}
