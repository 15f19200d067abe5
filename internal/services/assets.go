package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/graphico/brief-api/internal/models"
)

const (
	pollinationsBase = "https://image.pollinations.ai/prompt/"
	unsplashBase     = "https://unsplash.com/s/photos/"
	assetModel       = "flux"

	// Sweet-spot resolutions for flux/SDXL-class generators: sharp without
	// the compression artifacts huge frames trigger.
	landscapeWidth  = 1280
	landscapeHeight = 720
	squareSize      = 1024
)

// AssetFrame is the derived width/height for a brief's generated asset.
type AssetFrame struct {
	Width  int
	Height int
}

// landscapeCategories get a 16:9 frame; everything else is square.
var landscapeCategories = map[models.DesignCategory]bool{
	models.CategoryYouTube:     true,
	models.CategoryFootball:    true,
	models.CategoryAdvertising: true,
	models.CategoryEducation:   true,
}

// FrameFor picks the asset frame for a brief. Video-flavored industries get
// the landscape frame even outside the landscape categories.
func FrameFor(category models.DesignCategory, brief models.Brief) AssetFrame {
	industry := strings.ToLower(brief.Industry)
	if landscapeCategories[category] || strings.Contains(industry, "youtube") || strings.Contains(industry, "video") {
		return AssetFrame{Width: landscapeWidth, Height: landscapeHeight}
	}
	return AssetFrame{Width: squareSize, Height: squareSize}
}

// qualityPrompt boosts the asset description for the image generator.
// Ultra-high-resolution qualifiers ("8k", "4k") are deliberately left out:
// they bloat the generated file without improving sharpness.
func qualityPrompt(assetDescription string) string {
	return fmt.Sprintf("raw photo, %s, best quality, highly detailed, sharp focus, professional photography, uncompressed", assetDescription)
}

// AssetURL derives the image-generation URL for a brief. The computation is
// pure: the brief id seeds the generator, so the same brief always maps to
// the same image.
func AssetURL(category models.DesignCategory, brief models.Brief) string {
	frame := FrameFor(category, brief)
	query := url.Values{}
	query.Set("model", assetModel)
	query.Set("width", fmt.Sprintf("%d", frame.Width))
	query.Set("height", fmt.Sprintf("%d", frame.Height))
	query.Set("nologo", "true")
	query.Set("seed", brief.ID)
	return pollinationsBase + url.PathEscape(qualityPrompt(brief.ProvidedAssetDescription)) + "?" + query.Encode()
}

// StockSearchURL derives the stock-photo search URL for a brief, from its
// first visual reference keyword or the industry when none exist.
func StockSearchURL(brief models.Brief) string {
	term := brief.Industry
	if len(brief.VisualReferences) > 0 && brief.VisualReferences[0] != "" {
		term = brief.VisualReferences[0]
	}
	return unsplashBase + url.PathEscape(term)
}

// AssetFileName names the downloaded asset file.
func AssetFileName(briefID string) string {
	short := briefID
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("Graphico-Asset-%s.jpg", short)
}
