package web

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/kalakshetraodisha/website/internal/platform/assets/imagecdn"
	"github.com/kalakshetraodisha/website/internal/services/web/integration/cms"
)

// maxListedMissing caps how many absent files an image directory error names.
const maxListedMissing = 5

// checkImageSource verifies that numbered fallback photographs resolve to
// something servable. A configured directory must hold every numbered file.
// Local URLs without a directory only warn, since pages still render.
func checkImageSource(dir string, assets imagecdn.CDN, logger *log.Logger) error {
	dir = strings.TrimSpace(dir)
	if dir == "" {
		if assets.Local() {
			logger.Printf("warning: no images dir or asset base url configured; %s/{1..%d}.jpeg will return 404",
				imagecdn.LocalBase, cms.FallbackImageCount)
		}
		return nil
	}

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("images dir: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("images dir %s is not a directory", dir)
	}
	var missing []string
	for n := 1; n <= cms.FallbackImageCount; n++ {
		name := strconv.Itoa(n) + ".jpeg"
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	listed := missing
	if len(listed) > maxListedMissing {
		listed = listed[:maxListedMissing]
	}
	return fmt.Errorf("images dir %s is missing %d of %d numbered images: %s",
		dir, len(missing), cms.FallbackImageCount, strings.Join(listed, ", "))
}
