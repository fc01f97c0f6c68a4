package projectpdf

import (
	"fmt"

	"github.com/go-rod/rod/lib/launcher"
)

// resolveBrowser downloads a compatible Chromium binary if one is not
// already cached and returns the path to the executable.
func resolveBrowser() (string, error) {
	path, err := launcher.NewBrowser().Get()
	if err != nil {
		return "", fmt.Errorf("projectpdf: downloading browser: %w", err)
	}
	return path, nil
}

// executable returns the browser to launch, or "" to let chromedp search
// the standard locations.
func (c config) executable() (string, error) {
	if c.chromePath != "" || !c.autoDownload {
		return c.chromePath, nil
	}
	if path, ok := launcher.LookPath(); ok {
		c.logger.Debug("using installed browser", "path", path)
		return path, nil
	}
	c.logger.Info("no browser found, downloading Chromium")
	return resolveBrowser()
}
