package browser

import (
	"errors"
	"fmt"
	"net/url"

	logger "github.com/multiversx/mx-chain-logger-go"
	defaultBrowser "github.com/pkg/browser"
)

var log = logger.GetOrCreate("browser")

var errInvalidURL = errors.New("invalid URL")

type browserOpener struct {
	openURL func(url string) error
}

// NewBrowserOpener creates a component able to open URLs in the OS default browser
func NewBrowserOpener() *browserOpener {
	return &browserOpener{
		openURL: defaultBrowser.OpenURL,
	}
}

// Open opens the provided http(s) URL. The URL is passed on unchanged
func (bo *browserOpener) Open(rawURL string) error {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("%w %s: %v", errInvalidURL, rawURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("%w %s: unsupported scheme", errInvalidURL, rawURL)
	}
	if len(parsed.Host) == 0 {
		return fmt.Errorf("%w %s: missing host", errInvalidURL, rawURL)
	}

	log.Info("opening browser", "url", rawURL)

	return bo.openURL(rawURL)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (bo *browserOpener) IsInterfaceNil() bool {
	return bo == nil
}
