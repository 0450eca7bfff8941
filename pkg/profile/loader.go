package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/nikogura/portfolio/pkg/i18n"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	// maxProfileBytes bounds remote profile downloads.
	maxProfileBytes = 5 << 20
	fetchTimeout    = 30 * time.Second
)

// Format is a profile file encoding.
type Format string

const (
	// FormatJSON is the default encoding.
	FormatJSON Format = "json"
	// FormatYAML covers .yaml and .yml files.
	FormatYAML Format = "yaml"
)

// Load reads a profile from a file path or URL and validates it against langs (the default locale set when empty).
func Load(source string, langs ...i18n.Lang) (p Profile, err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	p, err = LoadWithContext(ctx, source, langs...)
	return p, err
}

// LoadWithContext is Load with a caller supplied context for URL sources.
func LoadWithContext(ctx context.Context, source string, langs ...i18n.Lang) (p Profile, err error) {
	var data []byte
	var format Format

	// Check if source is a URL
	parsedURL, urlErr := url.Parse(source)
	if urlErr == nil && (parsedURL.Scheme == "http" || parsedURL.Scheme == "https") {
		data, format, err = fetchFromURL(ctx, source)
		if err != nil {
			err = errors.Wrapf(err, "failed to fetch profile from URL: %s", source)
			return p, err
		}
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = errors.Wrapf(err, "failed to read profile file: %s", source)
			return p, err
		}
		format = FormatFromPath(source)
	}

	p, err = Decode(data, format)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile: %s", source)
		return p, err
	}

	if len(langs) == 0 {
		langs = i18n.DefaultConfig().Langs()
	}

	err = p.Validate(langs)
	if err != nil {
		err = errors.Wrap(err, "profile validation failed")
		return p, err
	}

	return p, err
}

// FormatFromPath picks the encoding from a file extension, defaulting to JSON.
func FormatFromPath(p string) (format Format) {
	switch strings.ToLower(path.Ext(p)) {
	case ".yaml", ".yml":
		format = FormatYAML
	default:
		format = FormatJSON
	}
	return format
}

// Decode parses a profile.  Unknown fields are rejected so typos surface instead of silently dropping content.
func Decode(data []byte, format Format) (p Profile, err error) {
	if len(bytes.TrimSpace(data)) == 0 {
		err = errors.New("profile is empty")
		return p, err
	}

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		err = dec.Decode(&p)
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.DisallowUnknownFields()
		err = dec.Decode(&p)
	default:
		err = errors.Errorf("unsupported profile format %q", format)
		return p, err
	}

	if err != nil {
		err = errors.Wrapf(err, "invalid %s", format)
		return p, err
	}

	return p, err
}

// Encode serializes a profile in format.
func Encode(p Profile, format Format) (data []byte, err error) {
	switch format {
	case FormatYAML:
		data, err = yaml.Marshal(p)
	case FormatJSON:
		data, err = json.MarshalIndent(p, "", "  ")
	default:
		err = errors.Errorf("unsupported profile format %q", format)
		return data, err
	}

	if err != nil {
		err = errors.Wrapf(err, "failed to encode profile as %s", format)
		return data, err
	}
	return data, err
}

// fetchFromURL downloads a profile document.
func fetchFromURL(ctx context.Context, urlStr string) (data []byte, format Format, err error) {
	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		err = errors.Wrap(err, "failed to create HTTP request")
		return data, format, err
	}

	req.Header.Set("User-Agent", "portfolio/1.0")
	req.Header.Set("Accept", "application/json, application/yaml;q=0.9, */*;q=0.1")

	client := &http.Client{
		Timeout: fetchTimeout,
	}

	var resp *http.Response
	resp, err = client.Do(req)
	if err != nil {
		err = errors.Wrap(err, "HTTP request failed")
		return data, format, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = errors.Errorf("HTTP request failed with status: %d", resp.StatusCode)
		return data, format, err
	}

	data, err = io.ReadAll(io.LimitReader(resp.Body, maxProfileBytes+1))
	if err != nil {
		err = errors.Wrap(err, "failed to read response body")
		return data, format, err
	}

	if len(data) > maxProfileBytes {
		err = errors.Errorf("profile exceeds %d bytes", maxProfileBytes)
		return data, format, err
	}

	// Extension first, then content type.
	format = FormatFromPath(req.URL.Path)
	if format == FormatJSON && strings.Contains(resp.Header.Get("Content-Type"), "yaml") {
		format = FormatYAML
	}

	return data, format, err
}
