// internal/prodigal/release.go
package prodigal

import (
	"errors"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"phagetools/internal/config"
)

// Target operating systems, named after the Prodigal release assets.
const (
	SystemWindows = "windows"
	SystemLinux   = "linux"
	SystemOSX     = "osx"
)

// SupportedSystems lists every system a binary can be fetched for.
var SupportedSystems = []string{SystemWindows, SystemLinux, SystemOSX}

var (
	ErrNotDirectory      = errors.New("not a valid directory")
	ErrUnsupportedSystem = errors.New("prodigal does not support this system")
	ErrUnexpectedContent = errors.New("download is not a binary")
)

// assets maps a system to its file name on the release page.
var assets = map[string]string{
	SystemWindows: "prodigal.windows.exe",
	SystemLinux:   "prodigal.linux",
	SystemOSX:     "prodigal.osx.10.9.5",
}

// Release describes one pinned Prodigal release and how to fetch it.
type Release struct {
	version string
	baseURL string
	client  *http.Client
	log     logrus.FieldLogger
}

// Option configures a Release.
type Option func(*Release) error

// WithVersion pins the release tag, e.g. "v2.6.3".
func WithVersion(v string) Option {
	return func(r *Release) error {
		if strings.TrimSpace(v) == "" {
			return errors.New("prodigal: empty version")
		}
		r.version = v
		return nil
	}
}

// WithBaseURL sets the download prefix; "<base>/<version>/<asset>" is fetched.
func WithBaseURL(base string) Option {
	return func(r *Release) error {
		if strings.TrimSpace(base) == "" {
			return errors.New("prodigal: empty base URL")
		}
		r.baseURL = strings.TrimRight(base, "/")
		return nil
	}
}

// WithHTTPClient replaces the default client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Release) error {
		if c == nil {
			return errors.New("prodigal: nil http client")
		}
		r.client = c
		return nil
	}
}

// WithTimeout bounds each download; 0 disables the limit. The client set so
// far (see WithHTTPClient) is kept, only its timeout changes.
func WithTimeout(d time.Duration) Option {
	return func(r *Release) error {
		c := *r.client
		c.Timeout = d
		r.client = &c
		return nil
	}
}

func WithLogger(l logrus.FieldLogger) Option {
	return func(r *Release) error {
		r.log = l
		return nil
	}
}

// NewRelease returns the pinned release, applying opts in order.
func NewRelease(opts ...Option) (*Release, error) {
	r := &Release{
		version: config.DefaultProdigalVersion,
		baseURL: config.DefaultProdigalBaseURL,
		client:  &http.Client{Timeout: config.DefaultProdigalTimeout},
		log:     logrus.StandardLogger(),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("configuring prodigal release: %w", err)
		}
	}
	return r, nil
}

// Version is the pinned release tag.
func (r *Release) Version() string { return r.version }

// URL returns the download URL of the binary for system.
func (r *Release) URL(system string) (string, error) {
	sys, err := NormalizeSystem(system)
	if err != nil {
		return "", err
	}
	return r.baseURL + "/" + r.version + "/" + assets[sys], nil
}

// NormalizeSystem lower-cases system and maps runtime.GOOS spellings
// ("darwin") onto release names. "host" resolves to the running OS.
func NormalizeSystem(system string) (string, error) {
	s := strings.ToLower(strings.TrimSpace(system))
	if s == "host" {
		s = runtime.GOOS
	}
	if s == "darwin" {
		s = SystemOSX
	}
	if _, ok := assets[s]; !ok {
		return "", fmt.Errorf("%w: %s {%s}", ErrUnsupportedSystem, s, strings.Join([]string{SystemLinux, SystemOSX, SystemWindows}, ", "))
	}
	return s, nil
}

// FileName is the local name a downloaded binary is saved under.
func FileName(version, system string) string {
	name := "prodigal-" + version + "-" + system
	if system == SystemWindows {
		name += ".exe"
	}
	return name
}
