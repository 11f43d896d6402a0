// internal/fetch/fetch.go
package fetch

import (
	"io"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// DefaultBaseURL serves the curated VDJdb release artifacts.
const DefaultBaseURL = "https://github.com/antigenomics/vdjdb-db/releases/latest/download"

const (
	slimFile = "vdjdb.slim.txt"
	fatFile  = "vdjdb.txt"
)

// Manager downloads reference tables into a caller-chosen directory. It
// never touches the home directory implicitly.
type Manager struct {
	dir     string
	baseURL string
	client  *retryablehttp.Client
	log     *zap.SugaredLogger
}

// Option configures a Manager.
type Option func(*Manager)

// WithBaseURL overrides the release URL; tests point this at a local
// server.
func WithBaseURL(u string) Option { return func(m *Manager) { m.baseURL = u } }

// WithLogger attaches a logger; the default discards everything.
func WithLogger(l *zap.SugaredLogger) Option { return func(m *Manager) { m.log = l } }

// New creates a Manager storing files under dir.
func New(dir string, opts ...Option) *Manager {
	client := retryablehttp.NewClient()
	client.Logger = nil
	m := &Manager{
		dir:     dir,
		baseURL: DefaultBaseURL,
		client:  client,
		log:     zap.NewNop().Sugar(),
	}
	for _, o := range opts {
		o(m)
	}
	return m
}

func fileName(fat bool) string {
	if fat {
		return fatFile
	}
	return slimFile
}

// Path returns where the slim or fat table lives under the managed
// directory, whether or not it exists yet.
func (m *Manager) Path(fat bool) string {
	return filepath.Join(m.dir, fileName(fat))
}

// Ensure returns the local path of the requested table, downloading it
// first if absent.
func (m *Manager) Ensure(fat bool) (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", err
	}
	path := m.Path(fat)
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}
	m.log.Infow("reference table not found, downloading", "path", path)
	if err := m.download(fat); err != nil {
		return "", err
	}
	return path, nil
}

// Update re-downloads both the slim and fat tables.
func (m *Manager) Update() error {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return err
	}
	if err := m.download(false); err != nil {
		return err
	}
	return m.download(true)
}

// download fetches one release artifact to a temp file and renames it into
// place, so a failed transfer never leaves a truncated table behind.
func (m *Manager) download(fat bool) error {
	name := fileName(fat)
	url := m.baseURL + "/" + name
	m.log.Infow("downloading reference table", "url", url)

	resp, err := m.client.Get(url)
	if err != nil {
		return errors.Wrapf(err, "fetch %s", url)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != 200 {
		return errors.Newf("fetch %s: unexpected status %s", url, resp.Status)
	}

	tmp, err := os.CreateTemp(m.dir, name+".*")
	if err != nil {
		return err
	}
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return errors.Wrapf(err, "write %s", tmp.Name())
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), m.Path(fat))
}
