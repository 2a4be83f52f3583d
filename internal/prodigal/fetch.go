// internal/prodigal/fetch.go
package prodigal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"phagetools/internal/version"
)

const (
	chunkSize = 10 * 1024
	sniffSize = 3072 // mimetype's default read limit
)

// GetBinary downloads the binary for system into dir and returns its path.
// The directory is checked before any request is made. Linux and OS X
// binaries are made executable; Windows binaries are left as plain files.
func (r *Release) GetBinary(ctx context.Context, system, dir string) (string, error) {
	if err := checkDir(dir); err != nil {
		return "", err
	}
	sys, err := NormalizeSystem(system)
	if err != nil {
		return "", err
	}
	url, err := r.URL(sys)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(dir, FileName(r.version, sys))
	log := r.log.WithFields(logrus.Fields{"system": sys, "url": url})
	log.Debug("downloading prodigal")

	n, err := r.download(ctx, url, fullPath, mode(sys))
	if err != nil {
		return "", err
	}
	log.WithFields(logrus.Fields{"path": fullPath, "bytes": n}).Info("prodigal binary saved")
	return fullPath, nil
}

// GetAll downloads binaries for every system concurrently and returns their
// paths in the order given. Duplicate systems are fetched once. The first
// failure cancels the remaining downloads.
func (r *Release) GetAll(ctx context.Context, dir string, systems []string) ([]string, error) {
	if err := checkDir(dir); err != nil {
		return nil, err
	}
	var uniq []string
	seen := make(map[string]struct{}, len(systems))
	for _, s := range systems {
		sys, err := NormalizeSystem(s)
		if err != nil {
			return nil, err
		}
		if _, ok := seen[sys]; ok {
			continue
		}
		seen[sys] = struct{}{}
		uniq = append(uniq, sys)
	}

	paths := make([]string, len(uniq))
	g, gctx := errgroup.WithContext(ctx)
	for i, sys := range uniq {
		g.Go(func() error {
			p, err := r.GetBinary(gctx, sys, dir)
			if err != nil {
				return err
			}
			paths[i] = p
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return paths, nil
}

func (r *Release) download(ctx context.Context, url, dst string, perm os.FileMode) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", "phagetools/"+version.Version)

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("downloading %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return 0, fmt.Errorf("downloading %s: unexpected status %s", url, resp.Status)
	}

	body := bufio.NewReaderSize(resp.Body, sniffSize)
	head, err := body.Peek(sniffSize)
	if err != nil && err != io.EOF && err != bufio.ErrBufferFull {
		return 0, fmt.Errorf("reading %s: %w", url, err)
	}
	if mt := mimetype.Detect(head); mt.Is("text/html") {
		return 0, fmt.Errorf("%w: %s served %s", ErrUnexpectedContent, url, mt.String())
	}

	// Stage next to the destination so a failed download leaves nothing behind.
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".prodigal-*")
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dst, err)
	}
	cleanup := func() {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
	}

	n, err := copyChunks(tmp, body)
	if err != nil {
		cleanup()
		return 0, fmt.Errorf("writing %s: %w", dst, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("closing %s: %w", dst, err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		_ = os.Remove(tmp.Name())
		return 0, fmt.Errorf("moving download to %s: %w", dst, err)
	}
	return n, nil
}

// copyChunks streams src to dst through a chunkSize buffer. Both ends are
// wrapped so io.CopyBuffer cannot bypass the buffer via WriterTo/ReaderFrom.
func copyChunks(dst io.Writer, src io.Reader) (int64, error) {
	return io.CopyBuffer(struct{ io.Writer }{dst}, struct{ io.Reader }{src}, make([]byte, chunkSize))
}

func checkDir(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil || !fi.IsDir() {
		return fmt.Errorf("%q is %w", dir, ErrNotDirectory)
	}
	return nil
}

func mode(system string) os.FileMode {
	if system == SystemWindows {
		return 0o644
	}
	return 0o755
}
