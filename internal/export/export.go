// Package export writes the portfolio as a static site. Every reachable UI
// state is rendered to its own directory and the state links point at
// those directories, so the exported site needs no server logic.
package export

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/Zachkp/folio/internal/components"
	"github.com/Zachkp/folio/internal/content"
	"github.com/Zachkp/folio/internal/ui"
)

// Exporter renders a Site into OutputDir.
type Exporter struct {
	OutputDir string
	AssetsDir string
	// ContentFile, when set, must not live under OutputDir.
	ContentFile string
	BaseURL     string
	Media       content.MediaPolicy
	Year        int
	Log         *zap.Logger
}

// Run cleans OutputDir, writes one index.html per state and copies the
// assets. It returns the number of pages written.
func (e *Exporter) Run(site *content.Site) (int, error) {
	log := e.Log
	if log == nil {
		log = zap.NewNop()
	}
	if err := e.checkOutputDir(); err != nil {
		return 0, err
	}

	if err := os.RemoveAll(e.OutputDir); err != nil {
		return 0, fmt.Errorf("cleaning output directory %s: %w", e.OutputDir, err)
	}
	if err := os.MkdirAll(e.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output directory %s: %w", e.OutputDir, err)
	}

	if e.AssetsDir != "" {
		if _, err := os.Stat(e.AssetsDir); err == nil {
			if err := copyDirContents(e.AssetsDir, e.OutputDir); err != nil {
				return 0, fmt.Errorf("copying assets: %w", err)
			}
			log.Info("assets copied", zap.String("from", e.AssetsDir))
		} else if os.IsNotExist(err) {
			log.Warn("assets directory not found, skipping copy", zap.String("dir", e.AssetsDir))
		} else {
			return 0, fmt.Errorf("accessing assets %s: %w", e.AssetsDir, err)
		}
	}

	opts := components.Options{
		Linker: ui.PathLinker{Base: e.BaseURL},
		Media:  e.Media,
		Year:   e.Year,
		Boost:  true,
	}

	pages := 0
	for _, state := range ui.All() {
		path := filepath.Join(e.OutputDir, filepath.FromSlash(ui.StateDir(state)), "index.html")
		if err := writePage(path, site, state, opts); err != nil {
			return pages, err
		}
		pages++
		log.Debug("page written", zap.String("path", path), zap.Bool("dark", state.Dark), zap.Bool("popup", state.Popup))
	}

	log.Info("export complete", zap.String("dir", e.OutputDir), zap.Int("pages", pages))
	return pages, nil
}

// checkOutputDir refuses an output directory whose removal would take
// inputs or the working tree with it.
func (e *Exporter) checkOutputDir() error {
	if e.OutputDir == "" {
		return fmt.Errorf("export: output directory is required")
	}
	out, err := filepath.Abs(e.OutputDir)
	if err != nil {
		return fmt.Errorf("export: resolving %s: %w", e.OutputDir, err)
	}
	if filepath.Dir(out) == out {
		return fmt.Errorf("export: refusing to use filesystem root %s as output directory", out)
	}

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("export: resolving working directory: %w", err)
	}
	guarded := map[string]string{"working directory": wd}
	if e.AssetsDir != "" {
		guarded["assets directory"] = e.AssetsDir
	}
	if e.ContentFile != "" {
		guarded["content file"] = e.ContentFile
	}

	for what, p := range guarded {
		abs, err := filepath.Abs(p)
		if err != nil {
			return fmt.Errorf("export: resolving %s: %w", p, err)
		}
		if within(out, abs) {
			return fmt.Errorf("export: output directory %s contains the %s %s", e.OutputDir, what, p)
		}
	}
	return nil
}

// within reports whether p is dir or lies beneath it.
func within(dir, p string) bool {
	rel, err := filepath.Rel(dir, p)
	if err != nil {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

func writePage(path string, site *content.Site, state ui.State, opts components.Options) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := components.Page(site, state, opts).Render(f); err != nil {
		return fmt.Errorf("rendering %s: %w", path, err)
	}
	return f.Close()
}

// copyDirContents recursively copies the contents of src into dst.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return fmt.Errorf("relative path for %s: %w", path, err)
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			return os.MkdirAll(target, 0o755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("opening %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copying %s to %s: %w", src, dst, err)
	}
	return out.Close()
}
