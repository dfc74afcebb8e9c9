// internal/builder/static.go
package builder

import (
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// copyStatic copies the configured static paths out of the content tree and
// the theme's static directory into the output. Static paths keep their
// location (content/images -> public/images); theme assets land under
// theme/.
func (b *Builder) copyStatic() error {
	for _, rel := range b.cfg.StaticPaths {
		src := filepath.Join(b.contentDir(), filepath.FromSlash(rel))
		if _, err := os.Stat(src); os.IsNotExist(err) {
			b.log.Warn().Str("path", rel).Msg("static path missing, skipping")
			continue
		}
		dst := filepath.Join(b.outDir(), filepath.FromSlash(rel))
		if err := b.copyTree(src, dst); err != nil {
			return err
		}
	}

	themeStatic := filepath.Join(b.themeDir(), "static")
	if _, err := os.Stat(themeStatic); err == nil {
		if err := b.copyTree(themeStatic, filepath.Join(b.outDir(), "theme")); err != nil {
			return err
		}
	}
	return nil
}

// copyTree copies every regular file under src into dst, preserving the
// relative layout. Hidden files and directories are skipped.
func (b *Builder) copyTree(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if strings.HasPrefix(d.Name(), ".") && path != src {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if err := copyFile(path, filepath.Join(dst, rel)); err != nil {
			return err
		}
		b.static.Add(1)
		return nil
	})
}

// copyFile streams src into dst through a pending file, so a crashed build
// never leaves a half-copied asset behind.
func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := renameio.NewPendingFile(dst, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer out.Cleanup()
	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.CloseAtomicallyReplace()
}
