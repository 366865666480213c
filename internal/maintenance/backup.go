package maintenance

import (
	"archive/zip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/klauspost/compress/flate"
	"go.uber.org/zap"
)

// BackupData snapshots the entire baseDir tree into a zip archive named
// backup_<timestamp>.zip under destDir and returns the archive path.
// Entry names are relative to baseDir. Not atomic with respect to
// concurrent writers into the tree; callers run it between pipeline
// steps.
func (m *Maintainer) BackupData(baseDir, destDir string) (string, error) {
	timestamp := time.Now().Format("20060102_150405")
	archivePath := filepath.Join(destDir, fmt.Sprintf("backup_%s.zip", timestamp))

	f, err := os.Create(archivePath)
	if err != nil {
		return "", fmt.Errorf("failed to create backup archive: %w", err)
	}
	defer f.Close()

	zw := zip.NewWriter(f)
	zw.RegisterCompressor(zip.Deflate, func(out io.Writer) (io.WriteCloser, error) {
		return flate.NewWriter(out, flate.DefaultCompression)
	})

	walkErr := filepath.WalkDir(baseDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(baseDir, path)
		if err != nil {
			return err
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)
		header.Method = zip.Deflate

		w, err := zw.CreateHeader(header)
		if err != nil {
			return err
		}

		src, err := os.Open(path)
		if err != nil {
			return err
		}
		defer src.Close()

		_, err = io.Copy(w, src)
		return err
	})
	if walkErr != nil {
		zw.Close()
		return "", fmt.Errorf("failed to archive %s: %w", baseDir, walkErr)
	}

	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize backup archive: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close backup archive: %w", err)
	}

	m.logger.Info("Backup created",
		zap.String("base_dir", baseDir),
		zap.String("archive", archivePath))

	return archivePath, nil
}
