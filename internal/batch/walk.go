package batch

import (
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/leaguetools/uvee/internal/logger"
)

// Collect expands a mixed list of file and directory arguments into the
// model files to process. Directories are walked recursively; files whose
// extension matches no decoder are skipped. A file argument that cannot be
// statted is kept when its extension matches, so the failure surfaces as
// that file's result instead of vanishing.
func Collect(args []string) []string {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		switch {
		case err != nil:
			if Detect(arg) != KindNone {
				files = append(files, arg)
			} else {
				logger.Warn("skipping unreadable path", zap.String("path", arg), zap.Error(err))
			}
		case info.IsDir():
			files = append(files, collectDir(arg)...)
		default:
			if Detect(arg) != KindNone {
				files = append(files, arg)
			} else {
				logger.Debug("skipping unrecognized file", zap.String("path", arg))
			}
		}
	}
	return files
}

// collectDir gathers every model file under root. Walk errors are logged
// and skipped: an unreadable subdirectory must not abort the batch.
func collectDir(root string) []string {
	var files []string
	filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			logger.Warn("walk error", zap.String("path", path), zap.Error(err))
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if Detect(path) != KindNone {
			files = append(files, path)
		}
		return nil
	})
	return files
}
