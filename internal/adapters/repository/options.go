package repository

import (
	"github.com/okian/lineout/pkg/logger"
	"github.com/spf13/afero"
)

// Option applies a configuration option to the Workbook.
type Option func(*Workbook)

// WithFs sets the filesystem the workbook file lives on.
func WithFs(fs afero.Fs) Option {
	return func(w *Workbook) {
		if fs != nil {
			w.fs = fs
		}
	}
}

// LoaderOption applies a configuration option to the SafeLoader.
type LoaderOption func(*SafeLoader)

// WithLoaderLogger sets the logger used to report backend failures.
func WithLoaderLogger(l logger.Logger) LoaderOption {
	return func(s *SafeLoader) {
		if l != nil {
			s.log = l
		}
	}
}
