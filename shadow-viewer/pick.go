package main

import (
	"github.com/ncruces/zenity"
	"github.com/pkg/errors"
)

// selectDir opens the native directory chooser starting at current.
var selectDir = func(current string) (string, error) {
	return zenity.SelectFile(
		zenity.Title("Select generator output directory"),
		zenity.Directory(),
		zenity.Filename(current),
	)
}

// pickOutputDir asks for the output directory with a native dialog.
// Cancelling keeps current.
func pickOutputDir(current string) (string, error) {
	dir, err := selectDir(current)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return current, nil
		}
		return "", errors.Wrap(err, "pick output dir")
	}
	return dir, nil
}
