//go:build darwin && !test

package clipboard

import (
	"sync"

	xclipboard "golang.design/x/clipboard"
)

var (
	initOnce sync.Once
	initErr  error
)

func writeText(text string) error {
	initOnce.Do(func() {
		initErr = xclipboard.Init()
	})
	if initErr != nil {
		return initErr
	}

	xclipboard.Write(xclipboard.FmtText, []byte(text))
	return nil
}
