//go:build !darwin || test

package clipboard

import (
	atotto "github.com/atotto/clipboard"
)

func writeText(text string) error {
	return atotto.WriteAll(text)
}
