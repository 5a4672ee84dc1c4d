package journal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// PromptOverwrite asks on `out` and reads the answer from `in`. Anything
// except "n" counts as yes, including an empty line.
func PromptOverwrite(in *bufio.Scanner, out io.Writer) Confirm {
	return func(path string) (bool, error) {
		fmt.Fprint(out, "File already exists, do you want to overwrite it [Y/n]: ")
		if !in.Scan() {
			if err := in.Err(); err != nil {
				return false, fmt.Errorf("failed to read answer: %w", err)
			}
			return false, fmt.Errorf("failed to read answer: %w", io.ErrUnexpectedEOF)
		}
		return strings.TrimSpace(in.Text()) != "n", nil
	}
}
