package writers

import "io"

// WriteLines writes lines joined by "\n" with no trailing newline.
func WriteLines(w io.Writer, lines []string) error {
	for i, l := range lines {
		if i > 0 {
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, l); err != nil {
			return err
		}
	}
	return nil
}
