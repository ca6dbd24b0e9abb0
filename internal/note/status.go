package note

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"notekit/internal/tags"
)

// ChooseStatus runs the single-choice status menu until src yields a valid
// 1-based index into Statuses. Invalid entries are reported and re-prompted;
// the loop cannot be left without a valid choice.
func ChooseStatus(src tags.Source, diag io.Writer) (string, error) {
	for {
		fmt.Fprintln(diag, "Select status:")
		for i, s := range Statuses {
			fmt.Fprintf(diag, "%3d) %s\n", i+1, s)
		}
		line, err := src.ReadLine()
		if err != nil {
			return "", fmt.Errorf("read status: %w", err)
		}
		choice := strings.TrimSpace(line)
		v, convErr := strconv.Atoi(choice)
		if convErr != nil || v < 1 || v > len(Statuses) {
			fmt.Fprintf(diag, "Invalid choice: %s\n", choice)
			continue
		}
		return Statuses[v-1], nil
	}
}
