// SPDX-License-Identifier: MIT

package mosaic

import "strings"

// SplitBlocks cuts puzzle input into tile blocks separated by blank lines.
// CRLF line endings and whitespace-only separator lines are accepted; empty
// blocks are dropped.
func SplitBlocks(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")

	var (
		blocks []string
		cur    []string
	)
	flush := func() {
		if len(cur) > 0 {
			blocks = append(blocks, strings.Join(cur, "\n"))
			cur = cur[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			flush()
			continue
		}
		cur = append(cur, line)
	}
	flush()

	return blocks
}
