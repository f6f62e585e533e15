package builtin

import (
	"context"
	"strings"
)

// TrailingWhitespace strips trailing spaces and tabs from every line,
// normalizing changed files to \n line endings.
func TrailingWhitespace(ctx context.Context, files []string, opt Options) (Result, error) {
	var res Result

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		content, ok, err := readText(path)
		if err != nil {
			return res, err
		}
		if !ok {
			continue
		}

		changed := false
		var b strings.Builder
		b.Grow(len(content))
		for _, line := range splitLines(content) {
			trimmed := strings.TrimRight(line, " \t")
			if len(trimmed) != len(line) {
				changed = true
			}
			b.WriteString(trimmed)
			b.WriteByte('\n')
		}
		if !changed {
			continue
		}

		if !opt.DryRun {
			if err := WriteFileAtomic(path, []byte(b.String())); err != nil {
				return res, err
			}
		}
		res.Modified = append(res.Modified, path)
	}

	return res, nil
}

// splitLines splits content into logical lines without terminators,
// treating both \n and \r\n as line endings. A trailing newline does not
// produce an empty final line.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
