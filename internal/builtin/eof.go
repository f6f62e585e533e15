package builtin

import (
	"context"
	"strings"
)

// EndOfFileFixer ensures files end with exactly one newline.
func EndOfFileFixer(ctx context.Context, files []string, opt Options) (Result, error) {
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

		fixed := strings.TrimRight(content, "\r\n") + "\n"
		if fixed == content {
			continue
		}

		if !opt.DryRun {
			if err := WriteFileAtomic(path, []byte(fixed)); err != nil {
				return res, err
			}
		}
		res.Modified = append(res.Modified, path)
	}

	return res, nil
}
