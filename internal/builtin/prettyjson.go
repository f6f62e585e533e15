package builtin

import (
	"context"
	"encoding/json"
)

// PrettyFormatJSON rewrites JSON files with two-space indentation and a
// trailing newline. Files that do not parse as JSON are skipped, matching
// the convention that check-style validation belongs to a separate hook.
func PrettyFormatJSON(ctx context.Context, files []string, opt Options) (Result, error) {
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

		var doc any
		if err := json.Unmarshal([]byte(content), &doc); err != nil {
			continue
		}
		pretty, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return res, err
		}
		fixed := string(pretty) + "\n"
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
