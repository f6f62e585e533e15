package builtin

import (
	"context"
	"fmt"
	"os"
	"strconv"
)

// DefaultMaxBytes is the size limit for check-added-large-files when no
// argument overrides it.
const DefaultMaxBytes = 500_000

// CheckAddedLargeFiles reports a violation for every file larger than the
// limit. The limit comes from the first hook argument (bytes), falling back
// to [DefaultMaxBytes]. It never modifies files.
func CheckAddedLargeFiles(ctx context.Context, files []string, opt Options) (Result, error) {
	var res Result

	limit, err := maxBytes(opt.Args)
	if err != nil {
		return res, err
	}

	for _, path := range files {
		if err := ctx.Err(); err != nil {
			return res, err
		}

		info, err := os.Stat(path)
		if err != nil {
			return res, err
		}
		if info.Size() > limit {
			res.Violations = append(res.Violations, Violation{
				Path:    path,
				Message: fmt.Sprintf("file is %d bytes, limit is %d bytes", info.Size(), limit),
			})
		}
	}

	return res, nil
}

func maxBytes(args []string) (int64, error) {
	if len(args) == 0 {
		return DefaultMaxBytes, nil
	}
	limit, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || limit < 0 {
		return 0, fmt.Errorf("invalid max bytes argument %q", args[0])
	}
	return limit, nil
}
