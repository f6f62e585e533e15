package builtin

import (
	"context"
	"fmt"

	"gopkg.in/yaml.v3"
)

// CheckYAML validates that files parse as YAML. It never modifies files;
// parse failures are reported as violations carrying the parser message.
func CheckYAML(ctx context.Context, files []string, _ Options) (Result, error) {
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
		if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
			res.Violations = append(res.Violations, Violation{
				Path:    path,
				Message: fmt.Sprintf("invalid YAML: %v", err),
			})
		}
	}

	return res, nil
}
