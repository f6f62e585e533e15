// Package config loads the two configuration surfaces of precommit.
//
// The hooks document (.pre-commit.yaml in the repository) declares which
// hooks run and on which files. It is parsed strictly: unknown keys are
// rejected so a typo like "exculde" surfaces as an error instead of
// silently matching everything.
//
// Tool settings (~/.config/precommit/config.toml) hold machine-wide
// preferences that don't belong in a shared repository file: the
// provisioning cache location, default parallelism, and a global timeout
// for external hooks.
package config
