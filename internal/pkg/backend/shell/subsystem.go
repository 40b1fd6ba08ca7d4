package shell

import (
	"context"

	"github.com/marijncv/pants/internal/pkg/export"
	"github.com/marijncv/pants/internal/pkg/validator"
)

const (
	shellcheckLockfileDest = "locks/shellcheck.lock"
	shfmtLockfileDest      = "locks/shfmt.lock"
)

// ShellcheckOptions configure the shellcheck linter.
type ShellcheckOptions struct {
	Version string   `json:"version" validate:"required"`
	Args    []string `json:"args"`
}

// Shellcheck is the shellcheck linter subsystem.
type Shellcheck struct {
	options ShellcheckOptions
}

func NewShellcheck() *Shellcheck {
	return &Shellcheck{options: ShellcheckOptions{Version: "v0.8.0"}}
}

func (s *Shellcheck) ToolName() string {
	return "shellcheck"
}

func (s *Shellcheck) Options() ShellcheckOptions {
	return s.options
}

func (s *Shellcheck) SetOptions(ctx context.Context, options ShellcheckOptions) error {
	if err := validator.Validate(ctx, options); err != nil {
		return err
	}
	s.options = options
	return nil
}

func (s *Shellcheck) DefaultLockfile() export.Lockfile {
	return export.Lockfile{
		Dest:           shellcheckLockfileDest,
		DefaultContent: "tool: shellcheck\nversion: " + s.options.Version + "\n",
	}
}

// ShfmtOptions configure the shfmt formatter.
type ShfmtOptions struct {
	Version string   `json:"version" validate:"required"`
	Args    []string `json:"args"`
}

// Shfmt is the shfmt formatter subsystem.
type Shfmt struct {
	options ShfmtOptions
}

func NewShfmt() *Shfmt {
	return &Shfmt{options: ShfmtOptions{Version: "v3.2.4"}}
}

func (s *Shfmt) ToolName() string {
	return "shfmt"
}

func (s *Shfmt) Options() ShfmtOptions {
	return s.options
}

func (s *Shfmt) SetOptions(ctx context.Context, options ShfmtOptions) error {
	if err := validator.Validate(ctx, options); err != nil {
		return err
	}
	s.options = options
	return nil
}

func (s *Shfmt) DefaultLockfile() export.Lockfile {
	return export.Lockfile{
		Dest:           shfmtLockfileDest,
		DefaultContent: "tool: shfmt\nversion: " + s.options.Version + "\n",
	}
}
