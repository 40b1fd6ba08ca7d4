package shell

import (
	"strings"

	"github.com/umisama/go-regexpcache"
)

// Shell is a Bourne-based shell used to run shunit2 tests.
type Shell string

const (
	ShellSh    Shell = "sh"
	ShellBash  Shell = "bash"
	ShellDash  Shell = "dash"
	ShellKsh   Shell = "ksh"
	ShellPdksh Shell = "pdksh"
	ShellZsh   Shell = "zsh"
)

func Shells() []string {
	return []string{
		string(ShellSh),
		string(ShellBash),
		string(ShellDash),
		string(ShellKsh),
		string(ShellPdksh),
		string(ShellZsh),
	}
}

// ParseShebang detects the shell from the first line of the script.
// A "#!/usr/bin/env <shell>" form is resolved to the env argument.
func ParseShebang(content string) (Shell, bool) {
	firstLine, _, _ := strings.Cut(content, "\n")
	match := regexpcache.MustCompile(`^#! *[/\w]*/(\w+) *(\w*)`).FindStringSubmatch(firstLine)
	if match == nil {
		return "", false
	}

	program := match[1]
	if program == "env" {
		program = match[2]
	}

	for _, shell := range Shells() {
		if shell == program {
			return Shell(shell), true
		}
	}
	return "", false
}

// VersionProbeArg returns the argument used to check that the shell binary works.
// Not every shell has a version flag.
func (s Shell) VersionProbeArg() (string, bool) {
	switch s {
	case ShellBash, ShellKsh, ShellZsh:
		return "--version", true
	default:
		return "", false
	}
}
