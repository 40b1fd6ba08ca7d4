package shell

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseShebang(t *testing.T) {
	t.Parallel()

	cases := []struct {
		content  string
		expected Shell
		found    bool
	}{
		{"#!/bin/bash\necho hello", ShellBash, true},
		{"#!/bin/sh", ShellSh, true},
		{"#! /bin/zsh", ShellZsh, true},
		{"#!/usr/bin/env bash", ShellBash, true},
		{"#!/usr/bin/env dash extra", ShellDash, true},
		{"#!/usr/local/bin/ksh", ShellKsh, true},
		{"#!/usr/bin/python", "", false},
		{"#!/usr/bin/env fish", "", false},
		{"echo hello", "", false},
		{"", "", false},
	}

	for _, c := range cases {
		shell, found := ParseShebang(c.content)
		assert.Equal(t, c.found, found, c.content)
		assert.Equal(t, c.expected, shell, c.content)
	}
}

func TestVersionProbeArg(t *testing.T) {
	t.Parallel()

	arg, found := ShellBash.VersionProbeArg()
	assert.True(t, found)
	assert.Equal(t, "--version", arg)

	_, found = ShellSh.VersionProbeArg()
	assert.False(t, found)
}
