// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package navigation

import (
	"context"
	"strconv"
	"strings"
)

// field is one line of input inside a prompt sequence.
type field struct {
	label  string
	secret bool

	// choices are listed above the prompt, numbered from 1.
	choices []string

	// check validates the submitted line. A non-empty notice aborts the
	// whole prompt.
	check func(ctx context.Context, line string) string
}

// prompt collects one value per field, then hands them to submit.
type prompt struct {
	fields []field
	values []string
	submit func(ctx context.Context, values []string)
}

func newPrompt(submit func(ctx context.Context, values []string), fields ...field) *prompt {
	return &prompt{
		fields: fields,
		values: make([]string, 0, len(fields)),
		submit: submit,
	}
}

func (p *prompt) current() field {
	return p.fields[len(p.values)]
}

// feed stores line for the current field. It returns a notice when the
// field rejects the line and whether all fields are now filled.
func (p *prompt) feed(ctx context.Context, line string) (notice string, complete bool) {
	if check := p.current().check; check != nil {
		if notice = check(ctx, line); notice != "" {
			return notice, false
		}
	}

	p.values = append(p.values, line)
	return "", len(p.values) == len(p.fields)
}

// parseNumber accepts only a run of ASCII digits, so signs and blanks are
// rejected.
func parseNumber(line string) (int, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return 0, false
	}
	for _, r := range line {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, false
	}
	return n, true
}

func isYes(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), "y")
}
