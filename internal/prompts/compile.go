// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package prompts

import "github.com/charmbracelet/huh"

// ErrorModes lists the error mode choices offered by the forms.
var ErrorModes = []huh.Option[string]{
	huh.NewOption("Exceptions (panic / throw)", "exceptions"),
	huh.NewOption("Status codes", "status"),
}

// RunCompileForm asks for whichever of target and mode is still empty.
// It returns immediately when both are set.
func RunCompileForm(target, mode *string, targets []string) error {
	if *target != "" && *mode != "" {
		return nil
	}
	askTarget := *target == ""
	askMode := *mode == ""

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target language").
				Options(options(targets)...).
				Value(target),
		).WithHideFunc(func() bool { return !askTarget }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Error mode").
				Options(ErrorModes...).
				Value(mode),
		).WithHideFunc(func() bool { return !askMode }),
	).WithTheme(Theme()).Run()
}
