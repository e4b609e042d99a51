// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The Xabin Authors

package prompts

import "github.com/charmbracelet/huh"

// InitAnswers holds the values collected by RunInitForm.
type InitAnswers struct {
	// Sources is a comma-separated list of schema files.
	Sources   string
	Target    string
	ErrorMode string
	Output    string
	Package   string
}

// RunInitForm runs the interactive form for the init command.
// Fields already set in answers are used as defaults.
func RunInitForm(answers *InitAnswers, targets []string) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Schema sources").
				Description("Comma-separated; .xml/.yaml files are tree documents").
				Placeholder("schema/records.xabin").
				Validate(listValidator("source")).
				Value(&answers.Sources),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Target language").
				Options(options(targets)...).
				Value(&answers.Target),
			huh.NewSelect[string]().
				Title("Error mode").
				Options(ErrorModes...).
				Value(&answers.ErrorMode),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Output path (without extension)").
				Placeholder("xabin_gen").
				Validate(requiredValidator("output path")).
				Value(&answers.Output),
			huh.NewInput().
				Title("Go package name (optional)").
				Placeholder("schema").
				Validate(identifierValidator).
				Value(&answers.Package),
		).WithHideFunc(func() bool { return answers.Target != "go" }),
	).WithTheme(Theme()).Run()
}
