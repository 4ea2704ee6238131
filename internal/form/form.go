// Package form builds taxonomies interactively with huh forms.
package form

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/idlab-discover/dt-taxonomy-cli/internal/apperr"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/taxonomy"
	"github.com/idlab-discover/dt-taxonomy-cli/internal/ui"
)

// unsetOption is the select value that leaves a single-select dimension unset.
const unsetOption = ""

// TaxonomyForm holds one input per dimension. Values are bound by pointer so
// huh writes straight into them.
type TaxonomyForm struct {
	single map[taxonomy.Dimension]*string
	multi  map[taxonomy.Dimension]*[]string
}

// NewTaxonomyForm prepares a form pre-filled with initial.
func NewTaxonomyForm(initial taxonomy.Taxonomy) *TaxonomyForm {
	f := &TaxonomyForm{
		single: make(map[taxonomy.Dimension]*string),
		multi:  make(map[taxonomy.Dimension]*[]string),
	}
	for _, d := range taxonomy.Dimensions() {
		selected := initial.Selected(d)
		if d.Multiple() {
			v := append([]string(nil), selected...)
			f.multi[d] = &v
			continue
		}
		v := unsetOption
		if len(selected) == 1 {
			v = selected[0]
		}
		f.single[d] = &v
	}
	return f
}

// Groups returns the huh groups of the form: an intro note and one field per
// dimension.
func (f *TaxonomyForm) Groups() []*huh.Group {
	groups := []*huh.Group{
		huh.NewGroup(
			huh.NewNote().
				Title("Digital Twin Taxonomy").
				Description("Classify your digital twin along the ten taxonomy dimensions.\nLeave a dimension unset if it does not apply.").
				Next(true).
				NextLabel("Continue"),
		),
	}
	for _, d := range taxonomy.Dimensions() {
		groups = append(groups, huh.NewGroup(f.field(d)))
	}
	return groups
}

func (f *TaxonomyForm) field(d taxonomy.Dimension) huh.Field {
	if d.Multiple() {
		options := make([]huh.Option[string], 0, len(d.Options()))
		for _, o := range d.Options() {
			options = append(options, huh.NewOption(o.Label, o.Key))
		}
		return huh.NewMultiSelect[string]().
			Title(d.Label()).
			Description(ui.Muted.Render("Select all that apply (space to toggle)")).
			Options(options...).
			Value(f.multi[d])
	}

	options := []huh.Option[string]{huh.NewOption(ui.Muted.Render("Not set"), unsetOption)}
	for _, o := range d.Options() {
		options = append(options, huh.NewOption(o.Label, o.Key))
	}
	return huh.NewSelect[string]().
		Title(d.Label()).
		Options(options...).
		Value(f.single[d])
}

// Taxonomy converts the current form values.
func (f *TaxonomyForm) Taxonomy() (taxonomy.Taxonomy, error) {
	var t taxonomy.Taxonomy
	var err error
	for _, d := range taxonomy.Dimensions() {
		var values []string
		if d.Multiple() {
			values = *f.multi[d]
		} else if v := *f.single[d]; v != unsetOption {
			values = []string{v}
		}
		if t, err = t.With(d, values...); err != nil {
			return taxonomy.Taxonomy{}, fmt.Errorf("%s: %w", d.Label(), err)
		}
	}
	return t, nil
}

// Set assigns the form value of d, as a user would. Used by callers that
// pre-seed the form from flags.
func (f *TaxonomyForm) Set(d taxonomy.Dimension, values ...string) error {
	if !d.Known() {
		return fmt.Errorf("unknown dimension %q", d)
	}
	if d.Multiple() {
		v := append([]string(nil), values...)
		*f.multi[d] = v
		return nil
	}
	switch len(values) {
	case 0:
		*f.single[d] = unsetOption
	case 1:
		*f.single[d] = values[0]
	default:
		return fmt.Errorf("%s accepts a single value", d.Label())
	}
	return nil
}

// Run shows the form and returns the resulting taxonomy. Aborting the form
// returns apperr.ErrCancelled.
func (f *TaxonomyForm) Run() (taxonomy.Taxonomy, error) {
	if err := huh.NewForm(f.Groups()...).Run(); err != nil {
		return taxonomy.Taxonomy{}, mapAbort(err)
	}
	return f.Taxonomy()
}

// BuildTaxonomy runs the taxonomy form starting from initial.
func BuildTaxonomy(initial taxonomy.Taxonomy) (taxonomy.Taxonomy, error) {
	return NewTaxonomyForm(initial).Run()
}

// AskSaveDetails prompts for the title and description of a record.
func AskSaveDetails(title, description string) (string, string, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Title").
				Description("Name this taxonomy so you can find it later").
				Value(&title).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("this field is required")
					}
					return nil
				}),
			huh.NewText().
				Title("Description").
				Description(ui.Muted.Render("Optional")).
				Value(&description).
				Lines(3).
				CharLimit(1000),
		),
	)
	if err := form.Run(); err != nil {
		return "", "", mapAbort(err)
	}
	return strings.TrimSpace(title), strings.TrimSpace(description), nil
}

// Confirm asks a yes/no question.
func Confirm(title, description string) (bool, error) {
	var confirm bool
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Value(&confirm).
				Affirmative("Yes").
				Negative("No"),
		),
	)
	if err := form.Run(); err != nil {
		return false, mapAbort(err)
	}
	return confirm, nil
}

func mapAbort(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return apperr.ErrCancelled
	}
	return err
}
