package vocab

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// structValidator returns the shared validator with the study_mode tag registered.
func structValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		_ = validate.RegisterValidation("study_mode", func(fl validator.FieldLevel) bool {
			return StudyMode(fl.Field().String()).Valid()
		})
	})
	return validate
}

// Validate checks the table's structure: required fields, unique IDs,
// and that every relation references existing columns.
// Returns a combined error describing all problems found, or nil if valid.
func (t *Table) Validate() error {
	var errs []string

	if err := structValidator().Struct(t); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				errs = append(errs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
			}
		} else {
			errs = append(errs, err.Error())
		}
	}

	colSet := make(map[string]bool, len(t.Columns))
	for _, c := range t.Columns {
		if colSet[c.ID] {
			errs = append(errs, fmt.Sprintf("duplicate column ID: %q", c.ID))
		}
		colSet[c.ID] = true
	}

	rowSet := make(map[string]bool, len(t.Rows))
	for _, r := range t.Rows {
		if rowSet[r.ID] {
			errs = append(errs, fmt.Sprintf("duplicate row ID: %q", r.ID))
		}
		rowSet[r.ID] = true
		for colID := range r.Cols {
			if !colSet[colID] {
				errs = append(errs, fmt.Sprintf("row %q has value for unknown column %q", r.ID, colID))
			}
		}
	}

	relSet := make(map[string]bool, len(t.Relations))
	for _, rel := range t.Relations {
		if relSet[rel.ID] {
			errs = append(errs, fmt.Sprintf("duplicate relation ID: %q", rel.ID))
		}
		relSet[rel.ID] = true
		for _, colID := range rel.QuestionColumnIDs {
			if !colSet[colID] {
				errs = append(errs, fmt.Sprintf("relation %q references nonexistent question column %q", rel.ID, colID))
			}
		}
		for _, colID := range rel.AnswerColumnIDs {
			if !colSet[colID] {
				errs = append(errs, fmt.Sprintf("relation %q references nonexistent answer column %q", rel.ID, colID))
			}
		}
		if len(rel.AnswerColumnIDs) == 0 {
			for _, m := range rel.CompatibleModes {
				if m != ModeScrambled {
					errs = append(errs, fmt.Sprintf("relation %q has no answer columns but allows mode %q", rel.ID, m))
				}
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("table %q validation failed:\n  %s", t.ID, strings.Join(errs, "\n  "))
	}
	return nil
}
