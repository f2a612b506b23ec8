// Package grammar implements the swimlang workout language parser.
// validate.go holds semantic checks layered above the parser.
package grammar

import "fmt"

// ValidationError reports a workout that is grammatical but semantically
// meaningless.
type ValidationError struct {
	Pos *Position
	Msg string
}

func (e *ValidationError) Error() string {
	if e.Pos != nil {
		return fmt.Sprintf("invalid workout at %s: %s", e.Pos, e.Msg)
	}
	return fmt.Sprintf("invalid workout: %s", e.Msg)
}

// Validate rejects values the grammar admits but the domain does not. The
// grammar's NUMBER rule allows "0" anywhere; zero repetition counts are
// already a parse error, while a zero distance parses and is caught here.
func (w *Workout) Validate() error {
	for _, set := range w.Sets {
		if err := validateSet(set); err != nil {
			return err
		}
	}
	return nil
}

func validateSet(set Set) error {
	switch s := set.(type) {
	case *Repetition:
		return validateSet(s.Body)
	case *Block:
		for _, inner := range s.Sets {
			if err := validateSet(inner); err != nil {
				return err
			}
		}
	case *Statement:
		if s.Distance.Value == 0 {
			return &ValidationError{Pos: s.Position, Msg: "distance must be greater than zero"}
		}
	}
	return nil
}
