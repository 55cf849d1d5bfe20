package config

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// ValidationError reports a single CUE schema violation in a batch
// config as a field name plus a message.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var schemaCtx = cuecontext.New()

// validate checks cfg against schema.cue's #BatchConfig definition,
// returning every violation found rather than failing on the first.
func validate(cfg BatchConfig) []ValidationError {
	schema := schemaCtx.CompileString(schemaText)
	if err := schema.Err(); err != nil {
		return []ValidationError{{Field: "schema", Message: err.Error()}}
	}

	def := schema.LookupPath(cue.ParsePath("#BatchConfig"))

	encoded := schemaCtx.Encode(cfg)
	if err := encoded.Err(); err != nil {
		return []ValidationError{{Field: "config", Message: err.Error()}}
	}

	unified := def.Unify(encoded)
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return cueErrorsToValidationErrors(err)
	}

	return nil
}

func cueErrorsToValidationErrors(err error) []ValidationError {
	errs := cueerrors.Errors(err)
	if len(errs) == 0 {
		return []ValidationError{{Field: "config", Message: err.Error()}}
	}

	out := make([]ValidationError, 0, len(errs))
	for _, e := range errs {
		field := "config"
		if path := e.Path(); len(path) > 0 {
			field = path[len(path)-1]
		}
		out = append(out, ValidationError{Field: field, Message: e.Error()})
	}
	return out
}
