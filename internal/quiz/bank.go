package quiz

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"
)

//go:embed banks/*.yaml banks/schema.json
var bankFS embed.FS

const schemaURL = "schema://quiz-bank.json"

// bankOrder is the display order of the embedded banks.
var bankOrder = []string{"geometry", "normal"}

// ErrUnknownBank is returned by LoadBank for an id with no embedded bank.
var ErrUnknownBank = errors.New("unknown quiz bank")

// BankError reports a bank that failed to parse or validate.
type BankError struct {
	ID  string
	Err error
}

func (e *BankError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("quiz bank: %v", e.Err)
	}
	return fmt.Sprintf("quiz bank %q: %v", e.ID, e.Err)
}

func (e *BankError) Unwrap() error { return e.Err }

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// bankSchema compiles the embedded JSON Schema once.
func bankSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		raw, err := bankFS.ReadFile("banks/schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read schema: %w", err)
			return
		}
		var def any
		if err := json.Unmarshal(raw, &def); err != nil {
			compileErr = fmt.Errorf("parse schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// ParseBank decodes a YAML bank, validates its shape against the bank schema,
// then checks that every answer is one of its question's options.
func ParseBank(data []byte) (*Bank, error) {
	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &BankError{Err: fmt.Errorf("decode yaml: %w", err)}
	}

	// Round-trip through JSON so the validator sees plain JSON values.
	js, err := json.Marshal(doc)
	if err != nil {
		return nil, &BankError{Err: fmt.Errorf("normalize: %w", err)}
	}
	var inst any
	if err := json.Unmarshal(js, &inst); err != nil {
		return nil, &BankError{Err: fmt.Errorf("normalize: %w", err)}
	}

	sch, err := bankSchema()
	if err != nil {
		return nil, &BankError{Err: fmt.Errorf("compile schema: %w", err)}
	}
	if err := sch.Validate(inst); err != nil {
		return nil, &BankError{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var bank Bank
	if err := yaml.Unmarshal(data, &bank); err != nil {
		return nil, &BankError{Err: fmt.Errorf("decode bank: %w", err)}
	}
	if err := bank.Validate(); err != nil {
		return nil, &BankError{ID: bank.ID, Err: err}
	}
	return &bank, nil
}

// Validate checks the invariants the schema cannot express.
func (b *Bank) Validate() error {
	for i, q := range b.Questions {
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if seen[o] {
				return fmt.Errorf("question %d: duplicate option %q", i+1, o)
			}
			seen[o] = true
		}
		if !seen[q.Answer] {
			return fmt.Errorf("question %d: answer %q is not an option", i+1, q.Answer)
		}
	}
	return nil
}

// LoadBank returns the embedded bank with the given id.
func LoadBank(id string) (*Bank, error) {
	data, err := bankFS.ReadFile("banks/" + id + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownBank, id)
	}
	bank, err := ParseBank(data)
	if err != nil {
		return nil, err
	}
	if bank.ID != id {
		return nil, &BankError{ID: id, Err: fmt.Errorf("file declares id %q", bank.ID)}
	}
	return bank, nil
}

// Banks loads every embedded bank in display order.
func Banks() ([]*Bank, error) {
	out := make([]*Bank, 0, len(bankOrder))
	for _, id := range bankOrder {
		b, err := LoadBank(id)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// BankIDs returns the ids of the embedded banks in display order.
func BankIDs() []string {
	return append([]string(nil), bankOrder...)
}
