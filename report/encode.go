package report

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// diagnosticDoc is a diagnostic as it is encoded in YAML
type diagnosticDoc struct {
	Kind     string `yaml:"kind"`
	Function string `yaml:"function,omitempty"`
	Message  string `yaml:"message"`
	Node     string `yaml:"node,omitempty"`
}

// reportDoc is the full result of checking one program as it is encoded in
// YAML
type reportDoc struct {
	Program     string          `yaml:"program"`
	WellTyped   bool            `yaml:"well-typed"`
	Diagnostics []diagnosticDoc `yaml:"diagnostics"`

	// Error is set if the program could not be checked at all.
	Error string `yaml:"error,omitempty"`
}

// DiagnosticEncoder writes the results of checking programs to a stream of
// YAML documents, one per program.  This is the machine-readable alternative
// to the reporter's display.
type DiagnosticEncoder struct {
	enc *yaml.Encoder
}

// NewDiagnosticEncoder creates a new encoder writing to w.
func NewDiagnosticEncoder(w io.Writer) *DiagnosticEncoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &DiagnosticEncoder{enc: enc}
}

// Encode writes the diagnostics found in the program at progPath as the next
// document in the stream.
func (de *DiagnosticEncoder) Encode(progPath string, diags []Diagnostic) error {
	doc := reportDoc{
		Program:     progPath,
		WellTyped:   len(diags) == 0,
		Diagnostics: make([]diagnosticDoc, len(diags)),
	}

	for i, d := range diags {
		doc.Diagnostics[i] = diagnosticDoc{
			Kind:     d.Kind.String(),
			Function: d.Function,
			Message:  d.Message,
		}

		if d.Node != nil {
			doc.Diagnostics[i].Node = d.Node.Repr()
		}
	}

	if err := de.enc.Encode(&doc); err != nil {
		return fmt.Errorf("error encoding diagnostics: %w", err)
	}

	return nil
}

// EncodeFailure writes a document for a program that could not be checked:
// eg. because it failed to load.  Such a program is never well-typed.
func (de *DiagnosticEncoder) EncodeFailure(progPath string, err error) error {
	doc := reportDoc{
		Program:     progPath,
		WellTyped:   false,
		Diagnostics: []diagnosticDoc{},
		Error:       err.Error(),
	}

	if err := de.enc.Encode(&doc); err != nil {
		return fmt.Errorf("error encoding failure: %w", err)
	}

	return nil
}

// Close flushes the stream.  It must be called once all documents have been
// encoded.
func (de *DiagnosticEncoder) Close() error {
	return de.enc.Close()
}
