package cli

// output.go prints command results as RFC 8785 canonical JSON

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/gowebpki/jcs"
	"github.com/spf13/afero"
)

// errNotConfirmed is returned when the API answers but its status does not confirm the operation
var errNotConfirmed = errors.New("operation not confirmed by the API")

func printJSON(w io.Writer, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	canonical, err := jcs.Transform(raw)
	if err != nil {
		return fmt.Errorf("failed to canonicalize output: %w", err)
	}
	_, err = fmt.Fprintf(w, "%s\n", canonical)
	return err
}

// printStatus prints {"ok": ok} and fails the command when ok is false
func printStatus(w io.Writer, ok bool) error {
	if err := printJSON(w, map[string]bool{"ok": ok}); err != nil {
		return err
	}
	if !ok {
		return errNotConfirmed
	}
	return nil
}

// readOptions decodes a JSON options file into out. An empty path leaves out untouched.
// Keys the API does not recognise are ignored.
func readOptions(fs afero.Fs, path string, out any) error {
	if path == "" {
		return nil
	}
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return fmt.Errorf("failed to read options file: %w", err)
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse options file %s: %w", path, err)
	}
	return nil
}
