package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pkg/errors"

	"github.com/jamesprial/unraid-cli/internal/graphql"
)

// printResult pretty-prints the outcome of an operation. A successful
// document and an executor error record are both printed as JSON to
// stdout; only errors outside the executor taxonomy (usage mistakes,
// configuration problems) propagate and produce a non-zero exit.
func printResult(w io.Writer, doc map[string]any, err error) error {
	if err != nil {
		var reqErr *graphql.RequestError
		if errors.As(err, &reqErr) {
			return printJSON(w, reqErr)
		}
		return err
	}
	return printJSON(w, doc)
}

// printJSON writes v as indented JSON followed by a newline.
func printJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal response: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
