package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/termfx/findfx/internal/model"
)

// RenderJSON writes the full result list as an indented JSON array.
func RenderJSON(w io.Writer, results []model.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}

// RenderText writes a grep-like human report: one line per hit, a summary
// line when verbose, errors always surfaced.
func RenderText(w io.Writer, results []model.Result, cfg *model.Config) {
	matched := 0
	for _, res := range results {
		switch {
		case !res.Success:
			fmt.Fprintf(w, "findfx: %s: %s\n", res.File, res.Error)
		case res.Found && cfg.OffsetOnly:
			fmt.Fprintf(w, "%s:%d\n", res.File, res.Offset)
		case res.Found:
			fmt.Fprintf(w, "%s:%d:%d: %s\n", res.File, res.Line, res.Column, res.Preview)
		}
		if res.Found {
			matched++
		}
	}

	if cfg.Verbose {
		fmt.Fprintf(w, "%d of %d files matched (%s)\n", matched, len(results), cfg.Algorithm)
	}
}
