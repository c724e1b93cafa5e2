package patch

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/Sumatoshi-tech/distpatch/pkg/textutil"
)

// WriteDiff renders a before/after preview for one changed file.
// Unchanged regions are omitted; only removed and inserted text is shown.
func WriteDiff(writer io.Writer, change FileChange, colored bool) {
	fmt.Fprintf(writer, "--- %s (%d -> %d lines)\n",
		change.Path,
		textutil.CountLines([]byte(change.Before)),
		textutil.CountLines([]byte(change.After)))

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(change.Before, change.After, false)
	diffs = dmp.DiffCleanupSemantic(diffs)

	removed := color.New(color.FgRed)
	added := color.New(color.FgGreen)

	for _, diff := range diffs {
		switch diff.Type {
		case diffmatchpatch.DiffDelete:
			writeMarked(writer, removed, "-", diff.Text, colored)
		case diffmatchpatch.DiffInsert:
			writeMarked(writer, added, "+", diff.Text, colored)
		case diffmatchpatch.DiffEqual:
			// Context lines are omitted; the replaced import and the inlined
			// helper are self-describing.
		}
	}
}

func writeMarked(writer io.Writer, marked *color.Color, marker, text string, colored bool) {
	for _, line := range strings.Split(strings.TrimSuffix(text, "\n"), "\n") {
		if colored {
			marked.Fprintf(writer, "%s %s\n", marker, line)

			continue
		}

		fmt.Fprintf(writer, "%s %s\n", marker, line)
	}
}
