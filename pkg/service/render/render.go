package render

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/m-mizutani/goerr/v2"
	"github.com/mailops-lab/mailquota/pkg/domain/model"
	"github.com/mailops-lab/mailquota/pkg/domain/types"
)

// warningMarker is appended to rows at or above the warning threshold
const warningMarker = "Warning"

// Renderer writes report rows, sorted by descending usage percentage
type Renderer interface {
	Render(w io.Writer, rows []*model.ReportRow) error
}

// New returns the renderer for the given output format
func New(format types.OutputFormat) (Renderer, error) {
	switch format {
	case types.FormatText:
		return &textRenderer{}, nil
	case types.FormatCSV:
		return &csvRenderer{}, nil
	default:
		return nil, goerr.New("unknown output format", goerr.V("format", format))
	}
}

// sortRows returns a copy sorted by descending percentage. The sort is
// stable, so equal percentages keep their build order.
func sortRows(rows []*model.ReportRow) []*model.ReportRow {
	sorted := make([]*model.ReportRow, len(rows))
	copy(sorted, rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Percent > sorted[j].Percent
	})
	return sorted
}

func marker(row *model.ReportRow) string {
	if row.Warning() {
		return warningMarker
	}
	return ""
}

// textRenderer writes aligned fixed-width text. The title and username
// column widths are sized to the longest values of the whole result set.
type textRenderer struct{}

func (r *textRenderer) Render(w io.Writer, rows []*model.ReportRow) error {
	var titleWidth, usernameWidth int
	for _, row := range rows {
		if len(row.Title) > titleWidth {
			titleWidth = len(row.Title)
		}
		if len(row.Username) > usernameWidth {
			usernameWidth = len(row.Username)
		}
	}

	for _, row := range sortRows(rows) {
		_, err := fmt.Fprintf(w, "%-*s  %-*s  %5d / %-5d  %5.2f%% %s\n",
			titleWidth, row.Title,
			usernameWidth, row.Username,
			row.UsedKB, row.TotalKB,
			row.Percent,
			marker(row),
		)
		if err != nil {
			return goerr.Wrap(err, "failed to write report row")
		}
	}

	return nil
}

// csvRenderer writes semicolon-delimited records with a header row
type csvRenderer struct{}

func (r *csvRenderer) Render(w io.Writer, rows []*model.ReportRow) error {
	cw := csv.NewWriter(w)
	cw.Comma = ';'

	header := []string{"Title", "Username", "Used space", "Total space", "User percent", "Info"}
	if err := cw.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write report header")
	}

	for _, row := range sortRows(rows) {
		record := []string{
			row.Title,
			row.Username,
			strconv.FormatUint(row.UsedKB, 10),
			strconv.FormatUint(row.TotalKB, 10),
			strconv.FormatFloat(row.Percent, 'f', 2, 64),
			marker(row),
		}
		if err := cw.Write(record); err != nil {
			return goerr.Wrap(err, "failed to write report row")
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return goerr.Wrap(err, "failed to flush report")
	}
	return nil
}
