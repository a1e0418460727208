package delegate

import (
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
)

// WriteTable renders the registry's caches as a text table, one row per type.
func (r *Registry) WriteTable(w io.Writer) error {
	table := tablewriter.NewWriter(w)
	table.Header("Type", "Cache", "Creation", "Clone", "Serialize", "Deserialize", "Accessors")
	for _, e := range r.Entries() {
		if err := table.Append(
			e.Type.String(),
			e.CacheID.String(),
			mark(e.Creation),
			mark(e.Clone),
			mark(e.Serialize),
			mark(e.Deserialize),
			strconv.Itoa(e.Accessors),
		); err != nil {
			return err
		}
	}
	return table.Render()
}

func mark(built bool) string {
	if built {
		return "yes"
	}
	return "-"
}
