package excel

// Column is one named series of samples
type Column struct {
	Name   string
	Values []float64
}

// Table is a set of columns written side by side. Columns may differ in
// length; shorter ones leave trailing cells empty.
type Table struct {
	Columns []Column
}

// Rows returns the length of the longest column
func (t *Table) Rows() int {
	n := 0
	for _, c := range t.Columns {
		if len(c.Values) > n {
			n = len(c.Values)
		}
	}
	return n
}

// Column returns the column called name
func (t *Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// headers returns the column names
func (t *Table) headers() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}
