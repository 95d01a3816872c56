package catalog

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"randist/internal/errors"
)

// args reads distribution parameters from their string form and records
// every unparsable value and every key nobody asked for
type args struct {
	raw  map[string]string
	used map[string]bool
	bad  []string
}

func newArgs(raw map[string]string) *args {
	a := &args{raw: make(map[string]string, len(raw)), used: map[string]bool{}}
	for k, v := range raw {
		a.raw[strings.ToLower(strings.TrimSpace(k))] = strings.TrimSpace(v)
	}
	return a
}

func (a *args) lookup(name string) (string, bool) {
	a.used[name] = true
	v, ok := a.raw[name]
	return v, ok && v != ""
}

func (a *args) float(name string, def float64) float64 {
	v, ok := a.lookup(name)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		a.bad = append(a.bad, name)
		return def
	}
	return f
}

func (a *args) int(name string, def int) int {
	v, ok := a.lookup(name)
	if !ok {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		a.bad = append(a.bad, name)
		return def
	}
	return i
}

// floats parses a comma separated list
func (a *args) floats(name string, def []float64) []float64 {
	v, ok := a.lookup(name)
	if !ok {
		return def
	}
	parts := strings.Split(v, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			a.bad = append(a.bad, name)
			return def
		}
		out = append(out, f)
	}
	return out
}

func (a *args) err(distribution string) error {
	if len(a.bad) > 0 {
		return errors.InvalidArgument(fmt.Sprintf("unparsable %s parameters", distribution), a.bad...)
	}
	var unknown []string
	for k := range a.raw {
		if !a.used[k] {
			unknown = append(unknown, k)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return errors.InvalidArgument(fmt.Sprintf("unknown %s parameters", distribution), unknown...)
	}
	return nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatFloats(fs []float64) string {
	parts := make([]string, len(fs))
	for i, f := range fs {
		parts[i] = formatFloat(f)
	}
	return strings.Join(parts, ",")
}
