package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	smerror "github.com/Cal-ly/SnakeMath-sub002/foundation/core/error"
)

// render writes v in the selected output format. text renders the
// human-readable form.
func render(cmd *cobra.Command, v interface{}, text func(w io.Writer)) error {
	w := cmd.OutOrStdout()
	switch settings.General.Output {
	case "json":
		data, err := marshalJSON(v)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return smerror.Wrap(err, "encode yaml").WithCode(smerror.CodeInternal)
		}
		return enc.Close()
	default:
		text(w)
		return nil
	}
}

// marshalJSON encodes v, spelling out infinities and NaN as strings. JSON
// has no literal for them, so values that fail to encode take a detour
// through YAML, which does.
func marshalJSON(v interface{}) ([]byte, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err == nil {
		return data, nil
	}
	raw, yerr := yaml.Marshal(v)
	if yerr != nil {
		return nil, smerror.Wrap(err, "encode json").WithCode(smerror.CodeInternal)
	}
	var generic interface{}
	if yerr := yaml.Unmarshal(raw, &generic); yerr != nil {
		return nil, smerror.Wrap(yerr, "encode json").WithCode(smerror.CodeInternal)
	}
	data, err = json.MarshalIndent(sanitize(generic), "", "  ")
	if err != nil {
		return nil, smerror.Wrap(err, "encode json").WithCode(smerror.CodeInternal)
	}
	return data, nil
}

func sanitize(v interface{}) interface{} {
	switch t := v.(type) {
	case float64:
		if math.IsInf(t, 0) || math.IsNaN(t) {
			return formatFloat(t)
		}
		return t
	case map[string]interface{}:
		for k, item := range t {
			t[k] = sanitize(item)
		}
		return t
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(t))
		for k, item := range t {
			out[fmt.Sprint(k)] = sanitize(item)
		}
		return out
	case []interface{}:
		for i, item := range t {
			t[i] = sanitize(item)
		}
		return t
	default:
		return v
	}
}

// formatFloat prints a float compactly with up to 6 significant digits
func formatFloat(x float64) string {
	switch {
	case math.IsInf(x, 1):
		return "+Inf"
	case math.IsInf(x, -1):
		return "-Inf"
	case math.IsNaN(x):
		return "NaN"
	}
	return strconv.FormatFloat(x, 'g', 6, 64)
}

func formatFloats(xs []float64) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = formatFloat(x)
	}
	return strings.Join(parts, ", ")
}

// parseFloats reads a comma or space separated list of numbers
func parseFloats(name, s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		x, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, smerror.InvalidInput("cli.parseFloats", "not a number").
				WithDetail("flag", name).
				WithDetail("value", f)
		}
		out = append(out, x)
	}
	return out, nil
}

func parseInts(name, s string) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == ';' })
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, smerror.InvalidInput("cli.parseInts", "not an integer").
				WithDetail("flag", name).
				WithDetail("value", f)
		}
		out = append(out, n)
	}
	return out, nil
}
