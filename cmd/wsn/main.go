package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/ja7ad/wsn/pkg/geom"
	"github.com/ja7ad/wsn/pkg/types"
	"github.com/ja7ad/wsn/pkg/wsn"
)

type opts struct {
	// model
	rho        float64
	alpha      float64
	beta1      float64
	beta2      float64
	chargeRate float64
	maxCharge  float64
	minCharge  float64
	base       string
	wcv        string

	// inputs
	configPath string

	// outputs
	showMatrix bool
	csvPath    string
	jsonPath   string
}

// fileConfig mirrors the YAML network description. Pointer fields override
// the corresponding flag only when present in the file.
type fileConfig struct {
	Rho        *float64 `yaml:"rho"`
	Alpha      *float64 `yaml:"alpha"`
	Beta1      *float64 `yaml:"beta_1"`
	Beta2      *float64 `yaml:"beta_2"`
	ChargeRate *float64 `yaml:"charge_rate"`
	MaxCharge  *float64 `yaml:"max_charge"`
	MinCharge  *float64 `yaml:"min_charge"`
	Base       *xy      `yaml:"base"`
	WCV        *xy      `yaml:"wcv"`
	Nodes      []struct {
		X    float64 `yaml:"x"`
		Y    float64 `yaml:"y"`
		Rate float64 `yaml:"rate"`
	} `yaml:"nodes"`
}

type xy struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// row is one per-sensor report line for CSV/JSON outputs.
type row struct {
	Index     int     `json:"index"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Rate      float64 `json:"rate"`
	BaseDist  float64 `json:"base_dist_m"`
	BaseCoeff float64 `json:"base_coeff"`
	DirectW   float64 `json:"direct_power_w"`
	LifetimeS float64 `json:"lifetime_sec"`
}

var logger = hclog.New(&hclog.LoggerOptions{
	Name:   "wsn",
	Level:  hclog.Info,
	Output: os.Stderr,
})

func main() {
	var o opts

	root := &cobra.Command{
		Use:   "wsn [X,Y,RATE]...",
		Short: "WSN power-coefficient matrix reporter",
		Long: `The wsn tool builds the transmission power-coefficient matrix for a
wireless sensor network and reports per-sensor cost figures (distance and
coefficient to the base station, direct-to-base power draw, battery lifetime).

Sensors come from positional X,Y,RATE triples and/or a YAML network file.

Examples:
  wsn --base 0,0 --alpha 2 10,20,0.5 30,5,1.0
  wsn --config net.yaml --matrix --csv report.csv --json report.json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(o, args)
		},
	}

	root.Flags().Float64Var(&o.rho, "rho", 50e-9, "receive power per data unit (W)")
	root.Flags().Float64Var(&o.alpha, "alpha", 2.0, "distance exponent of the transmit cost")
	root.Flags().Float64Var(&o.beta1, "beta1", 50e-9, "fixed transmit cost per data unit (W)")
	root.Flags().Float64Var(&o.beta2, "beta2", 100e-12, "distance-scaled transmit cost (W per m^alpha)")
	root.Flags().Float64Var(&o.chargeRate, "charge-rate", 5.0, "wireless charging rate (W)")
	root.Flags().Float64Var(&o.maxCharge, "max-charge", 10800, "battery capacity (J)")
	root.Flags().Float64Var(&o.minCharge, "min-charge", 540, "reliability floor (J)")
	root.Flags().StringVar(&o.base, "base", "0,0", "base-station location X,Y")
	root.Flags().StringVar(&o.wcv, "wcv", "0,0", "charging-vehicle station location X,Y")

	root.Flags().StringVarP(&o.configPath, "config", "c", "", "YAML network description")
	root.Flags().BoolVar(&o.showMatrix, "matrix", false, "print the full coefficient matrix")
	root.Flags().StringVar(&o.csvPath, "csv", "", "write per-sensor rows to CSV file")
	root.Flags().StringVar(&o.jsonPath, "json", "", "write per-sensor rows to JSON file")

	if err := root.Execute(); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(o opts, args []string) error {
	nodes, err := parseNodes(args)
	if err != nil {
		return err
	}

	p := wsn.Params{
		Rho:        o.rho,
		Alpha:      o.alpha,
		Beta1:      o.beta1,
		Beta2:      o.beta2,
		ChargeRate: o.chargeRate,
		MaxCharge:  o.maxCharge,
		MinCharge:  o.minCharge,
	}
	if p.Base, err = parsePoint(o.base); err != nil {
		return fmt.Errorf("--base: %w", err)
	}
	if p.WCV, err = parsePoint(o.wcv); err != nil {
		return fmt.Errorf("--wcv: %w", err)
	}

	if o.configPath != "" {
		fileNodes, err := applyConfig(o.configPath, &p)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		nodes = append(nodes, fileNodes...)
	}
	if len(nodes) == 0 {
		return fmt.Errorf("no sensors given (positional triples or --config)")
	}

	w, err := wsn.New(nodes, &p)
	if err != nil {
		return err
	}

	fmt.Printf("WSN power-coefficient report: %d sensors + base at (%g, %g)\n\n",
		len(w.Nodes), p.Base.X, p.Base.Y)

	rows := report(w)
	printReport(w, rows)
	if o.showMatrix {
		fmt.Println()
		printMatrix(w)
	}
	printSummary(w)

	if o.csvPath != "" {
		if err := writeCSV(o.csvPath, rows); err != nil {
			logger.Error("write csv", "err", err)
		}
	}
	if o.jsonPath != "" {
		if err := writeJSON(o.jsonPath, rows); err != nil {
			logger.Error("write json", "err", err)
		}
	}
	return nil
}

// parseNodes turns "x,y,rate" triples into Nodes.
func parseNodes(args []string) ([]wsn.Node, error) {
	nodes := make([]wsn.Node, 0, len(args))
	for _, a := range args {
		parts := strings.Split(a, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("sensor %q: want X,Y,RATE", a)
		}
		var vals [3]float64
		for i, s := range parts {
			v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, fmt.Errorf("sensor %q: %w", a, err)
			}
			vals[i] = v
		}
		nodes = append(nodes, wsn.Node{X: vals[0], Y: vals[1], R: vals[2]})
	}
	return nodes, nil
}

func parsePoint(s string) (geom.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return geom.Point{}, fmt.Errorf("%q: want X,Y", s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return geom.Point{}, err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return geom.Point{}, err
	}
	return geom.Point{X: x, Y: y}, nil
}

// applyConfig overlays a YAML network description on p and returns its nodes.
func applyConfig(path string, p *wsn.Params) ([]wsn.Node, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return nil, err
	}

	if fc.Rho != nil {
		p.Rho = *fc.Rho
	}
	if fc.Alpha != nil {
		p.Alpha = *fc.Alpha
	}
	if fc.Beta1 != nil {
		p.Beta1 = *fc.Beta1
	}
	if fc.Beta2 != nil {
		p.Beta2 = *fc.Beta2
	}
	if fc.ChargeRate != nil {
		p.ChargeRate = *fc.ChargeRate
	}
	if fc.MaxCharge != nil {
		p.MaxCharge = *fc.MaxCharge
	}
	if fc.MinCharge != nil {
		p.MinCharge = *fc.MinCharge
	}
	if fc.Base != nil {
		p.Base = geom.Point{X: fc.Base.X, Y: fc.Base.Y}
	}
	if fc.WCV != nil {
		p.WCV = geom.Point{X: fc.WCV.X, Y: fc.WCV.Y}
	}

	nodes := make([]wsn.Node, 0, len(fc.Nodes))
	for _, n := range fc.Nodes {
		nodes = append(nodes, wsn.Node{X: n.X, Y: n.Y, R: n.Rate})
	}
	return nodes, nil
}

func report(w *wsn.Network) []row {
	usable := w.Params.MaxCharge - w.Params.MinCharge
	rows := make([]row, len(w.Nodes))
	for i, n := range w.Nodes {
		direct := w.DirectToBasePower(i)
		var life float64
		if direct > 0 {
			life = usable / direct
		}
		rows[i] = row{
			Index:     i,
			X:         n.X,
			Y:         n.Y,
			Rate:      n.R,
			BaseDist:  geom.Distance(w.Params.Base, n.Pos()),
			BaseCoeff: w.CoeffToBase(i),
			DirectW:   direct,
			LifetimeS: life,
		}
	}
	return rows
}

func printReport(w *wsn.Network, rows []row) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "IDX\tX\tY\tRATE\tBASE DIST (m)\tBASE COEFF\tDIRECT P\tLIFETIME (h)")
	fmt.Fprintln(tw, "---\t-\t-\t----\t-------------\t----------\t--------\t------------")
	for _, r := range rows {
		life := "-"
		if r.LifetimeS > 0 {
			life = fmt.Sprintf("%.2f", r.LifetimeS/3600)
		}
		fmt.Fprintf(tw, "%d\t%g\t%g\t%g\t%.2f\t%.4g\t%s\t%s\n",
			r.Index, r.X, r.Y, r.Rate, r.BaseDist, r.BaseCoeff,
			types.Watts(r.DirectW).Humanized(), life)
	}
	tw.Flush()
}

func printMatrix(w *wsn.Network) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprint(tw, "\tBASE")
	for i := range w.Nodes {
		fmt.Fprintf(tw, "\tS%d", i)
	}
	fmt.Fprintln(tw)
	for i := 0; i < w.Dim(); i++ {
		if i == 0 {
			fmt.Fprint(tw, "BASE")
		} else {
			fmt.Fprintf(tw, "S%d", i-1)
		}
		for j := 0; j < w.Dim(); j++ {
			fmt.Fprintf(tw, "\t%.4g", w.Power.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func printSummary(w *wsn.Network) {
	s := w.Summarize()
	battery := types.Joules(w.Params.MaxCharge)
	fmt.Println()
	fmt.Printf("coefficients: min=%.4g max=%.4g mean=%.4g\n", s.Min, s.Max, s.Mean)
	fmt.Printf("battery: %s capacity (%.2f Wh), charge at %s\n",
		battery.Humanized(), battery.Wh(), types.Watts(w.Params.ChargeRate).Humanized())
}

func writeCSV(path string, rows []row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write([]string{
		"index", "x", "y", "rate", "base_dist_m", "base_coeff", "direct_power_w", "lifetime_sec",
	}); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Index),
			fmtFloat(r.X), fmtFloat(r.Y), fmtFloat(r.Rate),
			fmtFloat(r.BaseDist), fmtFloat(r.BaseCoeff),
			fmtFloat(r.DirectW), fmtFloat(r.LifetimeS),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(path string, rows []row) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(b, '\n'), 0o644)
}

func fmtFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
