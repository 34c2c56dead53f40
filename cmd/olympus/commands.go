package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/verte-zerg/olympus/internal/daylog"
	"github.com/verte-zerg/olympus/internal/model"
	"github.com/verte-zerg/olympus/internal/plates"
	"github.com/verte-zerg/olympus/internal/render"
	"github.com/verte-zerg/olympus/internal/standards"
	"github.com/verte-zerg/olympus/internal/warmup"
)

const defaultTemplate = warmup.DefaultTemplate

var (
	warmupWeight   float64
	warmupBar      float64
	warmupTemplate string
	warmupUnit     string

	platesTarget float64
	platesBar    float64
	platesUnit   string

	bodyHeight float64
	bodyWaist  float64
	bodyChest  float64
	bodyArms   float64

	strengthBW      float64
	strengthIncline float64
	strengthChins   float64
	strengthOHP     float64
	strengthCurl    float64

	historyDay      string
	historyLast     int
	historyExercise string
	historyPlot     bool
)

func newWarmupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "warmup",
		Short: "Plan warm-up sets for a working weight",
		Args:  cobra.NoArgs,
		RunE:  runWarmupCmd,
	}
	cmd.Flags().Float64Var(&warmupWeight, "weight", 0, "working weight")
	cmd.Flags().Float64Var(&warmupBar, "bar", 0, "bar weight (default: 20 kg / 45 lb)")
	cmd.Flags().StringVar(&warmupTemplate, "template", defaultTemplate, "warm-up template key")
	cmd.Flags().StringVar(&warmupUnit, "unit", "", "unit (metric, imperial)")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func runWarmupCmd(cmd *cobra.Command, _ []string) error {
	applyStringConfig(cmd, "template", &warmupTemplate, fileCfg.Warmup.Template)

	tpl, err := warmup.Lookup(warmupTemplate)
	if err != nil {
		return err
	}
	unit, err := commandUnit(cmd, warmupUnit)
	if err != nil {
		return err
	}
	bar := resolveBar(cmd, warmupBar, unit)
	sets, err := warmup.Plan(warmupWeight, bar, unit, tpl)
	if err != nil {
		return err
	}
	return render.New(cmd.OutOrStdout()).Plan(tpl, sets, bar, unit)
}

func newPlatesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plates",
		Short: "Show the plates to load per side for a target weight",
		Args:  cobra.NoArgs,
		RunE:  runPlatesCmd,
	}
	cmd.Flags().Float64Var(&platesTarget, "target", 0, "total target weight")
	cmd.Flags().Float64Var(&platesBar, "bar", 0, "bar weight (default: 20 kg / 45 lb)")
	cmd.Flags().StringVar(&platesUnit, "unit", "", "unit (metric, imperial)")
	_ = cmd.MarkFlagRequired("target")
	return cmd
}

func runPlatesCmd(cmd *cobra.Command, _ []string) error {
	unit, err := commandUnit(cmd, platesUnit)
	if err != nil {
		return err
	}
	bar := resolveBar(cmd, platesBar, unit)
	if err := plates.CheckLoad(platesTarget, bar); err != nil {
		return err
	}
	b := plates.Solve(platesTarget, bar, plates.ForUnit(unit))
	return render.New(cmd.OutOrStdout()).Plates(platesTarget, bar, b, unit)
}

// resolveBar prefers an explicit --bar, then the config file, then the
// unit's standard bar. An explicit zero is kept so validation rejects it.
func resolveBar(cmd *cobra.Command, flagValue float64, unit model.Unit) float64 {
	switch {
	case cmd.Flags().Changed("bar"):
		return flagValue
	case fileCfg.Warmup.Bar != nil:
		return *fileCfg.Warmup.Bar
	default:
		return unit.DefaultBarWeight()
	}
}

func newTemplatesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List warm-up templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return render.New(cmd.OutOrStdout()).Templates(warmup.Templates())
		},
	}
}

func newStandardsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "standards",
		Short: "Score physique and strength against standards",
	}

	body := &cobra.Command{
		Use:   "body",
		Short: "Physique ratios (any common length unit)",
		Args:  cobra.NoArgs,
		RunE:  runBodyCmd,
	}
	body.Flags().Float64Var(&bodyHeight, "height", 0, "height")
	body.Flags().Float64Var(&bodyWaist, "waist", 0, "waist circumference")
	body.Flags().Float64Var(&bodyChest, "chest", 0, "chest circumference")
	body.Flags().Float64Var(&bodyArms, "arms", 0, "flexed arm circumference")

	strength := &cobra.Command{
		Use:   "strength",
		Short: "Lift to bodyweight ratios for 5-rep loads",
		Args:  cobra.NoArgs,
		RunE:  runStrengthCmd,
	}
	strength.Flags().Float64Var(&strengthBW, "bw", 0, "bodyweight")
	strength.Flags().Float64Var(&strengthIncline, "incline", 0, "incline bench press")
	strength.Flags().Float64Var(&strengthChins, "chins", 0, "load added for weighted chin-ups")
	strength.Flags().Float64Var(&strengthOHP, "ohp", 0, "overhead press")
	strength.Flags().Float64Var(&strengthCurl, "curl", 0, "barbell curl")

	cmd.AddCommand(body, strength)
	return cmd
}

func runBodyCmd(cmd *cobra.Command, _ []string) error {
	results, err := standards.EvaluatePhysique(standards.Physique{
		Height: bodyHeight,
		Waist:  bodyWaist,
		Chest:  bodyChest,
		Arms:   bodyArms,
	})
	if err != nil {
		return err
	}
	return render.New(cmd.OutOrStdout()).Standards(results, "Enter height and waist to see standards.")
}

func runStrengthCmd(cmd *cobra.Command, _ []string) error {
	results, err := standards.EvaluateStrength(standards.Strength{
		Bodyweight: strengthBW,
		Incline:    strengthIncline,
		Chins:      strengthChins,
		OHP:        strengthOHP,
		Curl:       strengthCurl,
	})
	if err != nil {
		return err
	}
	return render.New(cmd.OutOrStdout()).Standards(results, "Add lifts to see standards.")
}

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show logged workouts",
		Args:  cobra.NoArgs,
		RunE:  runHistoryCmd,
	}
	cmd.Flags().StringVar(&historyDay, "day", "", "filter by day (push, legs, pull)")
	cmd.Flags().IntVar(&historyLast, "last", 0, "limit to last N workouts")
	cmd.Flags().StringVar(&historyExercise, "exercise", "", "show the last logged sets of this exercise (needs --day)")
	cmd.Flags().BoolVar(&historyPlot, "plot", false, "chart the heaviest set per session (with --exercise)")
	return cmd
}

func runHistoryCmd(cmd *cobra.Command, _ []string) error {
	var day model.DayKey
	if historyDay != "" {
		parsed, err := daylog.ParseDay(historyDay)
		if err != nil {
			return err
		}
		day = parsed
	}
	if historyLast < 0 {
		return fmt.Errorf("--last must be >= 0")
	}
	if historyExercise != "" && day == "" {
		return fmt.Errorf("--exercise requires --day")
	}
	if historyPlot && historyExercise == "" {
		return fmt.Errorf("--plot requires --exercise")
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	h := daylog.NewStore(st).Records(context.Background())
	r := render.New(cmd.OutOrStdout())
	if historyExercise == "" {
		return r.History(h.ForDay(day, historyLast))
	}
	if historyPlot {
		points := h.Progress(day, historyExercise)
		if historyLast > 0 && len(points) > historyLast {
			points = points[len(points)-historyLast:]
		}
		unit := model.UnitMetric
		if rec, ok := h.LastForDay(day); ok {
			unit = rec.Unit
		}
		return r.Progress(historyExercise, points, unit, r.ChartWidth())
	}
	for _, rec := range h.ForDay(day, 0) {
		if ex, ok := rec.Exercise(historyExercise); ok && len(ex.Sets) > 0 {
			return r.Exercise(ex, rec.Unit)
		}
	}
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "No sets logged for %s on %s day.\n", historyExercise, day); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newUnitCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "unit [metric|imperial]",
		Short:     "Show or set the preferred unit",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{string(model.UnitMetric), string(model.UnitImperial)},
		RunE:      runUnitCmd,
	}
}

func runUnitCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	ctx := context.Background()
	if len(args) == 0 {
		unit, err := resolveUnit(ctx, cmd, st, "unit", "")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", unit, unit.Symbol())
		return err
	}
	unit, err := model.ParseUnit(args[0])
	if err != nil {
		return err
	}
	if err := st.SaveUnit(ctx, unit); err != nil {
		return fmt.Errorf("failed to save unit: %w", err)
	}
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Unit set to %s (%s)\n", unit, unit.Symbol())
	return err
}

// commandUnit resolves the unit for a planner command through the stored
// preference.
func commandUnit(cmd *cobra.Command, flagValue string) (model.Unit, error) {
	if cmd.Flags().Changed("unit") {
		return model.ParseUnit(flagValue)
	}
	st, err := openStore()
	if err != nil {
		return "", err
	}
	defer closeStore(st)
	return resolveUnit(context.Background(), cmd, st, "unit", flagValue)
}
