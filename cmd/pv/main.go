package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"portview/internal/config"
	"portview/internal/domain"
	"portview/internal/graph"
	"portview/internal/importer"
	"portview/internal/metrics"
	"portview/internal/server"
	"portview/internal/store"
	"portview/internal/timeline"
)

var log = logrus.New()

var rootCmd = &cobra.Command{
	Use:   "pv",
	Short: "Portview CLI",
	Long: `Portview manages a portfolio of actions, actors, assets, and connections.
- Actions: initiatives with budgets, milestones, and target outcomes.
- Actors: the organizations and people involved, with roles and influence.
- Assets: funding, infrastructure, knowledge, and other resources.
- Connections: typed relationships (synergy, dependency, support, conflict).
Import entities from CSV, inspect the relationship graph and milestone
timeline, compute summary metrics, or serve everything over HTTP.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if viper.GetBool("verbose") {
			log.SetLevel(logrus.DebugLevel)
		}
		return nil
	},
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("PORTVIEW")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().Bool("verbose", false, "debug logging")
	_ = viper.BindPFlag("workspace", rootCmd.PersistentFlags().Lookup("workspace"))
	_ = viper.BindPFlag("json", rootCmd.PersistentFlags().Lookup("json"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func registerCommands() {
	rootCmd.AddCommand(importCmd())
	rootCmd.AddCommand(graphCmd())
	rootCmd.AddCommand(timelineCmd())
	rootCmd.AddCommand(metricsCmd())
	rootCmd.AddCommand(templateCmd())
	rootCmd.AddCommand(portfolioCmd())
	rootCmd.AddCommand(configCmd())
	rootCmd.AddCommand(serveCmd())
}

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <kind> <file>...",
		Short: "Import entities from CSV files",
		Long:  "Maps each data row to an entity, filling missing or unknown values with defaults. Each file yields its own outcome; a bad file does not stop the rest. Kinds: actions, actors, assets, connections.",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := importer.ParseKind(args[0])
			if err != nil {
				return err
			}
			im := importer.New()
			im.Log = log
			outcomes := make([]importer.Outcome, 0, len(args)-1)
			failed := false
			for _, file := range args[1:] {
				data, err := os.ReadFile(file)
				if err != nil {
					return err
				}
				outcome := im.ImportFile(data, kind)
				outcomes = append(outcomes, outcome)
				failed = failed || !outcome.Success
			}
			if viper.GetBool("json") {
				if len(outcomes) == 1 {
					return printJSON(outcomes[0])
				}
				return printJSON(outcomes)
			}
			for i, outcome := range outcomes {
				fmt.Printf("%s: %s\n", args[1+i], outcome.Message)
			}
			if failed {
				os.Exit(1)
			}
			return nil
		},
	}
	return cmd
}

func graphCmd() *cobra.Command {
	var opts portfolioOptions
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Show the portfolio relationship graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := buildStore(opts)
			if err != nil {
				return err
			}
			b := graph.Builder{Log: log}
			g := b.Build(st.Current())
			if viper.GetBool("json") {
				return printJSON(g)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"ID", "Label", "Type", "Status"})
			for _, n := range g.Nodes {
				tw.AppendRow(table.Row{n.ID, n.Label, n.Type, n.Status})
			}
			tw.Render()
			tw = table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Edge", "Source", "Target", "Relationship", "Strength"})
			for _, e := range g.Edges {
				tw.AppendRow(table.Row{e.ID, e.Source, e.Target, e.RelationshipType, e.Strength})
			}
			tw.Render()
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func timelineCmd() *cobra.Command {
	var opts portfolioOptions
	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the milestone timeline",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := buildStore(opts)
			if err != nil {
				return err
			}
			v := timeline.Derive(st.Current())
			if viper.GetBool("json") {
				return printJSON(v)
			}
			fmt.Printf("Progress: %.0f%% (%d of %d milestones completed)\n",
				v.OverallProgressPercent, v.CompletedMilestones, v.TotalMilestones)
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendHeader(table.Row{"Due", "Milestone", "Action", "Status"})
			for _, m := range v.Milestones {
				tw.AppendRow(table.Row{m.DueDate, m.Title, m.ActionName, m.Status})
			}
			tw.Render()
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func metricsCmd() *cobra.Command {
	var opts portfolioOptions
	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show portfolio summary metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := buildStore(opts)
			if err != nil {
				return err
			}
			s := metrics.Compute(st.Current())
			if viper.GetBool("json") {
				return printJSON(s)
			}
			tw := table.NewWriter()
			tw.SetOutputMirror(os.Stdout)
			tw.AppendRow(table.Row{"Actions", s.TotalActions})
			tw.AppendRow(table.Row{"  completed", s.CompletedActions})
			tw.AppendRow(table.Row{"  in progress", s.InProgressActions})
			tw.AppendRow(table.Row{"Actors", s.TotalActors})
			tw.AppendRow(table.Row{"Assets", s.TotalAssets})
			tw.AppendRow(table.Row{"Funding", s.FormattedFunding})
			tw.AppendRow(table.Row{"Synergistic solutions", s.SynergisticSolutions})
			tw.AppendRow(table.Row{"Cross-sector collaborations", s.CrossSectorCollaborations})
			tw.Render()
			return nil
		},
	}
	opts.bind(cmd)
	return cmd
}

func templateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template <kind>",
		Short: "Print a CSV import template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := importer.ParseKind(args[0])
			if err != nil {
				return err
			}
			tpl, err := importer.Template(kind)
			if err != nil {
				return err
			}
			fmt.Print(tpl)
			return nil
		},
	}
	return cmd
}

func portfolioCmd() *cobra.Command {
	var opts portfolioOptions
	cmd := &cobra.Command{
		Use:   "portfolio",
		Short: "Print the portfolio document",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := buildStore(opts)
			if err != nil {
				return err
			}
			return printJSONOrTable(st.Current())
		},
	}
	opts.bind(cmd)
	return cmd
}

func configCmd() *cobra.Command {
	cfg := &cobra.Command{
		Use:   "config",
		Short: "Manage portview.yml",
	}
	cfg.AddCommand(configInitCmd())
	cfg.AddCommand(configShowCmd())
	cfg.AddCommand(configValidateCmd())
	return cfg
}

func configInitCmd() *cobra.Command {
	var id string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default portview.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(viper.GetString("workspace"))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("%s already exists", path)
			}
			return os.WriteFile(path, []byte(config.GenerateDefault(id)), 0o644)
		},
	}
	cmd.Flags().StringVar(&id, "id", "portfolio-1", "portfolio id")
	return cmd
}

func configShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show loaded config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			return printJSONOrTable(cfg)
		},
	}
	return cmd
}

func configValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate portview.yml",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := config.Load(viper.GetString("workspace"))
			if viper.GetBool("json") {
				return printJSON(map[string]any{"ok": err == nil, "error": fmt.Sprint(err)})
			}
			if err != nil {
				return err
			}
			fmt.Println("config OK")
			return nil
		},
	}
	return cmd
}

func serveCmd() *cobra.Command {
	var addr, basePath string
	var opts portfolioOptions
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadOptional(viper.GetString("workspace"))
			if err != nil {
				return err
			}
			if cfg != nil {
				if !cmd.Flags().Changed("addr") && cfg.Server.Addr != "" {
					addr = cfg.Server.Addr
				}
				if !cmd.Flags().Changed("base-path") && cfg.Server.BasePath != "" {
					basePath = cfg.Server.BasePath
				}
				if !cmd.Flags().Changed("seed") {
					opts.seed = cfg.Seed.Enabled
				}
			}
			st, err := buildStore(opts)
			if err != nil {
				return err
			}
			im := importer.New()
			im.Log = log
			handler, err := server.New(server.Config{
				Store:    st,
				Importer: im,
				BasePath: basePath,
				Log:      log,
			})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			fmt.Printf("Serving Portview API on http://%s%s (OpenAPI at /openapi.json, Swagger UI at /docs)\n", addr, basePath)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8080", "listen address")
	cmd.Flags().StringVar(&basePath, "base-path", "/v0", "API base path")
	opts.bind(cmd)
	return cmd
}

// --- helpers ---

// portfolioOptions selects the working snapshot: the built-in seed or an
// empty portfolio, with CSV files merged on top.
type portfolioOptions struct {
	seed        bool
	actions     string
	actors      string
	assets      string
	connections string
}

func (o *portfolioOptions) bind(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&o.seed, "seed", true, "start from the built-in sample portfolio")
	cmd.Flags().StringVar(&o.actions, "actions", "", "actions CSV file to merge")
	cmd.Flags().StringVar(&o.actors, "actors", "", "actors CSV file to merge")
	cmd.Flags().StringVar(&o.assets, "assets", "", "assets CSV file to merge")
	cmd.Flags().StringVar(&o.connections, "connections", "", "connections CSV file to merge")
}

func buildStore(opts portfolioOptions) (*store.Store, error) {
	baseline := store.Seed()
	if !opts.seed {
		baseline = store.Empty(domain.Metadata{}, "portfolio-1", "Portfolio", "")
	}
	st := store.New(baseline)
	im := importer.New()
	im.Log = log
	files := map[importer.Kind]string{
		importer.KindActions:     opts.actions,
		importer.KindActors:      opts.actors,
		importer.KindAssets:      opts.assets,
		importer.KindConnections: opts.connections,
	}
	for _, kind := range importer.Kinds {
		path := files[kind]
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		outcome := im.ImportFile(data, kind)
		if !outcome.Success {
			return nil, fmt.Errorf("%s: %s", path, outcome.Message)
		}
		st.MergeImported(outcome.Batch)
	}
	return st, nil
}

func printJSONOrTable(v any) error {
	if viper.GetBool("json") {
		return printJSON(v)
	}
	b, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(b))
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
