// Package main provides challengectl, an offline inspection CLI over
// challenge snapshot files.
package main

import (
	"fmt"
	"log"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/challenge-tracker/internal/config"
	"github.com/yourusername/challenge-tracker/internal/datasource"
	"github.com/yourusername/challenge-tracker/internal/ledger"
	"github.com/yourusername/challenge-tracker/internal/logger"
	"github.com/yourusername/challenge-tracker/internal/models"
	"github.com/yourusername/challenge-tracker/internal/pricing"
	"github.com/yourusername/challenge-tracker/internal/service"
	"github.com/yourusername/challenge-tracker/internal/venue"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	meeting    string
	minEdge    float64
	stake      float64
	appLog     *logrus.Logger
	cfg        *config.Config
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	standingsCmd.Flags().StringVarP(&meeting, "meeting", "m", "", "Meeting name (defaults to the only meeting in the snapshot)")
	valueCmd.Flags().StringVarP(&meeting, "meeting", "m", "", "Meeting name (defaults to the only meeting in the snapshot)")
	valueCmd.Flags().Float64Var(&minEdge, "min-edge", 0, "Minimum edge percent (defaults to configured value)")

	overlayCmd.Flags().StringVarP(&meeting, "meeting", "m", "", "Meeting name (defaults to the only meeting in the snapshot)")

	pnlCmd.Flags().StringVarP(&meeting, "meeting", "m", "", "Meeting name (defaults to the only meeting in the snapshot)")
	pnlCmd.Flags().Float64Var(&stake, "stake", 10.0, "Flat stake per value bet")

	rootCmd.AddCommand(standingsCmd)
	rootCmd.AddCommand(valueCmd)
	rootCmd.AddCommand(overlayCmd)
	rootCmd.AddCommand(pnlCmd)
	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(versionCmd)
}

var rootCmd = &cobra.Command{
	Use:   "challengectl",
	Short: "Inspect jockey and driver challenge snapshots",
	Long:  `Replays a snapshot file of roster, odds and results documents and prints standings, prices and value bets.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadWithDefaults(configFile)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		appLog = logger.NewLogger("warn", cfg.App.Environment)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

// replay builds a throwaway engine and feeds it the snapshot file.
func replay(path string) (*service.Engine, error) {
	batch, err := datasource.ReadBatchFile(path)
	if err != nil {
		return nil, err
	}
	if batch.Empty() {
		return nil, fmt.Errorf("snapshot %s holds no documents", path)
	}

	engine := service.NewEngine(service.Options{
		Pricing: pricing.Config{
			OpportunityWeight: cfg.Pricing.OpportunityWeight,
			WinRatePrior:      cfg.Pricing.WinRatePrior,
			MarginFactor:      cfg.Pricing.MarginFactor,
			SentinelPrice:     cfg.Pricing.SentinelPrice,
		},
		MinEdgePercent: cfg.Value.MinEdgePercent,
	}, appLog)
	engine.ApplyBatch(batch)
	return engine, nil
}

// pickMeeting resolves the target meeting, defaulting when unambiguous.
func pickMeeting(engine *service.Engine) (string, error) {
	if meeting != "" {
		return meeting, nil
	}
	names := engine.Meetings()
	if len(names) == 1 {
		return names[0], nil
	}
	sort.Strings(names)
	return "", fmt.Errorf("snapshot holds %d meetings, pick one with --meeting: %s",
		len(names), strings.Join(names, ", "))
}

var standingsCmd = &cobra.Command{
	Use:   "standings <snapshot.json>",
	Short: "Print the challenge standings for a meeting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := replay(args[0])
		if err != nil {
			return err
		}
		name, err := pickMeeting(engine)
		if err != nil {
			return err
		}
		view, err := engine.MeetingView(name)
		if err != nil {
			return err
		}

		fmt.Printf("%s (%s) — %s, race %d of %d\n\n",
			view.Name, view.Kind, view.Status, view.RacesCompleted, view.TotalRaces)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "RANK\tNAME\tPTS\tW\t2ND\t3RD\tDONE\tLEFT\tWIN%\tPRICE")
		for _, row := range view.Standings {
			leader := ""
			if row.IsLeader {
				leader = " *"
			}
			fmt.Fprintf(w, "%d\t%s%s\t%d\t%d\t%d\t%d\t%d\t%d\t%.1f\t%.2f\n",
				row.Rank, row.Name, leader, row.Points, row.Wins, row.Seconds, row.Thirds,
				row.RidesDone, row.RidesLeft, row.AIWinPct, row.AIPrice)
		}
		return w.Flush()
	},
}

var valueCmd = &cobra.Command{
	Use:   "value <snapshot.json>",
	Short: "Print value bets where bookmaker odds beat the model price",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := replay(args[0])
		if err != nil {
			return err
		}
		name, err := pickMeeting(engine)
		if err != nil {
			return err
		}

		bets, err := engine.ValueBets(name)
		if err != nil {
			return err
		}
		if minEdge > 0 {
			filtered := bets[:0]
			for _, bet := range bets {
				if bet.EdgePercent >= minEdge {
					filtered = append(filtered, bet)
				}
			}
			bets = filtered
		}

		if len(bets) == 0 {
			fmt.Println("No value bets found")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PARTICIPANT\tBOOKMAKER\tODDS\tMODEL\tEDGE%")
		for _, bet := range bets {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%.2f\t%.1f\n",
				bet.Participant, bet.Bookmaker, bet.BookmakerOdds, bet.ModelPrice, bet.EdgePercent)
		}
		return w.Flush()
	},
}

var overlayCmd = &cobra.Command{
	Use:   "overlay <snapshot.json>",
	Short: "Screen opening challenge odds against the margin-adjusted market",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := replay(args[0])
		if err != nil {
			return err
		}
		name, err := pickMeeting(engine)
		if err != nil {
			return err
		}
		view, err := engine.MeetingView(name)
		if err != nil {
			return err
		}

		quotes := make([]pricing.MarketQuote, 0, len(view.Standings))
		for _, row := range view.Standings {
			quotes = append(quotes, pricing.MarketQuote{Name: row.Name, Odds: row.InitialOdds})
		}
		rows := pricing.MarketOverlay(quotes, 1+cfg.Pricing.MarketMargin)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PARTICIPANT\tODDS\tIMPLIED%\tFAIR%\tFAIR PRICE\tEDGE%\tVALUE")
		for _, row := range rows {
			mark := ""
			if row.Value {
				mark = "yes"
			}
			fmt.Fprintf(w, "%s\t%.2f\t%.1f\t%.1f\t%.2f\t%.1f\t%s\n",
				row.Name, row.Odds, row.ImpliedPct, row.FairPct, row.FairPrice, row.EdgePct, mark)
		}
		return w.Flush()
	},
}

var pnlCmd = &cobra.Command{
	Use:   "pnl <snapshot.json>",
	Short: "Settle the snapshot's value bets against the final standings",
	Long: `Places a flat stake on every value bet in the snapshot, settles winners
against the challenge leader once the meeting is completed, and prints the
ledger summary. Bets stay pending while the meeting is still running.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := replay(args[0])
		if err != nil {
			return err
		}
		name, err := pickMeeting(engine)
		if err != nil {
			return err
		}
		view, err := engine.MeetingView(name)
		if err != nil {
			return err
		}
		bets, err := engine.ValueBets(name)
		if err != nil {
			return err
		}
		if len(bets) == 0 {
			fmt.Println("No value bets to settle")
			return nil
		}

		winners := make(map[string]bool)
		if view.Status == models.MeetingStatusCompleted {
			for _, row := range view.Standings {
				if row.IsLeader {
					winners[row.Name] = true
				}
			}
		}

		book := ledger.New()
		flatStake := decimal.NewFromFloat(stake)
		for _, bet := range bets {
			placed := book.Place(bet.Meeting, bet.Participant, bet.Bookmaker,
				decimal.NewFromFloat(bet.BookmakerOdds), flatStake)
			if view.Status != models.MeetingStatusCompleted {
				continue
			}
			result := models.BetResultLoss
			if winners[bet.Participant] {
				result = models.BetResultWin
			}
			if _, err := book.Settle(placed.ID, result); err != nil {
				return err
			}
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "PARTICIPANT\tBOOKMAKER\tODDS\tSTAKE\tRESULT\tP&L")
		for _, bet := range book.Bets() {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
				bet.Participant, bet.Bookmaker, bet.Odds.StringFixed(2),
				bet.Stake.StringFixed(2), bet.Result, bet.ProfitLoss.StringFixed(2))
		}
		if err := w.Flush(); err != nil {
			return err
		}

		summary := book.Summarize()
		fmt.Printf("\n%d bets, %d won, %d lost, %d pending, win rate %.1f%%, P&L %s\n",
			summary.TotalBets, summary.Wins, summary.Losses, summary.Pending,
			summary.WinRatePercent, summary.TotalProfitLoss.StringFixed(2))
		return nil
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve <meeting name>",
	Short: "Resolve a scraped meeting name against the configured venues",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := strings.Join(args, " ")

		venues := make([]models.Venue, 0, len(cfg.Venues))
		for _, vc := range cfg.Venues {
			venues = append(venues, models.Venue{
				Name:           vc.Name,
				State:          vc.State,
				NormalizedForm: venue.NormalizeVenue(vc.Name),
				URL:            vc.URL,
			})
		}

		v, ok := venue.Resolve(name, venues)
		if !ok {
			return fmt.Errorf("no venue matches %q (normalized %q)", name, venue.NormalizeVenue(name))
		}
		fmt.Printf("%s", v.Name)
		if v.State != "" {
			fmt.Printf(" (%s)", v.State)
		}
		fmt.Printf(" [country %s]\n", venue.Country(v.Name))
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("challengectl %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}
