package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"auroramart/internal/app"
	"auroramart/internal/ml"
	"auroramart/internal/models"
	"auroramart/internal/repositories"
	"auroramart/internal/taxonomy"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

// traceReport is everything the cascade saw for one customer. The result is
// embedded so its fields stay at the top level of the JSON output.
type traceReport struct {
	CustomerID uuid.UUID        `json:"customer_id"`
	Customer   *models.Customer `json:"customer,omitempty"`
	Reset      bool             `json:"reset_stored,omitempty"`
	Stored     []storedRow      `json:"stored"`
	Basket     []string         `json:"basket"`
	RuleSKUs   []string         `json:"rule_skus"`
	Prediction predictionTrace  `json:"prediction"`

	*models.RecommendationResult
}

type storedRow struct {
	SKU         string `json:"sku"`
	Reason      string `json:"reason,omitempty"`
	Precomputed bool   `json:"precomputed"`
	Source      string `json:"source,omitempty"`
	GeneratedAt string `json:"generated_at"`
}

type predictionTrace struct {
	Available bool           `json:"available"`
	Error     string         `json:"error,omitempty"`
	Signals   int            `json:"signals"`
	Threshold int            `json:"threshold"`
	Raw       string         `json:"raw,omitempty"`
	Resolved  string         `json:"resolved,omitempty"`
	Columns   []string       `json:"expected_columns,omitempty"`
	Features  map[string]any `json:"features,omitempty"`
}

func traceCmd(opts *options) *cobra.Command {
	var (
		userID string
		email  string
		limit  int
		reset  bool
	)

	cmd := &cobra.Command{
		Use:   "trace",
		Short: "Show how the cascade resolves recommendations for a customer",
		Long: `Runs the recommendation cascade for one customer and prints the inputs it
saw: the stored profile, stored recommendation rows, the basket signal, the raw
rule and classifier outputs and the feature row. Every stage that was tried is
listed with how many candidates it produced and why it was skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var customerID uuid.UUID
			if userID != "" {
				id, err := uuid.Parse(userID)
				if err != nil {
					return fmt.Errorf("invalid --user-id %q: %w", userID, err)
				}
				customerID = id
			}

			components, closeDB, err := opts.openComponents()
			if err != nil {
				return err
			}
			defer closeDB()

			report, err := buildTrace(cmd.Context(), components, customerID, email, limit, reset)
			if err != nil {
				return err
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			return printTrace(cmd.OutOrStdout(), report, components.Resolver)
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "customer id to trace")
	cmd.Flags().StringVar(&email, "email", "", "trace the customer with this email")
	cmd.Flags().IntVar(&limit, "limit", 0, "number of products to request (0 uses the configured default)")
	cmd.Flags().BoolVar(&reset, "reset-stored", false, "delete the customer's stored recommendations before tracing")
	cmd.MarkFlagsOneRequired("user-id", "email")
	cmd.MarkFlagsMutuallyExclusive("user-id", "email")

	return cmd
}

func buildTrace(ctx context.Context, c *app.Components, customerID uuid.UUID, email string, limit int, reset bool) (*traceReport, error) {
	report := &traceReport{CustomerID: customerID, Stored: []storedRow{}, Basket: []string{}, RuleSKUs: []string{}}

	var err error
	if email != "" {
		report.Customer, err = c.Customers.GetByEmail(email)
		if err != nil {
			return nil, fmt.Errorf("failed to find customer %q: %w", email, err)
		}
		report.CustomerID = report.Customer.ID
	} else {
		report.Customer, err = c.Customers.GetByID(customerID)
		if err != nil && !errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, fmt.Errorf("failed to load customer: %w", err)
		}
	}
	customerID = report.CustomerID

	if reset {
		if err := c.Recommendations.DeleteForCustomer(customerID); err != nil {
			return nil, fmt.Errorf("failed to clear stored recommendations: %w", err)
		}
		report.Reset = true
	}

	rows, err := c.Recommendations.ListForCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list stored recommendations: %w", err)
	}
	for _, row := range rows {
		source, precomputed := row.Precomputed()
		sr := storedRow{Reason: row.Reason, Precomputed: precomputed, Source: source, GeneratedAt: row.GeneratedAt.UTC().Format(time.RFC3339)}
		if row.Product != nil {
			sr.SKU = row.Product.SKU
		}
		report.Stored = append(report.Stored, sr)
	}

	report.Basket = c.Basket.Gather(ctx, customerID)

	want := limit
	if want <= 0 {
		want = c.Config.Recommendation.DefaultLimit
	}
	if len(report.Basket) > 0 {
		report.RuleSKUs = c.Rules.Recommend(report.Basket, want)
	}

	report.Prediction = tracePrediction(c, report.Customer)

	report.RecommendationResult, err = c.Recommendation.Recommend(ctx, customerID, limit)
	if err != nil {
		return nil, fmt.Errorf("recommendation failed: %w", err)
	}
	return report, nil
}

func tracePrediction(c *app.Components, customer *models.Customer) predictionTrace {
	trace := predictionTrace{Threshold: c.Config.Recommendation.RichnessThreshold}

	profile := ml.ProfileFromCustomer(customer)
	trace.Signals = profile.SignalCount()

	trace.Available = c.Classifier.Available()
	if err := c.Classifier.Err(); err != nil {
		trace.Error = err.Error()
	}
	if profile == nil {
		return trace
	}

	row := c.Classifier.Features(profile)
	trace.Columns = c.Classifier.ExpectedColumns()
	if trace.Columns == nil {
		trace.Columns = row.Columns()
	}
	trace.Features = row.Map()

	if raw, ok := c.Classifier.PredictCategory(profile); ok {
		trace.Raw = raw
		trace.Resolved = c.Resolver.ResolveSlug(raw)
	}
	return trace
}

func printTrace(w io.Writer, report *traceReport, resolver *taxonomy.Resolver) error {
	result := report.RecommendationResult

	fmt.Fprintf(w, "customer: %s\n", report.CustomerID)
	if cu := report.Customer; cu != nil {
		fmt.Fprintf(w, "email:    %s\n", cu.Email)
		fmt.Fprintf(w, "profile:  age=%s gender=%s employment=%s occupation=%s education=%s household=%s children=%s income=%s\n",
			intOrDash(cu.Age), orDash(cu.Gender), orDash(cu.EmploymentStatus), orDash(cu.Occupation), orDash(cu.Education),
			intOrDash(cu.HouseholdSize), boolOrDash(cu.HasChildren), orDash(cu.MonthlyIncome))
		fmt.Fprintf(w, "prefers:  %s\n", orDash(strings.Join(cu.PreferredCategoryList(), ", ")))
	} else {
		fmt.Fprintln(w, "profile:  none")
	}
	if report.Reset {
		fmt.Fprintln(w, "stored recommendations cleared")
	}
	fmt.Fprintf(w, "basket:   %s\n", orDash(strings.Join(report.Basket, ", ")))
	fmt.Fprintf(w, "rules:    %s\n", orDash(strings.Join(report.RuleSKUs, ", ")))

	p := report.Prediction
	fmt.Fprintf(w, "signals:  %d (threshold %d)\n", p.Signals, p.Threshold)
	switch {
	case !p.Available:
		fmt.Fprintf(w, "predict:  unavailable (%s)\n", orDash(p.Error))
	case p.Raw == "":
		fmt.Fprintln(w, "predict:  none")
	default:
		fmt.Fprintf(w, "predict:  %s -> %s\n", p.Raw, orDash(p.Resolved))
	}
	if len(p.Features) > 0 {
		keys := make([]string, 0, len(p.Features))
		for k := range p.Features {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		pairs := make([]string, 0, len(keys))
		for _, k := range keys {
			pairs = append(pairs, fmt.Sprintf("%s=%v", k, p.Features[k]))
		}
		fmt.Fprintf(w, "columns:  %s\n", strings.Join(p.Columns, ", "))
		fmt.Fprintf(w, "features: %s\n", strings.Join(pairs, " "))
	}

	fmt.Fprintln(w)
	if len(report.Stored) == 0 {
		fmt.Fprintln(w, "no stored recommendations")
	} else {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "STORED\tREASON\tSOURCE\tGENERATED")
		for _, r := range report.Stored {
			fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", orDash(r.SKU), orDash(r.Reason), orDash(r.Source), r.GeneratedAt)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "source:   %s (%s)\n", result.Source, result.Stage)
	if result.Category != "" {
		fmt.Fprintf(w, "category: %s\n", resolver.DisplayLabel(result.Category))
	}
	fmt.Fprintln(w)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "STAGE\tSOURCE\tCATEGORY\tCANDIDATES\tACCEPTED\tSKIPPED")
	for _, a := range result.Attempts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\t%s\n", a.Stage, orDash(a.Source), orDash(a.Category), a.Candidates, a.Accepted, orDash(a.Skipped))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	if len(result.Products) == 0 {
		fmt.Fprintln(w, "no products")
		return nil
	}
	for i, p := range result.Products {
		fmt.Fprintf(w, "%2d. %-16s %s [%s] %s\n", i+1, p.SKU, p.Name, resolver.DisplayLabel(p.Category), p.Price.StringFixed(2))
	}
	return nil
}
