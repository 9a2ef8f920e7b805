package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// apiClient makes the HTTP calls behind every command.
type apiClient struct {
	baseURL string
	timeout time.Duration
	out     io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	c := &apiClient{out: out}

	rootCmd := &cobra.Command{
		Use:           "wealthflow-cli",
		Short:         "WealthFlow CLI tool",
		Long:          `A command line interface for interacting with the WealthFlow API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&c.baseURL, "url", "http://localhost:8080", "Base URL of the WealthFlow API")
	rootCmd.PersistentFlags().DurationVar(&c.timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "state",
			Short: "Print the whole store state",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodGet, "/api/v1/state", nil)
			},
		},
		loginCmd(c),
		&cobra.Command{
			Use:   "logout",
			Short: "End the current session",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodDelete, "/api/v1/session", nil)
			},
		},
		accountsCmd(c),
		transactionsCmd(c),
		stocksCmd(c),
		dashboardCmd(c),
		&cobra.Command{
			Use:   "report",
			Short: "Print the six-month income/expense report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodGet, "/api/v1/reports/monthly", nil)
			},
		},
		reconcileCmd(c),
		&cobra.Command{
			Use:   "advice",
			Short: "Ask for financial advice",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodPost, "/api/v1/advice", nil)
			},
		},
	)

	return rootCmd
}

func loginCmd(c *apiClient) *cobra.Command {
	var name, email string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Start a session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.do(http.MethodPost, "/api/v1/session", map[string]string{
				"name":  name,
				"email": email,
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Email address")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func accountsCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "accounts",
		Aliases: []string{"account"},
		Short:   "Bank account operations",
	}

	var name, bank, balance, currency, number string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Open an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.do(http.MethodPost, "/api/v1/accounts", map[string]string{
				"name":          name,
				"bankName":      bank,
				"balance":       balance,
				"currency":      currency,
				"accountNumber": number,
			})
		},
	}
	addCmd.Flags().StringVar(&name, "name", "", "Account name")
	addCmd.Flags().StringVar(&bank, "bank", "", "Bank name")
	addCmd.Flags().StringVar(&balance, "balance", "0", "Opening balance")
	addCmd.Flags().StringVar(&currency, "currency", "TWD", "ISO currency code")
	addCmd.Flags().StringVar(&number, "number", "", "Display account number")
	_ = addCmd.MarkFlagRequired("name")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List accounts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodGet, "/api/v1/accounts", nil)
			},
		},
		addCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete an account",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodDelete, "/api/v1/accounts/"+url.PathEscape(args[0]), nil)
			},
		},
	)

	return cmd
}

func transactionsCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "tx",
		Aliases: []string{"transactions"},
		Short:   "Transaction operations",
	}

	var filter string
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/api/v1/transactions"
			if filter != "" {
				path += "?type=" + url.QueryEscape(filter)
			}
			return c.do(http.MethodGet, path, nil)
		},
	}
	listCmd.Flags().StringVar(&filter, "type", "", "Filter by type: income, expense or all")

	var account, date, amount, txType, category, description string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if date == "" {
				date = time.Now().Format(time.DateOnly)
			}
			return c.do(http.MethodPost, "/api/v1/transactions", map[string]string{
				"accountId":   account,
				"date":        date,
				"amount":      amount,
				"type":        txType,
				"category":    category,
				"description": description,
			})
		},
	}
	addCmd.Flags().StringVar(&account, "account", "", "Account ID")
	addCmd.Flags().StringVar(&date, "date", "", "Date as YYYY-MM-DD (default today)")
	addCmd.Flags().StringVar(&amount, "amount", "", "Positive amount")
	addCmd.Flags().StringVar(&txType, "type", "expense", "income or expense")
	addCmd.Flags().StringVar(&category, "category", "", "Category label")
	addCmd.Flags().StringVar(&description, "description", "", "Free text")
	_ = addCmd.MarkFlagRequired("account")
	_ = addCmd.MarkFlagRequired("amount")

	cmd.AddCommand(
		listCmd,
		addCmd,
		&cobra.Command{
			Use:   "delete <id>",
			Short: "Delete a transaction and reverse its balance effect",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodDelete, "/api/v1/transactions/"+url.PathEscape(args[0]), nil)
			},
		},
	)

	return cmd
}

func stocksCmd(c *apiClient) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "stocks",
		Aliases: []string{"stock"},
		Short:   "Stock position operations",
	}

	var symbol, name, shares, cost, price, currency string
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Open a stock position",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body := map[string]string{
				"symbol":      symbol,
				"name":        name,
				"shares":      shares,
				"averageCost": cost,
				"currency":    currency,
			}
			if price != "" {
				body["currentPrice"] = price
			}
			return c.do(http.MethodPost, "/api/v1/stocks", body)
		},
	}
	addCmd.Flags().StringVar(&symbol, "symbol", "", "Ticker symbol")
	addCmd.Flags().StringVar(&name, "name", "", "Display name")
	addCmd.Flags().StringVar(&shares, "shares", "", "Share count")
	addCmd.Flags().StringVar(&cost, "cost", "", "Average cost per share")
	addCmd.Flags().StringVar(&price, "price", "", "Current price (default average cost)")
	addCmd.Flags().StringVar(&currency, "currency", "TWD", "ISO currency code")
	_ = addCmd.MarkFlagRequired("symbol")
	_ = addCmd.MarkFlagRequired("shares")
	_ = addCmd.MarkFlagRequired("cost")

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List positions with unrealized profit",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodGet, "/api/v1/stocks", nil)
			},
		},
		addCmd,
		&cobra.Command{
			Use:   "price <id> <price>",
			Short: "Set a position's current price",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				if _, err := strconv.ParseFloat(args[1], 64); err != nil {
					return fmt.Errorf("invalid price %q", args[1])
				}
				return c.do(http.MethodPut, "/api/v1/stocks/"+url.PathEscape(args[0])+"/price", map[string]string{
					"price": args[1],
				})
			},
		},
		&cobra.Command{
			Use:   "remove <id>",
			Short: "Remove a position",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodDelete, "/api/v1/stocks/"+url.PathEscape(args[0]), nil)
			},
		},
		&cobra.Command{
			Use:   "refresh",
			Short: "Simulate a market move on every position",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.do(http.MethodPost, "/api/v1/stocks/refresh", nil)
			},
		},
	)

	return cmd
}

func dashboardCmd(c *apiClient) *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Print the dashboard figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.do(http.MethodGet, "/api/v1/dashboard?recent="+strconv.Itoa(recent), nil)
		},
	}
	cmd.Flags().IntVar(&recent, "recent", 5, "Number of recent transactions")

	return cmd
}

func reconcileCmd(c *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Check that every transaction references an existing account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := c.request(http.MethodGet, "/api/v1/reconciliation", nil)
			if err != nil {
				return err
			}

			var result struct {
				Consistent bool              `json:"consistent"`
				Orphaned   []json.RawMessage `json:"orphaned"`
			}
			if err := json.Unmarshal(body, &result); err != nil {
				return fmt.Errorf("failed to parse response: %w", err)
			}

			if result.Consistent {
				fmt.Fprintln(c.out, "Reconciliation PASSED")
			} else {
				fmt.Fprintf(c.out, "Reconciliation FAILED: %d orphaned transaction(s)\n", len(result.Orphaned))
			}

			return printJSON(c.out, body)
		},
	}
}

// do sends the request and pretty-prints the response body.
func (c *apiClient) do(method, path string, payload any) error {
	body, err := c.request(method, path, payload)
	if err != nil {
		return err
	}

	if len(body) == 0 {
		fmt.Fprintln(c.out, "OK")
		return nil
	}

	return printJSON(c.out, body)
}

func (c *apiClient) request(method, path string, payload any) ([]byte, error) {
	var reqBody io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, strings.TrimRight(c.baseURL, "/")+path, reqBody)
	if err != nil {
		return nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	client := &http.Client{Timeout: c.timeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("request failed (status: %d): %s", resp.StatusCode, truncate(strings.TrimSpace(string(body)), 200))
	}

	return body, nil
}

func printJSON(out io.Writer, raw []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		_, err = fmt.Fprintln(out, string(raw))
		return err
	}

	_, err := fmt.Fprintln(out, buf.String())
	return err
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 3 {
		return s[:n]
	}
	return s[:n-3] + "..."
}
