package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ihsanctl",
		Short: "IhsanBank core CLI tool",
		Long:  `A command line interface for interacting with the IhsanBank core banking API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the core banking API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(newApprovalsCmd())
	rootCmd.AddCommand(newAccountsCmd())
	rootCmd.AddCommand(newLedgerCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newApprovalsCmd() *cobra.Command {
	approvalsCmd := &cobra.Command{
		Use:   "approvals",
		Short: "Maker-checker approval operations",
	}

	var entityType, branchCode string
	var limit int

	listCmd := &cobra.Command{
		Use:   "pending",
		Short: "List pending approval requests",
		Run: func(cmd *cobra.Command, args []string) {
			listPendingApprovals(entityType, branchCode, limit)
		},
	}
	listCmd.Flags().StringVar(&entityType, "entity-type", "", "Filter by entity type (CUSTOMER, ACCOUNT)")
	listCmd.Flags().StringVar(&branchCode, "branch", "", "Filter by branch code")
	listCmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of requests to list")

	var reviewedBy, notes string

	approveCmd := &cobra.Command{
		Use:   "approve <request-id>",
		Short: "Approve a pending request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reviewApproval(args[0], "approve", reviewedBy, notes)
		},
	}
	approveCmd.Flags().StringVar(&reviewedBy, "by", "", "Reviewer user ID (required)")
	approveCmd.Flags().StringVar(&notes, "notes", "", "Review notes")
	approveCmd.MarkFlagRequired("by")

	rejectCmd := &cobra.Command{
		Use:   "reject <request-id>",
		Short: "Reject a pending request",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			reviewApproval(args[0], "reject", reviewedBy, notes)
		},
	}
	rejectCmd.Flags().StringVar(&reviewedBy, "by", "", "Reviewer user ID (required)")
	rejectCmd.Flags().StringVar(&notes, "notes", "", "Review notes")
	rejectCmd.MarkFlagRequired("by")

	approvalsCmd.AddCommand(listCmd, approveCmd, rejectCmd)

	return approvalsCmd
}

func newAccountsCmd() *cobra.Command {
	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Account operations",
	}

	balanceCmd := &cobra.Command{
		Use:   "balance <account-number>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			showBalance(args[0])
		},
	}

	accountsCmd.AddCommand(balanceCmd)

	return accountsCmd
}

func newLedgerCmd() *cobra.Command {
	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger operations",
	}

	consistencyCmd := &cobra.Command{
		Use:   "consistency",
		Short: "Check ledger consistency",
		Run: func(cmd *cobra.Command, args []string) {
			checkConsistency()
		},
	}

	ledgerCmd.AddCommand(consistencyCmd)

	return ledgerCmd
}

func listPendingApprovals(entityType, branchCode string, limit int) {
	url := fmt.Sprintf("%s/api/v1/approvals/pending?limit=%d", baseURL, limit)
	if entityType != "" {
		url += "&entity_type=" + entityType
	}
	if branchCode != "" {
		url += "&branch_code=" + branchCode
	}

	body, status := get(url)
	if status != http.StatusOK {
		fmt.Printf("Failed to list pending approvals (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var requests []map[string]any
	if err := json.Unmarshal(body, &requests); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	if len(requests) == 0 {
		fmt.Println("No pending approval requests.")
		return
	}

	fmt.Printf("%-28s %-10s %-24s %-8s %-12s\n", "ID", "ENTITY", "REQUEST", "BRANCH", "REQUESTED BY")
	for _, req := range requests {
		fmt.Printf("%-28s %-10s %-24s %-8s %-12s\n",
			truncate(str(req["id"]), 28),
			str(req["entity_type"]),
			truncate(str(req["request_type"]), 24),
			str(req["branch_code"]),
			truncate(str(req["requested_by"]), 12),
		)
	}
}

func reviewApproval(requestID, action, reviewedBy, notes string) {
	payload, _ := json.Marshal(map[string]string{
		"reviewed_by": reviewedBy,
		"notes":       notes,
	})

	url := fmt.Sprintf("%s/api/v1/approvals/%s/%s", baseURL, requestID, action)
	body, status := post(url, payload)
	if status != http.StatusOK {
		fmt.Printf("Failed to %s request (Status: %d)\nResponse: %s\n", action, status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Request %s: %s\n", str(result["id"]), str(result["status"]))
}

func showBalance(accountNumber string) {
	body, status := get(baseURL + "/api/v1/accounts/number/" + accountNumber)
	if status != http.StatusOK {
		fmt.Printf("Failed to get account (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var account map[string]any
	if err := json.Unmarshal(body, &account); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Account:  %s\n", str(account["account_number"]))
	fmt.Printf("Status:   %s\n", str(account["status"]))
	fmt.Printf("Balance:  %s\n", str(account["balance"]))
}

func checkConsistency() {
	body, status := get(baseURL + "/api/v1/ledger/consistency")
	if status != http.StatusOK {
		fmt.Printf("Consistency check FAILED (Status: %d)\nResponse: %s\n", status, string(body))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(body, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Consistency check PASSED\n")
	fmt.Printf("Total balance:  %s\n", str(result["total_balance"]))
	fmt.Printf("Total recorded: %s\n", str(result["total_recorded"]))
}

func get(url string) ([]byte, int) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func post(url string, payload []byte) ([]byte, int) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Post(url, "application/json", bytes.NewReader(payload))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	return body, resp.StatusCode
}

func str(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
