package cmd

import (
	"bytes"
	"context"
	"fmt"
	"sync"

	"github.com/abctools/abcctl/internal/abc"
	"github.com/abctools/abcctl/internal/version"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// mcpServer exposes the automation workflows as MCP tools. The host window is
// a single shared resource, so every tool call holds the mutex for its whole
// duration — concurrent callers are serialized, never interleaved.
type mcpServer struct {
	client *abc.Client
	mu     sync.Mutex
	mcp    *mcpserver.MCPServer
}

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run an MCP server exposing the automation workflows as tools",
	RunE:  runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
	mcpCmd.Flags().String("transport", "stdio", "Transport: stdio or streamable-http")
	mcpCmd.Flags().Int("port", 39765, "Port for streamable-http transport")
}

func runMCP(cmd *cobra.Command, args []string) error {
	client, err := newClient()
	if err != nil {
		return err
	}

	s := &mcpServer{client: client}
	s.mcp = mcpserver.NewMCPServer("abcctl", version.Version)
	s.registerTools()

	transport, _ := cmd.Flags().GetString("transport")
	port, _ := cmd.Flags().GetInt("port")
	switch transport {
	case "stdio":
		return mcpserver.ServeStdio(s.mcp)
	case "streamable-http":
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *mcpServer) registerTools() {
	s.mcp.AddTool(
		mcp.NewTool("ensure",
			mcp.WithDescription("Check that the ABC Accounting Client window is open and return its title"),
		),
		s.handleEnsure,
	)

	s.mcp.AddTool(
		mcp.NewTool("invoice_paid",
			mcp.WithDescription("Check whether an invoice is fully paid (paid field equals total field)"),
			mcp.WithNumber("invoice", mcp.Required(), mcp.Description("Invoice number")),
		),
		s.handleInvoicePaid,
	)

	s.mcp.AddTool(
		mcp.NewTool("invoice_send_jdf",
			mcp.WithDescription("Resubmit an invoice to John Deere Financial and report whether it went through"),
			mcp.WithNumber("invoice", mcp.Required(), mcp.Description("Invoice number")),
		),
		s.handleInvoiceSendJDF,
	)

	s.mcp.AddTool(
		mcp.NewTool("customer_jdf_account",
			mcp.WithDescription("Look up a customer's John Deere Financial account number (empty if none)"),
			mcp.WithString("customer", mcp.Required(), mcp.Description("Customer code, e.g. 'DOEJO 0'")),
		),
		s.handleCustomerJDF,
	)

	s.mcp.AddTool(
		mcp.NewTool("report",
			mcp.WithDescription("Generate a customer invoice report (311 ledger or 323 payments) for an invoice range"),
			mcp.WithString("report", mcp.Required(), mcp.Description("Report code: 311 or 323")),
			mcp.WithNumber("from", mcp.Required(), mcp.Description("First invoice of the range")),
			mcp.WithNumber("to", mcp.Required(), mcp.Description("Last invoice of the range")),
		),
		s.handleReport,
	)

	s.mcp.AddTool(
		mcp.NewTool("new_record",
			mcp.WithDescription("Start a new record (Ctrl+N), saving or discarding pending changes"),
			mcp.WithBoolean("save", mcp.Description("Save pending changes instead of discarding them")),
		),
		s.handleNewRecord,
	)

	s.mcp.AddTool(
		mcp.NewTool("tree",
			mcp.WithDescription("Dump the accessibility tree for working out field positions"),
		),
		s.handleTree,
	)
}

// resultText serializes a result struct to YAML for an MCP text response.
func resultText(v interface{}) string {
	b, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("ok: false\nerror: %v", err)
	}
	return string(b)
}

func (s *mcpServer) handleEnsure(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.client.Window()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	title, err := window.Name()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(EnsureResult{OK: true, Action: "ensure", Window: title})), nil
}

func (s *mcpServer) handleInvoicePaid(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	num := Uint64Param(params, "invoice", 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.client.Window()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	screen, err := s.client.InvoicesScreen(window)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	paid, err := s.client.IsInvoiceFullyPaid(screen, num)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(InvoiceResult{OK: true, Action: "paid", Invoice: num, Paid: &paid})), nil
}

func (s *mcpServer) handleInvoiceSendJDF(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	num := Uint64Param(params, "invoice", 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.client.Window()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	screen, err := s.client.InvoicesScreen(window)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	sent, err := s.client.SendInvoiceToJDF(screen, num)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(InvoiceResult{OK: true, Action: "send-jdf", Invoice: num, Sent: &sent})), nil
}

func (s *mcpServer) handleCustomerJDF(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	code := StringParam(params, "customer", "")
	if code == "" {
		return mcp.NewToolResultError("customer is required"), nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.client.Window()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	screen, err := s.client.CustomersScreen(window)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	account, err := s.client.JDFAccountByCustomer(screen, code)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(CustomerResult{OK: true, Action: "jdf-account", Customer: code, JDFAccount: account})), nil
}

func (s *mcpServer) handleReport(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	report := StringParam(params, "report", "")
	from := Uint64Param(params, "from", 0)
	to := Uint64Param(params, "to", 0)

	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.client.Window()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	switch report {
	case "311":
		err = s.client.Report311(window, from, to)
	case "323":
		err = s.client.Report323(window, from, to)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown report %q (use 311 or 323)", report)), nil
	}
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(ReportResult{OK: true, Action: "report", Report: report, From: from, To: to})), nil
}

func (s *mcpServer) handleNewRecord(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := request.GetArguments()
	save := BoolParam(params, "save", false)

	s.mu.Lock()
	defer s.mu.Unlock()

	window, err := s.client.Window()
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.client.NewRecord(window, save); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(resultText(NewRecordResult{OK: true, Action: "new-record", Save: save})), nil
}

func (s *mcpServer) handleTree(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var buf bytes.Buffer
	if err := s.client.DumpTree(&buf); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(buf.String()), nil
}
