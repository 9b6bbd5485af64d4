package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"chronosphere-mcp/client/chronosphere"
	"chronosphere-mcp/internal/tools"
)

var rootCmd = &cobra.Command{
	Use:          "chronosphere-mcp",
	Short:        "MCP server exposing Chronosphere log and metric queries as tools",
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.String("domain", "", "Chronosphere tenant domain, e.g. myorg.chronosphere.io (defaults to CHRONOSPHERE_DOMAIN)")
	flags.String("token", "", "Chronosphere API token (defaults to CHRONOSPHERE_API_TOKEN)")
	flags.Bool("legacy", false, "use the legacy get-range-query logs endpoints")
	flags.String("http", "", "address for http transport, defaults to stdio")

	_ = viper.BindPFlag("domain", flags.Lookup("domain"))
	_ = viper.BindPFlag("token", flags.Lookup("token"))
	_ = viper.BindPFlag("legacy", flags.Lookup("legacy"))
	_ = viper.BindPFlag("http", flags.Lookup("http"))

	viper.SetEnvPrefix("CHRONOSPHERE")
	viper.AutomaticEnv()
	_ = viper.BindEnv("token", "CHRONOSPHERE_API_TOKEN")
	_ = viper.BindEnv("domain", "CHRONOSPHERE_DOMAIN")
}

func run(cmd *cobra.Command, args []string) error {
	// stdout belongs to the stdio MCP transport.
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, nil)))

	// Local .env is optional.
	_ = godotenv.Load()

	domain := viper.GetString("domain")
	if domain != "" && !strings.Contains(domain, "://") {
		domain = "https://" + domain
	}

	client, err := chronosphere.NewClient(domain, viper.GetString("token"), viper.GetBool("legacy"))
	if err != nil {
		return err
	}

	mcpTools := tools.NewBaseTool(client)

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: "Chronosphere MCP server", Version: "v0.1.0"}, nil)

	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "queryLogs",
		Description: `Query logs from Chronosphere using the logs API.
		Arguments:
		- query (required): The log query string.
		- start_time (optional): Start time for the query range e.g. 2025-05-08T18:08:35.000Z.
		- end_time (optional): End time for the query range e.g. 2025-05-08T18:20:35.000Z.
		- simple_time_range (optional): Simple time range e.g. 30m, 1h, 7d, 2w. Takes precedence over start_time and end_time, if provided.
		- page_token (optional): Cursor from a previous result to continue the listing.
		Returns:
		The JSON representation of the query results from Chronosphere`},
		mcpTools.QueryLogs,
	)
	mcp.AddTool(mcpServer, &mcp.Tool{
		Name: "queryMetrics",
		Description: `Query metrics from Chronosphere using the metrics API.
		Arguments:
		- type (required): Either "http" or "rpc".
		- namespace (required): The namespace to query.
		- environment (required): The environment to query (e.g. "prod", "stage").
		- mode (required): The mode to query (e.g. "live", "sandbox").
		- service (rpc only): The service to query.
		- method (rpc only): The method to query.
		- interval (required): The interval to query (e.g. "5m", "1h", "24h", "7d").
		Returns:
		The JSON representation of the query result from Chronosphere`},
		mcpTools.QueryMetrics,
	)

	if addr := viper.GetString("http"); addr != "" {
		// Create a streamable HTTP handler.
		handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
			return mcpServer
		}, nil)

		// Run the server on the HTTP transport.
		slog.Info("Server listening", "address", addr)
		return http.ListenAndServe(addr, handler)
	}

	// Run the server on the stdio transport.
	return mcpServer.Run(cmd.Context(), &mcp.StdioTransport{})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
