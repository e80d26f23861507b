package cmd

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/tsingjyujing/polyglot/boundary"
	"github.com/tsingjyujing/polyglot/text"
)

type DetectInput struct {
	Text string `json:"text" jsonschema:"the text to identify the language of"`
}

type DetectOutput struct {
	Code     string `json:"code" jsonschema:"ISO 639-1 code, un when the language could not be determined"`
	Name     string `json:"name" jsonschema:"English name of the language"`
	Reliable bool   `json:"reliable" jsonschema:"whether the detector trusts the answer"`
}

type ListLanguagesInput struct {
	// No input parameters
}

type ListLanguagesOutput struct {
	Languages []string `json:"languages" jsonschema:"the ISO 639-1 codes the detector can answer with"`
}

// PolyglotMCP serves detection tools from the in-process detector
type PolyglotMCP struct {
	detector *boundary.Detector
}

func (p PolyglotMCP) DetectLanguage(ctx context.Context, req *mcp.CallToolRequest, input DetectInput) (*mcp.CallToolResult, DetectOutput, error) {
	result := p.detector.DetectString(input.Text)
	return nil, DetectOutput{
		Code:     string(result.Code),
		Name:     text.LanguageName(result.Code),
		Reliable: result.Reliable,
	}, nil
}

func (p PolyglotMCP) ListLanguages(ctx context.Context, req *mcp.CallToolRequest, input ListLanguagesInput) (*mcp.CallToolResult, ListLanguagesOutput, error) {
	codes := lo.Map(text.SupportedCodes(), func(code text.LanguageCode, _ int) string {
		return string(code)
	})
	return nil, ListLanguagesOutput{Languages: codes}, nil
}

func newMcpServer(detector *boundary.Detector, version string) *mcp.Server {
	p := PolyglotMCP{detector: detector}
	server := mcp.NewServer(&mcp.Implementation{Name: "polyglot-mcp", Title: "MCP server for identifying the language of text", Version: version}, nil)
	mcp.AddTool(server, &mcp.Tool{Name: "detect_language", Description: "Identify the language of a text, answering with an ISO 639-1 code or un if unsure"}, p.DetectLanguage)
	mcp.AddTool(server, &mcp.Tool{Name: "list_languages", Description: "List the ISO 639-1 codes the detector can answer with"}, p.ListLanguages)
	return server
}

func NewMcpCommand(version string) *cobra.Command {
	var configFile string

	mcpCommand := &cobra.Command{
		Use:   "mcp",
		Short: "Starting MCP server",
		Run: func(cmd *cobra.Command, args []string) {
			_, envelope := readConfig(configFile)
			if err := boundary.Init(envelope.Detector); err != nil {
				logger.WithError(err).Error("Detector configuration rejected, serving with the fallback engine")
			}
			server := newMcpServer(boundary.Default(), version)
			if err := server.Run(cmd.Context(), &mcp.StdioTransport{}); err != nil {
				logger.Fatal(err)
			}
		},
	}
	mcpCommand.Flags().StringVar(&configFile, "config", "", "Path to config file")
	return mcpCommand
}
