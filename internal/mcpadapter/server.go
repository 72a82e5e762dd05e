package mcpadapter

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/word-agent/internal/aggregator"
	"github.com/povarna/generative-ai-agents/word-agent/internal/wordgen"
	"github.com/rs/zerolog"
)

// NewServer registers the word tools on a fresh MCP server. The
// generate_words tool is only added when generator is not nil.
func NewServer(analyzer WordAnalyzer, generator wordgen.Generator, version string, logger *zerolog.Logger) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "word-agent",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_word",
		Description: "Find the longest substring of a word in which no character repeats",
	}, NewAnalyzeHandler(analyzer))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analyze_words",
		Description: "Analyze several words at once and report the longest result",
	}, NewAnalyzeManyHandler(analyzer, aggregator.NewAggregator(logger)))

	mcp.AddTool(server, &mcp.Tool{
		Name:        "analysis_history",
		Description: "List recent analyses, most recent first",
	}, NewHistoryHandler(analyzer))

	if generator != nil {
		mcp.AddTool(server, &mcp.Tool{
			Name:        "generate_words",
			Description: "Generate candidate words for the substring game",
		}, NewGenerateHandler(generator))
	}

	return server
}
