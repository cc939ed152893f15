// Package docserver exposes the document store as a stdio MCP server: the
// tool provider the chat loop spawns as its subprocess.
package docserver

import (
	"context"
	"fmt"
	"strings"

	mcp "trpc.group/trpc-go/trpc-mcp-go"

	"github.com/docpilot/docpilot/internal/schema"
)

const (
	serverName    = "docpilot-docs"
	serverVersion = "0.1.0"
)

// docServer binds the tool handlers to one injected document store.
type docServer struct {
	store schema.DocStore
}

// New builds the stdio MCP server with the document tools registered.
// The caller owns the store; it is never reached through global state.
func New(store schema.DocStore) *mcp.StdioServer {
	server := mcp.NewStdioServer(serverName, serverVersion)
	ds := &docServer{store: store}

	readTool := mcp.NewTool("read_doc_contents",
		mcp.WithDescription("Read the contents of a document and return it as a string."),
		mcp.WithString("doc_id", mcp.Required(), mcp.Description("Id of the document to read")),
	)
	server.RegisterTool(readTool, ds.handleReadDoc)

	editTool := mcp.NewTool("edit_document",
		mcp.WithDescription("Edit a document by replacing a string in the document's content with a new string."),
		mcp.WithString("doc_id", mcp.Required(), mcp.Description("Id of the document that will be edited")),
		mcp.WithString("old_str", mcp.Required(), mcp.Description("The exact text to replace (case and whitespace must match).")),
		mcp.WithString("new_str", mcp.Required(), mcp.Description("The new text to insert in place of the old text.")),
	)
	server.RegisterTool(editTool, ds.handleEditDoc)

	listTool := mcp.NewTool("list_docs",
		mcp.WithDescription("List the ids of all available documents."),
	)
	server.RegisterTool(listTool, ds.handleListDocs)

	return server
}

func (ds *docServer) handleReadDoc(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docID, err := stringArg(req, "doc_id")
	if err != nil {
		return nil, err
	}

	content, err := ds.store.Get(docID)
	if err != nil {
		return nil, err
	}
	return mcp.NewTextResult(content), nil
}

func (ds *docServer) handleEditDoc(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	docID, err := stringArg(req, "doc_id")
	if err != nil {
		return nil, err
	}
	oldStr, err := stringArg(req, "old_str")
	if err != nil {
		return nil, err
	}
	// An empty new_str is a valid edit: it deletes every occurrence.
	newStr, err := rawStringArg(req, "new_str")
	if err != nil {
		return nil, err
	}

	content, err := ds.store.Get(docID)
	if err != nil {
		return nil, err
	}

	updated := strings.ReplaceAll(content, oldStr, newStr)
	ds.store.Put(docID, updated)
	return mcp.NewTextResult(updated), nil
}

func (ds *docServer) handleListDocs(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewTextResult(strings.Join(ds.store.List(), "\n")), nil
}

// rawStringArg extracts a required string parameter from the request
// arguments, accepting the empty string.
func rawStringArg(req *mcp.CallToolRequest, name string) (string, error) {
	v, ok := req.Params.Arguments[name]
	if !ok {
		return "", fmt.Errorf("missing required parameter: %s", name)
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("parameter %s must be a string", name)
	}
	return s, nil
}

// stringArg is rawStringArg plus a non-emptiness check, for parameters where
// an empty value can never mean anything.
func stringArg(req *mcp.CallToolRequest, name string) (string, error) {
	s, err := rawStringArg(req, name)
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", fmt.Errorf("parameter %s must not be empty", name)
	}
	return s, nil
}
