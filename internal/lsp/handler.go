package lsp

import (
	"fmt"
	"log"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/vschwaberow/rustalize/internal/ast"
	"github.com/vschwaberow/rustalize/internal/parser"
	"github.com/vschwaberow/rustalize/internal/render"
)

// DeclHandler implements the LSP server handlers for declaration files.
// It keeps the last seen text and, when parsing succeeded, the declaration
// tree per open document.
type DeclHandler struct {
	mu      sync.RWMutex
	content map[string]string
	decls   map[string]ast.Declaration
}

// NewDeclHandler creates and returns a new DeclHandler instance
func NewDeclHandler() *DeclHandler {
	return &DeclHandler{
		content: make(map[string]string),
		decls:   make(map[string]ast.Declaration),
	}
}

// Initialize responds to the LSP client's initialize request and advertises the server's capabilities
func (h *DeclHandler) Initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	log.Println("LSP Initialize called")

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: ptrBool(true),
				Change:    ptrSyncKind(protocol.TextDocumentSyncKindFull),
			},
			HoverProvider: ptrBool(true),
		},
	}, nil
}

// Initialized is called after the client receives the server's capabilities and completes initialization
func (h *DeclHandler) Initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	log.Println("LSP Initialized")
	return nil
}

// Shutdown handles the LSP shutdown request
func (h *DeclHandler) Shutdown(ctx *glsp.Context) error {
	log.Println("LSP Shutdown")
	return nil
}

// SetTrace handles trace level changes requested by the client
func (h *DeclHandler) SetTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

// TextDocumentDidOpen handles file open notifications from the editor
func (h *DeclHandler) TextDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	log.Printf("Opened file: %s\n", params.TextDocument.URI)
	return h.updateDocument(ctx, params.TextDocument.URI, params.TextDocument.Text)
}

// TextDocumentDidChange handles file change notifications from the editor.
// Sync is full-document, so the last content change carries the whole text.
func (h *DeclHandler) TextDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	log.Printf("Changed file: %s\n", params.TextDocument.URI)

	for _, change := range params.ContentChanges {
		if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
			return h.updateDocument(ctx, params.TextDocument.URI, whole.Text)
		}
	}
	return nil
}

// TextDocumentDidClose handles file close notifications from the editor
func (h *DeclHandler) TextDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	log.Printf("Closed file: %s\n", params.TextDocument.URI)

	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.content, path)
	delete(h.decls, path)

	return nil
}

// TextDocumentHover answers hover requests with the rendered hierarchy of
// the declaration under the cursor. The subset allows one declaration per
// file, so any position inside a successfully parsed document shows it.
func (h *DeclHandler) TextDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	path, err := uriToPath(params.TextDocument.URI)
	if err != nil {
		return nil, fmt.Errorf("failed to convert URI %s: %w", params.TextDocument.URI, err)
	}

	h.mu.RLock()
	decl, ok := h.decls[path]
	h.mu.RUnlock()

	if !ok {
		return nil, nil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: "```\n" + render.Render(decl) + "\n```",
		},
	}, nil
}

// updateDocument reparses the document text and publishes diagnostics. A
// successful parse clears previously reported diagnostics.
func (h *DeclHandler) updateDocument(ctx *glsp.Context, rawURI protocol.DocumentUri, text string) error {
	path, err := uriToPath(rawURI)
	if err != nil {
		return fmt.Errorf("failed to convert URI %s: %w", rawURI, err)
	}

	decl, parseErr := parser.ParseSource(path, text)

	h.mu.Lock()
	h.content[path] = text
	if parseErr != nil {
		delete(h.decls, path)
	} else {
		h.decls[path] = decl
	}
	h.mu.Unlock()

	sendDiagnosticNotification(ctx, rawURI, ConvertError(parseErr))
	return nil
}

// Convert URI to platform-local file path
func uriToPath(rawURI string) (string, error) {
	u, err := url.Parse(rawURI)
	if err != nil {
		return "", fmt.Errorf("invalid URI %s: %w", rawURI, err)
	}

	path := u.Path

	// On Windows, remove leading slash (e.g., /C:/...) -> C:/...
	if runtime.GOOS == "windows" && strings.HasPrefix(path, "/") && len(path) > 3 && path[2] == ':' {
		path = path[1:]
	}

	// Normalize to platform-specific separators
	return filepath.FromSlash(path), nil
}

func sendDiagnosticNotification(ctx *glsp.Context, uri protocol.URI, diagnostics []protocol.Diagnostic) {
	if ctx == nil || ctx.Notify == nil {
		return
	}
	if diagnostics == nil {
		diagnostics = []protocol.Diagnostic{}
	}

	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: diagnostics,
	})
}

func ptrBool(b bool) *bool {
	return &b
}

func ptrSyncKind(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
