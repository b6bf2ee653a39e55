package main

import (
	"log"
	"os"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/vschwaberow/rustalize/internal/lsp"
)

const lsName = "rustalize" // Name identifier for the language server

var (
	handler protocol.Handler // Protocol handler instance (wired up below)
)

func main() {
	// Configure debug logging (1 = debug level, nil = default logger)
	commonlog.Configure(1, nil)

	declHandler := lsp.NewDeclHandler()

	// Wire up the handler with specific LSP method implementations
	handler = protocol.Handler{
		Initialize:            declHandler.Initialize,
		Initialized:           declHandler.Initialized,
		Shutdown:              declHandler.Shutdown,
		SetTrace:              declHandler.SetTrace,
		TextDocumentDidOpen:   declHandler.TextDocumentDidOpen,
		TextDocumentDidChange: declHandler.TextDocumentDidChange,
		TextDocumentDidClose:  declHandler.TextDocumentDidClose,
		TextDocumentHover:     declHandler.TextDocumentHover,
	}

	s := server.NewServer(&handler, lsName, false)

	log.Println("Starting rustalize LSP server...")

	// Serve over standard input/output (used by most editors for LSP)
	err := s.RunStdio()
	if err != nil {
		log.Println("Error starting rustalize LSP server:", err)
		os.Exit(1)
	}
}
