package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	graphql "github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"

	"github.com/relaykit/todos/internal/eventbus"
	"github.com/relaykit/todos/internal/events"
	"github.com/relaykit/todos/internal/graph"
	"github.com/relaykit/todos/internal/otel"
	"github.com/relaykit/todos/internal/server"
	"github.com/relaykit/todos/internal/store"
)

const rootUsage = `todos — Relay-compliant GraphQL todo service

USAGE:
  todos <command> [flags]

COMMANDS:
  serve            Run the GraphQL HTTP endpoint
  schema           Validate the SDL and write the schema file artifact
  help             Show help for any command
`

const serveUsage = `serve FLAGS:
  -server.addr <addr>        HTTP listen address (default: :8080)
  -server.pretty             Pretty-print JSON responses
  -server.timeout <duration> Per-request timeout, e.g. 10s (default: 10s)
  -server.max-body <bytes>   Request body size limit, 0 for unlimited (default: 1048576)
  -server.graphiql <bool>    Serve the GraphiQL IDE on GET (default: true)
  -otel.endpoint <addr>      OTLP collector endpoint
  -otel.service <name>       OpenTelemetry service name (default: todos)
`

const schemaUsage = `schema FLAGS:
  -out <file>  Write the schema SDL to file (default: stdout)
  (Validation always runs; exits non-zero on errors)
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		log.Fatal(err)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("missing command")
	}

	cmd := args[0]
	cmdArgs := args[1:]
	switch cmd {
	case "serve":
		return cmdServe(cmdArgs)
	case "schema":
		return cmdSchema(cmdArgs)
	case "help":
		return cmdHelp(cmdArgs)
	default:
		fmt.Fprint(os.Stderr, rootUsage)
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func cmdHelp(args []string) error {
	if len(args) == 0 {
		fmt.Print(rootUsage)
		return nil
	}
	switch args[0] {
	case "serve":
		fmt.Print(serveUsage)
	case "schema":
		fmt.Print(schemaUsage)
	default:
		return fmt.Errorf("unknown help topic %q", args[0])
	}
	return nil
}

func cmdServe(args []string) error {
	addr := ":8080"
	pretty := false
	timeout := 10 * time.Second
	maxBody := int64(1 << 20)
	graphiql := true
	otelEndpoint := ""
	otelService := "todos"

	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&addr, "server.addr", addr, "HTTP listen address")
	fs.BoolVar(&pretty, "server.pretty", pretty, "Pretty-print JSON responses")
	fs.DurationVar(&timeout, "server.timeout", timeout, "Per-request timeout")
	fs.Int64Var(&maxBody, "server.max-body", maxBody, "Request body size limit")
	fs.BoolVar(&graphiql, "server.graphiql", graphiql, "Serve the GraphiQL IDE")
	fs.StringVar(&otelEndpoint, "otel.endpoint", otelEndpoint, "OTLP collector endpoint")
	fs.StringVar(&otelService, "otel.service", otelService, "OpenTelemetry service name")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, serveUsage)
		return err
	}

	eventbus.Use(eventbus.New())
	subscribeLogging()
	shutdown, err := otel.Setup(otelEndpoint, otelService)
	if err != nil {
		return fmt.Errorf("otel setup: %w", err)
	}
	defer func() { _ = shutdown(context.Background()) }()

	schema, err := graphql.ParseSchema(graph.Schema, graph.NewResolver(store.New()), graphql.UseStringDescriptions())
	if err != nil {
		return fmt.Errorf("parse schema: %w", err)
	}

	sopts := []server.Option{server.WithGraphiQL(graphiql)}
	if pretty {
		sopts = append(sopts, server.WithPretty())
	}
	if timeout > 0 {
		sopts = append(sopts, server.WithTimeout(timeout))
	}
	if maxBody > 0 {
		sopts = append(sopts, server.WithMaxBodyBytes(maxBody))
	}

	mux := http.NewServeMux()
	mux.Handle("/graphql", server.New(schema, sopts...))

	log.Printf("GraphQL server listening on %s", addr)
	return http.ListenAndServe(addr, mux)
}

func subscribeLogging() {
	eventbus.Subscribe(func(ctx context.Context, e events.HTTPFinish) {
		log.Printf("%s %s -> %d (%s)", e.Method, e.Path, e.Status, e.Duration)
	})
	eventbus.Subscribe(func(ctx context.Context, e events.GraphQLFinish) {
		if len(e.Errors) > 0 {
			log.Printf("graphql %s: %d error(s), first: %v", e.OperationType, len(e.Errors), e.Errors[0])
		}
	})
}

func cmdSchema(args []string) error {
	outFile := ""
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	fs.SetOutput(new(bytes.Buffer))
	fs.StringVar(&outFile, "out", outFile, "Write the schema SDL to file")
	if err := fs.Parse(args); err != nil {
		fmt.Fprint(os.Stderr, schemaUsage)
		return err
	}

	sch, err := gqlparser.LoadSchema(&ast.Source{Name: "todos.graphql", Input: graph.Schema})
	if err != nil {
		return fmt.Errorf("invalid schema: %w", err)
	}

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchema(sch)

	if outFile == "" {
		fmt.Print(buf.String())
		return nil
	}
	return os.WriteFile(outFile, buf.Bytes(), 0644)
}
