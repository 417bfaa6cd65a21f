// Command sample demonstrates the github.com/bjaus/apiclient package
// against a small in-process todo backend.
//
// Run:
//
//	go run ./cmd/sample
//	go run ./cmd/sample -base https://jsonplaceholder.typicode.com
//	go run ./cmd/sample -schema        — print the declared schema as YAML
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/bjaus/apiclient"
)

// Todo mirrors the backend's todo resource.
type Todo struct {
	UserID    int    `json:"userId"`
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// CreateTodo is the creation payload.
type CreateTodo struct {
	UserID    int    `json:"userId"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// todoAPI holds the bound operations for the todo service.
type todoAPI struct {
	schema *apiclient.Schema

	todos      apiclient.Operation[apiclient.Void, []Todo]
	todo       apiclient.Operation[apiclient.Void, Todo]
	createTodo apiclient.Operation[CreateTodo, Todo]
	deleteTodo apiclient.Operation[apiclient.Void, apiclient.StatusCode]
}

// newTodoAPI declares the endpoint set against the given base URL.
func newTodoAPI(base string) (*todoAPI, error) {
	s := apiclient.NewSchema(apiclient.WithConstant("base", base))
	g := s.Group("{base}/todos", apiclient.WithGroupHeader("Accept", "application/json"))

	a := &todoAPI{
		schema:     s,
		todos:      apiclient.Get[[]Todo](g, "todos", ""),
		todo:       apiclient.Get[Todo](g, "todo", "/{id}", apiclient.WithParams("id")),
		createTodo: apiclient.Post[CreateTodo, Todo](g, "create_todo", ""),
		deleteTodo: apiclient.Delete[apiclient.StatusCode](g, "delete_todo", "/{id}", apiclient.WithParams("id")),
	}
	return a, s.Err()
}

func main() {
	base := flag.String("base", "", "Backend base URL (default: in-process server)")
	token := flag.String("token", "", "Bearer token sent with every request")
	schemaFlag := flag.Bool("schema", false, "Print the declared schema as YAML and exit")
	flag.Parse()

	initLogging()

	if err := run(*base, *token, *schemaFlag); err != nil {
		slog.Error("sample failed", "error", err)
		os.Exit(1)
	}
}

// initLogging configures slog with tint for colored, concise output.
func initLogging() {
	slog.SetDefault(slog.New(tint.NewHandler(colorable.NewColorable(os.Stderr), &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: !isatty.IsTerminal(os.Stderr.Fd()),
	})))
}

func run(base, token string, schemaOnly bool) error {
	if base == "" {
		addr, stop, err := startBackend()
		if err != nil {
			return err
		}
		defer stop()
		base = "http://" + addr
	}

	api, err := newTodoAPI(base)
	if err != nil {
		return err
	}

	if schemaOnly {
		return api.schema.WriteYAML(os.Stdout)
	}

	opts := []apiclient.ClientOption{
		apiclient.WithMiddleware(
			apiclient.Logging(slog.Default()),
			apiclient.UserAgent("apiclient-sample/1.0"),
		),
	}
	if token != "" {
		opts = append(opts, apiclient.WithAuth(apiclient.BearerAuth(token)))
	}
	c := apiclient.NewClient(opts...)

	ctx := context.Background()

	all, err := api.todos(ctx, c, nil)
	if err != nil {
		return err
	}
	slog.Info("listed todos", "count", len(all))

	created, err := api.createTodo(ctx, c, &CreateTodo{UserID: 1, Title: "write sample", Completed: false})
	if err != nil {
		return err
	}
	slog.Info("created todo", "id", created.ID, "title", created.Title)

	one, err := api.todo(ctx, c, nil, created.ID)
	if err != nil {
		return err
	}
	slog.Info("fetched todo", "id", one.ID, "completed", one.Completed)

	status, err := api.deleteTodo(ctx, c, nil, created.ID)
	if err != nil {
		return err
	}
	slog.Info("deleted todo", "status", int(status), "success", status.Success())

	return nil
}

// startBackend runs a minimal in-memory todo server on a random local
// port and returns its address and a shutdown func.
func startBackend() (string, func(), error) {
	var (
		mu    sync.Mutex
		next  = 1
		todos = map[int]Todo{}
	)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /todos", func(w http.ResponseWriter, _ *http.Request) {
		mu.Lock()
		list := make([]Todo, 0, len(todos))
		for _, t := range todos {
			list = append(list, t)
		}
		mu.Unlock()
		writeJSON(w, http.StatusOK, list)
	})
	mux.HandleFunc("GET /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		mu.Lock()
		t, ok := todos[id]
		mu.Unlock()
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
			return
		}
		writeJSON(w, http.StatusOK, t)
	})
	mux.HandleFunc("POST /todos", func(w http.ResponseWriter, r *http.Request) {
		var in CreateTodo
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		mu.Lock()
		t := Todo{UserID: in.UserID, ID: next, Title: in.Title, Completed: in.Completed}
		todos[next] = t
		next++
		mu.Unlock()
		writeJSON(w, http.StatusCreated, t)
	})
	mux.HandleFunc("DELETE /todos/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.Atoi(r.PathValue("id"))
		mu.Lock()
		delete(todos, id)
		mu.Unlock()
		w.WriteHeader(http.StatusNoContent)
	})

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return "", nil, fmt.Errorf("listen: %w", err)
	}
	srv := &http.Server{Handler: mux}
	go srv.Serve(ln) //nolint:errcheck // shut down via stop

	return ln.Addr().String(), func() { _ = srv.Close() }, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
