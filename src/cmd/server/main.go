package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/akamensky/argparse"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/justinas/alice"
	"go.uber.org/zap"

	"gitlab.com/pnathan/kthsub/src/lib/batch"
	"gitlab.com/pnathan/kthsub/src/lib/findapi"
	"gitlab.com/pnathan/kthsub/src/lib/findstrings"
	"gitlab.com/pnathan/kthsub/src/lib/log"
)

var GLOBAL_SET *findstrings.InternalSet

const requestIDHeader = "X-Request-Id"

func writeJSON(w http.ResponseWriter, status int, v any) {
	text, err := json.Marshal(v)
	if err != nil {
		log.Error("unable to encode response", zap.Error(err))
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("error"))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(text)
}

func putStrings(w http.ResponseWriter, r *http.Request) {
	decoder := json.NewDecoder(r.Body)

	input := findapi.InsertRequest{}
	if err := decoder.Decode(&input); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("couldn't decode"))
		return
	}

	added := 0
	for _, s := range input.Strings {
		added += GLOBAL_SET.Insert(s)
	}
	log.Info("strings inserted", zap.Int("count", len(input.Strings)), zap.Int("added", added),
		zap.String("request", w.Header().Get(requestIDHeader)))

	writeJSON(w, http.StatusOK, findapi.InsertResponse{Added: added, Size: GLOBAL_SET.Size()})
}

func getSubstring(w http.ResponseWriter, r *http.Request) {
	order, err := strconv.Atoi(mux.Vars(r)["order"])
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("order must be an integer"))
		return
	}

	s, found := GLOBAL_SET.Find(order)
	status := http.StatusOK
	if !found {
		status = http.StatusNotFound
	}
	writeJSON(w, status, findapi.FindResponse{Order: order, Substring: s, Found: found})
}

func statistics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, GLOBAL_SET.Statistics())
}

// loadStrings inserts every line of filename, as the batch input would.
func loadStrings(filename string) error {
	log.Info("Load file provided...reading", zap.String("filename", filename))
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	lines, err := batch.ReadLines(f)
	if err != nil {
		return fmt.Errorf("reading %v: %w", filename, err)
	}
	added := 0
	for _, line := range lines {
		added += GLOBAL_SET.Insert(line)
	}
	log.Info("strings loaded", zap.String("filename", filename), zap.Int("lines", len(lines)), zap.Int("added", added))
	return nil
}

//////////////////////////////////////////////////////////////
func init() {
	GLOBAL_SET = findstrings.NewSet()
}

func Default(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "ok")
}

func Wut(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	fmt.Fprintf(w, "your content is in another url")
}

func requestIDHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		h.ServeHTTP(w, r)
	})
}

func loggerHandler(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		h.ServeHTTP(w, r)
		log.Info("request", zap.String("method", r.Method), zap.String("path", r.URL.Path),
			zap.Duration("elapsed", time.Since(start)), zap.String("request", w.Header().Get(requestIDHeader)))
	})
}

func newHandler() http.Handler {
	r := mux.NewRouter()
	errorChain := alice.New(requestIDHandler, loggerHandler)
	r.HandleFunc("/healthz", Default)
	r.HandleFunc("/api/strings", putStrings).Methods("PUT")
	r.HandleFunc("/api/substring/{order}", getSubstring).Methods("GET")
	r.HandleFunc("/api/statistics", statistics).Methods("GET")

	r.NotFoundHandler = http.HandlerFunc(Wut)
	return errorChain.Then(r)
}

//////////////////////////////////////////////////////////////
func main() {
	parser := argparse.NewParser("server", "serves k-th distinct substring queries")

	host := parser.String("i", "ip", &argparse.Options{Required: false, Help: "ip to bind to", Default: "0.0.0.0"})
	port := parser.String("p", "port", &argparse.Options{Required: false, Help: "port to bind to", Default: "1337"})
	load := parser.String("l", "load", &argparse.Options{Required: false, Help: "file of strings, one per line, inserted before listening"})
	// Parse input
	err := parser.Parse(os.Args)
	if err != nil {
		// In case of error print error and print usage
		// This can also be done by passing -h or --help flags
		fmt.Print(parser.Usage(err))
		return
	}

	if *load != "" {
		if err := loadStrings(*load); err != nil {
			log.Fatal("unable to load strings", zap.String("filename", *load), zap.Error(err))
		}
	}

	log.Printf("Good morning. I am listening on %s:%s", *host, *port)

	srv := &http.Server{
		Handler:      newHandler(),
		Addr:         fmt.Sprintf("%s:%s", *host, *port),
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	log.Fatal("server failure", zap.Error(srv.ListenAndServe()))
}
