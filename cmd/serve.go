package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/rhythmdex/constants"
	"github.com/jsphweid/rhythmdex/model"
	"github.com/jsphweid/rhythmdex/rhythm"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `serves the rhythm analysis API`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func summarizeChain(chain []*rhythm.Group) []model.GroupSummary {
	res := make([]model.GroupSummary, 0, len(chain))
	for _, g := range chain {
		s := model.GroupSummary{
			StartTime:          g.StartTime(),
			Duration:           g.Duration(),
			NumEvents:          len(g.Members),
			EventIntervalRatio: g.EventIntervalRatio,
		}
		if ei, ok := g.EventInterval(); ok {
			interval := ei
			s.EventInterval = &interval
		}
		if !math.IsInf(g.StartTimeInterval, 1) {
			spacing := g.StartTimeInterval
			s.StartTimeInterval = &spacing
		}
		s.RepeatsPrevious = g.Previous != nil && g.IsRepetitionOf(g.Previous)
		res = append(res, s)
	}
	return res
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

func HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.AnalyzeRequestBody
	err = json.Unmarshal(reqBody, &input)
	if err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}

	if len(input.Onsets) == 0 {
		writeError(w, 400, "Need at least one onset...")
		return
	}

	events := model.NewTimedEvents(input.Onsets)
	chain, err := rhythm.BuildChain(events)
	if err != nil {
		writeError(w, 422, "Could not build rhythm chain: "+err.Error())
		return
	}

	res := model.AnalyzeResponse{
		Id:        uuid.New().String(),
		NumEvents: len(events),
		Groups:    summarizeChain(chain),
	}
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/analyze", HandleAnalyze).Methods("POST")
	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on %v\n", constants.GetServeAddr())
	log.Fatal(http.ListenAndServe(constants.GetServeAddr(), handler))
}
