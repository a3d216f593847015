package apiindexv1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	json2 "github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/stockpile/inventory"
	"github.com/fulldump/stockpile/metrics"
	"github.com/fulldump/stockpile/utils"
	"github.com/fulldump/stockpile/watch"
)

type transactionOperation struct {
	Op string `json:"op"`
	itemParams
}

type transactionRequest struct {
	Operations []transactionOperation `json:"operations"`
}

type transactionResponse struct {
	Accepted []int `json:"accepted"`
	Applied  []int `json:"applied"`
}

var opAppliers = map[string]func(t *inventory.Transaction, key inventory.Key, count int, simulate bool) (int, error){
	"insert":  (*inventory.Transaction).InsertItem,
	"extract": (*inventory.Transaction).ExtractItem,
}

func transaction(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	index, indexName, err := requireIndex(ctx)
	if err != nil {
		return err
	}

	input := &transactionRequest{}
	err = json2.UnmarshalDecode(jsontext.NewDecoder(r.Body), input)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	t := index.BulkTransaction()

	result := &transactionResponse{
		Accepted: make([]int, len(input.Operations)),
		Applied:  make([]int, len(input.Operations)),
	}
	recorded := []int{} // request position of each recorded operation

	for i, op := range input.Operations {
		apply, exist := opAppliers[op.Op]
		if !exist {
			w.WriteHeader(http.StatusBadRequest)
			return fmt.Errorf("unknown operation '%s', expected one of %s",
				op.Op, strings.Join(utils.GetKeys(opAppliers), ", "))
		}
		accepted, err := apply(t, op.key(), op.Count, op.Simulate)
		if err == inventory.ErrNegativeCount {
			w.WriteHeader(http.StatusBadRequest)
			return err
		}
		if err != nil {
			return err
		}
		result.Accepted[i] = accepted
		if !op.Simulate {
			recorded = append(recorded, i)
		}
	}

	err = t.Commit()
	if err != nil {
		return err
	}
	metrics.Commits.Inc()

	hub := GetServicer(ctx).Watch()
	for j, applied := range t.Applied() {
		i := recorded[j]
		result.Applied[i] = applied
		if applied < result.Accepted[i] {
			metrics.Clamped.Inc()
		}
		if applied > 0 {
			op := input.Operations[i]
			hub.Publish(watch.Event{
				Type:  op.Op,
				Index: indexName,
				Item:  op.key().String(),
				Count: applied,
			})
		}
	}

	return json.NewEncoder(w).Encode(result)
}
