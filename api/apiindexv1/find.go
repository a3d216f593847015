package apiindexv1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/stockpile/utils"
)

type findRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
}

type findRow struct {
	Item       string `json:"item"`
	Durability int    `json:"durability"`
	Tags       string `json:"tags"`
	Available  int    `json:"available"`
}

func find(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	index, _, err := requireIndex(ctx)
	if err != nil {
		return err
	}

	params := &findRequest{
		Filter: map[string]interface{}{},
		Skip:   0,
		Limit:  1,
	}
	err = json.NewDecoder(r.Body).Decode(params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return err
	}

	hasFilter := len(params.Filter) > 0

	jsonWriter := json.NewEncoder(w)

	skip := params.Skip
	limit := params.Limit
	for _, entry := range index.Entries() {

		if limit == 0 {
			break
		}

		row := findRow{
			Item:       entry.Key.Item,
			Durability: entry.Key.Durability,
			Tags:       entry.Key.Tags,
			Available:  entry.Available,
		}

		if hasFilter {
			rowData := map[string]interface{}{}
			err := utils.Remarshal(row, &rowData)
			if err != nil {
				return fmt.Errorf("remarshal: %w", err)
			}
			match, err := connor.Match(params.Filter, rowData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		jsonWriter.Encode(row)
	}

	return nil
}
