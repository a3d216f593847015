package service

import (
	"net/http"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create index", func(a *biff.A) {
		resp := apiRequest("POST", "/indexes").
			WithBodyJson(JSON{
				"name":       "warehouse",
				"slots":      4,
				"stack_size": 16,
			}).Do()
		Save(resp, "Create index", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)

		created := resp.BodyJsonMap()
		id := created["id"]
		biff.AssertNotEqual(id, "")
		expectedBody := JSON{
			"name":     "warehouse",
			"id":       id,
			"keys":     0,
			"total":    0,
			"free":     64,
			"version":  1,
			"accurate": true,
			"links":    0,
			"backends": 1,
		}
		biff.AssertEqualJson(created, expectedBody)

		a.Alternative("Retrieve index", func(a *biff.A) {
			resp := apiRequest("GET", "/indexes/warehouse").Do()
			Save(resp, "Retrieve index", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJsonMap(), expectedBody)
		})

		a.Alternative("List indexes", func(a *biff.A) {
			resp := apiRequest("GET", "/indexes").Do()
			Save(resp, "List indexes", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), []JSON{expectedBody})
		})

		a.Alternative("Create duplicated index", func(a *biff.A) {
			resp := apiRequest("POST", "/indexes").
				WithBodyJson(JSON{"name": "warehouse"}).Do()
			Save(resp, "Create index - conflict", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Drop index", func(a *biff.A) {
			resp := apiRequest("POST", "/indexes/warehouse:dropIndex").Do()
			Save(resp, "Drop index", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)

			a.Alternative("Retrieve dropped index", func(a *biff.A) {
				resp := apiRequest("GET", "/indexes/warehouse").Do()
				Save(resp, "Retrieve index - not found", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Insert items", func(a *biff.A) {
			resp := apiRequest("POST", "/indexes/warehouse:insert").
				WithBodyJson(JSON{
					"item":  "stone",
					"count": 10,
				}).Do()
			Save(resp, "Insert items", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"accepted": 10})

			a.Alternative("Extract items", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:extract").
					WithBodyJson(JSON{
						"item":  "stone",
						"count": 4,
					}).Do()
				Save(resp, "Extract items", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"accepted": 4})
			})

			a.Alternative("Extract more than available", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:extract").
					WithBodyJson(JSON{
						"item":  "stone",
						"count": 100,
					}).Do()
				Save(resp, "Extract items - shortfall", `Asking for more than is available is not an error, the accepted count is just smaller.`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"accepted": 10})
			})

			a.Alternative("Extract with simulate", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:extract").
					WithBodyJson(JSON{
						"item":     "stone",
						"count":    10,
						"simulate": true,
					}).Do()
				Save(resp, "Extract items - simulate", ``)

				biff.AssertEqualJson(resp.BodyJson(), JSON{"accepted": 10})

				// ground truth untouched
				resp = apiRequest("GET", "/indexes/warehouse").Do()
				biff.AssertEqual(resp.BodyJsonMap()["total"], float64(10))
			})

			a.Alternative("Negative count", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:extract").
					WithBodyJson(JSON{
						"item":  "stone",
						"count": -1,
					}).Do()
				Save(resp, "Extract items - negative count", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Transaction", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:transaction").
					WithBodyJson(JSON{
						"operations": []JSON{
							{"op": "extract", "item": "stone", "count": 4},
							{"op": "extract", "item": "stone", "count": 10},
							{"op": "insert", "item": "dirt", "count": 3},
						},
					}).Do()
				Save(resp, "Transaction", `The batch is applied atomically at commit.`)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"accepted": []int{4, 6, 3},
					"applied":  []int{4, 6, 3},
				})

				resp = apiRequest("GET", "/indexes/warehouse").Do()
				biff.AssertEqual(resp.BodyJsonMap()["total"], float64(3))
			})

			a.Alternative("Find entries", func(a *biff.A) {
				apiRequest("POST", "/indexes/warehouse:insert").
					WithBodyJson(JSON{"item": "dirt", "count": 5}).Do()

				resp := apiRequest("POST", "/indexes/warehouse:find").
					WithBodyJson(JSON{
						"filter": JSON{"item": "stone"},
						"limit":  10,
					}).Do()
				Save(resp, "Find entries", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"item":       "stone",
					"durability": 0,
					"tags":       "",
					"available":  10,
				})
			})

			a.Alternative("Reindex", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:reindex").Do()
				Save(resp, "Reindex", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{"accurate": true})
			})

			a.Alternative("Update index", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:updateIndex").Do()
				Save(resp, "Update index", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				// already accurate: one bounded step changes nothing
				biff.AssertEqualJson(resp.BodyJson(), JSON{"changed": false})
			})

			a.Alternative("Add backend", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:addBackend").
					WithBodyJson(JSON{"slots": 1, "stack_size": 16}).Do()
				Save(resp, "Add backend", ``)

				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				body := resp.BodyJsonMap()
				biff.AssertEqual(body["backends"], float64(2))
				biff.AssertEqual(body["free"], float64(70))
			})
		})

		a.Alternative("Bind indexes", func(a *biff.A) {
			resp := apiRequest("POST", "/indexes").
				WithBodyJson(JSON{"name": "depot", "slots": 4, "stack_size": 16}).Do()
			peer := resp.BodyJsonMap()["id"].(string)

			resp = apiRequest("POST", "/indexes/warehouse:bind").
				WithBodyJson(JSON{"peer": peer, "tag": "east"}).Do()
			Save(resp, "Bind", ``)

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{"result": "BIND"})

			a.Alternative("Bind again", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:bind").
					WithBodyJson(JSON{"peer": peer, "tag": "west"}).Do()
				Save(resp, "Bind - replace", ``)

				biff.AssertEqualJson(resp.BodyJson(), JSON{"result": "REPLACE"})

				resp = apiRequest("POST", "/indexes/warehouse:links").Do()
				Save(resp, "List links", ``)

				biff.AssertEqualJson(resp.BodyJson(), []JSON{
					{"peer": peer, "tag": "west"},
				})
			})

			a.Alternative("Bind to itself", func(a *biff.A) {
				self := created["id"].(string)
				resp := apiRequest("POST", "/indexes/warehouse:bind").
					WithBodyJson(JSON{"peer": self}).Do()
				Save(resp, "Bind - self", ``)

				biff.AssertEqualJson(resp.BodyJson(), JSON{"result": "NO_BIND"})
			})

			a.Alternative("Unbind", func(a *biff.A) {
				resp := apiRequest("POST", "/indexes/warehouse:unbind").
					WithBodyJson(JSON{"peer": peer}).Do()
				Save(resp, "Unbind", ``)

				biff.AssertEqualJson(resp.BodyJson(), JSON{"removed": true})

				resp = apiRequest("POST", "/indexes/warehouse:unbind").
					WithBodyJson(JSON{"peer": peer}).Do()
				Save(resp, "Unbind - missing", ``)

				biff.AssertEqualJson(resp.BodyJson(), JSON{"removed": false})

				resp = apiRequest("POST", "/indexes/warehouse:links").Do()
				biff.AssertEqualJson(resp.BodyJson(), []JSON{})
			})
		})
	})

	a.Alternative("Operate on missing index", func(a *biff.A) {
		resp := apiRequest("POST", "/indexes/nope:insert").
			WithBodyJson(JSON{"item": "stone", "count": 1}).Do()
		Save(resp, "Insert - index not found", ``)

		biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
	})
}
