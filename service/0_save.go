package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/fulldump/apitest"
)

// Save dumps a request/response pair from the acceptance suite as a
// markdown example. Only active when API_EXAMPLES_PATH is set.
func Save(response *apitest.Response, title, description string) {

	examplesPath := os.Getenv("API_EXAMPLES_PATH")
	if examplesPath == "" {
		return
	}

	request := response.Request

	s := "# " + title + "\n"
	if description != "" {
		s += description + "\n"
	}
	s += "\n"

	query := request.URL.RawQuery
	if query != "" {
		query = "?" + query
	}

	s += "```http\n"

	// Request
	s += request.Method + " " + request.URL.Path + query + " " + request.Proto + "\n"
	s += "Host: example.com\n"
	for k, l := range request.Header {
		for _, v := range l {
			s += k + ": " + v + "\n"
		}
	}
	s += "\n"
	s += formatJSON(response.BodyRequestString()) + "\n\n"

	// Response
	s += response.Proto + " " + response.Status + "\n"

	headerKeys := []string{}
	for k := range response.Header {
		headerKeys = append(headerKeys, k)
	}
	sort.Strings(headerKeys)

	for _, k := range headerKeys {
		if k == "Date" {
			s += "Date: Mon, 15 Aug 2022 02:08:13 GMT\n"
			continue
		}
		for _, v := range response.Header[k] {
			s += k + ": " + v + "\n"
		}
	}
	s += "\n"
	s += formatJSON(response.BodyString()) + "\n"
	s += "```\n"

	filename := strings.Replace(strings.ToLower(title), " ", "_", -1) + ".md"
	p := path.Join(examplesPath, path.Clean(filename))
	err := os.WriteFile(p, []byte(s), 0666)
	if err != nil {
		fmt.Println("Saving err:", err)
	}
}

func formatJSON(body string) string {

	var i interface{}

	err := json.Unmarshal([]byte(body), &i)
	if nil != err {
		return body
	}

	bytes, err := json.MarshalIndent(i, "", "    ")
	if nil != err {
		return body
	}

	return string(bytes)
}
