package taxa_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/oceanbio/obisgo/query"
	"github.com/oceanbio/obisgo/taxa"
)

func ExampleClient_Search() {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		_ = json.NewEncoder(w).Encode(map[string]any{"total": 2})
	}))
	defer ts.Close()

	c, err := taxa.New(taxa.WithBaseURL(ts.URL + "/v3/"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := c.Search(context.Background(), query.Strings("Mola mola", "Abra alba"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	name, _ := res.Args.Get("scientificname")
	fmt.Println(name)
	fmt.Println(res.Data.(map[string]any)["total"])
	// Output:
	// Mola mola,Abra alba
	// 2
}

func ExampleResult_SearchURL() {
	args := query.NewArgs()
	args.SetString("scientificname", query.String("Mola mola"))

	res := taxa.Result{
		URL:  "https://api.obis.org/v3/taxon/Mola mola",
		Args: args,
	}

	u, err := res.SearchURL()
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(u)
	// Output: https://api.obis.org/v3/taxon/Mola mola?scientificname=Mola+mola
}
