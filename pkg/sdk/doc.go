// Package cardex embeds the card listing catalog in a Go program.
//
// The client loads issuer datasets once and then answers browse queries
// from memory: company selection, annual fee range, a benefit query in
// synonym expansion or TF-IDF similarity mode, and pagination.
//
//	client, _ := cardex.New(ctx,
//	    cardex.WithDataset("롯데카드", "data/lotte.csv", cardex.FeePlain),
//	    cardex.WithDataset("신한카드", "data/shinhan.parquet", cardex.FeeKorean),
//	)
//	res, _ := client.Search().
//	    Companies("롯데카드").
//	    Fees(0, 20000).
//	    Query("카페").
//	    PageSize(10).
//	    Do(ctx)
//
//	for _, hit := range res.Hits {
//	    fmt.Println(hit.Card.Title, hit.Card.Fees)
//	}
package cardex
