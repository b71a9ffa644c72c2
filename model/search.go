package model

// SimpleQuery is the body of the search endpoints.
type SimpleQuery struct {
	SearchString string `json:"searchString"`
}

// SimplePathQuery is the body of the network neighborhood queries.
type SimplePathQuery struct {
	SimpleQuery
	SearchDepth          int  `json:"searchDepth"`
	EdgeLimit            int  `json:"edgeLimit"`
	ErrorWhenLimitIsOver bool `json:"errorWhenLimitIsOver"`
	DirectOnly           bool `json:"directOnly"`
}

// NewSimplePathQuery returns a query with the server's default depth of 1.
func NewSimplePathQuery(search string) SimplePathQuery {
	return SimplePathQuery{SimpleQuery: SimpleQuery{SearchString: search}, SearchDepth: 1}
}

// SearchResult is a page of search hits.
type SearchResult[T any] struct {
	NumFound   int64 `json:"numFound"`
	Start      int64 `json:"start"`
	ResultList []T   `json:"resultList"`
}

// NetworkSearchResult is the wire shape of network search pages.
type NetworkSearchResult struct {
	NumFound int64            `json:"numFound"`
	Start    int64            `json:"start"`
	Networks []NetworkSummary `json:"networks"`
}

// AsSearchResult converts r to the generic page shape.
func (r NetworkSearchResult) AsSearchResult() SearchResult[NetworkSummary] {
	return SearchResult[NetworkSummary]{NumFound: r.NumFound, Start: r.Start, ResultList: r.Networks}
}
