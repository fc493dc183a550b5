package feed

// APIResponse is one page of the article feed.
type APIResponse struct {
	PageInfo PageInfo `json:"pageInfo"`
	Content  []Item   `json:"content"`
}

type PageInfo struct {
	Page       int `json:"page"`
	NumPages   int `json:"numPages"`
	PageSize   int `json:"pageSize"`
	NumEntries int `json:"numEntries"`
}

type Item struct {
	ID      string  `json:"id"`
	Title   string  `json:"title"`
	Content string  `json:"content"`
	Digest  *string `json:"digest"`
	URL     string  `json:"url"`
	Likes   int     `json:"likes"`
	Reads   int     `json:"reads"`
}
