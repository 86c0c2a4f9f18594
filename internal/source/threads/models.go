package threads

// apiResponse mirrors the threads-api4 RapidAPI recent-search payload.
// A thread groups one or more posts; the transform flattens them.
type apiResponse struct {
	Status string `json:"status"`
	Data   struct {
		SearchResults struct {
			Edges []edge `json:"edges"`
		} `json:"searchResults"`
	} `json:"data"`
}

type edge struct {
	Node struct {
		Thread thread `json:"thread"`
	} `json:"node"`
}

type thread struct {
	ThreadItems []threadItem `json:"thread_items"`
}

type threadItem struct {
	Post post `json:"post"`
}

type post struct {
	ID      string `json:"id"`
	Code    string `json:"code"`
	TakenAt int64  `json:"taken_at"`
	Caption struct {
		Text string `json:"text"`
	} `json:"caption"`
	User struct {
		Username string `json:"username"`
	} `json:"user"`
	LikeCount       int64 `json:"like_count"`
	TextPostAppInfo struct {
		DirectReplyCount int64 `json:"direct_reply_count"`
		RepostCount      int64 `json:"repost_count"`
	} `json:"text_post_app_info"`
}
