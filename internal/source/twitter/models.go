package twitter

// apiResponse mirrors the twitter241 RapidAPI search-v2 payload. Only
// the fields the transform reads are modeled; the rest of the payload
// is ignored by the decoder.
type apiResponse struct {
	Result struct {
		Timeline struct {
			Instructions []instruction `json:"instructions"`
		} `json:"timeline"`
	} `json:"result"`
}

type instruction struct {
	Type    string  `json:"type"`
	Entries []entry `json:"entries"`
}

type entry struct {
	EntryID string `json:"entryId"`
	Content struct {
		ItemContent struct {
			TweetResults struct {
				Result tweetResult `json:"result"`
			} `json:"tweet_results"`
		} `json:"itemContent"`
	} `json:"content"`
}

type tweetResult struct {
	Legacy *legacyTweet `json:"legacy"`
	Core   *struct {
		UserResults struct {
			Result struct {
				Legacy struct {
					ScreenName string `json:"screen_name"`
				} `json:"legacy"`
			} `json:"result"`
		} `json:"user_results"`
	} `json:"core"`
}

type legacyTweet struct {
	IDStr         string `json:"id_str"`
	FullText      string `json:"full_text"`
	CreatedAt     string `json:"created_at"`
	FavoriteCount int64  `json:"favorite_count"`
	RetweetCount  int64  `json:"retweet_count"`
	ReplyCount    int64  `json:"reply_count"`
	QuoteCount    int64  `json:"quote_count"`
	User          *struct {
		ScreenName string `json:"screen_name"`
	} `json:"user"`
}
